package offers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidInput marks a rejected comparison request. No partial computation
// happens after a validation failure.
var ErrInvalidInput = errors.New("invalid input")

const minOffers = 2

// Validate checks that the offer set is comparable: at least two offers, each
// with a positive base salary.
func Validate(offs []Offer) error {
	if len(offs) < minOffers {
		return fmt.Errorf("%w: at least %d offers are required, got %d", ErrInvalidInput, minOffers, len(offs))
	}
	for i, o := range offs {
		if o.BaseSalary <= 0 {
			return fmt.Errorf("%w: offer %s is missing a base salary", ErrInvalidInput, describeOffer(o, i))
		}
		if o.Equity < 0 || o.Bonus < 0 || o.SigningBonus < 0 {
			return fmt.Errorf("%w: offer %s has a negative compensation amount", ErrInvalidInput, describeOffer(o, i))
		}
	}
	return nil
}

// AssignIDs fills in missing offer IDs. It returns a new slice; the input is
// never mutated.
func AssignIDs(offs []Offer) []Offer {
	out := make([]Offer, len(offs))
	copy(out, offs)
	for i := range out {
		if strings.TrimSpace(out[i].ID) == "" {
			out[i].ID = uuid.NewString()
		}
	}
	return out
}

func describeOffer(o Offer, index int) string {
	if strings.TrimSpace(o.Company) != "" {
		return fmt.Sprintf("%q", o.Company)
	}
	if strings.TrimSpace(o.ID) != "" {
		return o.ID
	}
	return fmt.Sprintf("#%d", index+1)
}
