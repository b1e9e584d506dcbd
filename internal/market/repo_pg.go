package market

import (
	"context"
	"database/sql"
	"errors"
)

// PGSource reads salary ranges from the market_benchmarks reference table.
// It is optional: when no database is configured the benchmarker runs on the
// embedded tables alone.
type PGSource struct {
	DB *sql.DB
}

// Range looks up the (position, level) cell. A missing row is a miss, not an
// error, so the benchmarker falls through to the next source.
func (s *PGSource) Range(ctx context.Context, position, level string) (Range, bool, error) {
	const query = `
SELECT min_salary, median_salary, max_salary
FROM market_benchmarks
WHERE position = $1 AND level = $2`

	var r Range
	err := s.DB.QueryRowContext(ctx, query, position, level).Scan(&r.Min, &r.Median, &r.Max)
	if errors.Is(err, sql.ErrNoRows) {
		return Range{}, false, nil
	}
	if err != nil {
		return Range{}, false, err
	}
	return r, true, nil
}

var _ Source = (*PGSource)(nil)
