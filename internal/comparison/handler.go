package comparison

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"offercompare-backend/internal/offers"
	"offercompare-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the comparison service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches comparison routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/compare", h.compare)
	rg.GET("/compare/demo", h.demo)
}

func (h *Handler) compare(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, codeValidation, "request body must be valid JSON", nil)
		return
	}

	report, err := h.Svc.Compare(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, offers.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, codeValidation, err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, codeInternal, "failed to compare offers", nil)
		}
		return
	}

	c.Set("reportId", report.ID)
	c.Set("offerCount", len(report.RankedOffers))
	respond.JSON(c, http.StatusOK, report)
}

func (h *Handler) demo(c *gin.Context) {
	req := Request{Offers: SampleOffers()}

	report, err := h.Svc.Compare(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, codeInternal, "failed to build demo comparison", nil)
		return
	}

	c.Set("reportId", report.ID)
	c.Set("offerCount", len(report.RankedOffers))
	respond.JSON(c, http.StatusOK, report)
}
