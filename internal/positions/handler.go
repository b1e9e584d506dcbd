package positions

import (
	"github.com/gin-gonic/gin"

	"offercompare-backend/internal/shared/server/respond"
)

// Handler serves the position catalog and level-ladder reference endpoints.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches reference-data routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/positions", h.listPositions)
	rg.GET("/levels", h.listLevels)
}

func (h *Handler) listPositions(c *gin.Context) {
	respond.OK(c, gin.H{
		"positions":  Catalog(),
		"categories": Categories(),
	})
}

// listLevels returns the universal level scale, plus company-specific level
// suggestions when a company query parameter is given.
func (h *Handler) listLevels(c *gin.Context) {
	payload := gin.H{"universalLevels": Scale()}

	if company := c.Query("company"); company != "" {
		payload["company"] = company
		payload["companyLevels"] = Suggestions(company)
	}

	respond.OK(c, payload)
}
