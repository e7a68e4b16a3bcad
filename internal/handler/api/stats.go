package api

import (
	"net/http"

	resdto "ticket-booking/internal/handler/dto/response"
	"ticket-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsQueries queries.StatsQueries
}

func NewStatsHandler(statsQueries queries.StatsQueries) *StatsHandler {
	return &StatsHandler{statsQueries: statsQueries}
}

// @Summary Service statistics
// @Description Totals across venues, events, bookings and inventory
// @Tags stats
// @Produce json
// @Success 200 {object} resdto.StatsResponse
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	view, err := h.statsQueries.Overview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromStatsView(view))
}
