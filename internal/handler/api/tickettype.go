package api

import (
	"errors"
	"net/http"

	reqdto "ticket-booking/internal/handler/dto/request"
	resdto "ticket-booking/internal/handler/dto/response"
	"ticket-booking/internal/usecase/commands"
	"ticket-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TicketTypeHandler struct {
	ticketTypeCommands commands.TicketTypeCommands
	ticketTypeQueries  queries.TicketTypeQueries
}

func NewTicketTypeHandler(ticketTypeCommands commands.TicketTypeCommands, ticketTypeQueries queries.TicketTypeQueries) *TicketTypeHandler {
	return &TicketTypeHandler{
		ticketTypeCommands: ticketTypeCommands,
		ticketTypeQueries:  ticketTypeQueries,
	}
}

// @Summary Get ticket type
// @Tags ticket-types
// @Produce json
// @Param id path string true "Ticket type ID"
// @Success 200 {object} resdto.TicketTypeResponse
// @Failure 404 {object} map[string]string
// @Router /ticket-types/{id} [get]
func (h *TicketTypeHandler) GetTicketType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ticket type ID format",
		})
		return
	}

	view, err := h.ticketTypeQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Ticket type not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTicketTypeView(view))
}

// @Summary Create ticket type
// @Description Create a ticket type; seeds its pool with committed = 0
// @Tags ticket-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.TicketTypeRequest true "Ticket type"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /ticket-types [post]
func (h *TicketTypeHandler) CreateTicketType(c *gin.Context) {
	var req reqdto.TicketTypeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.ticketTypeCommands.CreateTicketType(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.respondTicketTypeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update ticket type price
// @Description Change the price; existing bookings keep their snapshot
// @Tags ticket-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket type ID"
// @Param request body reqdto.UpdatePriceRequest true "New price"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /ticket-types/{id}/price [patch]
func (h *TicketTypeHandler) UpdatePrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ticket type ID format",
		})
		return
	}

	var req reqdto.UpdatePriceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.ticketTypeCommands.UpdatePrice(c.Request.Context(), id, req.PriceCents); err != nil {
		h.respondTicketTypeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete ticket type
// @Description Delete a ticket type with no committed tickets
// @Tags ticket-types
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket type ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /ticket-types/{id} [delete]
func (h *TicketTypeHandler) DeleteTicketType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ticket type ID format",
		})
		return
	}

	if err := h.ticketTypeCommands.DeleteTicketType(c.Request.Context(), id); err != nil {
		h.respondTicketTypeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TicketTypeHandler) respondTicketTypeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrTicketTypeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Ticket type not found",
		})
	case errors.Is(err, commands.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Event not found",
		})
	case errors.Is(err, commands.ErrTicketTypeInUse):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Ticket type still has committed tickets",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
