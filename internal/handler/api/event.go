package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "ticket-booking/internal/handler/dto/request"
	resdto "ticket-booking/internal/handler/dto/response"
	"ticket-booking/internal/usecase/commands"
	"ticket-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	eventCommands commands.EventCommands
	eventQueries  queries.EventQueries
}

func NewEventHandler(eventCommands commands.EventCommands, eventQueries queries.EventQueries) *EventHandler {
	return &EventHandler{
		eventCommands: eventCommands,
		eventQueries:  eventQueries,
	}
}

// @Summary Search events
// @Tags events
// @Produce json
// @Param venue_id query string false "Filter by venue ID"
// @Param name query string false "Match event name"
// @Param from query string false "Starting at or after (RFC3339)"
// @Param to query string false "Starting before (RFC3339)"
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.EventListResponse
// @Router /events [get]
func (h *EventHandler) SearchEvents(c *gin.Context) {
	search := queries.EventSearch{Name: c.Query("name")}

	if venueIDStr := c.Query("venue_id"); venueIDStr != "" {
		venueID, err := uuid.Parse(venueIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid venue ID format",
			})
			return
		}
		search.VenueID = venueID
	}
	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid from timestamp",
			})
			return
		}
		search.From = from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid to timestamp",
			})
			return
		}
		search.To = to
	}

	items, next, err := h.eventQueries.Search(c.Request.Context(), search, cursorFromQuery(c), limitFromQuery(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cursor or filter",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventListItems(items, next))
}

// @Summary Get event
// @Description Get an event with its ticket types and live availability
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 404 {object} map[string]string
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	view, err := h.eventQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Event not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary Get event availability
// @Description Ticket types with remaining capacity for one event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} resdto.TicketTypeResponse
// @Failure 404 {object} map[string]string
// @Router /events/{id}/availability [get]
func (h *EventHandler) GetAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	items, err := h.eventQueries.Availability(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Event not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTicketTypeViews(items))
}

// @Summary Create event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EventRequest true "Event"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req reqdto.EventRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.eventCommands.CreateEvent(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.respondEventError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.EventRequest true "Event"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	var req reqdto.EventRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.eventCommands.UpdateEvent(c.Request.Context(), id, req.ToCommand()); err != nil {
		h.respondEventError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete event
// @Description Delete an event with no ticket types
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	if err := h.eventCommands.DeleteEvent(c.Request.Context(), id); err != nil {
		h.respondEventError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *EventHandler) respondEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Event not found",
		})
	case errors.Is(err, commands.ErrVenueNotFoundForEvent):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Venue not found",
		})
	case errors.Is(err, commands.ErrEventInUse):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Event still has ticket types",
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
