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

type VenueHandler struct {
	venueCommands commands.VenueCommands
	venueQueries  queries.VenueQueries
}

func NewVenueHandler(venueCommands commands.VenueCommands, venueQueries queries.VenueQueries) *VenueHandler {
	return &VenueHandler{
		venueCommands: venueCommands,
		venueQueries:  venueQueries,
	}
}

// @Summary List venues
// @Tags venues
// @Produce json
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.VenueListResponse
// @Router /venues [get]
func (h *VenueHandler) ListVenues(c *gin.Context) {
	items, next, err := h.venueQueries.List(c.Request.Context(), cursorFromQuery(c), limitFromQuery(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cursor",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVenueViews(items, next))
}

// @Summary Get venue
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.VenueResponse
// @Failure 404 {object} map[string]string
// @Router /venues/{id} [get]
func (h *VenueHandler) GetVenue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	view, err := h.venueQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Venue not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVenueView(view))
}

// @Summary Create venue
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VenueRequest true "Venue"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /venues [post]
func (h *VenueHandler) CreateVenue(c *gin.Context) {
	var req reqdto.VenueRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.venueCommands.CreateVenue(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.respondVenueError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update venue
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param request body reqdto.VenueRequest true "Venue"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{id} [put]
func (h *VenueHandler) UpdateVenue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	var req reqdto.VenueRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.venueCommands.UpdateVenue(c.Request.Context(), id, req.ToCommand()); err != nil {
		h.respondVenueError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete venue
// @Description Delete a venue with no events
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /venues/{id} [delete]
func (h *VenueHandler) DeleteVenue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	if err := h.venueCommands.DeleteVenue(c.Request.Context(), id); err != nil {
		h.respondVenueError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VenueHandler) respondVenueError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Venue not found",
		})
	case errors.Is(err, commands.ErrVenueInUse):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Venue still has events",
		})
	case errors.Is(err, commands.ErrDuplicateVenue):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Venue name already taken",
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
