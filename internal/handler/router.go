package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ticket-booking/internal/handler/api"
	"ticket-booking/internal/handler/middleware"
	"ticket-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth       *api.AuthHandler
	Booking    *api.BookingHandler
	Venue      *api.VenueHandler
	Event      *api.EventHandler
	TicketType *api.TicketTypeHandler
	Stats      *api.StatsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, rdb *redis.Client) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware, rdb)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, rdb *redis.Client) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	rateLimit := middleware.NewRateLimitMiddleware(cfg.RateLimit, rdb)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking, Mw: []gin.HandlerFunc{rateLimit}},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListBookings},
				{Method: http.MethodGet, Path: "/search", Handler: h.Booking.SearchBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
				{Method: http.MethodPatch, Path: "/:id/quantity", Handler: h.Booking.ChangeQuantity},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Booking.SetStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.CancelBooking},
			})
		}

		venues := apiGroup.Group("/venues")
		{
			addRoutes(venues, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Venue.ListVenues},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Venue.GetVenue},
			})

			adminVenues := venues.Group("")
			adminVenues.Use(authMiddleware.RequireAdmin())
			addRoutes(adminVenues, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Venue.CreateVenue},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Venue.UpdateVenue},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Venue.DeleteVenue},
			})
		}

		events := apiGroup.Group("/events")
		{
			addRoutes(events, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Event.SearchEvents},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Event.GetEvent},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Event.GetAvailability},
			})

			adminEvents := events.Group("")
			adminEvents.Use(authMiddleware.RequireAdmin())
			addRoutes(adminEvents, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Event.CreateEvent},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Event.UpdateEvent},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Event.DeleteEvent},
			})
		}

		ticketTypes := apiGroup.Group("/ticket-types")
		{
			addRoutes(ticketTypes, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.TicketType.GetTicketType},
			})

			adminTicketTypes := ticketTypes.Group("")
			adminTicketTypes.Use(authMiddleware.RequireAdmin())
			addRoutes(adminTicketTypes, []route{
				{Method: http.MethodPost, Path: "", Handler: h.TicketType.CreateTicketType},
				{Method: http.MethodPatch, Path: "/:id/price", Handler: h.TicketType.UpdatePrice},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.TicketType.DeleteTicketType},
			})
		}

		apiGroup.GET("/stats", h.Stats.GetStats)
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
