//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticket-booking/internal/handler/api"
	"ticket-booking/internal/usecase/commands"
	"ticket-booking/tests/common/builder"
	commandsmock "ticket-booking/tests/mock/commands"
	queriesmock "ticket-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.GET("/bookings", s.handler.ListBookings)
	s.router.GET("/bookings/search", s.handler.SearchBookings)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
	s.router.PATCH("/bookings/:id/quantity", s.handler.ChangeQuantity)
	s.router.PATCH("/bookings/:id/status", s.handler.SetStatus)
	s.router.DELETE("/bookings/:id", s.handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func validCreateBody() map[string]any {
	return map[string]any{
		"event_id":       uuid.New().String(),
		"ticket_type_id": uuid.New().String(),
		"user_name":      "Jordan Lee",
		"user_email":     "jordan@example.com",
		"quantity":       2,
	}
}

// ================================================================================
// CreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	s.Run("success: 201 with the full view", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(view, nil)

		rec := s.perform(http.MethodPost, "/bookings", validCreateBody())

		s.Equal(http.StatusCreated, rec.Code)
		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(view.ID.String(), body["id"])
		s.Equal(view.ConfirmationCode, body["confirmationCode"])
		s.Equal("pending", body["status"])
	})

	s.Run("validation: 400 on malformed payloads", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{"missing event_id", func(m map[string]any) { delete(m, "event_id") }},
			{"missing user_email", func(m map[string]any) { delete(m, "user_email") }},
			{"invalid email", func(m map[string]any) { m["user_email"] = "not-an-email" }},
			{"zero quantity", func(m map[string]any) { m["quantity"] = 0 }},
			{"negative quantity", func(m map[string]any) { m["quantity"] = -1 }},
		}

		for _, c := range cases {
			s.Run(c.name, func() {
				body := validCreateBody()
				c.mutate(body)
				rec := s.perform(http.MethodPost, "/bookings", body)
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("error: 404 for unknown event", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrEventNotFound)

		rec := s.perform(http.MethodPost, "/bookings", validCreateBody())
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 409 when capacity is exhausted", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInsufficientCapacity)

		rec := s.perform(http.MethodPost, "/bookings", validCreateBody())
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 400 when ticket type belongs to another event", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrTicketTypeMismatch)

		rec := s.perform(http.MethodPost, "/bookings", validCreateBody())
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// GetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success: 200", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := s.perform(http.MethodGet, "/bookings/"+view.ID.String(), nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := s.perform(http.MethodGet, "/bookings/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// ChangeQuantity / SetStatus / CancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestChangeQuantity() {
	id := uuid.New()

	s.Run("success: 200", func() {
		view := builder.NewBookingBuilder().WithQuantity(5).BuildView()
		s.mockCommands.EXPECT().ChangeQuantity(gomock.Any(), id, 5).Return(view, nil)

		rec := s.perform(http.MethodPatch, "/bookings/"+id.String()+"/quantity", map[string]any{"quantity": 5})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on non-positive quantity", func() {
		rec := s.perform(http.MethodPatch, "/bookings/"+id.String()+"/quantity", map[string]any{"quantity": 0})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 409 when the pool cannot grow", func() {
		s.mockCommands.EXPECT().ChangeQuantity(gomock.Any(), id, 50).
			Return(nil, commands.ErrInsufficientCapacity)

		rec := s.perform(http.MethodPatch, "/bookings/"+id.String()+"/quantity", map[string]any{"quantity": 50})
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestSetStatus() {
	id := uuid.New()

	s.Run("success: 200", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), id, gomock.Any()).Return(view, nil)

		rec := s.perform(http.MethodPatch, "/bookings/"+id.String()+"/status", map[string]any{"status": "confirmed"})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on unknown status value", func() {
		rec := s.perform(http.MethodPatch, "/bookings/"+id.String()+"/status", map[string]any{"status": "refunded"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 422 on invalid transition", func() {
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrInvalidTransition)

		rec := s.perform(http.MethodPatch, "/bookings/"+id.String()+"/status", map[string]any{"status": "pending"})
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	id := uuid.New()

	s.Run("success: 200 with the cancelled view", func() {
		view := builder.NewBookingBuilder().BuildView()
		view.Status = "cancelled"
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id).Return(view, nil)

		rec := s.perform(http.MethodDelete, "/bookings/"+id.String(), nil)

		s.Equal(http.StatusOK, rec.Code)
		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("cancelled", body["status"])
	})

	s.Run("error: 404 for unknown booking", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id).
			Return(nil, commands.ErrBookingNotFound)

		rec := s.perform(http.MethodDelete, "/bookings/"+id.String(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// ListBookings / SearchBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("success: 200 with items and cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, nil)

		rec := s.perform(http.MethodGet, "/bookings?limit=10", nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on malformed event filter", func() {
		rec := s.perform(http.MethodGet, "/bookings?event_id=nope", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestSearchBookings() {
	s.Run("success: 200", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), "jazz", gomock.Any()).Return(nil, nil)

		rec := s.perform(http.MethodGet, "/bookings/search?q=jazz", nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 when q is missing", func() {
		rec := s.perform(http.MethodGet, "/bookings/search", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
