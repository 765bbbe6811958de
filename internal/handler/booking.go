package handler

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/jtorabi/flight-reservation/internal/engine"
    "github.com/jtorabi/flight-reservation/internal/model"
    "github.com/jtorabi/flight-reservation/internal/queue"
    "github.com/jtorabi/flight-reservation/internal/repository"
    queuepub "github.com/jtorabi/flight-reservation/internal/service"
)

// bookingDateFormat is the layout for booking timestamps stored with the
// snapshot.  Kept as a plain string column, same shape as the corpus dates.
const bookingDateFormat = "2006/01/02T15:04:05"

// BookingHandler confirms bookings and lists the traveler's history.
// A booking embeds a full snapshot of the flight at confirmation time;
// later edits or deletions of the flight never rewrite history.
type BookingHandler struct {
    Bookings repository.BookingStore
    Flights  repository.FlightStore
    Users    repository.UserStore

    // Publish is called asynchronously after a booking is stored.
    // Overridable in tests; defaults to the RabbitMQ publisher.
    Publish func(ctx context.Context, ev queue.BookingConfirmedEvent) error
}

func NewBookingHandler(b repository.BookingStore, f repository.FlightStore, u repository.UserStore) *BookingHandler {
    if b == nil || f == nil || u == nil {
        panic("nil store passed to NewBookingHandler")
    }
    return &BookingHandler{Bookings: b, Flights: f, Users: u, Publish: queuepub.PublishBookingConfirmed}
}

type createBookingReq struct {
    FlightID string `json:"flight_id"`
}

// Create handles POST /v1/bookings.
func (h *BookingHandler) Create(c echo.Context) error {
    var req createBookingReq
    if err := c.Bind(&req); err != nil || req.FlightID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "flight_id required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    user, err := currentUser(ctx, c, h.Users)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    flight, err := h.Flights.GetByID(ctx, req.FlightID)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    if flight.AvailableSeats <= 0 {
        return c.JSON(http.StatusConflict, echo.Map{"error": "no seats available"})
    }

    booking := &model.Booking{
        ID:          "BK-" + uuid.NewString(),
        UserID:      user.ID,
        FlightID:    flight.ID,
        BookingDate: time.Now().UTC().Format(bookingDateFormat),
        Status:      model.BookingConfirmed,
        Flight:      *flight,
    }
    if err := h.Bookings.Create(ctx, booking); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
    }

    // Fire-and-forget: a broker outage must not fail the booking.
    ev := queue.BookingConfirmedEvent{
        BookingID:   booking.ID,
        UserID:      user.ID,
        Group:       string(user.Group),
        FlightID:    flight.ID,
        Airline:     flight.Airline,
        Origin:      flight.Origin,
        Destination: flight.Destination,
        Price:       flight.Price,
        MatchScore:  engine.Score(*flight, user),
        BookedAt:    booking.BookingDate,
    }
    go func() {
        pctx, pcancel := context.WithTimeout(context.Background(), 10*time.Second)
        defer pcancel()
        _ = h.Publish(pctx, ev)
    }()

    return c.JSON(http.StatusCreated, booking)
}

// List handles GET /v1/bookings and returns the traveler's bookings,
// most recent first, with flight snapshots embedded.
func (h *BookingHandler) List(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    bookings, err := h.Bookings.ListByUser(ctx, uid)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"bookings": bookings})
}
