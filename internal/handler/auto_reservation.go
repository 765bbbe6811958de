package handler

import (
    "context"
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/jtorabi/flight-reservation/internal/model"
    "github.com/jtorabi/flight-reservation/internal/queue"
    "github.com/jtorabi/flight-reservation/internal/repository"
    queuepub "github.com/jtorabi/flight-reservation/internal/service"
)

// AutoReservationHandler registers standing requests for routes without
// scheduled flights.  Requests stay pending until an operator matches
// them with a new flight.
type AutoReservationHandler struct {
    Requests repository.AutoReservationStore
    Users    repository.UserStore
    Settings repository.SettingsStore

    // Publish is called asynchronously after a request is stored.
    // Overridable in tests; defaults to the RabbitMQ publisher.
    Publish func(ctx context.Context, ev queue.AutoReservationCreatedEvent) error
}

func NewAutoReservationHandler(r repository.AutoReservationStore, u repository.UserStore, s repository.SettingsStore) *AutoReservationHandler {
    if r == nil || u == nil || s == nil {
        panic("nil store passed to NewAutoReservationHandler")
    }
    return &AutoReservationHandler{Requests: r, Users: u, Settings: s, Publish: queuepub.PublishAutoReservationCreated}
}

type createAutoResReq struct {
    Origin      string `json:"origin"`
    Destination string `json:"destination"`
    DesiredDate string `json:"desired_date"`
}

// Create handles POST /v1/auto-reservations.  The suggested price comes
// from the operator-managed settings, not from the client.
func (h *AutoReservationHandler) Create(c echo.Context) error {
    var req createAutoResReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Origin = strings.TrimSpace(req.Origin)
    req.Destination = strings.TrimSpace(req.Destination)
    req.DesiredDate = strings.TrimSpace(req.DesiredDate)
    if req.Origin == "" || req.Destination == "" || req.DesiredDate == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "origin/destination/desired_date required"})
    }
    if req.Origin == req.Destination {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "origin and destination must differ"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    user, err := currentUser(ctx, c, h.Users)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    price := 1_350_000.0
    if set, err := h.Settings.Get(ctx); err == nil {
        price = set.AutoReservePrice
    } else if !errors.Is(err, repository.ErrNotFound) {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    ar := &model.AutoReservation{
        ID:             "AR-" + uuid.NewString(),
        UserID:         user.ID,
        Origin:         req.Origin,
        Destination:    req.Destination,
        DesiredDate:    req.DesiredDate,
        SuggestedPrice: price,
        Status:         model.AutoReservationPending,
        CreatedAt:      time.Now().UTC().Format(bookingDateFormat),
    }
    if err := h.Requests.Create(ctx, ar); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create request failed"})
    }

    ev := queue.AutoReservationCreatedEvent{
        RequestID:      ar.ID,
        UserID:         user.ID,
        Group:          string(user.Group),
        Origin:         ar.Origin,
        Destination:    ar.Destination,
        DesiredDate:    ar.DesiredDate,
        SuggestedPrice: ar.SuggestedPrice,
        CreatedAt:      ar.CreatedAt,
    }
    go func() {
        pctx, pcancel := context.WithTimeout(context.Background(), 10*time.Second)
        defer pcancel()
        _ = h.Publish(pctx, ev)
    }()

    return c.JSON(http.StatusCreated, ar)
}

// List handles GET /v1/auto-reservations for the authenticated traveler.
func (h *AutoReservationHandler) List(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    requests, err := h.Requests.ListByUser(ctx, uid)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"auto_reservations": requests})
}
