package handler

import (
    "context"
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/jtorabi/flight-reservation/internal/engine"
    "github.com/jtorabi/flight-reservation/internal/model"
    "github.com/jtorabi/flight-reservation/internal/repository"
)

// AdminHandler groups the stores needed by the research dashboard:
// flight authoring, participant management, auto-reservation review,
// offer settings and the A/B analytics summary.  All routes assume the
// RequireRole("ADMIN") middleware has already run.
type AdminHandler struct {
    Flights  repository.FlightStore
    Users    repository.UserStore
    Bookings repository.BookingStore
    Requests repository.AutoReservationStore
    Settings repository.SettingsStore
}

func NewAdminHandler(f repository.FlightStore, u repository.UserStore, b repository.BookingStore, r repository.AutoReservationStore, s repository.SettingsStore) *AdminHandler {
    if f == nil || u == nil || b == nil || r == nil || s == nil {
        panic("nil store passed to NewAdminHandler")
    }
    return &AdminHandler{Flights: f, Users: u, Bookings: b, Requests: r, Settings: s}
}

// ----- flights -----

type createFlightReq struct {
    Airline        string             `json:"airline"`
    Origin         string             `json:"origin"`
    Destination    string             `json:"destination"`
    DepartureTime  string             `json:"departure_time"`
    ArrivalTime    string             `json:"arrival_time"`
    Price          int64              `json:"price"`
    AvailableSeats int                `json:"available_seats"`
    QualityScore   float64            `json:"quality_score"`
    AircraftType   string             `json:"aircraft_type"`
    ClassType      string             `json:"class_type"`
    AllowedLuggage string             `json:"allowed_luggage"`
    Scenario       *model.ScenarioTag `json:"scenario"`
}

func (r *createFlightReq) validate() error {
    r.Airline = strings.TrimSpace(r.Airline)
    r.Origin = strings.TrimSpace(r.Origin)
    r.Destination = strings.TrimSpace(r.Destination)
    switch {
    case r.Airline == "" || r.Origin == "" || r.Destination == "" || r.DepartureTime == "":
        return errors.New("airline/origin/destination/departure_time required")
    case r.Origin == r.Destination:
        return errors.New("origin and destination must differ")
    case r.Price <= 0:
        return errors.New("price must be positive")
    case r.AvailableSeats < 0:
        return errors.New("available_seats must not be negative")
    case r.QualityScore < 0 || r.QualityScore > 1:
        return errors.New("quality_score must be within [0,1]")
    }
    if r.Scenario != nil {
        if r.Scenario.RegretIndex < 0 || r.Scenario.RegretIndex > 1 {
            return errors.New("regret_index must be within [0,1]")
        }
        if r.Scenario.SimulatedDelayMinutes < 0 {
            return errors.New("simulated_delay_minutes must not be negative")
        }
    }
    return nil
}

// CreateFlight handles POST /v1/admin/flights.  Admin-injected flights
// join the generated corpus and are matched like any other.
func (h *AdminHandler) CreateFlight(c echo.Context) error {
    var req createFlightReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := req.validate(); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }

    f := &model.Flight{
        ID:             "FL-" + uuid.NewString(),
        Airline:        req.Airline,
        Origin:         req.Origin,
        Destination:    req.Destination,
        DepartureTime:  req.DepartureTime,
        ArrivalTime:    req.ArrivalTime,
        Price:          req.Price,
        AvailableSeats: req.AvailableSeats,
        QualityScore:   req.QualityScore,
        AircraftType:   req.AircraftType,
        ClassType:      req.ClassType,
        AllowedLuggage: req.AllowedLuggage,
        Scenario:       req.Scenario,
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Flights.Create(ctx, f); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create flight failed"})
    }
    return c.JSON(http.StatusCreated, f)
}

// ListFlights handles GET /v1/admin/flights.
func (h *AdminHandler) ListFlights(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    flights, err := h.Flights.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"flights": flights})
}

// DeleteFlight handles DELETE /v1/admin/flights/:id.  Existing booking
// snapshots are untouched; only future searches lose the flight.
func (h *AdminHandler) DeleteFlight(c echo.Context) error {
    id := c.Param("id")
    if id == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Flights.Delete(ctx, id); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}

// ----- participants -----

// ListUsers handles GET /v1/admin/users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    users, err := h.Users.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"users": users})
}

type updateUserReq struct {
    Name        *string                  `json:"name"`
    Role        *string                  `json:"role"`
    Group       *model.ExperimentGroup   `json:"group"`
    Personality *model.PersonalityVector `json:"personality"`
}

// UpdateUser handles PUT /v1/admin/users/:id.  Operators can reassign a
// cohort or overwrite a questionnaire vector when a participant redoes
// the survey.  Only the provided fields change.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
    id := c.Param("id")
    if id == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
    }
    var req updateUserReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    u, err := h.Users.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
        u.Name = strings.TrimSpace(*req.Name)
    }
    if req.Role != nil {
        role := strings.ToUpper(strings.TrimSpace(*req.Role))
        if role != "ADMIN" && role != "TRAVELER" {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "role must be ADMIN or TRAVELER"})
        }
        u.Role = role
    }
    if req.Group != nil {
        if !req.Group.Valid() {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown experiment group"})
        }
        u.Group = *req.Group
    }
    if req.Personality != nil {
        if err := req.Personality.Validate(); err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
        }
        u.Personality = *req.Personality
    }

    if err := h.Users.Update(ctx, u); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, u)
}

// ----- auto-reservations / settings -----

// ListAutoReservations handles GET /v1/admin/auto-reservations.
func (h *AdminHandler) ListAutoReservations(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    requests, err := h.Requests.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"auto_reservations": requests})
}

// GetSettings handles GET /v1/admin/settings.
func (h *AdminHandler) GetSettings(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    set, err := h.Settings.Get(ctx)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "settings not initialized"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, set)
}

type updateSettingsReq struct {
    AutoReservePrice float64 `json:"auto_reserve_price"`
    AutoReserveDesc  string  `json:"auto_reserve_desc"`
}

// UpdateSettings handles PUT /v1/admin/settings.
func (h *AdminHandler) UpdateSettings(c echo.Context) error {
    var req updateSettingsReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.AutoReservePrice <= 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "auto_reserve_price must be positive"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    set := &model.Settings{AutoReservePrice: req.AutoReservePrice, AutoReserveDesc: req.AutoReserveDesc}
    if err := h.Settings.Put(ctx, set); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, set)
}

// ----- dashboard -----

type dashboardResp struct {
    Conversions  map[string]float64 `json:"conversions"`
    Satisfaction map[string]int     `json:"satisfaction"`
    Totals       dashboardTotals    `json:"totals"`
}

type dashboardTotals struct {
    Users            int `json:"users"`
    Flights          int `json:"flights"`
    Bookings         int `json:"bookings"`
    AutoReservations int `json:"auto_reservations"`
}

// Dashboard handles GET /v1/admin/dashboard.  It aggregates conversion
// per experiment cohort and questionnaire-derived satisfaction per
// trait.  Neuroticism is reported inverted as emotional stability so
// every bar on the dashboard reads "higher is better".
func (h *AdminHandler) Dashboard(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    users, err := h.Users.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    bookings, err := h.Bookings.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    requests, err := h.Requests.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    flightCount, err := h.Flights.Count(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    conversions := make(map[string]float64, len(model.ExperimentGroups))
    for _, g := range model.ExperimentGroups {
        conversions[string(g)] = engine.ConversionRate(users, bookings, g)
    }

    satisfaction := map[string]int{
        "openness":            engine.TraitSatisfaction(users, model.TraitOpenness),
        "conscientiousness":   engine.TraitSatisfaction(users, model.TraitConscientiousness),
        "extroversion":        engine.TraitSatisfaction(users, model.TraitExtroversion),
        "agreeableness":       engine.TraitSatisfaction(users, model.TraitAgreeableness),
        "emotional_stability": 100 - engine.TraitSatisfaction(users, model.TraitNeuroticism),
    }

    return c.JSON(http.StatusOK, dashboardResp{
        Conversions:  conversions,
        Satisfaction: satisfaction,
        Totals: dashboardTotals{
            Users:            len(users),
            Flights:          flightCount,
            Bookings:         len(bookings),
            AutoReservations: len(requests),
        },
    })
}
