package handler

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/jtorabi/flight-reservation/internal/advisor"
    "github.com/jtorabi/flight-reservation/internal/repository"
)

// AnalysisHandler exposes the supervised analysis endpoint used by the
// auto_supervised cohort before confirming a booking.
type AnalysisHandler struct {
    Flights    repository.FlightStore
    Users      repository.UserStore
    Supervisor *advisor.Supervisor
}

func NewAnalysisHandler(f repository.FlightStore, u repository.UserStore, s *advisor.Supervisor) *AnalysisHandler {
    if f == nil || u == nil || s == nil {
        panic("nil dependency passed to NewAnalysisHandler")
    }
    return &AnalysisHandler{Flights: f, Users: u, Supervisor: s}
}

// Analyze handles POST /v1/flights/:id/analysis.  The verdict always
// succeeds: when the external advisor is unreachable the supervisor
// falls back to the local five-factor assessment.
func (h *AnalysisHandler) Analyze(c echo.Context) error {
    flightID := c.Param("id")
    if flightID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
    defer cancel()

    user, err := currentUser(ctx, c, h.Users)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    flight, err := h.Flights.GetByID(ctx, flightID)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    result := h.Supervisor.Review(ctx, *flight, *user)
    return c.JSON(http.StatusOK, result)
}
