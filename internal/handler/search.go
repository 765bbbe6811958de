package handler

import (
    "context"
    "errors"
    "net/http"
    "sort"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/jtorabi/flight-reservation/internal/engine"
    "github.com/jtorabi/flight-reservation/internal/model"
    "github.com/jtorabi/flight-reservation/internal/repository"
)

// SearchHandler serves the personalized flight search.  Every result is
// scored against the requesting traveler's five-factor vector and the
// list is ordered best match first.  When a route has no scheduled
// flights the handler answers with an auto-reservation offer instead of
// an empty list.
type SearchHandler struct {
    Flights  repository.FlightStore
    Users    repository.UserStore
    Settings repository.SettingsStore
}

func NewSearchHandler(f repository.FlightStore, u repository.UserStore, s repository.SettingsStore) *SearchHandler {
    if f == nil || u == nil || s == nil {
        panic("nil store passed to NewSearchHandler")
    }
    return &SearchHandler{Flights: f, Users: u, Settings: s}
}

// scoredFlight is a flight plus its personality match assessment.
type scoredFlight struct {
    model.Flight
    MatchScore  int  `json:"match_score"`
    Recommended bool `json:"recommended"`
}

// autoReserveOffer is returned when no flights exist on the route.
type autoReserveOffer struct {
    Origin         string  `json:"origin"`
    Destination    string  `json:"destination"`
    SuggestedPrice float64 `json:"suggested_price"`
    Description    string  `json:"description"`
}

type searchResp struct {
    Flights []scoredFlight    `json:"flights"`
    Offer   *autoReserveOffer `json:"auto_reserve_offer,omitempty"`
}

// Search handles GET /v1/flights/search?origin=...&destination=...
func (h *SearchHandler) Search(c echo.Context) error {
    origin := strings.TrimSpace(c.QueryParam("origin"))
    destination := strings.TrimSpace(c.QueryParam("destination"))
    if origin == "" || destination == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "origin and destination are required"})
    }
    if origin == destination {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "origin and destination must differ"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    user, err := currentUser(ctx, c, h.Users)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    flights, err := h.Flights.ListByRoute(ctx, origin, destination)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    if len(flights) == 0 {
        offer := h.buildOffer(ctx, origin, destination)
        return c.JSON(http.StatusOK, searchResp{Flights: []scoredFlight{}, Offer: offer})
    }

    scored := make([]scoredFlight, 0, len(flights))
    for _, f := range flights {
        a := engine.Evaluate(f, user)
        scored = append(scored, scoredFlight{Flight: f, MatchScore: a.Score, Recommended: a.Recommended})
    }
    // Best match first; ties keep the departure-time order from the store.
    sort.SliceStable(scored, func(i, j int) bool { return scored[i].MatchScore > scored[j].MatchScore })

    return c.JSON(http.StatusOK, searchResp{Flights: scored})
}

func (h *SearchHandler) buildOffer(ctx context.Context, origin, destination string) *autoReserveOffer {
    set, err := h.Settings.Get(ctx)
    if err != nil {
        if !errors.Is(err, repository.ErrNotFound) {
            return nil
        }
        set = &model.Settings{AutoReservePrice: 1_350_000}
    }
    return &autoReserveOffer{
        Origin:         origin,
        Destination:    destination,
        SuggestedPrice: set.AutoReservePrice,
        Description:    set.AutoReserveDesc,
    }
}
