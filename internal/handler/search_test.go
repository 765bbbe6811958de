package handler

import (
    "context"
    "net/http"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/jtorabi/flight-reservation/internal/model"
    "github.com/jtorabi/flight-reservation/internal/repository"
)

func searchFixtures(t *testing.T) (*SearchHandler, *model.UserProfile) {
    t.Helper()
    flights := repository.NewMemoryFlightStore()
    users := repository.NewMemoryUserStore()
    settings := repository.NewMemorySettingsStore()

    ctx := context.Background()
    require.NoError(t, flights.Create(ctx, &model.Flight{
        ID: "FL-low", Airline: "Aseman", Origin: "تهران", Destination: "مشهد",
        DepartureTime: "1404/10/15T21:00:00", Price: 1_000_000, AvailableSeats: 10,
        QualityScore: 0.5, Scenario: &model.ScenarioTag{RegretIndex: 0.85},
    }))
    require.NoError(t, flights.Create(ctx, &model.Flight{
        ID: "FL-high", Airline: "Mahan Air", Origin: "تهران", Destination: "مشهد",
        DepartureTime: "1404/10/15T09:00:00", Price: 2_000_000, AvailableSeats: 10,
        QualityScore: 0.95, Scenario: &model.ScenarioTag{RegretIndex: 0.05},
    }))
    require.NoError(t, settings.Put(ctx, &model.Settings{AutoReservePrice: 1_350_000, AutoReserveDesc: "پیشنهاد رزرو خودکار"}))

    u := seedTraveler(t, users, "USR-1000", model.PersonalityVector{Openness: 3, Conscientiousness: 4, Extroversion: 4, Agreeableness: 3, Neuroticism: 2})
    return NewSearchHandler(flights, users, settings), u
}

func TestSearchOrdersByMatchScore(t *testing.T) {
    h, u := searchFixtures(t)

    c, rec := newJSONContext(t, http.MethodGet,
        "/v1/flights/search?origin=تهران&destination=مشهد", "")
    c.Set("user_id", u.ID)
    require.NoError(t, h.Search(c))
    require.Equal(t, http.StatusOK, rec.Code)

    var resp struct {
        Flights []struct {
            ID          string `json:"id"`
            MatchScore  int    `json:"match_score"`
            Recommended bool   `json:"recommended"`
        } `json:"flights"`
        Offer *struct{} `json:"auto_reserve_offer"`
    }
    decodeBody(t, rec, &resp)

    require.Len(t, resp.Flights, 2)
    assert.Equal(t, "FL-high", resp.Flights[0].ID)
    assert.True(t, resp.Flights[0].MatchScore > resp.Flights[1].MatchScore)
    assert.True(t, resp.Flights[0].Recommended)
    assert.False(t, resp.Flights[1].Recommended)
    assert.Nil(t, resp.Offer)
}

func TestSearchEmptyRouteReturnsOffer(t *testing.T) {
    h, u := searchFixtures(t)

    c, rec := newJSONContext(t, http.MethodGet,
        "/v1/flights/search?origin=اصفهان&destination=تهران", "")
    c.Set("user_id", u.ID)
    require.NoError(t, h.Search(c))
    require.Equal(t, http.StatusOK, rec.Code)

    var resp struct {
        Flights []any `json:"flights"`
        Offer   *struct {
            Origin         string  `json:"origin"`
            Destination    string  `json:"destination"`
            SuggestedPrice float64 `json:"suggested_price"`
            Description    string  `json:"description"`
        } `json:"auto_reserve_offer"`
    }
    decodeBody(t, rec, &resp)

    assert.Empty(t, resp.Flights)
    require.NotNil(t, resp.Offer)
    assert.Equal(t, "اصفهان", resp.Offer.Origin)
    assert.Equal(t, 1_350_000.0, resp.Offer.SuggestedPrice)
    assert.NotEmpty(t, resp.Offer.Description)
}

func TestSearchValidation(t *testing.T) {
    h, u := searchFixtures(t)

    c, rec := newJSONContext(t, http.MethodGet, "/v1/flights/search?origin=تهران", "")
    c.Set("user_id", u.ID)
    require.NoError(t, h.Search(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)

    c, rec = newJSONContext(t, http.MethodGet, "/v1/flights/search?origin=تهران&destination=تهران", "")
    c.Set("user_id", u.ID)
    require.NoError(t, h.Search(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchUnknownUser(t *testing.T) {
    h, _ := searchFixtures(t)

    c, rec := newJSONContext(t, http.MethodGet, "/v1/flights/search?origin=تهران&destination=مشهد", "")
    c.Set("user_id", "USR-missing")
    require.NoError(t, h.Search(c))
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
