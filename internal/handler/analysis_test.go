package handler

import (
    "context"
    "net/http"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/jtorabi/flight-reservation/internal/advisor"
    "github.com/jtorabi/flight-reservation/internal/model"
    "github.com/jtorabi/flight-reservation/internal/repository"
)

func TestAnalyzeFallsBackWithoutAdvisor(t *testing.T) {
    flights := repository.NewMemoryFlightStore()
    users := repository.NewMemoryUserStore()

    require.NoError(t, flights.Create(context.Background(), &model.Flight{
        ID: "FL-test", Airline: "Mahan Air", Origin: "تهران", Destination: "مشهد",
        Price: 1_760_000, QualityScore: 0.95,
        Scenario: &model.ScenarioTag{RegretIndex: 0.05},
    }))
    u := seedTraveler(t, users, "USR-1000", model.PersonalityVector{Openness: 3, Conscientiousness: 4, Extroversion: 3, Agreeableness: 3, Neuroticism: 2})

    h := NewAnalysisHandler(flights, users, advisor.NewSupervisor(nil))

    c, rec := newJSONContext(t, http.MethodPost, "/v1/flights/FL-test/analysis", "")
    c.SetParamNames("id")
    c.SetParamValues("FL-test")
    c.Set("user_id", u.ID)
    require.NoError(t, h.Analyze(c))
    require.Equal(t, http.StatusOK, rec.Code)

    var result model.AnalysisResult
    decodeBody(t, rec, &result)
    assert.True(t, result.Fallback)
    assert.Equal(t, model.AnalysisApproved, result.Status)
    assert.Equal(t, 1.0, result.FinalScore)
    assert.NotEmpty(t, result.Explanation)
}

func TestAnalyzeUnknownFlight(t *testing.T) {
    flights := repository.NewMemoryFlightStore()
    users := repository.NewMemoryUserStore()
    u := seedTraveler(t, users, "USR-1000", model.PersonalityVector{Openness: 3, Conscientiousness: 3, Extroversion: 3, Agreeableness: 3, Neuroticism: 3})

    h := NewAnalysisHandler(flights, users, advisor.NewSupervisor(nil))

    c, rec := newJSONContext(t, http.MethodPost, "/v1/flights/FL-none/analysis", "")
    c.SetParamNames("id")
    c.SetParamValues("FL-none")
    c.Set("user_id", u.ID)
    require.NoError(t, h.Analyze(c))
    assert.Equal(t, http.StatusNotFound, rec.Code)
}
