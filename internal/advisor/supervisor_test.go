package advisor

import (
    "context"
    "errors"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/jtorabi/flight-reservation/internal/model"
)

type stubAdvisor struct {
    result model.AnalysisResult
    err    error
    calls  int
}

func (s *stubAdvisor) Analyze(_ context.Context, _ model.Flight, _ model.UserProfile) (model.AnalysisResult, error) {
    s.calls++
    return s.result, s.err
}

func goodFlight() model.Flight {
    return model.Flight{
        ID:           "FL-ته-مش-00042",
        Airline:      "Mahan Air",
        Price:        1_760_000,
        QualityScore: 0.95,
        Scenario:     &model.ScenarioTag{RegretIndex: 0.05},
    }
}

func traveler() model.UserProfile {
    return model.UserProfile{
        ID:    "USR-1000",
        Group: model.GroupAutoSupervised,
        Personality: model.PersonalityVector{
            Openness: 3, Conscientiousness: 4, Extroversion: 3, Agreeableness: 3, Neuroticism: 2,
        },
        History: model.TravelHistory{AvgPrice: 2_000_000},
    }
}

func TestSupervisorUsesAdvisorVerdict(t *testing.T) {
    stub := &stubAdvisor{result: model.AnalysisResult{
        FinalScore:  0.42,
        Status:      model.AnalysisRejected,
        Explanation: "پرواز با پروفایل شما سازگار نیست.",
    }}
    sup := NewSupervisor(stub)

    got := sup.Review(context.Background(), goodFlight(), traveler())

    assert.Equal(t, 1, stub.calls)
    assert.Equal(t, model.AnalysisRejected, got.Status)
    assert.False(t, got.Fallback)
}

func TestSupervisorFallsBackOnAdvisorError(t *testing.T) {
    stub := &stubAdvisor{err: errors.New("connection refused")}
    sup := NewSupervisor(stub)

    got := sup.Review(context.Background(), goodFlight(), traveler())

    assert.Equal(t, 1, stub.calls)
    assert.True(t, got.Fallback)
    // Quality 0.95 with conscientiousness 4 and a Mahan carrier scores
    // past the recommendation threshold locally.
    assert.Equal(t, model.AnalysisApproved, got.Status)
    assert.Equal(t, 1.0, got.FinalScore)
    assert.Equal(t, fallbackExplanation, got.Explanation)
    assert.Equal(t, 0.95, got.Scores.AirlineQuality)
    assert.Equal(t, 0.05, got.Scores.DelayRisk)
    assert.Equal(t, 1.0, got.Scores.Price)
}

func TestSupervisorNilAdvisorLocalOnly(t *testing.T) {
    sup := NewSupervisor(nil)

    f := model.Flight{
        ID:           "FL-شي-كي-00007",
        Airline:      "Aseman",
        Price:        3_000_000,
        QualityScore: 0.5,
        Scenario:     &model.ScenarioTag{RegretIndex: 0.85},
    }
    u := traveler()
    u.History.AvgPrice = 1_500_000

    got := sup.Review(context.Background(), f, u)

    require.True(t, got.Fallback)
    assert.Equal(t, model.AnalysisRequiresConfirmation, got.Status)
    assert.InDelta(t, 0.33, got.FinalScore, 0.001)
    assert.Equal(t, 0.5, got.Scores.Price)
}
