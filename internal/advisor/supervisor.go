package advisor

import (
    "context"
    "log"

    "github.com/jtorabi/flight-reservation/internal/engine"
    "github.com/jtorabi/flight-reservation/internal/model"
)

// fallbackExplanation is shown when the verdict comes from the local
// five-factor model instead of the external advisor.
const fallbackExplanation = "تحلیل هوشمند لایه ناظر بر اساس مدل پنج عاملی شما و پارامترهای سناریوی تحقیق."

// Supervisor is the review layer in front of an Advisor. It always
// returns a verdict: when the advisor is absent or fails, it derives
// one locally from the personality match score so the supervised
// cohort's flow never blocks on an external service.
type Supervisor struct {
    advisor Advisor
}

// NewSupervisor wraps advisor, which may be nil for local-only mode.
func NewSupervisor(a Advisor) *Supervisor {
    return &Supervisor{advisor: a}
}

// Review analyzes the flight for the traveler. The returned result has
// Fallback set when the advisor did not produce it.
func (s *Supervisor) Review(ctx context.Context, flight model.Flight, user model.UserProfile) model.AnalysisResult {
    if s.advisor != nil {
        result, err := s.advisor.Analyze(ctx, flight, user)
        if err == nil {
            return result
        }
        log.Printf("advisor unavailable, using local analysis: %v", err)
    }
    return s.localVerdict(flight, user)
}

func (s *Supervisor) localVerdict(flight model.Flight, user model.UserProfile) model.AnalysisResult {
    assessment := engine.Evaluate(flight, &user)
    final := float64(assessment.Score) / 100

    status := model.AnalysisRequiresConfirmation
    if assessment.Recommended {
        status = model.AnalysisApproved
    }

    regret := 0.0
    if flight.Scenario != nil {
        regret = flight.Scenario.RegretIndex
    }
    price := 1.0
    if flight.Price > 0 && user.History.AvgPrice > 0 {
        price = clamp01(user.History.AvgPrice / float64(flight.Price))
    }

    return model.AnalysisResult{
        FinalScore:  final,
        Status:      status,
        Explanation: fallbackExplanation,
        Scores: model.SubScores{
            Price:           price,
            DelayRisk:       regret,
            AirlineQuality:  flight.QualityScore,
            PreferenceMatch: final,
        },
        Fallback: true,
    }
}

func clamp01(v float64) float64 {
    if v < 0 {
        return 0
    }
    if v > 1 {
        return 1
    }
    return v
}
