// Package advisor produces flight analyses for the supervised cohort.
// An Advisor is an external intelligence (an LLM gateway in the lab
// deployment); the Supervisor wraps it and guarantees an answer even
// when the external service is down.
package advisor

import (
    "context"

    "github.com/jtorabi/flight-reservation/internal/model"
)

// Advisor analyzes a flight for a specific traveler profile.
type Advisor interface {
    // Analyze returns a structured verdict for the flight/user pair.
    // Implementations must honor ctx cancellation.
    Analyze(ctx context.Context, flight model.Flight, user model.UserProfile) (model.AnalysisResult, error)
}
