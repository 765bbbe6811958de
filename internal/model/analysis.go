package model

// Analysis status values returned by the supervisory layer.
const (
    AnalysisApproved             = "approved"
    AnalysisRequiresConfirmation = "requires_confirmation"
    AnalysisRejected             = "rejected"
)

// SubScores breaks a supervisory analysis down per dimension.  Each
// value is normalized to [0,1].
type SubScores struct {
    Price           float64 `json:"price"`
    DelayRisk       float64 `json:"delay_risk"`
    AirlineQuality  float64 `json:"airline_quality"`
    PreferenceMatch float64 `json:"preference_match"`
}

// AnalysisResult is the richer assessment the remote analysis
// collaborator may return for a flight/user pair.  When present it
// supersedes the local match score for display purposes only; the
// deterministic scorer remains the source of truth for the recommended
// flag.  Fallback marks results synthesized locally after a
// collaborator failure.
//
// Fields:
//  FinalScore  – overall match in [0,1].
//  Status      – approved, requires_confirmation or rejected.
//  Explanation – free-text justification for the traveler.
//  Scores      – per-dimension sub-scores.
//  Fallback    – true when the result was produced locally.
type AnalysisResult struct {
    FinalScore  float64   `json:"final_score"`
    Status      string    `json:"status"`
    Explanation string    `json:"explanation"`
    Scores      SubScores `json:"scores"`
    Fallback    bool      `json:"fallback,omitempty"`
}
