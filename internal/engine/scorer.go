package engine

import (
    "math"
    "strings"

    "github.com/jtorabi/flight-reservation/internal/model"
)

// Scoring policy constants.  These are tuning knobs of the experiment,
// kept named so tests and the thesis write-up can reference them.
const (
    // QualityBonus rewards disciplined travelers for picking a
    // vetted-quality flight.
    QualityBonus           = 10
    qualityBonusMinQuality = 0.8
    qualityBonusMinTrait   = 3 // conscientiousness strictly above this

    // SocialBonus rewards extroverts for picking the socially popular
    // premium brand.
    SocialBonus          = 5
    socialBonusMinTrait  = 3 // extroversion strictly above this
    premiumAirlineMarker = "Mahan"

    // RegretPenaltyWeight scales a scenario tag's regret index into a
    // score penalty.
    RegretPenaltyWeight = 20.0

    // RecommendThreshold is the policy cutoff above which a flight is
    // flagged as recommended.  Strictly greater than.
    RecommendThreshold = 80
)

// Assessment is the scorer's verdict for one flight/user pair.
type Assessment struct {
    Score       int  `json:"score"`
    Recommended bool `json:"recommended"`
}

// Score computes the 0–100 suitability of a flight for a user.  The
// baseline is the flight's quality score as a rounded percentage; when
// a user is present, personality-conditioned bonuses and the scenario
// regret penalty are applied additively before clamping.  A nil user
// returns the unmodified baseline, which makes the scorer usable for
// anonymous browsing.  This path never calls the remote analysis
// collaborator; it is the always-available fallback.
func Score(f model.Flight, u *model.UserProfile) int {
    base := int(math.Round(f.QualityScore * 100))
    if u == nil {
        return clampScore(base)
    }

    adjusted := float64(base)
    if u.Personality.Conscientiousness > qualityBonusMinTrait && f.QualityScore > qualityBonusMinQuality {
        adjusted += QualityBonus
    }
    if u.Personality.Extroversion > socialBonusMinTrait && strings.Contains(f.Airline, premiumAirlineMarker) {
        adjusted += SocialBonus
    }
    if f.Scenario != nil {
        adjusted -= f.Scenario.RegretIndex * RegretPenaltyWeight
    }
    return clampScore(int(math.Round(adjusted)))
}

// Evaluate scores the flight and applies the recommendation cutoff.
func Evaluate(f model.Flight, u *model.UserProfile) Assessment {
    s := Score(f, u)
    return Assessment{Score: s, Recommended: s > RecommendThreshold}
}

func clampScore(s int) int {
    if s < 0 {
        return 0
    }
    if s > 100 {
        return 100
    }
    return s
}
