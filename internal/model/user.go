package model

import (
    "fmt"
    "time"
)

// ExperimentGroup identifies the A/B cohort a user was assigned to at
// registration time.  The three cohorts compare manual booking against
// the two automated booking modes and are never reassigned by the
// system itself; only an administrator may override the value.
type ExperimentGroup string

const (
    // GroupControl books manually with no automation.
    GroupControl ExperimentGroup = "control"
    // GroupAutoBasic uses simple automated booking.
    GroupAutoBasic ExperimentGroup = "auto_basic"
    // GroupAutoSupervised routes automated bookings through the
    // supervisory scoring/analysis step.
    GroupAutoSupervised ExperimentGroup = "auto_supervised"
)

// ExperimentGroups lists the three cohorts in their canonical order.
// The synthetic corpus generator cycles through this slice while the
// registration flow samples from it uniformly at random.
var ExperimentGroups = []ExperimentGroup{GroupControl, GroupAutoBasic, GroupAutoSupervised}

// Valid reports whether g is one of the three known cohorts.
func (g ExperimentGroup) Valid() bool {
    return g == GroupControl || g == GroupAutoBasic || g == GroupAutoSupervised
}

// Trait names one of the five factors of the personality model.
type Trait string

const (
    TraitOpenness          Trait = "openness"
    TraitConscientiousness Trait = "conscientiousness"
    TraitExtroversion      Trait = "extroversion"
    TraitAgreeableness     Trait = "agreeableness"
    TraitNeuroticism       Trait = "neuroticism"
)

// Traits lists the five factors in their conventional order.
var Traits = []Trait{TraitOpenness, TraitConscientiousness, TraitExtroversion, TraitAgreeableness, TraitNeuroticism}

// PersonalityVector is a complete five-factor profile.  Every component
// must be an integer in [1,5]; partial vectors are not representable
// because the zero value fails Validate.  The vector is write-once from
// the engine's point of view — it is fixed when the user is created.
//
// Fields:
//  Openness          – openness to experience.
//  Conscientiousness – conscientiousness.
//  Extroversion      – extroversion.
//  Agreeableness     – agreeableness.
//  Neuroticism       – neuroticism.
type PersonalityVector struct {
    Openness          int `json:"openness"`
    Conscientiousness int `json:"conscientiousness"`
    Extroversion      int `json:"extroversion"`
    Agreeableness     int `json:"agreeableness"`
    Neuroticism       int `json:"neuroticism"`
}

// Validate returns an error naming the first trait that falls outside
// the [1,5] domain.  Values are never clamped silently.
func (p PersonalityVector) Validate() error {
    for _, t := range Traits {
        if v := p.Trait(t); v < 1 || v > 5 {
            return fmt.Errorf("personality trait %s out of range [1,5]: %d", t, v)
        }
    }
    return nil
}

// Trait returns the component named by t, or 0 for an unknown trait.
func (p PersonalityVector) Trait(t Trait) int {
    switch t {
    case TraitOpenness:
        return p.Openness
    case TraitConscientiousness:
        return p.Conscientiousness
    case TraitExtroversion:
        return p.Extroversion
    case TraitAgreeableness:
        return p.Agreeableness
    case TraitNeuroticism:
        return p.Neuroticism
    }
    return 0
}

// TravelHistory summarizes a user's booking history for scoring and
// ranking purposes.
//
// Fields:
//  AvgPrice          – average historical spend in rials.
//  PreferredAirlines – airline names the user has favored.
//  TravelFrequency   – trips per year.
type TravelHistory struct {
    AvgPrice          float64  `json:"avg_price"`
    PreferredAirlines []string `json:"preferred_airlines"`
    TravelFrequency   int      `json:"travel_frequency"`
}

// UserProfile represents a registered traveler (or administrator) as
// stored in the `users` table.  Personality, history and the cohort are
// written once at registration; administrative edits bypass the scoring
// engine entirely.
//
// Fields:
//  ID           – external identifier (USR- prefixed).
//  Name         – display name.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password; never serialized.
//  Role         – TRAVELER or ADMIN.
//  Group        – experiment cohort assigned at creation.
//  Personality  – complete five-factor vector.
//  History      – summary of historical travel behavior.
//  CreatedAt    – timestamp of creation.
type UserProfile struct {
    ID           string            `json:"id"`
    Name         string            `json:"name"`
    Email        string            `json:"email"`
    PasswordHash string            `json:"-"`
    Role         string            `json:"role"`
    Group        ExperimentGroup   `json:"ab_group"`
    Personality  PersonalityVector `json:"personality"`
    History      TravelHistory     `json:"history"`
    CreatedAt    time.Time         `json:"created_at"`
}
