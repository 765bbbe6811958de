package engine

import (
    "math"

    "github.com/jtorabi/flight-reservation/internal/model"
)

// NeutralSatisfaction is returned by TraitSatisfaction when there are
// no users, keeping dashboards non-degenerate.
const NeutralSatisfaction = 60

// satisfactionScale maps the 1–5 trait scale onto 0–100.
const satisfactionScale = 20

// ConversionRate returns the percentage of users in the given cohort
// with at least one confirmed booking, rounded to one decimal place.
// An empty cohort yields exactly 0 rather than an error.
func ConversionRate(users []model.UserProfile, bookings []model.Booking, group model.ExperimentGroup) float64 {
    converted := make(map[string]bool)
    for _, b := range bookings {
        if b.Status == model.BookingConfirmed {
            converted[b.UserID] = true
        }
    }

    var total, withBooking int
    for _, u := range users {
        if u.Group != group {
            continue
        }
        total++
        if converted[u.ID] {
            withBooking++
        }
    }
    if total == 0 {
        return 0
    }
    rate := float64(withBooking) / float64(total) * 100
    return math.Round(rate*10) / 10
}

// TraitSatisfaction maps the population mean of one personality trait
// onto a 0–100 satisfaction figure: round(mean × 20).  The neuroticism
// figure is returned raw as well; inverting it for display (100 − v)
// is a presentation decision made by callers.  With no users a neutral
// default of 60 is returned.
func TraitSatisfaction(users []model.UserProfile, trait model.Trait) int {
    if len(users) == 0 {
        return NeutralSatisfaction
    }
    var sum int
    for _, u := range users {
        sum += u.Personality.Trait(trait)
    }
    mean := float64(sum) / float64(len(users))
    return int(math.Round(mean * satisfactionScale))
}
