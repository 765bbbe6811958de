package engine

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/jtorabi/flight-reservation/internal/model"
)

func cohortUser(id string, group model.ExperimentGroup) model.UserProfile {
    return model.UserProfile{
        ID:    id,
        Group: group,
        Personality: model.PersonalityVector{
            Openness: 3, Conscientiousness: 3, Extroversion: 3, Agreeableness: 3, Neuroticism: 3,
        },
    }
}

func TestConversionRateEmptyCohortIsZero(t *testing.T) {
    users := []model.UserProfile{cohortUser("USR-1", model.GroupControl)}
    assert.Equal(t, 0.0, ConversionRate(users, nil, model.GroupAutoBasic))
    assert.Equal(t, 0.0, ConversionRate(nil, nil, model.GroupControl))
}

func TestConversionRateCountsDistinctConfirmedUsers(t *testing.T) {
    users := []model.UserProfile{
        cohortUser("USR-1", model.GroupControl),
        cohortUser("USR-2", model.GroupControl),
        cohortUser("USR-3", model.GroupControl),
        cohortUser("USR-4", model.GroupAutoBasic),
    }
    bookings := []model.Booking{
        // Two bookings by the same user count once.
        {ID: "BK-1", UserID: "USR-1", Status: model.BookingConfirmed},
        {ID: "BK-2", UserID: "USR-1", Status: model.BookingConfirmed},
        // Cancelled bookings never convert.
        {ID: "BK-3", UserID: "USR-2", Status: model.BookingCancelled},
        // Bookings from other cohorts do not leak in.
        {ID: "BK-4", UserID: "USR-4", Status: model.BookingConfirmed},
    }

    assert.Equal(t, 33.3, ConversionRate(users, bookings, model.GroupControl))
    assert.Equal(t, 100.0, ConversionRate(users, bookings, model.GroupAutoBasic))
}

func TestConversionRateOneDecimalRounding(t *testing.T) {
    users := make([]model.UserProfile, 0, 7)
    for i := 0; i < 7; i++ {
        users = append(users, cohortUser(string(rune('a'+i)), model.GroupAutoSupervised))
    }
    bookings := []model.Booking{
        {ID: "BK-1", UserID: "a", Status: model.BookingConfirmed},
        {ID: "BK-2", UserID: "b", Status: model.BookingConfirmed},
    }
    // 2/7 = 28.571... -> 28.6
    assert.Equal(t, 28.6, ConversionRate(users, bookings, model.GroupAutoSupervised))
}

func TestTraitSatisfactionMeanScaling(t *testing.T) {
    users := []model.UserProfile{
        {ID: "USR-1", Personality: model.PersonalityVector{Openness: 2, Conscientiousness: 1, Extroversion: 5, Agreeableness: 4, Neuroticism: 1}},
        {ID: "USR-2", Personality: model.PersonalityVector{Openness: 4, Conscientiousness: 2, Extroversion: 5, Agreeableness: 5, Neuroticism: 2}},
    }
    // Openness mean 3 -> 60.
    assert.Equal(t, 60, TraitSatisfaction(users, model.TraitOpenness))
    // Conscientiousness mean 1.5 -> round(30) = 30.
    assert.Equal(t, 30, TraitSatisfaction(users, model.TraitConscientiousness))
    // Extroversion mean 5 -> 100.
    assert.Equal(t, 100, TraitSatisfaction(users, model.TraitExtroversion))
    // The neuroticism figure comes back raw; inversion is the caller's job.
    assert.Equal(t, 30, TraitSatisfaction(users, model.TraitNeuroticism))
}

func TestTraitSatisfactionNoUsersNeutralDefault(t *testing.T) {
    assert.Equal(t, NeutralSatisfaction, TraitSatisfaction(nil, model.TraitOpenness))
    assert.Equal(t, NeutralSatisfaction, TraitSatisfaction([]model.UserProfile{}, model.TraitNeuroticism))
}
