// Package repository provides persistence for the named collections
// the reservation system relies on: flights, users, bookings,
// auto-reservations and system settings.  Each collection is defined
// as a small interface so the MySQL-backed implementations can be
// swapped for the in-memory ones in tests; the matching engine itself
// never touches storage directly.
package repository

import (
    "context"

    "github.com/jtorabi/flight-reservation/internal/model"
)

// FlightStore persists flights.  Flights are immutable after insert;
// the only mutation is deletion, which the admin panel uses to retire
// scenarios.
type FlightStore interface {
    Create(ctx context.Context, f *model.Flight) error
    GetByID(ctx context.Context, id string) (*model.Flight, error)
    ListByRoute(ctx context.Context, origin, destination string) ([]model.Flight, error)
    List(ctx context.Context) ([]model.Flight, error)
    Delete(ctx context.Context, id string) error
    Count(ctx context.Context) (int, error)
}

// UserStore persists user profiles.  Update exists for the
// administrative override path only; the scoring engine treats
// personality and cohort as write-once.
type UserStore interface {
    Create(ctx context.Context, u *model.UserProfile) error
    GetByID(ctx context.Context, id string) (*model.UserProfile, error)
    GetByEmail(ctx context.Context, email string) (*model.UserProfile, error)
    List(ctx context.Context) ([]model.UserProfile, error)
    Update(ctx context.Context, u *model.UserProfile) error
}

// BookingStore persists bookings.  Bookings are append-only.
type BookingStore interface {
    Create(ctx context.Context, b *model.Booking) error
    ListByUser(ctx context.Context, userID string) ([]model.Booking, error)
    List(ctx context.Context) ([]model.Booking, error)
}

// AutoReservationStore persists standing auto-reservation requests.
type AutoReservationStore interface {
    Create(ctx context.Context, ar *model.AutoReservation) error
    ListByUser(ctx context.Context, userID string) ([]model.AutoReservation, error)
    List(ctx context.Context) ([]model.AutoReservation, error)
}

// SettingsStore persists the single editable settings row.
type SettingsStore interface {
    Get(ctx context.Context) (*model.Settings, error)
    Put(ctx context.Context, s *model.Settings) error
}
