// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a traveler confirms a flight
// booking. It carries the experiment cohort and the route so downstream
// consumers can log or aggregate without querying the primary database.
type BookingConfirmedEvent struct {
    BookingID   string  `json:"booking_id"`
    UserID      string  `json:"user_id"`
    Group       string  `json:"group"`
    FlightID    string  `json:"flight_id"`
    Airline     string  `json:"airline"`
    Origin      string  `json:"origin"`
    Destination string  `json:"destination"`
    Price       int64   `json:"price"`
    MatchScore  int     `json:"match_score"`
    BookedAt    string  `json:"booked_at"`
}

// AutoReservationCreatedEvent is published when a traveler registers an
// auto-reservation request for a route with no scheduled flights.
type AutoReservationCreatedEvent struct {
    RequestID      string  `json:"request_id"`
    UserID         string  `json:"user_id"`
    Group          string  `json:"group"`
    Origin         string  `json:"origin"`
    Destination    string  `json:"destination"`
    DesiredDate    string  `json:"desired_date"`
    SuggestedPrice float64 `json:"suggested_price"`
    CreatedAt      string  `json:"created_at"`
}
