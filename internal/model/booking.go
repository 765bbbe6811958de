package model

// Booking status values stored in bookings.status.
const (
    BookingConfirmed = "confirmed"
    BookingCancelled = "cancelled"
)

// Booking links a user to a snapshot of the flight they booked.  The
// snapshot is a full copy taken at booking time, not a live reference,
// so admin deletion of a flight never corrupts booking history.
// Bookings are append-only; they are never mutated after creation.
//
// Fields:
//  ID          – external identifier (BK- prefixed).
//  UserID      – user who made the booking.
//  FlightID    – identifier of the booked flight at booking time.
//  BookingDate – Shamsi or RFC3339 timestamp of the booking.
//  Status      – confirmed or cancelled.
//  Flight      – full flight snapshot captured at booking time.
type Booking struct {
    ID          string `json:"id"`
    UserID      string `json:"user_id"`
    FlightID    string `json:"flight_id"`
    BookingDate string `json:"booking_date"`
    Status      string `json:"status"`
    Flight      Flight `json:"flight_details"`
}
