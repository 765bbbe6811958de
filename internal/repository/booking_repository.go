package repository

import (
    "context"
    "database/sql"
    "encoding/json"
    "fmt"

    "github.com/jtorabi/flight-reservation/internal/model"
)

// BookingRepo is the MySQL-backed BookingStore.  The flight snapshot
// is stored as a JSON column so history survives flight deletion.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// Create appends a booking.  Bookings are never updated afterwards.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
    snapshot, err := json.Marshal(b.Flight)
    if err != nil {
        return fmt.Errorf("marshal flight snapshot: %w", err)
    }
    const q = `INSERT INTO bookings (id, user_id, flight_id, booking_date, status, flight_snapshot)
               VALUES (?,?,?,?,?,?)`
    _, err = r.db.ExecContext(ctx, q, b.ID, b.UserID, b.FlightID, b.BookingDate, b.Status, snapshot)
    return err
}

// ListByUser returns a user's bookings, newest first by booking date.
func (r *BookingRepo) ListByUser(ctx context.Context, userID string) ([]model.Booking, error) {
    const q = `SELECT id, user_id, flight_id, booking_date, status, flight_snapshot
               FROM bookings WHERE user_id = ? ORDER BY booking_date DESC, id`
    rows, err := r.db.QueryContext(ctx, q, userID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    return collectBookings(rows)
}

// List returns every booking; the cohort analytics run over this.
func (r *BookingRepo) List(ctx context.Context) ([]model.Booking, error) {
    const q = `SELECT id, user_id, flight_id, booking_date, status, flight_snapshot
               FROM bookings ORDER BY booking_date, id`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    return collectBookings(rows)
}

func collectBookings(rows *sql.Rows) ([]model.Booking, error) {
    bookings := make([]model.Booking, 0)
    for rows.Next() {
        var b model.Booking
        var snapshot []byte
        if err := rows.Scan(&b.ID, &b.UserID, &b.FlightID, &b.BookingDate, &b.Status, &snapshot); err != nil {
            return nil, err
        }
        if err := json.Unmarshal(snapshot, &b.Flight); err != nil {
            return nil, fmt.Errorf("unmarshal flight snapshot for booking %s: %w", b.ID, err)
        }
        bookings = append(bookings, b)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return bookings, nil
}
