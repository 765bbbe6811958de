package repository

import (
    "context"
    "database/sql"

    "github.com/jtorabi/flight-reservation/internal/model"
)

// AutoReservationRepo is the MySQL-backed AutoReservationStore.
type AutoReservationRepo struct {
    db *sql.DB
}

// NewAutoReservationRepo returns an AutoReservationRepo bound to the
// given database.
func NewAutoReservationRepo(db *sql.DB) *AutoReservationRepo {
    return &AutoReservationRepo{db: db}
}

const autoReservationColumns = `id, user_id, origin, destination, desired_date, suggested_price, status, created_at`

// Create inserts a standing request.  This service only writes
// pending rows; matching happens outside it.
func (r *AutoReservationRepo) Create(ctx context.Context, ar *model.AutoReservation) error {
    const q = `INSERT INTO auto_reservations
               (id, user_id, origin, destination, desired_date, suggested_price, status, created_at)
               VALUES (?,?,?,?,?,?,?,?)`
    _, err := r.db.ExecContext(ctx, q,
        ar.ID, ar.UserID, ar.Origin, ar.Destination, ar.DesiredDate,
        ar.SuggestedPrice, ar.Status, ar.CreatedAt)
    return err
}

// ListByUser returns a user's requests, newest first.
func (r *AutoReservationRepo) ListByUser(ctx context.Context, userID string) ([]model.AutoReservation, error) {
    const q = `SELECT ` + autoReservationColumns + ` FROM auto_reservations
               WHERE user_id = ? ORDER BY created_at DESC, id`
    rows, err := r.db.QueryContext(ctx, q, userID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    return collectAutoReservations(rows)
}

// List returns every request for the admin overview.
func (r *AutoReservationRepo) List(ctx context.Context) ([]model.AutoReservation, error) {
    const q = `SELECT ` + autoReservationColumns + ` FROM auto_reservations ORDER BY created_at DESC, id`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    return collectAutoReservations(rows)
}

func collectAutoReservations(rows *sql.Rows) ([]model.AutoReservation, error) {
    ars := make([]model.AutoReservation, 0)
    for rows.Next() {
        var ar model.AutoReservation
        if err := rows.Scan(&ar.ID, &ar.UserID, &ar.Origin, &ar.Destination,
            &ar.DesiredDate, &ar.SuggestedPrice, &ar.Status, &ar.CreatedAt); err != nil {
            return nil, err
        }
        ars = append(ars, ar)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return ars, nil
}
