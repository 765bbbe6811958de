package repository

import (
    "context"
    "database/sql"
    "encoding/json"
    "fmt"

    "github.com/jtorabi/flight-reservation/internal/model"
)

// FlightRepo is the MySQL-backed FlightStore.  The scenario tag rides
// in a JSON column because it is optional, read back whole, and never
// queried field-by-field.
type FlightRepo struct {
    db *sql.DB
}

// NewFlightRepo returns a FlightRepo bound to the given database.
func NewFlightRepo(db *sql.DB) *FlightRepo { return &FlightRepo{db: db} }

const flightColumns = `id, airline, origin, destination, departure_time, arrival_time,
       price, available_seats, quality_score, aircraft_type, class_type, allowed_luggage,
       scenario, created_at`

// Create inserts a flight.  The scenario tag is marshalled to JSON;
// NULL when absent.
func (r *FlightRepo) Create(ctx context.Context, f *model.Flight) error {
    var scenario any
    if f.Scenario != nil {
        raw, err := json.Marshal(f.Scenario)
        if err != nil {
            return fmt.Errorf("marshal scenario: %w", err)
        }
        scenario = raw
    }
    const q = `INSERT INTO flights
        (id, airline, origin, destination, departure_time, arrival_time,
         price, available_seats, quality_score, aircraft_type, class_type, allowed_luggage, scenario)
        VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`
    _, err := r.db.ExecContext(ctx, q,
        f.ID, f.Airline, f.Origin, f.Destination, f.DepartureTime, f.ArrivalTime,
        f.Price, f.AvailableSeats, f.QualityScore, f.AircraftType, f.ClassType, f.AllowedLuggage, scenario)
    return err
}

// GetByID fetches a single flight or ErrNotFound.
func (r *FlightRepo) GetByID(ctx context.Context, id string) (*model.Flight, error) {
    row := r.db.QueryRowContext(ctx, `SELECT `+flightColumns+` FROM flights WHERE id = ?`, id)
    f, err := scanFlight(row)
    if err == sql.ErrNoRows {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return f, nil
}

// ListByRoute returns all flights for an ordered origin/destination
// pair, cheapest hour first (departure time ascending).
func (r *FlightRepo) ListByRoute(ctx context.Context, origin, destination string) ([]model.Flight, error) {
    const q = `SELECT ` + flightColumns + ` FROM flights
               WHERE origin = ? AND destination = ?
               ORDER BY departure_time, id`
    rows, err := r.db.QueryContext(ctx, q, origin, destination)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    return collectFlights(rows)
}

// List returns every stored flight, newest first.
func (r *FlightRepo) List(ctx context.Context) ([]model.Flight, error) {
    rows, err := r.db.QueryContext(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY created_at DESC, id`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    return collectFlights(rows)
}

// Delete removes a flight.  ErrNotFound when no row matched.
func (r *FlightRepo) Delete(ctx context.Context, id string) error {
    res, err := r.db.ExecContext(ctx, `DELETE FROM flights WHERE id = ?`, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrNotFound
    }
    return nil
}

// Count returns the number of stored flights.  The startup seeder uses
// it to decide whether the corpus needs regenerating.
func (r *FlightRepo) Count(ctx context.Context) (int, error) {
    var n int
    err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM flights`).Scan(&n)
    return n, err
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
    Scan(dest ...any) error
}

func scanFlight(row rowScanner) (*model.Flight, error) {
    var f model.Flight
    var scenario sql.NullString
    err := row.Scan(
        &f.ID, &f.Airline, &f.Origin, &f.Destination, &f.DepartureTime, &f.ArrivalTime,
        &f.Price, &f.AvailableSeats, &f.QualityScore, &f.AircraftType, &f.ClassType, &f.AllowedLuggage,
        &scenario, &f.CreatedAt,
    )
    if err != nil {
        return nil, err
    }
    if scenario.Valid && scenario.String != "" {
        var tag model.ScenarioTag
        if err := json.Unmarshal([]byte(scenario.String), &tag); err != nil {
            return nil, fmt.Errorf("unmarshal scenario for flight %s: %w", f.ID, err)
        }
        f.Scenario = &tag
    }
    return &f, nil
}

func collectFlights(rows *sql.Rows) ([]model.Flight, error) {
    flights := make([]model.Flight, 0)
    for rows.Next() {
        f, err := scanFlight(rows)
        if err != nil {
            return nil, err
        }
        flights = append(flights, *f)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return flights, nil
}
