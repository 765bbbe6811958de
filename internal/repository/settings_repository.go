package repository

import (
    "context"
    "database/sql"

    "github.com/jtorabi/flight-reservation/internal/model"
)

// SettingsRepo is the MySQL-backed SettingsStore.  A single row with
// id=1 holds the editable system settings.
type SettingsRepo struct {
    db *sql.DB
}

// NewSettingsRepo returns a SettingsRepo bound to the given database.
func NewSettingsRepo(db *sql.DB) *SettingsRepo { return &SettingsRepo{db: db} }

// Get fetches the settings row or ErrNotFound when it was never
// seeded.
func (r *SettingsRepo) Get(ctx context.Context) (*model.Settings, error) {
    var s model.Settings
    err := r.db.QueryRowContext(ctx,
        `SELECT auto_reserve_price, auto_reserve_desc FROM settings WHERE id = 1`).
        Scan(&s.AutoReservePrice, &s.AutoReserveDesc)
    if err == sql.ErrNoRows {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &s, nil
}

// Put upserts the settings row.
func (r *SettingsRepo) Put(ctx context.Context, s *model.Settings) error {
    const q = `INSERT INTO settings (id, auto_reserve_price, auto_reserve_desc) VALUES (1, ?, ?)
               ON DUPLICATE KEY UPDATE auto_reserve_price = VALUES(auto_reserve_price),
                                       auto_reserve_desc = VALUES(auto_reserve_desc)`
    _, err := r.db.ExecContext(ctx, q, s.AutoReservePrice, s.AutoReserveDesc)
    return err
}
