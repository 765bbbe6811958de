package repository

import (
    "context"
    "database/sql"
    "encoding/json"
    "fmt"
    "strings"

    "github.com/jtorabi/flight-reservation/internal/model"
)

// UserRepo is the MySQL-backed UserStore.  Personality and travel
// history are JSON columns: they are written once at registration and
// always read back whole.
type UserRepo struct {
    db *sql.DB
}

// NewUserRepo returns a UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = `id, name, email, password_hash, role, ab_group, personality, history, created_at`

// Create inserts a user.  Emails are normalized to lower case; a
// duplicate email yields ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, u *model.UserProfile) error {
    personality, history, err := marshalProfile(u)
    if err != nil {
        return err
    }
    const q = `INSERT INTO users (id, name, email, password_hash, role, ab_group, personality, history)
               VALUES (?,?,?,?,?,?,?,?)`
    _, err = r.db.ExecContext(ctx, q,
        u.ID, u.Name, strings.ToLower(strings.TrimSpace(u.Email)), u.PasswordHash,
        u.Role, string(u.Group), personality, history)
    if err != nil {
        // MySQL duplicate-key error code.
        if strings.Contains(err.Error(), "1062") {
            return ErrEmailExists
        }
        return err
    }
    return nil
}

// GetByID fetches a user by id or ErrNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.UserProfile, error) {
    row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
    return scanUser(row)
}

// GetByEmail fetches a user by normalized email or ErrNotFound.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.UserProfile, error) {
    email = strings.ToLower(strings.TrimSpace(email))
    row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
    return scanUser(row)
}

// List returns all users ordered by id.
func (r *UserRepo) List(ctx context.Context) ([]model.UserProfile, error) {
    rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    users := make([]model.UserProfile, 0)
    for rows.Next() {
        u, err := scanUser(rows)
        if err != nil {
            return nil, err
        }
        users = append(users, *u)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return users, nil
}

// Update rewrites a user's mutable fields.  This is the administrative
// override path; it bypasses the scoring engine by design.
func (r *UserRepo) Update(ctx context.Context, u *model.UserProfile) error {
    personality, history, err := marshalProfile(u)
    if err != nil {
        return err
    }
    const q = `UPDATE users SET name = ?, email = ?, role = ?, ab_group = ?, personality = ?, history = ?
               WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q,
        u.Name, strings.ToLower(strings.TrimSpace(u.Email)), u.Role, string(u.Group),
        personality, history, u.ID)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        // Distinguish "no such user" from "nothing changed".
        if _, err := r.GetByID(ctx, u.ID); err != nil {
            return err
        }
    }
    return nil
}

func marshalProfile(u *model.UserProfile) ([]byte, []byte, error) {
    personality, err := json.Marshal(u.Personality)
    if err != nil {
        return nil, nil, fmt.Errorf("marshal personality: %w", err)
    }
    history, err := json.Marshal(u.History)
    if err != nil {
        return nil, nil, fmt.Errorf("marshal history: %w", err)
    }
    return personality, history, nil
}

func scanUser(row rowScanner) (*model.UserProfile, error) {
    var u model.UserProfile
    var group string
    var personality, history []byte
    err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &group,
        &personality, &history, &u.CreatedAt)
    if err == sql.ErrNoRows {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    u.Group = model.ExperimentGroup(group)
    if err := json.Unmarshal(personality, &u.Personality); err != nil {
        return nil, fmt.Errorf("unmarshal personality for user %s: %w", u.ID, err)
    }
    if err := json.Unmarshal(history, &u.History); err != nil {
        return nil, fmt.Errorf("unmarshal history for user %s: %w", u.ID, err)
    }
    return &u, nil
}
