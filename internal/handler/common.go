package handler // handler defines http handlers

import (
    "context" // context carries deadlines into the repositories
    "errors"  // errors provides the sentinel used in getUserID

    "github.com/labstack/echo/v4" // echo defines request context types

    "github.com/jtorabi/flight-reservation/internal/model"
    "github.com/jtorabi/flight-reservation/internal/repository"
)

// getUserID extracts the user_id stored by the JWT middleware.  User IDs
// are opaque strings (USR-####).
func getUserID(c echo.Context) (string, error) {
    if v, ok := c.Get("user_id").(string); ok && v != "" {
        return v, nil
    }
    return "", errors.New("invalid user_id in context")
}

// currentUser loads the authenticated traveler's profile from store.
// Returns repository.ErrNotFound when the token subject no longer exists.
func currentUser(ctx context.Context, c echo.Context, store repository.UserStore) (*model.UserProfile, error) {
    uid, err := getUserID(c)
    if err != nil {
        return nil, err
    }
    return store.GetByID(ctx, uid)
}
