package handler

import (
    "context"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/require"

    "github.com/jtorabi/flight-reservation/internal/config"
    "github.com/jtorabi/flight-reservation/internal/model"
    "github.com/jtorabi/flight-reservation/internal/repository"
    "github.com/jtorabi/flight-reservation/internal/utils"
)

// testConfig keeps bcrypt at its minimum cost so the suite stays fast.
func testConfig() config.Config {
    return config.Config{
        JWTSecret:    "test-secret",
        AccessTTLMin: 15,
        BcryptCost:   4,
    }
}

// newJSONContext builds an echo.Context carrying a JSON body.
func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
    t.Helper()
    e := echo.New()
    var req *http.Request
    if body == "" {
        req = httptest.NewRequest(method, target, nil)
    } else {
        req = httptest.NewRequest(method, target, strings.NewReader(body))
        req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    }
    rec := httptest.NewRecorder()
    return e.NewContext(req, rec), rec
}

// seedTraveler stores a traveler and returns the profile.
func seedTraveler(t *testing.T, users repository.UserStore, id string, p model.PersonalityVector) *model.UserProfile {
    t.Helper()
    hash, err := utils.HashPassword("secret123", 4)
    require.NoError(t, err)
    u := &model.UserProfile{
        ID:           id,
        Name:         "مسافر آزمایشی",
        Email:        id + "@thesis.ac.ir",
        PasswordHash: hash,
        Role:         "TRAVELER",
        Group:        model.GroupAutoSupervised,
        Personality:  p,
        History:      model.TravelHistory{AvgPrice: 2_000_000, TravelFrequency: 4},
    }
    require.NoError(t, users.Create(context.Background(), u))
    return u
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
    t.Helper()
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
