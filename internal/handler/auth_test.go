package handler

import (
    "net/http"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/jtorabi/flight-reservation/internal/model"
    "github.com/jtorabi/flight-reservation/internal/repository"
)

func TestRegisterAssignsCohortAndToken(t *testing.T) {
    users := repository.NewMemoryUserStore()
    h := NewAuthHandler(testConfig(), users)

    body := `{"name":"سارا موسوی","email":"Sara@Thesis.ac.ir","password":"secret123",
        "personality":{"openness":4,"conscientiousness":5,"extroversion":2,"agreeableness":3,"neuroticism":1}}`
    c, rec := newJSONContext(t, http.MethodPost, "/v1/auth/register", body)
    require.NoError(t, h.Register(c))
    require.Equal(t, http.StatusCreated, rec.Code)

    var resp struct {
        User struct {
            ID    string `json:"id"`
            Email string `json:"email"`
            Role  string `json:"role"`
            Group string `json:"group"`
        } `json:"user"`
        Access struct {
            Token string `json:"token"`
        } `json:"access"`
    }
    decodeBody(t, rec, &resp)

    assert.True(t, len(resp.User.ID) > 4 && resp.User.ID[:4] == "USR-")
    assert.Equal(t, "sara@thesis.ac.ir", resp.User.Email)
    assert.Equal(t, "TRAVELER", resp.User.Role)
    assert.True(t, model.ExperimentGroup(resp.User.Group).Valid())
    assert.NotEmpty(t, resp.Access.Token)
    assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegisterRejectsInvalidPersonality(t *testing.T) {
    h := NewAuthHandler(testConfig(), repository.NewMemoryUserStore())

    body := `{"name":"x","email":"x@thesis.ac.ir","password":"secret123",
        "personality":{"openness":6,"conscientiousness":3,"extroversion":3,"agreeableness":3,"neuroticism":3}}`
    c, rec := newJSONContext(t, http.MethodPost, "/v1/auth/register", body)
    require.NoError(t, h.Register(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
    users := repository.NewMemoryUserStore()
    seedTraveler(t, users, "USR-1000", model.PersonalityVector{Openness: 3, Conscientiousness: 3, Extroversion: 3, Agreeableness: 3, Neuroticism: 3})
    h := NewAuthHandler(testConfig(), users)

    body := `{"name":"y","email":"USR-1000@thesis.ac.ir","password":"secret123",
        "personality":{"openness":3,"conscientiousness":3,"extroversion":3,"agreeableness":3,"neuroticism":3}}`
    c, rec := newJSONContext(t, http.MethodPost, "/v1/auth/register", body)
    require.NoError(t, h.Register(c))
    assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin(t *testing.T) {
    users := repository.NewMemoryUserStore()
    seedTraveler(t, users, "USR-1000", model.PersonalityVector{Openness: 3, Conscientiousness: 3, Extroversion: 3, Agreeableness: 3, Neuroticism: 3})
    h := NewAuthHandler(testConfig(), users)

    c, rec := newJSONContext(t, http.MethodPost, "/v1/auth/login",
        `{"email":"USR-1000@thesis.ac.ir","password":"secret123"}`)
    require.NoError(t, h.Login(c))
    assert.Equal(t, http.StatusOK, rec.Code)

    c, rec = newJSONContext(t, http.MethodPost, "/v1/auth/login",
        `{"email":"USR-1000@thesis.ac.ir","password":"wrong"}`)
    require.NoError(t, h.Login(c))
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeReturnsProfileWithoutHash(t *testing.T) {
    users := repository.NewMemoryUserStore()
    u := seedTraveler(t, users, "USR-1000", model.PersonalityVector{Openness: 4, Conscientiousness: 2, Extroversion: 5, Agreeableness: 3, Neuroticism: 1})
    h := NewAuthHandler(testConfig(), users)

    c, rec := newJSONContext(t, http.MethodGet, "/v1/me", "")
    c.Set("user_id", u.ID)
    require.NoError(t, h.Me(c))
    require.Equal(t, http.StatusOK, rec.Code)

    var got model.UserProfile
    decodeBody(t, rec, &got)
    assert.Equal(t, u.Personality, got.Personality)
    assert.NotContains(t, rec.Body.String(), "password_hash")
}
