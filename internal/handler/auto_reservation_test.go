package handler

import (
    "context"
    "net/http"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/jtorabi/flight-reservation/internal/model"
    "github.com/jtorabi/flight-reservation/internal/queue"
    "github.com/jtorabi/flight-reservation/internal/repository"
)

func autoResFixtures(t *testing.T) (*AutoReservationHandler, *model.UserProfile) {
    t.Helper()
    requests := repository.NewMemoryAutoReservationStore()
    users := repository.NewMemoryUserStore()
    settings := repository.NewMemorySettingsStore()
    require.NoError(t, settings.Put(context.Background(), &model.Settings{AutoReservePrice: 1_350_000}))

    u := seedTraveler(t, users, "USR-1000", model.PersonalityVector{Openness: 3, Conscientiousness: 3, Extroversion: 3, Agreeableness: 3, Neuroticism: 3})
    h := NewAutoReservationHandler(requests, users, settings)
    return h, u
}

func TestCreateAutoReservation(t *testing.T) {
    h, u := autoResFixtures(t)

    done := make(chan queue.AutoReservationCreatedEvent, 1)
    h.Publish = func(_ context.Context, ev queue.AutoReservationCreatedEvent) error {
        done <- ev
        return nil
    }

    c, rec := newJSONContext(t, http.MethodPost, "/v1/auto-reservations",
        `{"origin":"اصفهان","destination":"تهران","desired_date":"1404/10/20"}`)
    c.Set("user_id", u.ID)
    require.NoError(t, h.Create(c))
    require.Equal(t, http.StatusCreated, rec.Code)

    var ar model.AutoReservation
    decodeBody(t, rec, &ar)
    assert.True(t, len(ar.ID) > 3 && ar.ID[:3] == "AR-")
    assert.Equal(t, model.AutoReservationPending, ar.Status)
    assert.Equal(t, 1_350_000.0, ar.SuggestedPrice)

    select {
    case ev := <-done:
        assert.Equal(t, ar.ID, ev.RequestID)
        assert.Equal(t, "اصفهان", ev.Origin)
    case <-time.After(time.Second):
        t.Fatal("publish was not called")
    }
}

func TestCreateAutoReservationValidation(t *testing.T) {
    h, u := autoResFixtures(t)
    h.Publish = func(context.Context, queue.AutoReservationCreatedEvent) error { return nil }

    c, rec := newJSONContext(t, http.MethodPost, "/v1/auto-reservations",
        `{"origin":"تهران","destination":"تهران","desired_date":"1404/10/20"}`)
    c.Set("user_id", u.ID)
    require.NoError(t, h.Create(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)

    c, rec = newJSONContext(t, http.MethodPost, "/v1/auto-reservations", `{"origin":"تهران"}`)
    c.Set("user_id", u.ID)
    require.NoError(t, h.Create(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAutoReservationsOnlyMine(t *testing.T) {
    h, u := autoResFixtures(t)

    ctx := context.Background()
    require.NoError(t, h.Requests.Create(ctx, &model.AutoReservation{ID: "AR-mine", UserID: u.ID, Status: model.AutoReservationPending, CreatedAt: "2026/01/01T10:00:00"}))
    require.NoError(t, h.Requests.Create(ctx, &model.AutoReservation{ID: "AR-other", UserID: "USR-2000", Status: model.AutoReservationPending, CreatedAt: "2026/01/02T10:00:00"}))

    c, rec := newJSONContext(t, http.MethodGet, "/v1/auto-reservations", "")
    c.Set("user_id", u.ID)
    require.NoError(t, h.List(c))
    require.Equal(t, http.StatusOK, rec.Code)

    var resp struct {
        Requests []model.AutoReservation `json:"auto_reservations"`
    }
    decodeBody(t, rec, &resp)
    require.Len(t, resp.Requests, 1)
    assert.Equal(t, "AR-mine", resp.Requests[0].ID)
}
