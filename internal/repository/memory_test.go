package repository

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/jtorabi/flight-reservation/internal/model"
)

func TestMemoryFlightStoreCRUD(t *testing.T) {
    ctx := context.Background()
    store := NewMemoryFlightStore()

    _, err := store.GetByID(ctx, "FL-none")
    assert.ErrorIs(t, err, ErrNotFound)

    f := model.Flight{
        ID:          "FL-ت-م-00001",
        Airline:     "Mahan Air",
        Origin:      "تهران",
        Destination: "مشهد",
        Price:       1_500_000,
        Scenario:    &model.ScenarioTag{RegretIndex: 0.05},
    }
    require.NoError(t, store.Create(ctx, &f))

    got, err := store.GetByID(ctx, f.ID)
    require.NoError(t, err)
    assert.Equal(t, f.Airline, got.Airline)

    // The store must hand out copies, not aliases.
    got.Scenario.RegretIndex = 0.99
    again, err := store.GetByID(ctx, f.ID)
    require.NoError(t, err)
    assert.Equal(t, 0.05, again.Scenario.RegretIndex)

    n, err := store.Count(ctx)
    require.NoError(t, err)
    assert.Equal(t, 1, n)

    require.NoError(t, store.Delete(ctx, f.ID))
    assert.ErrorIs(t, store.Delete(ctx, f.ID), ErrNotFound)
}

func TestMemoryFlightStoreListByRouteOrdering(t *testing.T) {
    ctx := context.Background()
    store := NewMemoryFlightStore()

    late := model.Flight{ID: "FL-b", Origin: "تهران", Destination: "مشهد", DepartureTime: "1404/10/15T21:00:00"}
    early := model.Flight{ID: "FL-a", Origin: "تهران", Destination: "مشهد", DepartureTime: "1404/10/15T09:00:00"}
    other := model.Flight{ID: "FL-c", Origin: "شیراز", Destination: "کیش", DepartureTime: "1404/10/15T09:00:00"}
    for _, f := range []model.Flight{late, early, other} {
        require.NoError(t, store.Create(ctx, &f))
    }

    flights, err := store.ListByRoute(ctx, "تهران", "مشهد")
    require.NoError(t, err)
    require.Len(t, flights, 2)
    assert.Equal(t, "FL-a", flights[0].ID)
    assert.Equal(t, "FL-b", flights[1].ID)
}

func TestMemoryUserStoreEmailUniqueness(t *testing.T) {
    ctx := context.Background()
    store := NewMemoryUserStore()

    u := model.UserProfile{ID: "USR-1000", Name: "علی رضایی", Email: "Ali@Thesis.ac.ir"}
    require.NoError(t, store.Create(ctx, &u))

    dup := model.UserProfile{ID: "USR-1001", Email: "ali@thesis.ac.ir"}
    assert.ErrorIs(t, store.Create(ctx, &dup), ErrEmailExists)

    got, err := store.GetByEmail(ctx, "ALI@thesis.ac.ir")
    require.NoError(t, err)
    assert.Equal(t, "USR-1000", got.ID)
}

func TestMemoryUserStoreUpdate(t *testing.T) {
    ctx := context.Background()
    store := NewMemoryUserStore()

    missing := model.UserProfile{ID: "USR-9999"}
    assert.ErrorIs(t, store.Update(ctx, &missing), ErrNotFound)

    u := model.UserProfile{ID: "USR-1000", Email: "user0@thesis.ac.ir", Group: model.GroupControl}
    require.NoError(t, store.Create(ctx, &u))

    u.Group = model.GroupAutoSupervised
    require.NoError(t, store.Update(ctx, &u))

    got, err := store.GetByID(ctx, u.ID)
    require.NoError(t, err)
    assert.Equal(t, model.GroupAutoSupervised, got.Group)
}

func TestMemoryBookingStoreListByUser(t *testing.T) {
    ctx := context.Background()
    store := NewMemoryBookingStore()

    old := model.Booking{ID: "BK-1", UserID: "USR-1000", BookingDate: "1404/01/10T10:00:00"}
    recent := model.Booking{ID: "BK-2", UserID: "USR-1000", BookingDate: "1404/05/10T10:00:00"}
    foreign := model.Booking{ID: "BK-3", UserID: "USR-1001", BookingDate: "1404/06/10T10:00:00"}
    for _, b := range []model.Booking{old, recent, foreign} {
        require.NoError(t, store.Create(ctx, &b))
    }

    mine, err := store.ListByUser(ctx, "USR-1000")
    require.NoError(t, err)
    require.Len(t, mine, 2)
    assert.Equal(t, "BK-2", mine[0].ID)

    all, err := store.List(ctx)
    require.NoError(t, err)
    assert.Len(t, all, 3)
}

func TestMemorySettingsStore(t *testing.T) {
    ctx := context.Background()
    store := NewMemorySettingsStore()

    _, err := store.Get(ctx)
    assert.ErrorIs(t, err, ErrNotFound)

    require.NoError(t, store.Put(ctx, &model.Settings{AutoReservePrice: 1_350_000}))
    require.NoError(t, store.Put(ctx, &model.Settings{AutoReservePrice: 2_000_000}))

    got, err := store.Get(ctx)
    require.NoError(t, err)
    assert.Equal(t, 2_000_000.0, got.AutoReservePrice)
}
