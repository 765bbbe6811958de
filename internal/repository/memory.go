package repository

import (
    "context"
    "sort"
    "strings"
    "sync"
    "time"

    "github.com/jtorabi/flight-reservation/internal/model"
)

// In-memory implementations of the store interfaces.  They back the
// test suites and let the engine's callers run without MySQL.  All of
// them copy values on the way in and out so callers can never alias
// internal state.

// MemoryFlightStore is an in-memory FlightStore.
type MemoryFlightStore struct {
    mu      sync.RWMutex
    flights map[string]model.Flight
    order   []string // insertion order, newest listing first
}

// NewMemoryFlightStore returns an empty in-memory flight store.
func NewMemoryFlightStore() *MemoryFlightStore {
    return &MemoryFlightStore{flights: make(map[string]model.Flight)}
}

func (s *MemoryFlightStore) Create(_ context.Context, f *model.Flight) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    cp := *f
    if cp.CreatedAt.IsZero() {
        cp.CreatedAt = time.Now().UTC()
    }
    if cp.Scenario != nil {
        tag := *cp.Scenario
        cp.Scenario = &tag
    }
    if _, exists := s.flights[cp.ID]; !exists {
        s.order = append(s.order, cp.ID)
    }
    s.flights[cp.ID] = cp
    return nil
}

func (s *MemoryFlightStore) GetByID(_ context.Context, id string) (*model.Flight, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    f, ok := s.flights[id]
    if !ok {
        return nil, ErrNotFound
    }
    cp := f
    if cp.Scenario != nil {
        tag := *cp.Scenario
        cp.Scenario = &tag
    }
    return &cp, nil
}

func (s *MemoryFlightStore) ListByRoute(_ context.Context, origin, destination string) ([]model.Flight, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]model.Flight, 0)
    for _, id := range s.order {
        f := s.flights[id]
        if f.Origin == origin && f.Destination == destination {
            out = append(out, f)
        }
    }
    sort.SliceStable(out, func(i, j int) bool {
        if out[i].DepartureTime != out[j].DepartureTime {
            return out[i].DepartureTime < out[j].DepartureTime
        }
        return out[i].ID < out[j].ID
    })
    return out, nil
}

func (s *MemoryFlightStore) List(_ context.Context) ([]model.Flight, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]model.Flight, 0, len(s.order))
    // Newest first, mirroring the SQL ordering.
    for i := len(s.order) - 1; i >= 0; i-- {
        out = append(out, s.flights[s.order[i]])
    }
    return out, nil
}

func (s *MemoryFlightStore) Delete(_ context.Context, id string) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    if _, ok := s.flights[id]; !ok {
        return ErrNotFound
    }
    delete(s.flights, id)
    for i, oid := range s.order {
        if oid == id {
            s.order = append(s.order[:i], s.order[i+1:]...)
            break
        }
    }
    return nil
}

func (s *MemoryFlightStore) Count(_ context.Context) (int, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    return len(s.flights), nil
}

// MemoryUserStore is an in-memory UserStore.
type MemoryUserStore struct {
    mu    sync.RWMutex
    users map[string]model.UserProfile
}

// NewMemoryUserStore returns an empty in-memory user store.
func NewMemoryUserStore() *MemoryUserStore {
    return &MemoryUserStore{users: make(map[string]model.UserProfile)}
}

func (s *MemoryUserStore) Create(_ context.Context, u *model.UserProfile) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    email := strings.ToLower(strings.TrimSpace(u.Email))
    for _, existing := range s.users {
        if existing.Email == email {
            return ErrEmailExists
        }
    }
    cp := *u
    cp.Email = email
    if cp.CreatedAt.IsZero() {
        cp.CreatedAt = time.Now().UTC()
    }
    s.users[cp.ID] = cp
    return nil
}

func (s *MemoryUserStore) GetByID(_ context.Context, id string) (*model.UserProfile, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    u, ok := s.users[id]
    if !ok {
        return nil, ErrNotFound
    }
    cp := u
    return &cp, nil
}

func (s *MemoryUserStore) GetByEmail(_ context.Context, email string) (*model.UserProfile, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    email = strings.ToLower(strings.TrimSpace(email))
    for _, u := range s.users {
        if u.Email == email {
            cp := u
            return &cp, nil
        }
    }
    return nil, ErrNotFound
}

func (s *MemoryUserStore) List(_ context.Context) ([]model.UserProfile, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]model.UserProfile, 0, len(s.users))
    for _, u := range s.users {
        out = append(out, u)
    }
    sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
    return out, nil
}

func (s *MemoryUserStore) Update(_ context.Context, u *model.UserProfile) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    if _, ok := s.users[u.ID]; !ok {
        return ErrNotFound
    }
    cp := *u
    cp.Email = strings.ToLower(strings.TrimSpace(u.Email))
    s.users[u.ID] = cp
    return nil
}

// MemoryBookingStore is an in-memory BookingStore.
type MemoryBookingStore struct {
    mu       sync.RWMutex
    bookings []model.Booking
}

// NewMemoryBookingStore returns an empty in-memory booking store.
func NewMemoryBookingStore() *MemoryBookingStore { return &MemoryBookingStore{} }

func (s *MemoryBookingStore) Create(_ context.Context, b *model.Booking) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.bookings = append(s.bookings, *b)
    return nil
}

func (s *MemoryBookingStore) ListByUser(_ context.Context, userID string) ([]model.Booking, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]model.Booking, 0)
    for _, b := range s.bookings {
        if b.UserID == userID {
            out = append(out, b)
        }
    }
    sort.SliceStable(out, func(i, j int) bool { return out[i].BookingDate > out[j].BookingDate })
    return out, nil
}

func (s *MemoryBookingStore) List(_ context.Context) ([]model.Booking, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]model.Booking, len(s.bookings))
    copy(out, s.bookings)
    return out, nil
}

// MemoryAutoReservationStore is an in-memory AutoReservationStore.
type MemoryAutoReservationStore struct {
    mu       sync.RWMutex
    requests []model.AutoReservation
}

// NewMemoryAutoReservationStore returns an empty in-memory
// auto-reservation store.
func NewMemoryAutoReservationStore() *MemoryAutoReservationStore {
    return &MemoryAutoReservationStore{}
}

func (s *MemoryAutoReservationStore) Create(_ context.Context, ar *model.AutoReservation) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.requests = append(s.requests, *ar)
    return nil
}

func (s *MemoryAutoReservationStore) ListByUser(_ context.Context, userID string) ([]model.AutoReservation, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]model.AutoReservation, 0)
    for _, ar := range s.requests {
        if ar.UserID == userID {
            out = append(out, ar)
        }
    }
    sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
    return out, nil
}

func (s *MemoryAutoReservationStore) List(_ context.Context) ([]model.AutoReservation, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]model.AutoReservation, len(s.requests))
    copy(out, s.requests)
    return out, nil
}

// MemorySettingsStore is an in-memory SettingsStore.
type MemorySettingsStore struct {
    mu       sync.RWMutex
    settings *model.Settings
}

// NewMemorySettingsStore returns an empty in-memory settings store.
func NewMemorySettingsStore() *MemorySettingsStore { return &MemorySettingsStore{} }

func (s *MemorySettingsStore) Get(_ context.Context) (*model.Settings, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    if s.settings == nil {
        return nil, ErrNotFound
    }
    cp := *s.settings
    return &cp, nil
}

func (s *MemorySettingsStore) Put(_ context.Context, set *model.Settings) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    cp := *set
    s.settings = &cp
    return nil
}
