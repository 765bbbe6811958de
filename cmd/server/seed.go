package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jtorabi/flight-reservation/internal/config"
	"github.com/jtorabi/flight-reservation/internal/engine"
	"github.com/jtorabi/flight-reservation/internal/model"
	"github.com/jtorabi/flight-reservation/internal/repository"
	"github.com/jtorabi/flight-reservation/internal/utils"
)

// seedThreshold marks storage as "already seeded" once the flights table
// holds at least this many rows.
const seedThreshold = 100

// defaultAutoReserveDesc is the initial auto-reservation offer text.
const defaultAutoReserveDesc = "در صورت نبود پرواز در مسیر انتخابی، درخواست رزرو خودکار شما ثبت می‌شود و به محض برنامه‌ریزی پرواز جدید با شما هماهنگ می‌کنیم."

// stores groups the repositories the seeder writes through.
type stores struct {
	Flights  repository.FlightStore
	Users    repository.UserStore
	Bookings repository.BookingStore
	Requests repository.AutoReservationStore
	Settings repository.SettingsStore
}

// seedStorage populates an empty database with the deterministic study
// corpus, the default offer settings and an administrator account.  It
// is a no-op when the flights table already holds a corpus.
func seedStorage(ctx context.Context, cfg config.Config, s stores) error {
	if err := seedSettings(ctx, s.Settings); err != nil {
		return err
	}
	if err := seedAdmin(ctx, cfg, s.Users); err != nil {
		return err
	}

	n, err := s.Flights.Count(ctx)
	if err != nil {
		return fmt.Errorf("count flights: %w", err)
	}
	if n >= seedThreshold {
		log.Printf("seed: storage already holds %d flights, skipping corpus generation", n)
		return nil
	}

	gen := engine.DefaultConfig()
	gen.UserCount = cfg.GenUserCount
	gen.BookingsPerUser = cfg.GenBookingsPerUser
	gen.AutoReservationsPerUser = cfg.GenAutoResPerUser

	var corpus engine.Corpus
	if cfg.GenSeed != 0 {
		corpus, err = engine.Generate(gen, cfg.GenSeed)
	} else {
		corpus, err = engine.GenerateRandom(gen)
	}
	if err != nil {
		return fmt.Errorf("generate corpus: %w", err)
	}

	// Synthetic participants share one hash; they exist for analytics,
	// not for logging in.
	hash, err := utils.HashPassword("thesis-demo", cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	for i := range corpus.Flights {
		if err := s.Flights.Create(ctx, &corpus.Flights[i]); err != nil {
			return fmt.Errorf("seed flight %s: %w", corpus.Flights[i].ID, err)
		}
	}
	for i := range corpus.Users {
		corpus.Users[i].PasswordHash = hash
		if err := s.Users.Create(ctx, &corpus.Users[i]); err != nil {
			return fmt.Errorf("seed user %s: %w", corpus.Users[i].ID, err)
		}
	}
	for i := range corpus.Bookings {
		if err := s.Bookings.Create(ctx, &corpus.Bookings[i]); err != nil {
			return fmt.Errorf("seed booking %s: %w", corpus.Bookings[i].ID, err)
		}
	}
	for i := range corpus.AutoReservations {
		if err := s.Requests.Create(ctx, &corpus.AutoReservations[i]); err != nil {
			return fmt.Errorf("seed auto-reservation %s: %w", corpus.AutoReservations[i].ID, err)
		}
	}

	log.Printf("seed: inserted %d flights, %d users, %d bookings, %d auto-reservations",
		len(corpus.Flights), len(corpus.Users), len(corpus.Bookings), len(corpus.AutoReservations))
	return nil
}

func seedSettings(ctx context.Context, settings repository.SettingsStore) error {
	_, err := settings.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("load settings: %w", err)
	}
	return settings.Put(ctx, &model.Settings{
		AutoReservePrice: 1_350_000,
		AutoReserveDesc:  defaultAutoReserveDesc,
	})
}

func seedAdmin(ctx context.Context, cfg config.Config, users repository.UserStore) error {
	const adminEmail = "admin@thesis.ac.ir"
	if _, err := users.GetByEmail(ctx, adminEmail); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("load admin: %w", err)
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin1234"
	}
	hash, err := utils.HashPassword(password, cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := &model.UserProfile{
		ID:           "USR-0001",
		Name:         "مدیر پژوهش",
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         "ADMIN",
		Group:        model.GroupControl,
		Personality:  model.PersonalityVector{Openness: 3, Conscientiousness: 3, Extroversion: 3, Agreeableness: 3, Neuroticism: 3},
	}
	if err := users.Create(ctx, admin); err != nil && !errors.Is(err, repository.ErrEmailExists) {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}
