package main // Entry point package

import (
	"context" // Context for bootstrap and seeding deadlines
	"log"     // Logging library
	"time"    // Timeouts for startup work

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/jtorabi/flight-reservation/internal/advisor"
	"github.com/jtorabi/flight-reservation/internal/config"
	"github.com/jtorabi/flight-reservation/internal/database"
	"github.com/jtorabi/flight-reservation/internal/handler"
	"github.com/jtorabi/flight-reservation/internal/middleware"
	"github.com/jtorabi/flight-reservation/internal/queue"
	"github.com/jtorabi/flight-reservation/internal/repository"
	"github.com/jtorabi/flight-reservation/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := database.Bootstrap(startCtx, db); err != nil {
		log.Fatalf("bootstrap schema: %v", err)
	}

	s := stores{
		Flights:  repository.NewFlightRepo(db),
		Users:    repository.NewUserRepo(db),
		Bookings: repository.NewBookingRepo(db),
		Requests: repository.NewAutoReservationRepo(db),
		Settings: repository.NewSettingsRepo(db),
	}

	if cfg.SeedOnStart {
		if err := seedStorage(startCtx, cfg, s); err != nil {
			log.Fatalf("seed storage: %v", err)
		}
	}

	// The supervisor always answers; the remote advisor is optional.
	var remote advisor.Advisor
	if cfg.AdvisorURL != "" {
		remote = advisor.NewHTTPAdvisor(cfg.AdvisorURL, time.Duration(cfg.AdvisorTimeoutMS)*time.Millisecond)
	}
	supervisor := advisor.NewSupervisor(remote)

	handlers := router.Handlers{
		Auth:     handler.NewAuthHandler(cfg, s.Users),
		Search:   handler.NewSearchHandler(s.Flights, s.Users, s.Settings),
		Analysis: handler.NewAnalysisHandler(s.Flights, s.Users, supervisor),
		Bookings: handler.NewBookingHandler(s.Bookings, s.Flights, s.Users),
		AutoRes:  handler.NewAutoReservationHandler(s.Requests, s.Users, s.Settings),
		Admin:    handler.NewAdminHandler(s.Flights, s.Users, s.Bookings, s.Requests, s.Settings),
	}

	// Redis is optional: a nil client disables the search response cache.
	var searchCache echo.MiddlewareFunc
	if rdb := config.NewRedisClient(); rdb != nil {
		searchCache = middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	} else {
		log.Println("redis unavailable, search cache disabled")
	}

	// Event consumer appends booking/auto-reservation events to
	// logs/booking.log and reconnects on broker failures.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("event consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handlers.Auth, cfg.JWTSecret)
	router.RegisterTraveler(e, handlers, cfg.JWTSecret, searchCache)
	router.RegisterAdmin(e, handlers.Admin, cfg.JWTSecret)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
