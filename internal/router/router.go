package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "github.com/jtorabi/flight-reservation/internal/handler"    // import the handlers that implement business logic
    "github.com/jtorabi/flight-reservation/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// Handlers bundles every handler the API mounts.  main constructs the
// set once and hands it to the Register functions below.
type Handlers struct {
    Auth     *handler.AuthHandler
    Search   *handler.SearchHandler
    Analysis *handler.AnalysisHandler
    Bookings *handler.BookingHandler
    AutoRes  *handler.AutoReservationHandler
    Admin    *handler.AdminHandler
}

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    // Map the GET request at path "/healthz" to the Health handler.  This
    // endpoint can be used by load balancers or monitoring systems to verify
    // that the service is up and running.
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication routes.  Unauthenticated
// operations live under /v1/auth, the protected profile endpoint under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    g := e.Group("/v1/auth")
    // Registration collects the five-factor questionnaire answers and
    // assigns the experiment cohort.
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)

    auth := e.Group("/v1")
    auth.Use(middleware.JWTAuth(jwtSecret))
    auth.Use(middleware.RequireRole("ADMIN", "TRAVELER"))
    auth.GET("/me", a.Me)
}

// RegisterTraveler registers the participant-facing endpoints: the
// personalized search, the supervised analysis, bookings and
// auto-reservation requests.  searchCache wraps only the search route so
// repeated route lookups skip scoring; pass nil middleware to disable.
func RegisterTraveler(e *echo.Echo, h Handlers, jwtSecret string, searchCache echo.MiddlewareFunc) {
    g := e.Group("/v1")
    g.Use(middleware.JWTAuth(jwtSecret))
    g.Use(middleware.RequireRole("ADMIN", "TRAVELER"))

    if searchCache != nil {
        g.GET("/flights/search", h.Search.Search, searchCache)
    } else {
        g.GET("/flights/search", h.Search.Search)
    }
    g.POST("/flights/:id/analysis", h.Analysis.Analyze)

    g.POST("/bookings", h.Bookings.Create)
    g.GET("/bookings", h.Bookings.List)

    g.POST("/auto-reservations", h.AutoRes.Create)
    g.GET("/auto-reservations", h.AutoRes.List)
}

// RegisterAdmin registers the research-dashboard endpoints under
// /v1/admin.  Every route requires the ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
    g := e.Group("/v1/admin")
    g.Use(middleware.JWTAuth(jwtSecret))
    g.Use(middleware.RequireRole("ADMIN"))

    g.GET("/flights", a.ListFlights)
    g.POST("/flights", a.CreateFlight)
    g.DELETE("/flights/:id", a.DeleteFlight)

    g.GET("/users", a.ListUsers)
    g.PUT("/users/:id", a.UpdateUser)

    g.GET("/auto-reservations", a.ListAutoReservations)

    g.GET("/settings", a.GetSettings)
    g.PUT("/settings", a.UpdateSettings)

    g.GET("/dashboard", a.Dashboard)
}
