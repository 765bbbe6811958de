package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations and costs.
type Config struct {
    Env          string // application environment (e.g. "dev", "prod")
    Port         string // HTTP port to listen on
    DBUser       string // database username
    DBPass       string // database password (optional)
    DBHost       string // database host address
    DBPort       string // database port number
    DBName       string // database name
    JWTSecret    string // secret used to sign JWTs
    AccessTTLMin int    // access token time‑to‑live in minutes
    BcryptCost   int    // bcrypt cost for password hashing

    // Corpus generation knobs.  The corpus is reseeded at startup when the
    // flights table is below the seeding threshold.
    GenSeed            int64 // RNG seed for the deterministic corpus (0 = random)
    GenUserCount       int   // number of synthetic travelers to generate
    GenBookingsPerUser int   // bookings per synthetic traveler
    GenAutoResPerUser  int   // auto-reservation requests per synthetic traveler
    SeedOnStart        bool  // whether to seed the corpus when storage is empty

    // External advisor for the supervised cohort.
    AdvisorURL       string // analysis endpoint; empty disables the remote advisor
    AdvisorTimeoutMS int    // per-request timeout for the advisor in milliseconds
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  Generation and
// advisor knobs are optional and fall back to lab defaults.
func Load() Config {
    return Config{
        Env:          must("APP_ENV"),                 // environment (dev/test/prod)
        Port:         must("APP_PORT"),                // port to bind the HTTP server
        DBUser:       must("DB_USER"),                 // database user
        DBPass:       os.Getenv("DB_PASS"),            // database password (empty allowed)
        DBHost:       must("DB_HOST"),                 // database host
        DBPort:       must("DB_PORT"),                 // database port
        DBName:       must("DB_NAME"),                 // database name
        JWTSecret:    must("JWT_SECRET"),              // secret used for signing JWTs
        AccessTTLMin: mustInt("ACCESS_TOKEN_TTL_MIN"), // TTL for access tokens in minutes
        BcryptCost:   mustInt("BCRYPT_COST"),          // bcrypt cost factor

        GenSeed:            optInt64("GEN_SEED", 0),          // 0 picks a time-based seed
        GenUserCount:       optInt("GEN_USER_COUNT", 100),    // synthetic traveler count
        GenBookingsPerUser: optInt("GEN_BOOKINGS_PER_USER", 3),
        GenAutoResPerUser:  optInt("GEN_AUTO_RES_PER_USER", 3),
        SeedOnStart:        optBool("SEED_ON_START", true),

        AdvisorURL:       os.Getenv("ADVISOR_URL"),              // empty = local analysis only
        AdvisorTimeoutMS: optInt("ADVISOR_TIMEOUT_MS", 10_000),  // advisor request timeout
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

// optInt reads an optional integer environment variable, returning def when
// the variable is unset or empty.  Invalid values are fatal because a typo
// silently falling back would skew the experiment parameters.
func optInt(key string, def int) int {
    s, ok := os.LookupEnv(key)
    if !ok || s == "" {
        return def
    }
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

// optInt64 is optInt for 64-bit values such as RNG seeds.
func optInt64(key string, def int64) int64 {
    s, ok := os.LookupEnv(key)
    if !ok || s == "" {
        return def
    }
    n, err := strconv.ParseInt(s, 10, 64)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

// optBool reads an optional boolean environment variable.
func optBool(key string, def bool) bool {
    s, ok := os.LookupEnv(key)
    if !ok || s == "" {
        return def
    }
    b, err := strconv.ParseBool(s)
    if err != nil {
        log.Fatalf("invalid bool for %s: %q", key, s)
    }
    return b
}
