package engine

import (
    "errors"
    "fmt"
    "math/rand"
    "time"

    "github.com/jtorabi/flight-reservation/internal/model"
)

// ErrInvalidConfig is wrapped by all configuration errors returned
// from Generate.  An invalid configuration is a programming or
// deployment mistake, not a runtime condition to recover from.
var ErrInvalidConfig = errors.New("invalid generator config")

// Provinces is the full location set offered in the search form.
var Provinces = []string{
    "تهران", "خراسان رضوی", "فارس", "هرمزگان", "آذربایجان شرقی", "اصفهان", "خوزستان", "مازندران", "گیلان", "یزد",
}

// activeProvinces is the subset of provinces that actually receive
// generated flights.
var activeProvinces = []string{
    "تهران", "خراسان رضوی", "فارس", "هرمزگان", "آذربایجان شرقی", "خوزستان", "اصفهان",
}

// defaultAirlines is the fixed roster the generator samples from.
// Each airline carries its own base quality and aircraft type.
var defaultAirlines = []Airline{
    {Name: "Mahan Air", Quality: 0.95, Aircraft: "Airbus A340"},
    {Name: "Iran Air", Quality: 0.85, Aircraft: "Airbus A320"},
    {Name: "Aseman", Quality: 0.65, Aircraft: "Fokker 100"},
    {Name: "Qeshm Air", Quality: 0.88, Aircraft: "RJ-100"},
    {Name: "Kish Air", Quality: 0.75, Aircraft: "MD-82"},
    {Name: "Zagros", Quality: 0.70, Aircraft: "MD-83"},
    {Name: "Varesh", Quality: 0.80, Aircraft: "Boeing 737"},
    {Name: "ATA", Quality: 0.60, Aircraft: "MD-80"},
}

// Name pools for the synthetic population.  The generator alternates
// between the pools by user index parity.
var (
    maleNames = []string{"علی", "رضا", "محمد", "حسین", "امیر", "آرش", "بابک", "سهراب", "کامران", "نیما", "احسان", "محسن", "جلال", "مهدی", "فرهاد", "سعید", "حمید", "پژمان", "کیان", "اشکان"}

    femaleNames = []string{"سارا", "مریم", "زهرا", "نازنین", "الناز", "مینا", "پریسا", "رویا", "شیوا", "بهار", "نگین", "لیلا", "سمیرا", "هانیه", "فاطمه", "آرزو", "مهسا", "کتایون", "نیلوفر", "سپیده"}

    lastNames = []string{"تهرانی", "رضایی", "محمدی", "امیری", "کریمی", "حسینی", "موسوی", "جعفری", "صادقی", "باقری", "رحیمی", "کاظمی", "ابراهیمی", "نوری", "مقدم", "حیدری", "فراهانی", "شریفی", "قاسمی", "راد"}
)

// autoReserveRoutes is the fixed route trio pending auto-reservations
// are spread over.  The first entry is the deliberately empty
// Isfahan→Tehran route so the fallback path always has data to show.
var autoReserveRoutes = []Route{
    {Origin: "اصفهان", Destination: "تهران"},
    {Origin: "تهران", Destination: "مشهد"},
    {Origin: "شیراز", Destination: "کیش"},
}

// genCreatedAt stamps generated auto-reservations.  A fixed value
// keeps the corpus byte-identical across runs with the same seed.
const genCreatedAt = "1404/10/14T00:00:00"

// Airline describes one roster entry the generator samples from.
type Airline struct {
    Name     string  `json:"name"`
    Quality  float64 `json:"quality"`
    Aircraft string  `json:"aircraft"`
}

// Route is an ordered origin/destination pair.
type Route struct {
    Origin      string `json:"origin"`
    Destination string `json:"destination"`
}

// PriceBand bounds the uniformly sampled base price, in rials, before
// the tier multiplier is applied.
type PriceBand struct {
    Min int64 `json:"min"`
    Max int64 `json:"max"`
}

// Config enumerates everything the corpus generator needs.  Use
// DefaultConfig for the canonical thesis setup.
//
// Fields:
//  Locations               – ordered location set routes are drawn from.
//  ExcludedRoutes          – ordered pairs that must never receive flights.
//  Airlines                – roster sampled per flight.
//  UserCount               – number of synthetic users.
//  BookingsPerUser         – confirmed historical bookings per user.
//  AutoReservationsPerUser – pending auto-reservations per user.
//  PriceBand               – base price band in rials.
type Config struct {
    Locations               []string
    ExcludedRoutes          []Route
    Airlines                []Airline
    UserCount               int
    BookingsPerUser         int
    AutoReservationsPerUser int
    PriceBand               PriceBand
}

// DefaultConfig returns the configuration the thesis demo seeds with:
// seven active provinces, the Isfahan↔Tehran exclusion in both
// directions, the eight-airline roster and a population of 100 users
// with three bookings and three auto-reservations each.
func DefaultConfig() Config {
    // Copies keep callers from mutating the package-level defaults.
    locations := make([]string, len(activeProvinces))
    copy(locations, activeProvinces)
    airlines := make([]Airline, len(defaultAirlines))
    copy(airlines, defaultAirlines)
    return Config{
        Locations: locations,
        ExcludedRoutes: []Route{
            {Origin: "اصفهان", Destination: "تهران"},
            {Origin: "تهران", Destination: "اصفهان"},
        },
        Airlines:                airlines,
        UserCount:               100,
        BookingsPerUser:         3,
        AutoReservationsPerUser: 3,
        PriceBand:               PriceBand{Min: 1_000_000, Max: 3_000_000},
    }
}

// Corpus is the full synthetic dataset produced by one generator run.
type Corpus struct {
    Flights          []model.Flight
    Users            []model.UserProfile
    Bookings         []model.Booking
    AutoReservations []model.AutoReservation
}

func (c Config) validate() error {
    if len(c.Locations) < 2 {
        return fmt.Errorf("%w: need at least two locations, got %d", ErrInvalidConfig, len(c.Locations))
    }
    if len(c.Airlines) == 0 {
        return fmt.Errorf("%w: airline roster is empty", ErrInvalidConfig)
    }
    for _, a := range c.Airlines {
        if a.Quality < 0 || a.Quality > 1 {
            return fmt.Errorf("%w: airline %q quality %v outside [0,1]", ErrInvalidConfig, a.Name, a.Quality)
        }
    }
    if c.UserCount <= 0 {
        return fmt.Errorf("%w: user count must be positive, got %d", ErrInvalidConfig, c.UserCount)
    }
    if c.BookingsPerUser <= 0 {
        return fmt.Errorf("%w: bookings per user must be positive, got %d", ErrInvalidConfig, c.BookingsPerUser)
    }
    if c.AutoReservationsPerUser <= 0 {
        return fmt.Errorf("%w: auto-reservations per user must be positive, got %d", ErrInvalidConfig, c.AutoReservationsPerUser)
    }
    if c.PriceBand.Min <= 0 || c.PriceBand.Max <= c.PriceBand.Min {
        return fmt.Errorf("%w: price band [%d,%d) is empty", ErrInvalidConfig, c.PriceBand.Min, c.PriceBand.Max)
    }
    return nil
}

// Generate produces the full synthetic corpus for the given seed.  Two
// calls with the same config and seed yield byte-identical output; the
// draw order is part of that contract and must not be reordered.
func Generate(cfg Config, seed int64) (Corpus, error) {
    if err := cfg.validate(); err != nil {
        return Corpus{}, err
    }
    rng := rand.New(rand.NewSource(seed))

    flights := generateFlights(cfg, rng)
    if len(flights) == 0 {
        return Corpus{}, fmt.Errorf("%w: every route is excluded, nothing to generate", ErrInvalidConfig)
    }

    corpus := Corpus{Flights: flights}
    for i := 1; i <= cfg.UserCount; i++ {
        user := generateUser(i, rng)
        corpus.Users = append(corpus.Users, user)

        for b := 0; b < cfg.BookingsPerUser; b++ {
            f := flights[rng.Intn(len(flights))]
            corpus.Bookings = append(corpus.Bookings, model.Booking{
                ID:          fmt.Sprintf("BK-%s-%d", user.ID, b),
                UserID:      user.ID,
                FlightID:    f.ID,
                BookingDate: fmt.Sprintf("1404/0%d/%dT10:00:00", rng.Intn(9)+1, rng.Intn(28)+1),
                Status:      model.BookingConfirmed,
                Flight:      f,
            })
        }

        for ar := 0; ar < cfg.AutoReservationsPerUser; ar++ {
            route := autoReserveRoutes[ar%len(autoReserveRoutes)]
            corpus.AutoReservations = append(corpus.AutoReservations, model.AutoReservation{
                ID:             fmt.Sprintf("AR-%s-%d", user.ID, ar),
                UserID:         user.ID,
                Origin:         route.Origin,
                Destination:    route.Destination,
                DesiredDate:    fmt.Sprintf("1404/10/%d", 15+ar),
                SuggestedPrice: user.History.AvgPrice * 0.9,
                Status:         model.AutoReservationPending,
                CreatedAt:      genCreatedAt,
            })
        }
    }
    return corpus, nil
}

// GenerateRandom runs Generate with a time-derived seed.  It exists
// for interactive seeding only; tests must use Generate directly.
func GenerateRandom(cfg Config) (Corpus, error) {
    return Generate(cfg, time.Now().UnixNano())
}

// generateFlights enumerates every ordered, non-excluded route and
// emits exactly five flights per route, one per scenario slot.
func generateFlights(cfg Config, rng *rand.Rand) []model.Flight {
    excluded := make(map[Route]bool, len(cfg.ExcludedRoutes))
    for _, r := range cfg.ExcludedRoutes {
        excluded[r] = true
    }

    var flights []model.Flight
    for _, origin := range cfg.Locations {
        for _, destination := range cfg.Locations {
            if origin == destination {
                continue
            }
            if excluded[Route{Origin: origin, Destination: destination}] {
                continue
            }
            for slot := 1; slot <= 5; slot++ {
                flights = append(flights, generateFlight(cfg, rng, origin, destination, slot))
            }
        }
    }
    return flights
}

func generateFlight(cfg Config, rng *rand.Rand, origin, destination string, slot int) model.Flight {
    tier := TierFor(slot)
    airline := cfg.Airlines[rng.Intn(len(cfg.Airlines))]

    basePrice := cfg.PriceBand.Min + rng.Int63n(cfg.PriceBand.Max-cfg.PriceBand.Min)
    // Round the multiplied price down to the nearest 10,000 rials.
    price := int64(float64(basePrice)*tier.PriceMultiplier) / 10_000 * 10_000

    // Departures are spread over the day: 9, 12, 15, 18 and 21 o'clock.
    hour := 6 + 3*slot

    quality := airline.Quality
    class := model.ClassEconomy
    luggage := "20kg"
    switch slot {
    case 1:
        // The premium slot overrides the airline's reputation upward.
        quality = 0.98
        class = model.ClassBusiness
        luggage = "30kg"
    case 5:
        // The risky slot overrides it downward so a low-quality example
        // is always reachable on every route.
        quality = 0.5
    }

    return model.Flight{
        ID:             fmt.Sprintf("FL-%s-%s-%05d", prefixRunes(origin, 2), prefixRunes(destination, 2), rng.Intn(100_000)),
        Airline:        airline.Name,
        Origin:         origin,
        Destination:    destination,
        DepartureTime:  fmt.Sprintf("1404/10/15T%02d:00:00", hour),
        ArrivalTime:    fmt.Sprintf("1404/10/15T%02d:30:00", hour+1),
        Price:          price,
        AvailableSeats: rng.Intn(50) + 1,
        QualityScore:   quality,
        AircraftType:   airline.Aircraft,
        ClassType:      class,
        AllowedLuggage: luggage,
        Scenario: &model.ScenarioTag{
            SimulatedDelayMinutes: tier.DelayMinutes,
            RegretIndex:           tier.RegretIndex,
            SupervisorNote:        tier.Note,
        },
    }
}

func generateUser(i int, rng *rand.Rand) model.UserProfile {
    pool := maleNames
    preferred := []string{"Aseman", "Zagros"}
    if i%2 == 0 {
        pool = femaleNames
        preferred = []string{"Mahan Air", "Iran Air"}
    }
    first := pool[rng.Intn(len(pool))]
    last := lastNames[rng.Intn(len(lastNames))]

    personality := model.PersonalityVector{
        Openness:          rng.Intn(5) + 1,
        Conscientiousness: rng.Intn(5) + 1,
        Extroversion:      rng.Intn(5) + 1,
        Agreeableness:     rng.Intn(5) + 1,
        Neuroticism:       rng.Intn(5) + 1,
    }

    return model.UserProfile{
        ID:          fmt.Sprintf("USR-%d", 1000+i),
        Name:        first + " " + last,
        Email:       fmt.Sprintf("user%d@thesis.ac.ir", i),
        Role:        "TRAVELER",
        Group:       model.ExperimentGroups[i%len(model.ExperimentGroups)],
        Personality: personality,
        History: model.TravelHistory{
            AvgPrice:          1_500_000 + rng.Float64()*1_000_000,
            PreferredAirlines: preferred,
            TravelFrequency:   rng.Intn(12) + 1,
        },
    }
}

// prefixRunes returns the first n runes of s; Persian place names need
// rune-wise slicing.
func prefixRunes(s string, n int) string {
    r := []rune(s)
    if len(r) > n {
        r = r[:n]
    }
    return string(r)
}
