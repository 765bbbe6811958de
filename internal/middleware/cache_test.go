package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/alicebob/miniredis/v2"
    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/jtorabi/flight-reservation/internal/config"
)

func testCacheConfig() config.CacheConfig {
    return config.CacheConfig{
        Enabled:      true,
        Methods:      map[string]bool{"GET": true},
        TTL:          time.Minute,
        Prefix:       "cache",
        MaxBodyBytes: 1 << 20,
    }
}

func newCachedEcho(t *testing.T, hits *int) (*echo.Echo, *miniredis.Miniredis) {
    t.Helper()
    mr := miniredis.RunT(t)
    rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

    e := echo.New()
    e.Use(NewRedisCache(testCacheConfig(), rdb))
    e.GET("/v1/flights/search", func(c echo.Context) error {
        *hits++
        return c.JSON(http.StatusOK, echo.Map{
            "origin":      c.QueryParam("origin"),
            "destination": c.QueryParam("destination"),
        })
    })
    return e, mr
}

func TestRedisCacheHitSkipsHandler(t *testing.T) {
    hits := 0
    e, _ := newCachedEcho(t, &hits)

    first := httptest.NewRecorder()
    e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/v1/flights/search?origin=%D8%AA%D9%87%D8%B1%D8%A7%D9%86&destination=%D9%85%D8%B4%D9%87%D8%AF", nil))
    require.Equal(t, http.StatusOK, first.Code)
    assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
    assert.Equal(t, 1, hits)

    second := httptest.NewRecorder()
    e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/v1/flights/search?origin=%D8%AA%D9%87%D8%B1%D8%A7%D9%86&destination=%D9%85%D8%B4%D9%87%D8%AF", nil))
    require.Equal(t, http.StatusOK, second.Code)
    assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
    assert.Equal(t, 1, hits)
    assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestRedisCacheKeyIncludesQuery(t *testing.T) {
    hits := 0
    e, _ := newCachedEcho(t, &hits)

    r1 := httptest.NewRecorder()
    e.ServeHTTP(r1, httptest.NewRequest(http.MethodGet, "/v1/flights/search?origin=a&destination=b", nil))
    r2 := httptest.NewRecorder()
    e.ServeHTTP(r2, httptest.NewRequest(http.MethodGet, "/v1/flights/search?origin=a&destination=c", nil))

    assert.Equal(t, "MISS", r2.Header().Get("X-Cache"))
    assert.Equal(t, 2, hits)
}

func TestRedisCacheExpires(t *testing.T) {
    hits := 0
    e, mr := newCachedEcho(t, &hits)

    e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/flights/search?origin=a&destination=b", nil))
    mr.FastForward(2 * time.Minute)

    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/flights/search?origin=a&destination=b", nil))
    assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
    assert.Equal(t, 2, hits)
}

func TestRedisCacheDisabledWithoutClient(t *testing.T) {
    hits := 0
    e := echo.New()
    e.Use(NewRedisCache(testCacheConfig(), nil))
    e.GET("/ping", func(c echo.Context) error {
        hits++
        return c.String(http.StatusOK, "pong")
    })

    for i := 0; i < 2; i++ {
        e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
    }
    assert.Equal(t, 2, hits)
}
