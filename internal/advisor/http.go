package advisor

import (
    "bytes"
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "net/http"
    "time"

    "github.com/jtorabi/flight-reservation/internal/model"
)

// ErrUnavailable is returned when the remote advisor cannot produce a
// usable verdict (network failure, non-200 status, malformed body).
var ErrUnavailable = errors.New("advisor: service unavailable")

// HTTPAdvisor talks to a remote analysis endpoint over JSON. The
// endpoint receives the flight and the traveler profile and answers
// with a model.AnalysisResult body.
type HTTPAdvisor struct {
    endpoint   string
    httpClient *http.Client
}

// NewHTTPAdvisor creates an HTTPAdvisor for the given endpoint.
// A non-positive timeout falls back to 10 seconds.
func NewHTTPAdvisor(endpoint string, timeout time.Duration) *HTTPAdvisor {
    if timeout <= 0 {
        timeout = 10 * time.Second
    }
    return &HTTPAdvisor{
        endpoint: endpoint,
        httpClient: &http.Client{
            Timeout: timeout,
            Transport: &http.Transport{
                MaxIdleConns:        100,
                MaxIdleConnsPerHost: 10,
                IdleConnTimeout:     90 * time.Second,
            },
        },
    }
}

type analyzeRequest struct {
    Flight model.Flight      `json:"flight"`
    User   analyzeUser       `json:"user"`
}

// analyzeUser strips credentials before the profile leaves the process.
type analyzeUser struct {
    ID          string                  `json:"id"`
    Group       model.ExperimentGroup   `json:"group"`
    Personality model.PersonalityVector `json:"personality"`
    History     model.TravelHistory     `json:"history"`
}

// Analyze posts the pair to the remote endpoint and decodes the verdict.
func (a *HTTPAdvisor) Analyze(ctx context.Context, flight model.Flight, user model.UserProfile) (model.AnalysisResult, error) {
    payload := analyzeRequest{
        Flight: flight,
        User: analyzeUser{
            ID:          user.ID,
            Group:       user.Group,
            Personality: user.Personality,
            History:     user.History,
        },
    }
    body, err := json.Marshal(payload)
    if err != nil {
        return model.AnalysisResult{}, fmt.Errorf("advisor: marshal request: %w", err)
    }

    req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
    if err != nil {
        return model.AnalysisResult{}, fmt.Errorf("advisor: build request: %w", err)
    }
    req.Header.Set("Content-Type", "application/json")

    resp, err := a.httpClient.Do(req)
    if err != nil {
        return model.AnalysisResult{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
    }
    defer resp.Body.Close()

    if resp.StatusCode != http.StatusOK {
        // Drain so the connection can be reused.
        _, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
        return model.AnalysisResult{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
    }

    var result model.AnalysisResult
    if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
        return model.AnalysisResult{}, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
    }
    if !validStatus(result.Status) {
        return model.AnalysisResult{}, fmt.Errorf("%w: unknown status %q", ErrUnavailable, result.Status)
    }
    return result, nil
}

func validStatus(s string) bool {
    switch s {
    case model.AnalysisApproved, model.AnalysisRequiresConfirmation, model.AnalysisRejected:
        return true
    }
    return false
}
