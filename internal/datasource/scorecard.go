package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

const (
	scorecardBaseURL = "https://api.data.gov/ed/collegescorecard/v1/schools"
	scorecardTimeout = 10 * time.Second
)

// CollegeCosts holds the cost figures returned by the College Scorecard API
// for one institution.
type CollegeCosts struct {
	Name              string  `json:"name"`
	City              string  `json:"city"`
	State             string  `json:"state"`
	InStateTuition    float64 `json:"in_state_tuition"`
	OutOfStateTuition float64 `json:"out_of_state_tuition"`
	NetPrice          float64 `json:"net_price"`
	CostOfAttendance  float64 `json:"cost_of_attendance"`
}

// ScorecardClient queries the U.S. Department of Education College Scorecard
// API for live tuition data. A missing API key yields a disabled client whose
// lookups always fail, which callers treat as a signal to use seed data.
type ScorecardClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewScorecardClient reads SCORECARD_API_KEY from the environment.
func NewScorecardClient() *ScorecardClient {
	return &ScorecardClient{
		apiKey:  os.Getenv("SCORECARD_API_KEY"),
		baseURL: scorecardBaseURL,
		client:  &http.Client{Timeout: scorecardTimeout},
		breaker: newBreaker("scorecard"),
	}
}

// Enabled reports whether the client has credentials to make live calls.
func (c *ScorecardClient) Enabled() bool {
	return c.apiKey != ""
}

type scorecardResponse struct {
	Results []scorecardSchool `json:"results"`
}

type scorecardSchool struct {
	Name              string   `json:"school.name"`
	City              string   `json:"school.city"`
	State             string   `json:"school.state"`
	InStateTuition    *float64 `json:"latest.cost.tuition.in_state"`
	OutOfStateTuition *float64 `json:"latest.cost.tuition.out_of_state"`
	NetPrice          *float64 `json:"latest.cost.avg_net_price.overall"`
	CostOfAttendance  *float64 `json:"latest.cost.attendance.academic_year"`
}

// LookupCosts fetches tuition and attendance costs for an institution by name.
// Returns nil with an error when the API is unavailable, returns no results,
// or the client has no credentials.
func (c *ScorecardClient) LookupCosts(ctx context.Context, institution string) (*CollegeCosts, error) {
	if !c.Enabled() {
		return nil, &ErrNoCredentials{Source: "scorecard"}
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, institution)
	})
	if err != nil {
		return nil, err
	}
	return result.(*CollegeCosts), nil
}

func (c *ScorecardClient) fetch(ctx context.Context, institution string) (*CollegeCosts, error) {
	fields := strings.Join([]string{
		"id",
		"school.name",
		"school.city",
		"school.state",
		"latest.cost.tuition.in_state",
		"latest.cost.tuition.out_of_state",
		"latest.cost.attendance.academic_year",
		"latest.cost.avg_net_price.overall",
	}, ",")

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("school.name", institution)
	params.Set("fields", fields)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &APICallError{Source: "scorecard", Message: "failed to build request", Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &APICallError{Source: "scorecard", Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APICallError{Source: "scorecard", Message: "failed to read response body", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APICallError{
			Source:  "scorecard",
			Message: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	var parsed scorecardResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &ParseError{Source: "scorecard", Message: "invalid JSON", Err: err}
	}
	if len(parsed.Results) == 0 {
		return nil, &APICallError{
			Source:  "scorecard",
			Message: fmt.Sprintf("no results for %q", institution),
		}
	}

	// The API ranks results by relevance, first match wins.
	school := parsed.Results[0]
	costs := &CollegeCosts{
		Name:  school.Name,
		City:  school.City,
		State: school.State,
	}
	if school.InStateTuition != nil {
		costs.InStateTuition = *school.InStateTuition
	}
	if school.OutOfStateTuition != nil {
		costs.OutOfStateTuition = *school.OutOfStateTuition
	}
	if school.NetPrice != nil {
		costs.NetPrice = *school.NetPrice
	}
	if school.CostOfAttendance != nil {
		costs.CostOfAttendance = *school.CostOfAttendance
	}
	return costs, nil
}
