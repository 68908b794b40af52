package datasource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

const (
	blsV2URL   = "https://api.bls.gov/publicAPI/v2/timeseries/data/"
	blsV1URL   = "https://api.bls.gov/publicAPI/v1/timeseries/data/"
	blsTimeout = 15 * time.Second

	// OEWS median hourly wages are converted to annual figures assuming
	// a 40 hour week over 52 weeks.
	hoursPerYear = 2080
)

// WageData holds the wage figures extracted from a BLS OEWS time series.
type WageData struct {
	OccupationCode string  `json:"occupation_code"`
	MedianHourly   float64 `json:"median_hourly_wage"`
	MeanAnnual     float64 `json:"mean_annual_wage"`
	MedianAnnual   float64 `json:"median_annual_salary"`
	DataYear       string  `json:"data_year"`
}

// BLSClient queries the Bureau of Labor Statistics public timeseries API for
// occupational wage statistics. The client works without a registration key
// against the v1 endpoint; a BLS_API_KEY raises the rate limits via v2.
type BLSClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewBLSClient reads the optional BLS_API_KEY from the environment.
func NewBLSClient() *BLSClient {
	apiKey := os.Getenv("BLS_API_KEY")
	baseURL := blsV1URL
	if apiKey != "" {
		baseURL = blsV2URL
	}
	return &BLSClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: blsTimeout},
		breaker: newBreaker("bls"),
	}
}

type blsRequest struct {
	SeriesID        []string `json:"seriesid"`
	StartYear       string   `json:"startyear"`
	EndYear         string   `json:"endyear"`
	RegistrationKey string   `json:"registrationkey,omitempty"`
}

type blsResponse struct {
	Status  string `json:"status"`
	Message []string
	Results struct {
		Series []blsSeries `json:"series"`
	} `json:"Results"`
}

type blsSeries struct {
	SeriesID string `json:"seriesID"`
	Data     []struct {
		Year  string `json:"year"`
		Value string `json:"value"`
	} `json:"data"`
}

// seriesIDs builds the OEWS series identifiers for an occupation code.
// Format: OEUM + code without dash + area (0000000 national) + data type
// (02 median hourly, 04 mean annual).
func seriesIDs(occupationCode string) []string {
	code := strings.ReplaceAll(occupationCode, "-", "")
	return []string{
		fmt.Sprintf("OEUM%s0000000002", code),
		fmt.Sprintf("OEUM%s0000000004", code),
	}
}

// LookupWages fetches the latest median and mean wage figures for a BLS
// occupation code such as "17-2141".
func (c *BLSClient) LookupWages(ctx context.Context, occupationCode string) (*WageData, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, occupationCode)
	})
	if err != nil {
		return nil, err
	}
	return result.(*WageData), nil
}

func (c *BLSClient) fetch(ctx context.Context, occupationCode string) (*WageData, error) {
	now := time.Now().Year()
	payload := blsRequest{
		SeriesID:        seriesIDs(occupationCode),
		StartYear:       strconv.Itoa(now - 2),
		EndYear:         strconv.Itoa(now),
		RegistrationKey: c.apiKey,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &APICallError{Source: "bls", Message: "failed to encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, &APICallError{Source: "bls", Message: "failed to build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &APICallError{Source: "bls", Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APICallError{Source: "bls", Message: "failed to read response body", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APICallError{
			Source:  "bls",
			Message: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	var parsed blsResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ParseError{Source: "bls", Message: "invalid JSON", Err: err}
	}
	if parsed.Status != "REQUEST_SUCCEEDED" {
		return nil, &APICallError{
			Source:  "bls",
			Message: fmt.Sprintf("request not succeeded: %s", parsed.Status),
		}
	}

	wages := &WageData{OccupationCode: occupationCode}
	for _, series := range parsed.Results.Series {
		if len(series.Data) == 0 {
			continue
		}
		// Data points arrive newest first.
		latest := series.Data[0]
		value, err := strconv.ParseFloat(latest.Value, 64)
		if err != nil {
			continue
		}
		switch {
		case strings.HasSuffix(series.SeriesID, "02"):
			wages.MedianHourly = value
			wages.DataYear = latest.Year
		case strings.HasSuffix(series.SeriesID, "04"):
			wages.MeanAnnual = value
			if wages.DataYear == "" {
				wages.DataYear = latest.Year
			}
		}
	}

	if wages.MedianHourly == 0 && wages.MeanAnnual == 0 {
		return nil, &ParseError{Source: "bls", Message: "no wage data points in response"}
	}

	if wages.MedianHourly > 0 {
		wages.MedianAnnual = wages.MedianHourly * hoursPerYear
	} else {
		wages.MedianAnnual = wages.MeanAnnual
	}
	return wages, nil
}
