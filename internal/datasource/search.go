package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

const (
	searchBaseURL = "https://www.googleapis.com/customsearch/v1"
	searchTimeout = 10 * time.Second

	// The API caps a single request at 10 results.
	maxResultsPerRequest = 10
)

// TrustedEducationDomains limits program searches to institution and
// government sites so the research stage never cites arbitrary pages.
var TrustedEducationDomains = []string{
	"mdc.edu",
	"fiu.edu",
	"fau.edu",
	"ucf.edu",
	"uf.edu",
	"floridashines.org",
	"ed.gov",
}

// SearchResult is one hit from an education-domain web search.
type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Domain  string `json:"domain"`
}

// SearchClient wraps the Google Programmable Search API with queries
// restricted to trusted education domains.
type SearchClient struct {
	apiKey   string
	engineID string
	baseURL  string
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
}

// NewSearchClient reads GOOGLE_SEARCH_API_KEY and GOOGLE_SEARCH_ENGINE_ID
// from the environment.
func NewSearchClient() *SearchClient {
	return &SearchClient{
		apiKey:   os.Getenv("GOOGLE_SEARCH_API_KEY"),
		engineID: os.Getenv("GOOGLE_SEARCH_ENGINE_ID"),
		baseURL:  searchBaseURL,
		client:   &http.Client{Timeout: searchTimeout},
		breaker:  newBreaker("search"),
	}
}

// Enabled reports whether both the API key and engine ID are configured.
func (c *SearchClient) Enabled() bool {
	return c.apiKey != "" && c.engineID != ""
}

type searchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
}

// Search runs a query restricted to the given domains. When domains is empty
// the trusted education domain list applies.
func (c *SearchClient) Search(ctx context.Context, query string, num int, domains []string) ([]SearchResult, error) {
	if !c.Enabled() {
		return nil, &ErrNoCredentials{Source: "search"}
	}
	if len(domains) == 0 {
		domains = TrustedEducationDomains
	}
	if num <= 0 || num > maxResultsPerRequest {
		num = maxResultsPerRequest
	}

	restrictions := make([]string, len(domains))
	for i, domain := range domains {
		restrictions[i] = "site:" + domain
	}
	fullQuery := query + " " + strings.Join(restrictions, " OR ")

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, fullQuery, num)
	})
	if err != nil {
		return nil, err
	}
	return result.([]SearchResult), nil
}

// SearchPrograms looks for degree programs at the feeder college.
func (c *SearchClient) SearchPrograms(ctx context.Context, career string) ([]SearchResult, error) {
	return c.Search(ctx, career+" program degree", 5, []string{"mdc.edu"})
}

// SearchTransferAgreements looks for articulation agreements between the
// feeder and a target university.
func (c *SearchClient) SearchTransferAgreements(ctx context.Context, university, program string) ([]SearchResult, error) {
	query := fmt.Sprintf("MDC %s transfer agreement articulation %s", program, university)
	return c.Search(ctx, query, 5, []string{"mdc.edu", "fiu.edu", "fau.edu", "floridashines.org"})
}

// SearchLicensing looks for professional licensing requirements.
func (c *SearchClient) SearchLicensing(ctx context.Context, profession string) ([]SearchResult, error) {
	query := profession + " license requirements Florida examination"
	return c.Search(ctx, query, 5, []string{"ed.gov", "floridashines.org"})
}

func (c *SearchClient) fetch(ctx context.Context, query string, num int) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.engineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(num))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &APICallError{Source: "search", Message: "failed to build request", Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &APICallError{Source: "search", Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APICallError{Source: "search", Message: "failed to read response body", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APICallError{
			Source:  "search",
			Message: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &ParseError{Source: "search", Message: "invalid JSON", Err: err}
	}

	results := make([]SearchResult, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		results = append(results, SearchResult{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
			Domain:  extractDomain(item.Link),
		})
	}
	return results, nil
}

func extractDomain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Host
}
