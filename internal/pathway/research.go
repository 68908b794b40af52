// Package pathway researches education pathways: feeder programs, transfer
// universities, certifications, and licenses for a target career. Seed data
// answers first; live search plus LLM structuring refines the result when
// configured. Every failure degrades to seed or category defaults.
package pathway

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/careerpilot/roadmap-agent/internal/datasource"
	"github.com/careerpilot/roadmap-agent/internal/fetch"
	"github.com/careerpilot/roadmap-agent/internal/llm"
	"github.com/careerpilot/roadmap-agent/internal/prompts"
	"github.com/careerpilot/roadmap-agent/internal/seed"
	"github.com/careerpilot/roadmap-agent/internal/types"
)

// Researcher produces a PathwayResult for a student profile.
type Researcher struct {
	tables *seed.Tables
	search *datasource.SearchClient
	client llm.Client

	// EnrichCitations controls whether citation titles are filled in by
	// fetching page metadata. Off by default to keep runs network free.
	EnrichCitations bool

	// RenderJS enables headless-browser rendering for citation pages that
	// come back as near-empty shells. Requires Chrome on the system.
	RenderJS bool
}

// browserTimeout bounds a single headless-browser render.
const browserTimeout = 30 * time.Second

// NewResearcher builds a researcher. search and client may be nil, in which
// case research runs entirely from seed data.
func NewResearcher(tables *seed.Tables, search *datasource.SearchClient, client llm.Client) *Researcher {
	return &Researcher{tables: tables, search: search, client: client}
}

// Research builds the pathway for a profile. The result's transfer options
// are tagged, deduplicated, and filtered by the profile's location
// preference.
func (r *Researcher) Research(ctx context.Context, profile *types.Profile) (*types.PathwayResult, error) {
	result := r.fromSeed(profile)

	if result == nil && r.search != nil && r.search.Enabled() && r.client != nil {
		structured, err := r.fromSearch(ctx, profile)
		if err != nil {
			log.Printf("pathway: live research failed, using category defaults: %v", err)
		} else {
			result = structured
		}
	}
	if result == nil {
		result = CategoryDefaults(profile.Career, profile.Category)
	}

	for i := range result.TransferOptions {
		if result.TransferOptions[i].Articulation == "" {
			result.TransferOptions[i].Articulation = "Florida statewide 2+2 articulation"
		}
		Tag(&result.TransferOptions[i], r.tables)
	}
	result.TransferOptions = Select(result.TransferOptions, profile.Constraints.Location)

	r.collectCitations(ctx, result)
	return result, nil
}

// fromSeed converts a seed pathway row into a PathwayResult, or nil when the
// career has no row.
func (r *Researcher) fromSeed(profile *types.Profile) *types.PathwayResult {
	row, ok := r.tables.LookupPathway(profile.Career)
	if !ok {
		return nil
	}

	result := &types.PathwayResult{}
	for _, p := range row.Programs {
		result.Programs = append(result.Programs, types.Program{
			Code:    p.Code,
			Name:    p.Name,
			Credits: p.Credits,
			URL:     p.URL,
		})
	}
	for _, partner := range row.TransferPartners {
		result.TransferOptions = append(result.TransferOptions, types.TransferOption{
			University: partner.University,
			Program:    partner.Program,
			URL:        partner.URL,
		})
	}
	for _, lic := range row.Licensing {
		switch {
		case lic.Cert != "":
			result.Certifications = append(result.Certifications, types.Certification{
				Name:     lic.Cert,
				Required: true,
				Timing:   "final year of bachelor's",
				URL:      lic.URL,
			})
		case lic.Exam != "":
			result.Licenses = append(result.Licenses, types.License{
				Name:     lic.Exam,
				Required: true,
				Timing:   "after degree completion",
				State:    "Florida",
				URL:      lic.URL,
			})
		}
	}
	return result
}

// fromSearch runs an education-domain search and asks the LLM to structure
// the results into a pathway.
func (r *Researcher) fromSearch(ctx context.Context, profile *types.Profile) (*types.PathwayResult, error) {
	query := fmt.Sprintf("%s associate transfer pathway bachelor", profile.Career)
	results, err := r.search.Search(ctx, query, 10, nil)
	if err != nil {
		return nil, &APICallError{Message: "education search failed", Cause: err}
	}
	if len(results) == 0 {
		return nil, &APICallError{Message: "education search returned no results"}
	}

	resultsJSON, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, &ParseError{Message: "failed to encode search results", Cause: err}
	}

	template := prompts.MustGet("pathway.json", "structure-pathway")
	prompt := prompts.Format(template, map[string]string{
		"Career":      profile.Career,
		"Category":    profile.Category,
		"Location":    profile.Constraints.Location,
		"ResultsJSON": string(resultsJSON),
	})

	responseText, err := r.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "failed to structure pathway", Cause: err}
	}
	responseText = llm.CleanJSONBlock(responseText)

	var structured types.PathwayResult
	if err := json.Unmarshal([]byte(responseText), &structured); err != nil {
		return nil, &ParseError{Message: "failed to parse pathway JSON", Cause: err}
	}
	if len(structured.TransferOptions) == 0 {
		return nil, &ParseError{Message: "structured pathway has no transfer options"}
	}
	return &structured, nil
}

// collectCitations assigns stable IDs to every distinct source URL in the
// result and optionally fills titles from page metadata.
func (r *Researcher) collectCitations(ctx context.Context, result *types.PathwayResult) {
	seen := make(map[string]bool)
	for _, c := range result.Citations {
		seen[c.URL] = true
	}

	add := func(title, url string) {
		if url == "" || seen[url] {
			return
		}
		seen[url] = true
		result.Citations = append(result.Citations, types.Citation{Title: title, URL: url})
	}

	for _, p := range result.Programs {
		add(p.Name, p.URL)
	}
	for _, t := range result.TransferOptions {
		add(t.University, t.URL)
	}
	for _, c := range result.Certifications {
		add(c.Name, c.URL)
	}
	for _, l := range result.Licenses {
		add(l.Name, l.URL)
	}

	accessed := time.Now().UTC().Format(time.RFC3339)
	for i := range result.Citations {
		result.Citations[i].ID = fmt.Sprintf("c%d", i+1)
		if result.Citations[i].AccessedAt == "" {
			result.Citations[i].AccessedAt = accessed
		}
	}

	if r.EnrichCitations {
		r.enrichCitationTitles(ctx, result)
	}
}

// enrichCitationTitles replaces placeholder titles with the page's own title.
// Fetch failures leave the existing title in place.
func (r *Researcher) enrichCitationTitles(ctx context.Context, result *types.PathwayResult) {
	for i := range result.Citations {
		html, ok := r.fetchCitationPage(ctx, result.Citations[i].URL)
		if !ok {
			continue
		}
		meta, err := fetch.ExtractPageMeta(html)
		if err != nil || strings.TrimSpace(meta.Title) == "" {
			continue
		}
		result.Citations[i].Title = meta.Title
	}
}

// fetchCitationPage retrieves a citation page over plain HTTP, re-rendering
// JavaScript-heavy catalog shells in a headless browser when enabled.
func (r *Researcher) fetchCitationPage(ctx context.Context, url string) (string, bool) {
	fetched, err := fetch.URL(ctx, url, nil)
	if err != nil {
		return "", false
	}
	if r.RenderJS && fetch.ShouldUseBrowser(fetched.HTML) {
		rendered, err := fetch.WithBrowser(ctx, url, browserTimeout, false)
		if err != nil {
			log.Printf("pathway: browser render failed for %s: %v", url, err)
			return fetched.HTML, true
		}
		return rendered, true
	}
	return fetched.HTML, true
}
