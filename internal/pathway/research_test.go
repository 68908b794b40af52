package pathway

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpilot/roadmap-agent/internal/seed"
	"github.com/careerpilot/roadmap-agent/internal/types"
)

const renderedCatalogPage = `<!DOCTYPE html>
<html><head><title>Nursing Transfer Guide</title></head>
<body><main>%s</main></body></html>`

func TestEnrichCitationTitles_ReplacesPlaceholders(t *testing.T) {
	padding := strings.Repeat("Program requirements and articulation details. ", 20)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, renderedCatalogPage, padding)
	}))
	defer server.Close()

	r := NewResearcher(seed.MustLoad(), nil, nil)
	r.EnrichCitations = true

	result := &types.PathwayResult{
		Citations: []types.Citation{{ID: "c1", Title: "placeholder", URL: server.URL}},
	}
	r.enrichCitationTitles(context.Background(), result)

	assert.Equal(t, "Nursing Transfer Guide", result.Citations[0].Title)
}

func TestEnrichCitationTitles_KeepsTitleOnFetchFailure(t *testing.T) {
	r := NewResearcher(seed.MustLoad(), nil, nil)
	r.EnrichCitations = true

	result := &types.PathwayResult{
		Citations: []types.Citation{{ID: "c1", Title: "FIU", URL: "http://127.0.0.1:1/missing"}},
	}
	r.enrichCitationTitles(context.Background(), result)

	assert.Equal(t, "FIU", result.Citations[0].Title)
}

func TestFetchCitationPage_ShellWithoutBrowserFlag(t *testing.T) {
	// A near-empty shell normally triggers browser rendering; with the
	// flag off the plain HTML is used as-is.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "<html><body></body></html>")
	}))
	defer server.Close()

	r := NewResearcher(seed.MustLoad(), nil, nil)
	require.False(t, r.RenderJS)

	html, ok := r.fetchCitationPage(context.Background(), server.URL)
	require.True(t, ok)
	assert.Equal(t, "<html><body></body></html>", html)
}
