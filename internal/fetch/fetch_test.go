package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_FetchesPage(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, "<html><title>BSCE Program</title></html>")
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "BSCE Program")
	assert.Contains(t, result.ContentType, "text/html")
	assert.Equal(t, DefaultUserAgent, gotUserAgent)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestURL_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result, "body is still returned for inspection")
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestExtractPageMeta_TitleTag(t *testing.T) {
	meta, err := ExtractPageMeta(`<html><head>
		<title> Civil Engineering BS | FIU </title>
		<meta name="description" content="ABET accredited program.">
	</head></html>`)
	require.NoError(t, err)

	assert.Equal(t, "Civil Engineering BS | FIU", meta.Title)
	assert.Equal(t, "ABET accredited program.", meta.Description)
}

func TestExtractPageMeta_OpenGraphWins(t *testing.T) {
	meta, err := ExtractPageMeta(`<html><head>
		<title>Generic Title</title>
		<meta property="og:title" content="Nursing AS Program">
		<meta name="description" content="plain description">
		<meta property="og:description" content="og description">
	</head></html>`)
	require.NoError(t, err)

	assert.Equal(t, "Nursing AS Program", meta.Title)
	assert.Equal(t, "og description", meta.Description)
}

func TestExtractPageMeta_EmptyDocument(t *testing.T) {
	meta, err := ExtractPageMeta("")
	require.NoError(t, err)
	assert.Empty(t, meta.Title)
	assert.Empty(t, meta.Description)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("  <html><body></body></html>  "))

	full := "<html><body>" + strings.Repeat("catalog entry ", 50) + "</body></html>"
	assert.False(t, ShouldUseBrowser(full))
}
