package fetch

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageMeta holds the title and description extracted from a program page.
// Used to enrich citations with human-readable titles.
type PageMeta struct {
	Title       string
	Description string
}

// ExtractPageMeta parses HTML and returns the page title and meta description.
// The og:title / og:description tags win over the plain <title> and
// description tags when both are present.
func ExtractPageMeta(html string) (*PageMeta, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &Error{Message: "failed to parse HTML", Cause: err}
	}

	meta := &PageMeta{}

	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		meta.Title = strings.TrimSpace(og)
	}
	if meta.Title == "" {
		meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	if og, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
		meta.Description = strings.TrimSpace(og)
	}
	if meta.Description == "" {
		if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
			meta.Description = strings.TrimSpace(desc)
		}
	}

	return meta, nil
}
