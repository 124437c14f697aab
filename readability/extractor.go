// Package readability implements content extraction using go-readability.
// It is an alternative to the trafilatura extractor for pages whose
// markup defeats trafilatura's heuristics.
package readability

import (
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/progscout/progscout"
)

// Ensure ContentExtractor implements progscout.ContentExtractor at compile time.
var _ progscout.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor wraps go-readability to extract readable content from HTML.
type ContentExtractor struct{}

// NewContentExtractor creates a new ContentExtractor.
func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{}
}

// ExtractContent processes raw HTML and returns the readable content.
func (e *ContentExtractor) ExtractContent(html string) (*progscout.PageContent, error) {
	if strings.TrimSpace(html) == "" {
		return nil, progscout.Errorf(progscout.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(html), nil)
	if err != nil {
		return nil, err
	}

	return &progscout.PageContent{
		Title:       article.Title,
		Text:        strings.TrimSpace(article.TextContent),
		ContentHTML: article.Content,
	}, nil
}
