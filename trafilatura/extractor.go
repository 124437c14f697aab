// Package trafilatura extracts readable page content for relevance
// checks and snapshots.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/progscout/progscout"
	"golang.org/x/net/html"
)

// Ensure Extractor implements progscout.ContentExtractor at compile time.
var _ progscout.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML,
// stripping navigation, footers and other boilerplate.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractContent processes raw HTML and returns the page title, the
// boilerplate-free text, and the main content as clean HTML.
func (e *Extractor) ExtractContent(rawHTML string) (*progscout.PageContent, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, progscout.Errorf(progscout.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &progscout.PageContent{
		Title:       result.Metadata.Title,
		Text:        result.ContentText,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
