package mock

import (
	"github.com/progscout/progscout"
)

var _ progscout.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of progscout.ContentExtractor.
type ContentExtractor struct {
	ExtractContentFn func(html string) (*progscout.PageContent, error)
}

func (e *ContentExtractor) ExtractContent(html string) (*progscout.PageContent, error) {
	return e.ExtractContentFn(html)
}
