package progscout

// PageContent holds the readable content of an HTML page.
type PageContent struct {
	// Title is the page title extracted from metadata.
	Title string

	// Text is the visible text with boilerplate removed, used for
	// relevance checks and previews.
	Text string

	// ContentHTML is the main content as clean HTML, suitable for
	// conversion to markdown snapshots.
	ContentHTML string
}

// ContentExtractor extracts readable content from HTML pages, removing
// boilerplate (nav, footer, sidebar, ads).
type ContentExtractor interface {
	ExtractContent(html string) (*PageContent, error)
}
