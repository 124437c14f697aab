package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/progscout/progscout"
	"github.com/progscout/progscout/bloom"
	"github.com/progscout/progscout/dateparser"
	"github.com/progscout/progscout/gemini"
	"github.com/progscout/progscout/goquery"
	"github.com/progscout/progscout/htmltomarkdown"
	pshttp "github.com/progscout/progscout/http"
	"github.com/progscout/progscout/readability"
	"github.com/progscout/progscout/rod"
	"github.com/progscout/progscout/scrape"
	"github.com/progscout/progscout/serpapi"
	psslog "github.com/progscout/progscout/slog"
	"github.com/progscout/progscout/sqlite"
	"github.com/progscout/progscout/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Programs  progscout.ProgramService
	Queries   progscout.QueryService
	Snapshots progscout.SnapshotService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("progscout"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'progscout --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PROGSCOUT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.Programs = sqlite.NewProgramService(m.DB)
	m.Queries = sqlite.NewQueryService(m.DB)
	m.Snapshots = sqlite.NewSnapshotService(m.DB)
	deps.DB = m.DB
	deps.Programs = m.Programs
	deps.Queries = m.Queries
	deps.Snapshots = m.Snapshots
	deps.Sitemaps = pshttp.NewSitemapService(nil)

	// Wire the scraper for commands that fetch pages
	if cmd == "search" || cmd == "crawl" {
		browser, llm, useReadability := cli.Search.Browser, cli.Search.LLM, cli.Search.Readability
		verbose, concurrency := cli.Search.Verbose, cli.Search.Concurrency
		if cmd == "crawl" {
			browser, llm, useReadability = cli.Crawl.Browser, cli.Crawl.LLM, cli.Crawl.Readability
			verbose, concurrency = cli.Crawl.Verbose, cli.Crawl.Concurrency
		}

		var logger *slog.Logger
		if verbose {
			logger = slog.New(slog.NewTextHandler(stderr, nil))
		}

		var fetcher progscout.Fetcher
		if browser {
			browserFetcher, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = browserFetcher
			if verbose {
				fetcher = rod.NewLoggingFetcher(fetcher, logger)
			}
		} else {
			fetcher = pshttp.NewFetcher()
		}
		defer fetcher.Close()

		var extractor progscout.Extractor = goquery.NewPipeline(dateparser.New())
		if verbose {
			extractor = psslog.NewLoggingExtractor(extractor, logger)
		}

		var llmExtractor progscout.Extractor
		if llm {
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
				return fmt.Errorf("GEMINI_API_KEY not set")
			}
			client, err := gemini.NewClient(ctx, apiKey)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			llmExtractor = gemini.NewExtractor(client)
		}

		var searcher progscout.Searcher
		if cmd == "search" {
			apiKey := os.Getenv("SERPAPI_API_KEY")
			if apiKey == "" {
				fmt.Fprintln(stderr, "SERPAPI_API_KEY environment variable not set. Get an API key at https://serpapi.com")
				return fmt.Errorf("SERPAPI_API_KEY not set")
			}
			searcher = serpapi.NewSearcher(apiKey)
			if verbose {
				searcher = psslog.NewLoggingSearcher(searcher, logger)
			}
		}

		sitemaps := deps.Sitemaps
		if verbose {
			sitemaps = psslog.NewLoggingSitemapService(sitemaps, logger)
		}

		var content progscout.ContentExtractor = trafilatura.NewExtractor()
		if useReadability {
			content = readability.NewContentExtractor()
		}

		deps.Scraper = &scrape.Scraper{
			Searcher:    searcher,
			Fetcher:     fetcher,
			Extractor:   extractor,
			LLM:         llmExtractor,
			Content:     content,
			Converter:   htmltomarkdown.NewConverter(),
			Programs:    m.Programs,
			Queries:     m.Queries,
			Snapshots:   m.Snapshots,
			Sitemaps:    sitemaps,
			Seen:        bloom.NewDefaultVisitedSet(),
			RateLimiter: scrape.NewDomainLimiter(1.0),
			Concurrency: concurrency,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PROGSCOUT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "progscout.db"
	}
	dir := filepath.Join(home, ".progscout")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "progscout.db")
}
