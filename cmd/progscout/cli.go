package main

import (
	"context"
	"io"

	"github.com/progscout/progscout"
	"github.com/progscout/progscout/scrape"
	"github.com/progscout/progscout/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Programs  progscout.ProgramService
	Queries   progscout.QueryService
	Snapshots progscout.SnapshotService
	Sitemaps  progscout.SitemapService
	Scraper   *scrape.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Search  SearchCmd  `cmd:"" help:"Search the web for educational programs on a topic"`
	Crawl   CrawlCmd   `cmd:"" help:"Crawl a provider site's sitemap for programs"`
	List    ListCmd    `cmd:"" help:"List stored programs"`
	Show    ShowCmd    `cmd:"" help:"Show a stored program in full"`
	Approve ApproveCmd `cmd:"" help:"Mark a program as reviewed and approved"`
	Stats   StatsCmd   `cmd:"" help:"Show corpus-wide counts"`
	History HistoryCmd `cmd:"" help:"Show past search runs"`
	Export  ExportCmd  `cmd:"" help:"Export stored snapshots as markdown files"`
	Serve   ServeCmd   `cmd:"" help:"Serve the stored programs over a JSON API"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Topic       string `arg:"" help:"Search topic, e.g. 'welding'"`
	Type        string `default:"Any" help:"Program type (Course, Seminar, Video, Other)"`
	Mode        string `default:"Any" help:"Delivery mode (Online, In-person)"`
	Cost        string `default:"Any" help:"Cost filter (Free, Paid)"`
	Country     string `default:"Any" help:"Country to search in"`
	Region      string `default:"Any" help:"Region within the country"`
	Max         int    `short:"n" default:"10" help:"Maximum search results to process"`
	Concurrency int    `short:"c" default:"5" help:"Concurrent fetch limit"`
	Browser     bool   `short:"b" help:"Fetch pages with a headless browser"`
	LLM         bool   `help:"Extract with Gemini instead of the heuristic pipeline"`
	Readability bool   `help:"Use the readability content extractor instead of trafilatura"`
	Verbose     bool   `short:"v" help:"Log collaborator calls to stderr"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL         string   `arg:"" help:"Provider site URL"`
	Filter      []string `short:"F" name:"filter" help:"Include URLs matching regex (repeatable)"`
	Exclude     []string `short:"X" help:"Exclude URLs matching regex (repeatable)"`
	Concurrency int      `short:"c" default:"5" help:"Concurrent fetch limit"`
	Browser     bool     `short:"b" help:"Fetch pages with a headless browser"`
	LLM         bool     `help:"Extract with Gemini instead of the heuristic pipeline"`
	Readability bool     `help:"Use the readability content extractor instead of trafilatura"`
	Verbose     bool     `short:"v" help:"Log collaborator calls to stderr"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Type    string `help:"Filter by program type"`
	Mode    string `help:"Filter by delivery mode"`
	Cost    string `help:"Filter by cost (Free, Paid)"`
	Country string `help:"Filter by country substring"`
	City    string `help:"Filter by city substring"`
	Limit   int    `short:"n" default:"50" help:"Maximum programs to show"`
	Offset  int    `help:"Number of programs to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Program ID"`
}

// ApproveCmd is the "approve" subcommand.
type ApproveCmd struct {
	ID     string `arg:"" help:"Program ID"`
	Revoke bool   `help:"Remove approval instead"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `short:"n" default:"20" help:"Number of past searches to show"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir    string `arg:"" help:"Directory to write markdown files to"`
	Domain string `help:"Only export snapshots from this domain"`
	Limit  int    `short:"n" help:"Maximum snapshots to export"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"HTTP listen address"`
}
