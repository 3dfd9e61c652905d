package main

import (
	"context"
	"io"
	"log/slog"

	locaties "github.com/Dexagod/interreg-static-test"
	"github.com/Dexagod/interreg-static-test/crawl"
	"github.com/Dexagod/interreg-static-test/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	DB      *sqlite.DB
	Journal locaties.CrawlJournal
	Crawler *crawl.Crawler
	Sitemap locaties.SitemapService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl   CrawlCmd   `cmd:"" help:"Crawl the listing pages and write the record set"`
	Sitemap SitemapCmd `cmd:"" help:"Preview listing URLs discovered via the site's sitemap"`
	Runs    RunsCmd    `cmd:"" help:"List recent crawl runs from the journal"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL        string  `env:"LOCATIES_START_URL" default:"https://www.jeugdlocaties.be/locaties" help:"Start URL of the listing pages"`
	Out        string  `short:"o" env:"LOCATIES_OUT" default:"locaties.json" help:"Output path for the JSON record array"`
	TSV        string  `env:"LOCATIES_TSV" help:"Optional output path for a TSV export"`
	MaxRecords int     `env:"LOCATIES_MAX_RECORDS" default:"0" help:"Maximum unique records to keep (0 = unlimited)"`
	MaxPages   int     `env:"LOCATIES_MAX_PAGES" default:"0" help:"Maximum listing pages to visit (0 = unlimited)"`
	Headful    bool    `help:"Run the browser visibly instead of headless"`
	NoJournal  bool    `help:"Disable the crawl journal"`
	RPS        float64 `name:"rps" default:"1" help:"Page transitions per second"`
	Verbose    bool    `short:"v" help:"Enable debug logging"`
}

// SitemapCmd is the "sitemap" subcommand.
type SitemapCmd struct {
	URL string `env:"LOCATIES_START_URL" default:"https://www.jeugdlocaties.be/locaties" help:"Site whose sitemap to inspect"`
	All bool   `help:"Print every sitemap URL, not only listing detail URLs"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Limit int `default:"20" help:"Number of runs to show"`
}
