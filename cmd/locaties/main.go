package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	locaties "github.com/Dexagod/interreg-static-test"
	"github.com/Dexagod/interreg-static-test/crawl"
	"github.com/Dexagod/interreg-static-test/goquery"
	lochttp "github.com/Dexagod/interreg-static-test/http"
	"github.com/Dexagod/interreg-static-test/rod"
	locslog "github.com/Dexagod/interreg-static-test/slog"
	"github.com/Dexagod/interreg-static-test/sqlite"
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
	// Journal database path. Set before calling Run().
	DBPath string

	// SQLite database used by the journal service.
	DB *sqlite.DB
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
		kong.Name("locaties"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'locaties --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags.
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cmd == "crawl" && cli.Crawl.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire the journal for commands that use it.
	if cmd == "runs" || (cmd == "crawl" && !cli.Crawl.NoJournal) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set LOCATIES_DB to use a different journal path\n")
			return fmt.Errorf("failed to open journal at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.DB = m.DB
		deps.Journal = locslog.NewLoggingJournal(sqlite.NewJournalService(m.DB), deps.Logger)
	}

	deps.Sitemap = locslog.NewLoggingSitemapService(lochttp.NewSitemapService(nil), deps.Logger)

	if cmd == "crawl" {
		browser, err := rod.NewBrowser(
			rod.WithHeadless(!cli.Crawl.Headful),
			rod.WithLogger(deps.Logger),
		)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer browser.Close()

		deps.Crawler = &crawl.Crawler{
			Browser: locslog.NewLoggingBrowser(browser, deps.Logger),
			Parser:  goquery.NewParser(),
			Journal: deps.Journal,
			Pacer:   crawl.NewPacer(cli.Crawl.RPS),
			Logger:  deps.Logger,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("LOCATIES_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "locaties.db"
	}
	dir := filepath.Join(home, ".locaties")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "locaties.db")
}

// listingFilter is the URL shape shared by the sitemap preview and the
// crawl cross-check.
func listingFilter() *locaties.URLFilter {
	return lochttp.ListingFilter()
}
