package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/skillpack/skillpack/classify"
	"github.com/skillpack/skillpack/codescan"
	"github.com/skillpack/skillpack/crawl"
	"github.com/skillpack/skillpack/gemini"
	"github.com/skillpack/skillpack/goquery"
	"github.com/skillpack/skillpack/htmltomarkdown"
	skillhttp "github.com/skillpack/skillpack/http"
	"github.com/skillpack/skillpack/lingua"
	"github.com/skillpack/skillpack/readability"
	skillslog "github.com/skillpack/skillpack/slog"
	"github.com/skillpack/skillpack/sqlite"
	"github.com/skillpack/skillpack/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// tokenizerModel is used for local token counting when budgeting by tokens.
const tokenizerModel = "gemini-2.5-flash"

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database backing the corpus store.
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
		kong.Name("skillpack"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'skillpack --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set SKILLPACK_DB to use a different database path")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps.DB = m.DB
	deps.Store = sqlite.NewRunService(m.DB)
	deps.Sitemaps = skillslog.NewLoggingSitemapService(skillhttp.NewSitemapService(nil), logger)

	if cmd == "build" {
		runner, err := m.buildRunner(ctx, cli, deps, logger)
		if err != nil {
			return err
		}
		deps.Runner = runner

		if cli.Build.Describe {
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
				return fmt.Errorf("GEMINI_API_KEY not set")
			}
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			deps.Describer = gemini.NewDescriber(client)
		}
	}

	return kongCtx.Run(deps)
}

// buildRunner wires the full ingestion pipeline for the build command.
func (m *Main) buildRunner(ctx context.Context, cli *CLI, deps *Dependencies, logger *slog.Logger) (*crawl.Runner, error) {
	cfg, err := buildConfig(&cli.Build)
	if err != nil {
		return nil, err
	}

	runner := &crawl.Runner{
		Config:       cfg,
		Fetcher:      skillslog.NewLoggingFetcher(skillhttp.NewFetcher(), logger),
		Sitemaps:     deps.Sitemaps,
		Links:        goquery.NewSelector(),
		Images:       goquery.NewImages(),
		Extractor:    &crawl.FallbackExtractor{Primary: readability.NewExtractor(), Fallback: trafilatura.NewExtractor()},
		Converter:    htmltomarkdown.NewConverter(cli.Build.Tables),
		CodeDetector: codescan.NewDetector(),
		Classifier:   classify.NewClassifier(classify.NewRegistry()),
		Languages:    lingua.NewDocDetector(),
		RateLimiter:  crawl.NewDomainLimiter(cli.Build.Rate),
		Progress:     progressPrinter(deps.Stderr),
	}

	if cfg.ChunkSizeUnit == "tokens" {
		counter, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create token counter: %w", err)
		}
		runner.TokenCounter = counter
	}

	return runner, nil
}

func defaultDBPath() string {
	if path := os.Getenv("SKILLPACK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "skillpack.db"
	}
	dir := filepath.Join(home, ".skillpack")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "skillpack.db")
}

// progressPrinter reports crawl progress on one updating line.
func progressPrinter(w io.Writer) crawl.ProgressFunc {
	return func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressCompleted:
			fmt.Fprintf(w, "\r%d pages", event.Completed)
		case crawl.ProgressFailed:
			fmt.Fprintf(w, "\rfailed %s: %v\n", event.Identity, event.Error)
		case crawl.ProgressFinished:
			fmt.Fprintf(w, "\ringested %d pages\n", event.Completed)
		}
	}
}
