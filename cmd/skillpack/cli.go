package main

import (
	"context"
	"io"

	"github.com/skillpack/skillpack"
	"github.com/skillpack/skillpack/crawl"
	"github.com/skillpack/skillpack/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	DB        *sqlite.DB
	Store     skillpack.CorpusStore
	Sitemaps  skillpack.SitemapService
	Runner    *crawl.Runner
	Describer skillpack.Describer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Build   BuildCmd   `cmd:"" help:"Crawl a documentation site and build skill packages"`
	Preview PreviewCmd `cmd:"" help:"Show the URLs a build would ingest, without crawling"`
	Plan    PlanCmd    `cmd:"" help:"Show the package boundaries for a stored run"`
	Runs    RunsCmd    `cmd:"" help:"List stored ingestion runs"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored run and its pages"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Name string `arg:"" help:"Package base name"`
	URL  string `arg:"" help:"Documentation URL"`

	Out      string   `short:"o" default:"." help:"Output directory for skill packages"`
	Filter   []string `short:"F" name:"filter" help:"Include URLs matching regex (repeatable)"`
	Exclude  []string `short:"X" name:"exclude" help:"Exclude URLs matching regex (repeatable)"`
	MaxPages int      `default:"10000" help:"Maximum pages to ingest"`
	Rate     float64  `name:"rate" default:"1.0" help:"Seconds between requests per domain"`
	Workers  int      `short:"c" default:"8" help:"Concurrent extraction limit"`
	Strategy string   `default:"auto" enum:"auto,none,category,size,router" help:"Splitting strategy"`
	Target   int      `default:"5000" help:"Target pages per package"`
	Budget   int      `default:"100000" help:"Chunk size budget"`
	Unit     string   `default:"chars" enum:"chars,bytes,tokens" help:"Chunk budget unit"`
	Tables   bool     `help:"Convert HTML tables to Markdown pipe tables"`
	Describe bool     `help:"Generate package descriptions with Gemini (needs GEMINI_API_KEY)"`
	DryRun   bool     `name:"dry-run" help:"Plan the split without writing packages"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	URL    string   `arg:"" help:"Documentation URL"`
	Filter []string `short:"F" name:"filter" help:"Include URLs matching regex (repeatable)"`
}

// PlanCmd is the "plan" subcommand.
type PlanCmd struct {
	RunID string `arg:"" help:"Stored run ID"`

	Name     string `default:"docs" help:"Package base name"`
	Strategy string `default:"auto" enum:"auto,none,category,size,router" help:"Splitting strategy"`
	Target   int    `default:"5000" help:"Target pages per package"`
	Budget   int    `default:"100000" help:"Chunk size budget"`
	Unit     string `default:"chars" enum:"chars,bytes,tokens" help:"Chunk budget unit"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	RunID string `arg:"" help:"Stored run ID"`
	Force bool   `help:"Confirm deletion"`
}
