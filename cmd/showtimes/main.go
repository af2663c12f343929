package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/showtimes"
	"github.com/fwojciec/showtimes/etree"
	"github.com/fwojciec/showtimes/fs"
	"github.com/fwojciec/showtimes/goquery"
	stshttp "github.com/fwojciec/showtimes/http"
	"github.com/fwojciec/showtimes/rod"
	stsslog "github.com/fwojciec/showtimes/slog"
	"github.com/fwojciec/showtimes/yaml"
)

// DefaultURL is the programme page of the Casino Aschaffenburg cinema.
const DefaultURL = "https://www.casino-aschaffenburg.de/programm-tickets/#default"

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
	// Configuration files consulted for flag defaults, in order.
	// Missing files are ignored. Set before calling Run().
	ConfigPaths []string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: defaultConfigPaths(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("showtimes"),
		kong.Description("Print the cinema programme grouped by date"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"default_url": DefaultURL},
		kong.Configuration(yaml.Loader, m.ConfigPaths...),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	fetcher, err := newFetcher(cli)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed to use --browser")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer fetcher.Close()
	deps.Fetcher = fetcher

	deps.Extractor = goquery.NewExtractor()
	if logger != nil {
		deps.Fetcher = stsslog.NewLoggingFetcher(deps.Fetcher, logger)
		deps.Extractor = stsslog.NewLoggingExtractor(deps.Extractor, logger)
	}

	deps.Renderer = newRenderer(cli.Format)
	if cli.Output != "" {
		deps.Store = fs.NewReportStore(cli.Output, deps.Renderer)
	}

	cmd := &ShowCmd{URL: cli.URL}
	return cmd.Run(deps)
}

func newFetcher(cli *CLI) (showtimes.Fetcher, error) {
	if cli.Browser {
		return rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithRenderDelay(cli.RenderDelay),
		)
	}

	opts := []stshttp.Option{stshttp.WithTimeout(cli.Timeout)}
	if cli.UserAgent != "" {
		opts = append(opts, stshttp.WithUserAgent(cli.UserAgent))
	}
	return stshttp.NewFetcher(opts...), nil
}

func newRenderer(format string) showtimes.Renderer {
	switch format {
	case FormatXML:
		return etree.NewRenderer()
	default:
		return showtimes.TextRenderer{}
	}
}

func defaultConfigPaths() []string {
	if path := os.Getenv("SHOWTIMES_CONFIG"); path != "" {
		return []string{path}
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "showtimes", "config.yaml")}
}
