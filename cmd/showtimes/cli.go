package main

import (
	"context"
	"io"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/showtimes"
)

// Output formats.
const (
	FormatText = "text"
	FormatXML  = "xml"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL         string          `short:"u" default:"${default_url}" env:"SHOWTIMES_URL" help:"Programme page URL"`
	Timeout     time.Duration   `short:"t" default:"10s" env:"SHOWTIMES_TIMEOUT" help:"Fetch timeout"`
	Browser     bool            `short:"b" help:"Render the page in headless Chrome before extracting"`
	RenderDelay time.Duration   `default:"0s" help:"Extra wait after page load when using --browser"`
	UserAgent   string          `help:"User-Agent header for plain HTTP fetches"`
	Format      string          `short:"f" enum:"text,xml" default:"text" help:"Output format (text, xml)"`
	Output      string          `short:"o" type:"path" help:"Write the report to a file instead of stdout"`
	Verbose     bool            `short:"v" help:"Log fetch and extraction details to stderr"`
	Config      kong.ConfigFlag `help:"Load flag defaults from a YAML file"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher   showtimes.Fetcher
	Extractor showtimes.Extractor
	Renderer  showtimes.Renderer

	// Store receives the report when set; otherwise it is written to Stdout.
	Store showtimes.ReportStore
}

// ShowCmd fetches the programme page and prints its schedule.
type ShowCmd struct {
	URL string
}
