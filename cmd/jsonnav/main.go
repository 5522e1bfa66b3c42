package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.yaml.in/yaml/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/jsonnav"
	"github.com/erraggy/jsonnav/internal/mcpserver"
	"github.com/erraggy/jsonnav/navigate"
	"github.com/erraggy/jsonnav/parser"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("jsonnav v%s\n", jsonnav.Version())
	case "help", "-h", "--help":
		printUsage()
	case "extract":
		if err := handleExtract(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "locate":
		if err := handleLocate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// knownCommands is the set suggestCommand matches against.
var knownCommands = []string{"extract", "locate", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// titleCaser renders command names in report headings.
var titleCaser = cases.Title(language.English)

// printHeading prints a command report heading with an underline.
func printHeading(command string) {
	heading := fmt.Sprintf("jsonnav %s Report", titleCaser.String(command))
	fmt.Println(heading)
	fmt.Println(strings.Repeat("=", len(heading)))
	fmt.Println()
}

// outputFormats are the accepted values for the --format flag.
const outputFormats = "text, json, yaml"

// writeStructured marshals v to stdout in the requested format.
func writeStructured(v any, format string) error {
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case "yaml":
		data, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("invalid format '%s'. Valid formats: %s", format, outputFormats)
	}
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

// extractFlags contains flags for the extract command
type extractFlags struct {
	format string
}

func setupExtractFlags() (*flag.FlagSet, *extractFlags) {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	flags := &extractFlags{}

	fs.StringVar(&flags.format, "format", "text", "output format (text, json, yaml)")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: jsonnav extract [flags] <file|url> <path> [path...]\n\n")
		_, _ = fmt.Fprintf(output, "Extract values from a JSON or YAML document by dot-delimited paths.\n")
		_, _ = fmt.Fprintf(output, "A path crossing an array fans out across its elements.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  jsonnav extract orders.json order.items.sku\n")
		_, _ = fmt.Fprintf(output, "  jsonnav extract --format json orders.yaml order.id order.customer.name\n")
		_, _ = fmt.Fprintf(output, "  jsonnav extract https://example.com/orders.json order.items.qty\n")
	}

	return fs, flags
}

// extractResult is the structured output shape for the extract command.
type extractResult struct {
	Source  string         `json:"source"           yaml:"source"`
	Format  string         `json:"format"           yaml:"format"`
	Matches []extractMatch `json:"matches,omitempty" yaml:"matches,omitempty"`
}

type extractMatch struct {
	Path     string `json:"path"     yaml:"path"`
	Location string `json:"location" yaml:"location"`
	Value    any    `json:"value"    yaml:"value"`
}

func handleExtract(args []string) error {
	fs, flags := setupExtractFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("extract command requires a file path or URL and at least one path")
	}

	docPath := fs.Arg(0)
	paths := fs.Args()[1:]

	p := parser.New()
	startTime := time.Now()
	result, err := p.Parse(docPath)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	collector, err := navigate.CollectLeaves(result.Data, paths...)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("extracting paths: %w", err)
	}

	if flags.format != "text" {
		out := extractResult{
			Source: result.SourcePath,
			Format: string(result.SourceFormat),
		}
		for _, leaf := range collector.All {
			out.Matches = append(out.Matches, extractMatch{
				Path:     leaf.Path,
				Location: leaf.Location,
				Value:    leaf.Value,
			})
		}
		return writeStructured(out, flags.format)
	}

	printHeading("extract")
	fmt.Printf("jsonnav version: %s\n", jsonnav.Version())
	fmt.Printf("Document: %s\n", docPath)
	fmt.Printf("Source Format: %s\n", result.SourceFormat)
	fmt.Printf("Source Size: %s\n", parser.FormatBytes(result.SourceSize))
	fmt.Printf("Total Time: %v\n\n", totalTime)

	if len(collector.All) == 0 {
		fmt.Println("No matches found")
		return nil
	}

	fmt.Printf("Matches (%d):\n", len(collector.All))
	for _, leaf := range collector.All {
		fmt.Printf("  %s = %v\n", leaf.Location, leaf.Value)
	}
	return nil
}

// locateFlags contains flags for the locate command
type locateFlags struct {
	format string
	quiet  bool
}

func setupLocateFlags() (*flag.FlagSet, *locateFlags) {
	fs := flag.NewFlagSet("locate", flag.ContinueOnError)
	flags := &locateFlags{}

	fs.StringVar(&flags.format, "format", "text", "output format (text, json, yaml)")
	fs.BoolVar(&flags.quiet, "q", false, "suppress output; exit status reports whether all paths were found")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: jsonnav locate [flags] <file|url> <path> [path...]\n\n")
		_, _ = fmt.Fprintf(output, "Check which dot-delimited paths exist in a JSON or YAML document.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExit Status:\n")
		_, _ = fmt.Fprintf(output, "  0    All paths were found\n")
		_, _ = fmt.Fprintf(output, "  1    One or more paths were missing\n")
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  jsonnav locate orders.json order.customer.name order.shipping\n")
		_, _ = fmt.Fprintf(output, "  jsonnav locate -q config.yaml server.tls.cert\n")
	}

	return fs, flags
}

// locateResult is the structured output shape for the locate command.
type locateResult struct {
	Source  string       `json:"source"            yaml:"source"`
	Found   []string     `json:"found,omitempty"   yaml:"found,omitempty"`
	Missing []locateMiss `json:"missing,omitempty" yaml:"missing,omitempty"`
}

type locateMiss struct {
	Path      string `json:"path"       yaml:"path"`
	MissingAt string `json:"missing_at" yaml:"missing_at"`
}

func handleLocate(args []string) error {
	fs, flags := setupLocateFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("locate command requires a file path or URL and at least one path")
	}

	docPath := fs.Arg(0)
	paths := fs.Args()[1:]

	p := parser.New()
	result, err := p.Parse(docPath)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	locator, err := navigate.LocatePaths(result.Data, paths...)
	if err != nil {
		return fmt.Errorf("locating paths: %w", err)
	}

	if flags.quiet {
		if len(locator.Missing) > 0 {
			os.Exit(1)
		}
		return nil
	}

	if flags.format != "text" {
		out := locateResult{
			Source: result.SourcePath,
			Found:  locator.Found,
		}
		for _, miss := range locator.Missing {
			out.Missing = append(out.Missing, locateMiss{Path: miss.Path, MissingAt: miss.MissingAt})
		}
		if err := writeStructured(out, flags.format); err != nil {
			return err
		}
		if len(locator.Missing) > 0 {
			os.Exit(1)
		}
		return nil
	}

	printHeading("locate")
	fmt.Printf("jsonnav version: %s\n", jsonnav.Version())
	fmt.Printf("Document: %s\n\n", docPath)

	if len(locator.Found) > 0 {
		fmt.Printf("Found (%d):\n", len(locator.Found))
		for _, path := range locator.Found {
			fmt.Printf("  ✓ %s\n", path)
		}
		fmt.Println()
	}

	if len(locator.Missing) > 0 {
		fmt.Printf("Missing (%d):\n", len(locator.Missing))
		for _, miss := range locator.Missing {
			fmt.Printf("  ✗ %s (document ends at '%s')\n", miss.Path, miss.MissingAt)
		}
		fmt.Println()
		os.Exit(1)
	}

	fmt.Println("✓ All paths found")
	return nil
}

// handleMCP starts the MCP server over stdio until the client disconnects
// or the process receives an interrupt.
func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

func printUsage() {
	fmt.Println(`jsonnav - selective JSON/YAML tree navigation

Usage:
  jsonnav <command> [options]

Commands:
  extract     Extract values from a document by dot-delimited paths
  locate      Check which paths exist in a document
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  jsonnav extract orders.json order.items.sku
  jsonnav extract --format json orders.yaml order.id
  jsonnav locate orders.json order.customer.name order.shipping
  jsonnav locate -q config.yaml server.tls.cert
  jsonnav mcp

Run 'jsonnav <command> --help' for more information on a command.`)
}
