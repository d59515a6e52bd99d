package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagefix"
	"github.com/fwojciec/pagefix/batch"
	"github.com/fwojciec/pagefix/fs"
	"github.com/fwojciec/pagefix/goquery"
	"github.com/fwojciec/pagefix/layout"
	pfslog "github.com/fwojciec/pagefix/slog"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Help output ends in kong's Exit hook; remember it so that a help
	// request mixed with other arguments never reaches the files.
	var helped bool
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagewrap"),
		kong.Description("Rebuild question bank pages around their container element, in place"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { helped = true }),
		kong.Vars{"default_title": layout.DefaultTitle},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no files provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if helped {
		return nil
	}
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	var (
		files     pagefix.FileStore          = fs.NewStore()
		extractor pagefix.ContainerExtractor = goquery.NewExtractor()
	)

	// Wrap services with logging decorators
	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		files = pfslog.NewLoggingFileStore(files, logger)
		extractor = pfslog.NewLoggingExtractor(extractor, logger)
	}

	deps.Wrapper = &batch.Wrapper{
		Files:        files,
		Extractor:    extractor,
		Renderer:     layout.NewRenderer(),
		DefaultTitle: cli.DefaultTitle,
	}

	cmd := &WrapCmd{Files: cli.Files}

	return cmd.Run(deps)
}
