// Package main is the entry point for the ced editor.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/cedward/ced/internal/app"
	"github.com/cedward/ced/internal/config"
	"github.com/cedward/ced/internal/renderer/backend"
	"github.com/cedward/ced/internal/syntax"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	syntaxPath   string
	settingsPath string
	logPath      string
	logLevel     string
	resume       bool
	files        []string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: ced must run on a terminal")
		return 1
	}

	settings, err := config.Load(config.DefaultFS(), opts.settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading %s: %v\n", opts.settingsPath, err)
		return 1
	}

	defs, err := syntax.Load(opts.syntaxPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading %s: %v\n", opts.syntaxPath, err)
		return 1
	}

	logger, closeLog, err := newLogger(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	be, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := be.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer be.Fini()

	editor := app.New(be,
		app.WithSettings(settings),
		app.WithSyntax(defs),
		app.WithLogger(logger),
	)

	switch {
	case len(opts.files) > 0:
		if err := editor.OpenFile(opts.files[0]); err != nil {
			be.Fini()
			fmt.Fprintf(os.Stderr, "Error: opening %s: %v\n", opts.files[0], err)
			return 1
		}
	case opts.resume:
		editor.RestoreSession()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := editor.Run(ctx); err != nil {
		be.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newLogger builds the editor logger. Without -log the terminal owns
// the screen, so everything is discarded.
func newLogger(opts options) (*app.Logger, func(), error) {
	if opts.logPath == "" {
		return app.NewLogger(nil, app.ParseLogLevel(opts.logLevel)), func() {}, nil
	}
	f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return app.NewLogger(f, app.ParseLogLevel(opts.logLevel)), func() { f.Close() }, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.syntaxPath, "syntax", "highlight.syntax", "Path to the syntax definition file")
	flag.StringVar(&opts.settingsPath, "settings", config.DefaultPath, "Path to the settings file")
	flag.StringVar(&opts.logPath, "log", "", "Write debug logs to this file")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.resume, "resume", false, "Reopen the file from the last session")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ced - a tiny terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: ced [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ced                 Open with an empty buffer\n")
		fmt.Fprintf(os.Stderr, "  ced notes.txt       Open saves/notes.txt\n")
		fmt.Fprintf(os.Stderr, "  ced ./main.go       Open a file by path\n")
		fmt.Fprintf(os.Stderr, "  ced -resume         Continue where you left off\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("%s (%s, commit %s)\n", app.Version, version, commit)
		os.Exit(0)
	}

	switch opts.logLevel {
	case "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	opts.files = flag.Args()
	return opts
}
