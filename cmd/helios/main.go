// Package main is the entry point for the Helios editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/helios/internal/app"
	"github.com/dshills/helios/internal/config"
	"github.com/dshills/helios/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type flags struct {
	configPath string
	logLevel   string
	logFile    string
	saveName   string
	noWatch    bool
	files      []string
}

func main() {
	os.Exit(run())
}

func run() int {
	f := parseFlags()

	path := f.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	loader := config.NewLoader(config.WithFile(path), config.WithOverrides(f.overrides()))
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}

	logger, closer := app.NewFileLogger(cfg.Logging)
	defer closer.Close()
	app.SetLogger(logger)

	opts := app.Options{
		Files:  f.files,
		Config: &cfg,
		Logger: logger,
	}

	if path != "" && !f.noWatch {
		reloader, err := config.NewReloader(loader)
		if err != nil {
			// Editing still works without live reload.
			logger.Warn("config reload disabled: %v", err)
		} else {
			defer reloader.Close()
			opts.Reloads = reloader
		}
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	opts.Backend = term

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// overrides turns the flags that were set into config values.
func (f flags) overrides() map[string]any {
	values := make(map[string]any)
	logging := make(map[string]any)
	if f.logLevel != "" {
		logging["level"] = f.logLevel
	}
	if f.logFile != "" {
		logging["file"] = f.logFile
	}
	if len(logging) > 0 {
		values["logging"] = logging
	}
	if f.saveName != "" {
		values["editor"] = map[string]any{"default_save_name": f.saveName}
	}
	return values
}

func parseFlags() flags {
	var f flags
	var showVersion bool
	var showHelp bool

	flag.StringVar(&f.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&f.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&f.logFile, "log-file", "", "Write logs to this file")
	flag.StringVar(&f.saveName, "save-name", "", "File name used when saving an unnamed buffer")
	flag.BoolVar(&f.noWatch, "no-watch", false, "Do not reload the config file when it changes")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Helios - modal terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: helios [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  helios                      Open with empty buffer\n")
		fmt.Fprintf(os.Stderr, "  helios notes.txt todo.txt   Open two files\n")
		fmt.Fprintf(os.Stderr, "  helios -log-file helios.log Log to a rotating file\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Helios %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	f.files = flag.Args()
	return f
}
