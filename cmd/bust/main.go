// Package main provides the bust command, the build-time half of the cache
// buster: it processes a source directory according to a TOML configuration,
// writes fingerprinted copies into the result directory, and persists the
// resulting file map manifest.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/isseis/go-cache-buster/internal/cmdcommon"
	"github.com/isseis/go-cache-buster/internal/logging"
	"github.com/isseis/go-cache-buster/internal/processor"
)

var errConfigRequired = errors.New("-config is required")

type bustConfig struct {
	configPath   string
	manifestPath string
	quiet        bool
	verbose      bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, fs, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		printUsage(fs, stderr)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logging.Setup(stderr, logging.Options{Level: level, Quiet: cfg.quiet})

	procCfg, err := processor.LoadConfig(cfg.configPath)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	proc, err := processor.New(procCfg)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fm, err := proc.Process()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error processing %s: %v\n", procCfg.Source, err)
		return 1
	}

	if err := fm.WriteFile(cfg.manifestPath); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error writing manifest: %v\n", err)
		return 1
	}

	if !cfg.quiet {
		_, _ = fmt.Fprintln(stdout, renderFileMap(fm.Entries()))
	}
	_, _ = fmt.Fprintf(stdout, "Processed %d files from %s into %s\n", fm.Len(), procCfg.Source, procCfg.Result)
	_, _ = fmt.Fprintf(stdout, "Manifest written to %s\n", cfg.manifestPath)
	return 0
}

func parseArgs(args []string, stderr io.Writer) (*bustConfig, *flag.FlagSet, error) {
	cfg := &bustConfig{}

	fs := flag.NewFlagSet("bust", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs, stderr) }
	fs.StringVar(&cfg.configPath, "config", "", "Path to the TOML configuration file (required)")
	fs.StringVar(&cfg.configPath, "c", "", "Short alias for -config")
	fs.StringVar(&cfg.manifestPath, "manifest", cmdcommon.DefaultManifestFile, "Where to write the file map manifest")
	fs.BoolVar(&cfg.quiet, "quiet", false, "Suppress the file map listing")
	fs.BoolVar(&cfg.verbose, "verbose", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	if cfg.configPath == "" {
		return nil, fs, errConfigRequired
	}
	return cfg, fs, nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	if fs == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Usage: %s -config <file> [flags]\n", filepath.Base(os.Args[0]))
	fs.PrintDefaults()
}

func renderFileMap(entries map[string]string) string {
	originals := make([]string, 0, len(entries))
	for original := range entries {
		originals = append(originals, original)
	}
	sort.Strings(originals)

	rows := make([][]string, 0, len(originals))
	for _, original := range originals {
		rows = append(rows, []string{original, entries[original]})
	}
	return cmdcommon.RenderTable([]string{"ORIGINAL", "FINGERPRINTED"}, rows)
}
