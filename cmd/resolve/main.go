// Package main provides the resolve command, the runtime half of the cache
// buster: it loads a file map manifest and translates logical asset paths
// into their fingerprinted counterparts.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/isseis/go-cache-buster/internal/cmdcommon"
	"github.com/isseis/go-cache-buster/internal/filemap"
)

var errNoPathsProvided = errors.New("at least one asset path must be provided as a positional argument")

type resolveConfig struct {
	manifestPath string
	fromEnv      bool
	fullPath     bool
	paths        []string
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

	fm, err := loadFileMap(cfg)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error loading file map: %v\n", err)
		return 1
	}

	missing := 0
	rows := make([][]string, 0, len(cfg.paths))
	for _, path := range cfg.paths {
		resolved, ok := lookup(fm, path, cfg.fullPath)
		if !ok {
			missing++
			resolved = "(not found)"
		}
		rows = append(rows, []string{path, resolved})
	}

	_, _ = fmt.Fprintln(stdout, cmdcommon.RenderTable([]string{"PATH", "RESOLVED"}, rows))
	if missing > 0 {
		_, _ = fmt.Fprintf(stderr, "%d of %d paths not found\n", missing, len(cfg.paths))
		return 1
	}
	return 0
}

func lookup(fm *filemap.FileMap, path string, full bool) (string, bool) {
	if full {
		return fm.GetFullPath(path)
	}
	return fm.Get(path)
}

func loadFileMap(cfg *resolveConfig) (*filemap.FileMap, error) {
	if cfg.fromEnv {
		return filemap.Load()
	}
	return filemap.ReadManifestFile(cfg.manifestPath)
}

func parseArgs(args []string, stderr io.Writer) (*resolveConfig, *flag.FlagSet, error) {
	cfg := &resolveConfig{}

	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs, stderr) }
	fs.StringVar(&cfg.manifestPath, "manifest", cmdcommon.DefaultManifestFile, "Path to the file map manifest")
	fs.BoolVar(&cfg.fromEnv, "env", false, fmt.Sprintf("Load the file map from the %s environment variable instead of a file", filemap.EnvFileMap))
	fs.BoolVar(&cfg.fullPath, "full", false, "Print full destination paths including the base directory")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	cfg.paths = fs.Args()
	if len(cfg.paths) == 0 {
		return nil, fs, errNoPathsProvided
	}
	return cfg, fs, nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	if fs == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Usage: %s [flags] <path> [<path>...]\n", filepath.Base(os.Args[0]))
	fs.PrintDefaults()
}
