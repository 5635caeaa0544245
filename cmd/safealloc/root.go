package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/safealloc/internal/logger"
	"github.com/joshuapare/safealloc/rawmem"
	"github.com/joshuapare/safealloc/registry"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	backend string
	limit   int64
)

// exitFunc terminates the process; tests swap it for a recorder.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "safealloc",
	Short: "Exercise a tracking memory registry",
	Long: `safealloc drives a memory registry that records every block it hands
out, releases blocks individually, and frees everything that is still
outstanding before the process exits.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose && !quiet {
			logger.Init(logger.Options{Enabled: true, Level: slog.LevelDebug})
		}
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&backend, "backend", "mmap", "Raw allocator backend (mmap, heap)")
	rootCmd.PersistentFlags().
		Int64Var(&limit, "limit", 0, "Byte budget for tracked memory (0 = unlimited)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRegistry builds a registry from the global flags.
func newRegistry() (*registry.Registry, error) {
	var a rawmem.Allocator
	switch backend {
	case "mmap":
		a = rawmem.NewMmap()
	case "heap":
		a = rawmem.NewHeap()
	default:
		return nil, fmt.Errorf("unknown backend %q (want mmap or heap)", backend)
	}
	if limit < 0 {
		return nil, fmt.Errorf("limit must not be negative, got %d", limit)
	}
	return registry.New(registry.Options{
		Allocator: a,
		Limit:     limit,
		Exit:      exitFunc,
		Logger:    logger.L,
	}), nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
