package main

import (
	"github.com/spf13/cobra"

	"github.com/lexigraph/segcodec"
	"github.com/lexigraph/segcodec/lucene46"
)

var (
	// Global flags.
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "segcodec",
	Short: "Inspect segment codecs and verify persisted segment files",
	Long: `Segcodec is a CLI tool for working with the pluggable segment-format
registry: listing the codecs built into this binary, inspecting a codec
by name, and verifying that persisted segment files carry valid,
recognizable format headers.

Examples:
  # List registered codec names
  segcodec list

  # Show the formats bundled by a codec
  segcodec inspect Lucene46

  # Verify segment files in a directory
  segcodec verify --data-dir ./index`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// builtinHandle builds a handle over the codecs compiled into this binary.
func builtinHandle() (*segcodec.Handle, error) {
	l46, err := lucene46.New()
	if err != nil {
		return nil, err
	}
	registry, err := segcodec.NewMapRegistry(l46)
	if err != nil {
		return nil, err
	}
	return segcodec.NewHandle(registry)
}
