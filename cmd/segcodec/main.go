// Package main provides the segcodec CLI tool for inspecting registered
// codecs and verifying persisted segment files.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
