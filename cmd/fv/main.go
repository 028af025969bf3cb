// Package main is the entry point for the fv viewer.
package main

import (
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/fv/internal/cli"
	"github.com/kk-code-lab/fv/internal/logging"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Set UTF-8 as fallback encoding so text renders on terminals with an
	// unknown locale.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return 1
	}

	return 0
}
