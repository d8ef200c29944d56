package main

import (
	"github.com/spf13/cobra"

	"github.com/telltaleatheist/ContentStudio/internal/version"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "contentstudio",
	Short: "Chapter marker generation for long-form video and audio",
	Long: `ContentStudio turns time-coded transcripts into validated chapter
markers ready for publishing.

The pipeline chunks a transcript at sentence boundaries, optionally
groups chunks into topic-labeled segments for long inputs, asks a
language model for interesting positions, and maps those positions
back to timestamp-accurate, policy-compliant chapters.`,
	Version: version.Version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "config.yaml", "config file path",
	)

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}
