package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/telltaleatheist/ContentStudio/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("contentstudio %s (%s)\n", version.Version, version.Commit)
	},
}
