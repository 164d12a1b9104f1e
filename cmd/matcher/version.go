package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the matcher version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("matcher", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCommand)
}
