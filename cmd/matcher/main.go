// Package main provides the entry point for the resume matcher service and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matcher",
	Short: "Resume matching and keyword insight engine",
	Long:  "Matcher scores resumes against job descriptions, classifies keyword coverage, and serves the analysis over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
