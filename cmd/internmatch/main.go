// Package main provides the entry point for the InternMatch HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "internmatch",
	Short: "InternMatch HTTP API Server",
	Long:  "InternMatch ranks internship applicants by scoring resume text against posting text and exposes postings, applications, and rankings via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
