package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var fixturePath string

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "trendlens",
		Short: "Analyze trending video metadata for timing, categories, and content ideas",
	}

	root.PersistentFlags().StringVar(&fixturePath, "fixture", "", "catalog fixture file (default: built-in demo records)")

	root.AddCommand(analyzeCmd())
	root.AddCommand(suggestCmd())
	root.AddCommand(coachCmd())

	return root
}

func analyzeCmd() *cobra.Command {
	var (
		country    string
		keyword    string
		maxResults int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Build the full trending report for a region",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(country, keyword, maxResults, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&country, "country", "US", "region code to analyze")
	cmd.Flags().StringVar(&keyword, "keyword", "", "narrow the video list to titles containing this keyword")
	cmd.Flags().IntVar(&maxResults, "max-results", 50, "max records to collect")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func suggestCmd() *cobra.Command {
	var (
		country    string
		clusters   int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Cluster trending titles and print content ideas",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(country, clusters, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&country, "country", "US", "region code to analyze")
	cmd.Flags().IntVar(&clusters, "clusters", 0, "number of topic clusters (default: 5)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func coachCmd() *cobra.Command {
	var (
		country    string
		genre      string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "coach",
		Short: "Write a coaching report for a region and optional genre",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCoach(country, genre, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&country, "country", "US", "region code to analyze")
	cmd.Flags().StringVar(&genre, "genre", "", "category id to focus on (e.g. 20 for Gaming)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}
