package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/yanqian/trendlens/internal/domain/topics"
	"github.com/yanqian/trendlens/internal/domain/trending"
	"github.com/yanqian/trendlens/internal/infra/ideagen"
	"github.com/yanqian/trendlens/internal/infra/recordsource"
)

// newCLILogger keeps operational chatter on stderr so stdout stays
// reserved for command output.
func newCLILogger() *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	return slog.New(handler)
}

func buildService(clusters int) trending.Service {
	logger := newCLILogger()

	var source trending.Source
	if fixturePath != "" {
		source = recordsource.NewFixtureSource(fixturePath, logger)
	} else {
		source = recordsource.NewStaticSource(recordsource.DemoRecords())
	}

	clusterer := topics.NewClusterer(topics.Config{Clusters: clusters})
	cfg := trending.Config{
		DefaultRegion:   "US",
		MaxResults:      50,
		ExtendedResults: 100,
		TopKeywords:     15,
	}
	return trending.NewService(source, ideagen.NewTemplateWriter(), nil, clusterer, cfg, logger)
}

func runAnalyze(country, keyword string, maxResults int, jsonOutput bool) error {
	svc := buildService(0)
	report, err := svc.Report(context.Background(), trending.Query{
		Region:     country,
		Keyword:    keyword,
		MaxResults: maxResults,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Printf("Trending report for %s (%d of %d records kept)\n",
		report.Region, report.Stats.RecordsKept, report.Stats.RecordsFetched)
	if report.Keyword != "" {
		fmt.Printf("Dashboard filtered by keyword %q (%d matches, %d also trending)\n",
			report.Keyword, len(report.Videos), len(report.AlsoTrending))
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VIEWS\tENG%\tCATEGORY\tTITLE")
	for _, v := range report.Videos {
		fmt.Fprintf(w, "%d\t%.2f\t%s\t%s\n", v.Views, v.EngagementRate, v.CategoryID, v.Title)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(report.CategoryAnalysis) > 0 {
		fmt.Println("\nCategories by performance:")
		for _, c := range report.CategoryAnalysis {
			fmt.Printf("  %s: %.2f across %d videos\n", c.CategoryName, c.PerformanceScore, c.VideoCount)
		}
	}

	if len(report.KeywordAnalysis) > 0 {
		fmt.Println("\nTitle keywords:")
		for _, k := range report.KeywordAnalysis {
			fmt.Printf("  %s (%d)\n", k.Word, k.Count)
		}
	}

	fmt.Println()
	fmt.Println(report.Recommendations.RecommendationText)
	return nil
}

func runSuggest(country string, clusters int, jsonOutput bool) error {
	svc := buildService(clusters)
	kit, err := svc.Suggestions(context.Background(), trending.Query{Region: country})
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(kit)
	}

	fmt.Println(kit.Ideas)
	fmt.Println("\nTopic clusters:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CLUSTER\tVIDEOS\tENG\tTOP TERMS")
	for _, p := range kit.Clusters {
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%s\n", p.ClusterID, p.MemberCount, p.AverageEngagement, strings.Join(p.TopTerms, ", "))
	}
	return w.Flush()
}

func runCoach(country, genre string, jsonOutput bool) error {
	svc := buildService(0)
	report, err := svc.Coach(context.Background(), trending.Query{Region: country, Genre: genre})
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Println(report.Text)
	return nil
}
