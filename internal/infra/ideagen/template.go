package ideagen

import (
	"context"
	"fmt"
	"strings"

	"github.com/yanqian/trendlens/internal/domain/category"
	"github.com/yanqian/trendlens/internal/domain/trending"
)

// TemplateWriter renders idea and coaching prose from fixed templates,
// avoiding any generative backend. Identical briefs produce identical
// text.
type TemplateWriter struct{}

// NewTemplateWriter constructs the writer.
func NewTemplateWriter() *TemplateWriter {
	return &TemplateWriter{}
}

var ideaLines = []string{
	"Build a straightforward explainer around %q; clusters like this reward clarity.",
	"Pair %q with a before-and-after hook in the first fifteen seconds.",
	"Film a response to the current %q wave instead of repeating it.",
	"Cut a short-form version of your best %q moment to catch search traffic.",
	"Team up with a smaller channel on %q and swap audiences.",
}

// Ideas implements trending.IdeaWriter.
func (w *TemplateWriter) Ideas(_ context.Context, brief trending.IdeaBrief) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Content ideas for %s, drawn from %d trending videos.\n\n",
		brief.Region, brief.VideoCount)

	if len(brief.TopTerms) > 0 {
		fmt.Fprintf(&b, "The strongest topic cluster centers on %s. ", joinTerms(brief.TopTerms))
	}
	fmt.Fprintf(&b, "Average engagement there runs at %.2f%% and overall title sentiment reads %s.\n\n",
		brief.AverageEngagement, tone(brief.Sentiment))

	if len(brief.TopTerms) > 0 {
		b.WriteString("Ideas worth trying:\n")
		for i, term := range brief.TopTerms {
			if i == len(ideaLines) {
				break
			}
			fmt.Fprintf(&b, "%d. "+ideaLines[i]+"\n", i+1, term)
		}
	}

	if len(brief.SampleTitles) > 0 {
		b.WriteString("\nTitles setting the pace right now:\n")
		for _, title := range brief.SampleTitles {
			fmt.Fprintf(&b, "- %s\n", title)
		}
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// CoachReport implements trending.IdeaWriter.
func (w *TemplateWriter) CoachReport(_ context.Context, brief trending.CoachBrief) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Trending coaching for %s, %s.\n\n", brief.Region, genreLabel(brief.Genre))

	if len(brief.Videos) > 0 {
		leader := brief.Videos[0]
		for _, v := range brief.Videos[1:] {
			if v.Views > leader.Views {
				leader = v
			}
		}
		fmt.Fprintf(&b, "You are up against %d trending videos; the pack leader is %q at %d views.\n\n",
			len(brief.Videos), leader.Title, leader.Views)

		b.WriteString("Standouts to study:\n")
		for _, v := range brief.Videos {
			fmt.Fprintf(&b, "- %q, %d views, %.2f%% engagement", v.Title, v.Views, v.EngagementRate)
			if len(v.Tags) > 0 {
				fmt.Fprintf(&b, ", tagged %s", strings.Join(v.Tags, ", "))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if brief.Recommendation.RecommendationText != "" {
		b.WriteString(brief.Recommendation.RecommendationText)
		b.WriteString("\n\n")
	}
	b.WriteString("Keep titles specific, front-load the subject, and publish on your strongest hour consistently.")
	return b.String(), nil
}

func genreLabel(genre string) string {
	if strings.TrimSpace(genre) == "" {
		return "all genres"
	}
	return "genre " + category.Name(genre)
}

// joinTerms renders "a, b and c" from the ranked term list.
func joinTerms(terms []string) string {
	quoted := make([]string, len(terms))
	for i, term := range terms {
		quoted[i] = fmt.Sprintf("%q", term)
	}
	if len(quoted) == 1 {
		return quoted[0]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " and " + quoted[len(quoted)-1]
}

func tone(sentiment float64) string {
	switch {
	case sentiment > 0.1:
		return "positive"
	case sentiment < -0.1:
		return "negative"
	default:
		return "neutral"
	}
}

var _ trending.IdeaWriter = (*TemplateWriter)(nil)
