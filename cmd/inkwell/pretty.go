package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/sozercan/inkwell/apimodels"
)

var (
	header = color.New(color.FgCyan, color.Bold).SprintFunc()
	label  = color.New(color.FgYellow).SprintFunc()
	good   = color.New(color.FgGreen).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
)

func printPretty(w io.Writer, result any) {
	switch r := result.(type) {
	case *apimodels.AnalyzeResponse:
		fmt.Fprintf(w, "%s\n", header("=== Analysis ==="))
		printSuggestions(w, r.Suggestions)
		fmt.Fprintf(w, "\n%s polarity %.2f, subjectivity %.2f\n", label("Sentiment:"), r.Sentiment.Polarity, r.Sentiment.Subjectivity)
		fmt.Fprintf(w, "%s %d words, %d sentences, %.2f tokens per sentence\n",
			label("Stats:"), r.Stats.WordCount, r.Stats.SentenceCount, r.Stats.AvgSentenceLength)

	case *apimodels.GrammarResponse:
		fmt.Fprintf(w, "%s\n", header("=== Grammar ==="))
		if len(r.Suggestions) == 0 {
			fmt.Fprintf(w, "  %s\n", good("No issues found"))
		}
		for _, f := range r.Suggestions {
			fmt.Fprintf(w, "  %s %s %s\n", label(fmt.Sprintf("[%d:%d]", f.Offset, f.Offset+f.Length)), f.Message, gray(f.RuleID))
			if len(f.Replacements) > 0 {
				fmt.Fprintf(w, "    → %s\n", good(strings.Join(f.Replacements, ", ")))
			}
		}

	case *apimodels.RecommendResponse:
		fmt.Fprintf(w, "%s\n", header("=== Recommendations ==="))
		if len(r.Recommendations) == 0 {
			fmt.Fprintf(w, "  %s\n", good("Nothing to add"))
		}
		for _, rec := range r.Recommendations {
			fmt.Fprintf(w, "  %s %s\n", label(string(rec.Type)+":"), rec.Message)
		}
		printList(w, "Key phrases", r.KeyPhrases)
		entities := make([]string, len(r.Entities))
		for i, e := range r.Entities {
			entities[i] = fmt.Sprintf("%s (%s)", e.Text, e.Label)
		}
		printList(w, "Entities", entities)
		printList(w, "Keywords", r.Keywords)

	case *apimodels.SummaryResponse:
		fmt.Fprintf(w, "%s\n", header("=== Summary ==="))
		fmt.Fprintf(w, "%s\n", r.Summary)
		fmt.Fprintf(w, "%s\n", gray(fmt.Sprintf("%d of %d words", r.SummaryLength, r.OriginalLength)))

	case *apimodels.StyleResponse:
		fmt.Fprintf(w, "%s\n", header("=== Style ==="))
		printSuggestions(w, r.Suggestions)

	default:
		fmt.Fprintf(w, "%v\n", result)
	}
}

func printSuggestions(w io.Writer, suggestions []apimodels.Suggestion) {
	if len(suggestions) == 0 {
		fmt.Fprintf(w, "  %s\n", good("No suggestions"))
		return
	}
	for _, s := range suggestions {
		fmt.Fprintf(w, "  %s %s\n", label(string(s.Type)+":"), s.Message)
		if s.Replacement != nil {
			fmt.Fprintf(w, "    → %s\n", good(*s.Replacement))
		}
	}
}

func printList(w io.Writer, title string, items []string) {
	fmt.Fprintf(w, "\n%s\n", label(title+":"))
	if len(items) == 0 {
		fmt.Fprintf(w, "  %s\n", gray("none"))
		return
	}
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}
