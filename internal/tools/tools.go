// Package tools defines the functions a language model calls to return
// structured results.
package tools

const (
	ReportSentimentName = "report_sentiment"
	SelectSentencesName = "select_sentences"
)

// SentimentArgs are the arguments of ReportSentiment.
type SentimentArgs struct {
	Polarity     float64 `json:"polarity" description:"Overall polarity from -1.0 (very negative) to 1.0 (very positive)"`
	Subjectivity float64 `json:"subjectivity" description:"Subjectivity from 0.0 (very objective) to 1.0 (very subjective)"`
}

// SelectionArgs are the arguments of SelectSentences.
type SelectionArgs struct {
	Indices []int `json:"indices" description:"Zero-based indices of the selected sentences"`
}

var (
	ReportSentiment = newTool(ReportSentimentName, "Report the overall sentiment of the text", SentimentArgs{})
	SelectSentences = newTool(SelectSentencesName, "Select the most important sentences of a document by their index", SelectionArgs{})
)
