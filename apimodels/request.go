package apimodels

// Operation names one of the analysis entry points exposed by the service.
type Operation string

const (
	OpAnalyze    Operation = "analyze"
	OpGrammar    Operation = "grammar"
	OpRecommend  Operation = "recommend"
	OpSummarize  Operation = "summarize"
	OpStyleCheck Operation = "style-check"
)

// Operations lists every operation in route registration order.
var Operations = []Operation{OpAnalyze, OpGrammar, OpRecommend, OpSummarize, OpStyleCheck}

type AnalysisRequest struct {
	// Text is the raw user-submitted text to analyze
	Text string `json:"text"`
}
