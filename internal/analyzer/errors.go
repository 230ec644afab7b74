package analyzer

const (
	msgNoText            = "No text provided"
	msgTooShortRecommend = "Text too short for recommendations"
	msgTooShortSummarize = "Text too short for summarization"
)

// Collaborator names used in CollaboratorError.
const (
	CollabGrammar     = "grammar"
	CollabSentiment   = "sentiment"
	CollabLinguistics = "linguistics"
	CollabKeywords    = "keywords"
)

// ValidationError rejects a request before any collaborator is called.
type ValidationError struct {
	Op      string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CollaboratorError wraps a failure reported by one of the providers. Its
// message is the provider's own.
type CollaboratorError struct {
	Collaborator string
	Err          error
}

func (e *CollaboratorError) Error() string {
	return e.Err.Error()
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}
