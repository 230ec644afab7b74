package nlp

import (
	_ "embed"
	"strings"
)

//go:embed stopwords.txt
var stopwordsText string

var stopwords = func() map[string]struct{} {
	set := make(map[string]struct{})
	for _, line := range strings.Split(stopwordsText, "\n") {
		w := strings.TrimSpace(line)
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}()

// IsStopword reports whether w (any case) is an English stopword.
func IsStopword(w string) bool {
	_, ok := stopwords[strings.ToLower(w)]
	return ok
}
