//go:build !wasip1 && !js

package text_to_sounds

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// SplitSentences
// Splits text into sentences. The whitespace between sentences is dropped.
func SplitSentences(text string) ([]string, error) {
	sentences := make([]string, 0)
	if strings.TrimSpace(text) == "" {
		return sentences, nil
	}
	doc, err := prose.NewDocument(
		text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithTokenization(false),
	)
	if err != nil {
		return sentences, err
	}
	for _, sentence := range doc.Sentences() {
		sentences = append(sentences, sentence.Text)
	}
	return sentences, nil
}

// HighlightSentences highlights each sentence of text on its own.
func HighlightSentences(text string) ([]string, error) {
	sentences, err := SplitSentences(text)
	if err != nil {
		return sentences, err
	}
	for idx := range sentences {
		sentences[idx] = Highlight(sentences[idx])
	}
	return sentences, nil
}
