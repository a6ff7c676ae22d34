//go:build wasip1 || js

package text_to_sounds

import "errors"

func SplitSentences(text string) ([]string, error) {
	return nil, errors.New("SplitSentences is not implemented")
}

func HighlightSentences(text string) ([]string, error) {
	return nil, errors.New("HighlightSentences is not implemented")
}
