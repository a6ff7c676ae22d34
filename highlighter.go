package text_to_sounds

import (
	"html"
	"strings"
)

// MaxTextLength is the number of characters browser hosts cap their input
// at before highlighting.
const MaxTextLength = 10000

const spanOpen = "<span class='"
const spanMid = "'>"
const spanClose = "</span>"

// Highlight
// Wraps every recognized sound of text in `<span class='Kind'>...</span>`,
// so the sounds can be styled with CSS. Unlike Parse, the whole text is
// scanned at once and punctuation and no-break spaces also count as word
// edges. The output is not HTML escaped.
func Highlight(text string) string {
	if text == "" {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text) * 2)
	scanner := NewScanner(text, ContextBoundaries)
	for !scanner.IsDone() {
		writeSound(&sb, Classify(scanner))
	}
	return sb.String()
}

// HighlightHTML
// Is Highlight for pages that embed untrusted text. Sounds are classified
// on the raw text and each sound's text is HTML escaped on output, so
// entities in the input are not mistaken for letters.
func HighlightHTML(text string) string {
	if text == "" {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text) * 2)
	scanner := NewScanner(text, ContextBoundaries)
	for !scanner.IsDone() {
		sound := Classify(scanner)
		sound.Text = html.EscapeString(sound.Text)
		writeSound(&sb, sound)
	}
	return sb.String()
}

// HighlightSounds renders already classified sounds the same way Highlight
// does.
func HighlightSounds(sounds Sounds) string {
	var sb strings.Builder
	for _, sound := range sounds {
		writeSound(&sb, sound)
	}
	return sb.String()
}

func writeSound(sb *strings.Builder, sound Sound) {
	if !sound.Kind.Recognized() {
		sb.WriteString(sound.Text)
		return
	}
	sb.WriteString(spanOpen)
	sb.WriteString(sound.Kind.String())
	sb.WriteString(spanMid)
	sb.WriteString(sound.Text)
	sb.WriteString(spanClose)
}

// Truncate
// Returns at most limit characters of text. A limit below 1 leaves the text
// as is.
func Truncate(text string, limit int) string {
	if limit < 1 {
		return text
	}
	count := 0
	for idx := range text {
		if count == limit {
			return text[:idx]
		}
		count++
	}
	return text
}
