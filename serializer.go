package text_to_sounds

import "strings"

// Serialize
// Concatenates the text of every sound, in order. It is the inverse of
// Parse.
func Serialize(sounds Sounds) string {
	if len(sounds) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, sound := range sounds {
		sb.WriteString(sound.Text)
	}
	return sb.String()
}
