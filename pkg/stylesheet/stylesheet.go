package stylesheet

import (
	"fmt"
	"os"
	"strings"

	"github.com/wbrown/text_to_sounds"
)

// Palette maps a recognized sound kind to a CSS color.
type Palette map[text_to_sounds.SoundKind]string

var DefaultPalette = Palette{
	text_to_sounds.Ptk: "#e4572e",
	text_to_sounds.Th:  "#17bebb",
	text_to_sounds.W:   "#ffc914",
	text_to_sounds.V:   "#76b041",
	text_to_sounds.Ng:  "#7d5ba6",
	text_to_sounds.Ch:  "#2e86ab",
	text_to_sounds.Dj:  "#f18f01",
}

// Generate
// Renders one `.Kind { color: ... }` rule per colored kind, in kind order.
// Unclassified text is never wrapped in a span, so it gets no rule.
func Generate(palette Palette) string {
	var sb strings.Builder
	for _, kind := range text_to_sounds.SoundKinds {
		if !kind.Recognized() {
			continue
		}
		color, ok := palette[kind]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, ".%s { color: %s; font-weight: bold; }\n",
			kind, color)
	}
	return sb.String()
}

// WriteStylesheet writes the rules for palette to path.
func WriteStylesheet(path string, palette Palette) error {
	if err := os.WriteFile(path, []byte(Generate(palette)), 0644); err != nil {
		return fmt.Errorf("could not write stylesheet: %w", err)
	}
	return nil
}
