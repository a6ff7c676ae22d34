package text_to_sounds

import (
	"fmt"
	"strings"
)

// SoundKind is an English sound category a letter pattern is tagged with.
type SoundKind uint8

const (
	Ptk SoundKind = iota
	Th
	W
	V
	Ng
	Ch
	Dj
	Unclassified
)

// kindNames doubles as the wire names and the CSS class names, so it must
// stay byte-for-byte stable.
var kindNames = [...]string{
	Ptk:          "Ptk",
	Th:           "Th",
	W:            "W",
	V:            "V",
	Ng:           "Ng",
	Ch:           "Ch",
	Dj:           "Dj",
	Unclassified: "Unclassified",
}

// SoundKinds lists every kind in declaration order.
var SoundKinds = []SoundKind{Ptk, Th, W, V, Ng, Ch, Dj, Unclassified}

func (kind SoundKind) String() string {
	if int(kind) < len(kindNames) {
		return kindNames[kind]
	}
	return fmt.Sprintf("SoundKind(%d)", uint8(kind))
}

// Recognized reports whether kind is one of the seven rule-tagged kinds.
func (kind SoundKind) Recognized() bool {
	return kind < Unclassified
}

// ParseSoundKind
// Looks up a kind by its canonical name. Matching is exact.
func ParseSoundKind(name string) (SoundKind, error) {
	for idx, kindName := range kindNames {
		if kindName == name {
			return SoundKind(idx), nil
		}
	}
	return Unclassified, fmt.Errorf("unknown sound kind: %q", name)
}

// Sound is a tagged run of one or two characters of the source text.
type Sound struct {
	Kind SoundKind
	Text string
}

type Sounds []Sound

func NewSound(kind SoundKind, text string) Sound {
	return Sound{Kind: kind, Text: text}
}

func (sound Sound) String() string {
	return sound.Kind.String() + ":" + sound.Text
}

// Equal compares two sound sequences by kind and text.
func (sounds Sounds) Equal(other Sounds) bool {
	if len(sounds) != len(other) {
		return false
	}
	for idx := range sounds {
		if sounds[idx] != other[idx] {
			return false
		}
	}
	return true
}

// Counts tallies how many sounds of each kind are in the sequence.
func (sounds Sounds) Counts() map[SoundKind]int {
	counts := make(map[SoundKind]int, len(kindNames))
	for _, sound := range sounds {
		counts[sound.Kind]++
	}
	return counts
}

// String renders the sequence as `|Kind:text` cells, the way the REPL shows
// them.
func (sounds Sounds) String() string {
	var sb strings.Builder
	for _, sound := range sounds {
		sb.WriteByte('|')
		sb.WriteString(sound.String())
	}
	return sb.String()
}
