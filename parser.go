package text_to_sounds

import (
	"io"
	"strings"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"
)

const SOUNDS_LRU_SZ = 65536
const WORDBUF_SZ = 64

var spaceSound = Sound{Kind: Unclassified, Text: " "}

// Parse
// Splits text into sounds. The text is split on ordinary spaces first, each
// word is classified on its own with literal word edges, and every space is
// kept as an Unclassified sound, so that Serialize(Parse(text)) == text.
func Parse(text string) Sounds {
	sounds := make(Sounds, 0, len(text))
	if text == "" {
		return sounds
	}
	words := strings.Split(text, " ")
	for idx, word := range words {
		sounds = append(sounds, parseWord([]rune(word))...)
		if idx+1 != len(words) {
			sounds = append(sounds, spaceSound)
		}
	}
	return sounds
}

func parseWord(word []rune) Sounds {
	sounds := make(Sounds, 0, len(word))
	scanner := NewRuneScanner(word, LiteralBoundaries)
	for !scanner.IsDone() {
		sounds = append(sounds, Classify(scanner))
	}
	return sounds
}

// SoundsParser is a Parse that memoizes the sounds of every word it has seen
// in an ARC cache. It is safe for concurrent use.
type SoundsParser struct {
	Cache     *lru.ARCCache
	lruHits   int64
	lruMisses int64
}

// NewSoundsParser
// Returns a SoundsParser whose cache holds up to cacheSize words. A
// cacheSize below 1 uses SOUNDS_LRU_SZ.
func NewSoundsParser(cacheSize int) (*SoundsParser, error) {
	if cacheSize < 1 {
		cacheSize = SOUNDS_LRU_SZ
	}
	cache, err := lru.NewARC(cacheSize)
	if err != nil {
		return nil, err
	}
	return &SoundsParser{Cache: cache}, nil
}

func (parser *SoundsParser) LruHits() int64 {
	return atomic.LoadInt64(&parser.lruHits)
}

func (parser *SoundsParser) LruMisses() int64 {
	return atomic.LoadInt64(&parser.lruMisses)
}

func (parser *SoundsParser) LruSize() int {
	return parser.Cache.Len()
}

// ParseWord returns the sounds of a single space-free word. The result is
// a copy and may be modified.
func (parser *SoundsParser) ParseWord(word string) Sounds {
	if lookup, ok := parser.Cache.Get(word); ok {
		atomic.AddInt64(&parser.lruHits, 1)
		return append(Sounds(nil), lookup.(Sounds)...)
	}
	atomic.AddInt64(&parser.lruMisses, 1)
	sounds := parseWord([]rune(word))
	parser.Cache.Add(word, sounds)
	return append(Sounds(nil), sounds...)
}

// Parse is the cached equivalent of the package level Parse.
func (parser *SoundsParser) Parse(text *string) *Sounds {
	return parser.ParseReader(strings.NewReader(*text))
}

// ParseReader parses everything the reader yields.
func (parser *SoundsParser) ParseReader(reader io.RuneReader) *Sounds {
	sounds := make(Sounds, 0, 4096)
	nextSounds := parser.StreamingParse(reader)
	for {
		chunk := nextSounds()
		if chunk == nil {
			break
		}
		sounds = append(sounds, *chunk...)
	}
	return &sounds
}

// StreamingParse
// Returns an iterator that yields the sounds of one word per call, followed
// by the space that ended the word, if any. It returns nil once the reader
// is exhausted. The yielded chunks concatenate to Parse of the whole input.
func (parser *SoundsParser) StreamingParse(
	reader io.RuneReader,
) func() *Sounds {
	word := make([]rune, 0, WORDBUF_SZ)
	done := false
	return func() *Sounds {
		if done {
			return nil
		}
		word = word[:0]
		for {
			r, size, err := reader.ReadRune()
			if err != nil || size == 0 {
				done = true
				if len(word) == 0 {
					return nil
				}
				chunk := parser.ParseWord(string(word))
				return &chunk
			}
			if r == ' ' {
				chunk := make(Sounds, 0, len(word)+1)
				if len(word) > 0 {
					chunk = append(chunk, parser.ParseWord(string(word))...)
				}
				chunk = append(chunk, spaceSound)
				return &chunk
			}
			word = append(word, r)
		}
	}
}
