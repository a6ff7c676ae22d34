package text_to_sounds

// DefaultLetter is returned whenever the scanner is asked for a character
// outside of its text. Rules that look for word edges rely on it being an
// ordinary space.
const DefaultLetter = ' '

const NonBreakingSpace = '\u00a0'

// PunctuationRunes are the punctuation marks that end a lexical unit.
var PunctuationRunes = []rune{'.', ',', ';', '!', '?', ':', '-'}

// BoundaryPolicy selects how the scanner decides where a lexical unit begins
// and ends.
type BoundaryPolicy uint8

const (
	// LiteralBoundaries only treats the start and the end of the scanned
	// text as unit edges. Used when the caller already split words apart.
	LiteralBoundaries BoundaryPolicy = iota
	// ContextBoundaries also treats a neighbouring separator as a unit edge.
	ContextBoundaries
)

// IsSeparator reports whether r ends a lexical unit: an ordinary space, a
// no-break space or one of PunctuationRunes.
func IsSeparator(r rune) bool {
	return r == ' ' || r == NonBreakingSpace || runeIsIn(r, PunctuationRunes)
}

// Scanner is a cursor over the characters of a text.
type Scanner struct {
	cursor     int
	characters []rune
	policy     BoundaryPolicy
}

func NewScanner(text string, policy BoundaryPolicy) *Scanner {
	return NewRuneScanner([]rune(text), policy)
}

// NewRuneScanner wraps already decoded runes without copying them.
func NewRuneScanner(characters []rune, policy BoundaryPolicy) *Scanner {
	return &Scanner{
		characters: characters,
		policy:     policy,
	}
}

func (scanner *Scanner) Cursor() int {
	return scanner.cursor
}

func (scanner *Scanner) Policy() BoundaryPolicy {
	return scanner.policy
}

func (scanner *Scanner) at(idx int) rune {
	if idx < 0 || idx >= len(scanner.characters) {
		return DefaultLetter
	}
	return scanner.characters[idx]
}

// Peek returns the current character without advancing the cursor.
func (scanner *Scanner) Peek() rune {
	return scanner.at(scanner.cursor)
}

// PeekNext returns the character after the current one.
func (scanner *Scanner) PeekNext() rune {
	return scanner.at(scanner.cursor + 1)
}

// PeekPrev returns the character before the current one.
func (scanner *Scanner) PeekPrev() rune {
	return scanner.at(scanner.cursor - 1)
}

// Pop returns the current character and advances the cursor. Once the
// scanner is done it returns DefaultLetter and stays put.
func (scanner *Scanner) Pop() rune {
	if scanner.cursor >= len(scanner.characters) {
		return DefaultLetter
	}
	r := scanner.characters[scanner.cursor]
	scanner.cursor++
	return r
}

// IsDone returns true if further progress is not possible.
func (scanner *Scanner) IsDone() bool {
	return scanner.cursor == len(scanner.characters)
}

func (scanner *Scanner) IsFirstLiteral() bool {
	return scanner.cursor == 0
}

func (scanner *Scanner) IsLastLiteral() bool {
	return scanner.cursor+1 == len(scanner.characters)
}

// IsFirst reports whether the current character opens a lexical unit under
// the scanner's policy.
func (scanner *Scanner) IsFirst() bool {
	if scanner.policy == LiteralBoundaries {
		return scanner.IsFirstLiteral()
	}
	return scanner.IsFirstLiteral() || IsSeparator(scanner.PeekPrev())
}

// IsLast reports whether the current character closes a lexical unit under
// the scanner's policy.
func (scanner *Scanner) IsLast() bool {
	if scanner.policy == LiteralBoundaries {
		return scanner.IsLastLiteral()
	}
	return scanner.IsLastLiteral() || IsSeparator(scanner.PeekNext())
}

// IsNextAny reports whether the next character is one of letters.
func (scanner *Scanner) IsNextAny(letters ...rune) bool {
	return runeIsIn(scanner.PeekNext(), letters)
}

func runeIsIn(r rune, runes []rune) bool {
	for _, rr := range runes {
		if r == rr {
			return true
		}
	}
	return false
}
