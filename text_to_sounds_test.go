package text_to_sounds

import (
	"regexp"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u(text string) Sound   { return NewSound(Unclassified, text) }
func ptk(text string) Sound { return NewSound(Ptk, text) }
func th(text string) Sound  { return NewSound(Th, text) }
func ch(text string) Sound  { return NewSound(Ch, text) }
func ng(text string) Sound  { return NewSound(Ng, text) }
func w(text string) Sound   { return NewSound(W, text) }
func v(text string) Sound   { return NewSound(V, text) }
func dj(text string) Sound  { return NewSound(Dj, text) }

var space = u(" ")

type ParseTest struct {
	Name     string
	Input    string
	Expected Sounds
}

var ParseTests = []ParseTest{
	{"space", " ", Sounds{space}},
	{"p and t", "put", Sounds{ptk("p"), u("u"), ptk("t")}},
	{"th in the beginning", "the", Sounds{th("th"), u("e")}},
	{"th in the middle", "together",
		Sounds{ptk("t"), u("o"), u("g"), u("e"), th("th"), u("e"), u("r")}},
	{"th and t", "throttle",
		Sounds{th("th"), u("r"), u("o"), u("t"), u("t"), u("l"), u("e")}},
	{"c and t", "cat", Sounds{ptk("c"), u("a"), ptk("t")}},
	{"uppercase c and t", "Cat", Sounds{ptk("C"), u("a"), ptk("t")}},
	{"text with space", "put together",
		Sounds{ptk("p"), u("u"), ptk("t"), space,
			ptk("t"), u("o"), u("g"), u("e"), th("th"), u("e"), u("r")}},
	{"mixed case", "Then PuT tOgETHer",
		Sounds{th("Th"), u("e"), u("n"), space,
			ptk("P"), u("u"), ptk("T"), space,
			ptk("t"), u("O"), u("g"), u("E"), th("TH"), u("e"), u("r")}},
	{"dj", "John got job in January",
		Sounds{dj("J"), u("o"), u("h"), u("n"), space,
			u("g"), u("o"), ptk("t"), space,
			dj("j"), u("o"), u("b"), space,
			u("i"), u("n"), space,
			dj("J"), u("a"), u("n"), u("u"), u("a"), u("r"), u("y")}},
	{"ch", "Such CHoose whiCh cHeap",
		Sounds{u("S"), u("u"), ch("ch"), space,
			ch("CH"), u("o"), u("o"), u("s"), u("e"), space,
			w("w"), u("h"), u("i"), ch("Ch"), space,
			ch("cH"), u("e"), u("a"), ptk("p")}},
	{"w and v", "What is vet and we will View",
		Sounds{w("W"), u("h"), u("a"), ptk("t"), space,
			u("i"), u("s"), space,
			v("v"), u("e"), ptk("t"), space,
			u("a"), u("n"), u("d"), space,
			w("w"), u("e"), space,
			w("w"), u("i"), u("l"), u("l"), space,
			v("V"), u("i"), u("e"), u("w")}},
	{"ng", "PinK briNging something to KiNG to driNk",
		Sounds{ptk("P"), u("i"), ng("nK"), space,
			u("b"), u("r"), u("i"), ng("Ng"), u("i"), ng("ng"), space,
			u("s"), u("o"), u("m"), u("e"), th("th"), u("i"), ng("ng"), space,
			ptk("t"), u("o"), space,
			u("K"), u("i"), ng("NG"), space,
			ptk("t"), u("o"), space,
			u("d"), u("r"), u("i"), ng("Nk")}},
	{"sample sentence", "The text just in case",
		Sounds{th("Th"), u("e"), space,
			ptk("t"), u("e"), u("x"), ptk("t"), space,
			dj("j"), u("u"), u("s"), ptk("t"), space,
			u("i"), u("n"), space,
			ptk("c"), u("a"), u("s"), u("e")}},
	{"punctuation is not an edge", "it,s",
		Sounds{u("i"), u("t"), u(","), u("s")}},
	{"n at the end of a word", "sun",
		Sounds{u("s"), u("u"), u("n")}},
	{"one letter word", "p", Sounds{ptk("p")}},
	{"repeated spaces", "a  b",
		Sounds{u("a"), space, space, u("b")}},
	{"non-breaking space is a letter", "a\u00a0t",
		Sounds{u("a"), u("\u00a0"), ptk("t")}},
}

type HighlightTest struct {
	Name     string
	Input    string
	Expected string
}

var HighlightTests = []HighlightTest{
	{"empty", "", ""},
	{"ptk", "Put a cat",
		"<span class='Ptk'>P</span>u<span class='Ptk'>t</span> a <span class='Ptk'>c</span>a<span class='Ptk'>t</span>"},
	{"ptk with space", "pp ",
		"<span class='Ptk'>p</span><span class='Ptk'>p</span> "},
	{"th", "The Cat witH a someThing",
		"<span class='Th'>Th</span>e <span class='Ptk'>C</span>a<span class='Ptk'>t</span> <span class='W'>w</span>i<span class='Th'>tH</span> a some<span class='Th'>Th</span>i<span class='Ng'>ng</span>"},
	{"ch", "Cheese, cHicken, beach",
		"<span class='Ch'>Ch</span>eese, <span class='Ch'>cH</span>icken, bea<span class='Ch'>ch</span>"},
	{"w", "What, where, toward",
		"<span class='W'>W</span>ha<span class='Ptk'>t</span>, <span class='W'>w</span>here, <span class='Ptk'>t</span>oward"},
	{"v", "Vote, vital, viva",
		"<span class='V'>V</span>ote, <span class='V'>v</span>ital, <span class='V'>v</span>iva"},
	{"ng", "Going, nginx",
		"Goi<span class='Ng'>ng</span>, <span class='Ng'>ng</span>inx"},
	{"dj", "John, just, enjoy",
		"<span class='Dj'>J</span>ohn, <span class='Dj'>j</span>us<span class='Ptk'>t</span>, enjoy"},
	{"sample sentence", "The text just in case",
		"<span class='Th'>Th</span>e <span class='Ptk'>t</span>ex<span class='Ptk'>t</span> <span class='Dj'>j</span>us<span class='Ptk'>t</span> in <span class='Ptk'>c</span>ase"},
	{"non-breaking space", "Put\u00a0W",
		"<span class='Ptk'>P</span>u<span class='Ptk'>t</span>\u00a0<span class='W'>W</span>"},
	{"punctuation", "what!the such-exp:the going?Jhon much; Going.",
		"<span class='W'>w</span>ha<span class='Ptk'>t</span>!<span class='Th'>th</span>e su<span class='Ch'>ch</span>-ex<span class='Ptk'>p</span>:<span class='Th'>th</span>e goi<span class='Ng'>ng</span>?<span class='Dj'>J</span>hon mu<span class='Ch'>ch</span>; Goi<span class='Ng'>ng</span>."},
	{"punctuation is an edge", "it,s", "i<span class='Ptk'>t</span>,s"},
	{"lone n", "n", "n"},
	{"ng before a full stop", "king.", "ki<span class='Ng'>ng</span>."},
	{"no case folding", "İt", "İ<span class='Ptk'>t</span>"},
}

var roundTripTexts = []string{
	"",
	" ",
	"   ",
	"The text just in case",
	"what!the such-exp:the going?Jhon much; Going.",
	"Put\u00a0W",
	"PinK briNging something to KiNG to driNk",
	"Zażółć gęślą jaźń, thing",
	"tabs\tand\nnewlines  and  doubled  spaces ",
	"日本語 with ng and ch",
	" leading and trailing ",
}

func TestParse(t *testing.T) {
	for _, test := range ParseTests {
		t.Run(test.Name, func(t *testing.T) {
			assert.Equal(t, test.Expected, Parse(test.Input))
		})
	}
}

func TestParse_Empty(t *testing.T) {
	parsed := Parse("")
	assert.NotNil(t, parsed)
	assert.Empty(t, parsed)
}

func TestSerialize(t *testing.T) {
	assert.Equal(t, "", Serialize(nil))
	assert.Equal(t, "", Serialize(Sounds{}))
	for _, test := range ParseTests {
		assert.Equal(t, test.Input, Serialize(test.Expected))
	}
}

func TestHighlight(t *testing.T) {
	for _, test := range HighlightTests {
		t.Run(test.Name, func(t *testing.T) {
			assert.Equal(t, test.Expected, Highlight(test.Input))
		})
	}
}

func TestHighlightSounds(t *testing.T) {
	sounds := Sounds{th("Th"), u("e"), space, ptk("t"), u("o")}
	assert.Equal(t,
		"<span class='Th'>Th</span>e <span class='Ptk'>t</span>o",
		HighlightSounds(sounds))
}

func TestParse_RoundTrip(t *testing.T) {
	for _, text := range roundTripTexts {
		assert.Equal(t, text, Serialize(Parse(text)))
	}
}

func TestParse_Coverage(t *testing.T) {
	for _, text := range roundTripTexts {
		total := 0
		for _, sound := range Parse(text) {
			total += utf8.RuneCountInString(sound.Text)
		}
		assert.Equal(t, utf8.RuneCountInString(text), total, text)
	}
}

func TestParse_TwoCharacterDiscipline(t *testing.T) {
	texts := append([]string{}, roundTripTexts...)
	for _, test := range ParseTests {
		texts = append(texts, test.Input)
	}
	for _, text := range texts {
		for _, sound := range Parse(text) {
			length := utf8.RuneCountInString(sound.Text)
			switch sound.Kind {
			case Ch, Th, Ng:
				assert.Equal(t, 2, length, sound.String())
			default:
				assert.Equal(t, 1, length, sound.String())
			}
			assert.Contains(t, SoundKinds, sound.Kind)
		}
	}
}

var spanPattern = regexp.MustCompile(`<span class='[A-Za-z]+'>|</span>`)

func TestHighlight_Transparency(t *testing.T) {
	for _, text := range roundTripTexts {
		highlighted := Highlight(text)
		assert.Equal(t, text, spanPattern.ReplaceAllString(highlighted, ""))
	}
}

func TestHighlight_ClassNames(t *testing.T) {
	highlighted := Highlight(strings.Join(roundTripTexts, " "))
	for _, match := range regexp.MustCompile(`class='([^']*)'`).
		FindAllStringSubmatch(highlighted, -1) {
		kind, err := ParseSoundKind(match[1])
		require.NoError(t, err)
		assert.True(t, kind.Recognized())
	}
}

func TestSoundsParser_MatchesParse(t *testing.T) {
	parser, err := NewSoundsParser(16)
	require.NoError(t, err)
	texts := append([]string{}, roundTripTexts...)
	for _, test := range ParseTests {
		texts = append(texts, test.Input)
	}
	for _, text := range texts {
		assert.Equal(t, Parse(text), *parser.Parse(&text), text)
	}
}

func TestSoundsParser_Cache(t *testing.T) {
	parser, err := NewSoundsParser(0)
	require.NoError(t, err)
	text := "the cat the cat"
	parser.Parse(&text)
	assert.Equal(t, int64(2), parser.LruMisses())
	assert.Equal(t, int64(2), parser.LruHits())
	assert.Equal(t, 2, parser.LruSize())
}

func TestSoundsParser_CacheIsolation(t *testing.T) {
	parser, err := NewSoundsParser(0)
	require.NoError(t, err)
	text := "cat cat"
	first := parser.Parse(&text)
	(*first)[0].Text = "X"
	second := parser.Parse(&text)
	assert.Equal(t, Parse(text), *second)
}

func TestSoundsParser_StreamingParse(t *testing.T) {
	parser, err := NewSoundsParser(0)
	require.NoError(t, err)
	nextSounds := parser.StreamingParse(strings.NewReader("put  it "))
	chunks := make([]Sounds, 0)
	for {
		chunk := nextSounds()
		if chunk == nil {
			break
		}
		chunks = append(chunks, *chunk)
	}
	assert.Equal(t, []Sounds{
		{ptk("p"), u("u"), ptk("t"), space},
		{space},
		{u("i"), ptk("t"), space},
	}, chunks)
	assert.Nil(t, nextSounds())
}

func TestSoundsParser_Concurrent(t *testing.T) {
	parser, err := NewSoundsParser(8)
	require.NoError(t, err)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, text := range roundTripTexts {
				text := text
				assert.Equal(t, text, Serialize(*parser.Parse(&text)))
			}
		}()
	}
	wg.Wait()
}

func TestSoundKind_String(t *testing.T) {
	names := make([]string, 0, len(SoundKinds))
	for _, kind := range SoundKinds {
		names = append(names, kind.String())
	}
	assert.Equal(t,
		[]string{"Ptk", "Th", "W", "V", "Ng", "Ch", "Dj", "Unclassified"},
		names)
	assert.Equal(t, "SoundKind(42)", SoundKind(42).String())
}

func TestParseSoundKind(t *testing.T) {
	for _, kind := range SoundKinds {
		parsed, err := ParseSoundKind(kind.String())
		assert.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
	_, err := ParseSoundKind("ptk")
	assert.Error(t, err)
	_, err = ParseSoundKind("Undefined")
	assert.Error(t, err)
}

func TestSounds_Equal(t *testing.T) {
	a := Parse("the cat")
	assert.True(t, a.Equal(Parse("the cat")))
	assert.False(t, a.Equal(Parse("the bat")))
	assert.False(t, a.Equal(a[:2]))
}

func TestSounds_Counts(t *testing.T) {
	counts := Parse("The text just in case").Counts()
	assert.Equal(t, 1, counts[Th])
	assert.Equal(t, 4, counts[Ptk])
	assert.Equal(t, 1, counts[Dj])
	assert.Equal(t, 0, counts[Ng])
}

func TestSounds_String(t *testing.T) {
	assert.Equal(t, "|Th:th|Unclassified:e", Parse("the").String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 0))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "abc", Truncate("abc", 3))
	assert.Equal(t, "żó", Truncate("żółw", 2))
	assert.Equal(t, MaxTextLength,
		utf8.RuneCountInString(Truncate(strings.Repeat("ł", MaxTextLength+5),
			MaxTextLength)))
}

func TestHighlightSentences(t *testing.T) {
	sentences, err := HighlightSentences("The cat sat. What a thing!")
	require.NoError(t, err)
	require.Len(t, sentences, 2)
	assert.Equal(t,
		"<span class='Th'>Th</span>e <span class='Ptk'>c</span>a<span class='Ptk'>t</span> sa<span class='Ptk'>t</span>.",
		sentences[0])
	assert.Equal(t,
		"<span class='W'>W</span>ha<span class='Ptk'>t</span> a <span class='Th'>th</span>i<span class='Ng'>ng</span>!",
		sentences[1])

	empty, err := HighlightSentences("  ")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestHighlightHTML(t *testing.T) {
	assert.Equal(t,
		"a&lt;b &amp; <span class='Th'>th</span>e",
		HighlightHTML("a<b & the"))
	assert.Equal(t, "", HighlightHTML(""))
	// Classification happens before escaping, so an entity in the input
	// stays literal text and its letters still classify.
	assert.Equal(t,
		"&amp;<span class='Ch'>ch</span>;",
		HighlightHTML("&ch;"))
	for _, test := range HighlightTests {
		if !strings.ContainsAny(test.Input, "<>&'\"") {
			assert.Equal(t, test.Expected, HighlightHTML(test.Input),
				test.Name)
		}
	}
}

func TestSplitSentences(t *testing.T) {
	sentences, err := SplitSentences("The cat sat. What a thing!")
	require.NoError(t, err)
	assert.Equal(t, []string{"The cat sat.", "What a thing!"}, sentences)
}
