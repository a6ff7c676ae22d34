package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const benchCorpus = "The text just in case. what!the such-exp:the going?Jhon much; Going.\n"

func TestHighlight(t *testing.T) {
	assert.Equal(t,
		"<span class='Ch'>Ch</span>eese, <span class='Ch'>cH</span>icken, bea<span class='Ch'>ch</span>",
		testHighlight("Cheese, cHicken, beach"))
	assert.Equal(t, "", testHighlight(""))
}

func TestRoundTrip(t *testing.T) {
	for _, text := range []string{"", " ", "PinK briNging something", "Zażółć"} {
		out, ok := testRoundTrip(text)
		assert.True(t, ok)
		assert.Equal(t, text, out)
	}
}

func TestHighlightBuffer(t *testing.T) {
	_, size := testBuffer([]byte("cat"))
	assert.Equal(t,
		len("<span class='Ptk'>c</span>a<span class='Ptk'>t</span>"), size)
}

func BenchmarkHighlight(b *testing.B) {
	b.StopTimer()
	b.ResetTimer()
	corpus := []byte(strings.Repeat(benchCorpus, 4096))
	b.StartTimer()
	duration, size := testBuffer(corpus)
	b.StopTimer()
	bytesPerSecond := float64(len(corpus)) / duration.Seconds()
	b.Logf("%d bytes highlighted to %d bytes at %0.2f bytes per second",
		len(corpus), size, bytesPerSecond)
}
