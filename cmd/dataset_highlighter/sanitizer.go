package main

import (
	"bufio"
	"bytes"
	"io"
	"regexp"
	"strings"
	"unicode"
)

const sanitizerBufSize = 32768

var extraWhitespace = regexp.MustCompile("[[:space:]]+")

// SanitizedRuneReader cleans up whitespace in a text stream before it
// reaches the highlighter. Cleaning happens one buffer ahead of the reader
// in a goroutine.
type SanitizedRuneReader struct {
	bufSize     int
	lastRune    rune
	midLine     bool
	reader      *bufio.Reader
	currBuffer  *bytes.Buffer
	accumulator []rune
	accIdx      int
	moreBuffers chan *bytes.Buffer
}

// cleanLines collapses whitespace runs and trims every line. When midLine
// is set the first line continues one from the previous buffer and keeps
// its leading whitespace.
func cleanLines(text string, midLine bool) string {
	lines := strings.Split(text, "\n")
	for lineIdx, line := range lines {
		line = extraWhitespace.ReplaceAllString(line, " ")
		if lineIdx == 0 && midLine {
			line = strings.TrimRightFunc(line, unicode.IsSpace)
		} else {
			line = strings.TrimSpace(line)
		}
		lines[lineIdx] = line
	}
	return strings.Join(lines, "\n")
}

// cutPoint picks where a full accumulator is split. Lines are only cleaned
// whole, so it prefers the end of the last complete line. A line longer
// than the buffer is cut where its last whitespace run begins, so the run
// is collapsed in one piece. A rune the escape rules may still rewrite is
// never cut off.
func cutPoint(acc []rune) int {
	for idx := len(acc) - 1; idx >= 0; idx-- {
		if acc[idx] == '\n' {
			return idx + 1
		}
	}
	for idx := len(acc) - 1; idx > 0; idx-- {
		if unicode.IsSpace(acc[idx]) && !unicode.IsSpace(acc[idx-1]) {
			return idx
		}
	}
	return len(acc) - 1
}

func (sanitizer *SanitizedRuneReader) nextBuffer() *bytes.Buffer {
	acc := sanitizer.accumulator
	idx := sanitizer.accIdx
	var text string
	for {
		if idx > sanitizer.bufSize {
			cut := cutPoint(acc[:idx])
			text = string(acc[:cut])
			idx = copy(acc, acc[cut:idx])
			break
		}
		r, size, _ := sanitizer.reader.ReadRune()
		if size == 0 && idx == 0 {
			return nil
		} else if size == 0 {
			text = string(acc[:idx])
			idx = 0
			break
		}
		switch {
		case r == '\r':
			// Dropped.
		case r == '\n' && sanitizer.lastRune == '\n':
			// Dropped, runs of newlines collapse to one.
		case r == 'n' && sanitizer.lastRune == '\\' && idx > 0:
			acc[idx-1] = '\n'
		case r == ':' && sanitizer.lastRune == ' ' && idx > 0:
			acc[idx-1] = ':'
		case r == '\t':
			acc[idx] = ' '
			idx++
		default:
			acc[idx] = r
			idx++
		}
		if idx > 0 {
			sanitizer.lastRune = acc[idx-1]
		}
	}
	sanitizer.accIdx = idx
	cleaned := cleanLines(text, sanitizer.midLine)
	sanitizer.midLine = !strings.HasSuffix(text, "\n")
	return bytes.NewBufferString(cleaned)
}

func (sanitizer *SanitizedRuneReader) ReadRune() (r rune, size int,
	err error) {
	if sanitizer.currBuffer == nil {
		return 0, 0, io.EOF
	}
	if r, size, err = sanitizer.currBuffer.ReadRune(); err == nil {
		return r, size, nil
	}
	newBuffer, ok := <-sanitizer.moreBuffers
	if !ok {
		return 0, 0, io.EOF
	}
	sanitizer.currBuffer = newBuffer
	return sanitizer.currBuffer.ReadRune()
}

// CreateTextSanitizer wraps handle in a SanitizedRuneReader that:
//   - drops `\r`
//   - collapses repeated newlines
//   - turns a literal `\n` escape into a newline
//   - pulls a colon onto the preceding word
//   - collapses whitespace and trims each line
func CreateTextSanitizer(handle io.Reader) *SanitizedRuneReader {
	sanitizer := &SanitizedRuneReader{
		bufSize:     sanitizerBufSize,
		reader:      bufio.NewReader(handle),
		accumulator: make([]rune, sanitizerBufSize+1),
		moreBuffers: make(chan *bytes.Buffer, 1),
	}
	sanitizer.currBuffer = sanitizer.nextBuffer()
	go func() {
		for {
			newBuffer := sanitizer.nextBuffer()
			if newBuffer == nil {
				close(sanitizer.moreBuffers)
				return
			}
			sanitizer.moreBuffers <- newBuffer
		}
	}()
	return sanitizer
}

// SanitizeText runs text through a sanitizer and returns the result.
func SanitizeText(text string) string {
	return readAll(CreateTextSanitizer(bytes.NewBufferString(text)))
}

// readAll drains a rune reader into a string.
func readAll(reader io.RuneReader) string {
	var sb strings.Builder
	for {
		r, size, _ := reader.ReadRune()
		if size == 0 {
			break
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
