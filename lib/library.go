package main

/*
#include "library.h"
*/
import "C"
import (
	"log"
	"time"
	"unsafe"

	"github.com/wbrown/text_to_sounds"
	"github.com/wbrown/text_to_sounds/types"
)

var parser *text_to_sounds.SoundsParser

func init() {
	var err error
	if parser, err = text_to_sounds.NewSoundsParser(0); err != nil {
		log.Fatal(err)
	}
}

// create a byte array using C memory for internal use
func createBuffer(buf unsafe.Pointer, size int) []byte {
	if size == 0 {
		return []byte{}
	}
	return unsafe.Slice((*byte)(buf), size)
}

//export highlight
// highlight accepts a C string and returns a malloc'ed C string with the
// sounds wrapped in span tags.
func highlight(str *C.char) *C.char {
	return C.CString(text_to_sounds.Highlight(C.GoString(str)))
}

//export highlightBuffer
// highlightBuffer is highlight for a UTF-8 buffer that need not be NUL
// terminated.
func highlightBuffer(buf *C.char, sz C.size_t) *C.char {
	goBuf := createBuffer(unsafe.Pointer(buf), int(sz))
	return C.CString(text_to_sounds.Highlight(string(goBuf)))
}

//export parse
// parse accepts a C string and returns a C.Buffer holding a malloc'ed
// msgpack array of `{id, kind, text}` maps. On failure the buffer is empty.
func parse(str *C.char) C.Buffer {
	s := C.GoString(str)
	wire := types.FromSounds(*parser.Parse(&s), nil)
	encoded, err := wire.ToMsgpack()
	if err != nil {
		log.Printf("parse: %v", err)
		return C.Buffer{}
	}
	return C.Buffer{
		data: (*C.uint8_t)(C.CBytes(*encoded)),
		len:  C.size_t(len(*encoded)),
	}
}

//export serialize
// serialize accepts a C.Buffer produced by parse and returns the malloc'ed
// text it was parsed from, or NULL if the buffer cannot be decoded.
func serialize(buf *C.Buffer) *C.char {
	encoded := C.GoBytes(unsafe.Pointer(buf.data), C.int(buf.len))
	wire, err := types.WireSoundsFromMsgpack(&encoded)
	if err != nil {
		log.Printf("serialize: %v", err)
		return nil
	}
	sounds, err := wire.ToSounds()
	if err != nil {
		log.Printf("serialize: %v", err)
		return nil
	}
	return C.CString(text_to_sounds.Serialize(sounds))
}

// testBuffer tests the C interface to the highlighter, and is here rather
// than in the test package as the test package is incompatible with CGo.
func testBuffer(buf []byte) (time.Duration, int) {
	corpusBuff := (*C.char)(C.CBytes(buf))
	defer C.free(unsafe.Pointer(corpusBuff))
	start := time.Now()
	highlighted := highlightBuffer(corpusBuff, C.size_t(len(buf)))
	duration := time.Since(start)
	defer C.free(unsafe.Pointer(highlighted))
	return duration, len(C.GoString(highlighted))
}

// testRoundTrip parses text through the C interface and serializes it back.
func testRoundTrip(text string) (string, bool) {
	textC := C.CString(text)
	defer C.free(unsafe.Pointer(textC))
	buf := parse(textC)
	defer C.free(unsafe.Pointer(buf.data))
	out := serialize(&buf)
	if out == nil {
		return "", false
	}
	defer C.free(unsafe.Pointer(out))
	return C.GoString(out), true
}

// testHighlight wraps highlight the way a C caller would use it.
func testHighlight(text string) string {
	textC := C.CString(text)
	defer C.free(unsafe.Pointer(textC))
	out := highlight(textC)
	defer C.free(unsafe.Pointer(out))
	return C.GoString(out)
}

func main() {}
