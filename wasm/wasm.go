package main

import (
	"fmt"

	"github.com/extism/go-pdk"
	msgpack "github.com/vmihailenco/msgpack/v5"
	"github.com/wbrown/text_to_sounds"
	"github.com/wbrown/text_to_sounds/types"
)

// Sounds are exchanged as msgpack arrays of `{id, kind, text}` maps.

//go:wasmexport highlight
func Highlight() int32 {
	text := pdk.InputString()
	pdk.OutputString(text_to_sounds.Highlight(text))
	return 0
}

//go:wasmexport parse
func Parse() int32 {
	text := pdk.InputString()
	wire := types.FromSounds(text_to_sounds.Parse(text), nil)
	bytes, err := wire.ToMsgpack()
	if err != nil {
		pdk.SetError(err)
		return 1
	}
	pdk.Output(*bytes)
	return 0
}

//go:wasmexport parse_and_back
func ParseAndBack() int32 {
	text := pdk.InputString()
	pdk.OutputString(text_to_sounds.Serialize(text_to_sounds.Parse(text)))
	return 0
}

//go:wasmexport serialize
func Serialize() int32 {
	bytes := pdk.Input()
	wire, err := types.WireSoundsFromMsgpack(&bytes)
	if err != nil {
		pdk.SetError(err)
		return 1
	}
	sounds, err := wire.ToSounds()
	if err != nil {
		pdk.SetError(err)
		return 1
	}
	pdk.OutputString(text_to_sounds.Serialize(sounds))
	return 0
}

func ParseAndBackFull() error {
	// Mostly for debugging
	text := "The text just in case"
	wire := types.FromSounds(text_to_sounds.Parse(text), nil)
	bytes, err := msgpack.Marshal(&wire)
	if err != nil {
		return err
	}

	var wire2 types.WireSounds
	err = msgpack.Unmarshal(bytes, &wire2)
	if err != nil {
		return err
	}

	sounds, err := wire2.ToSounds()
	if err != nil {
		return err
	}
	fmt.Println(text_to_sounds.Serialize(sounds))
	fmt.Println(text_to_sounds.HighlightSounds(sounds))
	return nil
}

func main() {
	err := ParseAndBackFull()
	if err != nil {
		fmt.Println("Error:", err)
	}
}
