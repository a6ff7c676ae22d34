package main

//go:generate gopherjs build --minify

import (
	"log"

	"github.com/gopherjs/gopherjs/js"
	"github.com/wbrown/text_to_sounds"
	"github.com/wbrown/text_to_sounds/types"
)

func Highlight(text string) string {
	return text_to_sounds.Highlight(text)
}

// Parse returns an array of `{id, kind, text}` objects.
func Parse(text string) []map[string]string {
	wire := types.FromSounds(text_to_sounds.Parse(text), nil)
	objects := make([]map[string]string, len(wire))
	for idx, sound := range wire {
		objects[idx] = map[string]string{
			"id":   sound.Id,
			"kind": sound.Kind,
			"text": sound.Text,
		}
	}
	return objects
}

// Serialize takes an array shaped like the one Parse returns. Only the text
// of each object is read.
func Serialize(arr *js.Object) string {
	sounds := make(text_to_sounds.Sounds, arr.Length())
	for idx := range sounds {
		sounds[idx].Text = arr.Index(idx).Get("text").String()
	}
	return text_to_sounds.Serialize(sounds)
}

func init() {
	js.Module.Get("exports").Set("highlight", Highlight)
	js.Module.Get("exports").Set("parse", Parse)
	js.Module.Get("exports").Set("serialize", Serialize)
	js.Module.Get("exports").Set("maxTextLength", text_to_sounds.MaxTextLength)
	log.Printf("Sounds highlighter loaded")
}

func main() {

}
