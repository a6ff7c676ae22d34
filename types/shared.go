package types

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/wbrown/text_to_sounds"
)

// WireSound is a sound as it crosses a host boundary. Id is opaque to the
// classifier and is ignored by Equal.
type WireSound struct {
	Id   string `json:"id" msgpack:"id"`
	Kind string `json:"kind" msgpack:"kind"`
	Text string `json:"text" msgpack:"text"`
}

type WireSounds []WireSound

// IdFunc supplies a fresh identifier for every wire sound.
type IdFunc func() string

var NewId IdFunc = uuid.NewString

func (sound WireSound) Equal(other WireSound) bool {
	return sound.Kind == other.Kind && sound.Text == other.Text
}

func (sounds WireSounds) Equal(other WireSounds) bool {
	if len(sounds) != len(other) {
		return false
	}
	for idx := range sounds {
		if !sounds[idx].Equal(other[idx]) {
			return false
		}
	}
	return true
}

// FromSounds
// Wraps sounds for the wire, giving each one an id from newId. A nil newId
// uses NewId.
func FromSounds(sounds text_to_sounds.Sounds, newId IdFunc) WireSounds {
	if newId == nil {
		newId = NewId
	}
	wire := make(WireSounds, len(sounds))
	for idx, sound := range sounds {
		wire[idx] = WireSound{
			Id:   newId(),
			Kind: sound.Kind.String(),
			Text: sound.Text,
		}
	}
	return wire
}

// ToSounds drops the ids and checks every kind name.
func (sounds WireSounds) ToSounds() (text_to_sounds.Sounds, error) {
	out := make(text_to_sounds.Sounds, len(sounds))
	for idx, sound := range sounds {
		kind, err := text_to_sounds.ParseSoundKind(sound.Kind)
		if err != nil {
			return nil, fmt.Errorf("sound %d: %w", idx, err)
		}
		out[idx] = text_to_sounds.NewSound(kind, sound.Text)
	}
	return out, nil
}
