package types

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

func (sounds *WireSounds) ToMsgpack() (*[]byte, error) {
	byt, err := msgpack.Marshal(sounds)
	if err != nil {
		return nil, err
	}
	return &byt, nil
}

func (sounds *WireSounds) ToJSON() (*[]byte, error) {
	byt, err := json.Marshal(sounds)
	if err != nil {
		return nil, err
	}
	return &byt, nil
}

func WireSoundsFromMsgpack(bin *[]byte) (*WireSounds, error) {
	sounds := make(WireSounds, 0)
	if err := msgpack.Unmarshal(*bin, &sounds); err != nil {
		return nil, err
	}
	return &sounds, nil
}

func WireSoundsFromJSON(bin *[]byte) (*WireSounds, error) {
	sounds := make(WireSounds, 0)
	if err := json.Unmarshal(*bin, &sounds); err != nil {
		return nil, err
	}
	return &sounds, nil
}

// Format names a wire encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// Encode encodes sounds in the given format.
func (sounds *WireSounds) Encode(format Format) (*[]byte, error) {
	switch format {
	case FormatJSON:
		return sounds.ToJSON()
	case FormatMsgpack:
		return sounds.ToMsgpack()
	}
	return nil, &UnknownFormatError{format}
}

// Decode decodes sounds from the given format.
func Decode(format Format, bin *[]byte) (*WireSounds, error) {
	switch format {
	case FormatJSON:
		return WireSoundsFromJSON(bin)
	case FormatMsgpack:
		return WireSoundsFromMsgpack(bin)
	}
	return nil, &UnknownFormatError{format}
}

type UnknownFormatError struct {
	Format Format
}

func (err *UnknownFormatError) Error() string {
	return "unknown wire format: " + string(err.Format)
}
