package main

import (
	"flag"
	"log"
	"os"

	"github.com/wbrown/text_to_sounds"
	"github.com/wbrown/text_to_sounds/types"
)

func main() {
	inputFile := flag.String("input", "",
		"input sounds file to turn back into text")
	outputFile := flag.String("output", "detokenized.txt",
		"output file to write the text to")
	format := flag.String("format", string(types.FormatJSON),
		"input format [json, msgpack]")
	flag.Parse()

	if *inputFile == "" {
		flag.Usage()
		log.Fatal("Must provide -input")
	}
	if *outputFile == "" {
		flag.Usage()
		log.Fatal("Must provide -output")
	}

	// check if input file exists
	if _, err := os.Stat(*inputFile); os.IsNotExist(err) {
		log.Fatal("Input file does not exist")
	}

	encoded, err := os.ReadFile(*inputFile)
	if err != nil {
		log.Fatal(err)
	}
	wire, err := types.Decode(types.Format(*format), &encoded)
	if err != nil {
		log.Fatal(err)
	}
	sounds, err := wire.ToSounds()
	if err != nil {
		log.Fatal(err)
	}

	err = os.WriteFile(*outputFile, []byte(text_to_sounds.Serialize(sounds)),
		0644)
	if err != nil {
		log.Fatal(err)
	}
}
