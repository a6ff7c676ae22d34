package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/wbrown/text_to_sounds"
	"github.com/wbrown/text_to_sounds/types"
)

func main() {
	inputFile := flag.String("input", "",
		"input text file to parse into sounds")
	outputFile := flag.String("output", "sounds.json",
		"output file to write the sounds to")
	format := flag.String("format", string(types.FormatJSON),
		"output format [json, msgpack]")
	cacheSize := flag.Int("cache_size", text_to_sounds.SOUNDS_LRU_SZ,
		"number of parsed words to keep cached")
	flag.Parse()

	if *inputFile == "" {
		flag.Usage()
		log.Fatal("Must provide -input")
	}
	if *outputFile == "" {
		flag.Usage()
		log.Fatal("Must provide -output")
	}

	parser, err := text_to_sounds.NewSoundsParser(*cacheSize)
	if err != nil {
		log.Fatal(err)
	}

	inputFileHandle, err := os.Open(*inputFile)
	if err != nil {
		log.Fatal(err)
	}
	defer inputFileHandle.Close()

	start := time.Now()
	nextSounds := parser.StreamingParse(bufio.NewReader(inputFileHandle))
	wire := make(types.WireSounds, 0)
	for {
		sounds := nextSounds()
		if sounds == nil {
			break
		}
		wire = append(wire, types.FromSounds(*sounds, nil)...)
	}

	encoded, err := wire.Encode(types.Format(*format))
	if err != nil {
		log.Fatal(err)
	}
	if err = os.WriteFile(*outputFile, *encoded, 0644); err != nil {
		log.Fatal(err)
	}
	log.Printf("%s sounds written to %s (%s) in %s, cache hits %d, misses %d",
		humanize.Comma(int64(len(wire))), *outputFile,
		humanize.Bytes(uint64(len(*encoded))), time.Since(start),
		parser.LruHits(), parser.LruMisses())
}
