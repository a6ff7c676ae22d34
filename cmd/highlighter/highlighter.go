package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/wbrown/text_to_sounds"
	"github.com/wbrown/text_to_sounds/pkg/page"
	"github.com/wbrown/text_to_sounds/pkg/stylesheet"
	"github.com/wbrown/text_to_sounds/resources"
)

// Local files are not capped unless asked, unlike the browser hosts.
const defaultMaxLength = 0

// limitText truncates text to maxLength characters when maxLength is set.
func limitText(text string, maxLength int) string {
	if maxLength < 1 {
		return text
	}
	truncated := text_to_sounds.Truncate(text, maxLength)
	if len(truncated) != len(text) {
		log.Printf("Input truncated to %d characters", maxLength)
	}
	return truncated
}

func main() {
	inputPath := flag.String("input", "",
		"input text file path or http(s) URL")
	outputPath := flag.String("output", "",
		"output file to write markup to, stdout if empty")
	asPage := flag.Bool("page", false,
		"wrap the markup in a standalone HTML page")
	title := flag.String("title", page.DefaultTitle,
		"title of the HTML page when -page is set")
	cssPath := flag.String("css", "",
		"also write the sound stylesheet to this path")
	maxLength := flag.Int("max_length", defaultMaxLength,
		"truncate input to this many characters, 0 for no limit, "+
			"browser hosts use "+strconv.Itoa(text_to_sounds.MaxTextLength))
	authToken := flag.String("auth_token", "",
		"bearer token for fetching http(s) input")
	flag.Parse()

	if *inputPath == "" {
		flag.Usage()
		log.Fatal("Must provide -input")
	}

	rsrc, err := resources.ResolveInput(*inputPath, *authToken)
	if err != nil {
		log.Fatal(err)
	}
	text := rsrc.Text()
	if closeErr := rsrc.Close(); closeErr != nil {
		log.Printf("Error closing %s: %v", *inputPath, closeErr)
	}
	text = limitText(text, *maxLength)

	var out io.Writer = os.Stdout
	if *outputPath != "" {
		outFile, createErr := os.Create(*outputPath)
		if createErr != nil {
			log.Fatal(createErr)
		}
		defer outFile.Close()
		out = outFile
	}

	if *asPage {
		if err = page.Render(out, text, *title,
			stylesheet.DefaultPalette); err != nil {
			log.Fatal(err)
		}
	} else if _, err = io.WriteString(out,
		text_to_sounds.Highlight(text)); err != nil {
		log.Fatal(err)
	}

	if *cssPath != "" {
		if dir := filepath.Dir(*cssPath); dir != "." {
			if err = os.MkdirAll(dir, 0755); err != nil {
				log.Fatal(err)
			}
		}
		if err = stylesheet.WriteStylesheet(*cssPath,
			stylesheet.DefaultPalette); err != nil {
			log.Fatal(err)
		}
	}
}
