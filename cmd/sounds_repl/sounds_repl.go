package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/wbrown/text_to_sounds"
)

// A REPL for interacting with the sounds parser.

func main() {
	showMarkup := flag.Bool("markup", true,
		"Print the highlighted markup for each line.")
	flag.Parse()

	reader := bufio.NewReader(os.Stdin)
	// Provide a REPL
	for {
		fmt.Print(">>> ")
		input, err := reader.ReadString('\n')
		if err == io.EOF && input == "" {
			return
		} else if err != nil && err != io.EOF {
			log.Fatal(err)
		}
		// Remove trailing newline and replace \n with newline.
		input = strings.TrimSuffix(input, "\n")
		input = strings.Replace(input, "\\n", "\n", -1)

		sounds := text_to_sounds.Parse(input)
		fmt.Printf("%s\n", sounds)
		counts := sounds.Counts()
		for _, kind := range text_to_sounds.SoundKinds {
			if n := counts[kind]; n > 0 {
				fmt.Printf("%s=%d ", kind, n)
			}
		}
		fmt.Printf("\n")
		if *showMarkup {
			fmt.Println(text_to_sounds.Highlight(input))
		}
		if err == io.EOF {
			return
		}
	}
}
