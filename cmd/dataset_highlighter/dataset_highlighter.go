package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/wbrown/text_to_sounds"
	"github.com/yargevad/filepathx"
)

// NamedText is one input document of a dataset. Closer, when set, releases
// the source behind Reader once the text has been read.
type NamedText struct {
	Path   string
	Size   int64
	Reader io.RuneReader
	Closer io.Closer
}

type TextsIterator func() *NamedText

type PathInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
	Dir     bool
}

var textExtensions = []string{".txt", ".jsonl"}

// GlobTexts
// Given a directory path, recursively finds all `.txt` and `.jsonl` files,
// returning a slice of PathInfo.
func GlobTexts(dirPath string) (pathInfos []PathInfo, err error) {
	textPaths := make([]string, 0)
	for _, ext := range textExtensions {
		matches, globErr := filepathx.Glob(dirPath + "/**/*" + ext)
		if globErr != nil {
			return nil, globErr
		}
		textPaths = append(textPaths, matches...)
	}
	numMatches := len(textPaths)
	if numMatches == 0 {
		return nil, fmt.Errorf(
			"%s does not contain any .txt or .jsonl files", dirPath)
	}
	pathInfos = make([]PathInfo, 0, numMatches)
	for _, currPath := range textPaths {
		stat, statErr := os.Stat(currPath)
		if statErr != nil {
			return nil, statErr
		}
		if stat.IsDir() {
			continue
		}
		pathInfos = append(pathInfos, PathInfo{
			Path:    currPath,
			Size:    stat.Size(),
			ModTime: stat.ModTime(),
			Dir:     stat.IsDir(),
		})
	}
	return pathInfos, nil
}

func SortPathInfoBySize(pathInfos []PathInfo, ascending bool) {
	sort.SliceStable(pathInfos, func(i, j int) bool {
		if ascending {
			return pathInfos[i].Size < pathInfos[j].Size
		}
		return pathInfos[i].Size > pathInfos[j].Size
	})
}

func SortPathInfoByPath(pathInfos []PathInfo, ascending bool) {
	sort.SliceStable(pathInfos, func(i, j int) bool {
		if ascending {
			return pathInfos[i].Path < pathInfos[j].Path
		}
		return pathInfos[i].Path > pathInfos[j].Path
	})
}

func ShufflePathInfos(pathInfos []PathInfo) {
	rand.Shuffle(len(pathInfos), func(i, j int) {
		pathInfos[i], pathInfos[j] = pathInfos[j], pathInfos[i]
	})
}

// ReorderPathInfos applies a -reorder specification in place.
func ReorderPathInfos(pathInfos []PathInfo, sortSpec string) error {
	switch sortSpec {
	case "", "none":
	case "size_ascending":
		SortPathInfoBySize(pathInfos, true)
	case "size_descending":
		SortPathInfoBySize(pathInfos, false)
	case "path_ascending":
		SortPathInfoByPath(pathInfos, true)
	case "path_descending":
		SortPathInfoByPath(pathInfos, false)
	case "random":
		ShufflePathInfos(pathInfos)
	default:
		return fmt.Errorf("invalid sort spec: %s", sortSpec)
	}
	return nil
}

// FindNewestPath
// Returns the path and modified time of the most recently modified entry.
func FindNewestPath(paths []PathInfo) (path *string, newest *time.Time) {
	var newestPath string
	var newestTime *time.Time
	for idx := range paths {
		if newestTime == nil || newestTime.Before(paths[idx].ModTime) {
			newestTime = &paths[idx].ModTime
			newestPath = paths[idx].Path
		}
	}
	return &newestPath, newestTime
}

// FindNewestText
// Given a directory, recursively scans and returns the path and modified time
// for the newest text file.
func FindNewestText(dirPath string) (path *string, newest *time.Time,
	err error) {
	matches, err := GlobTexts(dirPath)
	if err != nil {
		return nil, nil, err
	}
	path, newest = FindNewestPath(matches)
	return path, newest, nil
}

// openText opens a local dataset file as a rune reader. JSONL files are
// reduced to their joined `text` fields and closed right away, otherwise
// the returned closer releases the file.
func openText(path string, sanitize bool) (io.RuneReader, io.Closer,
	error) {
	fileReader, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	var reader io.Reader = fileReader
	var closer io.Closer = fileReader
	if strings.HasSuffix(path, ".jsonl") {
		text, jsonlErr := readJSONLTexts(fileReader)
		fileReader.Close()
		if jsonlErr != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, jsonlErr)
		}
		reader = strings.NewReader(text)
		closer = nil
	}
	if sanitize {
		return CreateTextSanitizer(reader), closer, nil
	}
	return bufio.NewReaderSize(reader, 8*1024*1024), closer, nil
}

// ReadTexts
// Consumes a directory path and recursively scans for text files, producing
// a TextsIterator function that yields each file as a NamedText.
func ReadTexts(dirPath string, sanitize bool, sortSpec string) (TextsIterator,
	error) {
	matches, err := GlobTexts(dirPath)
	if err != nil {
		return nil, err
	}
	if err = ReorderPathInfos(matches, sortSpec); err != nil {
		return nil, err
	}

	// We pre-emptively do the work to set up the readers for the next files,
	// while the prior file is being consumed.
	texts := make(chan NamedText, 4)
	go func() {
		for _, match := range matches {
			reader, closer, openErr := openText(match.Path, sanitize)
			if openErr != nil {
				log.Fatal(openErr)
			}
			texts <- NamedText{match.Path, match.Size, reader, closer}
		}
		close(texts)
	}()

	return func() *NamedText {
		if text, ok := <-texts; !ok {
			return nil
		} else {
			log.Print("Reading ", text.Path)
			return &text
		}
	}, nil
}

// Record is one line of the highlighter's JSONL output.
type Record struct {
	Path   string         `json:"path"`
	Bytes  int            `json:"bytes"`
	Counts map[string]int `json:"counts"`
	Markup string         `json:"markup"`
}

type RecordsIterator func() *Record

// TextsHighlighter
// A struct that encapsulates the configuration for a dataset highlighter.
type TextsHighlighter struct {
	Workers   int
	MaxLength int
	Parser    *text_to_sounds.SoundsParser
}

// NewTextsHighlighter
// Creates a new TextsHighlighter with one worker per CPU and no length limit.
func NewTextsHighlighter() (*TextsHighlighter, error) {
	parser, err := text_to_sounds.NewSoundsParser(
		text_to_sounds.SOUNDS_LRU_SZ)
	if err != nil {
		return nil, err
	}
	return &TextsHighlighter{
		Workers:   runtime.NumCPU(),
		MaxLength: 0,
		Parser:    parser,
	}, nil
}

// HighlightText produces the record for a single document and closes its
// source.
func (th *TextsHighlighter) HighlightText(text *NamedText) Record {
	contents := readAll(text.Reader)
	if text.Closer != nil {
		if err := text.Closer.Close(); err != nil {
			log.Printf("Error closing %s: %v", text.Path, err)
		}
	}
	if th.MaxLength > 0 {
		contents = text_to_sounds.Truncate(contents, th.MaxLength)
	}
	counts := make(map[string]int)
	for kind, count := range th.Parser.Parse(&contents).Counts() {
		counts[kind.String()] = count
	}
	return Record{
		Path:   text.Path,
		Bytes:  len(contents),
		Counts: counts,
		Markup: text_to_sounds.Highlight(contents),
	}
}

// HighlightTexts
// Consumes a TextsIterator and highlights the texts on `Workers`
// goroutines. The returned iterator yields records in input order.
func (th *TextsHighlighter) HighlightTexts(
	nextText TextsIterator,
) RecordsIterator {
	workers := th.Workers
	if workers < 1 {
		workers = 1
	}
	type job struct {
		text *NamedText
		slot chan Record
	}
	jobs := make(chan job, workers)
	// Slots are queued in input order, which bounds the records in flight.
	slots := make(chan chan Record, workers*2)

	go func() {
		for {
			text := nextText()
			if text == nil {
				break
			}
			slot := make(chan Record, 1)
			slots <- slot
			jobs <- job{text, slot}
		}
		close(jobs)
		close(slots)
	}()

	for workerIdx := 0; workerIdx < workers; workerIdx++ {
		go func() {
			for j := range jobs {
				j.slot <- th.HighlightText(j.text)
			}
		}()
	}

	return func() *Record {
		slot, ok := <-slots
		if !ok {
			return nil
		}
		record := <-slot
		return &record
	}
}

// WriteRecords
// Consumes a RecordsIterator and writes each record as a JSON line,
// returning the number of records and input bytes written.
func WriteRecords(out io.Writer, nextRecord RecordsIterator) (int, int64,
	error) {
	writer := bufio.NewWriter(out)
	encoder := json.NewEncoder(writer)
	encoder.SetEscapeHTML(false)
	var numRecords int
	var numBytes int64
	for {
		record := nextRecord()
		if record == nil {
			break
		}
		if err := encoder.Encode(record); err != nil {
			return numRecords, numBytes, err
		}
		numRecords++
		numBytes += int64(record.Bytes)
	}
	return numRecords, numBytes, writer.Flush()
}

// upToDate reports whether outPath is newer than every file in inputDir.
func upToDate(outPath string, inputDir string) (bool, error) {
	outStat, outErr := os.Stat(outPath)
	if errors.Is(outErr, os.ErrNotExist) {
		log.Printf("Creating %s", outPath)
		return false, nil
	} else if outErr != nil {
		return false, outErr
	}
	newestPath, newestModTime, newestErr := FindNewestText(inputDir)
	if newestErr != nil {
		return false, newestErr
	}
	if newestModTime != nil && newestModTime.Before(outStat.ModTime()) {
		log.Printf("Newest source `%s` is older than `%s`, "+
			"not rehighlighting. "+
			"Use -rehighlight to force rehighlighting.", *newestPath,
			outPath)
		return true, nil
	}
	return false, nil
}

func main() {
	inputDir := flag.String("input", "",
		"input directory or s3://bucket/prefix")
	outputFile := flag.String("output", "highlighted.jsonl",
		"highlighted JSONL output file")
	workers := flag.Int("workers", runtime.NumCPU(),
		"number of texts to highlight concurrently")
	maxLength := flag.Int("max_length", 0,
		"truncate each text to this many characters, 0 for no limit")
	forceRehighlight := flag.Bool("rehighlight", false,
		"force rehighlighting even if the output is newer")
	sanitizeBool := flag.Bool("sanitize", false,
		"sanitize inputs of whitespace issues")
	reorderPaths := flag.String("reorder", "",
		"reorder input files to specification [size_ascending, "+
			"size_descending, path_ascending, path_descending, random, none]")
	s3Endpoint := flag.String("s3_endpoint", "",
		"S3 compatible endpoint, empty for AWS")
	s3Region := flag.String("s3_region", "",
		"S3 region, defaults to AWS_REGION")
	flag.Parse()
	if *inputDir == "" {
		flag.Usage()
		log.Fatal("Must provide -input for directory source")
	}

	log.Printf("Highlighter input source: %s\n", *inputDir)
	log.Printf("Highlighter output: %s\n", *outputFile)
	log.Printf("Highlighter reordering method: %s\n", *reorderPaths)

	var nextText TextsIterator
	var err error
	if isS3URI(*inputDir) {
		svc, s3Err := NewS3Client(*s3Region, *s3Endpoint)
		if s3Err != nil {
			log.Fatal(s3Err)
		}
		nextText, err = ReadTextsS3(svc, *inputDir, *sanitizeBool)
	} else {
		if !*forceRehighlight {
			if current, checkErr := upToDate(*outputFile,
				*inputDir); checkErr != nil {
				log.Fatal(checkErr)
			} else if current {
				os.Exit(0)
			}
		}
		nextText, err = ReadTexts(*inputDir, *sanitizeBool, *reorderPaths)
	}
	if err != nil {
		log.Fatal(err)
	}

	highlighter, err := NewTextsHighlighter()
	if err != nil {
		log.Fatal(err)
	}
	highlighter.Workers = *workers
	highlighter.MaxLength = *maxLength

	if dir := filepath.Dir(*outputFile); dir != "." {
		if err = os.MkdirAll(dir, 0755); err != nil {
			log.Fatal(err)
		}
	}
	outFile, err := os.Create(*outputFile)
	if err != nil {
		log.Fatal(err)
	}
	defer outFile.Close()

	begin := time.Now()
	numRecords, numBytes, err := WriteRecords(outFile,
		highlighter.HighlightTexts(nextText))
	if err != nil {
		log.Fatal(err)
	}
	duration := time.Since(begin).Seconds()
	log.Printf("%s texts, %s in %0.2fs, %s/s, cache hits %d, misses %d",
		humanize.Comma(int64(numRecords)), humanize.Bytes(uint64(numBytes)),
		duration, humanize.Bytes(uint64(float64(numBytes)/duration)),
		highlighter.Parser.LruHits(), highlighter.Parser.LruMisses())
}
