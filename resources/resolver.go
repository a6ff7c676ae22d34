package resources

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

// WriteCounter counts the number of bytes written to it, and every 10 seconds,
// it prints a message reporting the number of bytes written so far.
type WriteCounter struct {
	Total    uint64
	Last     time.Time
	Reported bool
	Path     string
	Size     uint64
}

func (wc *WriteCounter) Write(p []byte) (int, error) {
	n := len(p)
	wc.Total += uint64(n)
	if time.Since(wc.Last).Seconds() > 10 {
		wc.Reported = true
		wc.Last = time.Now()
		log.Printf("Downloading %s... %s / %s completed.",
			wc.Path, humanize.Bytes(wc.Total), humanize.Bytes(wc.Size))
	}
	return n, nil
}

// ResourceEntry holds the contents of a resolved input, either mapped into
// memory from a file or read fully from a remote server.
type ResourceEntry struct {
	file  *os.File
	unmap func() error
	Data  *[]byte
}

// Text returns the contents as a string. The string is a copy, so it stays
// valid after Close.
func (rsrc *ResourceEntry) Text() string {
	if rsrc.Data == nil {
		return ""
	}
	return string(*rsrc.Data)
}

// Close releases the memory map and the file handle, if any.
func (rsrc *ResourceEntry) Close() error {
	var err error
	if rsrc.unmap != nil {
		err = rsrc.unmap()
		rsrc.unmap = nil
	}
	if rsrc.file != nil {
		if closeErr := rsrc.file.Close(); err == nil {
			err = closeErr
		}
		rsrc.file = nil
	}
	rsrc.Data = nil
	return err
}

func isValidUrl(toTest string) bool {
	_, err := url.ParseRequestURI(toTest)
	if err != nil {
		return false
	}

	u, err := url.Parse(toTest)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return u.Scheme == "http" || u.Scheme == "https"
}

// ReadFile
// Maps a local file into memory. Empty files are not mapped.
func ReadFile(path string) (*ResourceEntry, error) {
	file, openErr := os.Open(path)
	if openErr != nil {
		return nil, openErr
	}
	stat, statErr := file.Stat()
	if statErr != nil {
		file.Close()
		return nil, statErr
	}
	if stat.IsDir() {
		file.Close()
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if stat.Size() == 0 {
		file.Close()
		empty := make([]byte, 0)
		return &ResourceEntry{Data: &empty}, nil
	}
	data, unmap, mmapErr := readMmap(file)
	if mmapErr != nil {
		file.Close()
		return nil, errors.New(
			fmt.Sprintf("error trying to mmap file: %s", mmapErr))
	}
	return &ResourceEntry{file: file, unmap: unmap, Data: data}, nil
}

// ReadHTTP
// Downloads a remote resource fully into memory, logging progress for large
// downloads.
func ReadHTTP(uri string, auth string) (*ResourceEntry, error) {
	size, sizeErr := SizeHTTP(uri, auth)
	if sizeErr != nil {
		// Not every server answers HEAD; the GET decides.
		size = 0
	}
	body, fetchErr := FetchHTTP(uri, auth)
	if fetchErr != nil {
		return nil, fmt.Errorf("error fetching %s: %w", uri, fetchErr)
	}
	defer body.Close()
	counter := &WriteCounter{
		Last: time.Now(),
		Path: uri,
		Size: uint64(size),
	}
	buf := bytes.NewBuffer(make([]byte, 0, size))
	if _, copyErr := io.Copy(buf, io.TeeReader(body, counter)); copyErr != nil {
		return nil, fmt.Errorf("error reading %s: %w", uri, copyErr)
	}
	if counter.Reported {
		log.Printf("Downloaded %s, %s.", uri, humanize.Bytes(counter.Total))
	}
	data := buf.Bytes()
	return &ResourceEntry{Data: &data}, nil
}

// ResolveInput
// Given a local path or an http(s) URL, returns its contents.
func ResolveInput(uri string, auth string) (*ResourceEntry, error) {
	if isValidUrl(uri) {
		return ReadHTTP(uri, auth)
	}
	return ReadFile(uri)
}
