// Package input loads raw calculator input from files and readers.
package input

import (
	"fmt"
	"io"
	"os"
)

// MaxSize is the largest raw input accepted, in bytes.
const MaxSize = 1 << 20

// Load reads the whole file at path as raw input.
func Load(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()
	return FromReader(file)
}

// FromReader reads r to EOF as raw input.
func FromReader(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return "", err
	}
	if len(data) > MaxSize {
		return "", fmt.Errorf("input is larger than %d bytes", MaxSize)
	}
	return string(data), nil
}
