// Package fileio writes, reads back and checks for a text file.
//
// Every function closes the handle it opened before returning, including on
// error paths.
package fileio

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// SampleName is the file the tour writes.
const SampleName = "sample.txt"

// SampleLine is the content the tour writes.
const SampleLine = "Hello, File Handling!"

// WriteLine creates or truncates path and writes line followed by a newline.
func WriteLine(path, line string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s for writing: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// ReadLines reads path line by line until end of stream.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s for reading: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// Exists reports whether path exists. Errors other than "not exist" are
// returned rather than treated as absence.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}
