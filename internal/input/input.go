package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// readChunkSize - Size of the chunks the line counter reads the input file in
const readChunkSize int = 1024

// CountLines - Returns the number of records in the input file. A record ends at the next
// newline; a final record without a terminating newline still counts.
//   - fileName is the path to the input file
func CountLines(fileName string) (lineCount int, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		err = fmt.Errorf("unable to open input file: %s", err)
		return
	}
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, readChunkSize)
	var lastByte byte
	var nonEmpty bool

	for {
		n, readErr := f.Read(buf)
		if n > 0 {
			nonEmpty = true
			for _, b := range buf[:n] {
				if b == '\n' {
					lineCount++
				}
			}
			lastByte = buf[n-1]
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			err = fmt.Errorf("error while reading input file: %s", readErr)
			return
		}
	}

	if nonEmpty && lastByte != '\n' {
		lineCount++
	}

	return
}

// ReadKeyRange - Returns the keys extracted from the records in the half-open range
// [startLine, endLine) of the input file. The key of a record is the byte substring after its
// last comma, with trailing carriage return and newline stripped; a record without a comma
// keys on the entire trimmed line. The file is opened fresh per call so concurrent readers
// never share a file offset.
//
// A file shorter than endLine records yields a shorter result, not an error; the returned
// slice holds exactly the records that were actually read.
//   - fileName is the path to the input file
//   - startLine is the index of the first record to read
//   - endLine is the index one past the last record to read
func ReadKeyRange(fileName string, startLine, endLine int) (keys []string, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		err = fmt.Errorf("unable to open input file: %s", err)
		return
	}
	defer func() {
		_ = f.Close()
	}()

	reader := bufio.NewReaderSize(f, readChunkSize)

	// Discard the records before the range
	for i := 0; i < startLine; i++ {
		_, readErr := reader.ReadString('\n')
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				keys = []string{}
				return
			}
			err = fmt.Errorf("error while skipping to record %d: %s", startLine, readErr)
			return
		}
	}

	keys = make([]string, 0, endLine-startLine)
	for i := startLine; i < endLine; i++ {
		line, readErr := reader.ReadString('\n')
		if len(line) > 0 {
			keys = append(keys, ExtractKey(line))
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return
			}
			err = fmt.Errorf("error while reading record %d: %s", i, readErr)
			return
		}
	}

	return
}

// ExtractKey - Returns the key of a single raw record: the substring after the last comma,
// with trailing line terminators stripped, or the entire trimmed record if it has no comma.
func ExtractKey(record string) string {
	trimmed := strings.TrimRight(record, "\r\n")
	if idx := strings.LastIndexByte(trimmed, ','); idx >= 0 {
		return trimmed[idx+1:]
	}

	return trimmed
}
