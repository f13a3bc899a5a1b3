// Package loader reads flat program images into instruction words.
//
// Two formats are supported: raw binary (little-endian 32-bit words) and
// hex text (one word per line, '#' starts a comment).
package loader

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadBinary reads a flat image of little-endian 32-bit instruction
// words. A trailing partial word is an error.
func LoadBinary(r io.Reader) ([]uint32, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read image: %w", err)
	}
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("image size %d is not a multiple of 4", len(data))
	}

	words := make([]uint32, 0, len(data)/4)
	buf := bytes.NewReader(data)
	for {
		var word uint32
		err := binary.Read(buf, binary.LittleEndian, &word)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not decode image word: %w", err)
		}
		words = append(words, word)
	}
	return words, nil
}

// LoadHex reads a text listing with one hexadecimal instruction word per
// line. Blank lines and '#' comments are skipped; a leading "0x" on each
// word is optional.
func LoadHex(r io.Reader) ([]uint32, error) {
	var words []uint32

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		line = strings.TrimPrefix(strings.ToLower(line), "0x")
		word, err := strconv.ParseUint(line, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad instruction word %q", lineNo, line)
		}
		words = append(words, uint32(word))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

// Load reads a program image from a file, picking the format by
// extension: ".hex" and ".txt" are hex listings, anything else is raw
// binary.
func Load(path string) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open program: %w", err)
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".hex", ".txt":
		return LoadHex(f)
	default:
		return LoadBinary(f)
	}
}
