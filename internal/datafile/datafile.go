// Package datafile loads JSON dataset documents from disk into plain-data
// trees (map[string]any / []any), the shape the objwalk utilities operate
// on.
//
// Dashboard datasets frequently originate on Windows machines, so files are
// accepted in UTF-8 (with or without BOM), UTF-16LE/BE, and as a last
// resort Windows-1252, all normalized to UTF-8 before decoding.
package datafile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Load reads the JSON document at path and returns the decoded plain-data
// tree. On unix the file is mmapped for the duration of decoding; elsewhere
// it is read into memory.
func Load(path string) (any, error) {
	raw, err := ReadUTF8(path)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("datafile: parse %s: %w", path, err)
	}
	return doc, nil
}

// ReadUTF8 reads the file at path and returns its contents normalized to
// UTF-8. The returned slice is always an in-memory copy, safe to retain.
func ReadUTF8(path string) ([]byte, error) {
	raw, done, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("datafile: read %s: %w", path, err)
	}
	defer done()

	text, err := toUTF8(raw)
	if err != nil {
		return nil, fmt.Errorf("datafile: decode %s: %w", path, err)
	}

	// The bytes may alias the mmap region released by done.
	out := make([]byte, len(text))
	copy(out, text)
	return out, nil
}

// Parse normalizes raw to UTF-8 and unmarshals it into a plain-data tree.
func Parse(raw []byte) (any, error) {
	text, err := toUTF8(raw)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(text, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Byte-order marks recognized by toUTF8.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// toUTF8 converts raw to UTF-8 based on its BOM, passing valid UTF-8
// through untouched. BOM-less non-UTF-8 input falls back to Windows-1252,
// the encoding Windows tools export in when not using Unicode.
func toUTF8(raw []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		return raw[len(bomUTF8):], nil
	case bytes.HasPrefix(raw, bomUTF16LE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, raw)
		return out, err
	case bytes.HasPrefix(raw, bomUTF16BE):
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, raw)
		return out, err
	case utf8.Valid(raw):
		return raw, nil
	default:
		out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), raw)
		return out, err
	}
}
