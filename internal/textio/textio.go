// Package textio decodes capture files into text before scanning.
// Captures come from Windows learner tools as often as from Unix editors,
// so UTF-16 with a BOM is as common as plain UTF-8.
package textio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode converts raw capture bytes to a string. UTF-16 input is detected
// by BOM; a UTF-8 BOM is stripped; everything else passes through after a
// UTF-8 validity check.
func Decode(raw []byte) (string, error) {
	switch {
	case bytes.HasPrefix(raw, []byte{0xFF, 0xFE}), bytes.HasPrefix(raw, []byte{0xFE, 0xFF}):
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(raw), decoder))
		if err != nil {
			return "", fmt.Errorf("decode utf-16: %w", err)
		}
		return string(decoded), nil
	case bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}):
		raw = raw[3:]
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("capture text is not valid utf-8")
	}
	return string(raw), nil
}

// ReadFile reads and decodes a capture file.
func ReadFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read capture: %w", err)
	}
	text, err := Decode(raw)
	if err != nil {
		return "", fmt.Errorf("decode capture %s: %w", path, err)
	}
	return text, nil
}
