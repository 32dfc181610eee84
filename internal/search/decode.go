package search

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// binarySniffLimit bounds how far decodeText looks for NUL bytes when
// deciding that content is not text.
const binarySniffLimit = 4096

// decodeText converts raw file content into a string, trying the
// declared encodings (Unicode byte order marks) first and falling
// back to permissive UTF-8 with invalid bytes substituted. The second
// return is false when the content is binary and the file should be
// skipped.
func decodeText(content []byte) (string, bool) {
	if len(content) == 0 {
		return "", true
	}

	switch {
	case hasPrefix(content, 0xEF, 0xBB, 0xBF):
		content = content[3:]
	case hasPrefix(content, 0xFF, 0xFE):
		return decodeUTF16(content, unicode.LittleEndian)
	case hasPrefix(content, 0xFE, 0xFF):
		return decodeUTF16(content, unicode.BigEndian)
	}

	sample := content
	if len(sample) > binarySniffLimit {
		sample = sample[:binarySniffLimit]
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return "", false
	}

	if utf8.Valid(content) {
		return string(content), true
	}
	return strings.ToValidUTF8(string(content), string(utf8.RuneError)), true
}

func decodeUTF16(content []byte, endian unicode.Endianness) (string, bool) {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return "", false
	}
	return string(out), true
}

func hasPrefix(b []byte, prefix ...byte) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i, p := range prefix {
		if b[i] != p {
			return false
		}
	}
	return true
}

// splitLines splits decoded content into lines without stripping any
// inner content, so byte offsets into a line stay accurate. Line
// terminators are removed; a trailing newline does not produce a
// phantom empty last line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
