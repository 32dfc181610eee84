package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePlainUTF8(t *testing.T) {
	text, ok := decodeText([]byte("hello\nworld\n"))
	require.True(t, ok)
	assert.Equal(t, "hello\nworld\n", text)
}

func TestDecodeEmpty(t *testing.T) {
	text, ok := decodeText(nil)
	require.True(t, ok)
	assert.Equal(t, "", text)
}

func TestDecodeStripsUTF8BOM(t *testing.T) {
	text, ok := decodeText([]byte{0xEF, 0xBB, 0xBF, 'h', 'i'})
	require.True(t, ok)
	assert.Equal(t, "hi", text)
}

func TestDecodeUTF16LittleEndian(t *testing.T) {
	// BOM + "hi"
	text, ok := decodeText([]byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00})
	require.True(t, ok)
	assert.Equal(t, "hi", text)
}

func TestDecodeUTF16BigEndian(t *testing.T) {
	text, ok := decodeText([]byte{0xFE, 0xFF, 0x00, 'h', 0x00, 'i'})
	require.True(t, ok)
	assert.Equal(t, "hi", text)
}

func TestDecodeRejectsNULBytes(t *testing.T) {
	_, ok := decodeText([]byte{'a', 0x00, 'b'})
	assert.False(t, ok)
}

func TestDecodeSubstitutesInvalidBytes(t *testing.T) {
	text, ok := decodeText([]byte{'a', 0xFF, 'b'})
	require.True(t, ok)
	assert.Contains(t, text, "a")
	assert.Contains(t, text, "b")
	assert.Contains(t, text, "�")
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single no newline", "abc", []string{"abc"}},
		{"trailing newline", "abc\n", []string{"abc"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank middle line", "a\n\nb\n", []string{"a", "", "b"}},
		{"preserves indentation", "  a \n", []string{"  a "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLines(tt.in))
		})
	}
}

func TestMatchesGlob(t *testing.T) {
	assert.True(t, matchesGlob("", "anything.txt"))
	assert.True(t, matchesGlob("*", "anything.txt"))
	assert.True(t, matchesGlob("*.go", "main.go"))
	assert.False(t, matchesGlob("*.go", "main.py"))
	assert.True(t, matchesGlob("data_?.csv", "data_1.csv"))
	assert.False(t, matchesGlob("data_?.csv", "data_10.csv"))
	// Malformed pattern matches nothing rather than erroring.
	assert.False(t, matchesGlob("[", "x"))
}

func TestIsIgnoredName(t *testing.T) {
	assert.True(t, isIgnoredName(".git"))
	assert.True(t, isIgnoredName("__pycache__"))
	assert.True(t, isIgnoredName("node_modules"))
	assert.False(t, isIgnoredName("src"))
	assert.False(t, isIgnoredName("git"))
}
