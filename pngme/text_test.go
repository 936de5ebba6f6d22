package pngme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextChunkRoundTrip(t *testing.T) {
	c, err := NewTextChunk(TypeTEXT, "Comment", "a secret message")
	require.NoError(t, err)
	assert.Equal(t, TypeTEXT, c.Type())

	keyword, text, err := DecodeTextChunk(c)
	require.NoError(t, err)
	assert.Equal(t, "Comment", keyword)
	assert.Equal(t, "a secret message", text)
}

func TestCompressedTextChunkRoundTrip(t *testing.T) {
	// Repetitive text so the zlib stream actually shrinks.
	long := strings.Repeat("a secret message ", 100)

	c, err := NewCompressedTextChunk(TypeZTXT, "Comment", long)
	require.NoError(t, err)
	assert.Less(t, int(c.Length()), len(long))

	keyword, text, err := DecodeCompressedTextChunk(c)
	require.NoError(t, err)
	assert.Equal(t, "Comment", keyword)
	assert.Equal(t, long, text)
}

func TestCompressedTextChunkSurvivesReparse(t *testing.T) {
	c, err := NewCompressedTextChunk(TypeZTXT, "Comment", "hello")
	require.NoError(t, err)

	parsed, err := ParseChunk(c.Bytes())
	require.NoError(t, err)

	_, text, err := DecodeCompressedTextChunk(parsed)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestTextChunkKeywordValidation(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
	}{
		{"empty", ""},
		{"too long", strings.Repeat("k", 80)},
		{"control byte", "bad\x01keyword"},
		{"latin-1 gap", "bad\x90keyword"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTextChunk(TypeTEXT, tt.keyword, "text")
			assert.ErrorIs(t, err, ErrInvalidTextChunk)

			_, err = NewCompressedTextChunk(TypeZTXT, tt.keyword, "text")
			assert.ErrorIs(t, err, ErrInvalidTextChunk)
		})
	}
}

func TestDecodeTextChunkMalformed(t *testing.T) {
	noSeparator, err := NewChunk(TypeTEXT, []byte("no separator"))
	require.NoError(t, err)
	_, _, err = DecodeTextChunk(noSeparator)
	assert.ErrorIs(t, err, ErrInvalidTextChunk)

	emptyKeyword, err := NewChunk(TypeTEXT, []byte{0, 'x'})
	require.NoError(t, err)
	_, _, err = DecodeTextChunk(emptyKeyword)
	assert.ErrorIs(t, err, ErrInvalidTextChunk)
}

func TestDecodeCompressedTextChunkMalformed(t *testing.T) {
	missingMethod, err := NewChunk(TypeZTXT, []byte("kw\x00"))
	require.NoError(t, err)
	_, _, err = DecodeCompressedTextChunk(missingMethod)
	assert.ErrorIs(t, err, ErrInvalidTextChunk)

	badMethod, err := NewChunk(TypeZTXT, []byte("kw\x00\x07data"))
	require.NoError(t, err)
	_, _, err = DecodeCompressedTextChunk(badMethod)
	assert.ErrorIs(t, err, ErrInvalidTextChunk)

	badStream, err := NewChunk(TypeZTXT, []byte("kw\x00\x00not zlib"))
	require.NoError(t, err)
	_, _, err = DecodeCompressedTextChunk(badStream)
	assert.Error(t, err)
}
