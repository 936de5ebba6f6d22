package pngme

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/DWaterhouse1/pngme/internal/chunkio"
)

// PNG text chunk constraints: the keyword is 1-79 printable Latin-1 bytes
// with no NUL, separated from the text by a single NUL.
const maxKeywordLength = 79

// zlibMethod is the only compression method defined for zTXt payloads.
const zlibMethod = 0

// NewTextChunk builds a chunk with the tEXt payload layout: keyword, NUL
// separator, then the text verbatim.
func NewTextChunk(chunkType ChunkType, keyword, text string) (Chunk, error) {
	if err := validateKeyword(keyword); err != nil {
		return Chunk{}, err
	}

	w := chunkio.NewWriter(len(keyword) + 1 + len(text))
	w.WriteBytes([]byte(keyword))
	w.WriteUint8(0)
	w.WriteBytes([]byte(text))
	return NewChunk(chunkType, w.Bytes())
}

// NewCompressedTextChunk builds a chunk with the zTXt payload layout:
// keyword, NUL separator, a method byte of zero, then the text as a zlib
// stream.
func NewCompressedTextChunk(chunkType ChunkType, keyword, text string) (Chunk, error) {
	if err := validateKeyword(keyword); err != nil {
		return Chunk{}, err
	}

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write([]byte(text)); err != nil {
		return Chunk{}, fmt.Errorf("compressing text: %w", err)
	}
	if err := zw.Close(); err != nil {
		return Chunk{}, fmt.Errorf("compressing text: %w", err)
	}

	w := chunkio.NewWriter(len(keyword) + 2 + compressed.Len())
	w.WriteBytes([]byte(keyword))
	w.WriteUint8(0)
	w.WriteUint8(zlibMethod)
	w.WriteBytes(compressed.Bytes())
	return NewChunk(chunkType, w.Bytes())
}

// DecodeTextChunk splits a tEXt-layout payload into keyword and text.
func DecodeTextChunk(c Chunk) (keyword, text string, err error) {
	kw, rest, err := splitKeyword(c)
	if err != nil {
		return "", "", err
	}
	return kw, string(rest), nil
}

// DecodeCompressedTextChunk splits a zTXt-layout payload into keyword and
// decompressed text.
func DecodeCompressedTextChunk(c Chunk) (keyword, text string, err error) {
	kw, rest, err := splitKeyword(c)
	if err != nil {
		return "", "", err
	}
	if len(rest) < 1 {
		return "", "", fmt.Errorf("%w: chunk %s missing compression method", ErrInvalidTextChunk, c.Type())
	}
	if rest[0] != zlibMethod {
		return "", "", fmt.Errorf("%w: chunk %s compression method %d", ErrInvalidTextChunk, c.Type(), rest[0])
	}

	zr, err := zlib.NewReader(bytes.NewReader(rest[1:]))
	if err != nil {
		return "", "", fmt.Errorf("decompressing chunk %s: %w", c.Type(), err)
	}
	defer zr.Close()

	decompressed, err := io.ReadAll(zr)
	if err != nil {
		return "", "", fmt.Errorf("decompressing chunk %s: %w", c.Type(), err)
	}
	return kw, string(decompressed), nil
}

// splitKeyword separates the keyword from the remainder of a text payload
// at the first NUL.
func splitKeyword(c Chunk) (string, []byte, error) {
	data := c.Data()
	i := bytes.IndexByte(data, 0)
	if i < 0 {
		return "", nil, fmt.Errorf("%w: chunk %s has no keyword separator", ErrInvalidTextChunk, c.Type())
	}
	if i == 0 || i > maxKeywordLength {
		return "", nil, fmt.Errorf("%w: chunk %s keyword is %d bytes", ErrInvalidTextChunk, c.Type(), i)
	}
	return string(data[:i]), data[i+1:], nil
}

func validateKeyword(keyword string) error {
	if len(keyword) == 0 || len(keyword) > maxKeywordLength {
		return fmt.Errorf("%w: keyword is %d bytes", ErrInvalidTextChunk, len(keyword))
	}
	for i := 0; i < len(keyword); i++ {
		b := keyword[i]
		// Printable Latin-1 only, per the PNG text chunk rules.
		if (b < 32 || b > 126) && (b < 161) {
			return fmt.Errorf("%w: keyword byte %d is not printable Latin-1", ErrInvalidTextChunk, i)
		}
	}
	return nil
}
