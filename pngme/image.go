package pngme

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/DWaterhouse1/pngme/internal/chunkio"
)

// Signature is the fixed 8-byte sequence that opens every PNG file:
// 0x89 P N G \r \n 0x1a \n.
var Signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Image is an ordered sequence of chunks. Insertion order is on-disk order;
// PNG requires IHDR first and IEND last, but beyond the append placement
// policy described on [Image.AppendChunk] this type preserves whatever
// order is read or appended rather than enforcing inner ordering rules.
type Image struct {
	chunks []Chunk
}

// FromChunks builds an image from an already-validated chunk sequence.
// The slice is copied.
func FromChunks(chunks []Chunk) *Image {
	return &Image{chunks: append([]Chunk(nil), chunks...)}
}

// Decode parses a complete PNG byte buffer: the 8-byte signature followed
// by chunk records until the buffer is exhausted. Fails with
// [ErrInvalidSignature] if the buffer does not open with the PNG signature.
// A malformed chunk anywhere invalidates the whole parse; there is no
// partial recovery.
func Decode(b []byte, opts ...DecodeOption) (*Image, error) {
	if len(b) < len(Signature) || !bytes.Equal(b[:len(Signature)], Signature) {
		return nil, ErrInvalidSignature
	}

	o := applyDecodeOptions(opts)
	r := chunkio.NewReader(b[len(Signature):])

	var chunks []Chunk
	for r.Remaining() > 0 {
		c, err := readChunk(r, o)
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", len(chunks), err)
		}
		chunks = append(chunks, c)
	}

	return &Image{chunks: chunks}, nil
}

// Bytes serializes the image: signature followed by every chunk record in
// order. Decoding the result yields an equal image.
func (img *Image) Bytes() []byte {
	size := len(Signature)
	for _, c := range img.chunks {
		size += len(c.data) + chunkOverhead
	}

	w := chunkio.NewWriter(size)
	w.WriteBytes(Signature)
	for _, c := range img.chunks {
		c.encode(w)
	}
	return w.Bytes()
}

// AppendChunk adds a chunk to the image. When the image ends with an IEND
// chunk the new chunk is inserted just before it, so the payload stays
// inside the image proper; readers treat anything after IEND as garbage.
// Otherwise the chunk goes at the end. No uniqueness or ordering validation
// is performed beyond that placement.
func (img *Image) AppendChunk(c Chunk) {
	if n := len(img.chunks); n > 0 && img.chunks[n-1].Type() == TypeIEND {
		img.chunks = append(img.chunks[:n-1], c, img.chunks[n-1])
		return
	}
	img.chunks = append(img.chunks, c)
}

// RemoveFirst removes and returns the first chunk of the given type in
// stream order. Fails with [ErrChunkNotFound] if no chunk matches, leaving
// the sequence untouched.
func (img *Image) RemoveFirst(chunkType ChunkType) (Chunk, error) {
	for i, c := range img.chunks {
		if c.Type() == chunkType {
			img.chunks = append(img.chunks[:i], img.chunks[i+1:]...)
			return c, nil
		}
	}
	return Chunk{}, fmt.Errorf("%w: %s", ErrChunkNotFound, chunkType)
}

// FirstByType returns the first chunk of the given type in stream order
// without mutating the image. Chunks after the first match are never
// addressed; duplicate types are not an error.
func (img *Image) FirstByType(chunkType ChunkType) (Chunk, bool) {
	for _, c := range img.chunks {
		if c.Type() == chunkType {
			return c, true
		}
	}
	return Chunk{}, false
}

// Chunks returns the chunk sequence in on-disk order. The slice is a copy;
// the chunks themselves are immutable.
func (img *Image) Chunks() []Chunk {
	return append([]Chunk(nil), img.chunks...)
}

// Equal reports whether two images hold equal chunks in the same order.
func (img *Image) Equal(other *Image) bool {
	if len(img.chunks) != len(other.chunks) {
		return false
	}
	for i, c := range img.chunks {
		if !c.Equal(other.chunks[i]) {
			return false
		}
	}
	return true
}

// String renders the per-chunk report for every chunk in order.
func (img *Image) String() string {
	parts := make([]string, len(img.chunks))
	for i, c := range img.chunks {
		parts[i] = c.String()
	}
	return strings.Join(parts, "\n\n")
}
