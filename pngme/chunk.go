package pngme

import (
	"bytes"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/DWaterhouse1/pngme/internal/chunkio"
)

// MaxChunkData is the largest payload expressible in a chunk's 32-bit
// length field.
const MaxChunkData = math.MaxUint32

// chunkOverhead is the record size beyond the data: length, type and CRC
// fields of four bytes each.
const chunkOverhead = 12

// Chunk is one structural unit of a PNG file: a type code, an opaque
// payload, and the CRC protecting both. Chunks are immutable after
// construction; editing an image means replacing chunks, never mutating
// them in place.
type Chunk struct {
	chunkType ChunkType
	data      []byte
	crc       uint32
}

// NewChunk builds a chunk from a type and payload, computing the CRC fresh.
// The payload is copied. Fails with [ErrDataTooLarge] if the payload cannot
// be described by the 32-bit length field.
func NewChunk(chunkType ChunkType, data []byte) (Chunk, error) {
	if uint64(len(data)) > MaxChunkData {
		return Chunk{}, fmt.Errorf("%w: %d bytes", ErrDataTooLarge, len(data))
	}
	owned := bytes.Clone(data)
	return Chunk{
		chunkType: chunkType,
		data:      owned,
		crc:       chunkio.Sum(chunkType.Bytes(), owned),
	}, nil
}

// ParseChunk parses one chunk record from the start of b. Bytes beyond the
// record are ignored, so callers can parse the first chunk of a longer
// stream. The stored CRC is verified against the type and data unless
// [WithLenientCRC] is given.
func ParseChunk(b []byte, opts ...DecodeOption) (Chunk, error) {
	return readChunk(chunkio.NewReader(b), applyDecodeOptions(opts))
}

// readChunk parses one length/type/data/CRC record at the reader's current
// position.
func readChunk(r *chunkio.Reader, o *decodeOptions) (Chunk, error) {
	length, err := r.ReadUint32()
	if err != nil {
		return Chunk{}, fmt.Errorf("%w: reading length field", ErrUnexpectedEOF)
	}

	typeBytes, err := r.ReadBytes(4)
	if err != nil {
		return Chunk{}, fmt.Errorf("%w: reading type field", ErrUnexpectedEOF)
	}
	chunkType, err := ChunkTypeFromBytes([4]byte(typeBytes))
	if err != nil {
		return Chunk{}, err
	}

	if uint64(length)+4 > uint64(r.Remaining()) {
		return Chunk{}, fmt.Errorf("%w: chunk %s declares %d data bytes, %d available",
			ErrUnexpectedEOF, chunkType, length, r.Remaining())
	}
	data, err := r.ReadBytes(int(length))
	if err != nil {
		return Chunk{}, fmt.Errorf("%w: reading chunk %s data", ErrUnexpectedEOF, chunkType)
	}

	stored, err := r.ReadUint32()
	if err != nil {
		return Chunk{}, fmt.Errorf("%w: reading chunk %s CRC", ErrUnexpectedEOF, chunkType)
	}

	sum := chunkio.Sum(chunkType.Bytes(), data)
	if stored != sum && !o.lenientCRC {
		return Chunk{}, fmt.Errorf("%w: chunk %s stored %08x, computed %08x",
			ErrCRCMismatch, chunkType, stored, sum)
	}

	return Chunk{
		chunkType: chunkType,
		data:      bytes.Clone(data),
		crc:       sum,
	}, nil
}

// Type returns the chunk's type code.
func (c Chunk) Type() ChunkType {
	return c.chunkType
}

// Data returns the chunk payload. The returned slice is owned by the chunk
// and must not be modified.
func (c Chunk) Data() []byte {
	return c.data
}

// Length returns the value of the chunk's length field.
func (c Chunk) Length() uint32 {
	return uint32(len(c.data))
}

// CRC returns the CRC-32 over the chunk's type and data.
func (c Chunk) CRC() uint32 {
	return c.crc
}

// DataString decodes the payload as text. Fails with [ErrNotText] when the
// payload is not valid UTF-8; that is never fatal to chunk processing, only
// to displaying this particular chunk.
func (c Chunk) DataString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("%w: chunk %s", ErrNotText, c.chunkType)
	}
	return string(c.data), nil
}

// Bytes serializes the chunk as a length/type/data/CRC record, the exact
// inverse of [ParseChunk].
func (c Chunk) Bytes() []byte {
	w := chunkio.NewWriter(len(c.data) + chunkOverhead)
	c.encode(w)
	return w.Bytes()
}

func (c Chunk) encode(w *chunkio.Writer) {
	w.WriteUint32(c.Length())
	w.WriteBytes(c.chunkType[:])
	w.WriteBytes(c.data)
	w.WriteUint32(c.crc)
}

// Equal reports whether two chunks have the same type, payload and CRC.
func (c Chunk) Equal(other Chunk) bool {
	return c.chunkType == other.chunkType &&
		c.crc == other.crc &&
		bytes.Equal(c.data, other.data)
}

// String renders a single-chunk report for listing tools.
func (c Chunk) String() string {
	data, err := c.DataString()
	if err != nil {
		data = "<binary data>"
	}
	return fmt.Sprintf("Length: %d\nType: %s\nData: %s\nCRC: %d",
		c.Length(), c.chunkType, data, c.crc)
}
