package pngme

import "errors"

// Common errors
var (
	ErrInvalidChunkType = errors.New("chunk type must be four ASCII letters")
	ErrUnexpectedEOF    = errors.New("unexpected end of chunk data")
	ErrCRCMismatch      = errors.New("chunk CRC mismatch")
	ErrInvalidSignature = errors.New("not a PNG file")
	ErrChunkNotFound    = errors.New("chunk not found")
	ErrDataTooLarge     = errors.New("chunk data exceeds the 32-bit length field")
	ErrNotText          = errors.New("chunk data is not valid UTF-8")
	ErrInvalidTextChunk = errors.New("malformed text chunk")
	ErrNoHeader         = errors.New("image has no IHDR chunk")
	ErrInvalidHeader    = errors.New("malformed IHDR chunk")
)
