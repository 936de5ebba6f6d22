// Package pngme manipulates the chunk structure of PNG files to embed,
// retrieve, and remove arbitrary auxiliary data without corrupting the
// image for standard viewers.
//
// The package never decodes pixel data. It models a PNG file purely as its
// 8-byte signature followed by a sequence of chunk records, and validates
// structural correctness only: the signature, chunk type codes, length
// fields and CRCs.
//
// # Chunk Model
//
//   - [ChunkType]: a validated 4-byte type code whose letter casing encodes
//     the ancillary, private, reserved and safe-to-copy property bits.
//   - [Chunk]: one immutable record of type, data and CRC-32 computed over
//     type and data.
//   - [Image]: the ordered chunk sequence with decode, lookup, append,
//     remove and re-serialization.
//
// # Usage
//
// Embed a message in an existing image:
//
//	img, err := pngme.Decode(raw)
//	if err != nil {
//	    return err
//	}
//	ct, _ := pngme.ChunkTypeFromString("ruSt")
//	c, _ := pngme.NewChunk(ct, []byte("hello"))
//	img.AppendChunk(c)
//	out := img.Bytes()
//
// Retrieve it again:
//
//	if c, ok := img.FirstByType(ct); ok {
//	    msg, err := c.DataString()
//	    ...
//	}
//
// Lookup and removal address the first chunk of a type in stream order;
// duplicate types are not an error.
//
// # Text Chunks
//
// [NewTextChunk] and [NewCompressedTextChunk] build payloads in the tEXt
// and zTXt layouts, the latter compressed with zlib.
// [DecodeTextChunk] and [DecodeCompressedTextChunk] are their inverses.
//
// # Errors
//
// Parse and construction failures are unrecoverable for that call and are
// reported through sentinel errors ([ErrInvalidSignature], [ErrCRCMismatch],
// [ErrUnexpectedEOF], [ErrInvalidChunkType], [ErrDataTooLarge]) wrapped
// with positional detail; match them with errors.Is. [ErrChunkNotFound] is
// an ordinary outcome of lookup and removal, distinguishable from
// structural corruption. [ErrNotText] only suppresses a chunk's text
// preview and never aborts processing.
//
// Decoding with [WithLenientCRC] accepts records with wrong stored CRCs and
// rebuilds them with correct ones, which re-serialization then writes out.
package pngme
