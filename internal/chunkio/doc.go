// Package chunkio provides low-level binary I/O for PNG chunk streams.
//
// PNG chunk records use fixed-width big-endian integers throughout. This
// package supplies a sequential [Reader] and an accumulating [Writer] over
// in-memory buffers, plus the CRC-32 routines PNG uses to protect each
// chunk record.
//
// # Chunk Record Format
//
// Every chunk record is laid out as:
//
//	length (uint32, big-endian) - byte count of the data field
//	type   (4 bytes)            - ASCII chunk type code
//	data   (length bytes)       - opaque payload
//	crc    (uint32, big-endian) - CRC-32 over type and data
//
// # CRC
//
// PNG specifies CRC-32/ISO-HDLC (reflected polynomial 0xEDB88320), which is
// the IEEE CRC implemented by hash/crc32. [Sum] computes the checksum over
// the type bytes followed by the data bytes; [Verify] compares a stored
// value against the recomputed one.
//
// # Key Types and Functions
//
//   - [Reader]: sequential big-endian reads with end-of-buffer detection
//   - [Writer]: append-only big-endian encoding into a growing buffer
//   - [Sum], [Verify]: chunk CRC computation and verification
//
// # Errors
//
//   - [ErrShortRead]: a read would extend past the end of the buffer
package chunkio
