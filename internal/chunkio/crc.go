package chunkio

import "hash/crc32"

// Sum computes the PNG chunk CRC over the four chunk type bytes followed by
// the chunk data. PNG uses CRC-32/ISO-HDLC, which is the IEEE polynomial
// implemented by hash/crc32.
func Sum(chunkType [4]byte, data []byte) uint32 {
	crc := crc32.ChecksumIEEE(chunkType[:])
	return crc32.Update(crc, crc32.IEEETable, data)
}

// Verify reports whether stored matches the CRC recomputed over the chunk
// type and data.
func Verify(chunkType [4]byte, data []byte, stored uint32) bool {
	return Sum(chunkType, data) == stored
}
