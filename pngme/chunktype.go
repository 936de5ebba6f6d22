package pngme

import "fmt"

// ChunkType is a 4-byte PNG chunk type code. Each byte must be an ASCII
// letter; the case of each byte encodes one property bit. ChunkType is a
// value type and compares with ==.
type ChunkType [4]byte

// Well-known chunk types.
var (
	TypeIHDR = ChunkType{'I', 'H', 'D', 'R'}
	TypePLTE = ChunkType{'P', 'L', 'T', 'E'}
	TypeIDAT = ChunkType{'I', 'D', 'A', 'T'}
	TypeIEND = ChunkType{'I', 'E', 'N', 'D'}
	TypeTEXT = ChunkType{'t', 'E', 'X', 't'}
	TypeZTXT = ChunkType{'z', 'T', 'X', 't'}
)

// ChunkTypeFromBytes validates b as a chunk type code. All four bytes must
// be ASCII alphabetic.
func ChunkTypeFromBytes(b [4]byte) (ChunkType, error) {
	for _, c := range b {
		if !isASCIILetter(c) {
			return ChunkType{}, fmt.Errorf("%w: %q", ErrInvalidChunkType, b[:])
		}
	}
	return ChunkType(b), nil
}

// ChunkTypeFromString validates s as a chunk type code. The string must be
// exactly four ASCII letters.
func ChunkTypeFromString(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, fmt.Errorf("%w: %q is %d bytes", ErrInvalidChunkType, s, len(s))
	}
	return ChunkTypeFromBytes([4]byte([]byte(s)))
}

// Bytes returns the four type bytes with their original casing.
func (t ChunkType) Bytes() [4]byte {
	return [4]byte(t)
}

// String returns the type code as a string with its original casing.
func (t ChunkType) String() string {
	return string(t[:])
}

// IsCritical reports whether the chunk is critical to displaying the image.
// Encoded as an uppercase first byte.
func (t ChunkType) IsCritical() bool {
	return !bitFiveSet(t[0])
}

// IsPublic reports whether the type code is from the public registry.
// Encoded as an uppercase second byte.
func (t ChunkType) IsPublic() bool {
	return !bitFiveSet(t[1])
}

// IsReservedBitValid reports whether the reserved bit conforms to the
// current PNG specification. The third byte must be uppercase; a lowercase
// third byte marks a type reserved for future revisions.
func (t ChunkType) IsReservedBitValid() bool {
	return !bitFiveSet(t[2])
}

// IsSafeToCopy reports whether editors that do not recognize the chunk may
// copy it to a modified image. Encoded as a lowercase fourth byte.
func (t ChunkType) IsSafeToCopy() bool {
	return bitFiveSet(t[3])
}

// IsValid reports whether the type conforms to the current specification,
// i.e. the reserved bit holds. A type failing this check still parses; the
// flag is surfaced by listing tools rather than treated as an error.
func (t ChunkType) IsValid() bool {
	return t.IsReservedBitValid()
}

// Bit 5 is the ASCII case bit: set for lowercase letters.
func bitFiveSet(b byte) bool {
	return b&0x20 != 0
}

func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
