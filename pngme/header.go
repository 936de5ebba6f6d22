package pngme

import (
	"fmt"

	"github.com/DWaterhouse1/pngme/internal/chunkio"
)

// headerLength is the fixed payload size of an IHDR chunk.
const headerLength = 13

// Header holds the fields of an image's IHDR chunk.
type Header struct {
	Width       uint32
	Height      uint32
	BitDepth    uint8
	ColorType   uint8
	Compression uint8
	Filter      uint8
	Interlace   uint8
}

// IHDR color type values.
const (
	ColorGrayscale      = 0
	ColorTruecolor      = 2
	ColorIndexed        = 3
	ColorGrayscaleAlpha = 4
	ColorTruecolorAlpha = 6
)

// Header parses the image's IHDR payload. Fails with [ErrNoHeader] when no
// IHDR chunk is present and [ErrInvalidHeader] when its payload is not the
// required 13 bytes.
func (img *Image) Header() (Header, error) {
	c, ok := img.FirstByType(TypeIHDR)
	if !ok {
		return Header{}, ErrNoHeader
	}
	if c.Length() != headerLength {
		return Header{}, fmt.Errorf("%w: %d byte payload", ErrInvalidHeader, c.Length())
	}

	r := chunkio.NewReader(c.Data())
	var h Header
	h.Width, _ = r.ReadUint32()
	h.Height, _ = r.ReadUint32()
	h.BitDepth, _ = r.ReadUint8()
	h.ColorType, _ = r.ReadUint8()
	h.Compression, _ = r.ReadUint8()
	h.Filter, _ = r.ReadUint8()
	h.Interlace, _ = r.ReadUint8()
	return h, nil
}

// ColorName returns a human-readable name for the header's color type.
func (h Header) ColorName() string {
	switch h.ColorType {
	case ColorGrayscale:
		return "grayscale"
	case ColorTruecolor:
		return "truecolor"
	case ColorIndexed:
		return "indexed"
	case ColorGrayscaleAlpha:
		return "grayscale+alpha"
	case ColorTruecolorAlpha:
		return "truecolor+alpha"
	default:
		return fmt.Sprintf("unknown(%d)", h.ColorType)
	}
}
