package pngme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader(t *testing.T) {
	h, err := testImage(t).Header()
	require.NoError(t, err)

	assert.Equal(t, uint32(1), h.Width)
	assert.Equal(t, uint32(1), h.Height)
	assert.Equal(t, uint8(8), h.BitDepth)
	assert.Equal(t, uint8(ColorTruecolorAlpha), h.ColorType)
	assert.Equal(t, uint8(0), h.Compression)
	assert.Equal(t, uint8(0), h.Filter)
	assert.Equal(t, uint8(0), h.Interlace)
}

func TestHeaderMissing(t *testing.T) {
	img := FromChunks([]Chunk{mustChunk(t, "ruSt", "no header here")})

	_, err := img.Header()
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestHeaderWrongLength(t *testing.T) {
	short, err := NewChunk(TypeIHDR, []byte{0, 0, 0, 1})
	require.NoError(t, err)
	img := FromChunks([]Chunk{short})

	_, err = img.Header()
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestColorName(t *testing.T) {
	tests := []struct {
		colorType uint8
		want      string
	}{
		{ColorGrayscale, "grayscale"},
		{ColorTruecolor, "truecolor"},
		{ColorIndexed, "indexed"},
		{ColorGrayscaleAlpha, "grayscale+alpha"},
		{ColorTruecolorAlpha, "truecolor+alpha"},
		{9, "unknown(9)"},
	}

	for _, tt := range tests {
		h := Header{ColorType: tt.colorType}
		assert.Equal(t, tt.want, h.ColorName())
	}
}
