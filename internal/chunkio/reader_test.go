package chunkio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderSequential(t *testing.T) {
	r := NewReader([]byte{0x00, 0x00, 0x00, 0x2A, 'R', 'u', 'S', 't', 0x07})

	length, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), length)

	typ, err := r.ReadBytes(4)
	require.NoError(t, err)
	assert.Equal(t, []byte("RuSt"), typ)

	b, err := r.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(7), b)

	assert.Equal(t, 9, r.Pos())
	assert.Equal(t, 0, r.Remaining())
}

func TestReaderShortRead(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})

	_, err := r.ReadUint32()
	assert.ErrorIs(t, err, ErrShortRead)

	// A failed read must not consume anything.
	assert.Equal(t, 0, r.Pos())
	assert.Equal(t, 2, r.Remaining())

	_, err = r.ReadBytes(3)
	assert.ErrorIs(t, err, ErrShortRead)

	b, err := r.ReadBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, b)

	_, err = r.ReadUint8()
	assert.ErrorIs(t, err, ErrShortRead)
}

func TestReaderNegativeCount(t *testing.T) {
	r := NewReader([]byte{0x01})
	_, err := r.ReadBytes(-1)
	assert.ErrorIs(t, err, ErrShortRead)
}

func TestReaderEmptyRead(t *testing.T) {
	r := NewReader(nil)
	b, err := r.ReadBytes(0)
	require.NoError(t, err)
	assert.Empty(t, b)
}
