package chunkio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterEncoding(t *testing.T) {
	w := NewWriter(16)
	w.WriteUint32(42)
	w.WriteBytes([]byte("RuSt"))
	w.WriteUint8(0x07)

	assert.Equal(t, 9, w.Len())
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x2A, 'R', 'u', 'S', 't', 0x07}, w.Bytes())
}

func TestWriterReaderRoundTrip(t *testing.T) {
	w := NewWriter(0)
	w.WriteUint32(0xDEADBEEF)
	w.WriteBytes([]byte{1, 2, 3})
	w.WriteUint32(7)

	r := NewReader(w.Bytes())

	v, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), v)

	b, err := r.ReadBytes(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)

	v, err = r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(7), v)
	assert.Equal(t, 0, r.Remaining())
}
