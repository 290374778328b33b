package dashboard

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	fw := NewFrameWriter(&buf)
	fr := NewFrameReader(&buf)

	require.NoError(t, fw.WriteFrame([]byte("hello")))
	require.NoError(t, fw.WriteFrame([]byte{0x01, 0x02}))

	first, err := fr.ReadFrame()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), first)

	second, err := fr.ReadFrame()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, second)

	_, err = fr.ReadFrame()
	assert.Equal(t, io.EOF, err)
}

func TestWriteFrameRejectsEmptyAndOversized(t *testing.T) {
	fw := NewFrameWriter(&bytes.Buffer{})

	assert.ErrorIs(t, fw.WriteFrame(nil), ErrFrameEmpty)
	assert.ErrorIs(t, fw.WriteFrame(make([]byte, MaxFrameSize+1)), ErrFrameTooLarge)
}

func TestReadFrameDetectsTruncation(t *testing.T) {
	var buf bytes.Buffer
	fw := NewFrameWriter(&buf)
	require.NoError(t, fw.WriteFrame([]byte("truncated payload")))

	// Chop the last byte off.
	data := buf.Bytes()[:buf.Len()-1]
	fr := NewFrameReader(bytes.NewReader(data))

	_, err := fr.ReadFrame()
	assert.ErrorIs(t, err, ErrFrameTruncated)
}

func TestReadFrameRejectsOversizedHeader(t *testing.T) {
	// Length prefix claims 1 MB.
	header := []byte{0x00, 0x10, 0x00, 0x00}
	fr := NewFrameReader(bytes.NewReader(header))

	_, err := fr.ReadFrame()
	assert.ErrorIs(t, err, ErrFrameTooLarge)
}
