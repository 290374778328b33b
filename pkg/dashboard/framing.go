package dashboard

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
)

// Framing constants.
const (
	// LengthPrefixSize is the size of the length prefix in bytes.
	LengthPrefixSize = 4

	// MaxFrameSize is the maximum frame payload size (256 KB). Full
	// snapshots with many entries still fit comfortably.
	MaxFrameSize = 262144
)

// Framing errors.
var (
	// ErrFrameTooLarge indicates the frame exceeds the maximum size.
	ErrFrameTooLarge = errors.New("frame too large")

	// ErrFrameEmpty indicates an empty frame.
	ErrFrameEmpty = errors.New("frame is empty")

	// ErrFrameTruncated indicates the frame was cut short.
	ErrFrameTruncated = errors.New("frame truncated")
)

// FrameWriter writes length-prefixed frames to an underlying writer.
// Thread-safe: the flush goroutine and the handshake share connections.
type FrameWriter struct {
	w  io.Writer
	mu sync.Mutex
}

// NewFrameWriter creates a new frame writer.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{w: w}
}

// WriteFrame writes a length-prefixed frame.
func (fw *FrameWriter) WriteFrame(data []byte) error {
	if len(data) == 0 {
		return ErrFrameEmpty
	}
	if len(data) > MaxFrameSize {
		return fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, len(data), MaxFrameSize)
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	// Length prefix (4 bytes, big-endian)
	var lengthBuf [LengthPrefixSize]byte
	binary.BigEndian.PutUint32(lengthBuf[:], uint32(len(data)))

	if _, err := fw.w.Write(lengthBuf[:]); err != nil {
		return fmt.Errorf("failed to write length prefix: %w", err)
	}
	if _, err := fw.w.Write(data); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	return nil
}

// FrameReader reads length-prefixed frames from an underlying reader.
type FrameReader struct {
	r         io.Reader
	lengthBuf [LengthPrefixSize]byte
}

// NewFrameReader creates a new frame reader.
func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{r: r}
}

// ReadFrame reads a length-prefixed frame.
// Returns the frame payload (without the length prefix).
func (fr *FrameReader) ReadFrame() ([]byte, error) {
	if _, err := io.ReadFull(fr.r, fr.lengthBuf[:]); err != nil {
		if err == io.EOF {
			return nil, err
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrFrameTruncated
		}
		return nil, fmt.Errorf("failed to read length prefix: %w", err)
	}

	length := binary.BigEndian.Uint32(fr.lengthBuf[:])
	if length == 0 {
		return nil, ErrFrameEmpty
	}
	if length > MaxFrameSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, length, MaxFrameSize)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(fr.r, payload); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || err == io.EOF {
			return nil, ErrFrameTruncated
		}
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	return payload, nil
}
