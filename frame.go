package amqp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// FrameType is the first octet of every frame.
type FrameType uint8

// Frame types
const (
	FrameMethod    FrameType = 1
	FrameHeader    FrameType = 2
	FrameBody      FrameType = 3
	FrameHeartbeat FrameType = 8
)

func (t FrameType) String() string {
	switch t {
	case FrameMethod:
		return "method"
	case FrameHeader:
		return "header"
	case FrameBody:
		return "body"
	case FrameHeartbeat:
		return "heartbeat"
	default:
		return fmt.Sprintf("frame(%d)", uint8(t))
	}
}

const (
	// FrameEnd terminates every frame.
	FrameEnd = 0xCE

	// FrameMax bounds the payload of a single frame.
	FrameMax = 131072

	// frameHeaderSize is type(1) + channel(2) + size(4).
	frameHeaderSize = 7
)

// Frame errors
var (
	ErrInvalidFrameEnd  = errors.New("frame not terminated by frame-end octet")
	ErrUnknownFrameType = errors.New("unknown frame type")
	ErrFrameTooLarge    = errors.New("frame payload exceeds FrameMax")
)

// Frame is a decoded frame header plus its payload.
type Frame struct {
	Type    FrameType
	Channel uint16
	Payload []byte
}

// FrameWriter wraps an io.Writer for streaming frame encoding
type FrameWriter struct {
	w   io.Writer
	buf []byte
}

// NewFrameWriter creates a new frame writer
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{w: w, buf: make([]byte, frameHeaderSize+FrameMax+1)}
}

// WriteMethod encodes m into a single method frame on the given channel.
// The size field is back-filled once the arguments have been written.
func (fw *FrameWriter) WriteMethod(channel uint16, m Method) error {
	enc := NewEncoder(fw.buf[:frameHeaderSize+FrameMax])
	if err := enc.EncodeOctet(uint8(FrameMethod)); err != nil {
		return err
	}
	if err := enc.EncodeShort(channel); err != nil {
		return err
	}
	if err := enc.EncodeLong(0); err != nil {
		return err
	}
	if err := (methodHeader{m: m}).Encode(enc); err != nil {
		return err
	}
	enc.putLong(3, uint32(enc.Len()-frameHeaderSize))

	n := enc.Len()
	fw.buf[n] = FrameEnd
	_, err := fw.w.Write(fw.buf[:n+1])
	return err
}

// WriteFrame writes a frame with an already encoded payload
func (fw *FrameWriter) WriteFrame(f Frame) error {
	if len(f.Payload) > FrameMax {
		return ErrFrameTooLarge
	}
	fw.buf[0] = uint8(f.Type)
	binary.BigEndian.PutUint16(fw.buf[1:], f.Channel)
	binary.BigEndian.PutUint32(fw.buf[3:], uint32(len(f.Payload)))
	n := frameHeaderSize + copy(fw.buf[frameHeaderSize:], f.Payload)
	fw.buf[n] = FrameEnd
	_, err := fw.w.Write(fw.buf[:n+1])
	return err
}

// FrameReader wraps an io.Reader for streaming frame decoding
type FrameReader struct {
	r   io.Reader
	buf [frameHeaderSize]byte
}

// NewFrameReader creates a new frame reader
func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{r: r}
}

// ReadFrame reads one complete frame. Errors from the underlying reader are
// returned as is.
func (fr *FrameReader) ReadFrame() (Frame, error) {
	if _, err := io.ReadFull(fr.r, fr.buf[:]); err != nil {
		return Frame{}, err
	}

	f := Frame{
		Type:    FrameType(fr.buf[0]),
		Channel: binary.BigEndian.Uint16(fr.buf[1:]),
	}
	size := binary.BigEndian.Uint32(fr.buf[3:])
	if size > FrameMax {
		return Frame{}, ErrFrameTooLarge
	}

	// Payload and frame-end octet
	payload := make([]byte, int(size)+1)
	if _, err := io.ReadFull(fr.r, payload); err != nil {
		return Frame{}, err
	}
	if payload[size] != FrameEnd {
		return Frame{}, ErrInvalidFrameEnd
	}
	f.Payload = payload[:size]

	switch f.Type {
	case FrameMethod, FrameHeader, FrameBody, FrameHeartbeat:
		return f, nil
	default:
		return f, ErrUnknownFrameType
	}
}
