package amqp

import (
	"encoding/binary"
	"errors"
	"math"
	"time"
)

// Wire errors
var (
	ErrBufferTooSmall = errors.New("buffer too small")
	ErrInvalidData    = errors.New("invalid AMQP data")
	ErrUnexpectedEOF  = errors.New("unexpected end of data")
	ErrTrailingData   = errors.New("trailing data after method arguments")
	ErrStringTooLong  = errors.New("short string longer than 255 bytes")
)

// Encoder writes AMQP wire primitives into a caller supplied buffer.
// All integers are big-endian and nothing is padded.
type Encoder struct {
	buf []byte
	pos int
}

// NewEncoder creates a new encoder with the provided buffer
func NewEncoder(buf []byte) *Encoder {
	return &Encoder{buf: buf}
}

// Bytes returns the encoded data
func (e *Encoder) Bytes() []byte {
	return e.buf[:e.pos]
}

// Len returns the number of bytes encoded
func (e *Encoder) Len() int {
	return e.pos
}

// Reset resets the encoder to use a new buffer
func (e *Encoder) Reset(buf []byte) {
	e.buf = buf
	e.pos = 0
}

func (e *Encoder) reserve(n int) error {
	if e.pos+n > len(e.buf) {
		return ErrBufferTooSmall
	}
	return nil
}

// EncodeOctet encodes an 8-bit unsigned integer. Packed bit fields are
// written through this method once their byte is complete.
func (e *Encoder) EncodeOctet(v uint8) error {
	if err := e.reserve(1); err != nil {
		return err
	}
	e.buf[e.pos] = v
	e.pos++
	return nil
}

// EncodeShort encodes a 16-bit unsigned integer
func (e *Encoder) EncodeShort(v uint16) error {
	if err := e.reserve(2); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(e.buf[e.pos:], v)
	e.pos += 2
	return nil
}

// EncodeLong encodes a 32-bit unsigned integer
func (e *Encoder) EncodeLong(v uint32) error {
	if err := e.reserve(4); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(e.buf[e.pos:], v)
	e.pos += 4
	return nil
}

// EncodeLongLong encodes a 64-bit unsigned integer
func (e *Encoder) EncodeLongLong(v uint64) error {
	if err := e.reserve(8); err != nil {
		return err
	}
	binary.BigEndian.PutUint64(e.buf[e.pos:], v)
	e.pos += 8
	return nil
}

// EncodeTimestamp encodes a time as 64-bit POSIX seconds. The zero time is
// encoded as 0. Times before the epoch have no unsigned encoding and fail
// with ErrInvalidData.
func (e *Encoder) EncodeTimestamp(v time.Time) error {
	if v.IsZero() {
		return e.EncodeLongLong(0)
	}
	secs := v.Unix()
	if secs < 0 {
		return ErrInvalidData
	}
	return e.EncodeLongLong(uint64(secs))
}

// EncodeShortString encodes a string with a one byte length prefix
func (e *Encoder) EncodeShortString(v string) error {
	if len(v) > math.MaxUint8 {
		return ErrStringTooLong
	}
	if err := e.reserve(1 + len(v)); err != nil {
		return err
	}
	e.buf[e.pos] = uint8(len(v))
	e.pos++
	e.pos += copy(e.buf[e.pos:], v)
	return nil
}

// EncodeLongString encodes a string with a four byte length prefix
func (e *Encoder) EncodeLongString(v string) error {
	if err := e.reserve(4 + len(v)); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(e.buf[e.pos:], uint32(len(v)))
	e.pos += 4
	e.pos += copy(e.buf[e.pos:], v)
	return nil
}

// EncodeBytes encodes a byte slice with a four byte length prefix
func (e *Encoder) EncodeBytes(v []byte) error {
	if err := e.reserve(4 + len(v)); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(e.buf[e.pos:], uint32(len(v)))
	e.pos += 4
	e.pos += copy(e.buf[e.pos:], v)
	return nil
}

// putLong overwrites four bytes at an earlier position, used to back-fill
// length prefixes once the body has been written.
func (e *Encoder) putLong(at int, v uint32) {
	binary.BigEndian.PutUint32(e.buf[at:], v)
}

// Decoder reads AMQP wire primitives from a byte slice
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder creates a new decoder with the provided data
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Remaining returns the number of bytes remaining to be decoded
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

// Position returns the current decode position
func (d *Decoder) Position() int {
	return d.pos
}

// Reset resets the decoder to use new data
func (d *Decoder) Reset(buf []byte) {
	d.buf = buf
	d.pos = 0
}

// ExpectEnd reports ErrTrailingData if any bytes are left unread. Generated
// dispatch code calls it after decoding the last argument of a method.
func (d *Decoder) ExpectEnd() error {
	if d.Remaining() != 0 {
		return ErrTrailingData
	}
	return nil
}

func (d *Decoder) take(n int) ([]byte, error) {
	if n < 0 || d.pos+n > len(d.buf) {
		return nil, ErrUnexpectedEOF
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// DecodeOctet decodes an 8-bit unsigned integer
func (d *Decoder) DecodeOctet() (uint8, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// DecodeShort decodes a 16-bit unsigned integer
func (d *Decoder) DecodeShort() (uint16, error) {
	b, err := d.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// DecodeLong decodes a 32-bit unsigned integer
func (d *Decoder) DecodeLong() (uint32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// DecodeLongLong decodes a 64-bit unsigned integer
func (d *Decoder) DecodeLongLong() (uint64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// DecodeTimestamp decodes 64-bit POSIX seconds. A zero value decodes to the
// zero time so that EncodeTimestamp and DecodeTimestamp are symmetric.
func (d *Decoder) DecodeTimestamp() (time.Time, error) {
	v, err := d.DecodeLongLong()
	if err != nil {
		return time.Time{}, err
	}
	if v == 0 {
		return time.Time{}, nil
	}
	if v > math.MaxInt64 {
		return time.Time{}, ErrInvalidData
	}
	return time.Unix(int64(v), 0), nil
}

// DecodeShortString decodes a string with a one byte length prefix
func (d *Decoder) DecodeShortString() (string, error) {
	n, err := d.DecodeOctet()
	if err != nil {
		return "", err
	}
	b, err := d.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeLongString decodes a string with a four byte length prefix
func (d *Decoder) DecodeLongString() (string, error) {
	b, err := d.DecodeBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeBytes decodes a byte slice with a four byte length prefix. The
// returned slice is a copy and stays valid after the decoder is reset.
func (d *Decoder) DecodeBytes() ([]byte, error) {
	n, err := d.DecodeLong()
	if err != nil {
		return nil, err
	}
	if n > math.MaxInt32 {
		return nil, ErrInvalidData
	}
	b, err := d.take(int(n))
	if err != nil {
		return nil, err
	}
	data := make([]byte, len(b))
	copy(data, b)
	return data, nil
}
