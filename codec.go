package amqp

import (
	"errors"
	"fmt"
)

// Codec interface provides consistent AMQP encoding/decoding for types
type Codec interface {
	// Encode encodes the type using the provided encoder
	Encode(enc *Encoder) error

	// Decode decodes the type using the provided decoder
	Decode(dec *Decoder) error
}

// Method is implemented by every generated method record. ClassID and
// MethodID return the schema indices used as wire discriminators.
type Method interface {
	Codec
	ClassID() uint16
	MethodID() uint16
	MethodName() string
}

// initialMarshalSize is the first buffer size tried by Marshal; it doubles on
// ErrBufferTooSmall until FrameMax is reached.
const initialMarshalSize = 512

// Marshal provides generic encoding for any type implementing Codec
func Marshal(codec Codec) ([]byte, error) {
	for size := initialMarshalSize; ; size *= 2 {
		enc := NewEncoder(make([]byte, size))
		err := codec.Encode(enc)
		if errors.Is(err, ErrBufferTooSmall) && size < FrameMax {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("AMQP encoding failed: %w", err)
		}
		return enc.Bytes(), nil
	}
}

// Unmarshal provides generic decoding for any type implementing Codec
func Unmarshal(data []byte, codec Codec) error {
	dec := NewDecoder(data)
	if err := codec.Decode(dec); err != nil {
		return fmt.Errorf("AMQP decoding failed: %w", err)
	}
	return nil
}

// methodHeader is the class/method pair that opens every method frame payload.
type methodHeader struct {
	m Method
}

func (h methodHeader) Encode(enc *Encoder) error {
	if err := enc.EncodeShort(h.m.ClassID()); err != nil {
		return err
	}
	if err := enc.EncodeShort(h.m.MethodID()); err != nil {
		return err
	}
	return h.m.Encode(enc)
}

func (h methodHeader) Decode(dec *Decoder) error {
	return errors.New("methodHeader is encode only")
}

// MarshalMethod encodes a method frame payload: class id, method id and the
// method's arguments.
func MarshalMethod(m Method) ([]byte, error) {
	return Marshal(methodHeader{m: m})
}

// UnmarshalMethod decodes a method frame payload into m. It fails if the
// payload carries a different class/method pair or has trailing bytes.
func UnmarshalMethod(data []byte, m Method) error {
	dec := NewDecoder(data)
	cm, err := dec.DecodeClassMethod()
	if err != nil {
		return fmt.Errorf("AMQP decoding failed: %w", err)
	}
	if cm.Class != m.ClassID() || cm.Method != m.MethodID() {
		return fmt.Errorf("AMQP decoding failed: payload is %s, want %s", cm, ClassMethod{Class: m.ClassID(), Method: m.MethodID()})
	}
	if err := m.Decode(dec); err != nil {
		return fmt.Errorf("AMQP decoding failed: %w", err)
	}
	if err := dec.ExpectEnd(); err != nil {
		return fmt.Errorf("AMQP decoding failed: %w", err)
	}
	return nil
}

// ClassMethod identifies a method on the wire.
type ClassMethod struct {
	Class  uint16
	Method uint16
}

func (cm ClassMethod) String() string {
	return fmt.Sprintf("%d.%d", cm.Class, cm.Method)
}

// DecodeClassMethod decodes the class and method ids that open a method
// frame payload.
func (d *Decoder) DecodeClassMethod() (ClassMethod, error) {
	class, err := d.DecodeShort()
	if err != nil {
		return ClassMethod{}, err
	}
	method, err := d.DecodeShort()
	if err != nil {
		return ClassMethod{}, err
	}
	return ClassMethod{Class: class, Method: method}, nil
}
