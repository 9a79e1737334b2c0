package amqp

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Table is an AMQP field table. Keys are short strings; values must be one
// of the types accepted by EncodeTable:
//
//	bool, int8, uint8, int16, uint16, int32, uint32, int64,
//	float32, float64, Decimal, string, []byte, []any, time.Time,
//	Table and nil
type Table map[string]any

// Decimal is the AMQP decimal field value: Value / 10^Scale.
type Decimal struct {
	Scale uint8
	Value int32
}

// Field value type tags
const (
	tagBool      = 't'
	tagInt8      = 'b'
	tagUint8     = 'B'
	tagInt16     = 's'
	tagUint16    = 'u'
	tagInt32     = 'I'
	tagUint32    = 'i'
	tagInt64     = 'l'
	tagFloat32   = 'f'
	tagFloat64   = 'd'
	tagDecimal   = 'D'
	tagLongStr   = 'S'
	tagBytes     = 'x'
	tagArray     = 'A'
	tagTimestamp = 'T'
	tagTable     = 'F'
	tagVoid      = 'V'
)

// EncodeTable encodes a field table with a four byte size prefix. Keys are
// written in sorted order so the same table always produces the same bytes.
// A nil table is encoded as an empty table.
func (e *Encoder) EncodeTable(t Table) error {
	start := e.pos
	if err := e.EncodeLong(0); err != nil {
		return err
	}

	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := e.EncodeShortString(k); err != nil {
			return err
		}
		if err := e.encodeFieldValue(t[k]); err != nil {
			return fmt.Errorf("table key %q: %w", k, err)
		}
	}

	e.putLong(start, uint32(e.pos-start-4))
	return nil
}

func (e *Encoder) encodeArray(values []any) error {
	start := e.pos
	if err := e.EncodeLong(0); err != nil {
		return err
	}
	for i, v := range values {
		if err := e.encodeFieldValue(v); err != nil {
			return fmt.Errorf("array index %d: %w", i, err)
		}
	}
	e.putLong(start, uint32(e.pos-start-4))
	return nil
}

func (e *Encoder) encodeFieldValue(v any) error {
	switch v := v.(type) {
	case bool:
		var b uint8
		if v {
			b = 1
		}
		return e.encodeTagged(tagBool, func() error { return e.EncodeOctet(b) })
	case int8:
		return e.encodeTagged(tagInt8, func() error { return e.EncodeOctet(uint8(v)) })
	case uint8:
		return e.encodeTagged(tagUint8, func() error { return e.EncodeOctet(v) })
	case int16:
		return e.encodeTagged(tagInt16, func() error { return e.EncodeShort(uint16(v)) })
	case uint16:
		return e.encodeTagged(tagUint16, func() error { return e.EncodeShort(v) })
	case int32:
		return e.encodeTagged(tagInt32, func() error { return e.EncodeLong(uint32(v)) })
	case uint32:
		return e.encodeTagged(tagUint32, func() error { return e.EncodeLong(v) })
	case int64:
		return e.encodeTagged(tagInt64, func() error { return e.EncodeLongLong(uint64(v)) })
	case float32:
		return e.encodeTagged(tagFloat32, func() error { return e.EncodeLong(math.Float32bits(v)) })
	case float64:
		return e.encodeTagged(tagFloat64, func() error { return e.EncodeLongLong(math.Float64bits(v)) })
	case Decimal:
		return e.encodeTagged(tagDecimal, func() error {
			if err := e.EncodeOctet(v.Scale); err != nil {
				return err
			}
			return e.EncodeLong(uint32(v.Value))
		})
	case string:
		return e.encodeTagged(tagLongStr, func() error { return e.EncodeLongString(v) })
	case []byte:
		return e.encodeTagged(tagBytes, func() error { return e.EncodeBytes(v) })
	case []any:
		return e.encodeTagged(tagArray, func() error { return e.encodeArray(v) })
	case time.Time:
		return e.encodeTagged(tagTimestamp, func() error { return e.EncodeTimestamp(v) })
	case Table:
		return e.encodeTagged(tagTable, func() error { return e.EncodeTable(v) })
	case map[string]any:
		return e.encodeTagged(tagTable, func() error { return e.EncodeTable(Table(v)) })
	case nil:
		return e.EncodeOctet(tagVoid)
	default:
		return fmt.Errorf("%w: unsupported field value type %T", ErrInvalidData, v)
	}
}

func (e *Encoder) encodeTagged(tag byte, body func() error) error {
	if err := e.EncodeOctet(tag); err != nil {
		return err
	}
	return body()
}

// DecodeTable decodes a field table. An empty table decodes to an empty,
// non-nil Table.
func (d *Decoder) DecodeTable() (Table, error) {
	body, err := d.sized()
	if err != nil {
		return nil, err
	}

	t := Table{}
	for body.Remaining() > 0 {
		key, err := body.DecodeShortString()
		if err != nil {
			return nil, err
		}
		v, err := body.decodeFieldValue()
		if err != nil {
			return nil, fmt.Errorf("table key %q: %w", key, err)
		}
		t[key] = v
	}
	return t, nil
}

func (d *Decoder) decodeArray() ([]any, error) {
	body, err := d.sized()
	if err != nil {
		return nil, err
	}

	values := []any{}
	for body.Remaining() > 0 {
		v, err := body.decodeFieldValue()
		if err != nil {
			return nil, fmt.Errorf("array index %d: %w", len(values), err)
		}
		values = append(values, v)
	}
	return values, nil
}

// sized reads a four byte size and returns a decoder bounded to that many
// bytes, advancing d past them.
func (d *Decoder) sized() (*Decoder, error) {
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
	return NewDecoder(b), nil
}

func (d *Decoder) decodeFieldValue() (any, error) {
	tag, err := d.DecodeOctet()
	if err != nil {
		return nil, err
	}

	switch tag {
	case tagBool:
		v, err := d.DecodeOctet()
		return v != 0, err
	case tagInt8:
		v, err := d.DecodeOctet()
		return int8(v), err
	case tagUint8:
		return d.DecodeOctet()
	case tagInt16:
		v, err := d.DecodeShort()
		return int16(v), err
	case tagUint16:
		return d.DecodeShort()
	case tagInt32:
		v, err := d.DecodeLong()
		return int32(v), err
	case tagUint32:
		return d.DecodeLong()
	case tagInt64:
		v, err := d.DecodeLongLong()
		return int64(v), err
	case tagFloat32:
		v, err := d.DecodeLong()
		return math.Float32frombits(v), err
	case tagFloat64:
		v, err := d.DecodeLongLong()
		return math.Float64frombits(v), err
	case tagDecimal:
		scale, err := d.DecodeOctet()
		if err != nil {
			return nil, err
		}
		v, err := d.DecodeLong()
		return Decimal{Scale: scale, Value: int32(v)}, err
	case tagLongStr:
		return d.DecodeLongString()
	case tagBytes:
		return d.DecodeBytes()
	case tagArray:
		return d.decodeArray()
	case tagTimestamp:
		return d.DecodeTimestamp()
	case tagTable:
		return d.DecodeTable()
	case tagVoid:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: unknown field value tag %q", ErrInvalidData, tag)
	}
}
