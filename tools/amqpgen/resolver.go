package main

import (
	"github.com/pkg/errors"
)

// Category is a wire type category
type Category int

const (
	CategoryBit Category = iota + 1
	CategoryOctet
	CategoryShort
	CategoryLong
	CategoryLongLong
	CategoryTimestamp
	CategoryShortStr
	CategoryLongStr
	CategoryTable
)

func (c Category) String() string {
	switch c {
	case CategoryBit:
		return "bit"
	case CategoryOctet:
		return "octet"
	case CategoryShort:
		return "short"
	case CategoryLong:
		return "long"
	case CategoryLongLong:
		return "longlong"
	case CategoryTimestamp:
		return "timestamp"
	case CategoryShortStr:
		return "shortstr"
	case CategoryLongStr:
		return "longstr"
	case CategoryTable:
		return "table"
	default:
		return "invalid"
	}
}

// Ownership says whether a decoded value is copied by value or shares
// decoded storage
type Ownership int

const (
	OwnedValue Ownership = iota
	OwnedReference
)

// ResolvedType describes how a field is represented in generated code
type ResolvedType struct {
	Category  Category
	GoType    string // as written in generated code
	Encode    string // Encoder method name, empty for packed bits
	Decode    string // Decoder method name, empty for packed bits
	Default   string // Go expression transmitted for reserved fields
	Ownership Ownership
}

// primitives is the fixed wire type table
var primitives = map[string]ResolvedType{
	"bit":       {CategoryBit, "bool", "", "", "false", OwnedValue},
	"octet":     {CategoryOctet, "uint8", "EncodeOctet", "DecodeOctet", "0", OwnedValue},
	"short":     {CategoryShort, "uint16", "EncodeShort", "DecodeShort", "0", OwnedValue},
	"long":      {CategoryLong, "uint32", "EncodeLong", "DecodeLong", "0", OwnedValue},
	"longlong":  {CategoryLongLong, "uint64", "EncodeLongLong", "DecodeLongLong", "0", OwnedValue},
	"timestamp": {CategoryTimestamp, "time.Time", "EncodeTimestamp", "DecodeTimestamp", "time.Time{}", OwnedValue},
	"shortstr":  {CategoryShortStr, "string", "EncodeShortString", "DecodeShortString", `""`, OwnedValue},
	"longstr":   {CategoryLongStr, "string", "EncodeLongString", "DecodeLongString", `""`, OwnedValue},
	"table":     {CategoryTable, "amqp.Table", "EncodeTable", "DecodeTable", "nil", OwnedReference},
}

func lookupPrimitive(name string) (ResolvedType, error) {
	rt, ok := primitives[name]
	if !ok {
		return ResolvedType{}, &UnknownTypeError{Name: name}
	}
	return rt, nil
}

// Resolve maps a type reference to its wire category, following domain
// aliases. It does not modify the schema.
func (s *Schema) Resolve(ref TypeRef) (ResolvedType, error) {
	switch ref.Kind {
	case RefInline:
		return lookupPrimitive(ref.Name)
	case RefDomain:
		return s.resolveDomain(ref.Name)
	default:
		return ResolvedType{}, errors.Errorf("invalid type reference %q", ref.Name)
	}
}

func (s *Schema) resolveDomain(name string) (ResolvedType, error) {
	d, ok := s.domain(name)
	if !ok {
		return ResolvedType{}, &UndefinedDomainError{Name: name}
	}

	seen := make(map[string]bool)
	for {
		if seen[d.Name] {
			return ResolvedType{}, errors.Errorf("domain %q: alias cycle through %q", name, d.Name)
		}
		seen[d.Name] = true

		if d.Type == d.Name {
			return lookupPrimitive(d.Type)
		}
		next, ok := s.domain(d.Type)
		if !ok {
			return lookupPrimitive(d.Type)
		}
		d = next
	}
}
