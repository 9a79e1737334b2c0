package main

import (
	"fmt"
	"strings"
)

// Constant is a named integer from the schema
type Constant struct {
	Name  string
	Value int64
}

// Domain names an underlying wire type. Type may name another domain;
// a domain whose Type equals its Name binds a primitive directly.
type Domain struct {
	Name string
	Type string
}

// Chassis is the set of peers that may receive a method
type Chassis uint8

const (
	ChassisClient Chassis = 1 << iota
	ChassisServer
)

// Has reports whether every peer in o is in c
func (c Chassis) Has(o Chassis) bool {
	return c&o == o
}

func (c Chassis) String() string {
	var names []string
	if c.Has(ChassisClient) {
		names = append(names, "client")
	}
	if c.Has(ChassisServer) {
		names = append(names, "server")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// TypeRefKind tags the variant held by a TypeRef
type TypeRefKind int

const (
	RefDomain TypeRefKind = iota + 1
	RefInline
)

// TypeRef is either a reference to a named domain or an inline wire type
type TypeRef struct {
	Kind TypeRefKind
	Name string
}

// DomainRef references a named domain
func DomainRef(name string) TypeRef {
	return TypeRef{Kind: RefDomain, Name: name}
}

// InlineRef names a wire type directly
func InlineRef(name string) TypeRef {
	return TypeRef{Kind: RefInline, Name: name}
}

func (r TypeRef) String() string {
	switch r.Kind {
	case RefDomain:
		return "domain " + r.Name
	case RefInline:
		return "type " + r.Name
	default:
		return "invalid type reference"
	}
}

// Field represents a method argument in declared order
type Field struct {
	Name     string
	Type     TypeRef
	Reserved bool // transmitted with its default, hidden from callers
}

// Method represents a class method
type Method struct {
	Name        string
	Index       uint16
	Synchronous bool
	Fields      []Field
	Responses   []string // names of methods in the same class; any of them ends a call
	Chassis     Chassis
}

// Response returns the first declared response method name, or "" if none
// is declared
func (m *Method) Response() string {
	if len(m.Responses) == 0 {
		return ""
	}
	return m.Responses[0]
}

// Class represents a schema class and its ordered methods
type Class struct {
	Name    string
	Index   uint16
	Handler string
	Methods []Method
}

// Method returns the method with the given name
func (c *Class) Method(name string) *Method {
	for i := range c.Methods {
		if c.Methods[i].Name == name {
			return &c.Methods[i]
		}
	}
	return nil
}

// Schema is the intermediate representation built by LoadSchema. It is not
// modified after LoadSchema returns.
type Schema struct {
	Source    string // base name of the schema file, if loaded from one
	Constants []Constant
	Domains   []Domain
	Classes   []Class

	domains map[string]int
}

func newSchema() *Schema {
	return &Schema{domains: make(map[string]int)}
}

func (s *Schema) addDomain(d Domain) {
	if _, exists := s.domains[d.Name]; !exists {
		s.domains[d.Name] = len(s.Domains)
	}
	s.Domains = append(s.Domains, d)
}

func (s *Schema) domain(name string) (Domain, bool) {
	i, ok := s.domains[name]
	if !ok {
		return Domain{}, false
	}
	return s.Domains[i], true
}

// Class returns the class with the given name
func (s *Schema) Class(name string) *Class {
	for i := range s.Classes {
		if s.Classes[i].Name == name {
			return &s.Classes[i]
		}
	}
	return nil
}

// IssueKind classifies a ValidationError
type IssueKind int

const (
	IssueRoot IssueKind = iota + 1
	IssueMalformed
	IssueUndefinedDomain
	IssueUnknownType
	IssueDomainCycle
	IssueDuplicate
	IssueDanglingResponse
)

func (k IssueKind) String() string {
	switch k {
	case IssueRoot:
		return "root"
	case IssueMalformed:
		return "malformed"
	case IssueUndefinedDomain:
		return "undefined domain"
	case IssueUnknownType:
		return "unknown type"
	case IssueDomainCycle:
		return "domain cycle"
	case IssueDuplicate:
		return "duplicate"
	case IssueDanglingResponse:
		return "dangling response"
	default:
		return fmt.Sprintf("issue(%d)", int(k))
	}
}

// ValidationError represents a validation error
type ValidationError struct {
	Location string
	Message  string
	Kind     IssueKind
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}
