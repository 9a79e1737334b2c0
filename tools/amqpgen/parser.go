package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// XML document shape. Elements not listed here (doc, rule, assert, ...)
// are skipped by the decoder.
type xmlSchema struct {
	XMLName   xml.Name
	Constants []xmlConstant `xml:"constant"`
	Domains   []xmlDomain   `xml:"domain"`
	Classes   []xmlClass    `xml:"class"`
}

type xmlConstant struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type xmlDomain struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
}

type xmlClass struct {
	Name    string      `xml:"name,attr"`
	Index   string      `xml:"index,attr"`
	Handler string      `xml:"handler,attr"`
	Methods []xmlMethod `xml:"method"`
}

type xmlMethod struct {
	Name        string     `xml:"name,attr"`
	Index       string     `xml:"index,attr"`
	Synchronous string     `xml:"synchronous,attr"`
	Fields      []xmlField `xml:"field"`
	Responses   []xmlNamed `xml:"response"`
	Chassis     []xmlNamed `xml:"chassis"`
}

type xmlField struct {
	Name     string `xml:"name,attr"`
	Domain   string `xml:"domain,attr"`
	Type     string `xml:"type,attr"`
	Reserved string `xml:"reserved,attr"`
}

type xmlNamed struct {
	Name string `xml:"name,attr"`
}

// LoadSchemaFile reads and validates the schema at path
func LoadSchemaFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening schema")
	}
	defer f.Close()

	s, err := LoadSchema(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	s.Source = filepath.Base(path)
	return s, nil
}

// LoadSchema decodes an XML schema and builds the validated IR. On failure it
// returns a *SchemaError listing every issue found; no partial IR is returned.
func LoadSchema(r io.Reader) (*Schema, error) {
	var doc xmlSchema
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &SchemaError{Issues: []ValidationError{{
			Location: "schema",
			Message:  fmt.Sprintf("malformed XML: %v", err),
			Kind:     IssueMalformed,
		}}}
	}
	if doc.XMLName.Local != "amqp" {
		return nil, &SchemaError{Issues: []ValidationError{{
			Location: "schema",
			Message:  fmt.Sprintf("root element is <%s>, want <amqp>", doc.XMLName.Local),
			Kind:     IssueRoot,
		}}}
	}

	b := &schemaBuilder{schema: newSchema()}
	b.build(&doc)
	issues := append(b.issues, validateSchema(b.schema)...)
	if len(issues) > 0 {
		return nil, &SchemaError{Issues: issues}
	}

	debugf("loaded schema: %d constants, %d domains, %d classes",
		len(b.schema.Constants), len(b.schema.Domains), len(b.schema.Classes))
	return b.schema, nil
}

// schemaBuilder converts the decoded document into the IR, collecting
// attribute-level issues as it goes
type schemaBuilder struct {
	schema *Schema
	issues []ValidationError
}

func (b *schemaBuilder) issue(kind IssueKind, location, format string, args ...any) {
	b.issues = append(b.issues, ValidationError{
		Location: location,
		Message:  fmt.Sprintf(format, args...),
		Kind:     kind,
	})
}

func (b *schemaBuilder) build(doc *xmlSchema) {
	for _, c := range doc.Constants {
		loc := "constant " + c.Name
		if c.Name == "" {
			b.issue(IssueMalformed, "constant", "missing name")
			continue
		}
		v, err := strconv.ParseInt(c.Value, 0, 64)
		if err != nil {
			b.issue(IssueMalformed, loc, "value %q is not an integer", c.Value)
			continue
		}
		b.schema.Constants = append(b.schema.Constants, Constant{Name: c.Name, Value: v})
	}

	for _, d := range doc.Domains {
		if d.Name == "" || d.Type == "" {
			b.issue(IssueMalformed, "domain "+d.Name, "domain needs both name and type")
			continue
		}
		b.schema.addDomain(Domain{Name: d.Name, Type: d.Type})
	}

	for _, xc := range doc.Classes {
		b.buildClass(xc)
	}
}

func (b *schemaBuilder) buildClass(xc xmlClass) {
	loc := "class " + xc.Name
	if xc.Name == "" {
		b.issue(IssueMalformed, "class", "missing name")
		return
	}
	index, ok := b.parseIndex(loc, xc.Index)
	if !ok {
		return
	}

	class := Class{Name: xc.Name, Index: index, Handler: xc.Handler}
	for _, xm := range xc.Methods {
		if m, ok := b.buildMethod(xc.Name, xm); ok {
			class.Methods = append(class.Methods, m)
		}
	}
	b.schema.Classes = append(b.schema.Classes, class)
}

func (b *schemaBuilder) buildMethod(className string, xm xmlMethod) (Method, bool) {
	loc := className + "." + xm.Name
	if xm.Name == "" {
		b.issue(IssueMalformed, "class "+className, "method without name")
		return Method{}, false
	}
	index, ok := b.parseIndex(loc, xm.Index)
	if !ok {
		return Method{}, false
	}

	m := Method{
		Name:        xm.Name,
		Index:       index,
		Synchronous: b.parseFlag(loc, "synchronous", xm.Synchronous),
	}

	for _, r := range xm.Responses {
		m.Responses = append(m.Responses, r.Name)
	}

	for _, c := range xm.Chassis {
		switch c.Name {
		case "client":
			m.Chassis |= ChassisClient
		case "server":
			m.Chassis |= ChassisServer
		default:
			debugf("%s: ignoring chassis %q", loc, c.Name)
		}
	}

	for _, xf := range xm.Fields {
		floc := loc + "." + xf.Name
		if xf.Name == "" {
			b.issue(IssueMalformed, loc, "field without name")
			continue
		}

		var ref TypeRef
		switch {
		case xf.Domain != "" && xf.Type != "":
			b.issue(IssueMalformed, floc, "field declares both domain %q and type %q", xf.Domain, xf.Type)
			continue
		case xf.Domain != "":
			ref = DomainRef(xf.Domain)
		case xf.Type != "":
			ref = InlineRef(xf.Type)
		default:
			b.issue(IssueMalformed, floc, "field declares neither domain nor type")
			continue
		}

		m.Fields = append(m.Fields, Field{
			Name:     xf.Name,
			Type:     ref,
			Reserved: b.parseFlag(floc, "reserved", xf.Reserved),
		})
	}

	return m, true
}

func (b *schemaBuilder) parseIndex(loc, value string) (uint16, bool) {
	v, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		b.issue(IssueMalformed, loc, "index %q is not a 16-bit unsigned integer", value)
		return 0, false
	}
	return uint16(v), true
}

// parseFlag accepts the schema's "1"/"0" as well as Go boolean spellings.
// An absent attribute is false.
func (b *schemaBuilder) parseFlag(loc, attr, value string) bool {
	if value == "" {
		return false
	}
	v, err := strconv.ParseBool(value)
	if err != nil {
		b.issue(IssueMalformed, loc, "%s=%q is not a boolean", attr, value)
		return false
	}
	return v
}
