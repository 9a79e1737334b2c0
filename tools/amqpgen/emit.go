package main

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"
	"github.com/pkg/errors"
)

const (
	// runtimePath is the import path of the hand-written runtime
	runtimePath = "github.com/tempusfrangit/go-amqp"

	// packageName is the package clause of generated files
	packageName = "protocol"
)

// generator renders one schema plan into a jennifer file
type generator struct {
	plan   *SchemaPlan
	f      *jen.File
	idents map[string]string // top-level identifier -> what declared it
	errs   []error
}

// Generate compiles a validated schema into gofmt-formatted Go source.
// Nothing is returned if any stage fails.
func Generate(s *Schema) ([]byte, error) {
	plan, err := Plan(s)
	if err != nil {
		return nil, errors.Wrap(err, "planning")
	}
	return GeneratePlan(plan)
}

// GeneratePlan renders an already computed plan
func GeneratePlan(plan *SchemaPlan) ([]byte, error) {
	g := &generator{
		plan:   plan,
		f:      jen.NewFile(packageName),
		idents: make(map[string]string),
	}
	g.f.ImportName(runtimePath, "amqp")

	g.emitHeader()
	g.emitConstants()
	g.emitDiscriminators()
	for _, cp := range plan.Classes {
		for _, mp := range cp.Methods {
			g.emitRecord(mp)
			g.emitHelpers(mp)
		}
	}
	g.emitMethodTable()
	g.emitDispatch()
	g.emitIsSynchronous()
	g.emitInterrupts()
	g.emitChannelOptions()

	if len(g.errs) > 0 {
		return nil, g.errs[0]
	}

	var buf bytes.Buffer
	if err := g.f.Render(&buf); err != nil {
		return nil, errors.Wrap(err, "rendering generated source")
	}
	return buf.Bytes(), nil
}

// declare records a top-level identifier and fails generation if two schema
// names map to the same Go identifier
func (g *generator) declare(ident, origin string) string {
	if prev, ok := g.idents[ident]; ok {
		g.errs = append(g.errs, errors.Errorf("%s and %s both generate identifier %s", prev, origin, ident))
		return ident
	}
	g.idents[ident] = origin
	return ident
}

func (g *generator) emitHeader() {
	source := "schema"
	if g.plan.Schema.Source != "" {
		source = g.plan.Schema.Source
	}
	g.f.HeaderComment(fmt.Sprintf("Code generated by amqpgen from %s. DO NOT EDIT.", source))
	g.f.PackageComment("Package protocol contains method records, call helpers and dispatch for the " + source + " protocol schema.")
}

func (g *generator) emitConstants() {
	if len(g.plan.Schema.Constants) == 0 {
		return
	}
	defs := make([]jen.Code, 0, len(g.plan.Schema.Constants))
	for _, c := range g.plan.Schema.Constants {
		name := g.declare(exportedName(c.Name), "constant "+c.Name)
		defs = append(defs, jen.Id(name).Op("=").Lit(int(c.Value)))
	}
	g.f.Comment("Schema constants")
	g.f.Const().Defs(defs...)
}

// emitDiscriminators writes the class and method index constants used on
// the wire
func (g *generator) emitDiscriminators() {
	for _, cp := range g.plan.Classes {
		c := cp.Class
		defs := []jen.Code{
			jen.Id(g.declare(classConstName(c.Name), "class "+c.Name)).Uint16().Op("=").Lit(int(c.Index)),
		}
		for _, mp := range cp.Methods {
			m := mp.Method
			name := g.declare(methodConstName(c.Name, m.Name), "method "+wireName(c.Name, m.Name))
			defs = append(defs, jen.Id(name).Uint16().Op("=").Lit(int(m.Index)))
		}

		if c.Handler != "" {
			g.f.Commentf("Class %s (%d), handled by %s", c.Name, c.Index, c.Handler)
		} else {
			g.f.Commentf("Class %s (%d)", c.Name, c.Index)
		}
		g.f.Const().Defs(defs...)
	}
}

// goType returns the generated Go type for a resolved wire type
func goType(rt ResolvedType) *jen.Statement {
	switch rt.Category {
	case CategoryBit:
		return jen.Bool()
	case CategoryOctet:
		return jen.Uint8()
	case CategoryShort:
		return jen.Uint16()
	case CategoryLong:
		return jen.Uint32()
	case CategoryLongLong:
		return jen.Uint64()
	case CategoryTimestamp:
		return jen.Qual("time", "Time")
	case CategoryShortStr, CategoryLongStr:
		return jen.String()
	case CategoryTable:
		return amqpQual("Table")
	default:
		return jen.Id("invalid")
	}
}

// reservedValue is the value transmitted for a reserved field
func reservedValue(rt ResolvedType) *jen.Statement {
	switch rt.Category {
	case CategoryBit:
		return jen.False()
	case CategoryOctet, CategoryShort, CategoryLong, CategoryLongLong:
		return jen.Lit(0)
	case CategoryTimestamp:
		return jen.Qual("time", "Time").Values()
	case CategoryShortStr, CategoryLongStr:
		return jen.Lit("")
	default:
		return jen.Nil()
	}
}

func amqpQual(name string) *jen.Statement {
	return jen.Qual(runtimePath, name)
}

// field renders "Key: value" for ordered composite literals
func kv(key string, value jen.Code) jen.Code {
	return jen.Id(key).Op(":").Add(value)
}

// returnOnErr renders "if err := call; err != nil { return results... }"
func returnOnErr(call jen.Code, results ...jen.Code) jen.Code {
	results = append(results, jen.Err())
	return jen.If(jen.Err().Op(":=").Add(call), jen.Err().Op("!=").Nil()).Block(
		jen.Return(results...),
	)
}
