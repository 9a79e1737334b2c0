package main

import (
	"github.com/pkg/errors"
)

// BitSlot places a bit field inside a packed octet
type BitSlot struct {
	Group      int  // method-wide ordinal of the packed octet
	Byte       int  // octet number within the current run of bit fields
	Bit        int  // bit offset within the octet, LSB first
	StartsByte bool // decode reads the octet at this field
	EndsByte   bool // encode writes the octet after this field
}

// FieldPlan is a field with its resolved type and, for bits, its slot
type FieldPlan struct {
	Field Field
	Type  ResolvedType
	Bit   *BitSlot
}

// GoName is the record field name
func (fp FieldPlan) GoName() string {
	return fieldName(fp.Field.Name)
}

// Param is the helper parameter name
func (fp FieldPlan) Param() string {
	return paramName(fp.Field.Name)
}

// MethodPlan is everything the emitter needs for one method. Encode and
// Decode are both generated from the same plan.
type MethodPlan struct {
	Class  *Class
	Method *Method
	Role   Role
	Fields []FieldPlan
	Groups int // number of packed octets
}

// Record is the generated type name
func (p *MethodPlan) Record() string {
	return recordName(p.Class.Name, p.Method.Name)
}

// Visible returns the non-reserved fields in declared order
func (p *MethodPlan) Visible() []FieldPlan {
	var fields []FieldPlan
	for _, fp := range p.Fields {
		if !fp.Field.Reserved {
			fields = append(fields, fp)
		}
	}
	return fields
}

// PlanMethod resolves every field of m and lays out its bit fields. A run
// of consecutive bit fields packs LSB first into ceil(n/8) octets; any other
// field, the end of the field list, or a full octet ends the current octet.
func PlanMethod(s *Schema, c *Class, m *Method) (*MethodPlan, error) {
	plan := &MethodPlan{
		Class:  c,
		Method: m,
		Role:   Classify(c, m),
		Fields: make([]FieldPlan, len(m.Fields)),
	}

	for i, f := range m.Fields {
		rt, err := s.Resolve(f.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "%s.%s.%s", c.Name, m.Name, f.Name)
		}
		plan.Fields[i] = FieldPlan{Field: f, Type: rt}
	}

	running := 0
	for i := range plan.Fields {
		fp := &plan.Fields[i]
		if fp.Type.Category != CategoryBit {
			running = 0
			continue
		}

		slot := &BitSlot{
			Byte: running / 8,
			Bit:  running % 8,
		}
		if slot.Bit == 0 {
			slot.StartsByte = true
			plan.Groups++
		}
		slot.Group = plan.Groups - 1

		last := i == len(plan.Fields)-1
		slot.EndsByte = slot.Bit == 7 || last || plan.Fields[i+1].Type.Category != CategoryBit

		fp.Bit = slot
		running++
	}

	return plan, nil
}

// ClassPlan groups the method plans of one class
type ClassPlan struct {
	Class   *Class
	Methods []*MethodPlan
}

// SchemaPlan is the full compilation plan
type SchemaPlan struct {
	Schema  *Schema
	Classes []ClassPlan
}

// Plan builds method plans for every class in declared order
func Plan(s *Schema) (*SchemaPlan, error) {
	sp := &SchemaPlan{Schema: s}
	for ci := range s.Classes {
		c := &s.Classes[ci]
		cp := ClassPlan{Class: c}
		for mi := range c.Methods {
			mp, err := PlanMethod(s, c, &c.Methods[mi])
			if err != nil {
				return nil, err
			}
			cp.Methods = append(cp.Methods, mp)
		}
		sp.Classes = append(sp.Classes, cp)
	}
	return sp, nil
}

// Lookup returns the plan for a method by class and method name
func (sp *SchemaPlan) Lookup(class, method string) *MethodPlan {
	for _, cp := range sp.Classes {
		if cp.Class.Name != class {
			continue
		}
		for _, mp := range cp.Methods {
			if mp.Method.Name == method {
				return mp
			}
		}
	}
	return nil
}
