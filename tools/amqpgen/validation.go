package main

import (
	"fmt"

	"github.com/pkg/errors"
)

// validateSchema checks structural consistency of a built schema. All issues
// are collected; nothing fails fast.
func validateSchema(s *Schema) []ValidationError {
	var issues []ValidationError

	issues = append(issues, validateDuplicates(s)...)
	issues = append(issues, validateDomains(s)...)
	issues = append(issues, validateFields(s)...)
	issues = append(issues, validateResponses(s)...)

	return issues
}

func duplicateIssue(location, what, name string) ValidationError {
	return ValidationError{
		Location: location,
		Message:  fmt.Sprintf("duplicate %s %s", what, name),
		Kind:     IssueDuplicate,
	}
}

func validateDuplicates(s *Schema) []ValidationError {
	var issues []ValidationError

	constants := make(map[string]bool)
	for _, c := range s.Constants {
		if constants[c.Name] {
			issues = append(issues, duplicateIssue("constant "+c.Name, "constant", c.Name))
		}
		constants[c.Name] = true
	}

	domains := make(map[string]bool)
	for _, d := range s.Domains {
		if domains[d.Name] {
			issues = append(issues, duplicateIssue("domain "+d.Name, "domain", d.Name))
		}
		domains[d.Name] = true
	}

	classNames := make(map[string]bool)
	classIndices := make(map[uint16]string)
	for _, c := range s.Classes {
		loc := "class " + c.Name
		if classNames[c.Name] {
			issues = append(issues, duplicateIssue(loc, "class", c.Name))
		}
		classNames[c.Name] = true

		if other, ok := classIndices[c.Index]; ok {
			issues = append(issues, duplicateIssue(loc, "class index", fmt.Sprintf("%d (also used by %s)", c.Index, other)))
		} else {
			classIndices[c.Index] = c.Name
		}

		methodNames := make(map[string]bool)
		methodIndices := make(map[uint16]string)
		for _, m := range c.Methods {
			mloc := c.Name + "." + m.Name
			if methodNames[m.Name] {
				issues = append(issues, duplicateIssue(mloc, "method", m.Name))
			}
			methodNames[m.Name] = true

			if other, ok := methodIndices[m.Index]; ok {
				issues = append(issues, duplicateIssue(mloc, "method index", fmt.Sprintf("%d (also used by %s)", m.Index, other)))
			} else {
				methodIndices[m.Index] = m.Name
			}

			fieldNames := make(map[string]bool)
			for _, f := range m.Fields {
				if fieldNames[f.Name] {
					issues = append(issues, duplicateIssue(mloc+"."+f.Name, "field", f.Name))
				}
				fieldNames[f.Name] = true
			}
		}
	}

	return issues
}

// validateDomains reports alias cycles and domains whose chain ends in a
// name outside the type table
func validateDomains(s *Schema) []ValidationError {
	var issues []ValidationError

	graph := AnalyzeDomains(s)
	for _, cycle := range graph.DetectCycles() {
		issues = append(issues, ValidationError{
			Location: "domain " + cycle[0],
			Message:  "alias cycle " + formatCycle(cycle),
			Kind:     IssueDomainCycle,
		})
	}

	checked := make(map[string]bool)
	for _, d := range s.Domains {
		if checked[d.Name] {
			continue
		}
		checked[d.Name] = true
		if node := graph.Nodes[d.Name]; node != nil && node.InCycle {
			continue
		}
		if reachesCycle(graph, d.Name) {
			continue
		}

		if _, err := s.Resolve(DomainRef(d.Name)); err != nil {
			var unknown *UnknownTypeError
			if errors.As(err, &unknown) {
				issues = append(issues, ValidationError{
					Location: "domain " + d.Name,
					Message:  unknown.Error(),
					Kind:     IssueUnknownType,
				})
			}
		}
	}

	return issues
}

// reachesCycle reports whether following aliases from name enters a cycle
func reachesCycle(g *DomainGraph, name string) bool {
	seen := make(map[string]bool)
	for {
		if seen[name] {
			return true
		}
		seen[name] = true
		if node := g.Nodes[name]; node != nil && node.InCycle {
			return true
		}
		next := g.Edges[name]
		if len(next) == 0 {
			return false
		}
		name = next[0]
	}
}

func validateFields(s *Schema) []ValidationError {
	var issues []ValidationError

	for _, c := range s.Classes {
		for _, m := range c.Methods {
			for _, f := range m.Fields {
				loc := c.Name + "." + m.Name + "." + f.Name
				switch f.Type.Kind {
				case RefDomain:
					if _, ok := s.domain(f.Type.Name); !ok {
						issues = append(issues, ValidationError{
							Location: loc,
							Message:  (&UndefinedDomainError{Name: f.Type.Name}).Error(),
							Kind:     IssueUndefinedDomain,
						})
					}
				case RefInline:
					if _, err := lookupPrimitive(f.Type.Name); err != nil {
						issues = append(issues, ValidationError{
							Location: loc,
							Message:  err.Error(),
							Kind:     IssueUnknownType,
						})
					}
				}
			}
		}
	}

	return issues
}

func validateResponses(s *Schema) []ValidationError {
	var issues []ValidationError

	for ci := range s.Classes {
		c := &s.Classes[ci]
		for _, m := range c.Methods {
			for _, r := range m.Responses {
				if c.Method(r) == nil {
					issues = append(issues, ValidationError{
						Location: c.Name + "." + m.Name,
						Message:  fmt.Sprintf("response %q is not a method of class %s", r, c.Name),
						Kind:     IssueDanglingResponse,
					})
				}
			}
		}
	}

	return issues
}
