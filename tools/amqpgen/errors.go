package main

import (
	"fmt"
	"strings"
)

// SchemaError aggregates every issue found while loading a schema
type SchemaError struct {
	Issues []ValidationError
}

func (e *SchemaError) Error() string {
	if len(e.Issues) == 1 {
		return "invalid schema: " + e.Issues[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "invalid schema: %d issues", len(e.Issues))
	for _, issue := range e.Issues {
		b.WriteString("\n  ")
		b.WriteString(issue.Error())
	}
	return b.String()
}

// Has reports whether any issue is of the given kind
func (e *SchemaError) Has(kind IssueKind) bool {
	for _, issue := range e.Issues {
		if issue.Kind == kind {
			return true
		}
	}
	return false
}

// UnknownTypeError reports a wire type name outside the fixed type table
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown wire type %q", e.Name)
}

// UndefinedDomainError reports a reference to a domain the schema does not
// declare. It unwraps to an UnknownTypeError for the same name.
type UndefinedDomainError struct {
	Name string
}

func (e *UndefinedDomainError) Error() string {
	return fmt.Sprintf("undefined domain %q", e.Name)
}

func (e *UndefinedDomainError) Unwrap() error {
	return &UnknownTypeError{Name: e.Name}
}
