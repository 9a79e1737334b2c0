package main

import (
	"go/token"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// splitName breaks a schema name such as "auto-delete" or "reply_code" into
// its words
func splitName(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || unicode.IsSpace(r)
	})
}

// exportedName converts a schema name to an exported Go identifier:
// "declare-ok" becomes "DeclareOk". Casing inside a word is preserved.
func exportedName(name string) string {
	title := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, word := range splitName(name) {
		b.WriteString(title.String(word))
	}
	return validIdent(b.String(), "X")
}

// unexportedName converts a schema name to a lowerCamel Go identifier:
// "auto-delete" becomes "autoDelete"
func unexportedName(name string) string {
	title := cases.Title(language.Und, cases.NoLower)
	lower := cases.Lower(language.Und)
	var b strings.Builder
	for i, word := range splitName(name) {
		if i == 0 {
			b.WriteString(lower.String(word))
			continue
		}
		b.WriteString(title.String(word))
	}
	return validIdent(b.String(), "x")
}

func validIdent(s, prefix string) string {
	if s == "" {
		return prefix
	}
	if r := []rune(s)[0]; !unicode.IsLetter(r) && r != '_' {
		return prefix + s
	}
	return s
}

// reservedParams are identifiers generated helpers use themselves
var reservedParams = map[string]bool{
	"ch":   true,
	"m":    true,
	"err":  true,
	"resp": true,
	"amqp": true,
	"time": true,
}

// paramName returns the parameter name for a field in generated helper
// signatures, avoiding Go keywords and the helpers' own identifiers
func paramName(field string) string {
	name := unexportedName(field)
	if token.IsKeyword(name) || reservedParams[name] {
		return name + "Arg"
	}
	return name
}

// recordMethods are the method names every generated record defines
var recordMethods = map[string]bool{
	"ClassID":    true,
	"MethodID":   true,
	"MethodName": true,
	"Encode":     true,
	"Decode":     true,
}

// fieldName returns the record field name for a schema field
func fieldName(field string) string {
	name := exportedName(field)
	if recordMethods[name] {
		return name + "Field"
	}
	return name
}

// recordName is the generated type for a method: "QueueDeclareOk"
func recordName(class, method string) string {
	return exportedName(class) + exportedName(method)
}

func classConstName(class string) string {
	return "Class" + exportedName(class)
}

func methodConstName(class, method string) string {
	return "Method" + recordName(class, method)
}

// wireName is the diagnostic name of a method: "queue.declare-ok"
func wireName(class, method string) string {
	return class + "." + method
}
