package main

import (
	"go/scanner"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkedInProtocol is the package go generate renders from amqp-subset.xml
var checkedInProtocol = filepath.Join("..", "..", "protocol", "protocol_gen.go")

// sourceTokens lexes Go source into "token literal" strings. Newline
// semicolons and trailing commas are dropped so that only layout-independent
// tokens are compared; comments are kept.
func sourceTokens(t *testing.T, src []byte) []string {
	t.Helper()
	fset := token.NewFileSet()
	file := fset.AddFile("src.go", -1, len(src))

	var s scanner.Scanner
	s.Init(file, src, func(pos token.Position, msg string) {
		t.Fatalf("%s: %s", pos, msg)
	}, scanner.ScanComments)

	var toks []string
	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}
		if tok == token.COMMENT || tok.IsLiteral() || tok == token.SEMICOLON {
			toks = append(toks, tok.String()+" "+lit)
		} else {
			toks = append(toks, tok.String())
		}
	}

	trimmed := toks[:0]
	for i, tok := range toks {
		if tok == token.COMMA.String() && i+1 < len(toks) {
			switch toks[i+1] {
			case token.RBRACE.String(), token.RPAREN.String(), token.RBRACK.String():
				continue
			}
		}
		trimmed = append(trimmed, tok)
	}
	return trimmed
}

func TestCheckedInProtocolIsCurrent(t *testing.T) {
	checkedIn, err := os.ReadFile(checkedInProtocol)
	require.NoError(t, err)

	src, err := Generate(loadFixture(t, "amqp-subset.xml"))
	require.NoError(t, err)

	assert.Equal(t, sourceTokens(t, src), sourceTokens(t, checkedIn),
		"%s is stale; run go generate ./protocol", checkedInProtocol)
}

func TestSourceTokensIgnoreLayout(t *testing.T) {
	a := []byte("package p\n\nvar x = []int{\n\t1,\n\t2,\n}\n")
	b := []byte("package p\nvar x = []int{1, 2}\n")
	assert.Equal(t, sourceTokens(t, a), sourceTokens(t, b))

	c := []byte("package p\nvar x = []int{1, 3}\n")
	assert.NotEqual(t, sourceTokens(t, a), sourceTokens(t, c))
}
