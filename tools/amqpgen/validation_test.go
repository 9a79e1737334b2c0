package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDomains(t *testing.T) {
	t.Run("alias cycle", func(t *testing.T) {
		issues := schemaIssues(t, `<amqp>
  <domain name="a" type="b"/>
  <domain name="b" type="a"/>
  <domain name="c" type="a"/>
</amqp>`)
		require.Len(t, issues, 1, "domains reaching a cycle are not reported twice")
		assert.Equal(t, IssueDomainCycle, issues[0].Kind)
		assert.Equal(t, "domain a", issues[0].Location)
		assert.Equal(t, "alias cycle a -> b -> a", issues[0].Message)
	})

	t.Run("chain ending outside the type table", func(t *testing.T) {
		issues := schemaIssues(t, `<amqp>
  <domain name="money" type="price"/>
  <domain name="price" type="decimal"/>
</amqp>`)
		require.Len(t, issues, 2)
		for _, issue := range issues {
			assert.Equal(t, IssueUnknownType, issue.Kind)
			assert.Equal(t, `unknown wire type "decimal"`, issue.Message)
		}
		assert.Equal(t, "domain money", issues[0].Location)
		assert.Equal(t, "domain price", issues[1].Location)
	})

	t.Run("self aliases and chains", func(t *testing.T) {
		s := loadString(t, `<amqp>
  <domain name="bit" type="bit"/>
  <domain name="delivery-tag" type="longlong"/>
  <domain name="tag" type="delivery-tag"/>
</amqp>`)
		assert.Empty(t, validateSchema(s))
	})
}

func TestValidateDuplicates(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		location string
		message  string
	}{
		{
			name:     "constant",
			doc:      `<amqp><constant name="x" value="1"/><constant name="x" value="2"/></amqp>`,
			location: "constant x",
			message:  "duplicate constant x",
		},
		{
			name:     "domain",
			doc:      `<amqp><domain name="d" type="bit"/><domain name="d" type="octet"/></amqp>`,
			location: "domain d",
			message:  "duplicate domain d",
		},
		{
			name:     "class name",
			doc:      `<amqp><class name="c" index="1"/><class name="c" index="2"/></amqp>`,
			location: "class c",
			message:  "duplicate class c",
		},
		{
			name:     "class index",
			doc:      `<amqp><class name="a" index="1"/><class name="b" index="1"/></amqp>`,
			location: "class b",
			message:  "duplicate class index 1 (also used by a)",
		},
		{
			name:     "method index",
			doc:      `<amqp><class name="c" index="1"><method name="a" index="5"/><method name="b" index="5"/></class></amqp>`,
			location: "c.b",
			message:  "duplicate method index 5 (also used by a)",
		},
		{
			name: "field",
			doc: `<amqp><class name="c" index="1"><method name="m" index="1">
  <field name="f" type="bit"/><field name="f" type="octet"/>
</method></class></amqp>`,
			location: "c.m.f",
			message:  "duplicate field f",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := schemaIssues(t, tt.doc)
			require.Len(t, issues, 1, "issues: %v", issues)
			assert.Equal(t, IssueDuplicate, issues[0].Kind)
			assert.Equal(t, tt.location, issues[0].Location)
			assert.Equal(t, tt.message, issues[0].Message)
		})
	}
}

func TestValidateSameNamesInDifferentScopes(t *testing.T) {
	s := loadString(t, `<amqp>
  <class name="connection" index="10">
    <method name="close" index="50"><response name="close-ok"/></method>
    <method name="close-ok" index="51"/>
  </class>
  <class name="channel" index="20">
    <method name="close" index="40"><response name="close-ok"/></method>
    <method name="close-ok" index="41"/>
  </class>
</amqp>`)
	assert.Empty(t, validateSchema(s))
}

func TestValidateResponseMustBeInSameClass(t *testing.T) {
	issues := schemaIssues(t, `<amqp>
  <class name="a" index="1"><method name="ok" index="1"/></class>
  <class name="b" index="2"><method name="ask" index="1"><response name="ok"/></method></class>
</amqp>`)
	require.Len(t, issues, 1)
	assert.Equal(t, IssueDanglingResponse, issues[0].Kind)
	assert.Equal(t, "b.ask", issues[0].Location)
}

func TestValidationErrorFormatting(t *testing.T) {
	issue := ValidationError{Location: "queue.declare", Message: "boom", Kind: IssueMalformed}
	assert.Equal(t, "queue.declare: boom", issue.Error())

	single := &SchemaError{Issues: []ValidationError{issue}}
	assert.Equal(t, "invalid schema: queue.declare: boom", single.Error())

	multi := &SchemaError{Issues: []ValidationError{issue, {Location: "x", Message: "y", Kind: IssueRoot}}}
	assert.Equal(t, "invalid schema: 2 issues\n  queue.declare: boom\n  x: y", multi.Error())

	assert.Equal(t, "undefined domain", IssueUndefinedDomain.String())
	assert.Equal(t, "issue(99)", IssueKind(99).String())
}
