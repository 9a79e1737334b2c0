package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadFixture loads a schema from testdata
func loadFixture(t *testing.T, name string) *Schema {
	t.Helper()
	s, err := LoadSchemaFile(filepath.Join("testdata", name))
	require.NoError(t, err, "loading fixture %s", name)
	return s
}

// loadString loads an inline schema document
func loadString(t *testing.T, doc string) *Schema {
	t.Helper()
	s, err := LoadSchema(strings.NewReader(doc))
	require.NoError(t, err)
	return s
}

// schemaIssues loads an inline document that must fail and returns its issues
func schemaIssues(t *testing.T, doc string) []ValidationError {
	t.Helper()
	s, err := LoadSchema(strings.NewReader(doc))
	require.Error(t, err)
	assert.Nil(t, s, "no partial schema on failure")

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.NotEmpty(t, schemaErr.Issues)
	return schemaErr.Issues
}

func TestLoadSchemaQueueFixture(t *testing.T) {
	s := loadFixture(t, "queue.xml")

	assert.Equal(t, "queue.xml", s.Source)
	require.Len(t, s.Constants, 1)
	assert.Equal(t, Constant{Name: "frame-end", Value: 206}, s.Constants[0])
	assert.Len(t, s.Domains, 8)

	require.Len(t, s.Classes, 1)
	queue := s.Class("queue")
	require.NotNil(t, queue)
	assert.Equal(t, uint16(50), queue.Index)
	assert.Equal(t, "channel", queue.Handler)

	declare := queue.Method("declare")
	require.NotNil(t, declare)
	assert.Equal(t, uint16(10), declare.Index)
	assert.True(t, declare.Synchronous)
	assert.Equal(t, ChassisServer, declare.Chassis)
	assert.Equal(t, []string{"declare-ok"}, declare.Responses)
	assert.Equal(t, "declare-ok", declare.Response())

	want := []Field{
		{Name: "reserved-1", Type: InlineRef("short"), Reserved: true},
		{Name: "queue", Type: DomainRef("queue-name")},
		{Name: "passive", Type: DomainRef("bit")},
		{Name: "durable", Type: DomainRef("bit")},
		{Name: "exclusive", Type: DomainRef("bit")},
		{Name: "auto-delete", Type: DomainRef("bit")},
		{Name: "no-wait", Type: DomainRef("no-wait")},
		{Name: "arguments", Type: DomainRef("table")},
	}
	assert.Equal(t, want, declare.Fields, "fields keep declared order")

	ok := queue.Method("declare-ok")
	require.NotNil(t, ok)
	assert.Equal(t, uint16(11), ok.Index)
	assert.Equal(t, ChassisClient, ok.Chassis)
	assert.Empty(t, ok.Response())
	assert.Len(t, ok.Fields, 3)
}

func TestLoadSchemaPreservesOrder(t *testing.T) {
	s := loadFixture(t, "amqp-subset.xml")

	var classes []string
	for _, c := range s.Classes {
		classes = append(classes, c.Name)
	}
	assert.Equal(t, []string{"connection", "channel", "queue", "basic"}, classes)

	basic := s.Class("basic")
	require.NotNil(t, basic)
	var methods []string
	for _, m := range basic.Methods {
		methods = append(methods, m.Name)
	}
	assert.Equal(t, []string{"qos", "qos-ok", "consume", "consume-ok", "cancel", "cancel-ok", "publish", "deliver", "get", "get-ok", "get-empty", "ack"}, methods)

	cancel := basic.Method("cancel")
	require.NotNil(t, cancel)
	assert.Equal(t, ChassisClient|ChassisServer, cancel.Chassis)
}

func TestLoadSchemaAttributes(t *testing.T) {
	doc := `<amqp>
  <constant name="hex" value="0x10"/>
  <constant name="negative" value="-1"/>
  <class name="c" index="1">
    <method name="m" index="65535" synchronous="true">
      <chassis name="server"/>
      <chassis name="broker"/>
      <field name="f" type="octet" reserved="0"/>
    </method>
  </class>
</amqp>`
	s := loadString(t, doc)

	assert.Equal(t, []Constant{{Name: "hex", Value: 16}, {Name: "negative", Value: -1}}, s.Constants)
	m := s.Classes[0].Method("m")
	require.NotNil(t, m)
	assert.Equal(t, uint16(65535), m.Index)
	assert.True(t, m.Synchronous)
	assert.Equal(t, ChassisServer, m.Chassis, "unknown chassis names are ignored")
	assert.False(t, m.Fields[0].Reserved)
	assert.Empty(t, s.Classes[0].Handler)
}

func TestLoadSchemaMultipleResponses(t *testing.T) {
	doc := `<amqp>
  <domain name="bit" type="bit"/>
  <class name="c" index="1">
    <method name="ask" index="1" synchronous="1">
      <chassis name="server"/>
      <response name="yes"/>
      <response name="no"/>
    </method>
    <method name="yes" index="2"/>
    <method name="no" index="3"/>
  </class>
</amqp>`
	s := loadString(t, doc)
	c := s.Class("c")
	ask := c.Method("ask")
	assert.Equal(t, []string{"yes", "no"}, ask.Responses)
	assert.Equal(t, "yes", ask.Response())
	assert.Equal(t, RoleResponse, Classify(c, c.Method("no")))
}

func TestLoadSchemaErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		kind     IssueKind
		location string
		message  string
	}{
		{
			name:    "malformed XML",
			doc:     `<amqp><class name="c" index="1"></amqp>`,
			kind:    IssueMalformed,
			message: "malformed XML",
		},
		{
			name:    "wrong root",
			doc:     `<protocol><class name="c" index="1"/></protocol>`,
			kind:    IssueRoot,
			message: "root element is <protocol>, want <amqp>",
		},
		{
			name:     "bad constant",
			doc:      `<amqp><constant name="x" value="ten"/></amqp>`,
			kind:     IssueMalformed,
			location: "constant x",
			message:  `value "ten" is not an integer`,
		},
		{
			name:    "domain without type",
			doc:     `<amqp><domain name="d"/></amqp>`,
			kind:    IssueMalformed,
			message: "domain needs both name and type",
		},
		{
			name:     "class index out of range",
			doc:      `<amqp><class name="c" index="70000"/></amqp>`,
			kind:     IssueMalformed,
			location: "class c",
			message:  `index "70000" is not a 16-bit unsigned integer`,
		},
		{
			name:     "method index missing",
			doc:      `<amqp><class name="c" index="1"><method name="m"/></class></amqp>`,
			kind:     IssueMalformed,
			location: "c.m",
			message:  `index "" is not a 16-bit unsigned integer`,
		},
		{
			name:     "bad synchronous flag",
			doc:      `<amqp><class name="c" index="1"><method name="m" index="1" synchronous="yes"/></class></amqp>`,
			kind:     IssueMalformed,
			location: "c.m",
			message:  `synchronous="yes" is not a boolean`,
		},
		{
			name:     "field with domain and type",
			doc:      `<amqp><class name="c" index="1"><method name="m" index="1"><field name="f" domain="d" type="bit"/></method></class></amqp>`,
			kind:     IssueMalformed,
			location: "c.m.f",
			message:  `field declares both domain "d" and type "bit"`,
		},
		{
			name:     "field without type",
			doc:      `<amqp><class name="c" index="1"><method name="m" index="1"><field name="f"/></method></class></amqp>`,
			kind:     IssueMalformed,
			location: "c.m.f",
			message:  "field declares neither domain nor type",
		},
		{
			name:     "undefined domain",
			doc:      `<amqp><class name="c" index="1"><method name="m" index="1"><field name="f" domain="missing"/></method></class></amqp>`,
			kind:     IssueUndefinedDomain,
			location: "c.m.f",
			message:  `undefined domain "missing"`,
		},
		{
			name:     "unknown inline type",
			doc:      `<amqp><class name="c" index="1"><method name="m" index="1"><field name="f" type="float"/></method></class></amqp>`,
			kind:     IssueUnknownType,
			location: "c.m.f",
			message:  `unknown wire type "float"`,
		},
		{
			name:     "dangling response",
			doc:      `<amqp><class name="c" index="1"><method name="m" index="1"><response name="m-ok"/></method></class></amqp>`,
			kind:     IssueDanglingResponse,
			location: "c.m",
			message:  `response "m-ok" is not a method of class c`,
		},
		{
			name:     "duplicate method",
			doc:      `<amqp><class name="c" index="1"><method name="m" index="1"/><method name="m" index="2"/></class></amqp>`,
			kind:     IssueDuplicate,
			location: "c.m",
			message:  "duplicate method m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := schemaIssues(t, tt.doc)
			require.Len(t, issues, 1, "issues: %v", issues)
			assert.Equal(t, tt.kind, issues[0].Kind)
			if tt.location != "" {
				assert.Equal(t, tt.location, issues[0].Location)
			}
			assert.Contains(t, issues[0].Message, tt.message)
		})
	}
}

func TestLoadSchemaAggregatesIssues(t *testing.T) {
	doc := `<amqp>
  <class name="c" index="1">
    <method name="a" index="1">
      <field name="x" domain="nowhere"/>
      <response name="gone"/>
    </method>
    <method name="b" index="1"/>
  </class>
  <class name="c" index="2"/>
</amqp>`
	s, err := LoadSchema(strings.NewReader(doc))
	require.Error(t, err)
	assert.Nil(t, s)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.True(t, schemaErr.Has(IssueUndefinedDomain))
	assert.True(t, schemaErr.Has(IssueDanglingResponse))
	assert.True(t, schemaErr.Has(IssueDuplicate))
	assert.False(t, schemaErr.Has(IssueRoot))
	assert.Len(t, schemaErr.Issues, 4)
	assert.True(t, strings.HasPrefix(err.Error(), "invalid schema: 4 issues\n"), err.Error())
}

func TestLoadSchemaFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSchemaFile(filepath.Join(t.TempDir(), "absent.xml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "opening schema")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid file names the path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.xml")
		require.NoError(t, os.WriteFile(path, []byte("<nope/>"), 0o644))

		_, err := LoadSchemaFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading "+path)

		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.True(t, schemaErr.Has(IssueRoot))
	})
}
