package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainGraphDetectCycles(t *testing.T) {
	tests := []struct {
		name    string
		aliases [][2]string
		want    [][]string
	}{
		{
			name:    "chain",
			aliases: [][2]string{{"tag", "delivery-tag"}, {"delivery-tag", "id"}},
			want:    nil,
		},
		{
			name:    "two domains",
			aliases: [][2]string{{"a", "b"}, {"b", "a"}},
			want:    [][]string{{"a", "b", "a"}},
		},
		{
			name:    "self alias",
			aliases: [][2]string{{"a", "a"}},
			want:    [][]string{{"a", "a"}},
		},
		{
			name:    "cycle below an entry",
			aliases: [][2]string{{"entry", "x"}, {"x", "y"}, {"y", "z"}, {"z", "x"}},
			want:    [][]string{{"x", "y", "z", "x"}},
		},
		{
			name:    "independent cycles",
			aliases: [][2]string{{"a", "b"}, {"b", "a"}, {"c", "d"}, {"d", "c"}},
			want:    [][]string{{"a", "b", "a"}, {"c", "d", "c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewDomainGraph()
			for _, a := range tt.aliases {
				g.AddAlias(a[0], a[1])
			}
			assert.Equal(t, tt.want, g.DetectCycles())
		})
	}
}

func TestDomainGraphMarksCycleMembers(t *testing.T) {
	g := NewDomainGraph()
	g.AddAlias("entry", "x")
	g.AddAlias("x", "y")
	g.AddAlias("y", "x")
	g.DetectCycles()

	assert.False(t, g.Nodes["entry"].InCycle)
	assert.True(t, g.Nodes["x"].InCycle)
	assert.True(t, g.Nodes["y"].InCycle)
	assert.True(t, reachesCycle(g, "entry"))
}

func TestDomainGraphAddAliasDeduplicates(t *testing.T) {
	g := NewDomainGraph()
	g.AddAlias("a", "b")
	g.AddAlias("a", "b")
	assert.Equal(t, []string{"b"}, g.Edges["a"])
	assert.Empty(t, g.Edges["b"])
}

func TestAnalyzeDomains(t *testing.T) {
	s := newSchema()
	s.addDomain(Domain{Name: "bit", Type: "bit"})
	s.addDomain(Domain{Name: "delivery-tag", Type: "longlong"})
	s.addDomain(Domain{Name: "tag", Type: "delivery-tag"})

	g := AnalyzeDomains(s)
	require.Len(t, g.Nodes, 3)
	assert.Empty(t, g.Edges["bit"], "self alias binds a primitive")
	assert.Empty(t, g.Edges["delivery-tag"], "primitive types are not graph nodes")
	assert.Equal(t, []string{"delivery-tag"}, g.Edges["tag"])
	assert.Empty(t, g.DetectCycles())
}

func TestFormatCycle(t *testing.T) {
	assert.Equal(t, "a -> b -> a", formatCycle([]string{"a", "b", "a"}))
}
