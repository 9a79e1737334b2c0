package main

import (
	"strings"
)

// DomainGraph represents alias relationships between domains
type DomainGraph struct {
	Nodes map[string]*DomainNode
	Edges map[string][]string // domain name -> domain names it aliases
	order []string
}

// DomainNode represents a domain in the alias graph
type DomainNode struct {
	Name    string
	InCycle bool // determined by cycle detection
}

// NewDomainGraph creates a new alias graph
func NewDomainGraph() *DomainGraph {
	return &DomainGraph{
		Nodes: make(map[string]*DomainNode),
		Edges: make(map[string][]string),
	}
}

// AddDomain adds a domain to the graph
func (g *DomainGraph) AddDomain(name string) {
	if _, exists := g.Nodes[name]; !exists {
		g.Nodes[name] = &DomainNode{Name: name}
		g.Edges[name] = []string{}
		g.order = append(g.order, name)
	}
}

// AddAlias adds an alias relationship (from -> to)
func (g *DomainGraph) AddAlias(from, to string) {
	g.AddDomain(from)
	g.AddDomain(to)

	for _, existing := range g.Edges[from] {
		if existing == to {
			return
		}
	}

	g.Edges[from] = append(g.Edges[from], to)
	debugf("Added alias: %s -> %s", from, to)
}

// DetectCycles returns every alias cycle, visiting domains in the order they
// were added so results are stable across runs
func (g *DomainGraph) DetectCycles() [][]string {
	var cycles [][]string
	visited := make(map[string]bool)
	recursionStack := make(map[string]bool)

	for _, name := range g.order {
		if visited[name] {
			continue
		}
		if cycle := g.findCycleDFS(name, visited, recursionStack, nil); cycle != nil {
			cycles = append(cycles, cycle)
			for _, cycleName := range cycle {
				if node := g.Nodes[cycleName]; node != nil {
					node.InCycle = true
				}
			}
		}
	}

	return cycles
}

func (g *DomainGraph) findCycleDFS(current string, visited, recursionStack map[string]bool, path []string) []string {
	visited[current] = true
	recursionStack[current] = true
	path = append(path, current)

	for _, neighbor := range g.Edges[current] {
		if !visited[neighbor] {
			if cycle := g.findCycleDFS(neighbor, visited, recursionStack, path); cycle != nil {
				return cycle
			}
			continue
		}
		if recursionStack[neighbor] {
			return extractCycle(neighbor, path)
		}
	}

	recursionStack[current] = false
	return nil
}

// extractCycle returns the path from the back edge target to the end of
// path, closed with the target again
func extractCycle(target string, path []string) []string {
	for i, node := range path {
		if node == target {
			cycle := make([]string, 0, len(path)-i+1)
			cycle = append(cycle, path[i:]...)
			return append(cycle, target)
		}
	}
	debugf("ERROR: Back edge target %s not found in current path %v", target, path)
	return nil
}

// formatCycle renders a cycle as "a -> b -> a"
func formatCycle(cycle []string) string {
	return strings.Join(cycle, " -> ")
}

// AnalyzeDomains builds the alias graph for a schema. A domain whose type is
// its own name binds a primitive and adds no edge.
func AnalyzeDomains(s *Schema) *DomainGraph {
	graph := NewDomainGraph()

	for _, d := range s.Domains {
		graph.AddDomain(d.Name)
	}
	for _, d := range s.Domains {
		if d.Type == d.Name {
			continue
		}
		if _, ok := s.domain(d.Type); ok {
			graph.AddAlias(d.Name, d.Type)
		}
	}

	return graph
}
