package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownLocation = errors.New("unknown location")
	ErrInvalidRoad     = errors.New("invalid road")
)

// A single undirected road between two places.
type Road struct {
	From string
	To   string
}

// Parse a road written as "A-B".
func ParseRoad(s string) (Road, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return Road{}, fmt.Errorf("parse road %q: %w", s, ErrInvalidRoad)
	}

	from := strings.TrimSpace(parts[0])
	to := strings.TrimSpace(parts[1])
	if from == "" || to == "" {
		return Road{}, fmt.Errorf("parse road %q: %w", s, ErrInvalidRoad)
	}

	return Road{From: from, To: to}, nil
}

// Graph is the village road network. It is built once and never mutated.
// Adjacency lists keep the order in which roads were registered, which
// makes route finding deterministic.
type Graph struct {
	places []string
	adj    map[string][]string
}

// Build a graph from road strings such as "Alice's House-Post Office".
func BuildGraph(roads []string) (*Graph, error) {
	edges := make([]Road, 0, len(roads))
	for _, r := range roads {
		road, err := ParseRoad(r)
		if err != nil {
			return nil, fmt.Errorf("build graph: %w", err)
		}
		edges = append(edges, road)
	}

	return NewGraph(edges), nil
}

// Build a graph from parsed roads, registering each road in both directions.
func NewGraph(edges []Road) *Graph {
	g := &Graph{adj: make(map[string][]string)}

	addEdge := func(from, to string) {
		if _, ok := g.adj[from]; !ok {
			g.places = append(g.places, from)
		}
		g.adj[from] = append(g.adj[from], to)
	}

	for _, e := range edges {
		addEdge(e.From, e.To)
		addEdge(e.To, e.From)
	}

	return g
}

// Return the places directly reachable from place.
func (g *Graph) Neighbors(place string) ([]string, error) {
	nbrs, ok := g.adj[place]
	if !ok {
		return nil, fmt.Errorf("neighbors of %q: %w", place, ErrUnknownLocation)
	}

	out := make([]string, len(nbrs))
	copy(out, nbrs)
	return out, nil
}

// Return every place in the order it was first seen.
func (g *Graph) Locations() []string {
	out := make([]string, len(g.places))
	copy(out, g.places)
	return out
}

func (g *Graph) HasLocation(place string) bool {
	_, ok := g.adj[place]
	return ok
}

// Report whether a road connects from and to.
func (g *Graph) HasRoad(from, to string) bool {
	for _, n := range g.adj[from] {
		if n == to {
			return true
		}
	}
	return false
}

// Report whether every place can be reached from every other place.
func (g *Graph) Connected() bool {
	if len(g.places) == 0 {
		return true
	}

	seen := map[string]bool{g.places[0]: true}
	stack := []string{g.places[0]}
	for len(stack) > 0 {
		at := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range g.adj[at] {
			if !seen[n] {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return len(seen) == len(g.places)
}
