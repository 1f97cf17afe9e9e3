package memgraph

import (
	"bytes"
	"encoding/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestAddNodeIdempotent(t *testing.T) {
	g := NewDirected()
	g.AddNode("1\n")
	g.AddNode("2\n")
	g.AddNode("1\n")

	assert.Equal(t, 2, g.NodeCount())
	assert.True(t, g.HasNode("1\n"))
	assert.False(t, g.HasNode("1"))
	assert.Equal(t, []string{"1\n", "2\n"}, g.Nodes())
}

func TestDirectedEdges(t *testing.T) {
	g := New(true)
	require.True(t, g.Directed())

	g.AddEdge("a", "b")
	g.AddWeightedEdge("b", "c", 0.5)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())

	e, ok := g.Edge("a", "b")
	require.True(t, ok)
	assert.False(t, e.Weighted)
	assert.Equal(t, DefaultWeight, e.Weight)

	e, ok = g.Edge("b", "c")
	require.True(t, ok)
	assert.True(t, e.Weighted)
	assert.Equal(t, 0.5, e.Weight)

	_, ok = g.Edge("b", "a")
	assert.False(t, ok)
	_, ok = g.Edge("a", "absent")
	assert.False(t, ok)

	w, ok := g.unwrap().Weight(0, 1)
	require.True(t, ok)
	assert.Equal(t, DefaultWeight, w)
}

func TestUndirectedEdges(t *testing.T) {
	g := New(false)
	require.False(t, g.Directed())

	g.AddWeightedEdge("a", "b", 2)
	g.AddWeightedEdge("b", "a", 3)

	assert.Equal(t, 1, g.EdgeCount())

	e, ok := g.Edge("a", "b")
	require.True(t, ok)
	assert.Equal(t, 3.0, e.Weight)

	e, ok = g.Edge("b", "a")
	require.True(t, ok)
	assert.Equal(t, "b", e.Head)
	assert.Equal(t, "a", e.Tail)
}

func TestOverwriteAndSelfLoop(t *testing.T) {
	g := NewDirected()
	g.AddWeightedEdge("x", "y", 4)
	g.AddEdge("x", "y")
	g.AddWeightedEdge("z", "z", 1.5)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())

	e, ok := g.Edge("x", "y")
	require.True(t, ok)
	assert.False(t, e.Weighted)

	loop, ok := g.Edge("z", "z")
	require.True(t, ok)
	assert.Equal(t, 1.5, loop.Weight)

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, Edge{Head: "z", Tail: "z", Weight: 1.5, Weighted: true}, edges[1])
}

func TestWriteCSV(t *testing.T) {
	g := NewDirected()
	g.AddNode("1\n")
	g.AddEdge("1", "2\n")
	g.AddWeightedEdge("2", "3", 0.5)

	var nodes, edges bytes.Buffer
	require.Nil(t, WriteCSV(g, &nodes, &edges))

	nodeRecords, err := csv.NewReader(&nodes).ReadAll()
	require.Nil(t, err)
	assert.Equal(t, [][]string{{"name"}, {"1\n"}, {"1"}, {"2\n"}, {"2"}, {"3"}}, nodeRecords)

	edgeRecords, err := csv.NewReader(&edges).ReadAll()
	require.Nil(t, err)
	assert.Equal(t, [][]string{
		{"head", "tail", "weight"},
		{"1", "2\n", ""},
		{"2", "3", "0.5"},
	}, edgeRecords)
}
