package memgraph

import "gonum.org/v1/gonum/graph"

// DefaultWeight 为无权边在 gonum 中保存的权重。
const DefaultWeight = 1.0

/*
Edge 是一条边的只读视图。

	Weighted 为 false 时 Weight 恒为 DefaultWeight，仅用于加权算法；
*/
type Edge struct {
	Head     string
	Tail     string
	Weight   float64
	Weighted bool
}

// edge 实现 graph.WeightedEdge，作为存入 gonum 的边值
type edge struct {
	from, to graph.Node
	weight   float64
	weighted bool
}

func (e edge) From() graph.Node { return e.from }
func (e edge) To() graph.Node   { return e.to }
func (e edge) Weight() float64  { return e.weight }

func (e edge) ReversedEdge() graph.Edge {
	return edge{from: e.to, to: e.from, weight: e.weight, weighted: e.weighted}
}

type edgeKey struct {
	from, to int64
}
