package memgraph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"math"
)

type backend interface {
	graph.Weighted
	AddNode(graph.Node)
	SetWeightedEdge(graph.WeightedEdge)
}

/*
Graph 是以字符串为节点标识的内存图，底层存储为 gonum 的 simple 加权图。

与 networkx 的 add_node / add_edge 语义保持一致：

	重复添加节点为空操作；
	添加边时自动创建不存在的端点；
	重复添加同一条边会覆盖原有的边（含权重）；
	允许自环（gonum simple 图不支持自环，单独保存在 loops 中）；
*/
type Graph struct {
	directed bool
	g        backend

	ids   map[string]int64
	names []string

	loops map[int64]edge
	keys  []edgeKey
	seen  map[edgeKey]struct{}
}

func NewDirected() *Graph {
	return newGraph(true, simple.NewWeightedDirectedGraph(0, math.Inf(1)))
}

func NewUndirected() *Graph {
	return newGraph(false, simple.NewWeightedUndirectedGraph(0, math.Inf(1)))
}

func New(directed bool) *Graph {
	if directed {
		return NewDirected()
	}

	return NewUndirected()
}

func newGraph(directed bool, g backend) *Graph {
	return &Graph{
		directed: directed,
		g:        g,
		ids:      make(map[string]int64),
		loops:    make(map[int64]edge),
		seen:     make(map[edgeKey]struct{}),
	}
}

func (g *Graph) Directed() bool {
	return g.directed
}

func (g *Graph) node(name string) graph.Node {
	if id, ok := g.ids[name]; ok {
		return g.g.Node(id)
	}

	id := int64(len(g.names))
	n := simple.Node(id)
	g.g.AddNode(n)
	g.ids[name] = id
	g.names = append(g.names, name)

	return n
}

func (g *Graph) AddNode(name string) {
	g.node(name)
}

func (g *Graph) AddEdge(head, tail string) {
	g.setEdge(head, tail, DefaultWeight, false)
}

func (g *Graph) AddWeightedEdge(head, tail string, weight float64) {
	g.setEdge(head, tail, weight, true)
}

func (g *Graph) setEdge(head, tail string, weight float64, weighted bool) {
	e := edge{
		from:     g.node(head),
		to:       g.node(tail),
		weight:   weight,
		weighted: weighted,
	}

	key := g.key(e.from.ID(), e.to.ID())
	if _, ok := g.seen[key]; !ok {
		g.seen[key] = struct{}{}
		g.keys = append(g.keys, key)
	}

	if e.from.ID() == e.to.ID() {
		g.loops[e.from.ID()] = e
		return
	}

	g.g.SetWeightedEdge(e)
}

func (g *Graph) key(from, to int64) edgeKey {
	if !g.directed && from > to {
		from, to = to, from
	}

	return edgeKey{from: from, to: to}
}

func (g *Graph) HasNode(name string) bool {
	_, ok := g.ids[name]
	return ok
}

func (g *Graph) NodeCount() int {
	return len(g.names)
}

func (g *Graph) EdgeCount() int {
	return len(g.keys)
}

/*
Edge 查询 head -> tail 的边，无向图中与方向无关。
*/
func (g *Graph) Edge(head, tail string) (Edge, bool) {
	hid, ok := g.ids[head]
	if !ok {
		return Edge{}, false
	}
	tid, ok := g.ids[tail]
	if !ok {
		return Edge{}, false
	}

	e, ok := g.lookup(hid, tid)
	if !ok {
		return Edge{}, false
	}

	return Edge{Head: head, Tail: tail, Weight: e.weight, Weighted: e.weighted}, true
}

func (g *Graph) lookup(from, to int64) (edge, bool) {
	if from == to {
		e, ok := g.loops[from]
		return e, ok
	}

	we := g.g.WeightedEdge(from, to)
	if we == nil {
		return edge{}, false
	}

	e, ok := we.(edge)
	return e, ok
}

// Nodes 按首次插入顺序返回所有节点。
func (g *Graph) Nodes() []string {
	ret := make([]string, len(g.names))
	copy(ret, g.names)
	return ret
}

// Edges 按首次插入顺序返回所有边。
func (g *Graph) Edges() []Edge {
	ret := make([]Edge, 0, len(g.keys))
	for _, key := range g.keys {
		e, ok := g.lookup(key.from, key.to)
		if !ok {
			continue
		}

		ret = append(ret, Edge{
			Head:     g.names[e.from.ID()],
			Tail:     g.names[e.to.ID()],
			Weight:   e.weight,
			Weighted: e.weighted,
		})
	}

	return ret
}

func (g *Graph) unwrap() graph.Weighted {
	return g.g
}
