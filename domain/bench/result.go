package bench

import (
	"fmt"
	"io"
	"time"
	"xgraph-bench/repository/memgraph"
	"xgraph-bench/repository/metadata"
)

/*
Result 为一次基准测试的结果。

	NodeCalls / EdgeCalls 实际发生的插入调用次数，重复的节点、边同样计数；
	SkippedEdges 字段数不为 2 或 3 的边行数；
*/
type Result struct {
	Dataset  string
	Path     string
	Directed bool

	NodeCalls    int
	EdgeCalls    int
	SkippedEdges int

	NodeLoadTime time.Duration
	EdgeLoadTime time.Duration

	Graph *memgraph.Graph
}

func (r *Result) printNodeTime(w io.Writer) {
	fmt.Fprintf(w, "Node load time: %vs\n", r.NodeLoadTime.Seconds())
}

func (r *Result) printEdgeTime(w io.Writer) {
	fmt.Fprintf(w, "Edge load time: %vs\n", r.EdgeLoadTime.Seconds())
}

func (r *Result) toModel() *metadata.Run {
	return &metadata.Run{
		Dataset:       r.Dataset,
		Path:          r.Path,
		Directed:      r.Directed,
		NodeCalls:     int64(r.NodeCalls),
		EdgeCalls:     int64(r.EdgeCalls),
		SkippedEdges:  int64(r.SkippedEdges),
		NodeLoadNanos: r.NodeLoadTime.Nanoseconds(),
		EdgeLoadNanos: r.EdgeLoadTime.Nanoseconds(),
	}
}
