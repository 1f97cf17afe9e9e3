package memgraph

import (
	"encoding/csv"
	"io"
	"strconv"
	"xgraph-bench/utils"
)

/*
WriteCSV 将图导出为两个 CSV：节点表（name）与边表（head,tail,weight），无权边的 weight 列为空。
*/
func WriteCSV(g *Graph, nodeOut, edgeOut io.Writer) error {
	if err := writeNodeCSV(g, nodeOut); err != nil {
		return utils.WrapError(err, "write node csv fail")
	}

	if err := writeEdgeCSV(g, edgeOut); err != nil {
		return utils.WrapError(err, "write edge csv fail")
	}

	return nil
}

func writeNodeCSV(g *Graph, out io.Writer) error {
	w := csv.NewWriter(out)

	if err := w.Write([]string{"name"}); err != nil {
		return utils.WrapError(err, "write header fail")
	}

	for _, name := range g.Nodes() {
		if err := w.Write([]string{name}); err != nil {
			return utils.WrapErrorf(err, "record node [%#v] fail", name)
		}
	}

	w.Flush()
	return w.Error()
}

func writeEdgeCSV(g *Graph, out io.Writer) error {
	w := csv.NewWriter(out)

	if err := w.Write([]string{"head", "tail", "weight"}); err != nil {
		return utils.WrapError(err, "write header fail")
	}

	for _, e := range g.Edges() {
		weight := ""
		if e.Weighted {
			weight = strconv.FormatFloat(e.Weight, 'g', -1, 64)
		}

		if err := w.Write([]string{e.Head, e.Tail, weight}); err != nil {
			return utils.WrapErrorf(err, "record edge <%#v, %#v> fail", e.Head, e.Tail)
		}
	}

	w.Flush()
	return w.Error()
}
