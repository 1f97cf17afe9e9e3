package bench

import (
	"errors"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"xgraph-bench/logging"
	"xgraph-bench/repository/memgraph"
	"xgraph-bench/repository/metadata"
	"xgraph-bench/utils"
)

var ErrMalformedWeight = errors.New("malformed edge weight")

type runner struct {
	setting *BenchSetting
	out     io.Writer
	logger  *logrus.Logger
}

func newRunner(setting *BenchSetting) *runner {
	r := &runner{
		setting: setting,
		out:     setting.Out,
		logger:  setting.Logger,
	}

	if r.out == nil {
		r.out = os.Stdout
	}
	if r.logger == nil {
		r.logger = logging.Default()
	}

	return r
}

func (r *runner) runAll(benchmarkDir string) ([]*Result, error) {
	datasets, err := FindDatasets(benchmarkDir)
	if err != nil {
		return nil, utils.WrapError(err, "find datasets fail")
	}

	ret := make([]*Result, 0, len(datasets))
	for _, dataset := range datasets {
		fmt.Fprintf(r.out, "== %s\n", dataset.Name)

		result, err := r.run(dataset)
		if err != nil {
			return ret, utils.WrapErrorf(err, "benchmark %s fail", dataset.Name)
		}

		result.Graph = nil
		ret = append(ret, result)
	}

	return ret, nil
}

func (r *runner) run(dataset Dataset) (*Result, error) {
	result := &Result{
		Dataset:  dataset.Name,
		Path:     dataset.Dir,
		Directed: dataset.Directed(),
		Graph:    memgraph.New(dataset.Directed()),
	}

	r.logger.Infof("begin load benchmark %s (directed=%v)", dataset.Name, result.Directed)

	if err := r.loadNodes(dataset, result); err != nil {
		return nil, utils.WrapError(err, "load nodes fail")
	}
	result.printNodeTime(r.out)

	if err := r.loadEdges(dataset, result); err != nil {
		return nil, utils.WrapError(err, "load edges fail")
	}
	result.printEdgeTime(r.out)

	r.logger.Infof("load %s done: %s node calls in %v, %s edge calls in %v, %d edge lines skipped",
		dataset.Name,
		humanize.Comma(int64(result.NodeCalls)), result.NodeLoadTime,
		humanize.Comma(int64(result.EdgeCalls)), result.EdgeLoadTime,
		result.SkippedEdges)

	r.record(result)

	if len(r.setting.ExportDir) != 0 {
		nodePath, edgePath, err := ExportCSV(result, r.setting.ExportDir)
		if err != nil {
			return nil, utils.WrapError(err, "export csv fail")
		}
		r.logger.Infof("graph of %s exported to %s and %s", dataset.Name, nodePath, edgePath)
	}

	return result, nil
}

func (r *runner) loadNodes(dataset Dataset, result *Result) error {
	lines, err := readLines(dataset.VertexPath())
	if err != nil {
		return err
	}

	g := result.Graph
	for _, line := range lines {
		start := time.Now()

		g.AddNode(line)

		result.NodeLoadTime += time.Since(start)
		result.NodeCalls++
	}

	return nil
}

func (r *runner) loadEdges(dataset Dataset, result *Result) error {
	lines, err := readLines(dataset.EdgePath())
	if err != nil {
		return err
	}

	g := result.Graph
	for i, line := range lines {
		fields := strings.Split(line, " ")

		switch len(fields) {
		case 2:
			start := time.Now()

			g.AddEdge(fields[0], fields[1])

			result.EdgeLoadTime += time.Since(start)
			result.EdgeCalls++

		case 3:
			weight, err := parseWeight(fields[2])
			if err != nil {
				return utils.WrapErrorf(err, "%s:%d", dataset.EdgePath(), i+1)
			}

			start := time.Now()

			g.AddWeightedEdge(fields[0], fields[1], weight)

			result.EdgeLoadTime += time.Since(start)
			result.EdgeCalls++

		default:
			result.SkippedEdges++
		}
	}

	return nil
}

func parseWeight(field string) (float64, error) {
	weight, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, utils.WrapErrorf(ErrMalformedWeight, "parse %#v: %v", field, err)
	}

	return weight, nil
}

func (r *runner) record(result *Result) {
	if r.setting.GetMetadataDatabase == nil {
		return
	}

	if err := metadata.SaveRun(r.setting.GetMetadataDatabase(), result.toModel()); err != nil {
		r.logger.WithError(err).Warnf("record run of %s fail: %v", result.Dataset, err)
	}
}
