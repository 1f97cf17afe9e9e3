package bench

import (
	"bytes"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"xgraph-bench/logging"
)

func newTestRunner(t *testing.T) (*runner, *bytes.Buffer) {
	logging.SetDefaultConfig(logging.GenerateTestConfig(t))

	out := &bytes.Buffer{}
	return newRunner(&BenchSetting{
		Out:    out,
		Logger: logging.NewLogger(),
	}), out
}

func writeDataset(t *testing.T, parent, name, vertices, edges string) string {
	dir := filepath.Join(parent, name)
	require.Nil(t, os.MkdirAll(dir, os.ModePerm))
	require.Nil(t, os.WriteFile(filepath.Join(dir, name+VertexSuffix), []byte(vertices), 0644))
	require.Nil(t, os.WriteFile(filepath.Join(dir, name+EdgeSuffix), []byte(edges), 0644))

	return dir
}

func TestRunBenchmarkExample(t *testing.T) {
	r, out := newTestRunner(t)
	dir := writeDataset(t, t.TempDir(), "test-bfs-directed", "1\n2\n3\n", "1 2\n2 3 0.5\n")

	result, err := r.run(NewDataset(dir))
	require.Nil(t, err)

	assert.Equal(t, "test-bfs-directed", result.Dataset)
	assert.True(t, result.Directed)
	assert.True(t, result.Graph.Directed())
	assert.Equal(t, 3, result.NodeCalls)
	assert.Equal(t, 2, result.EdgeCalls)
	assert.Equal(t, 0, result.SkippedEdges)
	assert.Equal(t, 2, result.Graph.EdgeCount())

	// 行尾换行符不去除：顶点 "1\n" 与边端点 "1" 是不同的节点
	assert.True(t, result.Graph.HasNode("1\n"))
	assert.True(t, result.Graph.HasNode("1"))
	assert.Equal(t, 6, result.Graph.NodeCount())

	e, ok := result.Graph.Edge("1", "2\n")
	require.True(t, ok)
	assert.False(t, e.Weighted)

	e, ok = result.Graph.Edge("2", "3")
	require.True(t, ok)
	assert.True(t, e.Weighted)
	assert.Equal(t, 0.5, e.Weight)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Node load time: "))
	assert.True(t, strings.HasSuffix(lines[0], "s"))
	assert.True(t, strings.HasPrefix(lines[1], "Edge load time: "))
}

func TestRunBenchmarkUndirected(t *testing.T) {
	r, _ := newTestRunner(t)
	dir := writeDataset(t, t.TempDir(), "test-wcc-undirected", "a\nb\n", "a b\nb a\n")

	result, err := r.run(NewDataset(dir))
	require.Nil(t, err)

	assert.False(t, result.Directed)
	assert.False(t, result.Graph.Directed())
	assert.Equal(t, 2, result.EdgeCalls)
}

func TestRunBenchmarkCountsCallsRegardlessOfDuplicates(t *testing.T) {
	r, _ := newTestRunner(t)
	vertices := "1\n1\n2\n2\n3"
	edges := "1 2\n1 2\n1 2 3.5\n2 2\n"
	dir := writeDataset(t, t.TempDir(), "dup-directed", vertices, edges)

	result, err := r.run(NewDataset(dir))
	require.Nil(t, err)

	assert.Equal(t, 5, result.NodeCalls)
	assert.Equal(t, 4, result.EdgeCalls)
	assert.True(t, result.Graph.HasNode("3"))
}

func TestRunBenchmarkSkipsOtherFieldCounts(t *testing.T) {
	r, _ := newTestRunner(t)
	edges := "1\n1 2\n1 2 3 4\n\n2 3 1e-3\n"
	dir := writeDataset(t, t.TempDir(), "skip-directed", "1\n", edges)

	result, err := r.run(NewDataset(dir))
	require.Nil(t, err)

	assert.Equal(t, 2, result.EdgeCalls)
	assert.Equal(t, 3, result.SkippedEdges)
	assert.Equal(t, 2, result.Graph.EdgeCount())

	e, ok := result.Graph.Edge("2", "3")
	require.True(t, ok)
	assert.Equal(t, 1e-3, e.Weight)
}

func TestRunBenchmarkMalformedWeight(t *testing.T) {
	r, out := newTestRunner(t)
	dir := writeDataset(t, t.TempDir(), "bad-directed", "1\n", "1 2\n2 3 heavy\n")

	result, err := r.run(NewDataset(dir))
	assert.Nil(t, result)
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrMalformedWeight))
	assert.Contains(t, err.Error(), "bad-directed.e:2")
	assert.NotContains(t, out.String(), "Edge load time")
}

func TestRunBenchmarkMissingFiles(t *testing.T) {
	r, _ := newTestRunner(t)

	_, err := r.run(NewDataset(filepath.Join(t.TempDir(), "absent")))
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	dir := filepath.Join(t.TempDir(), "only-vertices")
	require.Nil(t, os.MkdirAll(dir, os.ModePerm))
	require.Nil(t, os.WriteFile(filepath.Join(dir, "only-vertices.v"), []byte("1\n"), 0644))

	_, err = r.run(NewDataset(dir))
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDatasetPaths(t *testing.T) {
	d := NewDataset("../benchmark/test-pr-undirected")
	assert.Equal(t, "test-pr-undirected", d.Name)
	assert.False(t, d.Directed())
	assert.Equal(t, filepath.Join("../benchmark/test-pr-undirected", "test-pr-undirected.v"), d.VertexPath())
	assert.Equal(t, filepath.Join("../benchmark/test-pr-undirected", "test-pr-undirected.e"), d.EdgePath())

	assert.True(t, NewDataset("../benchmark/wiki-Talk").Directed())
	assert.False(t, NewDataset("/undirected/wiki-Talk").Directed())
}

func TestSplitLines(t *testing.T) {
	assert.Empty(t, splitLines(""))
	assert.Equal(t, []string{"1\n", "2\n", "3"}, splitLines("1\n2\n3"))
	assert.Equal(t, []string{"1\n", "\n", "2\n"}, splitLines("1\n\n2\n"))
	assert.Equal(t, []string{"1\n", "2\n"}, splitLines("1\r\n2\r"))
}

func TestRunAll(t *testing.T) {
	r, out := newTestRunner(t)
	parent := t.TempDir()
	writeDataset(t, parent, "test-pr-directed", "1\n2\n", "1 2 0.25\n")
	writeDataset(t, parent, "test-bfs-undirected", "1\n", "1 1\n")
	require.Nil(t, os.MkdirAll(filepath.Join(parent, "not-a-dataset"), os.ModePerm))
	require.Nil(t, os.WriteFile(filepath.Join(parent, "wiki-Talk.tar.zst"), []byte("archive"), 0644))

	results, err := r.runAll(parent)
	require.Nil(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "test-bfs-undirected", results[0].Dataset)
	assert.Equal(t, "test-pr-directed", results[1].Dataset)
	assert.Nil(t, results[0].Graph)
	assert.Equal(t, 4, strings.Count(out.String(), "load time"))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "== test-bfs-undirected", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Node load time: "))
	assert.Equal(t, "== test-pr-directed", lines[3])
}

func TestRunAllExportsEachDataset(t *testing.T) {
	logging.SetDefaultConfig(logging.GenerateTestConfig(t))
	exportDir := filepath.Join(t.TempDir(), "export")
	r := newRunner(&BenchSetting{
		Out:       &bytes.Buffer{},
		ExportDir: exportDir,
		Logger:    logging.NewLogger(),
	})

	parent := t.TempDir()
	writeDataset(t, parent, "test-pr-directed", "1\n2\n", "1 2 0.25\n")
	writeDataset(t, parent, "test-bfs-undirected", "1\n", "1 2\n")

	results, err := r.runAll(parent)
	require.Nil(t, err)
	require.Len(t, results, 2)

	for _, name := range []string{"test-pr-directed", "test-bfs-undirected"} {
		edges, err := os.ReadFile(filepath.Join(exportDir, name+".edges.csv"))
		require.Nil(t, err)
		assert.True(t, strings.HasPrefix(string(edges), "head,tail,weight\n"))
	}
}

func TestRunAllStopsAtFirstError(t *testing.T) {
	r, _ := newTestRunner(t)
	parent := t.TempDir()
	writeDataset(t, parent, "a-directed", "1\n", "1 2 x\n")
	writeDataset(t, parent, "b-directed", "1\n", "1 2\n")

	results, err := r.runAll(parent)
	require.NotNil(t, err)
	assert.Empty(t, results)
	assert.Contains(t, err.Error(), "a-directed")
}

func TestGlobalRunBenchmarkAndExport(t *testing.T) {
	logging.SetDefaultConfig(logging.GenerateTestConfig(t))
	out := &bytes.Buffer{}
	exportDir := filepath.Join(t.TempDir(), "export")
	Init(&BenchSetting{Out: out, ExportDir: exportDir, Logger: logging.NewLogger()})

	dir := writeDataset(t, t.TempDir(), "test-sssp-directed", "1\n2\n", "1 2 2.5\n")
	result, err := RunBenchmark(dir)
	require.Nil(t, err)
	assert.Equal(t, 1, strings.Count(out.String(), "Node load time"))
	assert.NotNil(t, result.Graph)

	nodePath := filepath.Join(exportDir, "test-sssp-directed.nodes.csv")
	edgePath := filepath.Join(exportDir, "test-sssp-directed.edges.csv")

	edges, err := os.ReadFile(edgePath)
	require.Nil(t, err)
	assert.Equal(t, "head,tail,weight\n1,2,2.5\n", string(edges))

	nodes, err := os.ReadFile(nodePath)
	require.Nil(t, err)
	assert.True(t, strings.HasPrefix(string(nodes), "name\n"))

	_, _, err = ExportCSV(&Result{Dataset: "empty"}, t.TempDir())
	assert.True(t, errors.Is(err, ErrNoGraph))
}
