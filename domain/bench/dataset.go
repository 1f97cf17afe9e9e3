package bench

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"xgraph-bench/utils"
)

const (
	VertexSuffix = ".v"
	EdgeSuffix   = ".e"

	undirectedMark = "undirected"
)

/*
Dataset 由目录路径确定，目录名即数据集名，目录下应有 <name>.v 与 <name>.e 两个文件。
*/
type Dataset struct {
	Name string
	Dir  string
}

func NewDataset(dirPath string) Dataset {
	return Dataset{
		Name: filepath.Base(dirPath),
		Dir:  dirPath,
	}
}

// Directed 路径中包含 "undirected" 时为无向图，否则为有向图。
func (d Dataset) Directed() bool {
	return !strings.Contains(d.Dir, undirectedMark)
}

func (d Dataset) VertexPath() string {
	return filepath.Join(d.Dir, d.Name+VertexSuffix)
}

func (d Dataset) EdgePath() string {
	return filepath.Join(d.Dir, d.Name+EdgeSuffix)
}

/*
FindDatasets 列出 benchmarkDir 下所有包含 <name>.v 的子目录，按名称排序。
*/
func FindDatasets(benchmarkDir string) ([]Dataset, error) {
	entries, err := os.ReadDir(benchmarkDir)
	if err != nil {
		return nil, utils.WrapErrorf(err, "read dir %#v fail", benchmarkDir)
	}

	ret := make([]Dataset, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		dataset := NewDataset(filepath.Join(benchmarkDir, entry.Name()))
		if info, err := os.Stat(dataset.VertexPath()); err != nil || !info.Mode().IsRegular() {
			continue
		}

		ret = append(ret, dataset)
	}

	sort.Slice(ret, func(i, j int) bool {
		return ret[i].Name < ret[j].Name
	})

	return ret, nil
}

/*
readLines 读取整个文件并按行切分，每行保留结尾的换行符（最后一行可能没有）。

"\r\n" 与单独的 "\r" 均视为 "\n"。
*/
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, utils.WrapErrorf(err, "read %#v fail", path)
	}

	return splitLines(string(data)), nil
}

func splitLines(text string) []string {
	if strings.IndexByte(text, '\r') >= 0 {
		text = strings.ReplaceAll(text, "\r\n", "\n")
		text = strings.ReplaceAll(text, "\r", "\n")
	}

	lines := strings.SplitAfter(text, "\n")
	if len(lines) != 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}

	return lines
}
