package bench

import (
	"errors"
	"os"
	"path/filepath"
	"xgraph-bench/repository/memgraph"
	"xgraph-bench/utils"
)

var ErrNoGraph = errors.New("result holds no graph")

/*
ExportCSV 将 result 中的图写入 outDir/<dataset>.nodes.csv 与 outDir/<dataset>.edges.csv，返回两个文件路径。
*/
func ExportCSV(result *Result, outDir string) (string, string, error) {
	if result.Graph == nil {
		return "", "", utils.WrapErrorf(ErrNoGraph, "dataset %s", result.Dataset)
	}

	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return "", "", utils.WrapErrorf(err, "mkdir %#v fail", outDir)
	}

	nodePath := filepath.Join(outDir, result.Dataset+".nodes.csv")
	edgePath := filepath.Join(outDir, result.Dataset+".edges.csv")

	nodeFile, err := os.Create(nodePath)
	if err != nil {
		return "", "", utils.WrapErrorf(err, "create %#v fail", nodePath)
	}
	defer nodeFile.Close()

	edgeFile, err := os.Create(edgePath)
	if err != nil {
		return "", "", utils.WrapErrorf(err, "create %#v fail", edgePath)
	}
	defer edgeFile.Close()

	if err := memgraph.WriteCSV(result.Graph, nodeFile, edgeFile); err != nil {
		return "", "", utils.WrapErrorf(err, "export %s fail", result.Dataset)
	}

	return nodePath, edgePath, nil
}
