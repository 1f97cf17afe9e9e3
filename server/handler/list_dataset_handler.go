package handler

import (
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
	"xgraph-bench/domain/bench"
	"xgraph-bench/logging"
	"xgraph-bench/server/common"
	"xgraph-bench/utils"
)

const archiveSuffix = ".tar.zst"

func ListDataset(ctx *gin.Context) {
	res, err := listDataset(globalSetting.BenchmarkDir)
	if err != nil {
		logging.Default().WithError(err).Errorf("ListDataset produce error: %s", err.Error())
		ctx.JSON(http.StatusInternalServerError, common.MakeUnknownErrorResp())
		return
	}

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(res))
}

type fileItem struct {
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	SizeStr    string `json:"size_str"`
	ModTime    int64  `json:"mod_time"`
	ModTimeStr string `json:"mod_time_str"`
}

type datasetItem struct {
	Name     string    `json:"name"`
	Directed bool      `json:"directed"`
	Vertex   *fileItem `json:"vertex"`
	Edge     *fileItem `json:"edge"`
}

type listDatasetResp struct {
	Datasets []datasetItem `json:"datasets"`
	Archives []fileItem    `json:"archives"`
}

func statFile(path string) (*fileItem, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	return &fileItem{
		Name:       info.Name(),
		Size:       info.Size(),
		SizeStr:    humanize.Bytes(uint64(info.Size())),
		ModTime:    info.ModTime().Unix(),
		ModTimeStr: info.ModTime().Format(time.RFC3339),
	}, nil
}

/*
makeDatasetItem 汇总数据集的两个文件，缺失的文件对应字段为 nil。
*/
func makeDatasetItem(dataset bench.Dataset) datasetItem {
	item := datasetItem{
		Name:     dataset.Name,
		Directed: dataset.Directed(),
	}

	if vertex, err := statFile(dataset.VertexPath()); err == nil {
		item.Vertex = vertex
	}
	if edge, err := statFile(dataset.EdgePath()); err == nil {
		item.Edge = edge
	}

	return item
}

func listArchives(benchmarkDir string) ([]fileItem, error) {
	entries, err := os.ReadDir(benchmarkDir)
	if err != nil {
		return nil, utils.WrapErrorf(err, "read dir %#v fail", benchmarkDir)
	}

	ret := make([]fileItem, 0)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), archiveSuffix) {
			continue
		}

		item, err := statFile(filepath.Join(benchmarkDir, entry.Name()))
		if err != nil {
			return nil, utils.WrapErrorf(err, "stat archive %#v fail", entry.Name())
		}
		ret = append(ret, *item)
	}

	return ret, nil
}

func listDataset(benchmarkDir string) (*listDatasetResp, error) {
	datasets, err := bench.FindDatasets(benchmarkDir)
	if err != nil {
		return nil, utils.WrapError(err, "find datasets fail")
	}

	archives, err := listArchives(benchmarkDir)
	if err != nil {
		return nil, utils.WrapError(err, "list archives fail")
	}

	ret := &listDatasetResp{
		Datasets: make([]datasetItem, 0, len(datasets)),
		Archives: archives,
	}
	for _, dataset := range datasets {
		ret.Datasets = append(ret.Datasets, makeDatasetItem(dataset))
	}

	return ret, nil
}
