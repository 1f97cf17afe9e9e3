package handler

import (
	"errors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
	"xgraph-bench/domain/bench"
	"xgraph-bench/domain/fetcher"
	"xgraph-bench/logging"
	"xgraph-bench/repository/metadata"
	"xgraph-bench/server/common"
	"xgraph-bench/utils"
)

var errDatasetNotFound = errors.New("dataset not found")

func GetDatasetInfo(ctx *gin.Context) {
	handler := getDatasetInfoHandler{
		ctx: ctx,
	}

	if err := handler.checkParam(); err != nil {
		logging.Default().WithError(err).Errorf("parse req error: %s", err.Error())
		ctx.JSON(http.StatusBadRequest, common.MakeErrorResp(common.CodeParamError, err.Error()))
		return
	}

	resp, err := handler.produce()
	if errors.Is(err, errDatasetNotFound) {
		ctx.JSON(http.StatusNotFound, common.MakeErrorResp(common.CodeNotFound, err.Error()))
		return
	}
	if err != nil {
		logging.Default().WithError(err).Errorf("produce error: %s", err.Error())
		ctx.JSON(http.StatusInternalServerError, common.MakeUnknownErrorResp())
		return
	}

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(resp))
}

type getDatasetInfoHandler struct {
	ctx *gin.Context

	// params
	name string
}

type downloadItem struct {
	URL     string `json:"url"`
	Status  string `json:"status"`
	Bytes   int64  `json:"bytes"`
	Error   string `json:"error"`
	Time    int64  `json:"time"`
	TimeStr string `json:"time_str"`
}

type getDatasetInfoResp struct {
	datasetItem
	Archive  *fileItem     `json:"archive"`
	Download *downloadItem `json:"download"`
}

func (h *getDatasetInfoHandler) checkParam() error {
	name := h.ctx.Query("name")

	if len(name) == 0 {
		return utils.WrapError(common.ErrRequestParamEmpty, "query 'name' is empty")
	}

	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return utils.WrapErrorf(common.ErrRequestParamInvalid, "name(%#v) must be a plain directory name", name)
	}

	h.name = name

	return nil
}

func (h *getDatasetInfoHandler) produce() (*getDatasetInfoResp, error) {
	dir := filepath.Join(globalSetting.BenchmarkDir, h.name)

	info, err := os.Stat(dir)
	if os.IsNotExist(err) || (err == nil && !info.IsDir()) {
		return nil, utils.WrapErrorf(errDatasetNotFound, "name=%#v", h.name)
	}
	if err != nil {
		return nil, utils.WrapErrorf(err, "stat dataset dir %#v fail", dir)
	}

	resp := &getDatasetInfoResp{
		datasetItem: makeDatasetItem(bench.NewDataset(dir)),
	}

	if archive, err := statFile(filepath.Join(globalSetting.BenchmarkDir, h.name+archiveSuffix)); err == nil {
		resp.Archive = archive
	}

	resp.Download = h.latestDownload()

	return resp, nil
}

// 未配置数据库或没有下载记录时返回 nil
func (h *getDatasetInfoHandler) latestDownload() *downloadItem {
	database := metadataDatabase()
	if database == nil {
		return nil
	}

	download, err := metadata.LatestDownload(database, h.name+archiveSuffix)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logging.Default().WithError(err).Warnf("query download of %s fail: %s", h.name, err.Error())
		}
		return nil
	}

	return &downloadItem{
		URL:     download.URL,
		Status:  fetcher.Status(download.Status).String(),
		Bytes:   download.Bytes,
		Error:   download.Error,
		Time:    download.CreatedAt.Unix(),
		TimeStr: download.CreatedAt.Format(time.RFC3339),
	}
}
