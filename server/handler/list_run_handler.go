package handler

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"
	"time"
	"xgraph-bench/logging"
	"xgraph-bench/repository/metadata"
	"xgraph-bench/server/common"
	"xgraph-bench/utils"
)

const defaultRunLimit = 100

func ListRun(ctx *gin.Context) {
	database := metadataDatabase()
	if database == nil {
		ctx.JSON(http.StatusServiceUnavailable, common.MakeErrorResp(common.CodeStoreDisabled, "metadata store disabled"))
		return
	}

	limit := defaultRunLimit
	if raw := ctx.Query("limit"); len(raw) != 0 {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			err = utils.WrapErrorf(common.ErrRequestParamInvalid, "limit(%#v) must be a positive integer", raw)
			ctx.JSON(http.StatusBadRequest, common.MakeErrorResp(common.CodeParamError, err.Error()))
			return
		}
		limit = parsed
	}

	res, err := listRun(ctx.Query("dataset"), limit)
	if err != nil {
		logging.Default().WithError(err).Errorf("ListRun produce error: %s", err.Error())
		ctx.JSON(http.StatusInternalServerError, common.MakeUnknownErrorResp())
		return
	}

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(res))
}

type listRunItem struct {
	ID           uint    `json:"id"`
	Dataset      string  `json:"dataset"`
	Directed     bool    `json:"directed"`
	NodeCalls    int64   `json:"node_calls"`
	EdgeCalls    int64   `json:"edge_calls"`
	SkippedEdges int64   `json:"skipped_edges"`
	NodeLoadSec  float64 `json:"node_load_sec"`
	EdgeLoadSec  float64 `json:"edge_load_sec"`
	Time         int64   `json:"time"`
	TimeStr      string  `json:"time_str"`
}

func listRun(dataset string, limit int) ([]listRunItem, error) {
	runs, err := metadata.ListRuns(metadataDatabase(), dataset, limit)
	if err != nil {
		return nil, utils.WrapError(err, "select runs fail")
	}

	ret := make([]listRunItem, 0, len(runs))
	for _, run := range runs {
		ret = append(ret, listRunItem{
			ID:           run.ID,
			Dataset:      run.Dataset,
			Directed:     run.Directed,
			NodeCalls:    run.NodeCalls,
			EdgeCalls:    run.EdgeCalls,
			SkippedEdges: run.SkippedEdges,
			NodeLoadSec:  run.NodeLoadTime().Seconds(),
			EdgeLoadSec:  run.EdgeLoadTime().Seconds(),
			Time:         run.CreatedAt.Unix(),
			TimeStr:      run.CreatedAt.Format(time.RFC3339),
		})
	}

	return ret, nil
}
