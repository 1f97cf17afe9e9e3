package common

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"time"
	"xgraph-bench/logging"
)

/*
LogRequest 记录每个请求的方法、路径、状态码与耗时。
*/
func LogRequest(ctx *gin.Context) {
	start := time.Now()

	ctx.Next()

	entry := logging.Default().WithFields(logrus.Fields{
		"method":  ctx.Request.Method,
		"path":    ctx.Request.URL.Path,
		"query":   ctx.Request.URL.RawQuery,
		"status":  ctx.Writer.Status(),
		"latency": time.Since(start).String(),
		"client":  ctx.ClientIP(),
	})

	if len(ctx.Errors) != 0 {
		entry.Warnf("request done with errors: %s", ctx.Errors.String())
		return
	}

	entry.Debugf("request done")
}
