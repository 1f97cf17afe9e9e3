package server

import (
	"fmt"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"net/http"
	"xgraph-bench/server/common"
	"xgraph-bench/server/handler"
)

/*
Config 为报表服务的配置。

	BenchmarkDir 数据集目录；
	GetMetadataDatabase 为 nil 时 /listrun 返回 503；
*/
type Config struct {
	Host      string
	Port      int
	DebugMode bool

	BenchmarkDir        string
	GetMetadataDatabase func() *gorm.DB
}

type Server struct {
	engine *gin.Engine
	config *Config
}

func New(config *Config) *Server {
	if !config.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	handler.Init(&handler.HandlerSetting{
		BenchmarkDir:        config.BenchmarkDir,
		GetMetadataDatabase: config.GetMetadataDatabase,
	})

	eng := gin.New()

	eng.Use(gin.Recovery())
	eng.Use(common.LogRequest)
	eng.Use(cors.Default())

	eng.GET("/test/coffee", coffeeHandler)

	eng.GET("/listdataset", handler.ListDataset)
	eng.GET("/datasetinfo", handler.GetDatasetInfo)
	eng.GET("/listrun", handler.ListRun)

	return &Server{
		engine: eng,
		config: config,
	}
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

func (s *Server) RunServer() error {
	return s.engine.Run(s.Addr())
}

func coffeeHandler(ctx *gin.Context) {
	ctx.String(http.StatusTeapot, "I'm a teapot")
}
