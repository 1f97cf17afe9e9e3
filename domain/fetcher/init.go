package fetcher

import (
	"context"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"net"
	"net/http"
	"time"
)

const DefaultChunkSize = 8192

/*
FetchSetting 为下载器的配置。

	Client 用于下载的 HTTP 客户端，通常由 NewHTTPClient 构建；
	ChunkSize 每次写入磁盘的块大小；
	GetMetadataDatabase 为 nil 或返回 nil 时不记录下载结果；
*/
type FetchSetting struct {
	Client              *http.Client
	ChunkSize           int
	Logger              *logrus.Logger
	GetMetadataDatabase func() *gorm.DB
}

var globalSetting FetchSetting

func Init(setting *FetchSetting) {
	globalSetting = *setting
}

/*
NewHTTPClient 构建下载用的 HTTP 客户端，timeout 限制建立连接与等待响应头的时间，不限制整体下载时间。
*/
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.TLSHandshakeTimeout = timeout
	transport.ResponseHeaderTimeout = timeout

	return &http.Client{Transport: transport}
}

/*
EnsureDownloaded 保证 resource 存在于 targetDir 中，失败不会返回 error，而是记录在 Report 中。
*/
func EnsureDownloaded(ctx context.Context, resource Resource, targetDir string, overwrite bool) *Report {
	return newFetcher(&globalSetting).ensureDownloaded(ctx, resource, targetDir, overwrite)
}

/*
LoadData 依次下载所有资源，单个资源失败不影响其余资源。
*/
func LoadData(ctx context.Context, resources []Resource, targetDir string, overwrite bool) []*Report {
	return newFetcher(&globalSetting).loadData(ctx, resources, targetDir, overwrite)
}
