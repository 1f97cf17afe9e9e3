package metadata

import (
	"gorm.io/gorm"
	"time"
)

/*
Download 记录一次数据集压缩包的下载结果。

	URL 下载地址；
	FileName 本地文件名，同时是缓存的唯一标识；
	Path 本地完整路径；
	Status 见 DownloadStatus*；
	Bytes 本次写入的字节数，命中缓存时为已有文件的大小；
	Error 失败原因；
*/
type Download struct {
	gorm.Model

	URL      string `gorm:"type:varchar(512) not null"`
	FileName string `gorm:"type:varchar(128) not null;index:idx_downloads_file_name"`
	Path     string `gorm:"type:varchar(512)"`
	Status   uint   `gorm:"comment:EXISTED=1,DOWNLOADED=2,FAILED=3"`
	Bytes    int64
	Error    string `gorm:"type:text"`
}

/*
Run 记录一次基准测试（加载一个数据集）的结果。

	Dataset 数据集名，即目录名；
	NodeCalls / EdgeCalls 节点、边的插入调用次数；
	SkippedEdges 字段数不为 2 或 3 而被跳过的边行数；
	NodeLoadNanos / EdgeLoadNanos 累计插入耗时（纳秒）；
*/
type Run struct {
	gorm.Model

	Dataset  string `gorm:"type:varchar(128) not null;index:idx_runs_dataset"`
	Path     string `gorm:"type:varchar(512)"`
	Directed bool

	NodeCalls    int64
	EdgeCalls    int64
	SkippedEdges int64

	NodeLoadNanos int64
	EdgeLoadNanos int64
}

func (r *Run) NodeLoadTime() time.Duration {
	return time.Duration(r.NodeLoadNanos)
}

func (r *Run) EdgeLoadTime() time.Duration {
	return time.Duration(r.EdgeLoadNanos)
}
