package fetcher

import (
	"xgraph-bench/repository/metadata"
)

type Status uint

const (
	StatusExisted    = Status(metadata.DownloadStatusExisted)
	StatusDownloaded = Status(metadata.DownloadStatusDownloaded)
	StatusFailed     = Status(metadata.DownloadStatusFailed)
)

func (s Status) String() string {
	switch s {
	case StatusExisted:
		return "existed"
	case StatusDownloaded:
		return "downloaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

/*
Report 为一次 EnsureDownloaded 的结果。

	Bytes 本次写入的字节数，StatusExisted 时为已有文件大小；
	Err 仅在 StatusFailed 时非 nil；
*/
type Report struct {
	Resource Resource
	Path     string
	Status   Status
	Bytes    int64
	Err      error
}

func (r *Report) toModel() *metadata.Download {
	download := &metadata.Download{
		URL:      r.Resource.URL,
		FileName: r.Resource.FileName,
		Path:     r.Path,
		Status:   uint(r.Status),
		Bytes:    r.Bytes,
	}
	if r.Err != nil {
		download.Error = r.Err.Error()
	}

	return download
}

/*
Summarize 统计一批 Report 中各状态的数量。
*/
func Summarize(reports []*Report) map[Status]int {
	ret := make(map[Status]int, 3)
	for _, r := range reports {
		ret[r.Status]++
	}

	return ret
}
