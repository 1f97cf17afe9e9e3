package metadata

const (
	DownloadStatusExisted    uint = 1
	DownloadStatusDownloaded uint = 2
	DownloadStatusFailed     uint = 3
)
