package metadata

import (
	"gorm.io/gorm"
	"xgraph-bench/utils"
)

/*
SaveDownload 保存一条下载记录，database 为 nil 时直接返回。
*/
func SaveDownload(database *gorm.DB, download *Download) error {
	if database == nil {
		return nil
	}

	if err := database.Create(download).Error; err != nil {
		return utils.WrapErrorf(err, "insert download [%#v] fail", download.FileName)
	}

	return nil
}

func SaveRun(database *gorm.DB, run *Run) error {
	if database == nil {
		return nil
	}

	if err := database.Create(run).Error; err != nil {
		return utils.WrapErrorf(err, "insert run of dataset [%#v] fail", run.Dataset)
	}

	return nil
}

/*
ListRuns 按时间倒序列出基准测试记录，dataset 为空时不过滤。
*/
func ListRuns(database *gorm.DB, dataset string, limit int) ([]Run, error) {
	query := database.Model(&Run{}).Order("created_at desc")
	if len(dataset) != 0 {
		query = query.Where(&Run{Dataset: dataset})
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var runs []Run
	if err := query.Find(&runs).Error; err != nil {
		return nil, utils.WrapError(err, "select runs fail")
	}

	return runs, nil
}

/*
LatestDownload 查询某个文件名最近一次的下载记录，不存在时返回 gorm.ErrRecordNotFound。
*/
func LatestDownload(database *gorm.DB, fileName string) (*Download, error) {
	var download Download
	err := database.
		Where(&Download{FileName: fileName}).
		Order("created_at desc").
		First(&download).Error
	if err != nil {
		return nil, utils.WrapErrorf(err, "select latest download of [%#v] fail", fileName)
	}

	return &download, nil
}
