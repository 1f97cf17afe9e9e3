package handler

import (
	"gorm.io/gorm"
)

/*
HandlerSetting 为各个 handler 共享的配置。

	BenchmarkDir 数据集与压缩包所在目录；
	GetMetadataDatabase 为 nil 或返回 nil 时，依赖数据库的接口返回 CodeStoreDisabled；
*/
type HandlerSetting struct {
	BenchmarkDir        string
	GetMetadataDatabase func() *gorm.DB
}

var globalSetting HandlerSetting

func Init(setting *HandlerSetting) {
	globalSetting = *setting
}

func metadataDatabase() *gorm.DB {
	if globalSetting.GetMetadataDatabase == nil {
		return nil
	}

	return globalSetting.GetMetadataDatabase()
}
