package bench

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"io"
)

/*
BenchSetting 为基准测试的配置。

	Out 计时结果的输出位置，通常为 os.Stdout；
	ExportDir 非空时，每次加载完成后将图以 csv 导出到该目录；
	GetMetadataDatabase 为 nil 或返回 nil 时不记录运行结果；
*/
type BenchSetting struct {
	Out                 io.Writer
	ExportDir           string
	Logger              *logrus.Logger
	GetMetadataDatabase func() *gorm.DB
}

var globalSetting BenchSetting

func Init(setting *BenchSetting) {
	globalSetting = *setting
}

/*
RunBenchmark 加载 dirPath 下的 <name>.v 与 <name>.e 并分别统计节点、边的插入耗时。

任何错误（文件缺失、权重格式错误）都会中止本次运行，不输出部分结果。
*/
func RunBenchmark(dirPath string) (*Result, error) {
	return newRunner(&globalSetting).run(NewDataset(dirPath))
}

/*
RunAll 按名称顺序对 benchmarkDir 下的所有数据集运行 RunBenchmark，遇到第一个错误即停止。

每个数据集开始前向 Out 输出一行 "== <dataset>"。返回的 Result 不持有 Graph，需要图时设置 ExportDir。
*/
func RunAll(benchmarkDir string) ([]*Result, error) {
	return newRunner(&globalSetting).runAll(benchmarkDir)
}
