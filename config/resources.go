package config

import "time"

const (
	BenchmarkDirName = "benchmark"
	DefaultDataset   = "wiki-Talk"

	DefaultFetchTimeout = 60 * time.Second
	DefaultServerPort   = 8003
)

const resourceHost = "https://pub-383410a98aef4cb686f0c7601eddd25f.r2.dev/graphalytics/"

/*
DefaultResources 为需要下载的 graphalytics 数据集压缩包，下载后不解压。
*/
var DefaultResources = []string{
	resourceHost + "wiki-Talk.tar.zst",
	resourceHost + "dota-league.tar.zst",
	resourceHost + "test-bfs-directed.tar.zst",
	resourceHost + "test-bfs-undirected.tar.zst",
	resourceHost + "test-cdlp-directed.tar.zst",
	resourceHost + "test-cdlp-undirected.tar.zst",
	resourceHost + "test-pr-directed.tar.zst",
	resourceHost + "test-pr-undirected.tar.zst",
	resourceHost + "test-lcc-directed.tar.zst",
	resourceHost + "test-lcc-undirected.tar.zst",
	resourceHost + "test-wcc-directed.tar.zst",
	resourceHost + "test-wcc-undirected.tar.zst",
	resourceHost + "test-sssp-directed.tar.zst",
	resourceHost + "test-sssp-undirected.tar.zst",
}
