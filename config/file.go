package config

import (
	"github.com/BurntSushi/toml"
	"xgraph-bench/utils"
)

type ResourceEntry struct {
	URL  string `toml:"url"`
	Name string `toml:"name"`
}

type MySQLEntry struct {
	User     string `toml:"user"`
	Password string `toml:"password"`
	Host     string `toml:"host"`
	Database string `toml:"database"`
}

/*
File 为 -config 指定的 TOML 配置文件，所有字段均可省略，省略时使用默认值或环境变量。

	BenchmarkDir 数据集目录；
	FetchTimeoutSec 建立连接与等待响应头的超时（秒）；
	Resources 覆盖 DefaultResources；
*/
type File struct {
	BenchmarkDir    string `toml:"benchmark_dir"`
	FetchTimeoutSec int    `toml:"fetch_timeout_sec"`

	Resources []ResourceEntry `toml:"resource"`

	Log struct {
		Dir          string `toml:"dir"`
		ConsoleLevel string `toml:"console_level"`
		FileLevel    string `toml:"file_level"`
	} `toml:"log"`

	Metadata struct {
		Enabled        bool       `toml:"enabled"`
		CheckMigration bool       `toml:"check_migration"`
		MySQL          MySQLEntry `toml:"mysql"`
	} `toml:"metadata"`

	Server struct {
		Host string `toml:"host"`
		Port int    `toml:"port"`
	} `toml:"server"`
}

func LoadFile(path string) (*File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, utils.WrapErrorf(err, "decode config file %#v fail", path)
	}

	return &f, nil
}
