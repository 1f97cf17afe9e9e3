package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xgraph.toml")
	content := `
benchmark_dir = "/data/benchmark"
fetch_timeout_sec = 5

[[resource]]
url = "http://localhost/test-bfs-directed.tar.zst"

[[resource]]
url = "http://localhost/archive?id=1"
name = "custom.tar.zst"

[log]
dir = "logs"
console_level = "debug"

[metadata]
enabled = true
[metadata.mysql]
host = "localhost:3306"
database = "xgraph"

[server]
port = 9000
`
	require.Nil(t, os.WriteFile(path, []byte(content), 0644))

	f, err := LoadFile(path)
	require.Nil(t, err)

	assert.Equal(t, "/data/benchmark", f.BenchmarkDir)
	assert.Equal(t, 5, f.FetchTimeoutSec)
	require.Len(t, f.Resources, 2)
	assert.Equal(t, "", f.Resources[0].Name)
	assert.Equal(t, "custom.tar.zst", f.Resources[1].Name)
	assert.Equal(t, "debug", f.Log.ConsoleLevel)
	assert.True(t, f.Metadata.Enabled)
	assert.Equal(t, "xgraph", f.Metadata.MySQL.Database)
	assert.Equal(t, 9000, f.Server.Port)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.NotNil(t, err)
}

func TestDefaultResources(t *testing.T) {
	assert.Len(t, DefaultResources, 14)
	for _, url := range DefaultResources {
		assert.Contains(t, url, "/graphalytics/")
		assert.Equal(t, ".tar.zst", url[len(url)-len(".tar.zst"):])
	}
}
