package config

const (
	EnvKeyBenchmarkDir    = "XGRAPH_BENCHMARK_DIR"
	EnvKeyLogDir          = "XGRAPH_LOG_DIR"
	EnvKeyFetchTimeoutSec = "XGRAPH_FETCH_TIMEOUT_SEC"

	EnvKeyMySQLUser     = "XGRAPH_MYSQL_USER"
	EnvKeyMySQLPassword = "XGRAPH_MYSQL_PASSWORD"
	EnvKeyMySQLHost     = "XGRAPH_MYSQL_HOST"
	EnvKeyMySQLDatabase = "XGRAPH_MYSQL_DATABASE"
)
