package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"path/filepath"
	"time"
	"xgraph-bench/config"
	"xgraph-bench/domain/bench"
	"xgraph-bench/domain/fetcher"
	"xgraph-bench/logging"
	"xgraph-bench/repository/metadata"
	"xgraph-bench/server"
	"xgraph-bench/utils"
)

var fileConf = &config.File{}

func parseLevel(level string, def logrus.Level) logrus.Level {
	if len(level) == 0 {
		return def
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return def
	}

	return parsed
}

func loggingConf(verbose bool) *logging.Config {
	consoleLevel := parseLevel(fileConf.Log.ConsoleLevel, logrus.InfoLevel)
	if verbose {
		consoleLevel = logrus.DebugLevel
	}

	dir := fileConf.Log.Dir
	if len(dir) == 0 {
		dir = os.Getenv(config.EnvKeyLogDir)
	}

	return &logging.Config{
		FileLevel:      parseLevel(fileConf.Log.FileLevel, logrus.DebugLevel),
		ConsoleLevel:   consoleLevel,
		FileDir:        dir,
		DisableConsole: false,
	}
}

func benchmarkDir() string {
	if len(fileConf.BenchmarkDir) != 0 {
		return fileConf.BenchmarkDir
	}

	if dir := os.Getenv(config.EnvKeyBenchmarkDir); len(dir) != 0 {
		return dir
	}

	return config.BenchmarkDirName
}

func metadataConf() *metadata.Config {
	mysql := fileConf.Metadata.MySQL

	return &metadata.Config{
		Enabled: fileConf.Metadata.Enabled || len(os.Getenv(config.EnvKeyMySQLHost)) != 0,
		MySQL: metadata.MySQLConfig{
			User:     firstNonEmpty(mysql.User, os.Getenv(config.EnvKeyMySQLUser)),
			Password: firstNonEmpty(mysql.Password, os.Getenv(config.EnvKeyMySQLPassword)),
			Host:     firstNonEmpty(mysql.Host, os.Getenv(config.EnvKeyMySQLHost)),
			Database: firstNonEmpty(mysql.Database, os.Getenv(config.EnvKeyMySQLDatabase)),
		},
		CheckMigration: fileConf.Metadata.CheckMigration,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if len(v) != 0 {
			return v
		}
	}

	return ""
}

func fetchConf() *fetcher.FetchSetting {
	timeout := utils.SecondsOrDefault(os.Getenv(config.EnvKeyFetchTimeoutSec), config.DefaultFetchTimeout)
	if fileConf.FetchTimeoutSec > 0 {
		timeout = time.Duration(fileConf.FetchTimeoutSec) * time.Second
	}

	return &fetcher.FetchSetting{
		Client:              fetcher.NewHTTPClient(timeout),
		ChunkSize:           fetcher.DefaultChunkSize,
		Logger:              logging.NewLogger(),
		GetMetadataDatabase: metadata.DatabaseRaw,
	}
}

func benchConf() *bench.BenchSetting {
	return &bench.BenchSetting{
		Out:                 os.Stdout,
		Logger:              logging.NewLogger(),
		GetMetadataDatabase: metadata.DatabaseRaw,
	}
}

func serverConf(host string, port int, debug bool) *server.Config {
	return &server.Config{
		Host:                host,
		Port:                port,
		DebugMode:           debug,
		BenchmarkDir:        benchmarkDir(),
		GetMetadataDatabase: metadata.DatabaseRaw,
	}
}

func resources() []fetcher.Resource {
	if len(fileConf.Resources) == 0 {
		return fetcher.ResourcesFromURLs(config.DefaultResources)
	}

	ret := make([]fetcher.Resource, 0, len(fileConf.Resources))
	for _, entry := range fileConf.Resources {
		ret = append(ret, fetcher.NewResource(entry.URL, entry.Name))
	}

	return ret
}

func loadData(logger *logrus.Logger, args []string) error {
	flags := flag.NewFlagSet(cmdLoadData, flag.ContinueOnError)
	overwrite := flags.Bool("overwrite", false, "download again even if the file exists")

	if err := flags.Parse(args); err != nil {
		return utils.WrapError(err, "flags parse fail")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fetcher.Init(fetchConf())

	dir := benchmarkDir()
	reports := fetcher.LoadData(ctx, resources(), dir, *overwrite)

	summary := fetcher.Summarize(reports)
	logger.Infof("load data into %s: %d downloaded, %d existed, %d failed",
		dir, summary[fetcher.StatusDownloaded], summary[fetcher.StatusExisted], summary[fetcher.StatusFailed])

	return nil
}

func benchmark(_ *logrus.Logger, args []string) error {
	flags := flag.NewFlagSet(cmdBenchmark, flag.ContinueOnError)
	all := flags.Bool("all", false, "benchmark every dataset under the benchmark dir")
	exportDir := flags.String("export", "", "write the loaded graph as csv into this dir")

	if err := flags.Parse(args); err != nil {
		return utils.WrapError(err, "flags parse fail")
	}

	conf := benchConf()
	conf.ExportDir = *exportDir
	bench.Init(conf)

	if *all {
		if flags.NArg() > 0 {
			return utils.WrapErrorf(errUnexpectedArgs, "-all with %v", flags.Args())
		}

		if _, err := bench.RunAll(benchmarkDir()); err != nil {
			return utils.WrapError(err, "run all fail")
		}
		return nil
	}

	dir := filepath.Join(benchmarkDir(), config.DefaultDataset)
	if flags.NArg() > 0 {
		dir = flags.Arg(0)
	}

	if _, err := bench.RunBenchmark(dir); err != nil {
		return utils.WrapErrorf(err, "run benchmark %#v fail", dir)
	}

	return nil
}

func serve(_ *logrus.Logger, args []string) error {
	port := config.DefaultServerPort
	if fileConf.Server.Port > 0 {
		port = fileConf.Server.Port
	}

	flags := flag.NewFlagSet(cmdServe, flag.ContinueOnError)
	host := flags.String("host", fileConf.Server.Host, "listen host")
	portFlag := flags.Int("port", port, "listen port")
	debug := flags.Bool("debug", false, "gin debug mode")

	if err := flags.Parse(args); err != nil {
		return utils.WrapError(err, "flags parse fail")
	}

	s := server.New(serverConf(*host, *portFlag, *debug))
	return s.RunServer()
}

const (
	cmdLoadData  = "load-data"
	cmdBenchmark = "benchmark"
	cmdServe     = "serve"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errUnexpectedArgs = errors.New("unexpected arguments")
)

func usage(out *os.File) {
	fmt.Fprintf(out, "usage: %s [-v] [-config file.toml] <%s|%s|%s> [args...]\n",
		filepath.Base(os.Args[0]), cmdLoadData, cmdBenchmark, cmdServe)
}

func main() {
	jumpTable := map[string]func(*logrus.Logger, []string) error{
		cmdLoadData:  loadData,
		cmdBenchmark: benchmark,
		cmdServe:     serve,
	}

	flags := flag.NewFlagSet("", flag.ContinueOnError)
	verbose := flags.Bool("v", false, "verbose")
	configPath := flags.String("config", "", "toml config file")

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if len(*configPath) != 0 {
		f, err := config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fileConf = f
	}

	logging.SetDefaultConfig(loggingConf(*verbose))
	logger := logging.NewLogger()

	if flags.NArg() == 0 {
		usage(os.Stderr)
		os.Exit(2)
	}

	subName := flags.Arg(0)
	act, ok := jumpTable[subName]
	if !ok {
		logger.WithError(errUnknownCommand).Errorf("%s: %v", subName, errUnknownCommand)
		usage(os.Stderr)
		os.Exit(2)
	}

	metadata.Init(metadataConf())

	if err := act(logger, flags.Args()[1:]); err != nil {
		logger.WithError(err).Errorf("%s error=\n%v", subName, err)
		os.Exit(1)
	}
}
