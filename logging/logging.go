package logging

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

const logFileName = "xgraph-bench.log"

/*
Config 描述日志的输出方式。

	FileLevel 写入文件的最低级别；
	ConsoleLevel 输出到终端（stderr）的最低级别；
	FileDir 日志文件目录，为空时不写文件；
	DisableConsole 关闭终端输出；
*/
type Config struct {
	FileLevel      logrus.Level
	ConsoleLevel   logrus.Level
	FileDir        string
	DisableConsole bool
}

func GenerateTestConfig(t testing.TB) *Config {
	return &Config{
		FileLevel:      logrus.DebugLevel,
		ConsoleLevel:   logrus.DebugLevel,
		FileDir:        t.TempDir(),
		DisableConsole: false,
	}
}

var (
	configLock    sync.RWMutex
	defaultConfig = Config{
		FileLevel:    logrus.DebugLevel,
		ConsoleLevel: logrus.InfoLevel,
	}

	fileWriterLock sync.Mutex
	fileWriters    = make(map[string]*lumberjack.Logger)

	defaultLogger     *logrus.Logger
	defaultLoggerLock sync.Mutex
)

func SetDefaultConfig(config *Config) {
	configLock.Lock()
	defaultConfig = *config
	configLock.Unlock()

	defaultLoggerLock.Lock()
	defaultLogger = nil
	defaultLoggerLock.Unlock()
}

func getDefaultConfig() Config {
	configLock.RLock()
	defer configLock.RUnlock()

	return defaultConfig
}

/*
Default 返回共享的 logger，在 SetDefaultConfig 后重新构建。
*/
func Default() *logrus.Logger {
	defaultLoggerLock.Lock()
	defer defaultLoggerLock.Unlock()

	if defaultLogger == nil {
		defaultLogger = NewLogger()
	}

	return defaultLogger
}

func NewLogger() *logrus.Logger {
	return NewLoggerWithConfig(getDefaultConfig())
}

func NewLoggerWithConfig(config Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	// 由 levelHook 按目标分别过滤级别，logger 本身放行两者中较低的级别
	logger.SetOutput(io.Discard)
	logger.SetLevel(lowerLevel(config))

	if !config.DisableConsole {
		logger.AddHook(&levelHook{writer: os.Stderr, level: config.ConsoleLevel, formatter: logger.Formatter})
	}

	if len(config.FileDir) != 0 {
		logger.AddHook(&levelHook{writer: fileWriter(config.FileDir), level: config.FileLevel, formatter: logger.Formatter})
	}

	return logger
}

func lowerLevel(config Config) logrus.Level {
	level := logrus.PanicLevel
	if !config.DisableConsole && config.ConsoleLevel > level {
		level = config.ConsoleLevel
	}
	if len(config.FileDir) != 0 && config.FileLevel > level {
		level = config.FileLevel
	}

	return level
}

func fileWriter(dir string) io.Writer {
	fileWriterLock.Lock()
	defer fileWriterLock.Unlock()

	path := filepath.Join(dir, logFileName)
	if w, ok := fileWriters[path]; ok {
		return w
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    64, // MB
		MaxBackups: 8,
		MaxAge:     30,
	}
	fileWriters[path] = w

	return w
}
