package metadata

import (
	"fmt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"os"
	"xgraph-bench/config"
	"xgraph-bench/logging"
	"xgraph-bench/utils"
)

type MySQLConfig struct {
	User     string
	Password string
	Host     string
	Database string
}

func (c *MySQLConfig) dsn() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Database)
}

/*
Config 为元数据库配置，Enabled 为 false 时不连接数据库，所有记录操作被跳过。
*/
type Config struct {
	Enabled        bool
	MySQL          MySQLConfig
	CheckMigration bool
}

func GenerateTestConfig() *Config {
	return &Config{
		Enabled: true,
		MySQL: MySQLConfig{
			User:     envOr(config.EnvKeyMySQLUser, "metadata_test"),
			Password: envOr(config.EnvKeyMySQLPassword, "metadata_test"),
			Host:     envOr(config.EnvKeyMySQLHost, "localhost"),
			Database: envOr(config.EnvKeyMySQLDatabase, "metadata_test"),
		},
		CheckMigration: true,
	}
}

func envOr(key, def string) string {
	if val := os.Getenv(key); len(val) != 0 {
		return val
	}

	return def
}

var db *gorm.DB

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.New(&sqlLogger{logger: logging.NewLogger()}, logger.Config{LogLevel: logger.Info}),
	}
}

func CreateDatabase(config *Config) (*gorm.DB, error) {
	database, err := gorm.Open(mysql.Open(config.MySQL.dsn()), gormConfig())
	if err != nil {
		return nil, utils.WrapError(err, "db connection fail")
	}

	if config.CheckMigration {
		err = migration(database)
		if err != nil {
			return nil, utils.WrapError(err, "migration fail")
		}
	}

	return database, nil
}

func migration(db *gorm.DB) error {
	tables := []interface{}{
		&Download{}, &Run{},
	}
	err := db.
		Set("gorm:table_options", "ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_0900_ai_ci").
		AutoMigrate(tables...)
	if err != nil {
		return utils.WrapError(err, "AutoMigrate fail")
	}

	return nil
}

func Init(config *Config) {
	if !config.Enabled {
		db = nil
		return
	}

	database, err := CreateDatabase(config)
	if err != nil {
		panic(err)
	}

	db = database
}

/*
DatabaseRaw 返回全局的数据库连接，未启用时为 nil。
*/
func DatabaseRaw() *gorm.DB {
	return db
}
