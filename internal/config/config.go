package config

import (
	"time"

	"github.com/pkg/errors"

	"github.com/bigredeye/schoolbook/pkg/conf"
	zlog "github.com/bigredeye/schoolbook/pkg/log"
)

const EnvPrefix = "SCHOOL"

type DataBase struct {
	Driver string
	// Path is the sqlite database file.
	Path string

	Host    string
	Port    uint16
	User    string
	Pass    string
	Name    string
	SSLMode string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectRetries  int
}

type Config struct {
	Server struct {
		ListenAddress   string
		ShutdownTimeout time.Duration
		Release         bool
	}

	DataBase DataBase

	Log zlog.Config
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"Server.ListenAddress":   ":8000",
		"Server.ShutdownTimeout": 10 * time.Second,
		"Server.Release":         true,

		"DataBase.Driver":         "sqlite",
		"DataBase.Path":           "./school.db",
		"DataBase.Port":           5432,
		"DataBase.SSLMode":        "disable",
		"DataBase.MaxOpenConns":   10,
		"DataBase.MaxIdleConns":   5,
		"DataBase.ConnectRetries": 5,

		"Log.Development": true,
		"Log.MaxSizeMB":   100,
		"Log.MaxBackups":  3,
		"Log.MaxAgeDays":  28,
	}
}

func ParseConfig(options ...conf.Option) (*Config, error) {
	config := &Config{}
	options = append([]conf.Option{conf.EnvPrefix(EnvPrefix), conf.Defaults(defaults())}, options...)
	if err := conf.ParseConfig(config, options...); err != nil {
		return nil, errors.Wrap(err, "Failed to parse config")
	}
	return config, nil
}
