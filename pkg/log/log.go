package log

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Development bool
	Level       string

	// File, when set, receives a JSON copy of every entry and is rotated
	// by size.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var logger *zap.Logger = zap.NewNop()

func Init(conf Config) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if conf.Development {
		config = zap.NewDevelopmentConfig()
	}
	if len(conf.Level) > 0 {
		level, err := zap.ParseAtomicLevel(conf.Level)
		if err != nil {
			return nil, err
		}
		config.Level = level
	}

	var file zapcore.Core
	if len(conf.File) > 0 {
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   conf.File,
			MaxSize:    conf.MaxSizeMB,
			MaxBackups: conf.MaxBackups,
			MaxAge:     conf.MaxAgeDays,
		})
		file = zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), w, config.Level)
	}

	return initLogger(config, file), nil
}

func initLogger(config zap.Config, file zapcore.Core) *zap.Logger {
	options := []zap.Option{zap.AddStacktrace(zap.WarnLevel)}
	if file != nil {
		options = append(options, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, file)
		}))
	}

	var err error
	logger, err = config.Build(options...)
	if err != nil {
		fmt.Printf("Failed to init zap logger: %v", err)
		os.Exit(1)
	}
	zap.ReplaceGlobals(logger)
	return logger
}

func Sync() {
	logger.Sync()
}
