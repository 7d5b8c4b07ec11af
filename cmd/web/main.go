package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/bigredeye/schoolbook/internal/config"
	"github.com/bigredeye/schoolbook/internal/web"
	"github.com/bigredeye/schoolbook/pkg/conf"
	zlog "github.com/bigredeye/schoolbook/pkg/log"
)

var configPath = flag.String("config", "", "Path to the config")

func run() error {
	flag.Parse()

	cfg, err := config.ParseConfig(conf.File(*configPath))
	if err != nil {
		return err
	}

	logger, err := zlog.Init(cfg.Log)
	if err != nil {
		return err
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return web.Run(ctx, cfg, logger)
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("%+v\n", err)
	}
}
