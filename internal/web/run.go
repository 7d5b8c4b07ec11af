package web

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bigredeye/schoolbook/internal/config"
	"github.com/bigredeye/schoolbook/internal/database"
	"github.com/bigredeye/schoolbook/internal/service"
)

func Run(ctx context.Context, config *config.Config, logger *zap.Logger) error {
	db, err := database.Connect(ctx, logger, &config.DataBase)
	if err != nil {
		return errors.Wrap(err, "Failed to open database")
	}
	defer db.Close()

	s := newServer(config, logger, db, service.NewServices(db, logger))

	return errors.Wrap(s.run(ctx), "Server failed")
}
