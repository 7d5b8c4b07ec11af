package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/bigredeye/schoolbook/api"
	"github.com/bigredeye/schoolbook/internal/config"
	"github.com/bigredeye/schoolbook/internal/database"
	lf "github.com/bigredeye/schoolbook/internal/logfield"
	"github.com/bigredeye/schoolbook/internal/models"
	"github.com/bigredeye/schoolbook/internal/service"
)

type server struct {
	config *config.Config
	logger *zap.Logger

	db       *database.DataBase
	services *service.Services
}

func newServer(
	config *config.Config,
	logger *zap.Logger,
	db *database.DataBase,
	services *service.Services,
) *server {
	return &server{
		config:   config,
		logger:   logger,
		db:       db,
		services: services,
	}
}

func (s *server) router() *gin.Engine {
	if s.config.Server.Release {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(requestID)
	r.Use(ginzap.GinzapWithConfig(s.logger, &ginzap.Config{
		TimeFormat:   time.RFC3339,
		UTC:          true,
		DefaultLevel: zapcore.InfoLevel,
		Context: func(c *gin.Context) []zapcore.Field {
			return []zapcore.Field{lf.RequestID(c.GetString(requestIDKey))}
		},
	}))
	r.Use(ginzap.RecoveryWithZap(s.logger, true))

	setupEntityService[models.Student, api.StudentRequest](s, r, s.services.Students)
	setupEntityService[models.Teacher, api.TeacherRequest](s, r, s.services.Teachers)
	setupEntityService[models.Class, api.ClassRequest](s, r, s.services.Classes)
	setupEntityService[models.Grade, api.GradeRequest](s, r, s.services.Grades)
	setupHealthService(s, r)

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong "+fmt.Sprint(time.Now().Unix()))
	})

	return r
}

func (s *server) run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.config.Server.ListenAddress,
		Handler: s.router(),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("Starting server", zap.String("bind_address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
