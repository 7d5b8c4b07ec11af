package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bigredeye/schoolbook/api"
)

type healthService struct {
	webService
}

func setupHealthService(server *server, r *gin.Engine) {
	s := healthService{newWebService(server, "health")}

	r.GET("/healthz", s.health)
}

func (s healthService) health(c *gin.Context) {
	if err := s.server.db.Ping(c.Request.Context()); err != nil {
		s.requestLog(c).Error("Database ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, &api.HealthResponse{Status: "unavailable"})
		return
	}
	c.JSON(http.StatusOK, &api.HealthResponse{Status: "ok"})
}
