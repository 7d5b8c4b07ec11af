package web

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bigredeye/schoolbook/internal/config"
	lf "github.com/bigredeye/schoolbook/internal/logfield"
)

type webService struct {
	server *server
	config *config.Config
	log    *zap.Logger
}

func newWebService(server *server, module string) webService {
	return webService{server, server.config, server.logger.With(lf.Module(module))}
}

// requestLog tags the service logger with the id of the current request.
func (s webService) requestLog(c *gin.Context) *zap.Logger {
	return s.log.With(lf.RequestID(c.GetString(requestIDKey)))
}
