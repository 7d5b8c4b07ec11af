package web

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bigredeye/schoolbook/api"
	lf "github.com/bigredeye/schoolbook/internal/logfield"
	"github.com/bigredeye/schoolbook/internal/models"
	"github.com/bigredeye/schoolbook/internal/service"
)

type entityBackend[T any] interface {
	Kind() string
	Create(ctx context.Context, input T) (T, error)
	Read(ctx context.Context, id int) (*T, error)
	Update(ctx context.Context, id int, input T) (T, error)
	Delete(ctx context.Context, id int) error
}

type entityService[T models.Record[T], R api.Request[T]] struct {
	webService
	kind    string
	backend entityBackend[T]
}

func setupEntityService[T models.Record[T], R api.Request[T]](server *server, r *gin.Engine, backend entityBackend[T]) {
	kind := backend.Kind()
	s := entityService[T, R]{
		webService: newWebService(server, "entity"),
		kind:       kind,
		backend:    backend,
	}
	s.log = s.log.With(lf.Entity(kind))

	prefix := api.Prefixes[kind]
	g := r.Group(prefix)
	g.POST(prefix+"/", s.create)
	g.GET(prefix+"/:id", s.read)
	g.PUT(prefix+"/:id", s.update)
	g.DELETE(prefix+"/:id", s.delete)
}

func (s entityService[T, R]) create(c *gin.Context) {
	input, ok := s.bind(c)
	if !ok {
		return
	}

	stored, err := s.backend.Create(c.Request.Context(), input)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

// read answers a miss with a null body and status 200.
func (s entityService[T, R]) read(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	record, err := s.backend.Read(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (s entityService[T, R]) update(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}
	input, ok := s.bind(c)
	if !ok {
		return
	}

	updated, err := s.backend.Update(c.Request.Context(), id, input)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s entityService[T, R]) delete(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	if err := s.backend.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, &api.MessageResponse{
		Message: fmt.Sprintf("%s deleted", s.kind),
	})
}

func (s entityService[T, R]) pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		s.invalid(c, errors.Wrap(err, "id must be an integer"))
		return 0, false
	}
	return id, true
}

func (s entityService[T, R]) bind(c *gin.Context) (T, bool) {
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		var zero T
		s.invalid(c, err)
		return zero, false
	}
	return req.Model(), true
}

func (s entityService[T, R]) invalid(c *gin.Context, err error) {
	s.requestLog(c).Warn("Invalid request", zap.Error(err))
	c.JSON(http.StatusUnprocessableEntity, &api.ErrorResponse{Detail: err.Error()})
}

// fail maps service errors to responses. Only a missing record on update has
// its own status; id conflicts stay unclassified server errors.
func (s entityService[T, R]) fail(c *gin.Context, err error) {
	log := s.requestLog(c)
	switch {
	case errors.Is(err, service.ErrNotFound):
		log.Warn("Record not found", zap.Error(err))
		c.JSON(http.StatusNotFound, &api.ErrorResponse{Detail: err.Error()})
	case errors.Is(err, service.ErrConflict):
		log.Error("Record id conflict", zap.Error(err))
		c.JSON(http.StatusInternalServerError, &api.ErrorResponse{Detail: http.StatusText(http.StatusInternalServerError)})
	default:
		log.Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, &api.ErrorResponse{Detail: http.StatusText(http.StatusInternalServerError)})
	}
}
