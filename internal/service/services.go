package service

import (
	"go.uber.org/zap"

	"github.com/bigredeye/schoolbook/internal/database"
	"github.com/bigredeye/schoolbook/internal/models"
)

// Services holds one Service per exposed entity kind. Subject is reserved
// and has none.
type Services struct {
	Students *Service[models.Student]
	Teachers *Service[models.Teacher]
	Classes  *Service[models.Class]
	Grades   *Service[models.Grade]
}

func NewServices(db *database.DataBase, logger *zap.Logger) *Services {
	logger = logger.Named("service")
	return &Services{
		Students: New(database.NewTable[models.Student](db), models.ClientAssigned, logger),
		Teachers: New(database.NewTable[models.Teacher](db), models.ServerAssigned, logger),
		Classes:  New(database.NewTable[models.Class](db), models.ServerAssigned, logger),
		Grades:   New(database.NewTable[models.Grade](db), models.ServerAssigned, logger),
	}
}
