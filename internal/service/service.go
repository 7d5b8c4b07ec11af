package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bigredeye/schoolbook/internal/database"
	lf "github.com/bigredeye/schoolbook/internal/logfield"
	"github.com/bigredeye/schoolbook/internal/models"
)

// Service implements create/read/update/delete for one entity kind.
type Service[T models.Record[T]] struct {
	table    *database.Table[T]
	identity models.IdentityRule
	kind     string
	logger   *zap.Logger
}

func New[T models.Record[T]](table *database.Table[T], identity models.IdentityRule, logger *zap.Logger) *Service[T] {
	var zero T
	return &Service[T]{
		table:    table,
		identity: identity,
		kind:     zero.Kind(),
		logger:   logger.With(lf.Entity(zero.Kind()), zap.Stringer("identity", identity)),
	}
}

func (s *Service[T]) Kind() string {
	return s.kind
}

func (s *Service[T]) Identity() models.IdentityRule {
	return s.identity
}

// Create stores input and returns the stored record. Ids of server-assigned
// kinds are discarded before the insert.
func (s *Service[T]) Create(ctx context.Context, input T) (T, error) {
	if s.identity == models.ServerAssigned {
		input = input.WithID(0)
	}

	stored, err := s.table.Insert(ctx, input)
	if err != nil {
		if database.IsDuplicateKey(err) {
			return stored, &ConflictError{Kind: s.kind, ID: input.RecordID(), nested: err}
		}
		return stored, errors.Wrapf(err, "Failed to create %s", s.kind)
	}

	s.logger.Debug("Created record", lf.RecordID(stored.RecordID()))
	return stored, nil
}

// Read returns nil without an error when the record does not exist.
func (s *Service[T]) Read(ctx context.Context, id int) (*T, error) {
	record, err := s.table.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read %s", s.kind)
	}
	return record, nil
}

// Update replaces every field of record id with input. For client-assigned
// kinds the id carried by input is the one stored, even when it differs
// from id.
func (s *Service[T]) Update(ctx context.Context, id int, input T) (T, error) {
	if s.identity == models.ServerAssigned {
		input = input.WithID(id)
	}

	var updated T
	err := s.table.Session(ctx, func(session *database.Session[T]) error {
		existing, err := session.FindByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return &NotFoundError{Kind: s.kind, ID: id}
		}
		updated, err = session.Replace(id, input)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return updated, err
		case database.IsDuplicateKey(err):
			return updated, &ConflictError{Kind: s.kind, ID: input.RecordID(), nested: err}
		default:
			return updated, errors.Wrapf(err, "Failed to update %s", s.kind)
		}
	}

	if updated.RecordID() != id {
		s.logger.Info("Record id changed by update",
			lf.RecordID(id),
			zap.Int("new_record_id", updated.RecordID()),
		)
	}
	return updated, nil
}

// Delete removes record id if it exists. Deleting an absent record is not
// an error.
func (s *Service[T]) Delete(ctx context.Context, id int) error {
	removed := false
	err := s.table.Session(ctx, func(session *database.Session[T]) error {
		existing, err := session.FindByID(id)
		if err != nil || existing == nil {
			return err
		}
		removed, err = session.DeleteByID(id)
		return err
	})
	if err != nil {
		return errors.Wrapf(err, "Failed to delete %s", s.kind)
	}

	s.logger.Debug("Deleted record", lf.RecordID(id), zap.Bool("removed", removed))
	return nil
}
