package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bigredeye/schoolbook/internal/models"
)

// Table is the gateway to the rows of one entity kind.
type Table[T models.Record[T]] struct {
	db *DataBase
}

func NewTable[T models.Record[T]](db *DataBase) *Table[T] {
	return &Table[T]{db: db}
}

// Session is bound to a single connection for the duration of Table.Session.
type Session[T models.Record[T]] struct {
	conn *gorm.DB
}

// Session hands fn a dedicated connection. The connection goes back to the
// pool when fn returns, whatever the outcome.
func (t *Table[T]) Session(ctx context.Context, fn func(s *Session[T]) error) error {
	return t.db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		return fn(&Session[T]{conn: tx.Session(&gorm.Session{NewDB: true})})
	})
}

func (t *Table[T]) Insert(ctx context.Context, record T) (stored T, err error) {
	err = t.Session(ctx, func(s *Session[T]) error {
		stored, err = s.Insert(record)
		return err
	})
	return
}

func (t *Table[T]) FindByID(ctx context.Context, id int) (record *T, err error) {
	err = t.Session(ctx, func(s *Session[T]) error {
		record, err = s.FindByID(id)
		return err
	})
	return
}

func (t *Table[T]) Replace(ctx context.Context, id int, record T) (stored T, err error) {
	err = t.Session(ctx, func(s *Session[T]) error {
		stored, err = s.Replace(id, record)
		return err
	})
	return
}

func (t *Table[T]) DeleteByID(ctx context.Context, id int) (removed bool, err error) {
	err = t.Session(ctx, func(s *Session[T]) error {
		removed, err = s.DeleteByID(id)
		return err
	})
	return
}

// Insert stores record and reads the row back, so server-assigned ids are
// visible to the caller. A zero id is left to the store to assign.
func (s *Session[T]) Insert(record T) (T, error) {
	var stored T
	if err := s.conn.Create(&record).Error; err != nil {
		if isUniqueViolation(err) {
			return stored, &DuplicateKey{err}
		}
		return stored, err
	}
	if err := s.conn.First(&stored, record.RecordID()).Error; err != nil {
		return stored, err
	}
	return stored, nil
}

// FindByID returns nil without an error when no row has the given id.
func (s *Session[T]) FindByID(id int) (*T, error) {
	var record T
	err := s.conn.First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Replace overwrites every column of row id with record, the id column
// included, and returns the row as stored under record's id.
func (s *Session[T]) Replace(id int, record T) (T, error) {
	var stored T
	res := s.conn.Model(new(T)).
		Where("id = ?", id).
		Select("*").
		Updates(record)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return stored, &DuplicateKey{res.Error}
		}
		return stored, res.Error
	}
	if res.RowsAffected < 1 {
		return stored, gorm.ErrRecordNotFound
	}
	if err := s.conn.First(&stored, record.RecordID()).Error; err != nil {
		return stored, err
	}
	return stored, nil
}

func (s *Session[T]) DeleteByID(id int) (bool, error) {
	res := s.conn.Delete(new(T), id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
