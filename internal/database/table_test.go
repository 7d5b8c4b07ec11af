package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"

	"github.com/bigredeye/schoolbook/internal/config"
	"github.com/bigredeye/schoolbook/internal/models"
)

func openTestDataBase(t *testing.T) *DataBase {
	t.Helper()
	db, err := OpenDataBase(zap.NewNop(), sqlite.Open(filepath.Join(t.TempDir(), "school.db")))
	if err != nil {
		t.Fatal("Failed to open database:", err)
	}
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func TestInsertAssignsIDs(t *testing.T) {
	ctx := context.Background()
	teachers := NewTable[models.Teacher](openTestDataBase(t))

	first, err := teachers.Insert(ctx, models.Teacher{Name: "Maria", Subject: "Math", Surname: "Ivanova", Phone: 100, Address: "Main st.", Age: 40})
	if err != nil {
		t.Fatal(err)
	}
	second, err := teachers.Insert(ctx, models.Teacher{Name: "Ivan", Subject: "Physics", Surname: "Petrov", Phone: 200, Address: "Side st.", Age: 50})
	if err != nil {
		t.Fatal(err)
	}

	if first.ID == 0 || second.ID <= first.ID {
		t.Fatalf("Expected increasing ids, got %d and %d", first.ID, second.ID)
	}
	if second.Name != "Ivan" || second.Address != "Side st." {
		t.Fatalf("Unexpected stored teacher: %+v", second)
	}
}

func TestInsertKeepsClientID(t *testing.T) {
	ctx := context.Background()
	students := NewTable[models.Student](openTestDataBase(t))

	student := models.Student{ID: 7, Name: "Ann", Surname: "Lee", Phone: 5551234, Age: 15}
	stored, err := students.Insert(ctx, student)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(student, stored); diff != "" {
		t.Fatalf("Stored student mismatch (-want +got):\n%s", diff)
	}

	_, err = students.Insert(ctx, student)
	if !IsDuplicateKey(err) {
		t.Fatalf("Expected duplicate key error, got %v", err)
	}
}

func TestFindByIDMissing(t *testing.T) {
	classes := NewTable[models.Class](openTestDataBase(t))

	class, err := classes.FindByID(context.Background(), 42)
	if err != nil {
		t.Fatal(err)
	}
	if class != nil {
		t.Fatalf("Expected no class, got %+v", class)
	}
}

func TestReplaceOverwritesEveryField(t *testing.T) {
	ctx := context.Background()
	students := NewTable[models.Student](openTestDataBase(t))

	_, err := students.Insert(ctx, models.Student{ID: 1, Name: "Ann", Surname: "Lee", Phone: 5551234, Age: 15})
	if err != nil {
		t.Fatal(err)
	}

	replacement := models.Student{ID: 1, Name: "Ann", Surname: "", Phone: 0, Age: 16}
	stored, err := students.Replace(ctx, 1, replacement)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(replacement, stored); diff != "" {
		t.Fatalf("Replaced student mismatch (-want +got):\n%s", diff)
	}

	found, err := students.FindByID(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(&replacement, found); diff != "" {
		t.Fatalf("Found student mismatch (-want +got):\n%s", diff)
	}
}

func TestReplaceMovesID(t *testing.T) {
	ctx := context.Background()
	students := NewTable[models.Student](openTestDataBase(t))

	_, err := students.Insert(ctx, models.Student{ID: 1, Name: "Ann", Surname: "Lee", Phone: 5551234, Age: 15})
	if err != nil {
		t.Fatal(err)
	}

	moved := models.Student{ID: 2, Name: "Ann", Surname: "Lee", Phone: 5551234, Age: 15}
	if _, err := students.Replace(ctx, 1, moved); err != nil {
		t.Fatal(err)
	}

	old, err := students.FindByID(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if old != nil {
		t.Fatalf("Expected id 1 to be gone, got %+v", old)
	}
	found, err := students.FindByID(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(&moved, found); diff != "" {
		t.Fatalf("Moved student mismatch (-want +got):\n%s", diff)
	}
}

func TestReplaceMissing(t *testing.T) {
	grades := NewTable[models.Grade](openTestDataBase(t))

	_, err := grades.Replace(context.Background(), 3, models.Grade{ID: 3, StudentID: 1, ClassID: 1, Grade: 5})
	if err == nil {
		t.Fatal("Expected an error when replacing a missing grade")
	}
}

func TestDeleteByID(t *testing.T) {
	ctx := context.Background()
	grades := NewTable[models.Grade](openTestDataBase(t))

	grade, err := grades.Insert(ctx, models.Grade{StudentID: 9999, ClassID: 9999, Grade: 5})
	if err != nil {
		t.Fatal(err)
	}

	removed, err := grades.DeleteByID(ctx, grade.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !removed {
		t.Fatal("Expected the grade to be removed")
	}

	removed, err = grades.DeleteByID(ctx, grade.ID)
	if err != nil {
		t.Fatal(err)
	}
	if removed {
		t.Fatal("Expected nothing to be removed the second time")
	}
}

func TestSessionReleasesConnection(t *testing.T) {
	db := openTestDataBase(t)
	if err := db.configurePool(&config.DataBase{MaxOpenConns: 1}); err != nil {
		t.Fatal(err)
	}
	classes := NewTable[models.Class](db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for i := 0; i < 20; i++ {
		if _, err := classes.Insert(ctx, models.Class{Name: fmt.Sprintf("class-%d", i)}); err != nil {
			t.Fatalf("Insert %d failed: %v", i, err)
		}
		if _, err := classes.FindByID(ctx, 1000); err != nil {
			t.Fatalf("Lookup %d failed: %v", i, err)
		}
	}

	err := classes.Session(ctx, func(s *Session[models.Class]) error {
		return fmt.Errorf("boom")
	})
	if err == nil || err.Error() != "boom" {
		t.Fatalf("Expected the session error to be returned, got %v", err)
	}
	if _, err := classes.FindByID(ctx, 1); err != nil {
		t.Fatalf("Connection was not released after a failed session: %v", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"postgres unique violation", &pgconn.PgError{Code: "23505"}, true},
		{"postgres other error", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite primary key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, true},
		{"sqlite unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, true},
		{"sqlite not null", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, false},
		{"wrapped", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"plain", fmt.Errorf("connection refused"), false},
	}

	for _, c := range cases {
		if got := isUniqueViolation(c.err); got != c.expected {
			t.Errorf("%s: isUniqueViolation = %v, expected %v", c.name, got, c.expected)
		}
	}
}

func TestDialector(t *testing.T) {
	d, err := Dialector(&config.DataBase{Driver: DriverSQLite, Path: "school.db"})
	if err != nil {
		t.Fatal(err)
	}
	if d.Name() != "sqlite" {
		t.Fatalf("Expected sqlite dialector, got %s", d.Name())
	}

	d, err = Dialector(&config.DataBase{Driver: DriverPostgres, Host: "localhost", Port: 5432, Name: "school", SSLMode: "disable"})
	if err != nil {
		t.Fatal(err)
	}
	if d.Name() != "postgres" {
		t.Fatalf("Expected postgres dialector, got %s", d.Name())
	}

	if _, err := Dialector(&config.DataBase{Driver: "mysql"}); err == nil {
		t.Fatal("Expected an error for an unknown driver")
	}
}

func TestSchemaHasReservedSubjects(t *testing.T) {
	db := openTestDataBase(t)
	if !db.Migrator().HasTable(&models.Subject{}) {
		t.Fatal("Expected the subjects table to exist")
	}
	if !db.Migrator().HasTable("classes") {
		t.Fatal("Expected the classes table to exist")
	}
}

func TestOpenDataBaseClosesPoolOnMigrateFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readonly.db")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	sqlDB, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		t.Fatal(err)
	}
	defer sqlDB.Close()

	_, err = OpenDataBase(zap.NewNop(), sqlite.New(sqlite.Config{Conn: sqlDB}))
	if err == nil {
		t.Fatal("Expected table creation to fail on a read-only database")
	}
	if err := sqlDB.Ping(); err == nil {
		t.Fatal("Expected the pool to be closed after a failed migration")
	}
}

func TestConnectWithNegativeRetriesTriesOnce(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conf := &config.DataBase{
		Driver:         DriverSQLite,
		Path:           filepath.Join(t.TempDir(), "missing", "school.db"),
		ConnectRetries: -1,
	}

	start := time.Now()
	_, err := Connect(ctx, zap.NewNop(), conf)
	if err == nil {
		t.Fatal("Expected an error for a database in a missing directory")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("Expected a single attempt, connect took %v", elapsed)
	}
}
