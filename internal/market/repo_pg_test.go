package market

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGSourceRangeHit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rows := sqlmock.NewRows([]string{"min_salary", "median_salary", "max_salary"}).
		AddRow(160000.0, 200000.0, 280000.0)
	mock.ExpectQuery("SELECT min_salary, median_salary, max_salary").
		WithArgs("Software Engineer", "senior").
		WillReturnRows(rows)

	src := &PGSource{DB: db}
	r, ok, err := src.Range(context.Background(), "Software Engineer", "senior")
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	if !ok {
		t.Fatalf("expected a hit")
	}
	if r.Min != 160000 || r.Median != 200000 || r.Max != 280000 {
		t.Fatalf("unexpected range: %+v", r)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGSourceRangeMissIsNotAnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT min_salary, median_salary, max_salary").
		WithArgs("Astronaut", "senior").
		WillReturnRows(sqlmock.NewRows([]string{"min_salary", "median_salary", "max_salary"}))

	src := &PGSource{DB: db}
	_, ok, err := src.Range(context.Background(), "Astronaut", "senior")
	if err != nil {
		t.Fatalf("expected miss without error, got %v", err)
	}
	if ok {
		t.Fatalf("expected a miss")
	}
}

func TestPGSourceRangeQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT min_salary, median_salary, max_salary").
		WillReturnError(errors.New("connection reset"))

	src := &PGSource{DB: db}
	_, ok, err := src.Range(context.Background(), "Software Engineer", "senior")
	if err == nil {
		t.Fatalf("expected error to surface")
	}
	if ok {
		t.Fatalf("expected no hit on error")
	}
}
