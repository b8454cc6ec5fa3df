package db

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestEnsureSchemaCreatesAllTables(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	for _, table := range []string{"places", "trips", "bus_routes", "reviews"} {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + table).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	if err := EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestEnsureSchemaStopsOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS places").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS trips").WillReturnError(errors.New("denied"))

	if err := EnsureSchema(context.Background(), db); err == nil {
		t.Fatalf("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSchemaComparedColumnsUseBinaryCollation(t *testing.T) {
	ddl := strings.Join(schemaStatements, "\n")
	for _, col := range []string{
		"name VARCHAR(255) COLLATE utf8mb4_bin",
		"category VARCHAR(64) COLLATE utf8mb4_bin",
		"location VARCHAR(255) COLLATE utf8mb4_bin",
		"trip_number VARCHAR(32) COLLATE utf8mb4_bin",
		"origin VARCHAR(255) COLLATE utf8mb4_bin",
		"destination VARCHAR(255) COLLATE utf8mb4_bin",
		"mode VARCHAR(32) COLLATE utf8mb4_bin",
		"route_name VARCHAR(255) COLLATE utf8mb4_bin",
		"operator VARCHAR(64) COLLATE utf8mb4_bin",
	} {
		if !strings.Contains(ddl, col) {
			t.Errorf("schema missing %q", col)
		}
	}
}
