package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"job-board/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: UniqueViolation, ConstraintName: "applications_job_seeker_key"}
	wrapped := fmt.Errorf("insert application: %w", dup)

	if !IsUniqueViolation(wrapped, "") {
		t.Fatalf("expected wrapped unique violation to match")
	}
	if !IsUniqueViolation(wrapped, "applications_job_seeker_key") {
		t.Fatalf("expected named constraint to match")
	}
	if IsUniqueViolation(wrapped, "users_email_key") {
		t.Fatalf("expected other constraint not to match")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}, "") {
		t.Fatalf("foreign key violation must not be reported as unique violation")
	}
	if IsUniqueViolation(errors.New("boom"), "") {
		t.Fatalf("plain error must not match")
	}
}

func TestIsNoRows(t *testing.T) {
	if !IsNoRows(pgx.ErrNoRows) || !IsNoRows(sql.ErrNoRows) {
		t.Fatalf("expected no-rows errors to match")
	}
	if !IsNoRows(fmt.Errorf("get job: %w", pgx.ErrNoRows)) {
		t.Fatalf("expected wrapped no-rows to match")
	}
	if IsNoRows(errors.New("other")) {
		t.Fatalf("unexpected match")
	}
}

func TestDSN_DefaultsSSLMode(t *testing.T) {
	got := DSN(config.DatabaseConfig{DBHost: " db ", DBPort: "5432", DBUser: "u", DBPassword: "p w", DBName: "jobs"})
	want := "host=db port=5432 user=u password=p w dbname=jobs sslmode=disable"
	if got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}
