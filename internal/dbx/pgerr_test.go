package dbx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantWrite bool
		contains  string
	}{
		{"not null", &pgconn.PgError{Code: "23502", ColumnName: "company"}, true, "company"},
		{"check", &pgconn.PgError{Code: "23514", ConstraintName: "applications_status_check"}, true, "applications_status_check"},
		{"bad uuid", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"}), true, "invalid input syntax"},
		{"bad date", &pgconn.PgError{Code: "22007", Message: "invalid date"}, true, "invalid date"},
		{"connection", &pgconn.PgError{Code: "08006", Message: "connection failure"}, false, "db error"},
		{"plain", errors.New("boom"), false, "db error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WriteError(tt.err)
			assert.Equal(t, tt.wantWrite, errors.Is(got, common.ErrWrite))
			assert.Contains(t, got.Error(), tt.contains)
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(fmt.Errorf("x: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, IsUniqueViolation(errors.New("other")))
}
