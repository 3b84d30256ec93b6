// Copyright (c) 2026 InsightSource. All rights reserved.

package dberr_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightsource/catalog/internal/platform/apperr"
	"github.com/insightsource/catalog/internal/platform/dberr"
)

/*
TestWrap_Classification verifies that driver errors land in the right taxonomy bucket.
*/
func TestWrap_Classification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"no_rows", pgx.ErrNoRows, apperr.CodeNotFound, http.StatusNotFound},
		{"wrapped_no_rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), apperr.CodeNotFound, http.StatusNotFound},
		{"unique_violation", &pgconn.PgError{Code: "23505"}, apperr.CodeConflict, http.StatusConflict},
		{"fk_violation", &pgconn.PgError{Code: "23503"}, apperr.CodeConflict, http.StatusConflict},
		{"other_pg_error", &pgconn.PgError{Code: "42P01"}, apperr.CodeInternal, http.StatusInternalServerError},
		{"deadline", context.DeadlineExceeded, apperr.CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dberr.Wrap(tt.err, "Category", "test_action")

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantCode, ae.Code)
			assert.Equal(t, tt.wantStatus, ae.HTTPStatus)
		})
	}
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "Category", "noop"))
}

func TestWrap_PassesAppErrorThrough(t *testing.T) {
	original := apperr.ValidationError("bad")
	assert.Same(t, original, dberr.Wrap(original, "Category", "noop"))
}

func TestWrap_InternalKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := dberr.Wrap(cause, "Report", "list_reports")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "An unexpected error occurred", err.Error())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, dberr.IsUniqueViolation(fmt.Errorf("x: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, dberr.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, dberr.IsUniqueViolation(errors.New("plain")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, dberr.IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, dberr.IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
}
