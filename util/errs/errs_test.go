package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *AppError
		want int
	}{
		{InputValidationError("bad input"), http.StatusBadRequest},
		{BusinessRuleError("rule broken"), http.StatusBadRequest},
		{UnauthorizedError("who are you"), http.StatusUnauthorized},
		{ForbiddenError("not yours"), http.StatusForbidden},
		{ResourceNotFoundError("gone"), http.StatusNotFound},
		{ConflictError("already there"), http.StatusConflict},
		{DatabaseFailureError("db down"), http.StatusInternalServerError},
		{OperationFailedError("oops"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestHandleDBError(t *testing.T) {
	t.Parallel()

	t.Run("unique violation becomes conflict", func(t *testing.T) {
		err := HandleDBError(&pq.Error{Code: "23505"})
		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, KindConflict, appErr.Kind)
	})

	t.Run("foreign key violation becomes conflict", func(t *testing.T) {
		err := HandleDBError(&pq.Error{Code: "23503"})
		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, KindConflict, appErr.Kind)
	})

	t.Run("anything else is a database failure", func(t *testing.T) {
		err := HandleDBError(errors.New("connection reset"))
		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, KindDatabaseFailure, appErr.Kind)
		assert.Equal(t, "connection reset", appErr.Message)
	})
}
