package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordCommandError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	require.NoError(t, commandError(ctx, err))
	return rec
}

func TestCommandError(t *testing.T) {
	t.Run("should map each failure kind to its status code", func(t *testing.T) {
		tests := []struct {
			name   string
			err    error
			status int
		}{
			{"unauthorized", errs.NewUnauthorizedError("owner", "0xclient"), http.StatusForbidden},
			{"bad status", errs.NewBadStatusError("pay", "registered"), http.StatusConflict},
			{"incorrect amount", errs.NewIncorrectAmountError(800, 700), http.StatusUnprocessableEntity},
			{"not found", errs.NewObjectNotFoundError("order", int64(42)), http.StatusNotFound},
			{"unknown", errors.New("boom"), http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := recordCommandError(t, tt.err)

				assert.Equal(t, tt.status, rec.Code)
				assert.Contains(t, rec.Body.String(), tt.err.Error())
			})
		}
	})

	t.Run("should keep the status inside the response body", func(t *testing.T) {
		rec := recordCommandError(t, errs.NewObjectNotFoundError("order", int64(7)))

		assert.JSONEq(t,
			`{"code": 404, "message": "object not found: 7"}`,
			rec.Body.String(),
		)
	})
}
