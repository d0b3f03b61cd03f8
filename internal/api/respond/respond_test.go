package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sravanipallapu19/healthComp/internal/auth"
	"github.com/sravanipallapu19/healthComp/internal/model"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{model.NewValidationError("title", "too long"), http.StatusBadRequest},
		{fmt.Errorf("entry x: %w", model.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("user: %w", model.ErrConflict), http.StatusConflict},
		{fmt.Errorf("login: %w", model.ErrUnauthorized), http.StatusUnauthorized},
		{auth.ErrMissingToken, http.StatusUnauthorized},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusFor(tc.err), tc.err.Error())
	}
}

func TestWriteServiceError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteServiceError(rec, errors.New("password=hunter2 leaked"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "internal error", body.Message)
	assert.Equal(t, 500, body.Code)
}

func TestWriteServiceError_ValidationField(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteServiceError(rec, model.NewValidationError("rating", "must be between 1 and 10"))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "rating", body.Field)
}
