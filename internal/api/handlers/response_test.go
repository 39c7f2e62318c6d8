package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondConflict(rec, "slot is already taken")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"slot is already taken"}`, rec.Body.String())
}

func TestRespondInternalError_HidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondInternalError(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestRespondJSON_NoBody(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"ok", `{"name":"Maria"}`, false},
		{"empty", ``, true},
		{"unknown field", `{"name":"Maria","admin":true}`, true},
		{"two objects", `{"name":"a"}{"name":"b"}`, true},
		{"broken", `{"name":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst payload
			err := DecodeJSON(req, &dst)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Maria", dst.Name)
		})
	}
}

func TestValidateStruct(t *testing.T) {
	type form struct {
		Name  string `validate:"required,max=5"`
		Email string `validate:"required,email"`
	}

	assert.Empty(t, ValidateStruct(form{Name: "Ana", Email: "ana@example.com"}))
	assert.Equal(t, "name is required; email must be a valid email address",
		ValidateStruct(form{Email: "nope"}))
	assert.Equal(t, "name must be at most 5 characters",
		ValidateStruct(form{Name: "Mariana", Email: "ana@example.com"}))
}

func TestErrorDetail(t *testing.T) {
	sentinel := errors.New("contacts.service: invalid input data")

	assert.Equal(t, "name is required", ErrorDetail(fmt.Errorf("%w: name is required", sentinel), sentinel))
	assert.Equal(t, "invalid input data", ErrorDetail(sentinel, sentinel))
	assert.Equal(t, "plain", ErrorDetail(errors.New("plain"), sentinel))
}
