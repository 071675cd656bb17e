package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"validation", Validation("invalid request", "age"), CodeValidation, 400},
		{"not found", NotFound("User"), CodeNotFound, 404},
		{"conflict", Conflict("exists"), CodeConflict, 409},
		{"internal", Internal("boom", "db closed"), CodeInternalError, 500},
		{"bad request", BadRequest("malformed body"), CodeBadRequest, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.Status)
		})
	}
	assert.Equal(t, "Card not found", NotFound("Card").Message)
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "[NOT_FOUND] User not found", NotFound("User").Error())
	assert.Equal(t, "[INTERNAL_ERROR] boom: db closed", Internal("boom", "db closed").Error())
}

func TestAsAndIsNotFound(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", NotFound("User"))
	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsNotFound(fmt.Errorf("plain")))
}
