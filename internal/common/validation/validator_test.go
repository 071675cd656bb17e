package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architect/soundlearn/internal/common/errors"
)

type childForm struct {
	ChildName   string `validate:"required"`
	Age         int    `validate:"omitempty,min=1,max=18"`
	ParentEmail string `validate:"required,email"`
}

func TestValidate(t *testing.T) {
	assert.Empty(t, Validate(childForm{ChildName: "Mia", Age: 5, ParentEmail: "p@example.com"}))

	errs := Validate(childForm{Age: 30, ParentEmail: "nope"})
	require.Len(t, errs, 3)
	assert.Equal(t, "ChildName", errs[0].Field)
	assert.Equal(t, "is required", errs[0].Message)
	assert.Equal(t, "must be at most 18", errs[1].Message)
	assert.Equal(t, "must be a valid email address", errs[2].Message)
}

func TestFromBinding(t *testing.T) {
	err := validate.Struct(childForm{})
	appErr := FromBinding(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Details, "ChildName is required")
	assert.Contains(t, appErr.Details, "ParentEmail is required")

	var v map[string]any
	syntaxErr := json.Unmarshal([]byte("{"), &v)
	appErr = FromBinding(syntaxErr)
	assert.Equal(t, errors.CodeBadRequest, appErr.Code)
	assert.Equal(t, 400, appErr.Status)
}

func TestFromListEmpty(t *testing.T) {
	assert.Nil(t, FromList(nil))
}

func TestValidateFloatRange(t *testing.T) {
	assert.NoError(t, ValidateFloatRange(0.8, 0, 1))
	assert.Error(t, ValidateFloatRange(1.5, 0, 1))
	assert.Error(t, ValidateFloatRange(-0.1, 0, 1))
}
