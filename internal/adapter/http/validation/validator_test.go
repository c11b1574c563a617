package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flashcardapp/internal/core/model/request"
)

func TestValidator_CollectionRequest(t *testing.T) {
	err := Validator.Struct(request.CollectionRequest{})
	require.Error(t, err)

	formatted := FormatValidationErrors(err)

	require.Len(t, formatted, 1)
	assert.Equal(t, "name", formatted[0].Field)
	assert.Equal(t, "Name is required", formatted[0].Message)

	err = Validator.Struct(request.CollectionRequest{Name: strings.Repeat("x", 256)})
	formatted = FormatValidationErrors(err)

	require.Len(t, formatted, 1)
	assert.Equal(t, "Name must be at most 255 characters", formatted[0].Message)

	assert.NoError(t, Validator.Struct(request.CollectionRequest{Name: "Deck"}))
}

func TestValidator_FlashcardRequest(t *testing.T) {
	formatted := FormatValidationErrors(Validator.Struct(request.FlashcardRequest{}))

	fields := []string{}
	for _, f := range formatted {
		fields = append(fields, f.Field)
	}

	assert.ElementsMatch(t, []string{"question", "answer"}, fields)
}

func TestValidator_RegisterRequest(t *testing.T) {
	err := Validator.Struct(request.RegisterRequest{Username: "alice", Password: strings.Repeat("p", 73)})

	formatted := FormatValidationErrors(err)
	require.Len(t, formatted, 1)
	assert.Equal(t, "password", formatted[0].Field)
	assert.Equal(t, "Password must be at most 72 bytes", formatted[0].Message)
}

func TestValidator_RegisterRequest_MultibytePassword(t *testing.T) {
	// 40 runes, 80 bytes
	err := Validator.Struct(request.RegisterRequest{Username: "alice", Password: strings.Repeat("é", 40)})

	formatted := FormatValidationErrors(err)
	require.Len(t, formatted, 1)
	assert.Equal(t, "password", formatted[0].Field)

	assert.NoError(t, Validator.Struct(request.RegisterRequest{Username: "alice", Password: strings.Repeat("é", 36)}))
}

func TestFormatValidationErrors_OtherErrors(t *testing.T) {
	assert.Nil(t, FormatValidationErrors(errors.New("plain")))
}
