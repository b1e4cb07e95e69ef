package pkg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("post")))
	assert.True(t, IsValidation(Validation("text", "must not be empty")))
	assert.True(t, IsUnauthorized(ErrUnauthorized))
	assert.True(t, IsForbidden(Forbidden("not the author")))

	assert.False(t, IsNotFound(Forbidden("x")))
	assert.False(t, IsValidation(errors.New("plain")))
}

func TestValidationField(t *testing.T) {
	err := Validation("group", "unknown group")
	assert.Equal(t, "group", ValidationField(err))
	assert.Equal(t, "group: unknown group", err.Error())

	assert.Empty(t, ValidationField(NotFound("post")))
	assert.Empty(t, ValidationField(nil))
}

func TestKindsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("edit post: %w", Forbidden("only the author can edit a post"))
	assert.True(t, IsForbidden(err))
	assert.False(t, IsNotFound(err))
}
