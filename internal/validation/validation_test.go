package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type samplePayload struct {
	Username string `validate:"required,min=3"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=15"`
	Origin   string `validate:"omitempty,min=2"`
}

func TestStruct(t *testing.T) {
	t.Run("valid payload returns nil", func(t *testing.T) {
		msgs := Struct(samplePayload{
			Username: "slanglord",
			Email:    "slang@example.com",
			Password: "hunter2hunter2",
		})
		assert.Nil(t, msgs)
	})

	t.Run("reports one message per failing field", func(t *testing.T) {
		msgs := Struct(samplePayload{
			Username: "ab",
			Email:    "not-an-email",
			Password: "short",
		})
		assert.Len(t, msgs, 3)
		assert.Contains(t, msgs, "username cannot be less than 3 character")
		assert.Contains(t, msgs, "invalid email address")
		assert.Contains(t, msgs, "password cannot be less than 8 character")
	})

	t.Run("max length is enforced", func(t *testing.T) {
		msgs := Struct(samplePayload{
			Username: "slanglord",
			Email:    "slang@example.com",
			Password: "way-too-long-password-here",
		})
		assert.Equal(t, []string{"password cannot be more than 15 character"}, msgs)
	})

	t.Run("optional fields are skipped when empty", func(t *testing.T) {
		msgs := Struct(samplePayload{
			Username: "slanglord",
			Email:    "slang@example.com",
			Password: "hunter2hunter2",
			Origin:   "",
		})
		assert.Nil(t, msgs)
	})
}
