package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	t.Run("should expose kind through KindOf", func(t *testing.T) {
		assert.Equal(t, KindConfig, KindOf(NewConfigError("missing token")))
		assert.Equal(t, KindValidation, KindOf(NewValidationError("bad input")))
		assert.Equal(t, KindParse, KindOf(NewParseError("bad json", nil)))
		assert.Equal(t, KindSchema, KindOf(NewSchemaError("bad shape", nil)))
		assert.Equal(t, KindUpstream, KindOf(NewUpstreamError("boom", 500, "body", nil)))
	})

	t.Run("should survive wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("generate: %w", NewSchemaError("bad shape", nil))
		assert.Equal(t, KindSchema, KindOf(wrapped))
	})

	t.Run("should return empty kind for foreign errors", func(t *testing.T) {
		assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
		assert.Equal(t, ErrorKind(""), KindOf(nil))
	})

	t.Run("should include upstream detail in message", func(t *testing.T) {
		err := NewUpstreamError("messaging API rejected the request", 401, `{"error":"nope"}`, nil)
		assert.Contains(t, err.Error(), "401")
		assert.Contains(t, err.Error(), "nope")
	})
}
