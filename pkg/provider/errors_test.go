package provider

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		msg  string
		want ErrorCode
	}{
		{"HTTP 401: Unauthorized", CodeAuthError},
		{"invalid api key provided", CodeAuthError},
		{"HTTP 429: rate limit exceeded", CodeRateLimit},
		{"HTTP 402: not enough credits", CodeInsufficientCredits},
		{"you have exceeded your quota", CodeInsufficientQuota},
		{"the model gpt-9 was not found", CodeModelNotFound},
		{"resource not found", CodeAPIError}, // "not found" alone is not a model error
		{"Overloaded", CodeOverloaded},
		{"context deadline exceeded", CodeTimeout},
		{"something exploded", CodeAPIError},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			got := Classify(errors.New(tt.msg))
			assert.Equal(t, tt.want, got.Code)
			assert.Equal(t, tt.msg, got.Message)
		})
	}
}

func TestClassify_PassThrough(t *testing.T) {
	orig := NewError(CodeQueueError, "queue fell over")
	assert.Same(t, orig, Classify(orig))
	assert.Same(t, orig, Classify(fmt.Errorf("%w", orig)))
	assert.Nil(t, Classify(nil))
}
