package provider

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode is the uniform provider error taxonomy.
type ErrorCode string

const (
	CodeAuthError           ErrorCode = "AUTH_ERROR"
	CodeRateLimit           ErrorCode = "RATE_LIMIT"
	CodeInsufficientCredits ErrorCode = "INSUFFICIENT_CREDITS"
	CodeModelNotFound       ErrorCode = "MODEL_NOT_FOUND"
	CodeOverloaded          ErrorCode = "OVERLOADED"
	CodeInsufficientQuota   ErrorCode = "INSUFFICIENT_QUOTA"
	CodeTimeout             ErrorCode = "TIMEOUT"
	CodeQueueError          ErrorCode = "QUEUE_ERROR"
	CodeAPIError            ErrorCode = "API_ERROR"
)

// Error is a classified provider failure.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds a classified error with an explicit code.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Classify maps an underlying provider failure onto the uniform taxonomy
// by substring inspection of its message.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var perr *Error
	if errors.As(err, &perr) {
		return perr
	}

	msg := err.Error()
	lower := strings.ToLower(msg)

	code := CodeAPIError
	switch {
	case strings.Contains(lower, "401") || strings.Contains(lower, "unauthorized") ||
		strings.Contains(lower, "invalid api key") || strings.Contains(lower, "authentication"):
		code = CodeAuthError
	case strings.Contains(lower, "429") || strings.Contains(lower, "rate limit"):
		code = CodeRateLimit
	case strings.Contains(lower, "402") || strings.Contains(lower, "credit"):
		code = CodeInsufficientCredits
	case strings.Contains(lower, "quota"):
		code = CodeInsufficientQuota
	case strings.Contains(lower, "not found") && strings.Contains(lower, "model"):
		code = CodeModelNotFound
	case strings.Contains(lower, "overloaded"):
		code = CodeOverloaded
	case strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline exceeded"):
		code = CodeTimeout
	}

	return &Error{Code: code, Message: msg, Err: err}
}
