package remote

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrInvalidResponse indicates a backend payload that does not match the
// expected shape.
var ErrInvalidResponse = errors.New("invalid backend response")

// StatusError reports a non-success backend response. Error returns only the
// human-readable message.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return e.Message
}

func newStatusError(res response, message string) *StatusError {
	return &StatusError{StatusCode: res.status, Message: message}
}

// bodyMessage extracts the "error" field of a JSON error body.
func bodyMessage(body []byte) (string, bool) {
	if !gjson.ValidBytes(body) {
		return "", false
	}
	msg := gjson.GetBytes(body, "error")
	if !msg.Exists() || msg.String() == "" {
		return "", false
	}
	return msg.String(), true
}

func transportError(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

func invalidResponse(err error) error {
	return fmt.Errorf("%w: %s", ErrInvalidResponse, strings.TrimSpace(err.Error()))
}
