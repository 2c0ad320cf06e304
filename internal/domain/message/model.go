package message

import (
	"errors"
	"strings"
)

// ErrInvalidInput indicates a contact message missing required fields.
var ErrInvalidInput = errors.New("invalid contact message")

// ContactMessage is a message left through the contact form. Read is tracked
// locally and is not known to the backend.
type ContactMessage struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Read    bool   `json:"read"`
}

// Input is a contact form submission.
type Input struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate checks that the submission can be sent.
func (in Input) Validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Message) == "" {
		return ErrInvalidInput
	}
	if !strings.Contains(in.Email, "@") {
		return ErrInvalidInput
	}
	return nil
}
