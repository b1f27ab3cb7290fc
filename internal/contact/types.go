package contact

import (
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// Message is one submission of the contact form.
type Message struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject,omitempty"`
	Message    string    `json:"message"`
	RemoteAddr string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// Field limits, in runes.
const (
	maxName    = 120
	maxEmail   = 254
	maxSubject = 200
	maxMessage = 5000
)

// ErrInvalid matches every *ValidationError.
var ErrInvalid = errors.New("invalid contact message")

// ValidationError lists the offending fields with a reason for each.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("invalid contact message (%s)", strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

// Normalize trims every field.
func (m *Message) Normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
	m.Message = strings.TrimSpace(m.Message)
}

// Validate checks required fields, the email address and field lengths.
func (m Message) Validate() error {
	fields := map[string]string{}

	if m.Name == "" {
		fields["name"] = "required"
	} else if utf8.RuneCountInString(m.Name) > maxName {
		fields["name"] = fmt.Sprintf("must be at most %d characters", maxName)
	}

	if m.Email == "" {
		fields["email"] = "required"
	} else if utf8.RuneCountInString(m.Email) > maxEmail {
		fields["email"] = fmt.Sprintf("must be at most %d characters", maxEmail)
	} else if addr, err := mail.ParseAddress(m.Email); err != nil || addr.Address != m.Email {
		fields["email"] = "not a valid address"
	}

	if utf8.RuneCountInString(m.Subject) > maxSubject {
		fields["subject"] = fmt.Sprintf("must be at most %d characters", maxSubject)
	}

	if m.Message == "" {
		fields["message"] = "required"
	} else if utf8.RuneCountInString(m.Message) > maxMessage {
		fields["message"] = fmt.Sprintf("must be at most %d characters", maxMessage)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
