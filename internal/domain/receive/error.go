package receive

import (
	"errors"
	"strings"
)

var (
	ErrNotFound      = errors.New("receive not found")
	ErrValidation    = errors.New("required fields missing")
	ErrMalformedData = errors.New("malformed receive data")
)

// ValidationError перечисляет поля, не прошедшие проверку
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return "please fill required fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
