package services

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports user-correctable input problems. Fields carries
// one message per offending input so a form can highlight all of them at
// once, not just the first.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message, Fields: map[string]string{}}
}

func (err *ValidationError) WithField(key string, message string) *ValidationError {
	if err.Fields == nil {
		err.Fields = map[string]string{}
	}
	err.Fields[key] = message
	return err
}

func (err *ValidationError) HasFields() bool {
	return len(err.Fields) > 0
}

func (err *ValidationError) Error() string {
	if len(err.Fields) == 0 {
		return err.Message
	}
	keys := make([]string, 0, len(err.Fields))
	for key := range err.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+err.Fields[key])
	}
	return err.Message + " (" + strings.Join(parts, "; ") + ")"
}

// NotFoundError marks a referenced section, field, record, salary or
// user that does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFoundError(resource string, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", err.Resource, err.ID)
}

// PermissionError marks a request whose role lacks the required access.
type PermissionError struct {
	Message string
}

func NewPermissionError(message string) *PermissionError {
	return &PermissionError{Message: message}
}

func (err *PermissionError) Error() string {
	return err.Message
}

// ConflictError marks duplicate slugs/keys and reorder payload
// mismatches. The mutation it rejects leaves state untouched.
type ConflictError struct {
	Message string
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func (err *ConflictError) Error() string {
	return err.Message
}
