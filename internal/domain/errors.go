package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error codes shared by the HTTP and terminal adapters.
const (
	CodeNotFound   = "not_found"
	CodeValidation = "validation_error"
	CodeConflict   = "conflict"
	CodeInternal   = "internal_error"
)

// Coder is implemented by every console error.
type Coder interface {
	error
	Code() string
}

// CodeOf returns the code of the first Coder in err's chain, or CodeInternal.
func CodeOf(err error) string {
	var c Coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return CodeInternal
}

// NotFoundError names a missing table, row or form. Err, when set, carries a hint
// such as a suggested table name.
type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return e.Resource + " not found"
}

func (e NotFoundError) Code() string  { return CodeNotFound }
func (e NotFoundError) Unwrap() error { return e.Err }

// Hint is the message of Err, or "".
func (e NotFoundError) Hint() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// ValidationError rejects a single control input, e.g. rows=7.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	switch {
	case e.Field != "" && e.Msg != "":
		return e.Field + ": " + e.Msg
	case e.Msg != "":
		return e.Msg
	case e.Field != "":
		return "invalid " + e.Field
	}
	return "validation error"
}

func (e ValidationError) Code() string  { return CodeValidation }
func (e ValidationError) Unwrap() error { return e.Err }

// FieldErrors collects form messages keyed by json field name.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation error"
	}
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e[k]))
	}
	return strings.Join(parts, "; ")
}

func (e FieldErrors) Code() string { return CodeValidation }

// ConflictError refuses a write the current data source cannot take.
type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	head := "conflict"
	if e.Resource != "" {
		head = e.Resource + " conflict"
	}
	switch {
	case e.Msg != "" && e.Resource != "":
		return head + ": " + e.Msg
	case e.Msg != "":
		return e.Msg
	}
	return head
}

func (e ConflictError) Code() string  { return CodeConflict }
func (e ConflictError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Code() string  { return CodeInternal }
func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool   { return err != nil && CodeOf(err) == CodeNotFound }
func IsValidation(err error) bool { return err != nil && CodeOf(err) == CodeValidation }
func IsConflict(err error) bool   { return err != nil && CodeOf(err) == CodeConflict }
func IsInternal(err error) bool   { return err != nil && CodeOf(err) == CodeInternal }
