package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{NotFoundError{Resource: "table x"}, CodeNotFound},
		{fmt.Errorf("lookup: %w", NotFoundError{Resource: "row 9"}), CodeNotFound},
		{ValidationError{Field: "rows", Msg: "not offered"}, CodeValidation},
		{FieldErrors{"name": "too short"}, CodeValidation},
		{ConflictError{Resource: "commission rule"}, CodeConflict},
		{InternalError{Msg: "boom"}, CodeInternal},
		{errors.New("plain"), CodeInternal},
	}
	for _, c := range cases {
		if got := CodeOf(c.err); got != c.want {
			t.Errorf("CodeOf(%v) = %s want %s", c.err, got, c.want)
		}
	}
}

func TestNotFoundHintSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("open: %w", NotFoundError{Resource: "table bus-operator", Err: errors.New("did you mean bus-operators?")})
	var nf NotFoundError
	if !errors.As(err, &nf) || nf.Hint() != "did you mean bus-operators?" {
		t.Fatalf("hint lost: %v", err)
	}
	if !IsNotFound(err) || IsValidation(err) {
		t.Fatalf("classification wrong for %v", err)
	}
	if IsNotFound(nil) {
		t.Fatalf("nil is not an error")
	}
}

func TestErrorMessages(t *testing.T) {
	cases := map[string]error{
		"rows: not offered":                       ValidationError{Field: "rows", Msg: "not offered"},
		"invalid page":                            ValidationError{Field: "page"},
		"commission rule conflict: read-only":     ConflictError{Resource: "commission rule", Msg: "read-only"},
		"conflict":                                ConflictError{},
		"email: Valid email is required; name: x": FieldErrors{"name": "x", "email": "Valid email is required"},
	}
	for want, err := range cases {
		if err.Error() != want {
			t.Errorf("got %q want %q", err.Error(), want)
		}
	}
}
