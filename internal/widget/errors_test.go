package widget

import (
	"errors"
	"testing"
)

func TestValidationErrorIs(t *testing.T) {
	err := Invalid("diff", "length %d != %d", 3, 4)
	if !errors.Is(err, ErrValidation) {
		t.Fatal("expected errors.Is(err, ErrValidation)")
	}
	if errors.Is(err, ErrInvalidState) {
		t.Error("validation error must not match ErrInvalidState")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("expected *ValidationError")
	}
	if ve.Op != "diff" || ve.Reason != "length 3 != 4" {
		t.Errorf("unexpected fields: %+v", ve)
	}
}

func TestInvalidStateErrorMessage(t *testing.T) {
	err := error(&InvalidStateError{Op: "submit", State: "submitted"})
	if !errors.Is(err, ErrInvalidState) {
		t.Fatal("expected errors.Is(err, ErrInvalidState)")
	}
	want := "widget: invalid state: submit not allowed in submitted"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
