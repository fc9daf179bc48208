package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{InvalidInputError("bad"), http.StatusBadRequest},
		{NotFoundError("gone"), http.StatusNotFound},
		{fmt.Errorf("wrap: %w", ErrNotFound), http.StatusNotFound},
		{errors.New("mystery"), http.StatusInternalServerError},
		{ErrDatabase, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestInvalidInputErrorf(t *testing.T) {
	err := InvalidInputErrorf("field %q is required", "qrId")
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("formatted input error should unwrap to ErrInvalidInput")
	}
	if err.Error() != `INVALID_INPUT: field "qrId" is required` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("X", "boom", ErrInvalidInput)
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("AppError should unwrap to its cause")
	}
	if err.Error() != "X: boom: invalid input" {
		t.Errorf("Error() = %q", err.Error())
	}
}
