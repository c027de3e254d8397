package app

import (
	"errors"
	"testing"
)

func TestOperationErrorMessage(t *testing.T) {
	base := errors.New("no space left")
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{"full", NewOperationError("save", "a.txt", base), "save a.txt: no space left"},
		{"no target", NewOperationError("save", "", base), "save: no space left"},
		{"no cause", NewOperationError("open", "b.txt", nil), "open b.txt"},
		{"context", NewOperationError("save", "a.txt", base).WithContext("quit"), "save a.txt (quit): no space left"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperationErrorMatching(t *testing.T) {
	base := errors.New("boom")
	err := NewOperationError("save", "a.txt", base)

	if !errors.Is(err, base) {
		t.Error("errors.Is should match the wrapped error")
	}
	if !errors.Is(err, err) {
		t.Error("errors.Is should match the wrapper itself")
	}
	if errors.Is(err, NewOperationError("save", "a.txt", base)) {
		t.Error("distinct wrappers should not match")
	}
	if errors.Unwrap(err) != base {
		t.Error("Unwrap should return the cause")
	}

	var nilErr *OperationError
	if nilErr.Error() != "" || nilErr.Unwrap() != nil || nilErr.Is(base) || nilErr.WithContext("x") != nil {
		t.Error("nil receiver methods should be safe")
	}
}

func TestInitError(t *testing.T) {
	base := errors.New("no tty")
	err := &InitError{Component: "backend", Err: base}
	if err.Error() != "init backend: no tty" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("InitError should unwrap")
	}
}
