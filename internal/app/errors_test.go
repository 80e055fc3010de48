package app

import (
	"errors"
	"testing"
)

func TestOperationError(t *testing.T) {
	base := errors.New("disk full")

	tests := []struct {
		err  *OperationError
		want string
	}{
		{NewOperationError("save macros", "/tmp/m.json", base), "save macros /tmp/m.json: disk full"},
		{NewOperationError("execute", "", base), "execute: disk full"},
		{NewOperationError("execute", "delete", nil), "execute delete"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}

	var err error = NewOperationError("execute", "yank", base)
	if !errors.Is(err, base) {
		t.Error("errors.Is should see the wrapped error")
	}

	var nilErr *OperationError
	if nilErr.Error() != "" || nilErr.Unwrap() != nil {
		t.Error("nil OperationError should be empty")
	}
}
