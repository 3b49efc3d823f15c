package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	errMissing := New(NotFound, "thing not found")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"sentinel", errMissing, NotFound},
		{"wrapped", fmt.Errorf("lookup: %w", errMissing), NotFound},
		{"conflict", New(Conflict, "dup"), Conflict},
		{"plain error", errors.New("boom"), Unexpected},
		{"nil", nil, Unexpected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Fatalf("KindOf = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	err := fmt.Errorf("ctx: %w", New(Validation, "bad input"))
	if got := Message(err); got != "bad input" {
		t.Fatalf("Message = %q", got)
	}
	if got := Message(errors.New("db down")); got != "" {
		t.Fatalf("Message for plain error = %q, want empty", got)
	}
	if !errors.Is(err, err) {
		t.Fatal("errors.Is should match itself")
	}
}
