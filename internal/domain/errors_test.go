package domain

import (
	"errors"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{Op: "store.read", Kind: KindIO, Path: "/tmp/x.json", Err: root}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}
	if !IsKind(err, KindIO) {
		t.Fatalf("expected kind %s", KindIO)
	}
	if IsKind(err, KindMalformed) {
		t.Fatalf("unexpected kind match")
	}
	want := "store.read: io (path=/tmp/x.json): root"
	if got := err.Error(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInvalid(t *testing.T) {
	err := Invalid("bmi.validate", "weight must be positive, got %v", -1.0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput in chain")
	}
	if !IsKind(err, KindInvalidInput) {
		t.Fatalf("expected kind %s", KindInvalidInput)
	}
}

func TestIsKind_PlainError(t *testing.T) {
	if IsKind(errors.New("x"), KindIO) {
		t.Fatalf("plain errors carry no kind")
	}
	var nilErr *OpError
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil OpError should print <nil>")
	}
}
