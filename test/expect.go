// Package test holds the assertions shared by the package tests. Each helper
// reports through t and returns whether the expectation held.
package test

import "testing"

// ExpectEquality fails the test if value and want differ.
func ExpectEquality[T comparable](t *testing.T, value T, want T) bool {
	t.Helper()
	if value != want {
		t.Errorf("got %v, want %v (%T)", value, want, value)
		return false
	}
	return true
}

// ExpectInequality fails the test if value and want are equal.
func ExpectInequality[T comparable](t *testing.T, value T, want T) bool {
	t.Helper()
	if value == want {
		t.Errorf("got %v, want anything else (%T)", value, value)
		return false
	}
	return true
}

// failed reports whether v describes a failed outcome. A bool fails when it
// is false and an error fails when it is non-nil. A nil interface counts as
// a nil error.
func failed(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return !v
	case error:
		return true
	}

	t.Fatalf("cannot judge success of a %T", v)
	return false
}

// ExpectFailure fails the test unless v is false or a non-nil error.
func ExpectFailure(t *testing.T, v any) bool {
	t.Helper()
	if v == nil {
		t.Errorf("expected a failure but got nil")
		return false
	}
	if !failed(t, v) {
		t.Errorf("expected a failure but got %v", v)
		return false
	}
	return true
}

// ExpectSuccess fails the test unless v is true, a nil error or nil.
func ExpectSuccess(t *testing.T, v any) bool {
	t.Helper()
	if failed(t, v) {
		t.Errorf("expected success but got %v", v)
		return false
	}
	return true
}
