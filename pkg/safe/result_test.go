package safe

import (
	"errors"
	"testing"
)

func TestSuccess(t *testing.T) {
	t.Parallel()

	r := Success(42)

	if !r.IsSuccess() {
		t.Fatalf("expected success, got error: %v", r.Err())
	}
	if r.IsFailure() {
		t.Fatalf("success result reported as failure")
	}
	if r.Err() != nil {
		t.Fatalf("expected nil error, got %v", r.Err())
	}
	if got := r.Value(); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if !r.HasValue() {
		t.Fatalf("expected HasValue true")
	}
	if r.CreatedAt().IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}

func TestFail(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("boom")
	r := Fail[int](expectedErr)

	if r.IsSuccess() {
		t.Fatalf("expected failure, got success: %v", r.Value())
	}
	if !r.IsFailure() {
		t.Fatalf("expected IsFailure true")
	}
	if !errors.Is(r.Err(), expectedErr) {
		t.Fatalf("expected error %q preserved, got %v", expectedErr, r.Err())
	}
	if r.HasValue() {
		t.Fatalf("expected no value on failure")
	}
	if got := r.Value(); got != 0 {
		t.Fatalf("expected zero value on failure, got %d", got)
	}
}

func TestFailFrom_PreservesErrorAndIdentity(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("upstream")
	from := Fail[string](expectedErr)
	to := FailFrom[string, int](from)

	if to.IsSuccess() {
		t.Fatalf("expected failure to carry over")
	}
	if !errors.Is(to.Err(), expectedErr) {
		t.Fatalf("expected error %q, got %v", expectedErr, to.Err())
	}
	if to.Id() != from.Id() {
		t.Fatalf("expected id to carry over")
	}
	if !to.CreatedAt().Equal(from.CreatedAt()) {
		t.Fatalf("expected createdAt to carry over")
	}
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	var zero Result[int]
	if !zero.IsEmpty() {
		t.Fatalf("expected zero result to be empty")
	}
	if zero.IsFailure() {
		t.Fatalf("empty result must not be a failure")
	}
	if Success(1).IsEmpty() || Fail[int](errors.New("e")).IsEmpty() {
		t.Fatalf("constructed results must not be empty")
	}
}
