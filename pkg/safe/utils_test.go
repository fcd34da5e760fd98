package safe

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestIsNil(t *testing.T) {
	t.Parallel()

	if !IsNil(nil) {
		t.Fatalf("expected true for nil")
	}

	var p *int
	if !IsNil(p) {
		t.Fatalf("expected true for typed nil pointer")
	}

	n := 1
	if IsNil(&n) || IsNil(n) {
		t.Fatalf("expected false for non-nil values")
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	if got := Errors(nil); len(got) != 0 {
		t.Fatalf("expected no errors for nil, got %v", got)
	}

	single := errors.New("one")
	if got := Errors(single); len(got) != 1 || got[0] != single {
		t.Fatalf("expected the single error back, got %v", got)
	}

	joined := errors.Join(errors.New("one"), errors.New("two"), errors.New("three"))
	if got := Errors(joined); len(got) != 3 {
		t.Fatalf("expected 3 unwrapped errors, got %d: %v", len(got), got)
	}
}

func TestIsCancellation(t *testing.T) {
	t.Parallel()

	if !IsCancellation(context.Canceled) || !IsCancellation(context.DeadlineExceeded) {
		t.Fatalf("expected true for context sentinels")
	}
	if !IsCancellation(fmt.Errorf("call: %w", context.Canceled)) {
		t.Fatalf("expected true for wrapped cancellation")
	}
	if IsCancellation(errors.New("other")) || IsCancellation(nil) {
		t.Fatalf("expected false for non-cancellation errors")
	}
}

func TestValidateAll_AggregatesFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	positive := func(ctx context.Context, n int) (bool, string) { return n > 0, "must be positive" }
	even := func(ctx context.Context, n int) (bool, string) { return n%2 == 0, "must be even" }

	res := ValidateAll(ctx, Success(4), false, positive, even)
	if !res.IsSuccess() {
		t.Fatalf("expected success, got %v", res.Err())
	}

	res = ValidateAll(ctx, Success(-3), false, positive, even)
	if res.IsSuccess() {
		t.Fatalf("expected failure")
	}
	if got := Errors(res.Err()); len(got) != 2 {
		t.Fatalf("expected 2 aggregated errors, got %d: %v", len(got), got)
	}
}

func TestValidateAll_BreakOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	positive := func(ctx context.Context, n int) (bool, string) { return n > 0, "must be positive" }
	even := func(ctx context.Context, n int) (bool, string) { return n%2 == 0, "must be even" }

	res := ValidateAll(ctx, Success(-3), true, positive, even)
	if res.IsSuccess() {
		t.Fatalf("expected failure")
	}
	if got := Errors(res.Err()); len(got) != 1 {
		t.Fatalf("expected only the first error, got %d: %v", len(got), got)
	}

	expectedErr := errors.New("upstream")
	res = ValidateAll(ctx, Fail[int](expectedErr), true, positive)
	if !errors.Is(res.Err(), expectedErr) {
		t.Fatalf("expected upstream failure to pass through, got %v", res.Err())
	}
}
