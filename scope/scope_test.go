package scope

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/wippyai/scoped/errors"
)

func TestScope_DrainOrder(t *testing.T) {
	var order []string
	err := Run(context.Background(), func(ctx context.Context) error {
		for _, name := range []string{"A", "B", "C"} {
			name := name
			if err := Defer(ctx, func() error {
				order = append(order, name)
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []string{"C", "B", "A"}
	if len(order) != len(want) {
		t.Fatalf("Expected %d destructions, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Destruction order %v, want %v", order, want)
		}
	}
}

func TestScope_NestedScopes(t *testing.T) {
	var order []string
	track := func(ctx context.Context, name string) {
		if err := Defer(ctx, func() error {
			order = append(order, name)
			return nil
		}); err != nil {
			t.Fatalf("Defer %s failed: %v", name, err)
		}
	}

	err := Run(context.Background(), func(ctx context.Context) error {
		track(ctx, "X")

		err := Run(ctx, func(ctx context.Context) error {
			track(ctx, "Y")
			track(ctx, "Z")
			return nil
		})
		if err != nil {
			return err
		}

		// Inner scope drained Z then Y; outer scope untouched so far.
		if len(order) != 2 || order[0] != "Z" || order[1] != "Y" {
			t.Fatalf("After inner scope: %v, want [Z Y]", order)
		}

		track(ctx, "W")
		return nil
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []string{"Z", "Y", "W", "X"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Destruction order %v, want %v", order, want)
		}
	}
}

func TestScope_DrainIdempotent(t *testing.T) {
	s := New()
	calls := 0
	if err := s.Defer(func() error {
		calls++
		return nil
	}); err != nil {
		t.Fatalf("Defer failed: %v", err)
	}

	if err := s.Drain(); err != nil {
		t.Fatalf("Drain failed: %v", err)
	}
	if err := s.Drain(); err != nil {
		t.Fatalf("Second Drain failed: %v", err)
	}
	if calls != 1 {
		t.Fatalf("Expected destructor to run once, ran %d times", calls)
	}
}

func TestScope_RegisterAfterDrain(t *testing.T) {
	s := New()
	if err := s.Drain(); err != nil {
		t.Fatalf("Drain failed: %v", err)
	}

	err := s.Defer(func() error { return nil })
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseRegister, Kind: errors.KindClosed}) {
		t.Fatalf("Expected closed error, got %v", err)
	}
}

func TestScope_DestructorFailuresAggregated(t *testing.T) {
	first := stderrors.New("first failure")
	second := stderrors.New("second failure")

	var order []string
	s := New()
	s.Defer(func() error {
		order = append(order, "a")
		return first
	})
	s.Defer(func() error {
		order = append(order, "b")
		return second
	})

	err := s.Drain()
	if err == nil {
		t.Fatal("Expected drain error")
	}
	if len(order) != 2 {
		t.Fatalf("Expected both destructors attempted, got %v", order)
	}
	if !stderrors.Is(err, first) || !stderrors.Is(err, second) {
		t.Fatalf("Both failures should be reachable: %v", err)
	}
}

func TestScope_DestructorPanicContained(t *testing.T) {
	var order []string
	s := New()
	s.Defer(func() error {
		order = append(order, "bottom")
		return nil
	})
	s.Defer(func() error {
		panic("destructor exploded")
	})
	s.Defer(func() error {
		order = append(order, "top")
		return nil
	})

	err := s.Drain()
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDrain, Kind: errors.KindDestructorPanic}) {
		t.Fatalf("Expected destructor panic error, got %v", err)
	}
	if len(order) != 2 || order[0] != "top" || order[1] != "bottom" {
		t.Fatalf("Drain should continue past panic: %v", order)
	}
}

func TestScope_Len(t *testing.T) {
	s := New()
	if s.Len() != 0 {
		t.Fatal("Fresh scope should be empty")
	}
	s.Defer(func() error { return nil })
	s.Defer(func() error { return nil })
	if s.Len() != 2 {
		t.Fatalf("Expected 2 pending records, got %d", s.Len())
	}
	s.Drain()
	if s.Len() != 0 {
		t.Fatalf("Expected 0 pending records after drain, got %d", s.Len())
	}
}
