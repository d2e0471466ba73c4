package fluent

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ib-77/whatif/pkg/whatif"
)

func TestWithAndValue(t *testing.T) {
	t.Parallel()
	s := With(5)
	if s.Value() != 5 {
		t.Fatalf("expected wrapped value 5, got %v", s.Value())
	}
	if s.Id() == uuid.Nil {
		t.Fatalf("expected a chain id to be assigned")
	}
	if s.CreatedAt().IsZero() {
		t.Fatalf("expected a creation time to be assigned")
	}
}

func TestWhatIf_ChainKeepsValueAndIdentity(t *testing.T) {
	t.Parallel()
	calls := 0
	s := With("hello")
	out := s.
		WhatIf(whatif.Bool(true), func(v string) {
			calls++
			if v != "hello" {
				t.Fatalf("whatIf received %q, want hello", v)
			}
		}).
		WhatIf(whatif.Bool(false), func(string) { calls++ }).
		WhatIf(nil, func(string) { calls++ })

	if calls != 1 {
		t.Fatalf("expected exactly one callback run, got %d", calls)
	}
	if out.Value() != "hello" {
		t.Fatalf("expected value to pass through, got %q", out.Value())
	}
	if out.Id() != s.Id() {
		t.Fatalf("expected chain id to be stable across steps")
	}
}

func TestDoubleWhatIf_AbsentTakesNegativeBranch(t *testing.T) {
	t.Parallel()
	var branch string
	With(1).DoubleWhatIf(nil,
		func(int) { branch = "whatIf" },
		func(int) { branch = "whatIfNot" })
	if branch != "whatIfNot" {
		t.Fatalf("expected whatIfNot branch on absent, got %q", branch)
	}
}

func TestWhatIfFunc_LazyConditionRunsOncePerStep(t *testing.T) {
	t.Parallel()
	evals := 0
	With(2).
		WhatIfFunc(func() *bool { evals++; return whatif.Bool(true) }, func(int) {}).
		WhatIfFunc(func() *bool { evals++; return nil }, func(int) {
			t.Fatalf("whatIfDo must not run on absent condition")
		})
	if evals != 2 {
		t.Fatalf("expected one evaluation per step, got %d", evals)
	}
}

func TestDoubleWhatIfFunc(t *testing.T) {
	t.Parallel()
	var got []string
	With("v").DoubleWhatIfFunc(func() *bool { return whatif.Bool(false) },
		func(v string) { got = append(got, "whatIfDo:"+v) },
		func(v string) { got = append(got, "whatIfNot:"+v) })
	if len(got) != 1 || got[0] != "whatIfNot:v" {
		t.Fatalf("expected single whatIfNot call with wrapped value, got %v", got)
	}
}

func TestGiven_ConditionFromWrappedValue(t *testing.T) {
	t.Parallel()
	called := false
	With(10).Given(func(n int) *bool { return whatif.Bool(n > 5) }, func() {
		called = true
	})
	if !called {
		t.Fatalf("whatIf should run when given returns true")
	}
}

func TestDoubleGiven(t *testing.T) {
	t.Parallel()
	var branch string
	With("").DoubleGiven(func(s string) *bool { return whatif.Bool(s != "") },
		func() { branch = "whatIf" },
		func() { branch = "whatIfNot" })
	if branch != "whatIfNot" {
		t.Fatalf("expected whatIfNot branch, got %q", branch)
	}
}

func TestMap_TransformsValueKeepsIdentity(t *testing.T) {
	t.Parallel()
	s := With(3)
	out := s.Map(func(n int) int { return n * 2 })
	if out.Value() != 6 {
		t.Fatalf("expected mapped value 6, got %d", out.Value())
	}
	if out.Id() != s.Id() || !out.CreatedAt().Equal(s.CreatedAt()) {
		t.Fatalf("expected identity to carry over through Map")
	}
}

func TestLet_ReducesChain(t *testing.T) {
	t.Parallel()
	out := Let(With(7), whatif.Bool(true), "default", func(n int) string {
		if n != 7 {
			t.Fatalf("whatIf received %d, want 7", n)
		}
		return "mapped"
	})
	if out != "mapped" {
		t.Fatalf("expected mapped, got %q", out)
	}

	out = Let(With(7), nil, "default", func(int) string { return "mapped" })
	if out != "default" {
		t.Fatalf("expected default on absent, got %q", out)
	}
}

func TestDoubleLet_ReducesChain(t *testing.T) {
	t.Parallel()
	out := DoubleLet(With(2), whatif.Bool(false),
		func(n int) int { return n + 1 },
		func(n int) int { return n - 1 })
	if out != 1 {
		t.Fatalf("expected whatIfNot result 1, got %d", out)
	}
}

func TestSubjectImplementsValueProvider(t *testing.T) {
	t.Parallel()
	var p ValueProvider[int] = With(1)
	if p.Value() != 1 {
		t.Fatalf("expected provider value 1, got %d", p.Value())
	}
}
