package pagination

import "testing"

func TestNormalizeLimit(t *testing.T) {
	if got := NormalizeLimit(0); got != DefaultLimit {
		t.Fatalf("zero limit should default, got %d", got)
	}
	if got := NormalizeLimit(-5); got != DefaultLimit {
		t.Fatalf("negative limit should default, got %d", got)
	}
	if got := NormalizeLimit(1000); got != MaxLimit {
		t.Fatalf("oversized limit should clamp, got %d", got)
	}
	if got := NormalizeLimit(10); got != 10 {
		t.Fatalf("valid limit should pass through, got %d", got)
	}
}

func TestSlice(t *testing.T) {
	from, to := Slice(Params{Limit: 10, Offset: 0}, 4)
	if from != 0 || to != 4 {
		t.Fatalf("expected [0,4), got [%d,%d)", from, to)
	}

	from, to = Slice(Params{Limit: 2, Offset: 1}, 4)
	if from != 1 || to != 3 {
		t.Fatalf("expected [1,3), got [%d,%d)", from, to)
	}

	from, to = Slice(Params{Limit: 10, Offset: 99}, 4)
	if from != to {
		t.Fatalf("offset past end should be empty, got [%d,%d)", from, to)
	}
}
