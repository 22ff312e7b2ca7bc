package sakura

import "testing"

func TestBoundaryKindString(t *testing.T) {
	tests := []struct {
		kind BoundaryKind
		want string
	}{
		{Strong, "strong"},
		{Weak, "weak"},
		{Abbreviation, "abbreviation"},
		{BoundaryKind(99), "BoundaryKind(99)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("BoundaryKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestNewBoundary(t *testing.T) {
	b := NewBoundary(10, 7, Weak)
	if b.ByteOffset != 10 || b.CharOffset != 7 || b.Kind != Weak {
		t.Fatalf("NewBoundary(10, 7, Weak) = %+v", b)
	}
}
