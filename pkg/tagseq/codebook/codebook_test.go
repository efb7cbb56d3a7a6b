package codebook

import "testing"

func TestInternAssignsDenseIndices(t *testing.T) {
	cb := New()

	ids := []int{
		cb.Intern("T0=c"),
		cb.Intern("T0=v"),
		cb.Intern("T-1=START"),
	}

	for want, got := range ids {
		if got != want {
			t.Errorf("Intern #%d = %d, want %d", want, got, want)
		}
	}

	if cb.Len() != 3 {
		t.Errorf("Len() = %d, want 3", cb.Len())
	}
}

func TestInternIdempotent(t *testing.T) {
	cb := New()

	first := cb.Intern("T0=c")
	cb.Intern("T0=v")
	again := cb.Intern("T0=c")

	if again != first {
		t.Errorf("re-interning returned %d, want %d", again, first)
	}
	if cb.Len() != 2 {
		t.Errorf("Len() = %d after duplicate intern, want 2", cb.Len())
	}
}

func TestInternDistinctIdentifiers(t *testing.T) {
	cb := New()

	idents := []string{"a", "b", "c", "d"}
	seen := make(map[int]string)
	for _, s := range idents {
		id := cb.Intern(s)
		if prev, dup := seen[id]; dup {
			t.Errorf("identifiers %q and %q share index %d", prev, s, id)
		}
		seen[id] = s
	}

	// Indices must be exactly {0..n-1}.
	for id := 0; id < len(idents); id++ {
		if _, ok := seen[id]; !ok {
			t.Errorf("index %d was never assigned", id)
		}
	}
}

func TestIDWithoutIntern(t *testing.T) {
	cb := New()
	cb.Intern("present")

	if id, ok := cb.ID("present"); !ok || id != 0 {
		t.Errorf("ID(present) = %d, %v, want 0, true", id, ok)
	}
	if _, ok := cb.ID("absent"); ok {
		t.Error("ID(absent) should not be found")
	}
	if cb.Len() != 1 {
		t.Errorf("ID must not intern; Len() = %d, want 1", cb.Len())
	}
}

func TestNameRoundTrip(t *testing.T) {
	cb := New()
	cb.Intern("B")
	cb.Intern("I")

	name, ok := cb.Name(1)
	if !ok || name != "I" {
		t.Errorf("Name(1) = %q, %v, want \"I\", true", name, ok)
	}
	if _, ok := cb.Name(2); ok {
		t.Error("Name(2) should be out of range")
	}
	if _, ok := cb.Name(-1); ok {
		t.Error("Name(-1) should be out of range")
	}
}

func TestNamesOrderAndCopy(t *testing.T) {
	cb := New()
	cb.Intern("x")
	cb.Intern("y")

	names := cb.Names()
	if len(names) != 2 || names[0] != "x" || names[1] != "y" {
		t.Errorf("Names() = %v, want [x y]", names)
	}

	names[0] = "mutated"
	if got, _ := cb.Name(0); got != "x" {
		t.Error("mutating Names() result must not affect the codebook")
	}
}
