package skrafl

import "testing"

func TestRackAsStringIsSorted(t *testing.T) {
	r := NewRack([]rune("TACX?"))
	if got := r.AsString(); got != "?ACTX" {
		t.Errorf("AsString() = %q, want %q", got, "?ACTX")
	}
}

func TestRackRemoveBlankAccounting(t *testing.T) {
	r := NewRack([]rune("CAT?"))
	// "s" lowercase stands for a blank played as S.
	if err := r.Remove("CAts"); err == nil {
		t.Errorf("Remove(\"CAts\") should fail: rack has no 't' tile and two lowercase glyphs")
	}
	if err := r.Remove("CAs"); err != nil {
		t.Errorf("Remove(\"CAs\") should consume C, A and the blank as 's': %v", err)
	}
	if r.Count() != 1 || r.tiles[0] != 'T' {
		t.Errorf("rack after Remove = %v, want just 'T' left", r.tiles)
	}
}

func TestRackRemoveAtomicOnFailure(t *testing.T) {
	r := NewRack([]rune("CAT"))
	before := r.AsString()
	if err := r.Remove("CATZ"); err == nil {
		t.Fatalf("Remove(\"CATZ\") should fail: rack has no Z")
	}
	if r.AsString() != before {
		t.Errorf("failed Remove mutated the rack: now %q, want unchanged %q", r.AsString(), before)
	}
}

func TestRackAddAndCount(t *testing.T) {
	r := NewRack(nil)
	if !r.IsEmpty() {
		t.Fatalf("fresh rack should be empty")
	}
	r.Add([]rune("CAT"))
	if r.Count() != 3 {
		t.Errorf("Count() = %d, want 3", r.Count())
	}
}

func TestRackValue(t *testing.T) {
	values := map[rune]int{'C': 3, 'A': 1, 'T': 1, '?': 0}
	r := NewRack([]rune("CAT?"))
	if got := r.Value(values); got != 5 {
		t.Errorf("Value() = %d, want 5", got)
	}
}
