package skrafl

import "testing"

func TestMoveRenderParseRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		mv   *Move
		want string
	}{
		{"across", NewPlacementMove(7, 7, Across, "CAT", []bool{true, true, true}), "CAT 8H"},
		{"down", NewPlacementMove(7, 7, Down, "CAT", []bool{true, true, true}), "CAT H8"},
		{"partial overlap", NewPlacementMove(7, 7, Across, "CATS", []bool{false, false, false, true}), "(CAT)S 8H"},
		{"pass", NewTradeMove(""), "--"},
		{"trade", NewTradeMove("AEI"), "AEI --"},
	}
	for _, c := range cases {
		if got := c.mv.Render(); got != c.want {
			t.Errorf("%s: Render() = %q, want %q", c.name, got, c.want)
		}
		parsed, err := ParseMove(c.want)
		if err != nil {
			t.Fatalf("%s: ParseMove(%q) failed: %v", c.name, c.want, err)
		}
		if !parsed.Equal(c.mv) {
			t.Errorf("%s: ParseMove(%q) = %q, want equal to %q", c.name, c.want, parsed.Render(), c.mv.Render())
		}
	}
}

func TestMoveTiles(t *testing.T) {
	mv := NewPlacementMove(7, 7, Across, "CATS", []bool{false, false, false, true})
	if got := mv.Tiles(); got != "S" {
		t.Errorf("Tiles() = %q, want %q", got, "S")
	}
}

func TestMoveEqualDifferentMaskNotEqual(t *testing.T) {
	a := NewPlacementMove(7, 7, Across, "CATS", []bool{true, true, true, true})
	b := NewPlacementMove(7, 7, Across, "CATS", []bool{false, false, false, true})
	if a.Equal(b) {
		t.Errorf("moves with different tile masks over the same letters should not be equal")
	}
}

func TestMoveMaskWord(t *testing.T) {
	mv := NewTradeMove("ABC")
	if got := mv.MaskWord(); got != "***" {
		t.Errorf("MaskWord() = %q, want %q", got, "***")
	}
}

func TestParseMoveInvalidPosition(t *testing.T) {
	if _, err := ParseMove("CAT 8"); err == nil {
		t.Errorf("ParseMove with a bad position should fail")
	}
}

func TestParseMoveNestedParens(t *testing.T) {
	if _, err := ParseMove("CA((T 8H"); err == nil {
		t.Errorf("ParseMove with nested parentheses should fail")
	}
}
