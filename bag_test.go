package skrafl

import "testing"

func TestBagDrawHeadOfBagIsDeterministic(t *testing.T) {
	bag := NewBag([]rune("ABCDE"), HeadOfBagDraw)
	drawn := bag.Draw(3)
	if string(drawn) != "ABC" {
		t.Errorf("Draw(3) with HeadOfBagDraw = %q, want %q", string(drawn), "ABC")
	}
	if bag.Count() != 2 {
		t.Errorf("Count() after draw = %d, want 2", bag.Count())
	}
}

func TestBagDrawCapsAtBagSize(t *testing.T) {
	bag := NewBag([]rune("AB"), HeadOfBagDraw)
	drawn := bag.Draw(7)
	if len(drawn) != 2 {
		t.Errorf("Draw(7) from a 2-tile bag returned %d tiles, want 2", len(drawn))
	}
	if bag.Count() != 0 {
		t.Errorf("Count() after draining = %d, want 0", bag.Count())
	}
}

func TestBagReturn(t *testing.T) {
	bag := NewBag([]rune("AB"), HeadOfBagDraw)
	bag.Draw(2)
	bag.Return([]rune("XY"))
	if bag.Count() != 2 {
		t.Errorf("Count() after Return = %d, want 2", bag.Count())
	}
}

func TestBagExchangeAllowed(t *testing.T) {
	bag := NewBag([]rune("ABCDEFG"), HeadOfBagDraw)
	if !bag.ExchangeAllowed(7) {
		t.Errorf("ExchangeAllowed(7) with 7 tiles left should be true")
	}
	bag.Draw(1)
	if bag.ExchangeAllowed(7) {
		t.Errorf("ExchangeAllowed(7) with 6 tiles left should be false")
	}
}
