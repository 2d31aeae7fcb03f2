package skrafl

import "testing"

func TestNewBoardCenterIsAnchorWhenEmpty(t *testing.T) {
	board := NewBoard(StandardEnglishVariant())
	if !board.IsEmpty() {
		t.Fatalf("fresh board should be empty")
	}
	cr, cc := board.Center()
	if !board.IsAnchor(cr, cc) {
		t.Errorf("center square should be the sole anchor on an empty board")
	}
	if board.IsAnchor(0, 0) {
		t.Errorf("corner square should not be an anchor on an empty board")
	}
}

func TestBoardPlayAtomicOnConflict(t *testing.T) {
	board := NewBoard(StandardEnglishVariant())
	cr, cc := board.Center()
	mask := []bool{true, true, true}
	mv := NewPlacementMove(cr, cc, Across, "CAT", mask)
	if err := board.Play(mv); err != nil {
		t.Fatalf("Play(CAT) failed: %v", err)
	}
	if board.Sq(cr, cc).Letter != 'C' {
		t.Errorf("square (%d,%d) = %q, want 'C'", cr, cc, board.Sq(cr, cc).Letter)
	}

	conflicting := NewPlacementMove(cr, cc, Across, "DOG", []bool{true, true, true})
	if err := board.Play(conflicting); err == nil {
		t.Errorf("Play(DOG) over CAT should fail")
	}
	// The board must be untouched by the failed play.
	if board.Sq(cr, cc).Letter != 'C' {
		t.Errorf("failed Play mutated the board: square (%d,%d) = %q", cr, cc, board.Sq(cr, cc).Letter)
	}
}

func TestBoardPlayOverlapSameLetterSucceeds(t *testing.T) {
	board := NewBoard(StandardEnglishVariant())
	cr, cc := board.Center()
	first := NewPlacementMove(cr, cc, Across, "CAT", []bool{true, true, true})
	if err := board.Play(first); err != nil {
		t.Fatalf("Play(CAT) failed: %v", err)
	}
	// CATS crossing through the existing CAT, only 'S' newly placed.
	second := NewPlacementMove(cr, cc, Across, "CATS", []bool{false, false, false, true})
	if err := board.Play(second); err != nil {
		t.Errorf("Play(CATS) over CAT should succeed, got %v", err)
	}
	if board.numTiles != 4 {
		t.Errorf("numTiles = %d, want 4", board.numTiles)
	}
}

func TestBoardLetterValueBlankIsZero(t *testing.T) {
	board := NewBoard(StandardEnglishVariant())
	if v := board.LetterValue('A'); v != 1 {
		t.Errorf("LetterValue('A') = %d, want 1", v)
	}
	if v := board.LetterValue('a'); v != 0 {
		t.Errorf("LetterValue('a') (blank) = %d, want 0", v)
	}
}

func TestBoardAllTilesCount(t *testing.T) {
	board := NewBoard(StandardEnglishVariant())
	tiles := board.AllTiles()
	if len(tiles) != 100 {
		t.Errorf("AllTiles() has %d tiles, want 100 for the standard English set", len(tiles))
	}
}

func TestBoardTradeMoveIsNoOp(t *testing.T) {
	board := NewBoard(StandardEnglishVariant())
	if err := board.Play(NewTradeMove("ABC")); err != nil {
		t.Errorf("Play(trade) should never fail, got %v", err)
	}
	if !board.IsEmpty() {
		t.Errorf("Play(trade) should leave the board empty")
	}
}
