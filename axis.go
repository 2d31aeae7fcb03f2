// axis.go
// Axis is a one-dimensional view over a Board row or column. The move
// generator runs the identical left-part/right-extension procedure
// over every row and every column; Axis is what lets the same code
// serve both passes without literally transposing the board.

package skrafl

import "strings"

// Axis addresses either row `index` (horizontal) or column `index`
// (vertical) of a Board.
type Axis struct {
	board      *Board
	index      int
	horizontal bool
}

// NewAxis returns the Axis for board row/column `index`.
func NewAxis(board *Board, index int, horizontal bool) *Axis {
	return &Axis{board: board, index: index, horizontal: horizontal}
}

func (a *Axis) coord(pos int) (row, col int) {
	if a.horizontal {
		return a.index, pos
	}
	return pos, a.index
}

func (a *Axis) sq(pos int) *Square {
	row, col := a.coord(pos)
	return a.board.Sq(row, col)
}

// anchors returns the positions along this axis that are anchor
// squares (spec §4.4, Anchor squares).
func (a *Axis) anchors() []int {
	var out []int
	for i := 0; i < a.board.Dim; i++ {
		row, col := a.coord(i)
		if a.board.IsAnchor(row, col) {
			out = append(out, i)
		}
	}
	return out
}

// crossFragments returns the fragments orthogonal to this axis at
// `pos`: `up` reads toward index 0 (reversed to read forward), `down`
// reads away from index 0 (spec §4.4, Cross-checks).
func (a *Axis) crossFragments(pos int) (up, down string) {
	row, col := a.coord(pos)
	if a.horizontal {
		return a.board.fragmentTowards(row, col, -1, 0), a.board.fragmentTowards(row, col, 1, 0)
	}
	return a.board.fragmentTowards(row, col, 0, -1), a.board.fragmentTowards(row, col, 0, 1)
}

// fixedLeftFragment returns the contiguous filled run immediately
// left of `pos` along the axis, in left-to-right reading order.
func (a *Axis) fixedLeftFragment(pos int) string {
	start := pos - 1
	for start >= 0 && !a.sq(start).Empty() {
		start--
	}
	start++
	var sb strings.Builder
	for i := start; i < pos; i++ {
		sb.WriteRune(a.sq(i).Letter)
	}
	return sb.String()
}

// fragmentTowards walks the board from (row,col) in direction (dr,dc)
// collecting contiguous placed letters, stopping at the first empty
// square or the board edge. When walking towards index 0 the result
// is reversed so it always reads in the forward (increasing index)
// direction, matching the "up"/"down" fragments of spec §4.4.
func (b *Board) fragmentTowards(row, col, dr, dc int) string {
	var letters []rune
	r, c := row+dr, col+dc
	for {
		sq := b.Sq(r, c)
		if sq == nil || sq.Empty() {
			break
		}
		letters = append(letters, sq.Letter)
		r += dr
		c += dc
	}
	if dr < 0 || dc < 0 {
		for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
			letters[i], letters[j] = letters[j], letters[i]
		}
	}
	return string(letters)
}

// IsAnchor reports whether (row, col) is an anchor square: an empty
// square orthogonally adjacent to a filled one, or the board center
// on an empty board (spec §4.4, Anchor squares).
func (b *Board) IsAnchor(row, col int) bool {
	sq := b.Sq(row, col)
	if sq == nil || !sq.Empty() {
		return false
	}
	if b.IsEmpty() {
		cr, cc := b.Center()
		return row == cr && col == cc
	}
	return b.hasAdjacentTile(row, col)
}

func (b *Board) hasAdjacentTile(row, col int) bool {
	deltas := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for _, d := range deltas {
		sq := b.Sq(row+d[0], col+d[1])
		if sq != nil && !sq.Empty() {
			return true
		}
	}
	return false
}
