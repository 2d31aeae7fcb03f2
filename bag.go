// bag.go
//
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file contains the Bag: the multiset of tiles not yet drawn
// into a rack, and the two draw policies the referee can use.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package skrafl

import (
	"fmt"
	"math/rand"
)

// DrawPolicy selects how Bag.Draw picks tiles.
type DrawPolicy int

// Random is used in production; HeadOfBag gives deterministic,
// reproducible draws for tests (spec §4.5, Draw policy).
const (
	RandomDraw DrawPolicy = iota
	HeadOfBagDraw
)

// Bag is the multiset of tiles remaining to be drawn.
type Bag struct {
	tiles  []rune
	policy DrawPolicy
}

// NewBag copies tiles (typically Board.AllTiles()) into a fresh Bag.
func NewBag(tiles []rune, policy DrawPolicy) *Bag {
	b := &Bag{tiles: make([]rune, len(tiles)), policy: policy}
	copy(b.tiles, tiles)
	return b
}

// Count returns the number of tiles remaining in the bag.
func (b *Bag) Count() int {
	if b == nil {
		return 0
	}
	return len(b.tiles)
}

// Draw removes up to n tiles from the bag and returns them. Fewer
// than n tiles are returned if the bag holds fewer than n (spec §4.5,
// step 4: "Draw min(rack_size - |rack|, |bag|) tiles").
func (b *Bag) Draw(n int) []rune {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	drawn := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		var idx int
		if b.policy == HeadOfBagDraw {
			idx = 0
		} else {
			idx = rand.Intn(len(b.tiles))
		}
		drawn = append(drawn, b.tiles[idx])
		b.tiles = append(b.tiles[:idx], b.tiles[idx+1:]...)
	}
	return drawn
}

// Return appends tiles back to the bag, as happens with the discarded
// tiles of a TRADE move (spec §4.5, step 5).
func (b *Bag) Return(tiles []rune) {
	b.tiles = append(b.tiles, tiles...)
}

// ExchangeAllowed reports whether the bag holds at least rackSize
// tiles, the precondition for a non-empty TRADE move (spec §4.5,
// Exchange-word legality).
func (b *Bag) ExchangeAllowed(rackSize int) bool {
	return b.Count() >= rackSize
}

// String renders the bag's remaining tile count, for logging.
func (b *Bag) String() string {
	if b == nil || len(b.tiles) == 0 {
		return "empty"
	}
	return fmt.Sprintf("%d tiles", len(b.tiles))
}
