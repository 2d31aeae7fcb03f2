// rack.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the Rack: the multiset of tile glyphs held by
// one player, private to that player's state and never shared with
// the referee (spec §3, Player state).

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
	"sort"
)

// Rack holds the tile glyphs a player currently has to play with.
// Uppercase glyphs are regular tiles; '?' is a blank not yet played.
type Rack struct {
	tiles []rune
}

// NewRack copies tiles into a fresh Rack.
func NewRack(tiles []rune) *Rack {
	return &Rack{tiles: append([]rune(nil), tiles...)}
}

// Count returns the number of tiles on the rack.
func (r *Rack) Count() int {
	return len(r.tiles)
}

// IsEmpty reports whether the rack holds no tiles.
func (r *Rack) IsEmpty() bool {
	return len(r.tiles) == 0
}

// AsString returns the rack's tiles as a string, sorted so that it is
// a stable key for the move generator's left-part search.
func (r *Rack) AsString() string {
	sorted := append([]rune(nil), r.tiles...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return string(sorted)
}

// Add appends tiles to the rack, as happens on a draw.
func (r *Rack) Add(tiles []rune) {
	r.tiles = append(r.tiles, tiles...)
}

// Remove removes each glyph of tiles from the rack: an uppercase
// letter is removed by itself; a lowercase letter (a blank played as
// that letter) removes a '?' instead. Remove fails atomically,
// leaving the rack untouched, if any glyph cannot be found (spec
// §4.5, step 3).
func (r *Rack) Remove(tiles string) error {
	working := append([]rune(nil), r.tiles...)
	for _, g := range tiles {
		glyph := g
		if g >= 'a' && g <= 'z' {
			glyph = '?'
		}
		idx := indexRune(working, glyph)
		if idx < 0 {
			return fmt.Errorf("%w: rack does not contain %q", ErrInvalidMove, glyph)
		}
		working = append(working[:idx], working[idx+1:]...)
	}
	r.tiles = working
	return nil
}

func indexRune(rs []rune, target rune) int {
	for i, r := range rs {
		if r == target {
			return i
		}
	}
	return -1
}

// Value sums the tile values of the rack's contents, used for the
// referee's end-of-game rack-value adjustments (spec §4.5, step 7).
func (r *Rack) Value(letterValues map[rune]int) int {
	sum := 0
	for _, t := range r.tiles {
		sum += letterValues[t]
	}
	return sum
}
