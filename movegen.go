// movegen.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file contains code to generate all valid tile moves
// on a SCRABBLE(tm) board, given a player's rack.
// It is a part of the Go 'skrafl' package.

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

/*

The code herein finds all legal moves on a SCRABBLE(tm)-like board.

The algorithm is based on the classic paper by Appel & Jacobson,
"The World's Fastest Scrabble Program". GenerateMoves divides the
board into 30 one-dimensional axes (rows and columns) and runs the
same anchor/left-part/right-extension search over each one, relying
on Axis to make a column look like a row to the search.

Note: SCRABBLE is a registered trademark. This software or its author
are in no way affiliated with or endorsed by the owners or licensees
of the SCRABBLE trademark.

*/

package skrafl

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// noCrossScore is the sentinel cross-score meaning "no cross word",
// distinct from the value 0 which occurs when the cross word is
// composed only of blanks (spec §4.4, Cross-score).
const noCrossScore = -1

// leftPart is a (prefix, lexicon position, remaining rack) triple
// produced while enumerating the left parts a rack can form.
type leftPart struct {
	word      []rune
	node      Node
	rackAfter string
}

// findLeftParts enumerates, for every length 0..maxLen, every prefix
// the rack can spell while staying on a path in the lexicon starting
// at its root (spec §4.4, Left part / right part).
func findLeftParts(lex *Lexicon, rack string, maxLen int) [][]leftPart {
	result := make([][]leftPart, maxLen+1)
	var rec func(node Node, word []rune, remRack string)
	rec = func(node Node, word []rune, remRack string) {
		length := len(word)
		result[length] = append(result[length], leftPart{
			word:      append([]rune(nil), word...),
			node:      node,
			rackAfter: remRack,
		})
		if length == maxLen {
			return
		}
		for _, x := range node.NextLetters() {
			if idx := strings.IndexRune(remRack, x); idx >= 0 {
				if next, ok := node.Descend(x); ok {
					rec(next, append(word, x), removeAt(remRack, idx))
				}
			}
			if idx := strings.IndexRune(remRack, '?'); idx >= 0 {
				if next, ok := node.Descend(x); ok {
					rec(next, append(word, toLowerRune(x)), removeAt(remRack, idx))
				}
			}
		}
	}
	rec(lex.Root(), nil, rack)
	return result
}

func removeAt(s string, idx int) string {
	runes := []rune(s)
	return string(append(runes[:idx], runes[idx+1:]...))
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// crossScore returns the scoring contribution of the orthogonal
// fragment at `pos` if a tile is placed there, or noCrossScore if
// there is no cross word (spec §4.4, Cross-score).
func (a *Axis) crossScore(pos int) int {
	up, down := a.crossFragments(pos)
	if up == "" && down == "" {
		return noCrossScore
	}
	sum := 0
	for _, r := range up {
		sum += a.board.LetterValue(r)
	}
	for _, r := range down {
		sum += a.board.LetterValue(r)
	}
	row, col := a.coord(pos)
	if sq := a.board.Sq(row, col); sq.WordMultiplier > 1 {
		sum *= sq.WordMultiplier
	}
	return sum
}

// crossAllowedLetters returns the set of uppercase letters allowed at
// `pos` by the orthogonal cross word, or nil to mean every letter is
// allowed (no cross word constrains this square).
func (a *Axis) crossAllowedLetters(lex *Lexicon, pos int) []rune {
	up, down := a.crossFragments(pos)
	if up == "" && down == "" {
		return nil
	}
	set := lex.CrossSet(up, down)
	letters := make([]rune, 0, len(set))
	for r := range set {
		letters = append(letters, r)
	}
	return letters
}

// scoreCandidate scores a candidate word of the given mask starting
// at axis position `startPos`, following the scoring procedure of
// spec §4.4 exactly.
func (a *Axis) scoreCandidate(startPos int, word []rune, mask []bool) int {
	base, baseMult, extra, played := 0, 1, 0, 0
	for i, letter := range word {
		pos := startPos + i
		row, col := a.coord(pos)
		sq := a.board.Sq(row, col)
		v := a.board.LetterValue(letter)
		if mask[i] {
			played++
			if sq.LetterMultiplier > 1 {
				v *= sq.LetterMultiplier
			}
			if cs := a.crossScore(pos); cs != noCrossScore {
				extra += cs + v
			}
			if sq.WordMultiplier > 1 {
				baseMult *= sq.WordMultiplier
			}
		}
		base += v
	}
	score := base*baseMult + extra
	if played == a.board.RackSize {
		score += a.board.BingoBonus
	}
	return score
}

// extendRight is the ExtendRight half of the Appel & Jacobson
// algorithm: starting at axis position `pos` with lexicon position
// `node` and accumulated word `word`/`mask`, it places tiles from
// `rack` under the lexicon's and the cross-checks' constraints,
// emitting every completed word via `emit` (spec §4.4, Right
// extension).
func (a *Axis) extendRight(lex *Lexicon, anchor, pos int, node Node, word []rune, mask []bool, rack string, emit func(startPos int, word []rune, mask []bool)) {
	dim := a.board.Dim
	if pos >= dim {
		if pos > anchor && node.Final() {
			emit(pos-len(word), word, mask)
		}
		return
	}
	sq := a.sq(pos)
	if !sq.Empty() {
		next, ok := node.Descend(sq.Letter)
		if !ok {
			return
		}
		a.extendRight(lex, anchor, pos+1, next,
			append(append([]rune(nil), word...), sq.Letter),
			append(append([]bool(nil), mask...), false),
			rack, emit)
		return
	}
	if pos > anchor && node.Final() {
		emit(pos-len(word), word, mask)
	}
	allowed := a.crossAllowedLetters(lex, pos)
	for _, x := range node.NextLetters() {
		if allowed != nil && !slices.Contains(allowed, x) {
			continue
		}
		if idx := strings.IndexRune(rack, x); idx >= 0 {
			if next, ok := node.Descend(x); ok {
				a.extendRight(lex, anchor, pos+1, next,
					append(append([]rune(nil), word...), x),
					append(append([]bool(nil), mask...), true),
					removeAt(rack, idx), emit)
			}
		}
		if idx := strings.IndexRune(rack, '?'); idx >= 0 {
			if next, ok := node.Descend(x); ok {
				a.extendRight(lex, anchor, pos+1, next,
					append(append([]rune(nil), word...), toLowerRune(x)),
					append(append([]bool(nil), mask...), true),
					removeAt(rack, idx), emit)
			}
		}
	}
}

// GenerateMoves returns every legal move along this axis given rack,
// as full Move values with Score already computed.
func (a *Axis) GenerateMoves(lex *Lexicon, rack string) []*Move {
	var moves []*Move
	kind := Across
	if !a.horizontal {
		kind = Down
	}
	emit := func(startPos int, word []rune, mask []bool) {
		row, col := a.coord(startPos)
		mv := NewPlacementMove(row, col, kind, string(word), append([]bool(nil), mask...))
		mv.Score = a.scoreCandidate(startPos, word, mask)
		moves = append(moves, mv)
	}

	maxPossible := len([]rune(rack)) - 1
	if maxPossible < 0 {
		maxPossible = 0
	}
	leftParts := findLeftParts(lex, rack, maxPossible)

	lastAnchor := -1
	for _, anchor := range a.anchors() {
		leftFilled := anchor > 0 && !a.sq(anchor-1).Empty()
		if anchor == 0 || leftFilled {
			fixed := a.fixedLeftFragment(anchor)
			if node, ok := lex.Descend(fixed); ok {
				mask := make([]bool, len([]rune(fixed)))
				a.extendRight(lex, anchor, anchor, node, []rune(fixed), mask, rack, emit)
			}
		} else {
			maxLeft := anchor - lastAnchor - 1
			if maxLeft > maxPossible {
				maxLeft = maxPossible
			}
			for length := 0; length <= maxLeft; length++ {
				for _, lp := range leftParts[length] {
					mask := make([]bool, len(lp.word))
					for i := range mask {
						mask[i] = true
					}
					a.extendRight(lex, anchor, anchor, lp.node, lp.word, mask, lp.rackAfter, emit)
				}
			}
		}
		lastAnchor = anchor
	}
	return moves
}

// GenerateMoves returns every legal ACROSS and DOWN move on board for
// rack, fanning one goroutine out per board line (spec §4.4,
// Transposition for DOWN; §5, Concurrency & resource model notes that
// move generation itself is the one place internal parallelism is
// used to cover the board's 2*D axes).
func GenerateMoves(ctx context.Context, lex *Lexicon, board *Board, rack string) ([]*Move, error) {
	g, _ := errgroup.WithContext(ctx)
	var mu sync.Mutex
	var moves []*Move
	collect := func(found []*Move) {
		if len(found) == 0 {
			return
		}
		mu.Lock()
		moves = append(moves, found...)
		mu.Unlock()
	}
	for i := 0; i < board.Dim; i++ {
		i := i
		g.Go(func() error {
			collect(NewAxis(board, i, true).GenerateMoves(lex, rack))
			return nil
		})
		g.Go(func() error {
			collect(NewAxis(board, i, false).GenerateMoves(lex, rack))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slices.SortFunc(moves, func(a, b *Move) bool {
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Render() < b.Render()
	})
	return moves, nil
}
