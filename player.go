// player.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements the Player capability the referee calls once
// per turn, and the trivial strategies used to drive deterministic
// tests (spec §6, Player interface).

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
	"context"
	"math/rand"
	"sort"
)

// Strategy picks one move out of a generated candidate list. The
// three bundled strategies differ only in this choice (spec §6).
type Strategy interface {
	BestMove(moves []*Move, rack *Rack) *Move
}

// LocalPlayer is a Player that keeps its own board and rack mirror in
// sync with the referee's move stream and defers move selection to a
// Strategy (spec §3, Player state; spec §6, Player interface).
type LocalPlayer struct {
	board    *Board
	rack     *Rack
	lexicon  *Lexicon
	strategy Strategy
}

// NewLocalPlayer builds a LocalPlayer with its own private board.
func NewLocalPlayer(variant *VariantDef, lex *Lexicon, startingRack []rune, strategy Strategy) *LocalPlayer {
	return &LocalPlayer{
		board:    NewBoard(variant),
		rack:     NewRack(startingRack),
		lexicon:  lex,
		strategy: strategy,
	}
}

// Move implements Player.
func (p *LocalPlayer) Move(drawnTiles []rune, opponentLastMove *Move) (*Move, error) {
	p.rack.Add(drawnTiles)
	if opponentLastMove != nil && opponentLastMove.Kind != Trade {
		if err := p.board.Play(opponentLastMove); err != nil {
			return nil, err
		}
	}
	moves, err := GenerateMoves(context.Background(), p.lexicon, p.board, p.rack.AsString())
	if err != nil {
		return nil, err
	}
	mv := p.strategy.BestMove(moves, p.rack)
	if mv.Kind != Trade {
		if err := p.board.Play(mv); err != nil {
			return nil, err
		}
	}
	if err := p.rack.Remove(mv.Tiles()); err != nil {
		return nil, err
	}
	return mv, nil
}

// MaxScoreStrategy always picks the highest-scoring available move,
// breaking ties lexicographically on the formed word so that two runs
// over the same position and rack make the same choice (spec §8,
// scenario 5: "max-score with lexicographic tiebreak on word"),
// falling back to exchanging the whole rack when none exists.
type MaxScoreStrategy struct{}

// BestMove implements Strategy.
func (MaxScoreStrategy) BestMove(moves []*Move, rack *Rack) *Move {
	if len(moves) == 0 {
		return NewTradeMove(rack.AsString())
	}
	best := moves[0]
	for _, m := range moves[1:] {
		if m.Score > best.Score || (m.Score == best.Score && m.Word < best.Word) {
			best = m
		}
	}
	return best
}

// MaxLengthStrategy picks the longest available word, breaking ties
// by score.
type MaxLengthStrategy struct{}

// BestMove implements Strategy.
func (MaxLengthStrategy) BestMove(moves []*Move, rack *Rack) *Move {
	if len(moves) == 0 {
		return NewTradeMove(rack.AsString())
	}
	best := moves[0]
	bestLen := len([]rune(best.Word))
	for _, m := range moves[1:] {
		l := len([]rune(m.Word))
		if l > bestLen || (l == bestLen && m.Score > best.Score) {
			best, bestLen = m, l
		}
	}
	return best
}

// RandomStrategy picks uniformly among the legal moves, after sorting
// them by canonical string so the choice is reproducible given a
// seeded source (spec §6: "random", used for deterministic tests).
type RandomStrategy struct {
	Rand *rand.Rand
}

// BestMove implements Strategy.
func (s RandomStrategy) BestMove(moves []*Move, rack *Rack) *Move {
	if len(moves) == 0 {
		return NewTradeMove(rack.AsString())
	}
	sorted := append([]*Move(nil), moves...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Render() < sorted[j].Render() })
	r := s.Rand
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}
	return sorted[r.Intn(len(sorted))]
}
