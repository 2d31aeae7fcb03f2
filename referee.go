// referee.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements the Referee: the turn loop that runs a full
// two-player game to completion (spec §4.5).

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
	"fmt"
	"time"

	"github.com/google/uuid"
)

// consecutivePassLimit is the number of consecutive pass/exchange
// turns that ends a game (spec §4.5, Termination tests).
const consecutivePassLimit = 6

// Player is the capability the referee calls once per turn. Move is
// handed the tiles drawn on the player's previous turn and the
// opponent's last move (already masked by the referee if it was a
// TRADE), and returns the player's chosen move. An error signals a
// communication failure with an external agent (spec §4.5, §6).
type Player interface {
	Move(drawnTiles []rune, opponentLastMove *Move) (*Move, error)
}

// PlayerRecord is the referee's bookkeeping for one seat (spec §3,
// Referee state).
type PlayerRecord struct {
	ID        string
	Player    Player
	Rack      *Rack
	Score     int
	LastMove  *Move
	LastDrawn []rune
	Exception string
}

// MoveLogEntry records one turn of the game (spec §6, Game result).
type MoveLogEntry struct {
	Player     int
	RackBefore string
	MoveString string
	Score      int
	TimeMicros int64
}

// PlayerResult is one seat's entry in the final Result (spec §6).
type PlayerResult struct {
	ID        string
	Rack      string
	Score     int
	Exception string
}

// Result is what the referee returns once a game ends (spec §6, Game
// result).
type Result struct {
	ID      uuid.UUID
	Moves   []MoveLogEntry
	Players [2]PlayerResult
}

// Referee runs a single game between two Players to completion.
type Referee struct {
	ID      uuid.UUID
	Board   *Board
	Bag     *Bag
	Variant *VariantDef
	Lexicon *Lexicon
	Players [2]*PlayerRecord
	moveLog []MoveLogEntry
	passes  int
}

// NewReferee sets up a game: a fresh board and bag for the variant,
// and both players' starting racks drawn (spec §4.5, preamble).
func NewReferee(variant *VariantDef, lex *Lexicon, idA string, playerA Player, idB string, playerB Player, policy DrawPolicy) *Referee {
	board := NewBoard(variant)
	bag := NewBag(board.AllTiles(), policy)
	ref := &Referee{
		ID:      uuid.New(),
		Board:   board,
		Bag:     bag,
		Variant: variant,
		Lexicon: lex,
	}
	ref.Players[0] = &PlayerRecord{ID: idA, Player: playerA, Rack: NewRack(nil)}
	ref.Players[1] = &PlayerRecord{ID: idB, Player: playerB, Rack: NewRack(nil)}
	for _, pr := range ref.Players {
		drawn := bag.Draw(variant.RackSize)
		pr.Rack.Add(drawn)
		pr.LastDrawn = drawn
	}
	return ref
}

// Play runs the turn loop to completion and returns the final result.
func (ref *Referee) Play(ctx context.Context) *Result {
	current, other := 0, 1
	for {
		cp, op := ref.Players[current], ref.Players[other]

		opponentMove := maskedOpponentMove(op.LastMove)
		start := time.Now()
		mv, err := cp.Player.Move(cp.LastDrawn, opponentMove)
		elapsed := time.Since(start)
		if err != nil {
			cp.Exception = fmt.Errorf("%w: %v", ErrExternalPlayer, err).Error()
			return ref.finish()
		}

		authoritative, err := ref.validate(cp, mv)
		if err != nil {
			cp.Exception = err.Error()
			return ref.finish()
		}

		rackBefore := cp.Rack.AsString()
		if err := cp.Rack.Remove(authoritative.Tiles()); err != nil {
			cp.Exception = err.Error()
			return ref.finish()
		}

		drawn := ref.Bag.Draw(ref.Board.RackSize - cp.Rack.Count())
		cp.LastDrawn = drawn
		cp.Rack.Add(drawn)

		if authoritative.Kind == Trade {
			ref.Bag.Return([]rune(authoritative.Word))
		}
		if err := ref.Board.Play(authoritative); err != nil {
			cp.Exception = err.Error()
			return ref.finish()
		}

		cp.Score += authoritative.Score
		cp.LastMove = authoritative
		ref.moveLog = append(ref.moveLog, MoveLogEntry{
			Player:     current,
			RackBefore: rackBefore,
			MoveString: authoritative.Render(),
			Score:      authoritative.Score,
			TimeMicros: elapsed.Microseconds(),
		})

		if authoritative.Kind == Trade {
			ref.passes++
		} else {
			ref.passes = 0
		}

		if ref.passes >= consecutivePassLimit {
			for _, pr := range ref.Players {
				pr.Score -= pr.Rack.Value(ref.Board.LetterValues)
			}
			return ref.finish()
		}
		if ref.Bag.Count() == 0 && cp.Rack.IsEmpty() {
			cp.Score += 2 * op.Rack.Value(ref.Board.LetterValues)
			return ref.finish()
		}

		current, other = other, current
	}
}

func maskedOpponentMove(last *Move) *Move {
	if last == nil {
		return nil
	}
	if last.Kind == Trade && last.Word != "" {
		masked := *last
		masked.Word = last.MaskWord()
		return &masked
	}
	return last
}

// validate checks a submitted move against the rules of spec §4.5
// step 2, returning the authoritative move (with its authoritative
// score) on success.
func (ref *Referee) validate(pr *PlayerRecord, mv *Move) (*Move, error) {
	if mv == nil {
		return nil, fmt.Errorf("%w: no move returned", ErrInvalidMove)
	}
	if mv.Kind == Trade {
		if mv.Word != "" && !ref.Bag.ExchangeAllowed(ref.Board.RackSize) {
			return nil, fmt.Errorf("%w: not enough tiles left to exchange", ErrInvalidMove)
		}
		return mv, nil
	}
	legal, err := GenerateMoves(context.Background(), ref.Lexicon, ref.Board, pr.Rack.AsString())
	if err != nil {
		return nil, err
	}
	for _, candidate := range legal {
		if candidate.Equal(mv) {
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidMove, mv.Render())
}

func (ref *Referee) finish() *Result {
	res := &Result{ID: ref.ID, Moves: ref.moveLog}
	for i, pr := range ref.Players {
		res.Players[i] = PlayerResult{
			ID:        pr.ID,
			Rack:      pr.Rack.AsString(),
			Score:     pr.Score,
			Exception: pr.Exception,
		}
	}
	return res
}
