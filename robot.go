// robot.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements a SCRABBLE(tm) playing robot,
// and is a part of the Go 'skrafl' package.

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

import "math/rand"

// NewHighScoreRobot returns a LocalPlayer that always plays the
// highest-scoring move available to it.
func NewHighScoreRobot(variant *VariantDef, lex *Lexicon, startingRack []rune) *LocalPlayer {
	return NewLocalPlayer(variant, lex, startingRack, MaxScoreStrategy{})
}

// NewLongestWordRobot returns a LocalPlayer that always plays the
// longest word available to it, breaking ties by score.
func NewLongestWordRobot(variant *VariantDef, lex *Lexicon, startingRack []rune) *LocalPlayer {
	return NewLocalPlayer(variant, lex, startingRack, MaxLengthStrategy{})
}

// NewRandomRobot returns a LocalPlayer that plays a uniformly random
// move from its legal set, seeded for reproducible simulations.
func NewRandomRobot(variant *VariantDef, lex *Lexicon, startingRack []rune, seed int64) *LocalPlayer {
	return NewLocalPlayer(variant, lex, startingRack, RandomStrategy{Rand: rand.New(rand.NewSource(seed))})
}
