// variant.go
// This file implements the in-memory shape of a variant description
// (spec §6, "Variant description") and a loader that decodes it from
// JSON; NewBoard turns it into board bonuses and tile tables. The file that parses
// a variant off disk is an external collaborator; this package only
// consumes the shape below.

package skrafl

import (
	"encoding/json"
	"fmt"
	"io"
)

// BonusType identifies whether a board bonus multiplies the letter
// value or the whole word.
type BonusType string

// The two bonus kinds a square may carry (spec §3, Square).
const (
	BonusLetter BonusType = "letter"
	BonusWord   BonusType = "word"
)

// BonusSpec places one bonus at one board coordinate.
type BonusSpec struct {
	Row        int       `json:"row"`
	Col        int       `json:"col"`
	Type       BonusType `json:"type"`
	Multiplier int       `json:"multiplier"`
}

// VariantDef is the external, in-memory shape of a variant
// description (spec §6). It is produced by a loader outside this
// module and consumed by NewBoard; NewBag receives its tile
// distribution through Board.AllTiles.
type VariantDef struct {
	Dim                 int            `json:"dim"`
	BingoBonus           int            `json:"bingo_bonus"`
	RackSize             int            `json:"rack_size"`
	LetterDistribution  map[string]int `json:"letter_distribution"`
	LetterValues         map[string]int `json:"letter_values"`
	Bonus                []BonusSpec    `json:"bonus"`
}

// LoadVariant decodes a VariantDef from JSON read off r. This is the
// thin loader spec §6 calls an external collaborator; it is included
// here only because a complete repository needs at least one concrete
// implementation of the shape it describes.
func LoadVariant(r io.Reader) (*VariantDef, error) {
	var v VariantDef
	dec := json.NewDecoder(r)
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode variant: %w", err)
	}
	if v.Dim <= 0 {
		return nil, fmt.Errorf("decode variant: invalid dim %d", v.Dim)
	}
	if v.RackSize <= 0 {
		v.RackSize = RackSize
	}
	return &v, nil
}

// letterValuesRunes converts the string-keyed JSON map to the rune-keyed
// map the rest of the package works with.
func (v *VariantDef) letterValuesRunes() map[rune]int {
	out := make(map[rune]int, len(v.LetterValues))
	for k, val := range v.LetterValues {
		for _, r := range k {
			out[r] = val
			break
		}
	}
	return out
}

func (v *VariantDef) letterDistributionRunes() map[rune]int {
	out := make(map[rune]int, len(v.LetterDistribution))
	for k, val := range v.LetterDistribution {
		for _, r := range k {
			out[r] = val
			break
		}
	}
	return out
}

// standardWordMultipliers is the word-bonus layout of a standard
// 15x15 Scrabble board, copied verbatim from the teacher's
// WORD_MULTIPLIERS_STANDARD (board.go).
var standardWordMultipliers = [BoardSize]string{
	"311111131111113",
	"121111111111121",
	"112111111111211",
	"111211111112111",
	"111121111121111",
	"111111111111111",
	"111111111111111",
	"311111121111113",
	"111111111111111",
	"111111111111111",
	"111121111121111",
	"111211111112111",
	"112111111111211",
	"121111111111121",
	"311111131111113",
}

// standardLetterMultipliers is the letter-bonus layout of a standard
// 15x15 Scrabble board, copied verbatim from the teacher's
// LETTER_MULTIPLIERS_STANDARD (board.go).
var standardLetterMultipliers = [BoardSize]string{
	"111211111112111",
	"111113111311111",
	"111111212111111",
	"211111121111112",
	"111111111111111",
	"131113111311131",
	"112111212111211",
	"111211111112111",
	"112111212111211",
	"131113111311131",
	"111111111111111",
	"211111121111112",
	"111111212111111",
	"111113111311111",
	"111211111112111",
}

// standardEnglishScores and standardEnglishCounts are the teacher's
// (old) standard English tile set (bag.go, initEnglishTileSet),
// carried over verbatim.
var standardEnglishScores = map[rune]int{
	'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1,
	'F': 4, 'G': 2, 'H': 4, 'I': 1, 'J': 8,
	'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1,
	'P': 3, 'Q': 10, 'R': 1, 'S': 1, 'T': 1,
	'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4,
	'Z': 10, '?': 0,
}

var standardEnglishCounts = map[rune]int{
	'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12,
	'F': 2, 'G': 3, 'H': 2, 'I': 9, 'J': 1,
	'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8,
	'P': 2, 'Q': 1, 'R': 6, 'S': 4, 'T': 6,
	'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2,
	'Z': 1, '?': 2,
}

// StandardEnglishVariant returns the built-in standard 15x15 English
// Scrabble variant, expressed as a VariantDef so that it flows through
// exactly the same NewBoard/NewBag path as an externally loaded
// variant would.
func StandardEnglishVariant() *VariantDef {
	v := &VariantDef{
		Dim:                BoardSize,
		BingoBonus:          BingoBonus,
		RackSize:            RackSize,
		LetterDistribution: make(map[string]int),
		LetterValues:        make(map[string]int),
	}
	for r, count := range standardEnglishCounts {
		v.LetterDistribution[string(r)] = count
	}
	for r, score := range standardEnglishScores {
		v.LetterValues[string(r)] = score
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if m := int(standardWordMultipliers[row][col] - '0'); m >= 2 {
				v.Bonus = append(v.Bonus, BonusSpec{row, col, BonusWord, m})
			}
			if m := int(standardLetterMultipliers[row][col] - '0'); m >= 2 {
				v.Bonus = append(v.Bonus, BonusSpec{row, col, BonusLetter, m})
			}
		}
	}
	return v
}
