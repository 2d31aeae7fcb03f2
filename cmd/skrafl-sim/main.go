// main.go
// CLI that simulates games between robot players.

package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/halldorb/skrafl-engine/config"

	skrafl "github.com/halldorb/skrafl-engine"
)

// RobotConstructor builds a fresh Player for one seat. The player
// starts with an empty rack: its starting tiles arrive the same way
// every later draw does, through the drawnTiles argument of its first
// Move call, since NewReferee is the sole authority that draws from
// the bag (spec §3, Ownership & lifecycle).
type RobotConstructor func(variant *skrafl.VariantDef, lex *skrafl.Lexicon) skrafl.Player

func simulateGame(variant *skrafl.VariantDef, lex *skrafl.Lexicon, robotA, robotB RobotConstructor, verbose bool) (scoreA, scoreB int) {
	p := func(format string, a ...interface{}) {}
	if verbose {
		p = func(format string, a ...interface{}) { fmt.Printf(format, a...) }
	}

	ref := skrafl.NewReferee(variant, lex, "Robot A", robotA(variant, lex), "Robot B", robotB(variant, lex), skrafl.RandomDraw)
	p("starting game %v\n", ref.ID)
	result := ref.Play(context.Background())
	for _, m := range result.Moves {
		p("player %d: %s (%d)\n", m.Player, m.MoveString, m.Score)
	}
	p("game over!\n\n")
	return result.Players[0].Score, result.Players[1].Score
}

func main() {
	strategy := flag.String("s", "highscore", "Robot strategy to use (highscore, longest, random)")
	num := flag.Int("n", 10, "Number of games to simulate")
	quiet := flag.Bool("q", false, "Suppress output of game state and moves")
	wordsPath := flag.String("w", "", "Path to a newline-delimited word list (default: a tiny built-in list)")
	flag.Parse()

	var ctor RobotConstructor
	switch *strategy {
	case "highscore":
		ctor = func(v *skrafl.VariantDef, lex *skrafl.Lexicon) skrafl.Player {
			return skrafl.NewHighScoreRobot(v, lex, nil)
		}
	case "longest":
		ctor = func(v *skrafl.VariantDef, lex *skrafl.Lexicon) skrafl.Player {
			return skrafl.NewLongestWordRobot(v, lex, nil)
		}
	case "random":
		ctor = func(v *skrafl.VariantDef, lex *skrafl.Lexicon) skrafl.Player {
			return skrafl.NewRandomRobot(v, lex, nil, 1)
		}
	default:
		fmt.Printf("Unknown strategy %q. Specify one of 'highscore', 'longest' or 'random'.\n", *strategy)
		return
	}

	words, err := (&config.Config{WordListPath: *wordsPath}).LoadWords()
	if err != nil {
		fmt.Printf("could not load word list: %v\n", err)
		return
	}
	variant := skrafl.StandardEnglishVariant()
	lex := skrafl.NewLexiconFromWords(words)

	var winsA, winsB int
	for i := 0; i < *num; i++ {
		scoreA, scoreB := simulateGame(variant, lex, ctor, ctor, !*quiet)
		switch {
		case scoreA > scoreB:
			winsA++
		case scoreB > scoreA:
			winsB++
		}
	}
	fmt.Printf("%v games were played using the %q strategy.\n"+
		"Robot A won %v games, and Robot B won %v games; %v games were draws.\n",
		*num, *strategy, winsA, winsB, *num-winsA-winsB)
}
