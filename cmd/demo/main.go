// Command demo plays a full game of random legal moves against itself,
// useful for eyeballing the rules engine and terminal detection.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"landbattle/engine"
	"landbattle/game"
)

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
	verbose := flag.Bool("v", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if !*verbose {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	rng := rand.New(rand.NewSource(*seed))

	eng, err := engine.NewStandardGame(game.StandardRules())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up game")
	}

	moves := 0
	for {
		if result, over := eng.TerminalResult(); over {
			fmt.Printf("result: %s after %d moves (seed %d)\n", result, moves, *seed)
			return
		}
		legal := eng.LegalMoves()
		if len(legal) == 0 {
			log.Fatal().Msg("no legal moves but game not terminal")
		}
		move := legal[rng.Intn(len(legal))]
		if _, err := eng.SubmitMove(move.Player, move); err != nil {
			log.Fatal().Err(err).Msg("legal move rejected")
		}
		moves++
	}
}
