// plychess is a terminal driver for the rules engine and search package: it
// plays out a game between any combination of a human at the keyboard and
// the available search strategies.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/seekerror/logw"

	"github.com/tmcgann/plychess/pkg/board/fen"
	"github.com/tmcgann/plychess/pkg/orchestrator"
	"github.com/tmcgann/plychess/pkg/search"
)

var (
	white    = flag.String("white", "human", "Strategy for White: human, random, greedy, minimax, negamax, negamaxab")
	black    = flag.String("black", "negamaxab", "Strategy for Black: human, random, greedy, minimax, negamax, negamaxab")
	depth    = flag.Int("depth", search.DefaultDepth, "Search depth for depth-limited strategies")
	seed     = flag.Int64("seed", time.Now().UnixNano(), "Random seed for strategy tie-breaks")
	position = flag.String("fen", "", "Start position (default to standard)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: plychess [options]

plychess plays out a two-player chess game on the terminal.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *position == "" {
		*position = fen.Initial
	}

	whiteStrategy, err := newStrategy(*white, *depth, *seed)
	if err != nil {
		logw.Exitf(ctx, "Invalid -white: %v", err)
	}
	blackStrategy, err := newStrategy(*black, *depth, *seed+1)
	if err != nil {
		logw.Exitf(ctx, "Invalid -black: %v", err)
	}

	o := orchestrator.New(ctx, "plychess", "tmcgann")
	if err := o.Reset(ctx, *position); err != nil {
		logw.Exitf(ctx, "Invalid -fen: %v", err)
	}

	in := readStdinLines(ctx)
	for {
		gs := o.State()
		fmt.Print(gs.String())

		if gs.CheckMate {
			winner := "Black"
			if !gs.WhiteToMove {
				winner = "White"
			}
			fmt.Printf("Checkmate: %v wins\n", winner)
			return
		}
		if gs.StaleMate {
			fmt.Println("Stalemate: draw")
			return
		}

		strategy := whiteStrategy
		if !gs.WhiteToMove {
			strategy = blackStrategy
		}

		if strategy == nil {
			fmt.Print("your move> ")
			line, ok := <-in
			if !ok {
				return
			}
			if err := o.Move(ctx, strings.ToUpper(strings.TrimSpace(line))); err != nil {
				fmt.Println(err)
			}
			continue
		}

		o.SetStrategy(strategy)
		mover := colorName(gs.WhiteToMove)
		m, err := o.Play(ctx)
		if err != nil {
			logw.Exitf(ctx, "Search failed: %v", err)
		}
		fmt.Printf("%v plays %v\n", mover, m)
	}
}

func colorName(whiteToMove bool) string {
	if whiteToMove {
		return "White"
	}
	return "Black"
}

// newStrategy returns nil for "human", meaning the driver reads the move
// from stdin instead of calling a Strategy.
func newStrategy(name string, depth int, seed int64) (search.Strategy, error) {
	switch strings.ToLower(name) {
	case "human":
		return nil, nil
	case "random":
		return search.NewRandom(seed), nil
	case "greedy":
		return search.NewGreedy(seed), nil
	case "minimax":
		return search.NewMinimax(depth, seed), nil
	case "negamax":
		return search.NewNegamax(depth, seed), nil
	case "negamaxab":
		return search.NewNegamaxAB(depth, seed), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}
