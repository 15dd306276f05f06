// perft is a move-generation debugging tool: it counts the number of legal
// move sequences from a position to a fixed depth. See:
// https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/seekerror/logw"

	"github.com/tmcgann/plychess/pkg/board"
	"github.com/tmcgann/plychess/pkg/board/fen"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}

	gs, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen %q: %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := count(gs, i, *divide && i == *depth)
		duration := time.Since(start)

		fmt.Printf("perft,%v,%v,%v,%v\n", *position, i, nodes, duration.Microseconds())
	}
}

func count(gs *board.GameState, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range gs.ValidMoves {
		gs.MakeMove(m)
		gs.GenerateLegalMoves()
		n := count(gs, depth-1, false)
		gs.UndoMove()

		if d {
			fmt.Printf("%v: %v\n", m, n)
		}
		nodes += n
	}
	gs.GenerateLegalMoves()
	return nodes
}
