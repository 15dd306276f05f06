// Package search implements move-selection strategies over the rules
// engine's GameState. All strategies explore by mutating the GameState in
// place via MakeMove/UndoMove; none clone the board.
package search

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/tmcgann/plychess/pkg/board"
)

// DefaultDepth is the recommended ply limit for the depth-limited strategies.
const DefaultDepth = 3

// Strategy selects a move from the current position. The caller must ensure
// gs.ValidMoves is non-empty before calling FindMove; a position with no
// legal moves is a driver error, not something a Strategy recovers from.
type Strategy interface {
	FindMove(ctx context.Context, gs *board.GameState) (board.Move, error)
}

func moveValues(moves map[int]board.Move) []board.Move {
	ret := make([]board.Move, 0, len(moves))
	for _, m := range moves {
		ret = append(ret, m)
	}
	// Map iteration order varies from run to run; sort so that a seeded pick
	// is reproducible.
	sort.Slice(ret, func(i, j int) bool { return ret[i].ID() < ret[j].ID() })
	return ret
}

func pickRandom(rnd *rand.Rand, moves []board.Move) (board.Move, error) {
	if len(moves) == 0 {
		return board.Move{}, fmt.Errorf("no candidate moves")
	}
	return moves[rnd.Intn(len(moves))], nil
}
