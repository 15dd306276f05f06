package search

import (
	"context"
	"math/rand"

	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/tmcgann/plychess/pkg/board"
	"github.com/tmcgann/plychess/pkg/eval"
)

// Negamax implements fixed-depth negamax: the single-recursion form of
// minimax that negates the score at every ply instead of alternating a
// maximizing/minimizing branch. Pseudo-code:
//
// function negamax(node, depth, color) is
//    if depth = 0 or node is a terminal node then
//        return color * the heuristic value of node
//    value := −∞
//    for each child of node do
//        value := max(value, −negamax(child, depth − 1, −color))
//    return value
//
// See: https://en.wikipedia.org/wiki/Negamax.
type Negamax struct {
	Depth int

	rand      *rand.Rand
	bestMoves []board.Move
}

// NewNegamax returns a Negamax strategy at the given depth, seeded
// deterministically for its root-level tie-break.
func NewNegamax(depth int, seed int64) *Negamax {
	return &Negamax{Depth: depth, rand: rand.New(rand.NewSource(seed))}
}

func (s *Negamax) FindMove(ctx context.Context, gs *board.GameState) (board.Move, error) {
	s.bestMoves = nil
	s.search(ctx, gs, gs.ValidMoves, gs.WhiteToMove, s.Depth)
	gs.GenerateLegalMoves()
	if contextx.IsCancelled(ctx) {
		return board.Move{}, ctx.Err()
	}
	return pickRandom(s.rand, s.bestMoves)
}

func (s *Negamax) search(ctx context.Context, gs *board.GameState, moves map[int]board.Move, whiteToMove bool, depth int) eval.Score {
	if depth <= 0 || contextx.IsCancelled(ctx) {
		turn := eval.Score(1)
		if !whiteToMove {
			turn = -1
		}
		return turn * eval.ScoreBoard(gs)
	}

	max := -eval.Checkmate
	for _, move := range moves {
		gs.MakeMove(move)
		next := gs.GenerateLegalMoves()
		score := -s.search(ctx, gs, next, !whiteToMove, depth-1)
		gs.UndoMove()

		if score > max {
			max = score
			if depth == s.Depth {
				s.bestMoves = []board.Move{move}
			}
		} else if score == max && depth == s.Depth {
			s.bestMoves = append(s.bestMoves, move)
		}
	}
	return max
}
