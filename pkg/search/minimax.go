package search

import (
	"context"
	"math/rand"

	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/tmcgann/plychess/pkg/board"
	"github.com/tmcgann/plychess/pkg/eval"
)

// Minimax implements naive fixed-depth minimax over the piece-square-weighted
// board score. Pseudo-code:
//
// function minimax(node, depth, maximizingPlayer) is
//    if depth = 0 or node is a terminal node then
//        return the heuristic value of node
//    if maximizingPlayer then
//        value := −∞
//        for each child of node do
//            value := max(value, minimax(child, depth − 1, FALSE))
//        return value
//    else (* minimizing player *)
//        value := +∞
//        for each child of node do
//            value := min(value, minimax(child, depth − 1, TRUE))
//        return value
//
// See: https://en.wikipedia.org/wiki/Minimax.
type Minimax struct {
	Depth int

	rand      *rand.Rand
	bestMoves []board.Move
}

// NewMinimax returns a Minimax strategy at the given depth, seeded
// deterministically for its root-level tie-break.
func NewMinimax(depth int, seed int64) *Minimax {
	return &Minimax{Depth: depth, rand: rand.New(rand.NewSource(seed))}
}

func (s *Minimax) FindMove(ctx context.Context, gs *board.GameState) (board.Move, error) {
	s.bestMoves = nil
	s.search(ctx, gs, gs.ValidMoves, gs.WhiteToMove, s.Depth)
	gs.GenerateLegalMoves()
	if contextx.IsCancelled(ctx) {
		return board.Move{}, ctx.Err()
	}
	return pickRandom(s.rand, s.bestMoves)
}

func (s *Minimax) search(ctx context.Context, gs *board.GameState, moves map[int]board.Move, whiteToMove bool, depth int) eval.Score {
	if depth <= 0 || contextx.IsCancelled(ctx) {
		return eval.ScoreBoard(gs)
	}

	if whiteToMove {
		max := -eval.Checkmate
		for _, move := range moves {
			gs.MakeMove(move)
			next := gs.GenerateLegalMoves()
			score := s.search(ctx, gs, next, false, depth-1)
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

	min := eval.Checkmate
	for _, move := range moves {
		gs.MakeMove(move)
		next := gs.GenerateLegalMoves()
		score := s.search(ctx, gs, next, true, depth-1)
		gs.UndoMove()

		if score < min {
			min = score
			if depth == s.Depth {
				s.bestMoves = []board.Move{move}
			}
		} else if score == min && depth == s.Depth {
			s.bestMoves = append(s.bestMoves, move)
		}
	}
	return min
}
