package search

import (
	"context"
	"math/rand"

	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/tmcgann/plychess/pkg/board"
	"github.com/tmcgann/plychess/pkg/eval"
)

// NegamaxAB implements negamax with alpha-beta pruning. Pseudo-code:
//
// function negamax(node, depth, α, β, color) is
//    if depth = 0 or node is a terminal node then
//        return color * the heuristic value of node
//    value := −∞
//    for each child of node do
//        value := max(value, −negamax(child, depth − 1, −β, −α, −color))
//        α := max(α, value)
//        if α ≥ β then
//            break (* β cutoff *)
//    return value
//
// See: https://en.wikipedia.org/wiki/Alpha–beta_pruning.
type NegamaxAB struct {
	Depth int

	rand      *rand.Rand
	bestMoves []board.Move
}

// NewNegamaxAB returns a NegamaxAB strategy at the given depth, seeded
// deterministically for its root-level tie-break.
func NewNegamaxAB(depth int, seed int64) *NegamaxAB {
	return &NegamaxAB{Depth: depth, rand: rand.New(rand.NewSource(seed))}
}

func (s *NegamaxAB) FindMove(ctx context.Context, gs *board.GameState) (board.Move, error) {
	s.bestMoves = nil
	s.search(ctx, gs, gs.ValidMoves, gs.WhiteToMove, -eval.Checkmate, eval.Checkmate, s.Depth)
	gs.GenerateLegalMoves()
	if contextx.IsCancelled(ctx) {
		return board.Move{}, ctx.Err()
	}
	return pickRandom(s.rand, s.bestMoves)
}

func (s *NegamaxAB) search(ctx context.Context, gs *board.GameState, moves map[int]board.Move, whiteToMove bool, alpha, beta eval.Score, depth int) eval.Score {
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
		score := -s.search(ctx, gs, next, !whiteToMove, -beta, -alpha, depth-1)
		gs.UndoMove()

		if score > max {
			max = score
			if depth == s.Depth {
				s.bestMoves = []board.Move{move}
			}
		} else if score == max && depth == s.Depth {
			s.bestMoves = append(s.bestMoves, move)
		}

		if max > alpha {
			alpha = max
		}
		if alpha >= beta {
			break
		}
	}
	return max
}
