package search

import (
	"context"
	"math/rand"

	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/tmcgann/plychess/pkg/board"
	"github.com/tmcgann/plychess/pkg/eval"
)

// Greedy looks one ply ahead: for each candidate move it plays the reply
// that is best for the opponent, and picks the candidate that minimizes
// that reply's material score. It does not recurse past the opponent's
// single best reply.
type Greedy struct {
	rand *rand.Rand
}

// NewGreedy returns a Greedy strategy seeded deterministically for its
// root-level tie-break.
func NewGreedy(seed int64) *Greedy {
	return &Greedy{rand: rand.New(rand.NewSource(seed))}
}

func (s *Greedy) FindMove(ctx context.Context, gs *board.GameState) (board.Move, error) {
	best := eval.Checkmate
	var candidates []board.Move

	for _, move := range gs.ValidMoves {
		if contextx.IsCancelled(ctx) {
			break
		}

		gs.MakeMove(move)
		gs.GenerateLegalMoves()

		var opponentMax eval.Score
		switch {
		case gs.StaleMate:
			opponentMax = eval.Stalemate
		case gs.CheckMate:
			opponentMax = -eval.Checkmate
		default:
			opponentMax = -eval.Checkmate
			for _, reply := range gs.ValidMoves {
				gs.MakeMove(reply)
				gs.GenerateLegalMoves()

				var replyScore eval.Score
				switch {
				case gs.CheckMate:
					replyScore = eval.Checkmate
				case gs.StaleMate:
					replyScore = eval.Stalemate
				default:
					replyScore = -eval.ScoreMaterial(gs)
				}
				if replyScore > opponentMax {
					opponentMax = replyScore
				}

				gs.UndoMove()
			}
		}

		if opponentMax < best {
			best = opponentMax
			candidates = []board.Move{move}
		} else if opponentMax == best {
			candidates = append(candidates, move)
		}

		gs.UndoMove()
	}
	gs.GenerateLegalMoves()

	if contextx.IsCancelled(ctx) {
		return board.Move{}, ctx.Err()
	}
	return pickRandom(s.rand, candidates)
}
