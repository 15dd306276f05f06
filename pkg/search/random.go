package search

import (
	"context"
	"math/rand"

	"github.com/tmcgann/plychess/pkg/board"
)

// Random picks uniformly among the legal moves at the root. Useful as a
// baseline opponent and for exercising the rules engine without any
// evaluation bias.
type Random struct {
	rand *rand.Rand
}

// NewRandom returns a Random strategy seeded deterministically.
func NewRandom(seed int64) *Random {
	return &Random{rand: rand.New(rand.NewSource(seed))}
}

func (s *Random) FindMove(ctx context.Context, gs *board.GameState) (board.Move, error) {
	return pickRandom(s.rand, moveValues(gs.ValidMoves))
}
