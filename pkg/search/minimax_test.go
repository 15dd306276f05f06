package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmcgann/plychess/pkg/board"
	"github.com/tmcgann/plychess/pkg/board/fen"
	"github.com/tmcgann/plychess/pkg/search"
)

func TestMinimaxReturnsLegalMove(t *testing.T) {
	ctx := context.Background()
	gs := board.NewGameState()

	s := search.NewMinimax(2, 1)
	m, err := s.FindMove(ctx, gs)
	require.NoError(t, err)

	_, ok := gs.ValidMoves[m.ID()]
	assert.True(t, ok)
	assert.True(t, gs.WhiteToMove, "FindMove must leave the position exactly as it found it")
}

func TestMinimaxFindsMateInOne(t *testing.T) {
	ctx := context.Background()
	// White queen on h5 delivers Qxf7#: f7 is defended only by the king, and
	// the bishop on c4 covers f7 so the king cannot recapture.
	gs, err := fen.Decode("r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 0 1")
	require.NoError(t, err)

	s := search.NewMinimax(1, 1)
	m, err := s.FindMove(ctx, gs)
	require.NoError(t, err)

	gs.MakeMove(m)
	gs.GenerateLegalMoves()
	assert.True(t, gs.CheckMate, "minimax at depth 1 must find the immediate checkmate")
}
