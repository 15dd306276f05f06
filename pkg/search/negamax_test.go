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

func TestNegamaxReturnsLegalMove(t *testing.T) {
	ctx := context.Background()
	gs := board.NewGameState()

	s := search.NewNegamax(2, 1)
	m, err := s.FindMove(ctx, gs)
	require.NoError(t, err)

	_, ok := gs.ValidMoves[m.ID()]
	assert.True(t, ok)
	assert.True(t, gs.WhiteToMove)
}

func TestNegamaxFindsMateInOne(t *testing.T) {
	ctx := context.Background()
	gs, err := fen.Decode("r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 0 1")
	require.NoError(t, err)

	s := search.NewNegamax(1, 1)
	m, err := s.FindMove(ctx, gs)
	require.NoError(t, err)

	gs.MakeMove(m)
	gs.GenerateLegalMoves()
	assert.True(t, gs.CheckMate)
}

// TestNegamaxAgreesWithMinimax checks that negamax's single-recursion,
// sign-flipping form picks the same kind of best move (the free queen
// capture) as the alternating max/min form it is derived from.
func TestNegamaxAgreesWithMinimax(t *testing.T) {
	ctx := context.Background()
	gs, err := fen.Decode("3q3k/8/8/8/8/8/8/3R3K w - - 0 1")
	require.NoError(t, err)

	mm, err := search.NewMinimax(2, 1).FindMove(ctx, gs)
	require.NoError(t, err)
	nm, err := search.NewNegamax(2, 1).FindMove(ctx, gs)
	require.NoError(t, err)

	assert.Equal(t, board.Queen, mm.Capture.Kind)
	assert.Equal(t, board.Queen, nm.Capture.Kind)
}
