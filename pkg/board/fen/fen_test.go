package fen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmcgann/plychess/pkg/board"
	"github.com/tmcgann/plychess/pkg/board/fen"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	tests := []string{
		fen.Initial,
		"4k3/2pppp2/8/4P1K1/4PP2/3P4/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"8/8/8/3pP3/8/8/8/8 w - d6 0 1",
	}

	for _, tt := range tests {
		gs, err := fen.Decode(tt)
		require.NoErrorf(t, err, "decoding %q", tt)
		assert.Equal(t, tt, fen.Encode(gs))
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
	}
	for _, tt := range tests {
		_, err := fen.Decode(tt)
		assert.Errorf(t, err, "expected error for %q", tt)
	}
}

func TestInitialPositionKingLocations(t *testing.T) {
	gs, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	assert.Equal(t, board.Square{Row: 7, Col: 4}, gs.WhiteKingLocation)
	assert.Equal(t, board.Square{Row: 0, Col: 4}, gs.BlackKingLocation)
	assert.Equal(t, 20, len(gs.ValidMoves))
}
