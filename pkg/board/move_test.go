package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmcgann/plychess/pkg/board"
)

func TestMoveID(t *testing.T) {
	// start_row*1000 + start_col*100 + end_row*10 + end_col
	m := board.Move{
		From: board.Square{Row: 6, Col: 4},
		To:   board.Square{Row: 4, Col: 4},
	}
	assert.Equal(t, 6044, m.ID())
}

func TestMoveEquals(t *testing.T) {
	a := board.Move{From: board.Square{Row: 6, Col: 4}, To: board.Square{Row: 4, Col: 4}, Piece: board.Piece{Color: board.White, Kind: board.Pawn}}
	b := board.Move{From: board.Square{Row: 6, Col: 4}, To: board.Square{Row: 4, Col: 4}, Piece: board.Piece{Color: board.White, Kind: board.Pawn}, IsPawnPromotion: true}
	assert.True(t, a.Equals(b))
}

func TestMoveIsCapture(t *testing.T) {
	noncapture := board.Move{Capture: board.NoPiece}
	capture := board.Move{Capture: board.Piece{Color: board.Black, Kind: board.Rook}}
	assert.False(t, noncapture.IsCapture())
	assert.True(t, capture.IsCapture())
}

func TestChessNotation(t *testing.T) {
	m := board.Move{From: board.Square{Row: 6, Col: 4}, To: board.Square{Row: 4, Col: 4}}
	assert.Equal(t, "E2E4", board.ChessNotation(m))
	assert.Equal(t, "E2E4", m.String())
}
