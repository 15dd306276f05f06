package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmcgann/plychess/pkg/board"
	"github.com/tmcgann/plychess/pkg/board/fen"
	"github.com/tmcgann/plychess/pkg/eval"
)

func TestNominalValue(t *testing.T) {
	tests := []struct {
		kind  board.Kind
		value eval.Score
	}{
		{board.Pawn, 100},
		{board.Knight, 320},
		{board.Bishop, 330},
		{board.Rook, 500},
		{board.Queen, 900},
		{board.King, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.value, eval.NominalValue(tt.kind))
	}
}

func TestScoreBoardInitialPositionIsBalanced(t *testing.T) {
	gs, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	assert.Equal(t, eval.Score(0), eval.ScoreBoard(gs))
}

func TestScoreBoardCheckmate(t *testing.T) {
	gs := board.NewGameState()
	// Fool's mate: Black delivers checkmate, so White to move is mated.
	for _, mv := range [][2]string{{"F2", "F3"}, {"E7", "E5"}, {"G2", "G4"}, {"D8", "H4"}} {
		from, err := board.ParseSquare(mv[0])
		require.NoError(t, err)
		to, err := board.ParseSquare(mv[1])
		require.NoError(t, err)
		id := from.Row*1000 + from.Col*100 + to.Row*10 + to.Col
		m, ok := gs.ValidMoves[id]
		require.True(t, ok)
		gs.MakeMove(m)
		gs.GenerateLegalMoves()
	}

	require.True(t, gs.CheckMate)
	assert.Equal(t, -eval.Checkmate, eval.ScoreBoard(gs))
}

func TestScoreBoardStalemate(t *testing.T) {
	gs, err := fen.Decode("k7/2K5/1Q6/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	require.True(t, gs.StaleMate)
	assert.Equal(t, eval.Stalemate, eval.ScoreBoard(gs))
}

// TestPieceSquareMirrorSymmetry covers the invariant that a White piece's
// placement bonus on (row, col) equals the same-kind Black piece's bonus on
// the vertically mirrored square (7-row, col).
func TestPieceSquareMirrorSymmetry(t *testing.T) {
	tests := []string{
		"8/8/8/3N4/8/8/8/8 w - - 0 1",
		"8/3B4/8/8/8/8/8/8 w - - 0 1",
		"3Q4/8/8/8/8/8/8/8 w - - 0 1",
	}

	for _, f := range tests {
		white, err := fen.Decode(f)
		require.NoError(t, err)

		var row, col int
		var kind board.Kind
		for r := 0; r < 8; r++ {
			for c := 0; c < 8; c++ {
				if !white.Board[r][c].IsEmpty() {
					row, col, kind = r, c, white.Board[r][c].Kind
				}
			}
		}

		black := board.NewGameState()
		black.Board = [8][8]board.Piece{}
		black.Board[7-row][col] = board.Piece{Color: board.Black, Kind: kind}
		black.WhiteKingLocation = board.NoSquare
		black.BlackKingLocation = board.NoSquare
		black.WhiteToMove = false

		whiteScore := eval.ScoreBoard(white)
		blackScore := eval.ScoreBoard(black)
		assert.Equal(t, whiteScore, -blackScore, "mirrored placement must score equal and opposite for %v", f)
	}
}
