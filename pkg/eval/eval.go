// Package eval contains position scoring: material values, piece-square
// tables and the checkmate/stalemate-aware board score the search package
// optimizes.
package eval

import "github.com/tmcgann/plychess/pkg/board"

// Score is a position evaluation in centipawns, positive for White.
type Score int

const (
	// Checkmate is the score magnitude of a checkmated position.
	Checkmate Score = 100000
	// Stalemate is the score of a stalemated position.
	Stalemate Score = 0
)

// NominalValue is the material value of a piece kind, in centipawns. The
// King has no material value: it can never be captured.
func NominalValue(k board.Kind) Score {
	switch k {
	case board.Pawn:
		return 100
	case board.Knight:
		return 320
	case board.Bishop:
		return 330
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	default:
		return 0
	}
}

// ScoreMaterial returns the material balance from the perspective of the
// side to move: positive favors the side to move, negative the opponent.
func ScoreMaterial(gs *board.GameState) Score {
	ally, enemy := gs.Turn(), gs.Turn().Opponent()

	var score Score
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := gs.Board[row][col]
			switch p.Color {
			case ally:
				score += NominalValue(p.Kind)
			case enemy:
				score -= NominalValue(p.Kind)
			}
		}
	}
	return score
}

// ScoreBoard returns the overall position score from White's perspective:
// +Checkmate if Black is checkmated, -Checkmate if White is, Stalemate on a
// drawn position, else the piece-square-weighted material balance.
func ScoreBoard(gs *board.GameState) Score {
	if gs.CheckMate {
		if gs.WhiteToMove {
			return -Checkmate
		}
		return Checkmate
	}
	if gs.StaleMate {
		return Stalemate
	}
	return scoreMaterialPieceTable(gs)
}

func scoreMaterialPieceTable(gs *board.GameState) Score {
	var score Score
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := gs.Board[row][col]
			if p.IsEmpty() {
				continue
			}

			var placement Score
			if p.Kind != board.King {
				placement = Score(pieceSquareValue(p, row, col))
			}

			if p.Color == board.White {
				score += NominalValue(p.Kind) + placement
			} else {
				score -= NominalValue(p.Kind) + placement
			}
		}
	}
	return score
}

func pieceSquareValue(p board.Piece, row, col int) int {
	table, ok := whiteSquareTables[p.Kind]
	if !ok {
		return 0
	}
	if p.Color == board.White {
		return table[row][col]
	}
	return table[7-row][col]
}

var whiteSquareTables = map[board.Kind][8][8]int{
	board.Pawn:   pawnTable,
	board.Knight: knightTable,
	board.Bishop: bishopTable,
	board.Rook:   rookTable,
	board.Queen:  queenTable,
}

// The tables below are indexed [row][col] from White's point of view: row 0
// is the 8th rank, row 7 is the 1st rank. A Black piece's value is read from
// the row mirrored across the middle of the board (7-row), same column.

var pawnTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = [8][8]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var bishopTable = [8][8]int{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

var rookTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{0, 0, 0, 5, 5, 0, 0, 0},
}

var queenTable = [8][8]int{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}
