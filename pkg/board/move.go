package board

import "fmt"

// Move is an immutable record of a single ply. Two moves compare equal iff
// their IDs match.
type Move struct {
	From, To Square
	Piece    Piece // piece moved
	Capture  Piece // piece captured, NoPiece if none

	IsPawnPromotion bool
	IsEnPassant     bool
	IsCastle        bool
}

// ID returns a stable identifier, unique among the moves available from a
// single position: start_row*1000 + start_col*100 + end_row*10 + end_col.
func (m Move) ID() int {
	return m.From.Row*1000 + m.From.Col*100 + m.To.Row*10 + m.To.Col
}

func (m Move) Equals(o Move) bool {
	return m.ID() == o.ID()
}

func (m Move) IsCapture() bool {
	return !m.Capture.IsEmpty()
}

// String renders the move in concatenated-square notation, e.g. "B1C3".
// See ChessNotation for the exported helper of the same behavior.
func (m Move) String() string {
	return ChessNotation(m)
}

func newMove(from, to Square, piece, capture Piece) Move {
	m := Move{From: from, To: to, Piece: piece, Capture: capture}
	if piece.Kind == Pawn && (to.Row == 0 || to.Row == 7) {
		m.IsPawnPromotion = true
	}
	return m
}

// ChessNotation returns the concatenated algebraic squares for a move, e.g.
// start B1 + end C3 -> "B1C3".
func ChessNotation(m Move) string {
	return fmt.Sprintf("%v%v", m.From, m.To)
}
