package board

import "log"

// MakeMove applies m to the position. The contract mirrors the teacher's
// Position.Move: the caller must only ever pass a move that came out of
// GenerateLegalMoves for the current position. MakeMove trusts that
// contract and does not re-validate it — a violation is a programmer error,
// not a recoverable runtime condition (spec §7).
func (gs *GameState) MakeMove(m Move) {
	mover := gs.Board[m.From.Row][m.From.Col]

	gs.Board[m.From.Row][m.From.Col] = NoPiece
	gs.Board[m.To.Row][m.To.Col] = mover

	gs.MoveLog = append(gs.MoveLog, m)
	gs.WhiteToMove = !gs.WhiteToMove

	if mover.Kind == King {
		gs.setKingLocation(mover.Color, m.To)
	}

	if m.IsPawnPromotion {
		gs.Board[m.To.Row][m.To.Col] = Piece{Color: mover.Color, Kind: Queen}
	}

	if m.IsEnPassant {
		gs.Board[m.From.Row][m.To.Col] = NoPiece
	}

	if mover.Kind == Pawn && abs(m.To.Row-m.From.Row) == 2 {
		gs.EnPassantPossible = Square{Row: (m.From.Row + m.To.Row) / 2, Col: m.To.Col}
	} else {
		gs.EnPassantPossible = NoSquare
	}

	if m.IsCastle {
		if m.To.Col-m.From.Col == 2 {
			// King-side: rook from end_col+1 to end_col-1.
			rook := gs.Board[m.To.Row][m.To.Col+1]
			gs.Board[m.To.Row][m.To.Col-1] = rook
			gs.Board[m.To.Row][m.To.Col+1] = NoPiece
		} else {
			// Queen-side: rook from end_col-2 to end_col+1.
			rook := gs.Board[m.To.Row][m.To.Col-2]
			gs.Board[m.To.Row][m.To.Col+1] = rook
			gs.Board[m.To.Row][m.To.Col-2] = NoPiece
		}
	}

	gs.CastleRights = gs.updateCastleRights(gs.CastleRights, m)
	gs.CastleRightsLog = append(gs.CastleRightsLog, gs.CastleRights)

	gs.CheckMate = false
	gs.StaleMate = false
}

// UndoMove reverses the most recent MakeMove. If the history is empty this
// is a logged no-op (spec §7) rather than an error.
func (gs *GameState) UndoMove() {
	if len(gs.MoveLog) == 0 {
		log.Printf("UndoMove: no move to undo")
		return
	}

	n := len(gs.MoveLog) - 1
	m := gs.MoveLog[n]
	gs.MoveLog = gs.MoveLog[:n]

	gs.Board[m.From.Row][m.From.Col] = m.Piece
	gs.Board[m.To.Row][m.To.Col] = m.Capture

	gs.WhiteToMove = !gs.WhiteToMove

	if m.Piece.Kind == King {
		gs.setKingLocation(m.Piece.Color, m.From)
	}

	if m.IsEnPassant {
		gs.Board[m.To.Row][m.To.Col] = NoPiece
		gs.Board[m.From.Row][m.To.Col] = m.Capture
	}

	// En-passant target is a pure function of the move preceding the one just
	// undone: restore it from the new last entry in the log, if any.
	gs.EnPassantPossible = NoSquare
	if len(gs.MoveLog) > 0 {
		prev := gs.MoveLog[len(gs.MoveLog)-1]
		if prev.Piece.Kind == Pawn && abs(prev.To.Row-prev.From.Row) == 2 {
			gs.EnPassantPossible = Square{Row: (prev.From.Row + prev.To.Row) / 2, Col: prev.To.Col}
		}
	}

	gs.CastleRightsLog = gs.CastleRightsLog[:len(gs.CastleRightsLog)-1]
	gs.CastleRights = gs.CastleRightsLog[len(gs.CastleRightsLog)-1]

	if m.IsCastle {
		if m.To.Col-m.From.Col == 2 {
			rook := gs.Board[m.To.Row][m.To.Col-1]
			gs.Board[m.To.Row][m.To.Col+1] = rook
			gs.Board[m.To.Row][m.To.Col-1] = NoPiece
		} else {
			rook := gs.Board[m.To.Row][m.To.Col+1]
			gs.Board[m.To.Row][m.To.Col-2] = rook
			gs.Board[m.To.Row][m.To.Col+1] = NoPiece
		}
	}

	gs.CheckMate = false
	gs.StaleMate = false
}

// updateCastleRights returns the rights remaining after m, given the rights
// in effect before it: the moving color loses both rights if its king
// moved, or the corresponding side if a rook moved or was captured from its
// original corner.
func (gs *GameState) updateCastleRights(rights Castling, m Move) Castling {
	switch {
	case m.Piece.Kind == King:
		rights = rights.Revoke(kingSide(m.Piece.Color) | queenSide(m.Piece.Color))
	case m.Piece.Kind == Rook:
		rights = revokeRookCorner(rights, m.Piece.Color, m.From)
	}

	if m.Capture.Kind == Rook {
		rights = revokeRookCorner(rights, m.Capture.Color, m.To)
	}

	return rights
}

func revokeRookCorner(rights Castling, c Color, sq Square) Castling {
	homeRow := 7
	if c == Black {
		homeRow = 0
	}
	if sq.Row != homeRow {
		return rights
	}
	switch sq.Col {
	case 0:
		return rights.Revoke(queenSide(c))
	case 7:
		return rights.Revoke(kingSide(c))
	default:
		return rights
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
