package board

// slidingDirections are the eight ray directions from a king, orthogonal
// first (indices 0..3), then diagonal (indices 4..7), matching the indexing
// the pin/check analyzer dispatches on.
var slidingDirections = [8][2]int{
	{-1, 0}, {0, -1}, {1, 0}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

var rookDirections = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
var bishopDirections = [4][2]int{{-1, 1}, {-1, -1}, {1, -1}, {1, 1}}

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingOffsets = [8][2]int{
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
}

func inBounds(row, col int) bool {
	return row >= 0 && row < 8 && col >= 0 && col < 8
}

// GenerateLegalMoves recomputes and returns the fully legal moves available
// to the side to move. It refreshes InCheck, CheckMate, StaleMate, the
// transient pins/checks, and the cached ValidMoves.
func (gs *GameState) GenerateLegalMoves() map[int]Move {
	savedEnPassant := gs.EnPassantPossible
	savedCastleRights := gs.CastleRights

	gs.InCheck, gs.pins, gs.checks = gs.checkForPinsAndChecks()

	moves := map[int]Move{}
	king := gs.KingLocation(gs.Turn())

	switch {
	case len(gs.checks) >= 2:
		// Double check: only the king can move.
		gs.generateKingMoves(king, moves)

	case len(gs.checks) == 1:
		pseudo := gs.generateAllPseudoLegalMoves()

		chk := gs.checks[0]
		attacker := Square{Row: chk.Row, Col: chk.Col}
		attackerPiece := gs.Board[chk.Row][chk.Col]

		var blocking []Square
		if attackerPiece.Kind == Knight {
			blocking = []Square{attacker}
		} else {
			for i := 1; i < 8; i++ {
				sq := Square{Row: king.Row + chk.DR*i, Col: king.Col + chk.DC*i}
				blocking = append(blocking, sq)
				if sq == attacker {
					break
				}
			}
		}

		for id, m := range pseudo {
			if m.Piece.Kind == King {
				moves[id] = m
				continue
			}
			for _, b := range blocking {
				if m.To == b {
					moves[id] = m
					break
				}
			}
		}

	default:
		moves = gs.generateAllPseudoLegalMoves()
	}

	gs.appendCastleMoves(king, moves)

	gs.EnPassantPossible = savedEnPassant
	gs.CastleRights = savedCastleRights

	gs.ValidMoves = moves
	if len(moves) == 0 {
		gs.CheckMate = gs.InCheck
		gs.StaleMate = !gs.InCheck
	} else {
		gs.CheckMate = false
		gs.StaleMate = false
	}
	return moves
}

// generateAllPseudoLegalMoves generates every pseudo-legal move for the side
// to move, honoring pins (king moves are already fully legal, having tested
// their own trial relocation).
func (gs *GameState) generateAllPseudoLegalMoves() map[int]Move {
	moves := map[int]Move{}
	turn := gs.Turn()

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := gs.Board[row][col]
			if p.IsEmpty() || p.Color != turn {
				continue
			}
			switch p.Kind {
			case Pawn:
				gs.generatePawnMoves(Square{Row: row, Col: col}, moves)
			case Knight:
				gs.generateSteppingMoves(Square{Row: row, Col: col}, knightOffsets[:], moves)
			case Bishop:
				gs.generateSlidingMoves(Square{Row: row, Col: col}, bishopDirections[:], moves)
			case Rook:
				gs.generateSlidingMoves(Square{Row: row, Col: col}, rookDirections[:], moves)
			case Queen:
				gs.generateSlidingMoves(Square{Row: row, Col: col}, rookDirections[:], moves)
				gs.generateSlidingMoves(Square{Row: row, Col: col}, bishopDirections[:], moves)
			case King:
				gs.generateKingMoves(Square{Row: row, Col: col}, moves)
			}
		}
	}
	return moves
}

// findPin returns whether (row,col) is pinned and, if so, the pin's ray
// direction. Pin entries are read-only: a cleaner alternative to the
// destructively-consumed pin list the generators would otherwise need to
// coordinate over (see design notes).
func (gs *GameState) findPin(row, col int) (bool, int, int) {
	for _, p := range gs.pins {
		if p.Row == row && p.Col == col {
			return true, p.DR, p.DC
		}
	}
	return false, 0, 0
}

func pinAllows(pinDR, pinDC, moveDR, moveDC int) bool {
	return (moveDR == pinDR && moveDC == pinDC) || (moveDR == -pinDR && moveDC == -pinDC)
}

func (gs *GameState) generatePawnMoves(sq Square, moves map[int]Move) {
	pinned, pinDR, pinDC := gs.findPin(sq.Row, sq.Col)

	turn := gs.Turn()
	piece := gs.Board[sq.Row][sq.Col]

	var dr, startRow, kingRow, kingCol int
	var enemy Color
	if turn == White {
		dr, startRow, enemy = -1, 6, Black
		kingRow, kingCol = gs.WhiteKingLocation.Row, gs.WhiteKingLocation.Col
	} else {
		dr, startRow, enemy = 1, 1, White
		kingRow, kingCol = gs.BlackKingLocation.Row, gs.BlackKingLocation.Col
	}

	if inBounds(sq.Row+dr, sq.Col) && gs.Board[sq.Row+dr][sq.Col].IsEmpty() {
		if !pinned || pinAllows(pinDR, pinDC, dr, 0) {
			to := Square{Row: sq.Row + dr, Col: sq.Col}
			moves[newMove(sq, to, piece, NoPiece).ID()] = newMove(sq, to, piece, NoPiece)

			if sq.Row == startRow && gs.Board[sq.Row+2*dr][sq.Col].IsEmpty() {
				to2 := Square{Row: sq.Row + 2*dr, Col: sq.Col}
				moves[newMove(sq, to2, piece, NoPiece).ID()] = newMove(sq, to2, piece, NoPiece)
			}
		}
	}

	for _, lr := range [2]int{-1, 1} {
		toCol := sq.Col + lr
		if !inBounds(sq.Row+dr, toCol) {
			continue
		}
		if pinned && !pinAllows(pinDR, pinDC, dr, lr) {
			continue
		}

		to := Square{Row: sq.Row + dr, Col: toCol}
		target := gs.Board[to.Row][to.Col]

		if target.Color == enemy && !target.IsEmpty() {
			m := newMove(sq, to, piece, target)
			moves[m.ID()] = m
			continue
		}

		if to == gs.EnPassantPossible {
			attacking, blocking := false, false
			rangeOffset := 0
			if lr > 0 {
				rangeOffset = 1
			}
			if kingRow == sq.Row {
				var insideFrom, insideTo, step int
				var outsideFrom, outsideTo int
				if kingCol < sq.Col {
					insideFrom, insideTo, step = kingCol+1, sq.Col-1+rangeOffset, 1
					outsideFrom, outsideTo = sq.Col+1+rangeOffset, 7
				} else {
					insideFrom, insideTo, step = kingCol-1, sq.Col+rangeOffset, -1
					outsideFrom, outsideTo = sq.Col-2+rangeOffset, 0
				}
				for c := insideFrom; (step > 0 && c < insideTo) || (step < 0 && c > insideTo); c += step {
					if !gs.Board[sq.Row][c].IsEmpty() {
						blocking = true
					}
				}
				if step > 0 {
					for c := outsideFrom; c <= outsideTo; c++ {
						tile := gs.Board[sq.Row][c]
						if tile.Color == enemy && (tile.Kind == Rook || tile.Kind == Queen) {
							attacking = true
						} else if !tile.IsEmpty() {
							blocking = true
						}
					}
				} else {
					for c := outsideFrom; c >= outsideTo; c-- {
						tile := gs.Board[sq.Row][c]
						if tile.Color == enemy && (tile.Kind == Rook || tile.Kind == Queen) {
							attacking = true
						} else if !tile.IsEmpty() {
							blocking = true
						}
					}
				}
			}
			if !attacking || blocking {
				m := Move{From: sq, To: to, Piece: piece, Capture: Piece{Color: enemy, Kind: Pawn}, IsEnPassant: true}
				moves[m.ID()] = m
			}
		}
	}
}

func (gs *GameState) generateSteppingMoves(sq Square, offsets [][2]int, moves map[int]Move) {
	if pinned, _, _ := gs.findPin(sq.Row, sq.Col); pinned {
		return
	}

	turn := gs.Turn()
	piece := gs.Board[sq.Row][sq.Col]

	for _, o := range offsets {
		to := Square{Row: sq.Row + o[0], Col: sq.Col + o[1]}
		if !to.IsValid() {
			continue
		}
		target := gs.Board[to.Row][to.Col]
		if target.IsEmpty() || target.Color != turn {
			m := newMove(sq, to, piece, target)
			moves[m.ID()] = m
		}
	}
}

func (gs *GameState) generateSlidingMoves(sq Square, directions [][2]int, moves map[int]Move) {
	pinned, pinDR, pinDC := gs.findPin(sq.Row, sq.Col)

	turn := gs.Turn()
	piece := gs.Board[sq.Row][sq.Col]

	for _, d := range directions {
		if pinned && !pinAllows(pinDR, pinDC, d[0], d[1]) {
			continue
		}
		for i := 1; i < 8; i++ {
			to := Square{Row: sq.Row + d[0]*i, Col: sq.Col + d[1]*i}
			if !to.IsValid() {
				break
			}
			target := gs.Board[to.Row][to.Col]
			if target.IsEmpty() {
				m := newMove(sq, to, piece, NoPiece)
				moves[m.ID()] = m
				continue
			}
			if target.Color != turn {
				m := newMove(sq, to, piece, target)
				moves[m.ID()] = m
			}
			break
		}
	}
}

// generateKingMoves tests legality by trial-relocating the king (both its
// recorded location and its piece on the board), re-running the pin/check
// analyzer, and restoring both. King moves deliberately ignore the (about to
// be stale) pins/checks lists built for the pre-move position.
func (gs *GameState) generateKingMoves(sq Square, moves map[int]Move) {
	turn := gs.Turn()
	piece := gs.Board[sq.Row][sq.Col]

	for _, o := range kingOffsets {
		to := Square{Row: sq.Row + o[0], Col: sq.Col + o[1]}
		if !to.IsValid() {
			continue
		}
		target := gs.Board[to.Row][to.Col]
		if !target.IsEmpty() && target.Color == turn {
			continue
		}

		gs.setKingLocation(turn, to)
		captured := gs.Board[to.Row][to.Col]
		gs.Board[to.Row][to.Col] = piece
		gs.Board[sq.Row][sq.Col] = NoPiece

		inCheck, _, _ := gs.checkForPinsAndChecks()

		gs.Board[sq.Row][sq.Col] = piece
		gs.Board[to.Row][to.Col] = captured
		gs.setKingLocation(turn, sq)

		if !inCheck {
			m := newMove(sq, to, piece, target)
			moves[m.ID()] = m
		}
	}
}

// checkForPinsAndChecks walks the eight ray directions and the eight knight
// offsets from the side-to-move's king and classifies attackers into pins
// (blocked by exactly one allied piece) or checks (unobstructed).
func (gs *GameState) checkForPinsAndChecks() (bool, []pin, []check) {
	var pins []pin
	var checks []check

	ally := gs.Turn()
	enemy := ally.Opponent()
	king := gs.KingLocation(ally)

	for j, d := range slidingDirections {
		dr, dc := d[0], d[1]
		var candidate pin
		found := false

		for i := 1; i < 8; i++ {
			row, col := king.Row+dr*i, king.Col+dc*i
			if !inBounds(row, col) {
				break
			}
			p := gs.Board[row][col]
			if p.IsEmpty() {
				continue
			}

			if p.Color == ally {
				if !found {
					candidate = pin{Row: row, Col: col, DR: dr, DC: dc}
					found = true
					continue
				}
				break
			}

			// p.Color == enemy
			isThreat := false
			switch {
			case p.Kind == Queen:
				isThreat = true
			case j <= 3 && p.Kind == Rook:
				isThreat = true
			case j >= 4 && p.Kind == Bishop:
				isThreat = true
			case i == 1 && p.Kind == King:
				isThreat = true
			case i == 1 && p.Kind == Pawn:
				if ally == White && (j == 4 || j == 5) {
					isThreat = true
				}
				if ally == Black && (j == 6 || j == 7) {
					isThreat = true
				}
			}

			if isThreat {
				if !found {
					checks = append(checks, check{Row: row, Col: col, DR: dr, DC: dc})
				} else {
					pins = append(pins, candidate)
				}
			}
			break
		}
	}

	for _, o := range knightOffsets {
		row, col := king.Row+o[0], king.Col+o[1]
		if !inBounds(row, col) {
			continue
		}
		p := gs.Board[row][col]
		if p.Color == enemy && p.Kind == Knight {
			checks = append(checks, check{Row: row, Col: col, DR: o[0], DC: o[1]})
		}
	}

	return len(checks) > 0, pins, checks
}

// tileUnderAttack reports whether the square is attacked by the opponent of
// the side to move, by temporarily flipping side-to-move and generating
// pseudo-legal moves.
func (gs *GameState) tileUnderAttack(sq Square) bool {
	gs.WhiteToMove = !gs.WhiteToMove
	moves := gs.generateAllPseudoLegalMoves()
	gs.WhiteToMove = !gs.WhiteToMove

	for _, m := range moves {
		if m.To == sq {
			return true
		}
	}
	return false
}

func (gs *GameState) appendCastleMoves(king Square, moves map[int]Move) {
	if gs.tileUnderAttack(king) {
		return
	}

	turn := gs.Turn()
	piece := gs.Board[king.Row][king.Col]

	if gs.CastleRights.IsAllowed(kingSide(turn)) {
		if gs.Board[king.Row][king.Col+1].IsEmpty() && gs.Board[king.Row][king.Col+2].IsEmpty() {
			if !gs.tileUnderAttack(Square{Row: king.Row, Col: king.Col + 1}) &&
				!gs.tileUnderAttack(Square{Row: king.Row, Col: king.Col + 2}) {
				to := Square{Row: king.Row, Col: king.Col + 2}
				m := Move{From: king, To: to, Piece: piece, Capture: NoPiece, IsCastle: true}
				moves[m.ID()] = m
			}
		}
	}

	if gs.CastleRights.IsAllowed(queenSide(turn)) {
		if gs.Board[king.Row][king.Col-1].IsEmpty() && gs.Board[king.Row][king.Col-2].IsEmpty() && gs.Board[king.Row][king.Col-3].IsEmpty() {
			if !gs.tileUnderAttack(Square{Row: king.Row, Col: king.Col - 1}) &&
				!gs.tileUnderAttack(Square{Row: king.Row, Col: king.Col - 2}) {
				to := Square{Row: king.Row, Col: king.Col - 2}
				m := Move{From: king, To: to, Piece: piece, Capture: NoPiece, IsCastle: true}
				moves[m.ID()] = m
			}
		}
	}
}
