// Package board implements the rules engine: the 8x8 game state, legal move
// generation (with pins, checks, castling, en passant and promotion), and the
// make/undo discipline the search package explores positions with.
package board

// pin records that the allied piece at (Row,Col) is pinned along the ray
// (DR,DC) pointing outward from the king.
type pin struct {
	Row, Col, DR, DC int
}

// check records that the enemy piece at (Row,Col) checks the king from
// direction (DR,DC). For a knight check, (DR,DC) is the knight's offset.
type check struct {
	Row, Col, DR, DC int
}

// GameState owns the board, side to move, king locations, castling rights,
// en-passant target and move history for one game. It is not safe for
// concurrent use: at most one traversal (a search, or a driver's make/undo)
// may be in flight at a time, per the single-threaded contract in spec §5.
type GameState struct {
	Board [8][8]Piece

	WhiteToMove bool
	MoveLog     []Move

	WhiteKingLocation Square
	BlackKingLocation Square

	CheckMate bool
	StaleMate bool
	InCheck   bool

	EnPassantPossible Square

	CastleRights    Castling
	CastleRightsLog []Castling

	ValidMoves map[int]Move

	pins   []pin
	checks []check
}

// NewGameState returns the initial position: White to move, all four
// castling rights, no en-passant target.
func NewGameState() *GameState {
	gs := &GameState{
		WhiteToMove:       true,
		WhiteKingLocation: Square{Row: 7, Col: 4},
		BlackKingLocation: Square{Row: 0, Col: 4},
		EnPassantPossible: NoSquare,
		CastleRights:      FullCastlingRights,
		CastleRightsLog:   []Castling{FullCastlingRights},
	}
	gs.Board = initialBoard()
	gs.GenerateLegalMoves()
	return gs
}

func initialBoard() [8][8]Piece {
	var b [8][8]Piece

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, k := range backRank {
		b[0][col] = Piece{Color: Black, Kind: k}
		b[7][col] = Piece{Color: White, Kind: k}
	}
	for col := 0; col < 8; col++ {
		b[1][col] = Piece{Color: Black, Kind: Pawn}
		b[6][col] = Piece{Color: White, Kind: Pawn}
	}
	return b
}

// KingLocation returns the recorded king square for the given color.
func (gs *GameState) KingLocation(c Color) Square {
	if c == White {
		return gs.WhiteKingLocation
	}
	return gs.BlackKingLocation
}

func (gs *GameState) setKingLocation(c Color, sq Square) {
	if c == White {
		gs.WhiteKingLocation = sq
	} else {
		gs.BlackKingLocation = sq
	}
}

// Turn returns the color to move.
func (gs *GameState) Turn() Color {
	if gs.WhiteToMove {
		return White
	}
	return Black
}

func (gs *GameState) String() string {
	var out [8][8]string
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			out[r][c] = gs.Board[r][c].String()
		}
	}

	s := ""
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			s += out[r][c] + " "
		}
		s += "\n"
	}
	return s
}
