// Package fen contains utilities for reading and writing positions in FEN
// notation, used to seed GameState fixtures for tests and the perft tool.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/tmcgann/plychess/pkg/board"
)

const (
	Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Decode parses a FEN record into a GameState. Decode does not reconstruct
// CastleRightsLog or MoveLog history beyond the single starting entry implied
// by the position: a decoded state behaves correctly going forward, but
// UndoMove cannot walk back further than moves made after decoding.
func Decode(record string) (*board.GameState, error) {
	parts := strings.Split(strings.TrimSpace(record), " ")
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid number of sections in FEN: %q", record)
	}

	var squares [8][8]board.Piece
	row, col := 0, 0
	for _, r := range parts[0] {
		switch {
		case r == '/':
			row++
			col = 0
		case unicode.IsDigit(r):
			col += int(r - '0')
		default:
			kind, ok := board.ParseKind(r)
			if !ok {
				return nil, fmt.Errorf("invalid piece %q in FEN: %q", r, record)
			}
			color := board.Black
			if unicode.IsUpper(r) {
				color = board.White
			}
			if row > 7 || col > 7 {
				return nil, fmt.Errorf("too many squares in FEN: %q", record)
			}
			squares[row][col] = board.Piece{Color: color, Kind: kind}
			col++
		}
	}

	turn, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid active color in FEN: %q", record)
	}

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("invalid castling in FEN: %q", record)
	}

	ep := board.NoSquare
	if parts[3] != "-" {
		sq, err := board.ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant in FEN: %q: %w", record, err)
		}
		ep = sq
	}

	if _, err := strconv.Atoi(parts[4]); err != nil {
		return nil, fmt.Errorf("invalid halfmove clock in FEN: %q", record)
	}
	if _, err := strconv.Atoi(parts[5]); err != nil {
		return nil, fmt.Errorf("invalid fullmove number in FEN: %q", record)
	}

	gs := &board.GameState{
		Board:             squares,
		WhiteToMove:       turn == board.White,
		EnPassantPossible: ep,
		CastleRights:      castling,
		CastleRightsLog:   []board.Castling{castling},
		WhiteKingLocation: findKing(squares, board.White),
		BlackKingLocation: findKing(squares, board.Black),
	}
	gs.GenerateLegalMoves()
	return gs, nil
}

func findKing(squares [8][8]board.Piece, c board.Color) board.Square {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := squares[row][col]
			if p.Kind == board.King && p.Color == c {
				return board.Square{Row: row, Col: col}
			}
		}
	}
	return board.NoSquare
}

// Encode renders the position in FEN notation. The halfmove clock and
// fullmove number are not tracked by GameState and are always written as
// "0 1".
func Encode(gs *board.GameState) string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		blanks := 0
		for col := 0; col < 8; col++ {
			p := gs.Board[row][col]
			if p.IsEmpty() {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(p))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if row < 7 {
			sb.WriteString("/")
		}
	}

	turn := "b"
	if gs.WhiteToMove {
		turn = "w"
	}

	ep := "-"
	if !gs.EnPassantPossible.IsNone() {
		ep = strings.ToLower(gs.EnPassantPossible.String())
	}

	return fmt.Sprintf("%v %v %v %v 0 1", sb.String(), turn, printCastling(gs.CastleRights), ep)
}

func parseColor(s string) (board.Color, bool) {
	switch s {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func parseCastling(s string) (board.Castling, bool) {
	if s == "-" {
		return board.NoCastlingRights, true
	}
	var c board.Castling
	for _, r := range s {
		switch r {
		case 'K':
			c |= board.WhiteKingSideCastle
		case 'Q':
			c |= board.WhiteQueenSideCastle
		case 'k':
			c |= board.BlackKingSideCastle
		case 'q':
			c |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return c, true
}

func printCastling(c board.Castling) string {
	return c.String()
}

func printPiece(p board.Piece) rune {
	var r rune
	switch p.Kind {
	case board.Pawn:
		r = 'p'
	case board.Knight:
		r = 'n'
	case board.Bishop:
		r = 'b'
	case board.Rook:
		r = 'r'
	case board.Queen:
		r = 'q'
	case board.King:
		r = 'k'
	default:
		return '?'
	}
	if p.Color == board.White {
		return unicode.ToUpper(r)
	}
	return r
}
