package board

// Kind represents a chess piece kind (King, Pawn, etc), without color.
type Kind uint8

const (
	Empty Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func ParseKind(r rune) (Kind, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return Empty, false
	}
}

func (k Kind) IsValid() bool {
	return Pawn <= k && k <= King
}

func (k Kind) String() string {
	switch k {
	case Empty:
		return " "
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// Piece is the content of a single square: either NoPiece (the empty square,
// distinct from any occupied square) or a (Color, Kind) pair. The zero value
// is NoPiece.
type Piece struct {
	Color Color
	Kind  Kind
}

// NoPiece is the distinguished empty-square value.
var NoPiece = Piece{Kind: Empty}

func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

func (p Piece) Equals(o Piece) bool {
	return p.Kind == o.Kind && (p.Kind == Empty || p.Color == o.Color)
}

// String renders the piece the way the move log and board dump do: a two
// character code such as "wp", "bK", or "--" for an empty square.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "--"
	}
	c := "w"
	if p.Color == Black {
		c = "b"
	}
	switch p.Kind {
	case Pawn:
		return c + "p"
	case Knight:
		return c + "N"
	case Bishop:
		return c + "B"
	case Rook:
		return c + "R"
	case Queen:
		return c + "Q"
	case King:
		return c + "K"
	default:
		return c + "?"
	}
}
