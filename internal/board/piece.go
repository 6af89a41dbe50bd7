package board

import "fmt"

// Color represents the side a piece belongs to.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// Code returns the single letter used for the side in move lists ("w" or "b").
func (c Color) Code() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return ""
	}
}

// ParseColor parses a side code ("w"/"b", any case).
func ParseColor(s string) (Color, error) {
	switch s {
	case "w", "W":
		return White, nil
	case "b", "B":
		return Black, nil
	}
	return NoColor, fmt.Errorf("%w: side %q", ErrUnrecognizedCoordinate, s)
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the uppercase letter for the piece type.
func (pt PieceType) Char() byte {
	if pt >= NoPieceType {
		return ' '
	}
	return "PNBRQK"[pt]
}

// Piece combines PieceType and Color into a single value.
// Encoded as: 1 + pieceType + color*6, so the zero value is an empty square.
type Piece uint8

const (
	NoPiece Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

const pieceChars = " PNBRQKpnbrqk"

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(pt) + Piece(c)*6 + 1
}

// IsEmpty reports whether p is the empty piece.
func (p Piece) IsEmpty() bool {
	return p == NoPiece || p > BlackKing
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	if p.IsEmpty() {
		return NoPieceType
	}
	return PieceType((p - 1) % 6)
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	if p.IsEmpty() {
		return NoColor
	}
	return Color((p - 1) / 6)
}

// Char returns the position-string letter for the piece.
// Uppercase for white, lowercase for black, 'o' for an empty square.
func (p Piece) Char() byte {
	if p.IsEmpty() {
		return 'o'
	}
	return pieceChars[p]
}

// String returns the position-string letter for the piece, " " when empty.
func (p Piece) String() string {
	if p.IsEmpty() {
		return " "
	}
	return string(pieceChars[p])
}

// AssetKey returns the renderer key for the piece, e.g. "wN" or "bK".
// The core attaches no meaning to it; the empty piece has no asset.
func (p Piece) AssetKey() string {
	if p.IsEmpty() {
		return ""
	}
	return p.Color().Code() + string(p.Type().Char())
}

// PieceFromChar converts a position-string letter to a Piece.
// Unknown letters return NoPiece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// PieceFromCode resolves a move-list piece code ("N", "q", ...) for the given side.
// An empty code is a pawn move.
func PieceFromCode(c Color, code string) (Piece, error) {
	if c >= NoColor {
		return NoPiece, fmt.Errorf("%w: no side for piece %q", ErrUnrecognizedCoordinate, code)
	}
	if code == "" {
		return NewPiece(Pawn, c), nil
	}
	if len(code) != 1 {
		return NoPiece, fmt.Errorf("%w: piece %q", ErrUnrecognizedCoordinate, code)
	}
	ch := code[0]
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	p := PieceFromChar(ch)
	if p == NoPiece {
		return NoPiece, fmt.Errorf("%w: piece %q", ErrUnrecognizedCoordinate, code)
	}
	return NewPiece(p.Type(), c), nil
}
