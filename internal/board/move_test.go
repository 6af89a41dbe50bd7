package board

import (
	"errors"
	"strings"
	"testing"
)

func TestSquareMappingBijection(t *testing.T) {
	for col := 0; col < Size; col++ {
		for row := 0; row < Size; row++ {
			file, rank := FileLabels[col], RankLabels[row]
			upper := strings.ToUpper(string(file))[0]

			for _, f := range []byte{file, upper} {
				m, err := MoveFromText(f, rank, f, rank)
				if err != nil {
					t.Fatalf("MoveFromText(%c%c): %v", f, rank, err)
				}
				if m.From.Col() != col || m.From.Row() != row || m.To != m.From {
					t.Errorf("MoveFromText(%c%c) = (%d,%d), want (%d,%d)",
						f, rank, m.From.Col(), m.From.Row(), col, row)
				}
			}

			sq := NewSquare(col, row)
			parsed, err := ParseSquare(sq.String())
			if err != nil || parsed != sq {
				t.Errorf("ParseSquare(%s) = %v, %v", sq, parsed, err)
			}
		}
	}
}

func TestSquareOrientation(t *testing.T) {
	tests := []struct {
		text     string
		col, row int
	}{
		{"a8", 0, 0},
		{"h8", 7, 0},
		{"a1", 0, 7},
		{"h1", 7, 7},
		{"E2", 4, 6},
		{"f3", 5, 5},
	}
	for _, tc := range tests {
		sq, err := ParseSquare(tc.text)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", tc.text, err)
		}
		if sq.Col() != tc.col || sq.Row() != tc.row {
			t.Errorf("ParseSquare(%q) = (%d,%d), want (%d,%d)", tc.text, sq.Col(), sq.Row(), tc.col, tc.row)
		}
	}
	if A1 != NewSquare(0, 7) || H8 != NewSquare(7, 0) {
		t.Errorf("corner constants disagree with NewSquare")
	}
}

func TestMoveFromTextRejectsUnknown(t *testing.T) {
	tests := [][4]byte{
		{'i', '2', 'e', '4'},
		{'e', '9', 'e', '4'},
		{'e', '2', 'z', '4'},
		{'e', '2', 'e', '0'},
	}
	for _, tc := range tests {
		_, err := MoveFromText(tc[0], tc[1], tc[2], tc[3])
		if !errors.Is(err, ErrUnrecognizedCoordinate) {
			t.Errorf("MoveFromText(%s) error = %v, want ErrUnrecognizedCoordinate", tc[:], err)
		}
	}
}

func TestMoveFromTextLenientDefaultsToZero(t *testing.T) {
	m := MoveFromTextLenient('x', '2', 'e', '?')
	if m.From != NewSquare(0, 6) {
		t.Errorf("From = %s, want a2", m.From)
	}
	if m.To != NewSquare(4, 0) {
		t.Errorf("To = %s, want e8", m.To)
	}
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("g1", "f3")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if got := m.String(); got != "g1f3" {
		t.Errorf("String() = %q, want g1f3", got)
	}
	if _, err := ParseMove("g", "f3"); !errors.Is(err, ErrUnrecognizedCoordinate) {
		t.Errorf("short square error = %v", err)
	}
	if NewMove(8, 0, 0, 0).IsValid() {
		t.Errorf("out-of-range NewMove reported valid")
	}
}

func TestPieceCodes(t *testing.T) {
	for p := WhitePawn; p <= BlackKing; p++ {
		if got := PieceFromChar(p.Char()); got != p {
			t.Errorf("PieceFromChar(%c) = %v, want %v", p.Char(), got, p)
		}
		key := p.AssetKey()
		if len(key) != 2 || key[0] != p.Color().Code()[0] {
			t.Errorf("AssetKey(%v) = %q", p, key)
		}
	}
	if NoPiece.AssetKey() != "" || NoPiece.Color() != NoColor || NoPiece.Type() != NoPieceType {
		t.Errorf("empty piece carries a side or asset")
	}

	tests := []struct {
		side Color
		code string
		want Piece
	}{
		{White, "", WhitePawn},
		{White, "N", WhiteKnight},
		{Black, "N", BlackKnight},
		{Black, "q", BlackQueen},
		{White, "K", WhiteKing},
	}
	for _, tc := range tests {
		got, err := PieceFromCode(tc.side, tc.code)
		if err != nil || got != tc.want {
			t.Errorf("PieceFromCode(%v, %q) = %v, %v; want %v", tc.side, tc.code, got, err, tc.want)
		}
	}
	if _, err := PieceFromCode(White, "X"); !errors.Is(err, ErrUnrecognizedCoordinate) {
		t.Errorf("PieceFromCode(X) error = %v", err)
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     []string
	}{
		{
			name: "pawn push",
			from: StartPosition,
			to:   "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR",
			want: []string{"e2e4"},
		},
		{
			name: "castle",
			from: "r1bqkb1r/pppp1ppp/2n2n2/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R",
			to:   "r1bqkb1r/pppp1ppp/2n2n2/1B2p3/4P3/5N2/PPPP1PPP/RNBQ1RK1",
			want: []string{"e1g1", "h1f1"},
		},
		{
			name: "capture",
			from: "r1bqkb1r/pppp1ppp/2nn4/1B2p3/8/5N2/PPPP1PPP/RNBQR1K1",
			to:   "r1bqkb1r/pppp1ppp/2nn4/1B2N3/8/8/PPPP1PPP/RNBQR1K1",
			want: []string{"f3e5"},
		},
		{
			name: "identical",
			from: StartPosition,
			to:   StartPosition,
			want: nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			from, err := ParsePosition(tc.from)
			if err != nil {
				t.Fatal(err)
			}
			to, err := ParsePosition(tc.to)
			if err != nil {
				t.Fatal(err)
			}
			moves := Diff(from, to)
			if len(moves) != len(tc.want) {
				t.Fatalf("Diff = %v, want %v", moves, tc.want)
			}
			for i, m := range moves {
				if m.String() != tc.want[i] {
					t.Errorf("move %d = %s, want %s", i, m, tc.want[i])
				}
			}
		})
	}
}
