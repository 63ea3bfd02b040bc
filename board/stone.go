package board

import "strings"

// Stone is the four-valued state of a vertex.
type Stone int

const (
	Empty Stone = iota
	Black
	White
	Border
)

// opponents maps every Stone to its opponent; Empty and Border are
// self-opponent so the eye-like rule can treat the border ring uniformly
// with empty space.
var opponents = [4]Stone{Empty, White, Black, Border}

// Opponent returns the other playing color. Empty and Border map to
// themselves.
func (s Stone) Opponent() Stone { return opponents[s] }

func (s Stone) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Black:
		return "Black"
	case White:
		return "White"
	case Border:
		return "Border"
	}
	return "Invalid"
}

// ParseStone parses a GTP-style color token ("b", "black", "w", "white"),
// case-insensitively.
func ParseStone(input string) (Stone, bool) {
	switch strings.ToLower(input) {
	case "b", "black":
		return Black, true
	case "w", "white":
		return White, true
	}
	return Empty, false
}
