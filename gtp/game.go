package gtp

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mononofu/ponygo/board"
	"github.com/mononofu/ponygo/mcts"
)

// Game adapts a board.Board to the GTP handler surface, building a fresh
// mcts.Controller for every genmove — spec.md §5 forbids sharing a
// search tree across gen_move calls, so there is nothing to reuse beyond
// the board position itself.
type Game struct {
	b        *board.Board
	size     int
	rollouts int
	mctsCfg  mcts.Config
	log      logrus.FieldLogger
}

// NewGame constructs a Game with a board of the given size and a default
// per-move rollout budget.
func NewGame(size, rollouts int, mctsCfg mcts.Config, log logrus.FieldLogger) (*Game, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	b, err := board.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "gtp: creating board")
	}
	return &Game{b: b, size: size, rollouts: rollouts, mctsCfg: mctsCfg, log: log}, nil
}

// SetBoardSize rebuilds the board at the given size, discarding the
// current position (the GTP contract expects clear_board to follow).
func (g *Game) SetBoardSize(size int) bool {
	b, err := board.New(size)
	if err != nil {
		return false
	}
	g.b = b
	g.size = size
	return true
}

// ClearBoard resets the current board to the empty position.
func (g *Game) ClearBoard() { g.b.Reset(g.size) }

// Play applies stone at v, returning false if the move is illegal.
func (g *Game) Play(stone board.Stone, v board.Vertex) bool {
	return g.b.Play(stone, v)
}

// GenMove runs a full search for stone and plays the result onto the
// board, returning the chosen vertex (possibly PASS).
func (g *Game) GenMove(stone board.Stone) board.Vertex {
	cfg := g.mctsCfg
	cfg.Rollouts = g.rollouts
	cfg.Log = g.log
	c, err := mcts.NewController(g.size, cfg)
	if err != nil {
		g.log.WithError(err).Error("gtp: building mcts controller")
		return board.PASS
	}
	v := c.GenMove(g.b, stone)
	g.b.Play(stone, v)
	return v
}

// Undo removes the last n moves by resetting and replaying history.
func (g *Game) Undo(n int) bool { return g.b.Undo(n) }

// Score returns the current Chinese-scoring area count (no komi applied;
// spec.md's double-komi lives in the rollout driver, not in this debug
// command).
func (g *Game) Score() int { return g.b.ChineseScore() }

// Size returns the board's side length.
func (g *Game) Size() int { return g.size }

// ParseVertex parses a GTP coordinate for this game's board size.
func (g *Game) ParseVertex(input string) (board.Vertex, error) {
	return board.ParseVertex(input, g.size)
}

// VertexString formats v for this game's board size.
func (g *Game) VertexString(v board.Vertex) string {
	return board.VertexString(v, g.size)
}

var (
	blackStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0"))
	whiteStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Showboard renders the position as a colorized ASCII diagram, top row
// first, matching the teacher's BoardToString/handle_showboard layout.
func (g *Game) Showboard() string {
	var out strings.Builder
	for y := g.size - 1; y >= 0; y-- {
		for x := 0; x < g.size; x++ {
			switch g.b.StoneAt(board.At(x, y)) {
			case board.Black:
				out.WriteString(blackStyle.Render("@"))
			case board.White:
				out.WriteString(whiteStyle.Render("O"))
			default:
				out.WriteString(emptyStyle.Render("."))
			}
		}
		if y > 0 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
