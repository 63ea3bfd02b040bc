package mcts

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mononofu/ponygo/board"
)

const defaultRollouts = 1000

// Config holds the tunable constants for a Controller. Zero-valued
// fields fall back to the constants recognized by spec.md §4.2. Only
// Rollouts, Seed and Log change what a Controller does: selection ranks
// children by raveUrgency, which uses the package constant RaveEquiv, so
// UctC, RaveEquiv and RaveC are stored but not read by the search.
type Config struct {
	UctC      float64
	RaveEquiv float64
	RaveC     float64
	Rollouts  int
	Seed      int64
	Log       logrus.FieldLogger
}

func (c Config) withDefaults() Config {
	if c.UctC == 0 {
		c.UctC = UctC
	}
	if c.RaveEquiv == 0 {
		c.RaveEquiv = RaveEquiv
	}
	if c.Rollouts == 0 {
		c.Rollouts = defaultRollouts
	}
	if c.Log == nil {
		c.Log = logrus.StandardLogger()
	}
	return c
}

// Controller runs single-threaded MCTS-RAVE search over board.Board
// positions. GenMove builds a fresh tree on every call and keeps none
// between calls; the scratch board and RNG are reused across calls and
// are not safe for concurrent use.
type Controller struct {
	cfg     Config
	rng     *rand.Rand
	scratch *board.Board
}

// NewController builds a Controller with a scratch board sized for size.
func NewController(size int, cfg Config) (*Controller, error) {
	cfg = cfg.withDefaults()
	scratch, err := board.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "mcts: building scratch board")
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Controller{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		scratch: scratch,
	}, nil
}

// GenMove runs cfg.Rollouts simulations rooted at root's current position
// with toPlay to move, and returns the root child with the greatest
// num_plays ("robust child" selection; spec.md §4.2). Returns PASS if
// root has no legal moves for toPlay. Each simulation rebuilds the
// position on the scratch board by replaying root's history with colors
// alternating from Black, so it matches root only when root's moves
// alternated that way.
func (c *Controller) GenMove(root *board.Board, toPlay board.Stone) board.Vertex {
	history := append([]board.Vertex(nil), root.History()...)
	size := root.Size()

	moves := root.PossibleMoves(toPlay)
	if len(moves) == 0 {
		return board.PASS
	}

	tree := newNode(toPlay.Opponent())
	tree.expand(toPlay, moves, c.rng)

	for i := 0; i < c.cfg.Rollouts; i++ {
		c.simulate(tree, history, size, toPlay)
	}

	best := tree.children[0]
	for _, child := range tree.children[1:] {
		if child.child.numPlays > best.child.numPlays {
			best = child
		}
	}
	c.cfg.Log.WithFields(logrus.Fields{
		"vertex":    board.VertexString(best.vertex, size),
		"num_plays": best.child.numPlays,
		"win_rate":  best.child.winRate(),
	}).Debug("gongo/mcts: gen_move selected robust child")
	return best.vertex
}

// simulate runs one select+play / expand / rollout / propagate cycle
// rooted at tree, per the simulation protocol in spec.md §4.2.
func (c *Controller) simulate(tree *Node, rootHistory []board.Vertex, size int, rootToPlay board.Stone) {
	c.scratch.Reset(size)
	for _, v := range rootHistory {
		c.scratch.Play(c.scratch.ToPlay(), v)
	}

	amaf := newAmafMap()
	path := []*Node{tree}

	node := tree
	stone := rootToPlay
	for !node.isLeaf() {
		idx := c.selectChild(node)
		e := node.children[idx]
		c.scratch.Play(stone, e.vertex)
		amaf.recordIfEmpty(stone, e.vertex)
		node = e.child
		path = append(path, node)
		stone = stone.Opponent()
	}

	if node.numPlays > LeafExpansionVisits {
		moves := c.scratch.PossibleMoves(stone)
		if len(moves) > 0 {
			node.expand(stone, moves, c.rng)
		}
	}

	blackWins := board.PlayRandomGame(c.scratch, c.rng, func(s board.Stone, v board.Vertex) {
		amaf.recordIfEmpty(s, v)
	})

	for _, n := range path {
		n.numPlays++
		if (n.player == board.Black) == blackWins {
			n.numWins++
		}
		for _, child := range n.children {
			if amaf[child.vertex] == child.child.player {
				child.child.numRavePlays++
				// AMAF complement: spec.md §4.2 credits a rave win when
				// the child's side did *not* win, because children are
				// evaluated from the opposite side's viewpoint.
				if (child.child.player == board.Black) != blackWins {
					child.child.numRaveWins++
				}
			}
		}
	}
}

// selectChild returns the index of node's child with maximum
// rave_urgency, visiting children in a random order each call so ties
// are broken by a uniform shuffle (spec.md §4.2).
func (c *Controller) selectChild(node *Node) int {
	order := c.rng.Perm(len(node.children))
	best := order[0]
	bestUrgency := node.children[best].child.raveUrgency()
	for _, idx := range order[1:] {
		u := node.children[idx].child.raveUrgency()
		if u > bestUrgency {
			best = idx
			bestUrgency = u
		}
	}
	return best
}
