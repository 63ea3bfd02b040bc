package mcts

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mononofu/ponygo/board"
)

func TestNewNodeAppliesPrior(t *testing.T) {
	n := newNode(board.Black)
	assert.Equal(t, NodePrior, n.numPlays)
	assert.Equal(t, NodePrior/2, n.numWins)
}

func TestRaveUrgencyFallsBackToWinRateWithoutRaveData(t *testing.T) {
	n := newNode(board.Black)
	n.numWins = 7
	n.numPlays = 10
	assert.Equal(t, 0.7, n.raveUrgency())
}

func TestRaveUrgencyBlendsTowardRaveEarly(t *testing.T) {
	n := newNode(board.Black)
	n.numPlays = 10
	n.numWins = 5 // win rate 0.5
	n.numRavePlays = 100000
	n.numRaveWins = 100000 // rave win rate 1.0
	got := n.raveUrgency()
	assert.Greater(t, got, 0.5, "expected heavy rave trust to pull urgency above plain win rate")
}

func TestUctAddsExplorationBonus(t *testing.T) {
	n := newNode(board.Black)
	n.numPlays = 10
	n.numWins = 5
	plain := n.uct(100, 0)
	expected := 0.5 + UctC*math.Sqrt(math.Log(100)/10)
	assert.InDelta(t, expected, plain, 1e-9)
}

func TestExpandCreatesOneChildPerMoveWithCorrectPlayer(t *testing.T) {
	n := newNode(board.White)
	moves := []board.Vertex{1, 2, 3, 4}
	rng := rand.New(rand.NewSource(1))
	n.expand(board.Black, moves, rng)
	assert.Len(t, n.children, len(moves))
	seen := map[board.Vertex]bool{}
	for _, c := range n.children {
		assert.Equal(t, board.Black, c.child.player)
		seen[c.vertex] = true
	}
	for _, v := range moves {
		assert.True(t, seen[v], "move %v missing from expanded children", v)
	}
}

func TestLeafExpansionVisitsAccountsForPrior(t *testing.T) {
	assert.Equal(t, NodePrior+ExpansionThreshold, LeafExpansionVisits)
	n := newNode(board.Black)
	assert.LessOrEqual(t, n.numPlays, LeafExpansionVisits, "a freshly primed node must not already exceed the expansion threshold")
}
