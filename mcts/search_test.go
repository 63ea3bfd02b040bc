package mcts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mononofu/ponygo/board"
)

func TestGenMovePassesWhenNoLegalMoves(t *testing.T) {
	b, err := board.New(2)
	require.NoError(t, err)
	// play Black on every point; the last one, B2, is Black's own eye and
	// stays empty, so Black has no legal move left
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			v, _ := board.ParseVertex(string(rune('A'+x))+string(rune('1'+y)), 2)
			b.Play(board.Black, v)
		}
	}

	c, err := NewController(2, Config{Rollouts: 4, Seed: 1})
	require.NoError(t, err)
	require.Equal(t, board.PASS, c.GenMove(b, board.Black), "expected PASS when Black's only empty point is its own eye")
}

func TestGenMoveReturnsALegalMoveOnEmptyBoard(t *testing.T) {
	b, err := board.New(5)
	require.NoError(t, err)
	c, err := NewController(5, Config{Rollouts: 32, Seed: 2})
	require.NoError(t, err)
	move := c.GenMove(b, board.Black)
	require.NotEqual(t, board.PASS, move, "expected a real move on an empty board")
	require.True(t, b.CanPlay(board.Black, move), "gen_move returned an illegal move %v", move)
}

func TestRepeatedGenMoveReturnsLegalMoves(t *testing.T) {
	b, err := board.New(5)
	require.NoError(t, err)
	c, err := NewController(5, Config{Rollouts: 1, Seed: 3})
	require.NoError(t, err)
	// drive several genmoves in a row, alternating colors, as gtp/game.go
	// would during a real game
	toPlay := board.Black
	for i := 0; i < 6; i++ {
		move := c.GenMove(b, toPlay)
		require.True(t, b.Play(toPlay, move), "controller returned illegal move %v for %v", move, toPlay)
		toPlay = toPlay.Opponent()
	}
}
