package board

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// RolloutMoveCap bounds a single rollout: if the game has not ended with
// two consecutive passes within this many moves (passes included), the
// rollout is cut short and reported as not a Black win. Guards against
// pathological fill-everything loops during random play.
const RolloutMoveCap = 700

// DoubleKomi is the compensation White receives, expressed as double the
// real value so half-point komi (6.5 here) stays exact integer
// arithmetic throughout scoring.
const DoubleKomi = 13

// RandomMove samples a uniformly random legal move for stone, scanning
// empty_vertices from a random start index rather than scanning raw
// board indices — empty_vertices is far denser than the board late in a
// game, which keeps sampling O(1) amortized instead of degrading as the
// board fills up.
func RandomMove(b *Board, stone Stone, rng *rand.Rand) Vertex {
	empties := b.EmptyVertices()
	n := len(empties)
	if n == 0 {
		return PASS
	}
	start := rng.Intn(n)
	for i := 0; i < n; i++ {
		v := empties[(start+i)%n]
		if b.CanPlay(stone, v) {
			return v
		}
	}
	return PASS
}

// PlayRandomGame runs a full random rollout from the board's current
// position to completion (two consecutive passes, or RolloutMoveCap
// total moves played during the rollout), mutating b in place, and
// reports whether Black wins under Chinese scoring with DoubleKomi
// compensation to White. A rollout cut short by RolloutMoveCap reports
// false.
//
// visited, if non-nil, is called once per move actually played (not
// passes) with the color that played it and the vertex — the hook MCTS
// uses to build its AMAF color map without PlayRandomGame knowing
// anything about trees.
func PlayRandomGame(b *Board, rng *rand.Rand, visited func(stone Stone, v Vertex)) bool {
	consecutivePasses := 0
	moves := 0
	for ; moves < RolloutMoveCap && consecutivePasses < 2; moves++ {
		stone := b.ToPlay()
		v := RandomMove(b, stone, rng)
		b.Play(stone, v)
		if v == PASS {
			consecutivePasses++
		} else {
			consecutivePasses = 0
			if visited != nil {
				visited(stone, v)
			}
		}
	}
	if consecutivePasses < 2 {
		logrus.WithField("moves", moves).Warn("gongo/board: rollout hit move cap without two passes")
		return false
	}
	return 2*b.ChineseScore()-DoubleKomi > 0
}
