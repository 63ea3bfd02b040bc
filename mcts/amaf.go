package mcts

import "github.com/mononofu/ponygo/board"

// amafMap records, for a single simulation, which side first played at
// each vertex during descent+rollout — the "first-player" AMAF
// attribution from spec.md §4.2. Reset (zero value is board.Empty at
// every index) at the start of every simulation.
type amafMap [board.VirtLen]board.Stone

func newAmafMap() *amafMap {
	var m amafMap
	return &m
}

// recordIfEmpty records stone as the first player at v, unless some side
// already played there earlier in this simulation.
func (m *amafMap) recordIfEmpty(stone board.Stone, v board.Vertex) {
	if v == board.PASS {
		return
	}
	if m[v] == board.Empty {
		m[v] = stone
	}
}
