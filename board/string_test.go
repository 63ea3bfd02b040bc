package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtariIdentityHoldsForSingleLiberty(t *testing.T) {
	var s goString
	s.addLiberty(42)
	assert.True(t, s.inAtari(), "expected single-liberty string to be in atari")
	s.addLiberty(43)
	assert.False(t, s.inAtari(), "expected two-distinct-liberty string not to be in atari")
}

func TestAtariIdentityHoldsForRepeatedLiberty(t *testing.T) {
	var s goString
	// two stones of the same string sharing one liberty vertex: two
	// incidences of the same vertex must still read as atari (one real
	// liberty), which is exactly the n*sumSq == sum^2 identity's point.
	s.addLiberty(10)
	s.addLiberty(10)
	assert.True(t, s.inAtari(), "expected repeated-incidence single liberty to be in atari")
}

func TestMergeSumsLibertiesAndStones(t *testing.T) {
	a := goString{numStones: 1, numPseudoLiberties: 2, libertyVertexSum: 5, libertyVertexSumSquared: 13}
	b := goString{numStones: 1, numPseudoLiberties: 1, libertyVertexSum: 7, libertyVertexSumSquared: 49}
	a.merge(&b)
	assert.Equal(t, 2, a.numStones)
	assert.Equal(t, 3, a.numPseudoLiberties)
	assert.Equal(t, 12, a.libertyVertexSum)
	assert.Equal(t, int64(62), a.libertyVertexSumSquared)
}

func TestBorderStringNeverReadsDeadOrAtari(t *testing.T) {
	s := newBorderString()
	assert.False(t, s.dead(), "border string must never appear dead")
	assert.False(t, s.inAtari(), "border string must never appear in atari")
	for i := 0; i < 8; i++ {
		s.removeLiberty(Vertex(i))
	}
	assert.False(t, s.dead(), "border string sentinel should absorb many decrements without flipping state")
	assert.False(t, s.inAtari(), "border string sentinel should absorb many decrements without flipping state")
}
