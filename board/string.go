package board

// goString is a maximal orthogonally-connected set of same-color stones,
// tracked via the pseudo-liberty scheme from spec.md §3: liberties shared
// by several stones of the string are counted once per incidence, which
// lets the atari test run in O(1) instead of walking the string.
//
// Named goString (not String) to avoid colliding with fmt.Stringer and
// because "string" as a bare identifier would shadow the builtin type.
type goString struct {
	color                   Stone
	numStones               int
	numPseudoLiberties      int
	libertyVertexSum        int
	libertyVertexSumSquared int64
}

// borderStoneCounts are large enough that no decrement sequence over a
// real game can underflow them, and large enough that the atari identity
// never accidentally holds for the border string.
const (
	borderPseudoLiberties = 4
	borderLibertySum      = 1 << 15
	borderLibertySumSq    = 1 << 31
)

func newBorderString() goString {
	return goString{
		color:                   Border,
		numStones:               1,
		numPseudoLiberties:      borderPseudoLiberties,
		libertyVertexSum:        borderLibertySum,
		libertyVertexSumSquared: borderLibertySumSq,
	}
}

// inAtari reports whether the string has exactly one liberty. This holds
// exactly when every pseudo-liberty incidence refers to the same vertex:
// n*sum(v^2) == sum(v)^2 iff all n contributing v are equal (Cauchy-Schwarz
// equality case for integers sharing one value).
func (s *goString) inAtari() bool {
	sum := int64(s.libertyVertexSum)
	return int64(s.numPseudoLiberties)*s.libertyVertexSumSquared == sum*sum
}

// dead reports whether the string has no liberties at all.
func (s *goString) dead() bool {
	return s.numPseudoLiberties == 0
}

// addLiberty records one more (stone, empty-neighbour) incidence at v.
func (s *goString) addLiberty(v Vertex) {
	s.numPseudoLiberties++
	s.libertyVertexSum += int(v)
	s.libertyVertexSumSquared += int64(v) * int64(v)
}

// removeLiberty undoes one (stone, empty-neighbour) incidence at v.
func (s *goString) removeLiberty(v Vertex) {
	s.numPseudoLiberties--
	s.libertyVertexSum -= int(v)
	s.libertyVertexSumSquared -= int64(v) * int64(v)
}

// merge absorbs another string's liberty summaries and stone count into
// s. Used when two same-color strings are joined by a new stone.
func (s *goString) merge(other *goString) {
	s.numStones += other.numStones
	s.numPseudoLiberties += other.numPseudoLiberties
	s.libertyVertexSum += other.libertyVertexSum
	s.libertyVertexSumSquared += other.libertyVertexSumSquared
}
