package board

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Board is an incremental representation of a Go position: a stone grid,
// a union-find-like string table with pseudo-liberty bookkeeping, a ko
// point, move history, and an incremental Zobrist hash. See spec.md §3-4.1.
type Board struct {
	size int

	cells      [VirtLen]Stone
	strings    [VirtLen]goString
	stringHead [VirtLen]Vertex
	stringNext [VirtLen]Vertex

	emptyVertices []Vertex
	emptyVIndex   [VirtLen]int

	numBlackStones int
	koVertex       Vertex
	toPlay         Stone
	history        []Vertex

	hash          uint64
	pastHashCount map[uint64]int

	log logrus.FieldLogger
}

// New constructs a Board of the given size (1..MaxSize), initialized to
// the empty position with Black to play. A size out of range is the
// single fatal error condition the board engine recognizes (spec.md §7).
func New(size int) (*Board, error) {
	if size < 1 || size > MaxSize {
		return nil, errors.Errorf("board: size %d out of range (1..%d)", size, MaxSize)
	}
	b := &Board{log: logrus.StandardLogger()}
	b.Reset(size)
	return b, nil
}

// SetLogger overrides the logger used for debug-only super-ko
// observations. Passing nil restores the package default.
func (b *Board) SetLogger(log logrus.FieldLogger) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	b.log = log
}

// Reset clears the board to the empty position of the given size, reusing
// the vertex arrays and the empty-vertex and history slices; the map of
// past position hashes is replaced by a new one.
func (b *Board) Reset(size int) {
	b.size = size
	for v := 0; v < VirtLen; v++ {
		b.cells[v] = Border
		b.strings[v] = newBorderString()
		b.stringHead[v] = Vertex(v)
		b.stringNext[v] = Vertex(v)
	}

	b.emptyVertices = b.emptyVertices[:0]
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := vertexAt(x, y)
			b.cells[v] = Empty
			b.emptyVIndex[v] = len(b.emptyVertices)
			b.emptyVertices = append(b.emptyVertices, v)
		}
	}

	b.numBlackStones = 0
	b.koVertex = PASS
	b.toPlay = Black
	b.history = b.history[:0]
	b.hash = 0
	b.pastHashCount = make(map[uint64]int)
}

// Size returns the board side length.
func (b *Board) Size() int { return b.size }

// ToPlay returns the color to move next.
func (b *Board) ToPlay() Stone { return b.toPlay }

// History returns the sequence of vertices played so far, including
// passes. Callers must not mutate the returned slice.
func (b *Board) History() []Vertex { return b.history }

// StoneAt returns the stone occupying v (Empty, Black, White, or Border).
func (b *Board) StoneAt(v Vertex) Stone { return b.cells[v] }

// KoVertex returns the vertex currently forbidden by simple ko, or PASS.
func (b *Board) KoVertex() Vertex { return b.koVertex }

// EmptyVertices returns the dense vector of currently empty on-board
// vertices. Callers must not mutate the returned slice.
func (b *Board) EmptyVertices() []Vertex { return b.emptyVertices }

// NumBlackStones returns the number of Black stones currently on board.
func (b *Board) NumBlackStones() int { return b.numBlackStones }

// PositionHash returns the current incremental Zobrist hash (debug aid;
// see spec.md §4.3).
func (b *Board) PositionHash() uint64 { return b.hash }

// CanPlay reports whether placing stone at v is a legal move for the
// current side, per the decision cascade in spec.md §4.1. PASS is always
// legal.
func (b *Board) CanPlay(stone Stone, v Vertex) bool {
	if v == PASS {
		return true
	}
	if b.cells[v] != Empty || v == b.koVertex {
		return false
	}

	for _, n := range neighbours[v] {
		if b.cells[n] == Empty {
			return true
		}
	}

	enemy := stone.Opponent()

	allOwnOrBorder := true
	for _, n := range neighbours[v] {
		if b.cells[n] != stone && b.cells[n] != Border {
			allOwnOrBorder = false
			break
		}
	}
	if allOwnOrBorder {
		enemyCount, hasBorder := 0, 0
		for _, n := range diagNeighbours[v] {
			switch b.cells[n] {
			case enemy:
				enemyCount++
			case Border:
				hasBorder = 1
			}
		}
		if enemyCount+hasBorder < 2 {
			return false // real eye; filling it is never legal
		}
	}

	for _, n := range neighbours[v] {
		if b.cells[n] == stone && !b.strings[b.stringHead[n]].inAtari() {
			return true
		}
	}

	for _, n := range neighbours[v] {
		if b.cells[n] == enemy && b.strings[b.stringHead[n]].inAtari() {
			return true
		}
	}

	return false
}

// Play applies a move by the given color at v, mutating the board in
// place. It returns false (without mutating) if the move is illegal,
// which callers can avoid entirely by pre-checking with CanPlay (the
// recommended hot-path usage; see spec.md §7).
func (b *Board) Play(stone Stone, v Vertex) bool {
	if !b.CanPlay(stone, v) {
		return false
	}

	b.history = append(b.history, v)
	b.toPlay = stone.Opponent()
	b.koVertex = PASS

	if v == PASS {
		return true
	}

	enemy := stone.Opponent()

	playedInEnemyEye := true
	for _, n := range neighbours[v] {
		if b.cells[n] != enemy {
			playedInEnemyEye = false
			break
		}
	}
	oldEmptyCount := len(b.emptyVertices)

	survivor := b.joinFriendStrings(stone, v)

	oldStone := b.cells[v]
	b.cells[v] = stone
	b.removeFromEmpty(v)
	if stone == Black {
		b.numBlackStones++
	}
	b.hash ^= zobristKey(v, oldStone) ^ zobristKey(v, stone)

	b.strings[survivor].numStones++
	if survivor == v {
		b.stringNext[v] = v
	} else {
		b.stringNext[v] = b.stringNext[survivor]
		b.stringNext[survivor] = v
	}
	b.stringHead[v] = survivor

	for _, n := range neighbours[v] {
		if b.cells[n] == Empty {
			b.strings[survivor].addLiberty(n)
		}
	}

	for _, n := range neighbours[v] {
		if b.cells[n] != Empty {
			b.strings[b.stringHead[n]].removeLiberty(v)
		}
	}

	lastCaptured := PASS
	captures := 0
	var deadHeads []Vertex
	for _, n := range neighbours[v] {
		if b.cells[n] == enemy {
			h := b.stringHead[n]
			if b.strings[h].dead() && !containsVertex(deadHeads, h) {
				deadHeads = append(deadHeads, h)
			}
		}
	}
	for _, h := range deadHeads {
		n, last := b.removeString(h)
		captures += n
		lastCaptured = last
	}

	if playedInEnemyEye && captures == 1 && len(b.emptyVertices) == oldEmptyCount {
		b.koVertex = lastCaptured
	}

	b.pastHashCount[b.hash]++
	if b.pastHashCount[b.hash] > 1 {
		b.log.WithField("hash", b.hash).Debug("gongo/board: positional super-ko observed (not enforced)")
	}

	return true
}

// joinFriendStrings determines the survivor string head for a stone
// about to be placed at v: the largest-by-stone-count same-color
// neighbouring string, with every other same-color neighbour string
// merged into it. If v has no same-color neighbour, v becomes its own
// new one-stone string.
func (b *Board) joinFriendStrings(stone Stone, v Vertex) Vertex {
	var heads []Vertex
	for _, n := range neighbours[v] {
		if b.cells[n] == stone {
			h := b.stringHead[n]
			if !containsVertex(heads, h) {
				heads = append(heads, h)
			}
		}
	}

	if len(heads) == 0 {
		b.strings[v] = goString{color: stone}
		return v
	}

	survivor := heads[0]
	for _, h := range heads[1:] {
		if b.strings[h].numStones > b.strings[survivor].numStones {
			survivor = h
		}
	}
	for _, h := range heads {
		if h != survivor {
			b.absorbString(survivor, h)
		}
	}
	return survivor
}

// absorbString merges the loser string into the survivor: every stone
// of loser gets its string_head rewritten to survivor, the two cyclic
// string_next lists are spliced into one, and survivor's liberty
// summaries absorb loser's.
func (b *Board) absorbString(survivor, loser Vertex) {
	cur := loser
	for {
		b.stringHead[cur] = survivor
		cur = b.stringNext[cur]
		if cur == loser {
			break
		}
	}
	b.stringNext[survivor], b.stringNext[loser] = b.stringNext[loser], b.stringNext[survivor]
	b.strings[survivor].merge(&b.strings[loser])
}

// removeString deletes the string at head h from the board: every stone
// becomes Empty, rejoins emptyVertices, and has its own string slot
// reset; every surviving neighbour string regains the freed vertices as
// liberties. Returns the number of stones removed and the last vertex
// vacated (used for simple-ko detection when exactly one stone is
// captured).
func (b *Board) removeString(h Vertex) (count int, last Vertex) {
	n := b.strings[h].numStones
	stones := make([]Vertex, 0, n)
	cur := h
	for i := 0; i < n; i++ {
		stones = append(stones, cur)
		cur = b.stringNext[cur]
	}

	for _, p := range stones {
		if b.cells[p] == Black {
			b.numBlackStones--
		}
		b.hash ^= zobristKey(p, b.cells[p])
		b.cells[p] = Empty
		b.addToEmpty(p)
		b.stringHead[p] = p
		b.stringNext[p] = p
		b.strings[p] = goString{}
	}

	for _, p := range stones {
		for _, m := range neighbours[p] {
			if b.cells[m] != Empty {
				b.strings[b.stringHead[m]].addLiberty(p)
			}
		}
	}

	return len(stones), stones[len(stones)-1]
}

func containsVertex(vs []Vertex, v Vertex) bool {
	for _, x := range vs {
		if x == v {
			return true
		}
	}
	return false
}

func (b *Board) removeFromEmpty(v Vertex) {
	idx := b.emptyVIndex[v]
	last := len(b.emptyVertices) - 1
	lastVertex := b.emptyVertices[last]
	b.emptyVertices[idx] = lastVertex
	b.emptyVIndex[lastVertex] = idx
	b.emptyVertices = b.emptyVertices[:last]
}

func (b *Board) addToEmpty(v Vertex) {
	b.emptyVIndex[v] = len(b.emptyVertices)
	b.emptyVertices = append(b.emptyVertices, v)
}

// Undo resets the board and replays history[0 : len(history)-n]. It
// returns false (leaving the board untouched) if n is out of range.
func (b *Board) Undo(n int) bool {
	if n < 0 || n > len(b.history) {
		return false
	}
	kept := append([]Vertex(nil), b.history[:len(b.history)-n]...)
	b.Reset(b.size)
	for _, v := range kept {
		b.Play(b.toPlay, v)
	}
	return true
}

// PossibleMoves returns every vertex where stone may legally play,
// excluding PASS.
func (b *Board) PossibleMoves(stone Stone) []Vertex {
	moves := make([]Vertex, 0, len(b.emptyVertices))
	for _, v := range b.emptyVertices {
		if b.CanPlay(stone, v) {
			moves = append(moves, v)
		}
	}
	return moves
}

// ChineseScore returns num_black - num_white + eye_score under area
// (Chinese) counting, not including komi. eye_score counts, with sign,
// empty points whose orthogonal neighbours are entirely one color
// (Border neighbours count toward either color, so edge/corner eyes
// still score correctly).
func (b *Board) ChineseScore() int {
	total := b.size*b.size - len(b.emptyVertices)
	numWhite := total - b.numBlackStones

	eyeScore := 0
	for _, v := range b.emptyVertices {
		hasBlack, hasWhite, hasEmpty := false, false, false
		for _, n := range neighbours[v] {
			switch b.cells[n] {
			case Black:
				hasBlack = true
			case White:
				hasWhite = true
			case Empty:
				hasEmpty = true
			}
		}
		if hasEmpty {
			continue
		}
		if hasBlack && !hasWhite {
			eyeScore++
		} else if hasWhite && !hasBlack {
			eyeScore--
		}
	}

	return b.numBlackStones - numWhite + eyeScore
}

// String renders the board as an ASCII diagram, top row first, matching
// the teacher's BoardToString convention: '.' empty, '@' Black, 'O' White.
func (b *Board) String() string {
	var out bytes.Buffer
	for y := b.size - 1; y >= 0; y-- {
		for x := 0; x < b.size; x++ {
			switch b.cells[vertexAt(x, y)] {
			case Empty:
				out.WriteByte('.')
			case Black:
				out.WriteByte('@')
			case White:
				out.WriteByte('O')
			default:
				out.WriteByte('?')
			}
		}
		if y > 0 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
