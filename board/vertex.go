// Package board implements the Go board engine: a bordered virtual grid,
// union-find-like strings with pseudo-liberty bookkeeping, incremental
// Zobrist hashing, and uniform random legal-move sampling fast enough to
// sustain rollout-heavy MCTS search.
package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxSize is the largest board side this engine supports.
const MaxSize = 19

// VirtSize is the side of the virtual (bordered) board: MaxSize plus a
// one-vertex border ring on every side.
const VirtSize = MaxSize + 2

// VirtLen is the number of vertices in the virtual board, including the
// border ring.
const VirtLen = VirtSize * VirtSize

// Vertex is a packed index into the virtual board. PASS is a sentinel
// distinct from every on-board vertex.
type Vertex int

// PASS represents a pass move. It is never a valid board vertex.
const PASS Vertex = -1

// vertexAt returns the vertex for 0-based column x and row y on the
// virtual board (border ring included).
func vertexAt(x, y int) Vertex {
	return Vertex((x + 1) + (y+1)*VirtSize)
}

// At is the exported form of vertexAt, for callers outside the package
// (e.g. a GTP front-end rendering the board) that need to address a
// vertex by 0-based column and row without going through ParseVertex.
func At(x, y int) Vertex { return vertexAt(x, y) }

// Coords returns the column and row (x,y), 0-based, that v was built
// from via vertexAt. PASS has no meaningful coordinates.
func (v Vertex) Coords() (x, y int) {
	x = int(v)%VirtSize - 1
	y = int(v)/VirtSize - 1
	return
}

// neighbours[v] holds the 4 orthogonal neighbour vertices of v.
// diagNeighbours[v] holds the 4 diagonal neighbour vertices of v.
// Both are undefined (never dereferenced) for border-ring vertices.
var neighbours [VirtLen][4]Vertex
var diagNeighbours [VirtLen][4]Vertex

func init() {
	for y := 0; y < MaxSize; y++ {
		for x := 0; x < MaxSize; x++ {
			v := vertexAt(x, y)
			neighbours[v] = [4]Vertex{
				vertexAt(x+1, y),
				vertexAt(x-1, y),
				vertexAt(x, y+1),
				vertexAt(x, y-1),
			}
			diagNeighbours[v] = [4]Vertex{
				vertexAt(x+1, y+1),
				vertexAt(x+1, y-1),
				vertexAt(x-1, y+1),
				vertexAt(x-1, y-1),
			}
		}
	}
}

// Neighbours returns the 4 orthogonal neighbours of v.
func Neighbours(v Vertex) [4]Vertex { return neighbours[v] }

// DiagNeighbours returns the 4 diagonal neighbours of v.
func DiagNeighbours(v Vertex) [4]Vertex { return diagNeighbours[v] }

// columnLetters mirrors conventional Go board labeling: A-T skipping I.
const columnLetters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

// ParseVertex parses a GTP-style coordinate ("Q16", "pass") for a board
// of the given size. Column letters run A-T skipping I; rows are
// 1-based from the bottom. Comparison is case-insensitive.
func ParseVertex(input string, size int) (Vertex, error) {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, "pass") {
		return PASS, nil
	}
	if len(input) < 2 {
		return PASS, errors.Errorf("gongo: vertex %q: too short", input)
	}
	col := strings.ToUpper(input[:1])
	x := strings.IndexAny(columnLetters, col)
	if x < 0 || x >= size {
		return PASS, errors.Errorf("gongo: vertex %q: bad column", input)
	}
	row, err := strconv.Atoi(input[1:])
	if err != nil || row < 1 || row > size {
		return PASS, errors.Errorf("gongo: vertex %q: bad row", input)
	}
	return vertexAt(x, row-1), nil
}

// VertexString formats v as a GTP-style coordinate for a board of the
// given size, or "pass" for PASS.
func VertexString(v Vertex, size int) string {
	if v == PASS {
		return "pass"
	}
	x, y := v.Coords()
	if x < 0 || x >= size || y < 0 || y >= size {
		return fmt.Sprintf("invalid(%d,%d)", x, y)
	}
	return fmt.Sprintf("%c%d", columnLetters[x], y+1)
}
