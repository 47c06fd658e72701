package boggle

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Board is a validated, lower-cased copy of a letter grid. Cells live in one flat
// slice indexed by row*cols+col, with each cell's 8-connected neighbours precomputed.
// A Board is read-only after NewBoard returns and may be shared between searches.
type Board struct {
	rows, cols int
	cells      []rune
	adj        [][]int
}

// NewBoard validates grid and returns its lower-cased copy. Every cell must hold
// exactly one character and every row must have the length of the first. The grid
// itself is never modified.
func NewBoard(grid [][]string) (*Board, error) {
	return newBoard(grid, false)
}

// NewNormalisedBoard is NewBoard with diacritics stripped from every cell, so an "É"
// cell matches words from a dictionary loaded with normalisation.
func NewNormalisedBoard(grid [][]string) (*Board, error) {
	return newBoard(grid, true)
}

func newBoard(grid [][]string, normalised bool) (*Board, error) {
	b := &Board{rows: len(grid)}
	if b.rows > 0 {
		b.cols = len(grid[0])
	}
	b.cells = make([]rune, 0, b.rows*b.cols)
	for i, row := range grid {
		if len(row) != b.cols {
			return nil, &NonUniformGridError{Row: i, Want: b.cols, Got: len(row)}
		}
		for j, cell := range row {
			if utf8.RuneCountInString(cell) != 1 {
				return nil, &MalformedCellError{Row: i, Col: j, Value: cell}
			}
			if normalised {
				// a cell that normalises to several runes keeps its original letter
				if normal := Normalise(cell); utf8.RuneCountInString(normal) == 1 {
					cell = normal
				}
			}
			r, _ := utf8.DecodeRuneInString(cell)
			b.cells = append(b.cells, FoldRune(r))
		}
	}
	if b.rows == 0 || b.cols == 0 {
		b.rows, b.cols = 0, 0
	}
	b.adj = make([][]int, len(b.cells))
	for idx := range b.cells {
		b.adj[idx] = b.neighbours(idx/b.cols, idx%b.cols)
	}
	return b, nil
}

// neighbours returns the arena indexes of the cells around (i, j), clipped to the
// board edges.
func (b *Board) neighbours(i, j int) []int {
	out := make([]int, 0, 8)
	for x := max(0, i-1); x < min(b.rows, i+2); x++ {
		for y := max(0, j-1); y < min(b.cols, j+2); y++ {
			if x != i || y != j {
				out = append(out, x*b.cols+y)
			}
		}
	}
	return out
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// At returns the lower-cased letter at (row, col).
func (b *Board) At(row, col int) rune {
	return b.cells[row*b.cols+col]
}

// Neighbours returns the (row, col) coordinates adjacent to the given cell.
func (b *Board) Neighbours(row, col int) [][2]int {
	idxs := b.adj[row*b.cols+col]
	out := make([][2]int, len(idxs))
	for k, idx := range idxs {
		out[k] = [2]int{idx / b.cols, idx % b.cols}
	}
	return out
}

// FoldRune lower-cases r. Boards and dictionaries must agree on this folding.
func FoldRune(r rune) rune {
	return unicode.ToLower(r)
}

// Fold lower-cases every rune of s with FoldRune.
func Fold(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, FoldRune(r))
	}
	return string(out)
}

// Normalise strips combining marks from s, so café becomes cafe. Strings the
// transformer rejects are returned unchanged.
func Normalise(s string) string {
	transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normal, _, err := transform.String(transformer, s)
	if err != nil {
		return s
	}
	return normal
}
