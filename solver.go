package boggle

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Solver finds every dictionary word that can be traced on a board as a path of
// adjacent cells, using each cell at most once per path.
type Solver struct {
	trie       *Trie
	workers    int
	normalised bool
	logger     *zap.Logger
}

// NewSolver creates a solver over t. By default start cells are searched one after
// another on the calling goroutine and nothing is logged.
func NewSolver(t *Trie) *Solver {
	if t == nil {
		t = New()
	}
	return &Solver{trie: t, workers: 1, logger: zap.NewNop()}
}

// WithWorkers sets how many start cells may be searched concurrently.
// Values below one mean one.
func (s *Solver) WithWorkers(n int) *Solver {
	if n < 1 {
		n = 1
	}
	s.workers = n
	return s
}

// WithNormalisation strips diacritics from board cells before searching. Use it with
// a trie built from a dictionary loaded with normalisation.
func (s *Solver) WithNormalisation() *Solver {
	s.normalised = true
	return s
}

// WithLogger sets the logger used for per-solve debug output.
func (s *Solver) WithLogger(logger *zap.Logger) *Solver {
	if logger == nil {
		logger = zap.NewNop()
	}
	s.logger = logger
	return s
}

// Solve finds every word in the solver's trie traceable on grid using a background
// context.
func Solve(grid [][]string, t *Trie) (WordSet, error) {
	return NewSolver(t).Solve(context.Background(), grid)
}

// Solve validates grid and returns all words traceable on it. A malformed cell or a
// ragged grid aborts the whole solve and no words are returned.
func (s *Solver) Solve(ctx context.Context, grid [][]string) (WordSet, error) {
	b, err := newBoard(grid, s.normalised)
	if err != nil {
		s.logger.Debug("rejected board", zap.Error(err))
		return nil, err
	}
	return s.SolveBoard(ctx, b)
}

// SolveBoard returns all words traceable on b, starting from every cell.
func (s *Solver) SolveBoard(ctx context.Context, b *Board) (WordSet, error) {
	found := make(WordSet)
	cells := len(b.cells)

	if s.workers == 1 || cells < 2 {
		for idx := 0; idx < cells; idx++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			found.Union(s.fromStart(b, idx))
		}
		s.logDone(b, found)
		return found, nil
	}

	partial := make([]WordSet, cells)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for idx := 0; idx < cells; idx++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partial[idx] = s.fromStart(b, idx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, words := range partial {
		found.Union(words)
	}
	s.logDone(b, found)
	return found, nil
}

func (s *Solver) logDone(b *Board, found WordSet) {
	s.logger.Debug("solved board",
		zap.Int("rows", b.rows),
		zap.Int("cols", b.cols),
		zap.Int("workers", s.workers),
		zap.Int("words", found.Len()))
}

// WordsFromStart returns the words whose first letter is the cell at (row, col).
// The start cell is consumed by the path, so it is never reused later in a word.
func (s *Solver) WordsFromStart(b *Board, row, col int) WordSet {
	return s.fromStart(b, row*b.cols+col)
}

func (s *Solver) fromStart(b *Board, idx int) WordSet {
	found := make(WordSet)
	first := s.trie.root.Child(b.cells[idx])
	if first == nil {
		return found
	}
	visited := make([]bool, len(b.cells))
	walk(b, idx, first, visited, found)
	return found
}

// walk extends the path ending at idx, whose letters spell the prefix of n. The cell is
// marked for the duration of the call so only this path's descendants see it as used.
func walk(b *Board, idx int, n *Node, visited []bool, found WordSet) {
	if word, ok := n.Word(); ok {
		found.Add(word)
	}
	visited[idx] = true
	for _, next := range b.adj[idx] {
		if visited[next] {
			continue
		}
		child := n.Child(b.cells[next])
		if child == nil {
			continue
		}
		walk(b, next, child, visited, found)
	}
	visited[idx] = false
}
