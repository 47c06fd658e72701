package boggle

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var catBoard = [][]string{
	{"c", "a"},
	{"t", "s"},
}

func TestSolve(t *testing.T) {
	t.Run("Finds words and longer extensions", func(t *testing.T) {
		found, err := Solve(catBoard, Build("cat", "cats", "at"))
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"at", "cat", "cats"}, found.Sorted())
	})

	t.Run("Cells are used once per path", func(t *testing.T) {
		found, err := Solve([][]string{{"a", "b"}}, Build("aba", "ab", "ba"))
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"ab", "ba"}, found.Sorted())
	})

	t.Run("Same cell reused by different branches", func(t *testing.T) {
		// both words need the single "e"
		found, err := Solve([][]string{{"t", "e", "n"}}, Build("ten", "net"))
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"net", "ten"}, found.Sorted())
	})

	t.Run("Non adjacent letters are not joined", func(t *testing.T) {
		found, err := Solve([][]string{{"c", "x", "a", "t"}}, Build("cat"))
		require.NoError(t, err)
		assert.Equal(t, 0, found.Len())
	})

	t.Run("No wraparound", func(t *testing.T) {
		found, err := Solve([][]string{{"a", "x", "b"}}, Build("ab", "ba"))
		require.NoError(t, err)
		assert.Equal(t, 0, found.Len())
	})

	t.Run("Duplicate paths collapse", func(t *testing.T) {
		found, err := Solve([][]string{
			{"a", "a"},
			{"a", "a"},
		}, Build("aaa"))
		require.NoError(t, err)
		assert.Equal(t, []string{"aaa"}, found.Sorted())
	})

	t.Run("Upper case board", func(t *testing.T) {
		lower, err := Solve(catBoard, Build("cat", "cats", "at"))
		require.NoError(t, err)
		upper, err := Solve([][]string{{"C", "A"}, {"T", "S"}}, Build("cat", "cats", "at"))
		require.NoError(t, err)
		assert.Equal(t, lower, upper)
	})

	t.Run("Does not mutate the grid", func(t *testing.T) {
		grid := [][]string{{"C", "A"}, {"T", "S"}}
		_, err := Solve(grid, Build("cat"))
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"C", "A"}, {"T", "S"}}, grid)
	})

	t.Run("Empty dictionary", func(t *testing.T) {
		found, err := Solve(catBoard, Build())
		require.NoError(t, err)
		assert.Equal(t, 0, found.Len())
	})

	t.Run("Nil trie acts as empty", func(t *testing.T) {
		found, err := NewSolver(nil).Solve(context.Background(), catBoard)
		require.NoError(t, err)
		assert.Equal(t, 0, found.Len())
	})

	t.Run("One by one board", func(t *testing.T) {
		found, err := Solve([][]string{{"a"}}, Build("abc", "aaa"))
		require.NoError(t, err)
		assert.Equal(t, 0, found.Len())
	})

	t.Run("Empty board", func(t *testing.T) {
		found, err := Solve(nil, Build("abc"))
		require.NoError(t, err)
		assert.Equal(t, 0, found.Len())
	})

	t.Run("Malformed cell aborts", func(t *testing.T) {
		found, err := Solve([][]string{{"c", "a"}, {"ts", "s"}}, Build("cat"))
		assert.Nil(t, found)
		assert.True(t, errors.Is(err, ErrMalformedCell))
	})

	t.Run("Ragged grid aborts", func(t *testing.T) {
		found, err := Solve([][]string{{"c", "a"}, {"t"}}, Build("cat"))
		assert.Nil(t, found)
		assert.True(t, errors.Is(err, ErrNonUniformGrid))
	})

	t.Run("Idempotent", func(t *testing.T) {
		tr := Build("cat", "cats", "at", "act", "tsa")
		first, err := Solve(catBoard, tr)
		require.NoError(t, err)
		second, err := Solve(catBoard, tr)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestSolveNormalised(t *testing.T) {
	grid := [][]string{
		{"c", "a"},
		{"É", "f"},
	}
	tr := Build("cafe")

	found, err := Solve(grid, tr)
	require.NoError(t, err)
	assert.Equal(t, 0, found.Len())

	found, err = NewSolver(tr).WithNormalisation().Solve(context.Background(), grid)
	require.NoError(t, err)
	assert.Equal(t, []string{"cafe"}, found.Sorted())
}

func TestWordsFromStart(t *testing.T) {
	b, err := NewBoard(catBoard)
	require.NoError(t, err)
	s := NewSolver(Build("cat", "cats", "at", "sat"))

	assert.ElementsMatch(t, []string{"cat", "cats"}, s.WordsFromStart(b, 0, 0).Sorted())
	assert.ElementsMatch(t, []string{"at"}, s.WordsFromStart(b, 0, 1).Sorted())
	assert.Equal(t, 0, s.WordsFromStart(b, 1, 0).Len())
	assert.ElementsMatch(t, []string{"sat"}, s.WordsFromStart(b, 1, 1).Sorted())

	// the start cell is part of the path and cannot be revisited
	line, err := NewBoard([][]string{{"a", "b"}})
	require.NoError(t, err)
	s = NewSolver(Build("aba", "ab"))
	assert.Equal(t, []string{"ab"}, s.WordsFromStart(line, 0, 0).Sorted())
	assert.Equal(t, 0, s.WordsFromStart(line, 0, 1).Len())
}

func TestSolveWorkers(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	grid := RandomBoard(rng, 5, 5)
	tr := Build(randomWords(rng, 500)...)

	want, err := NewSolver(tr).Solve(context.Background(), grid)
	require.NoError(t, err)
	for _, workers := range []int{0, 2, 4, 32} {
		got, err := NewSolver(tr).WithWorkers(workers).Solve(context.Background(), grid)
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestSolveSharedTrie(t *testing.T) {
	tr := Build("cat", "cats", "at")
	var wg sync.WaitGroup
	results := make([]WordSet, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = NewSolver(tr).WithWorkers(2).Solve(context.Background(), catBoard)
		}()
	}
	wg.Wait()
	for _, got := range results {
		assert.ElementsMatch(t, []string{"at", "cat", "cats"}, got.Sorted())
	}
}

func TestSolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		found, err := NewSolver(Build("cat")).WithWorkers(workers).Solve(ctx, catBoard)
		assert.Nil(t, found)
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestSolveLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewSolver(Build("cat")).WithLogger(zap.New(core))

	_, err := s.Solve(context.Background(), catBoard)
	require.NoError(t, err)
	entries := logs.FilterMessage("solved board").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ContextMap()["words"])

	_, err = s.Solve(context.Background(), [][]string{{"ab"}})
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("rejected board").Len())
}

func TestRandomBoard(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	grid := RandomBoard(rng, 3, 5)
	require.Len(t, grid, 3)
	for _, row := range grid {
		require.Len(t, row, 5)
		for _, cell := range row {
			assert.Len(t, cell, 1)
			assert.Contains(t, letterBank, cell)
		}
	}
	_, err := NewBoard(grid)
	assert.NoError(t, err)
}

func randomWords(rng *rand.Rand, n int) []string {
	const letters = "aeiorstnlcdp"
	words := make([]string, n)
	for i := range words {
		w := make([]byte, 3+rng.IntN(4))
		for j := range w {
			w[j] = letters[rng.IntN(len(letters))]
		}
		words[i] = string(w)
	}
	return words
}
