package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	boggle "github.com/sarthakjha889/go-boggle-trie"
	"github.com/sarthakjha889/go-boggle-trie/dictionary"
	"github.com/sarthakjha889/go-boggle-trie/internal/config"
	"github.com/sarthakjha889/go-boggle-trie/internal/render"
)

// cli is the state shared by every subcommand once flags are parsed.
type cli struct {
	out    io.Writer
	cfg    config.Config
	logger *zap.Logger

	configPath string
	flags      config.Config
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "boggle",
		Short: "Find every dictionary word on a Boggle board",
		Long: `boggle traces words through adjacent letters of a rectangular grid,
using each cell at most once per word.

Boards are read one row per line, either as a run of letters ("cats") or as
whitespace separated cells ("c a t s").`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVarP(&c.configPath, "config", "c", "", "Path to a YAML configuration file.")
	pf.StringVarP(&c.flags.Dictionary, "dict", "d", "", "Path to the word list, one word per line.")
	pf.IntVar(&c.flags.MinLength, "min-length", dictionary.DefaultMinLength, "Shortest word accepted from the dictionary.")
	pf.BoolVar(&c.flags.Normalise, "normalise", false, "Strip diacritics from dictionary words and board cells.")
	pf.IntVarP(&c.flags.Workers, "workers", "w", 1, "Number of start cells searched concurrently.")
	pf.StringVar(&c.flags.Sort, "sort", config.SortLength, "Order of found words: 'length' or 'alpha'.")
	pf.BoolVarP(&c.flags.Verbose, "verbose", "v", false, "Enable debug logging.")

	root.AddCommand(c.solveCmd(), c.randomCmd(), c.lookupCmd())
	return root
}

// setup merges defaults, the config file and explicitly set flags, then builds the
// logger.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if c.configPath != "" {
		loaded, err := config.Load(c.configPath)
		if err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("dict") {
		cfg.Dictionary = c.flags.Dictionary
	}
	if flags.Changed("min-length") {
		cfg.MinLength = c.flags.MinLength
	}
	if flags.Changed("normalise") {
		cfg.Normalise = c.flags.Normalise
	}
	if flags.Changed("workers") {
		cfg.Workers = c.flags.Workers
	}
	if flags.Changed("sort") {
		cfg.Sort = c.flags.Sort
	}
	if flags.Changed("verbose") {
		cfg.Verbose = c.flags.Verbose
	}
	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	c.cfg = cfg

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if cfg.Verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger
	return nil
}

func (c *cli) loadTrie() (*boggle.Trie, error) {
	loader := dictionary.New().
		WithMinLength(c.cfg.MinLength).
		WithLogger(c.logger)
	if c.cfg.Normalise {
		loader.WithNormalisation()
	}
	words, err := loader.Load(c.cfg.Dictionary)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	return boggle.Build(words...), nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func (c *cli) solveCmd() *cobra.Command {
	var rows, cols int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "solve [BOARD_FILE]",
		Short: "List the words on a board, or on a random one if no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var grid [][]string
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return &ExitError{Code: 2, Message: err.Error()}
				}
				defer f.Close()
				grid, err = parseBoard(f)
				if err != nil {
					return &ExitError{Code: 2, Message: err.Error()}
				}
			} else {
				if rows < 1 || cols < 1 {
					return &ExitError{Code: 2, Message: "rows and cols must be at least 1"}
				}
				grid = boggle.RandomBoard(newRand(seed), rows, cols)
			}

			t, err := c.loadTrie()
			if err != nil {
				return err
			}
			solver := boggle.NewSolver(t).
				WithWorkers(c.cfg.Workers).
				WithLogger(c.logger)
			if c.cfg.Normalise {
				solver.WithNormalisation()
			}
			found, err := solver.Solve(cmd.Context(), grid)
			if errors.Is(err, boggle.ErrMalformedCell) || errors.Is(err, boggle.ErrNonUniformGrid) {
				return &ExitError{Code: 3, Message: err.Error()}
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(c.out, render.Board(grid))
			words := found.Sorted()
			if c.cfg.Sort == config.SortLength {
				render.SortByLength(words)
			}
			return render.Words(c.out, words)
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 4, "Rows of the random board.")
	cmd.Flags().IntVar(&cols, "cols", 4, "Columns of the random board.")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the random board; 0 picks one.")
	return cmd
}

func (c *cli) randomCmd() *cobra.Command {
	var rows, cols int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a random board in the format solve reads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rows < 1 || cols < 1 {
				return &ExitError{Code: 2, Message: "rows and cols must be at least 1"}
			}
			return formatBoard(c.out, boggle.RandomBoard(newRand(seed), rows, cols))
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 4, "Rows of the board.")
	cmd.Flags().IntVar(&cols, "cols", 4, "Columns of the board.")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed; 0 picks one.")
	return cmd
}

func (c *cli) lookupCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "lookup PREFIX",
		Short: "List dictionary words starting with PREFIX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.loadTrie()
			if err != nil {
				return err
			}
			return render.Words(c.out, t.WordsWithPrefix(boggle.Fold(args[0]), limit))
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of words; 0 lists all.")
	return cmd
}
