// Package dictionary reads word lists for the boggle solver. Words are folded to
// lower case and filtered so that only playable words reach the trie.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/exp/mmap"

	boggle "github.com/sarthakjha889/go-boggle-trie"
)

// DefaultMinLength is the shortest word accepted by default; shorter words are not
// playable.
const DefaultMinLength = 3

// Loader turns a one-word-per-line list into words ready for boggle.Build.
type Loader struct {
	minLength  int
	normalised bool
	logger     *zap.Logger
}

// New creates a loader with the default minimum length, no normalisation and no
// logging.
func New() *Loader {
	return &Loader{minLength: DefaultMinLength, logger: zap.NewNop()}
}

// WithMinLength sets the minimum word length, counted in characters.
func (l *Loader) WithMinLength(n int) *Loader {
	l.minLength = n
	return l
}

// WithNormalisation strips diacritics from words, so café is stored as cafe.
func (l *Loader) WithNormalisation() *Loader {
	l.normalised = true
	return l
}

// WithoutNormalisation keeps words as written apart from case folding.
func (l *Loader) WithoutNormalisation() *Loader {
	l.normalised = false
	return l
}

// WithLogger sets the logger.
func (l *Loader) WithLogger(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	l.logger = logger
	return l
}

// Load reads the word list at path. The file is memory mapped rather than copied in.
func (l *Loader) Load(path string) ([]string, error) {
	f, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer f.Close()

	words, err := l.Read(io.NewSectionReader(f, 0, int64(f.Len())))
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	return words, nil
}

// Read returns the accepted words from r in first-seen order, without duplicates.
func (l *Loader) Read(r io.Reader) ([]string, error) {
	seen := make(map[string]struct{})
	words := make([]string, 0, 1024)
	var skipped int

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if l.normalised {
			word = boggle.Normalise(word)
		}
		word = boggle.Fold(word)
		if !l.accept(word) {
			skipped++
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(words) == 0 {
		l.logger.Warn("dictionary is empty, no words will be found", zap.Int("skipped", skipped))
	} else {
		l.logger.Debug("loaded dictionary", zap.Int("words", len(words)), zap.Int("skipped", skipped))
	}
	return words, nil
}

func (l *Loader) accept(word string) bool {
	if utf8.RuneCountInString(word) < l.minLength {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
