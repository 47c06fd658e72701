// Package render formats boards and found words for the terminal.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var (
	cellStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	boardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// SortByLength orders words longest first, counting characters, and alphabetically within a length.
func SortByLength(words []string) {
	sort.Slice(words, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(words[i]), utf8.RuneCountInString(words[j])
		if li != lj {
			return li > lj
		}
		return words[i] < words[j]
	})
}

// SortAlpha orders words alphabetically.
func SortAlpha(words []string) {
	sort.Strings(words)
}

// Board draws grid as a bordered block of upper-case letters.
func Board(grid [][]string) string {
	rows := make([]string, len(grid))
	for i, row := range grid {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = cellStyle.Render(strings.ToUpper(cell))
		}
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Words writes one word per line followed by a count.
func Words(w io.Writer, words []string) error {
	for _, word := range words {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d words\n", len(words))
	return err
}
