package main

import (
	"bufio"
	"io"
	"strings"
)

// parseBoard reads one board row per line. A row containing whitespace is split into
// cells on it; otherwise every character is a cell. Blank lines and lines starting
// with '#' are ignored.
func parseBoard(r io.Reader) ([][]string, error) {
	var grid [][]string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.ContainsAny(line, " \t") {
			grid = append(grid, strings.Fields(line))
			continue
		}
		row := make([]string, 0, len(line))
		for _, ch := range line {
			row = append(row, string(ch))
		}
		grid = append(grid, row)
	}
	return grid, scanner.Err()
}

// formatBoard writes grid in the format parseBoard reads.
func formatBoard(w io.Writer, grid [][]string) error {
	for _, row := range grid {
		if _, err := io.WriteString(w, strings.Join(row, " ")+"\n"); err != nil {
			return err
		}
	}
	return nil
}
