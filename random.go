package boggle

import "math/rand/v2"

// letterBank weights the letters drawn by RandomBoard; more useful letters appear
// more often.
const letterBank = "AAAAAABBCCDDDEEEEEEEEEEEFFGGHHHHHIIIIIIJKLLLLMM" +
	"NNNNNNOOOOOOOPPQRRRRRSSSSSSTTTTTTTTTUUUVVWWWXYYYZ"

// RandomBoard returns a rows x cols grid of upper-case letters drawn from a weighted
// letter bank.
func RandomBoard(rng *rand.Rand, rows, cols int) [][]string {
	grid := make([][]string, rows)
	for i := range grid {
		grid[i] = make([]string, cols)
		for j := range grid[i] {
			grid[i][j] = string(letterBank[rng.IntN(len(letterBank))])
		}
	}
	return grid
}
