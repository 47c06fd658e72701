/*
Package boggle finds every dictionary word that can be traced on a rectangular
letter grid as a path of adjacent cells, using each cell at most once per path.

Words are stored in a Trie so the search can stop extending a path the moment its
letters stop being a prefix of any word. Build the trie once, then share it between
any number of Solvers and goroutines.
*/
package boggle
