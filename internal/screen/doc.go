// Package screen is the terminal side of the runner: it measures the host
// terminal, draws the bordered message viewport with ANSI escapes, reads
// input lines and restores the screen on the way out.
//
// Layout, for a terminal of R rows:
//
//	row 1      border
//	row 2      prompt (the cursor is left here)
//	rows 3..R-1  message log, oldest first
//	row R      border
//
// so the log can show R-3 lines at most; LogRows reports that figure.
package screen
