// Package logfile loads PoC log captures from disk.
//
// Load returns the whole file as text. Tail keeps only the last N lines in a
// window that grows with the input and never holds more than min(N, lines
// seen), so very long captures are read in one pass:
//
//	1. Append lines until the window holds N of them
//	2. After that, overwrite the oldest line and advance the start index
//	3. Return the window starting at the oldest line
//
// Lines are read with bufio.Reader, so a single line of any length is kept
// intact. A trailing "\r" is dropped from each line.
//
// Both functions report a missing file as an error wrapping os.ErrNotExist.
// Callers decide whether that is fatal; the summary command never treats it
// as one and falls back to empty text.
package logfile
