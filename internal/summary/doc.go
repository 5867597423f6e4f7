// Package summary classifies PoC environment log output.
//
// # Overview
//
// The package turns raw log text into a Data value: four ordered buckets of
// check lines (passed, failed, warning, error) plus the lifecycle state of
// every poc1_* container mentioned in the log. Everything here is a pure
// function of the input text. There is no state between calls and nothing
// in the package can fail.
//
// # Line classification
//
// Each line is stripped of ANSI color codes (ESC [ digits/semicolons m) and
// trimmed, then tested against fixed markers:
//
//   - Passed:  [PASS], [SUCCESS], ✓
//   - Failed:  [FAIL], [ERROR], ✗
//   - Warning: [WARN]
//   - Error:   "error" anywhere (case-insensitive) except when the first
//     10 characters already contain it
//
// The tests are independent, so a line can land in several buckets. The
// 10-character window keeps lines such as "ERROR: ..." from being counted as
// a generic error on top of the failure marker; it is matched exactly.
//
// # Container status
//
// Container states are read from the lower-cased full text rather than line
// by line, because listing tools pad columns freely:
//
//	poc1_authentik_server   Up 3 minutes   running
//
// A name seen twice keeps its last state but its first position, so reports
// list containers in the order they first appeared.
//
// Log formats that do not follow the poc1_<name> ... <state> layout yield an
// empty mapping. That is accepted behavior.
package summary
