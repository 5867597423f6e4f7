// Package app provides the orchestration layer for pocsum.
//
// # Overview
//
// This package wires together configuration, log loading, analysis, and
// rendering. It is the composition root: every other package is a pure
// building block and Run decides how they are connected for one invocation.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ One linear pass
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Report settings (log path, endpoints)
//	       ├─────> prefs.Load()       Theme
//	       ├─────> logfile.Load()     Log text ("" on failure)
//	       ├─────> summary.Analyze()  Buckets + container states
//	       └─────> report.Render()    stdout
//	               or ui.Run()        pager (--view)
//
// # Log Path Resolution
//
//  1. Options.LogPath (the command line argument)
//  2. log_path from the config file
//  3. logs.txt in the working directory
//
// # Error Handling
//
// A log file that cannot be read is never fatal: Run logs a warning on
// stderr and renders the report for empty input, whose overall status is
// UNKNOWN. A broken config file is handled the same way with defaults.
// Run only returns errors from writing the report or from the pager.
package app
