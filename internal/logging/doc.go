// Package logging provides structured logging for tasklist.
//
// This package wraps Go's log/slog to write JSON lines to a debug.log file in
// the data directory. The TUI owns the terminal, so nothing is ever logged to
// stdout while it runs; the file is the only place to look when a save fails
// or a stored collection is discarded as malformed.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(dataDir, "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	storeLog := logger.WithComponent("store")
//	storeLog.Warn("discarding malformed collection", "key", "tasks", "error", err)
//
// Output:
//
//	{"time":"...","level":"WARN","msg":"discarding malformed collection","component":"store","key":"tasks","error":"..."}
//
// # Testing
//
// Use [NopLogger] to discard output, or [NewWriterLogger] with a buffer to
// assert on entries.
//
// # Configuration
//
//	logging:
//	  enabled: true
//	  level: info
package logging
