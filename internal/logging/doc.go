// Package logging provides structured logging for acitool.
//
// # Overview
//
// Loggers are backed by log/slog. Text output goes through tint and is
// colored only on terminals; JSON output uses slog's JSON handler.
//
//	logger := logging.New(logging.Config{
//	    Level:  "debug",
//	    Format: "json",
//	    Output: "stderr",
//	})
//
// For testing, use a no-op logger:
//
//	logger := logging.NewNop()
//
// # Structured Logging
//
// Add key-value pairs to log entries:
//
//	logger.Warn("aci scan stopped early",
//	    "position", 42,
//	    "records", 5,
//	)
//
// Create loggers with persistent fields:
//
//	fileLogger := logger.WithFields("file", path)
//	fileLogger.Info("draft assembled")
package logging
