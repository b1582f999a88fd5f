// Package logging provides structured logging for crewfile.
//
// This package wraps zap with convenience functions for the logging
// patterns used throughout the tool. By default it is silent so that
// CLI output stays clean for scripting; set CREWFILE_LOG_LEVEL to
// "debug", "info", "warn" or "error" to enable output on stderr.
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Roster changed",
//	    zap.String("op", "create"),
//	    zap.Int("id", 3),
//	)
//
// Initialize logging at program startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    fmt.Fprintf(os.Stderr, "Error: %v\n", err)
//	    os.Exit(1)
//	}
package logging
