package logger

import (
	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Define colorized printing functions for different log levels using fatih/color.
// These are package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the log level.

// Info logs informational messages in green color.
// Used for every command devcli spawns and for successful outcomes.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta color.
// Used when devcli keeps going after something the user should fix,
// e.g. a tool found on disk but missing from PATH.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// errorColor renders error lines in red.
var errorColor = color.New(color.FgRed)

// Error logs error messages in red color to stderr.
// Configuration and execution failures are reported here and never abort the run.
var Error = func(format string, a ...any) {
	_, _ = errorColor.Fprintf(color.Error, format, a...)
}

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It starts as a no-op so packages can log before Init has run (e.g. in tests).
var Debug = func(format string, a ...any) {}

// Init initializes the logger package, specifically enabling or disabling debug logging.
// Parameters:
// - enableDebug: boolean flag to turn debug messages on or off.
// When enabled, Debug will print messages in cyan color.
// When disabled, Debug will be a no-op function that silently ignores debug logs.
func Init(enableDebug bool) {
	if enableDebug {
		// Assign Debug to print cyan-colored debug messages.
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		// Assign Debug to a no-op function that ignores all debug logs.
		Debug = func(format string, a ...any) {}
	}
}
