package main

import (
	"devcli/cmd" // Import the cmd package which contains the CLI command and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// devcli is a cross-platform task dispatcher that:
//   - Reads a task catalog (tasks.json) mapping `category.subcommand` names to one
//     command per shell (Powershell, CMD, Linux)
//   - Detects the active shell once at startup and wraps PowerShell commands so they
//     run through cmd.exe
//   - Runs each command's declared dependencies first, in order
//   - Skips installs of tools that are already on PATH, or puts an on-disk copy on PATH,
//     and otherwise picks choco (elevated) or scoop on Windows and the system package
//     manager elsewhere
//   - Prompts for {{path}} and {{name}} placeholders before running a command
//
// Error handling strategy:
//   - Failures of individual commands are logged and never change the exit status
//   - Only a wrong argument count or an unreadable/unparsable catalog exits with status 1
func main() {
	cmd.Execute()
}
