package shell

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"devcli/internal/logger"
)

// ID names the command interpreter a catalog variant is written for.
// The values double as the shell keys inside the task catalog.
type ID string

const (
	PowerShell ID = "Powershell"
	CMD        ID = "CMD"
	Linux      ID = "Linux"
)

// Environment holds the interpreter detected once at startup.
// It is passed by value into every component that needs it and never re-detected.
type Environment struct {
	id ID
}

// New returns an Environment pinned to the given identifier.
func New(id ID) Environment {
	return Environment{id: id}
}

// Detect inspects the running process and returns its Environment.
func Detect() Environment {
	return DetectFrom(runtime.GOOS, os.Getenv)
}

// DetectFrom picks the identifier for the given GOOS.
// On Windows, a PSModulePath naming the WindowsPowerShell module root means
// PowerShell, anything else means CMD. Every other platform is Linux.
func DetectFrom(goos string, getenv func(string) string) Environment {
	id := Linux
	if goos == "windows" {
		id = CMD
		if strings.Contains(getenv("PSModulePath"), "WindowsPowerShell") {
			id = PowerShell
		}
	}
	logger.Debug("[DEBUG] Shell detected: %s\n", id)
	return Environment{id: id}
}

// ID returns the catalog key for this environment.
func (e Environment) ID() ID {
	return e.id
}

// Key returns the identifier as a plain string for catalog lookups.
func (e Environment) Key() string {
	return string(e.id)
}

// IsPosix reports whether commands run under a POSIX shell.
func (e Environment) IsPosix() bool {
	return e.id == Linux
}

// Wrap adapts a command line for the interpreter.
// The Windows runner always spawns through cmd.exe, so PowerShell syntax has to
// be re-routed explicitly; CMD and Linux lines pass through untouched.
func (e Environment) Wrap(command string) string {
	if e.id == PowerShell {
		return fmt.Sprintf("powershell -Command \"%s\"", command)
	}
	return command
}
