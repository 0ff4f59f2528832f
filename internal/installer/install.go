package installer

import (
	"errors"
	"fmt"

	"devcli/internal/config"
	"devcli/internal/shell"
)

// ErrNoInstaller is returned when cmd has no entry for the selected installer.
var ErrNoInstaller = errors.New("no valid 'cmd' string for this installer")

// Source is the installer an install entry is dispatched to.
type Source int

const (
	// ElevatedWindows installs with choco.
	ElevatedWindows Source = iota
	// UnelevatedWindows installs with scoop.
	UnelevatedWindows
	// Posix runs the plain cmd line with the system's own package manager.
	Posix
)

func (s Source) String() string {
	switch s {
	case ElevatedWindows:
		return "choco"
	case UnelevatedWindows:
		return "scoop"
	default:
		return "system"
	}
}

// SelectSource picks the installer once per install attempt. elevated is only
// consulted on Windows shells.
func SelectSource(env shell.Environment, elevated func() bool) Source {
	if env.IsPosix() {
		return Posix
	}
	if elevated() {
		return ElevatedWindows
	}
	return UnelevatedWindows
}

// Wraps reports whether the selected command goes through the shell wrapper.
// POSIX install lines run exactly as written.
func (s Source) Wraps() bool {
	return s != Posix
}

// Command picks the command line for this source out of an install entry's cmd.
func (s Source) Command(cmd config.Cmd) (string, error) {
	if s == Posix {
		if !cmd.IsLine() || cmd.Line == "" {
			return "", fmt.Errorf("%w: expected a command string", ErrNoInstaller)
		}
		return cmd.Line, nil
	}
	line, ok := cmd.Installer(s.String())
	if !ok || line == "" {
		return "", fmt.Errorf("%w: %s", ErrNoInstaller, s)
	}
	return line, nil
}
