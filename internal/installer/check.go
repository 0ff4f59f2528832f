package installer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"devcli/internal/logger"
	"devcli/internal/placeholder"
	"devcli/internal/runner"
	"devcli/internal/shell"
)

// Availability is the outcome of probing for a tool.
type Availability int

const (
	// NotFound means the tool is nowhere to be found and should be installed.
	NotFound Availability = iota
	// AlreadyUsable means the tool can be invoked, possibly after a PATH fix-up.
	AlreadyUsable
)

func (a Availability) String() string {
	if a == AlreadyUsable {
		return "already usable"
	}
	return "not found"
}

var (
	// ErrMissingProbe is returned when an install entry lacks atPath, atDrive or addToPath.
	ErrMissingProbe = errors.New("install entry is missing atPath, atDrive or addToPath")
	// ErrNoProbeOutput is returned when atDrive succeeded but printed no path.
	ErrNoProbeOutput = errors.New("could not read path from atDrive command")
	// ErrNoPathToken is returned when addToPath has nowhere to put the directory.
	ErrNoPathToken = errors.New("placeholder {{path}} not found in addToPath")
)

// Probe holds the three install-entry commands used to look for a tool.
// - AtPath: exits 0 when the tool is reachable through PATH.
// - AtDrive: exits 0 when the tool exists on disk; on POSIX prints its full path.
// - AddToPath: makes the tool reachable; on POSIX carries a {{path}} token.
type Probe struct {
	AtPath    string
	AtDrive   string
	AddToPath string
}

func (p Probe) complete() bool {
	return p.AtPath != "" && p.AtDrive != "" && p.AddToPath != ""
}

// Checker decides whether an install can be skipped.
type Checker struct {
	env     shell.Environment
	runner  runner.Runner
	addPath func(dir string) error
}

// NewChecker creates a Checker that spawns probes with r and prepends found
// directories to this process's PATH.
func NewChecker(env shell.Environment, r runner.Runner) *Checker {
	return &Checker{env: env, runner: r, addPath: PrependPath}
}

// Check runs the probes in order: AtPath, then AtDrive, then AddToPath if the
// tool is on disk but not on PATH.
//
// A probe with a missing command is reported as NotFound together with
// ErrMissingProbe so the caller still attempts the install. A POSIX AtDrive
// that prints nothing is NotFound with ErrNoProbeOutput; the caller should
// stop there.
func (c *Checker) Check(ctx context.Context, p Probe) (Availability, error) {
	if !p.complete() {
		logger.Error("[ERROR] Invalid tool definition. Required keys missing (atPath, atDrive, addToPath).\n")
		return NotFound, ErrMissingProbe
	}

	status := c.run(ctx, p.AtPath)
	logger.Debug("[DEBUG] atPath returned status: %d\n", status)
	if status == 0 {
		logger.Info("[INFO] Tool found at path. Skipping install.\n")
		return AlreadyUsable, nil
	}

	status = c.run(ctx, p.AtDrive)
	logger.Debug("[DEBUG] atDrive returned status: %d\n", status)
	if status != 0 {
		logger.Info("[INFO] Tool not present in system. Installing.\n")
		return NotFound, nil
	}

	if !c.env.IsPosix() {
		logger.Warn("[WARN] Tool is installed but not added to PATH. Adding temporarily; add it to PATH permanently as well.\n")
		c.run(ctx, p.AddToPath)
		logger.Info("[INFO] Tool path temporarily added.\n")
		return AlreadyUsable, nil
	}

	return c.addFromDrive(ctx, p)
}

// addFromDrive re-runs AtDrive to learn the tool's location and puts its
// directory on PATH.
func (c *Checker) addFromDrive(ctx context.Context, p Probe) (Availability, error) {
	found, ok, err := c.runner.FirstLine(ctx, p.AtDrive)
	if err != nil {
		logger.Error("[ERROR] Failed to execute atDrive command: %v\n", err)
		return NotFound, fmt.Errorf("%w: %v", ErrNoProbeOutput, err)
	}
	if !ok {
		logger.Error("[ERROR] Could not read path from atDrive command.\n")
		return NotFound, ErrNoProbeOutput
	}

	dir := ToolDir(found)
	logger.Debug("[DEBUG] Found path: %s\n", dir)

	command, hasToken := placeholder.Substitute(p.AddToPath, placeholder.PathToken, dir)
	if !hasToken {
		logger.Error("[ERROR] Placeholder {{path}} not found in addToPath.\n")
		return NotFound, ErrNoPathToken
	}

	if status := c.run(ctx, command); status != 0 {
		logger.Warn("[WARN] addToPath exited with status %d\n", status)
	}
	// A child shell cannot change our environment, so apply it here too.
	if err := c.addPath(dir); err != nil {
		logger.Warn("[WARN] Failed to update PATH: %v\n", err)
	}
	logger.Info("[INFO] Tool path temporarily added: %s\n", dir)
	return AlreadyUsable, nil
}

// run wraps and spawns a probe, folding start failures into a nonzero status.
func (c *Checker) run(ctx context.Context, command string) int {
	status, err := c.runner.Run(ctx, c.env.Wrap(command))
	if err != nil {
		logger.Error("[ERROR] Failed to run %q: %v\n", command, err)
		return -1
	}
	return status
}

// ToolDir strips the file name from a path printed by a probe.
func ToolDir(found string) string {
	dir := strings.TrimRight(found, "\r\n")
	if i := strings.LastIndex(dir, "/"); i >= 0 {
		dir = dir[:i]
	}
	dir = strings.TrimSuffix(dir, "/")
	if dir == "" {
		return "/"
	}
	return dir
}

// PrependPath puts dir in front of this process's PATH unless it is already there.
func PrependPath(dir string) error {
	current := os.Getenv("PATH")
	for _, entry := range strings.Split(current, string(os.PathListSeparator)) {
		if entry == dir {
			return nil
		}
	}
	if current == "" {
		return os.Setenv("PATH", dir)
	}
	return os.Setenv("PATH", dir+string(os.PathListSeparator)+current)
}
