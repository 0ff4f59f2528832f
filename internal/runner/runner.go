package runner

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner spawns a command line through the platform shell and blocks until it exits.
type Runner interface {
	// Run executes line with inherited stdio and returns its exit status.
	// err is non-nil only when the process could not be started at all.
	Run(ctx context.Context, line string) (int, error)
	// FirstLine executes line and returns the first line it wrote to stdout,
	// without its line terminator. ok is false when nothing was written.
	FirstLine(ctx context.Context, line string) (first string, ok bool, err error)
}

// System implements Runner on top of os/exec, the way system(3) and popen(3) would.
type System struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewSystem creates a runner wired to this process's standard streams.
func NewSystem() *System {
	return &System{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes a command line
func (s *System) Run(ctx context.Context, line string) (int, error) {
	cmd := shellCommand(ctx, line)
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	return exitStatus(cmd.Run())
}

// FirstLine executes a command line and captures the first line of its stdout
func (s *System) FirstLine(ctx context.Context, line string) (string, bool, error) {
	var out bytes.Buffer
	cmd := shellCommand(ctx, line)
	cmd.Stdout = &out
	cmd.Stderr = s.Stderr
	if _, err := exitStatus(cmd.Run()); err != nil {
		return "", false, err
	}

	scanner := bufio.NewScanner(&out)
	if !scanner.Scan() {
		return "", false, scanner.Err()
	}
	return strings.TrimRight(scanner.Text(), "\r"), true, nil
}

// exitStatus separates "ran and exited nonzero" from "could not run".
func exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
