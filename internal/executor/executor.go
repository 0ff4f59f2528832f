package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"devcli/internal/config"
	"devcli/internal/installer"
	"devcli/internal/logger"
	"devcli/internal/placeholder"
	"devcli/internal/runner"
	"devcli/internal/shell"
)

// Reserved names with special meaning in a catalog.
const (
	InstallCategory = "install"
	InstallAll      = "all"
)

var (
	ErrInvalidSyntax       = errors.New("invalid command syntax, expected format like 'build.cpp'")
	ErrNoCategory          = errors.New("no such category")
	ErrNoSubcommand        = errors.New("no such subcommand")
	ErrShellVariantMissing = errors.New("shell-specific command missing")
	ErrMissingCmd          = errors.New("no valid 'cmd' string found for this command")
	ErrDependencyCycle     = errors.New("dependency cycle")
	ErrCommandFailed       = errors.New("command execution failed")
)

// Executor resolves dotted command names against a catalog and runs them.
//
// Dependencies are run by re-entering Run's resolution for each declared name.
// A failed dependency is logged and does not stop its siblings or its parent.
// With the guard disabled, recursion depth is whatever the catalog authors
// wrote, including infinite for a cycle.
type Executor struct {
	catalog  *config.Catalog
	env      shell.Environment
	runner   runner.Runner
	checker  *installer.Checker
	expander *placeholder.Expander
	elevated func() bool
	guard    bool
}

// Option configures an Executor.
type Option func(*Executor)

// WithElevation overrides the Administrators membership check.
func WithElevation(elevated func() bool) Option {
	return func(e *Executor) { e.elevated = elevated }
}

// WithCycleGuard toggles cycle detection and once-per-run dependency execution.
func WithCycleGuard(enabled bool) Option {
	return func(e *Executor) { e.guard = enabled }
}

// New creates an Executor. prompter answers {{path}}/{{name}} placeholders.
func New(cat *config.Catalog, env shell.Environment, r runner.Runner, prompter placeholder.Prompter, opts ...Option) *Executor {
	e := &Executor{
		catalog:  cat,
		env:      env,
		runner:   r,
		checker:  installer.NewChecker(env, r),
		expander: placeholder.NewExpander(prompter),
		elevated: shell.IsElevated,
		guard:    true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// visits tracks one top-level invocation's dependency walk.
type visits struct {
	active map[string]bool
	done   map[string]bool
}

// Run resolves and executes name ("category.subcommand") and its dependencies.
// Only name's own failure is returned; dependency failures are logged.
func (e *Executor) Run(ctx context.Context, name string) error {
	var v *visits
	if e.guard {
		v = &visits{active: make(map[string]bool), done: make(map[string]bool)}
	}
	err := e.run(ctx, name, v)
	if err != nil {
		logger.Error("[ERROR] %s: %v\n", name, err)
	}
	return err
}

func (e *Executor) run(ctx context.Context, name string, v *visits) error {
	logger.Debug("[DEBUG] Starting command: %s\n", name)

	if v != nil {
		if v.active[name] {
			return fmt.Errorf("%w: %s is already being resolved", ErrDependencyCycle, name)
		}
		if v.done[name] {
			logger.Debug("[DEBUG] %s already ran, skipping\n", name)
			return nil
		}
		v.active[name] = true
		defer func() {
			delete(v.active, name)
			v.done[name] = true
		}()
	}

	category, sub, err := ParseName(name)
	if err != nil {
		return err
	}

	variant, err := e.lookup(category, sub)
	if err != nil {
		return err
	}

	for _, dep := range variant.DependsOn {
		if err := e.run(ctx, dep, v); err != nil {
			logger.Error("[ERROR] Dependency %s of %s: %v\n", dep, name, err)
		}
	}

	if category == InstallCategory {
		if sub == InstallAll {
			logger.Debug("[DEBUG] %s only runs its dependencies\n", name)
			return nil
		}
		return e.install(ctx, variant)
	}
	return e.generic(ctx, variant)
}

// ParseName splits a dotted name on its first '.'.
func ParseName(name string) (category, sub string, err error) {
	i := strings.IndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSyntax, name)
	}
	return name[:i], name[i+1:], nil
}

func (e *Executor) lookup(category, sub string) (config.Variant, error) {
	cat, ok := e.catalog.Category(category)
	if !ok {
		return config.Variant{}, fmt.Errorf("%w: %s", ErrNoCategory, category)
	}
	s, ok := cat.Subcommand(sub)
	if !ok {
		return config.Variant{}, fmt.Errorf("%w: %s.%s", ErrNoSubcommand, category, sub)
	}
	variant, ok := s.Variant(e.env.Key())
	if !ok {
		return config.Variant{}, fmt.Errorf("%w for %s.%s under %s", ErrShellVariantMissing, category, sub, e.env.ID())
	}
	logger.Debug("[DEBUG] Found %s command for %s.%s\n", e.env.ID(), category, sub)
	return variant, nil
}

// install skips the install when the tool is already usable, otherwise runs
// the command for the selected installer.
func (e *Executor) install(ctx context.Context, variant config.Variant) error {
	probe := installer.Probe{AtPath: variant.AtPath, AtDrive: variant.AtDrive, AddToPath: variant.AddToPath}
	availability, err := e.checker.Check(ctx, probe)
	switch {
	case errors.Is(err, installer.ErrMissingProbe):
		// Misconfigured probes still fall through to the install.
	case err != nil:
		return err
	case availability == installer.AlreadyUsable:
		logger.Info("[INFO] Tool is already in PATH or has been added temporarily.\n")
		return nil
	}

	source := installer.SelectSource(e.env, e.elevated)
	line, err := source.Command(variant.Cmd)
	if err != nil {
		return err
	}
	logger.Debug("[DEBUG] Installing with %s\n", source)
	return e.execute(ctx, line, source.Wraps())
}

// generic expands placeholders, then runs the command.
func (e *Executor) generic(ctx context.Context, variant config.Variant) error {
	if !variant.Cmd.IsLine() || variant.Cmd.Line == "" {
		return ErrMissingCmd
	}

	line := variant.Cmd.Line
	if placeholder.Contains(line) {
		expanded, err := e.expander.Expand(line)
		if err != nil {
			return fmt.Errorf("placeholder input: %w", err)
		}
		line = expanded
	}
	return e.execute(ctx, line, true)
}

// execute spawns line, wrapped for the active shell when wrap is set.
func (e *Executor) execute(ctx context.Context, line string, wrap bool) error {
	final := line
	if wrap {
		final = e.env.Wrap(line)
	}
	logger.Info("[INFO] Executing: %s\n", final)

	status, err := e.runner.Run(ctx, final)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCommandFailed, err)
	}
	if status != 0 {
		return fmt.Errorf("%w with status: %d", ErrCommandFailed, status)
	}
	return nil
}
