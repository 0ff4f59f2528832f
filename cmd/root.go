package cmd

import (
	"errors"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"devcli/internal/config"
	"devcli/internal/executor"
	"devcli/internal/logger"
	"devcli/internal/placeholder"
	"devcli/internal/runner"
	"devcli/internal/shell"
)

// helpArg lists the catalog instead of running a command.
const helpArg = "help"

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// tasksPath is an explicit catalog location passed via `--tasks` or `-t`.
// When empty the catalog is located through the cache and default candidates.
var tasksPath string

// noCycleCheck restores plain recursive dependency execution.
var noCycleCheck bool

// errUsage is returned for anything but exactly one positional argument.
var errUsage = errors.New("devcli was invoked improperly. Try again in format: devcli <command>. Use 'devcli help' to list commands")

// rootCmd is the base command for the CLI tool `devcli`.
// It takes exactly one argument: a dotted command name or `help`.
var rootCmd = &cobra.Command{
	Use:   "devcli <category.subcommand | help>",
	Short: "Run catalog tasks with the right command for your shell",
	Long: `devcli maps short dotted names like build.cpp onto the shell command
declared for the active shell (Powershell, CMD or Linux) in tasks.json,
running declared dependencies first and skipping installs of tools that
are already available.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errUsage
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,

	// PersistentPreRun is a hook that runs before the command.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug) // Set up logging (verbose if --debug is true)
	},
	RunE: run,
}

// run loads the catalog and either lists it or executes one command.
// Only a missing or unparsable catalog is an error; command failures are
// logged by the executor and the process still exits 0.
func run(cmd *cobra.Command, args []string) error {
	fs := afero.NewOsFs()
	prompter := placeholder.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	path := tasksPath
	if path == "" {
		var err error
		path, err = config.NewLocator(fs, prompter).Resolve()
		if err != nil {
			return err
		}
	}

	catalog, err := config.LoadCatalog(fs, path)
	if err != nil {
		return err
	}
	logger.Debug("[DEBUG] Catalog %s parsed successfully\n", path)

	env := shell.Detect()

	if args[0] == helpArg {
		config.PrintListing(cmd.OutOrStdout(), catalog.Listing(env.Key()))
		return nil
	}

	sys := &runner.System{Stdin: cmd.InOrStdin(), Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
	ex := executor.New(catalog, env, sys, prompter, executor.WithCycleGuard(!noCycleCheck))
	_ = ex.Run(cmd.Context(), args[0])
	return nil
}

// Execute registers flags and runs the root command.
// Any error reaching here (usage, catalog) ends the process with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&tasksPath, "tasks", "t", "", "Path to the task catalog (skips lookup and cache)")
	rootCmd.Flags().BoolVar(&noCycleCheck, "no-cycle-check", false, "Run dependencies recursively without cycle detection")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
