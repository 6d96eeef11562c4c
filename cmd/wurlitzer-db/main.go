package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/maloquacious/semver"
	"github.com/maloquacious/wurlitzer/internal/action"
	"github.com/maloquacious/wurlitzer/internal/logger"
	"github.com/maloquacious/wurlitzer/internal/runner"
	"github.com/maloquacious/wurlitzer/internal/store"
	"github.com/spf13/cobra"
)

var (
	version = semver.Version{Minor: 2, PreRelease: "alpha", Build: semver.Commit()}
)

type options struct {
	create     bool
	migrate    bool
	dbPath     string
	schemaPath string
	debug      bool
}

func main() {
	rootCmd := newRootCmd(logger.Default)
	rootCmd.SetArgs(normalizeArgs(rootCmd, os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(log *logger.StdLogger) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "wurlitzer-db",
		Short:        "Run database actions for the wurlitzer instance",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetDebug(opts.debug)
			a := action.Select(opts.create, opts.migrate)
			log.Debug("selected action %s", a)
			return newRunner(opts, log, cmd.OutOrStdout()).Run(a)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", store.GetDBPath(store.GetStorePath()), "path to the wurlitzer database file")
	rootCmd.PersistentFlags().StringVar(&opts.schemaPath, "schema", store.DefaultSchemaFile, "path to the schema file")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log debug messages")

	rootCmd.Flags().BoolVar(&opts.create, "create", false, "Create a new wurlitzer database")
	rootCmd.Flags().BoolVar(&opts.migrate, "migrate", false, "Migrate an old wurlitzer database")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Report the state of the wurlitzer database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetDebug(opts.debug)
			state, users, err := newRunner(opts, log, cmd.OutOrStdout()).Status()
			if err != nil {
				return err
			}
			if state == store.StateReady {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d users)\n", opts.dbPath, state, users)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", opts.dbPath, state)
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}

	rootCmd.AddCommand(statusCmd, versionCmd)
	return rootCmd
}

func newRunner(opts *options, log logger.Logger, out io.Writer) *runner.Runner {
	return &runner.Runner{
		DBPath:     opts.dbPath,
		SchemaPath: opts.schemaPath,
		Log:        log,
		Out:        out,
	}
}

// normalizeArgs rewrites single-dash long flags such as -create into the
// --create form cobra expects. Anything after "--" is left alone.
func normalizeArgs(cmd *cobra.Command, args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if len(arg) > 2 && arg[0] == '-' && arg[1] != '-' {
			name, _, _ := strings.Cut(arg[1:], "=")
			if len(name) > 1 && lookupFlag(cmd, name) {
				arg = "-" + arg
			}
		}
		out = append(out, arg)
	}
	return out
}

func lookupFlag(cmd *cobra.Command, name string) bool {
	if cmd.Flags().Lookup(name) != nil || cmd.PersistentFlags().Lookup(name) != nil {
		return true
	}
	for _, sub := range cmd.Commands() {
		if sub.Flags().Lookup(name) != nil {
			return true
		}
	}
	return false
}
