// Package cli wires the grocery-app command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
)

// serveFlags override the environment configuration when set.
type serveFlags struct {
	port        string
	recipesFile string
	logLevel    string
	logFormat   string
}

// NewRootCommand builds the command tree. Running the root command without a
// subcommand starts the server.
func NewRootCommand() *cobra.Command {
	flags := &serveFlags{}

	root := &cobra.Command{
		Use:   "grocery-app",
		Short: "Household pantry, recipe and shopping list API",
		Long: `grocery-app serves the REST API behind the pantry, recipes and shopping list
pages. All data lives in memory and is reset on restart.

Configuration is read from the environment (and a .env file when present);
flags take precedence.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.port, "port", "", "HTTP listen port (env PORT)")
	pf.StringVar(&flags.recipesFile, "recipes-file", "", "YAML file replacing the sample recipes (env RECIPES_FILE)")
	pf.StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (env LOG_LEVEL)")
	pf.StringVar(&flags.logFormat, "log-format", "", "text or json (env LOG_FORMAT)")

	root.AddCommand(newServeCommand(flags))
	root.AddCommand(newSeedCommand())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
