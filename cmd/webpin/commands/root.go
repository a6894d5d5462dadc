// Package commands implements the CLI commands for webpin.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.webpin.dev/webpin/internal/build"
	"go.webpin.dev/webpin/internal/core/domain"
)

// Application represents the application logic interface.
type Application interface {
	Install(ctx context.Context, configPath string) error
	Lookup(ctx context.Context, configPath, specifier string) (*domain.LookupResult, error)
	Clean(ctx context.Context, configPath string) error
}

// CLI represents the command line interface for webpin.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "webpin",
		Short:         "Resolve web-package imports into a pinned import map",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().StringP("config", "c", domain.DefaultConfigName, "Path to configuration file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}
