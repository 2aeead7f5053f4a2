// Package commands implements the CLI commands for handler.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/handler/internal/app"
	"go.trai.ch/handler/internal/build"
)

// CLI represents the command line interface for handler.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	config  string
	json    bool
	onJSON  func(bool)
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
	SettingsGet(ctx context.Context, config, key string) ([]app.Setting, error)
	SettingsSet(ctx context.Context, config, key string, values map[string]any) error
	SettingsPatch(ctx context.Context, config, key string, values map[string]any) error
	SettingsDelete(ctx context.Context, config, key string) (bool, error)
	SettingsClear(ctx context.Context, config string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "handler",
		Short:         "Load event listeners from Go modules and drive them from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.config, "config", "c", ".",
		"Path to handler.yaml, or a directory to search upwards from")
	rootCmd.PersistentFlags().BoolVar(&c.json, "json", false, "Write logs as JSON")
	rootCmd.PersistentPreRun = func(*cobra.Command, []string) {
		if c.onJSON != nil {
			c.onJSON(c.json)
		}
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newSettingsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// OnJSON registers the function told whether --json was given.
func (c *CLI) OnJSON(fn func(bool)) {
	c.onJSON = fn
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

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
