package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/handler/internal/ui/output"
	"go.trai.ch/handler/internal/ui/style"
)

func (c *CLI) newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read and write the settings store configured in handler.yaml",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print an entry overlaid on the manifest defaults",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				settings, err := c.app.SettingsGet(cmd.Context(), c.config, args[0])
				if err != nil {
					return err
				}
				out := output.New(cmd.OutOrStdout())
				for _, s := range settings {
					line := fmt.Sprintf("%s = %v", s.Key, s.Value)
					if s.Default {
						line += " " + output.Paint(out, "(default)", style.Muted)
					}
					_, _ = fmt.Fprintln(out, line)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <name=value>...",
			Short: "Replace an entry",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				values, err := parseAssignments(args[1:])
				if err != nil {
					return err
				}
				return c.app.SettingsSet(cmd.Context(), c.config, args[0], values)
			},
		},
		&cobra.Command{
			Use:   "patch <key> <name=value>...",
			Short: "Merge values into an entry",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				values, err := parseAssignments(args[1:])
				if err != nil {
					return err
				}
				return c.app.SettingsPatch(cmd.Context(), c.config, args[0], values)
			},
		},
		&cobra.Command{
			Use:   "delete <key>",
			Short: "Remove an entry",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				existed, err := c.app.SettingsDelete(cmd.Context(), c.config, args[0])
				if err != nil {
					return err
				}
				if !existed {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s %s was not set\n", style.Warning, args[0])
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every entry",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.app.SettingsClear(cmd.Context(), c.config)
			},
		},
	)
	return cmd
}
