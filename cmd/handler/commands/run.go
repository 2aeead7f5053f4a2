package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/handler/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	var (
		emits []string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load the listeners in handler.yaml and emit events",
		Example: `  handler run --emit greet:world
  handler run --emit tick --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := app.RunOptions{Config: c.config, Watch: watch}
			for _, raw := range emits {
				e, err := parseEmission(raw)
				if err != nil {
					return err
				}
				opts.Emits = append(opts.Emits, e)
			}
			return c.app.Run(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringArrayVarP(&emits, "emit", "e", nil, "Emit an event after loading, as event[:arg,...] (repeatable)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload modules when their files change")
	return cmd
}
