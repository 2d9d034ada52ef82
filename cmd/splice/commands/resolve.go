package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/splice/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Replace external dependencies with references to workspace units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, _ := cmd.Flags().GetString("mode")
			format, _ := cmd.Flags().GetString("format")
			watch, _ := cmd.Flags().GetBool("watch")

			return c.app.Resolve(cmd.Context(), app.ResolveOptions{
				Dir:    c.dir,
				Mode:   mode,
				Format: format,
				Color:  c.color,
				Watch:  watch,
			})
		},
	}
	cmd.Flags().StringP("mode", "m", "", "Resolution mode: staged or listener (default from splice.work.yaml)")
	cmd.Flags().StringP("format", "f", "text", "Report format: text, json, or yaml")
	cmd.Flags().BoolP("watch", "w", false, "Resolve again whenever a splice.yaml or splice.work.yaml changes")
	return cmd
}
