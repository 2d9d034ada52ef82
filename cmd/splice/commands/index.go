package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/splice/internal/app"
)

func (c *CLI) newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Print the artifacts every unit exports and the units exporting them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")

			return c.app.Index(cmd.Context(), app.IndexOptions{
				Dir:    c.dir,
				Format: format,
				Color:  c.color,
			})
		},
	}
	cmd.Flags().StringP("format", "f", "text", "Output format: text, json, or yaml")
	return cmd
}
