// Package commands implements the CLI commands for splice.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/splice/internal/app"
	"go.trai.ch/splice/internal/build"
)

// CLI represents the command line interface for splice.
type CLI struct {
	app     Application
	logs    LogSettings
	rootCmd *cobra.Command

	dir   string
	color string
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, opts app.ResolveOptions) error
	Index(ctx context.Context, opts app.IndexOptions) error
}

// LogSettings is implemented by loggers that honour --verbose and --log-json.
type LogSettings interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app. logs may be nil.
func New(a Application, logs LogSettings) *CLI {
	c := &CLI{
		app:  a,
		logs: logs,
	}

	rootCmd := &cobra.Command{
		Use:   "splice",
		Short: "Substitute in-workspace units for matching external dependencies",
		Long: "splice indexes the artifacts every unit of a workspace publishes and rewrites " +
			"external dependencies on those artifacts into references to the local unit.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           build.Version,
		PersistentPreRunE: c.applyLogSettings,
	}

	// Persistent flags come first so the version flag does not claim -v.
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.dir, "dir", "C", ".", "Directory to discover the workspace from")
	flags.StringVar(&c.color, "color", "auto", "Colour output: auto, always, or never")
	flags.BoolP("verbose", "v", false, "Log every substitution and index rebuild")
	flags.Bool("log-json", false, "Write logs as JSON")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newIndexCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) applyLogSettings(cmd *cobra.Command, _ []string) error {
	if c.logs == nil {
		return nil
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	logJSON, _ := cmd.Flags().GetBool("log-json")
	c.logs.SetVerbose(verbose)
	c.logs.SetJSON(logJSON)
	return nil
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
