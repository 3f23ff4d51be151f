// Package cli implements the depsheet command-line interface.
//
// depsheet is a filter: it reads a Gradle dependency report on standard
// input and writes the flattened Maven coordinates on standard output. The
// CLI is built with cobra; logging goes to stderr via charmbracelet/log so
// that stdout stays clean for the emitted rows.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"depsheet/pkg/buildinfo"
	"depsheet/pkg/sheet"
)

// appName is the application name used for directories and display.
const appName = "depsheet"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. The tool has a single run
// path, so everything hangs off the root: flags select the output format
// and input mode, and --completion short-circuits before stdin is touched.
func (c *CLI) RootCommand() *cobra.Command {
	opts := &exportOpts{}

	root := &cobra.Command{
		Use:   appName,
		Short: "Extract Maven coordinates from a Gradle dependency report",
		Long: `depsheet reads the output of Gradle's dependency-report task on standard
input and writes the flattened, deduplicated artifact coordinates on
standard output.

Version conflicts annotated with "->" resolve to the version right of the
arrow; coordinates repeated across the tree are emitted once, first-seen
order, carrying the last resolution the report mentions.

Examples:
  ./gradlew -q app:dependencies --configuration releaseRuntimeClasspath | depsheet
  depsheet --format json < report.txt
  depsheet --skip-pretty --format tsv < extracted-tree.txt`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.completion != "" {
				return genCompletion(cmd, opts.completion)
			}
			return c.runExport(cmd, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVarP(&opts.format, "format", "f", "",
		"output format: "+joinFormats()+" (default from config file, else csv)")
	root.Flags().BoolVar(&opts.skipPretty, "skip-pretty", false,
		"treat input as pre-extracted tree lines (strict parsing)")
	root.Flags().StringVar(&opts.completion, "completion", "",
		"generate a shell completion script (bash|zsh|fish|powershell) and exit")
	root.Flags().StringVarP(&opts.output, "output", "o", "",
		"output file (stdout if empty)")
	root.Flags().StringVar(&opts.configPath, "config", "",
		"config file (default $XDG_CONFIG_HOME/"+appName+"/config.toml)")

	return root
}

func joinFormats() string {
	out := ""
	for i, f := range sheet.Formats() {
		if i > 0 {
			out += "|"
		}
		out += f
	}
	return out
}

// configDir returns the configuration directory using the XDG standard
// (~/.config/depsheet/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
