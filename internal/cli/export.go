package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	deperrors "depsheet/pkg/errors"
	"depsheet/pkg/gradle"
	"depsheet/pkg/sheet"
)

// exportOpts holds the command-line flags for the export run.
type exportOpts struct {
	format     string // output format ("" means: use config default)
	skipPretty bool   // strict pre-extracted-input mode
	completion string // shell to generate completions for
	output     string // output file path (stdout if empty)
	configPath string // explicit config file override
}

// runExport is the core pipeline: config → stdin → parser → emitter.
// Configuration problems (unknown format, bad config file) surface before a
// single byte of input is read.
func (c *CLI) runExport(cmd *cobra.Command, opts *exportOpts) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	format := opts.format
	if format == "" {
		format = cfg.Format
	}
	emitter, err := sheet.New(sheet.Format(format))
	if err != nil {
		return err
	}

	mode := gradle.ModeReport
	if opts.skipPretty {
		mode = gradle.ModePretty
	}

	logger.Debugf("parsing dependency report (format=%s, skip-pretty=%v)", format, opts.skipPretty)
	prog := newProgress(logger)
	artifacts, err := gradle.Parse(cmd.InOrStdin(), mode)
	if err != nil {
		return deperrors.Wrap(deperrors.ErrCodeParse, err, "dependency report")
	}
	prog.done(fmt.Sprintf("Extracted %d artifacts", len(artifacts)))

	out, err := c.openOutput(cmd, opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := emitter.Emit(out, artifacts); err != nil {
		return err
	}
	if opts.output != "" {
		logger.Infof("Wrote %s to %s", format, opts.output)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method, making the
// command's stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path, or the command's
// stdout when path is empty.
func (c *CLI) openOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, deperrors.Wrap(deperrors.ErrCodeInvalidInput, err, "create output %s", path)
	}
	return f, nil
}
