package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depscan/pkg/errors"
	depio "github.com/matzehuels/depscan/pkg/io"
	"github.com/matzehuels/depscan/pkg/manager"
	"github.com/matzehuels/depscan/pkg/pipeline"
)

type extractFlags struct {
	format    string
	output    string
	manager   string
	force     bool
	refresh   bool
	noCache   bool
	skipEmpty bool
}

// extractCommand creates the extract command.
func (c *CLI) extractCommand() *cobra.Command {
	var flags extractFlags

	cmd := &cobra.Command{
		Use:   "extract [path...]",
		Short: "Extract dependencies from manifests",
		Long: `Extract dependencies from manifest files.

Each path may be a manifest or a directory; directories are searched for
files any enabled manager recognises. Without arguments the current
directory is searched.`,
		Example: `  depscan extract ios/Podfile
  depscan extract . --format json -o deps.json
  depscan extract build/Podfile.template --manager cocoapods`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			return c.runExtract(cmd.Context(), cmd.OutOrStdout(), args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", pipeline.FormatTable, "output format (table, json)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write JSON output to a file")
	cmd.Flags().StringVarP(&flags.manager, "manager", "m", "", "use this manager regardless of file name")
	cmd.Flags().BoolVar(&flags.force, "force", false, "include managers disabled by configuration")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "ignore cached results")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&flags.skipEmpty, "skip-empty", false, "treat manifests without dependencies as absent")

	return cmd
}

func (c *CLI) runExtract(ctx context.Context, w io.Writer, args []string, flags extractFlags) error {
	if flags.output != "" {
		flags.format = pipeline.FormatJSON
	}
	if err := pipeline.ValidateFormat(flags.format); err != nil {
		return err
	}
	opts := pipeline.Options{Manager: flags.manager, Force: flags.force, Refresh: flags.refresh}
	if err := opts.Validate(); err != nil {
		return err
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	opts.SkipEmpty = flags.skipEmpty || cfg.Managers.SkipEmpty

	runner, err := c.newRunner(ctx, cfg, nil, flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	paths, err := collectPaths(args, runner.Managers, opts)
	if err != nil {
		return err
	}
	if len(paths) == 0 && flags.format == pipeline.FormatTable {
		printWarning("No manifests found")
		return nil
	}

	sw := startStopwatch(c.Logger)
	var spinner *extractSpinner
	if flags.format == pipeline.FormatTable && !c.verbose {
		spinner = startSpinner(ctx, "Extracting", len(paths))
	}
	report, err := runner.ExtractAll(ctx, paths, opts)
	if spinner != nil {
		if err != nil {
			spinner.fail("Extraction interrupted")
		} else {
			spinner.stop()
		}
	}
	if err != nil {
		return err
	}

	switch {
	case flags.output != "":
		if err := depio.ExportJSON(report, flags.output); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", flags.output)
		}
		printSuccess("Wrote %s", flags.output)
	case flags.format == pipeline.FormatJSON:
		if err := depio.WriteJSON(report, w); err != nil {
			return err
		}
	default:
		printReport(w, report)
	}
	sw.lap("extraction complete",
		"files", report.Stats.Files,
		"deps", report.Stats.Deps,
		"failed", report.Stats.Failed)

	return batchError(report)
}

// collectPaths expands directories into the manifests they contain.
// Files are kept as given, even when missing, so the report records why
// they failed.
func collectPaths(args []string, list []*manager.Manager, opts pipeline.Options) ([]string, error) {
	candidates, all := list, opts.Force
	if opts.Manager != "" {
		if m := manager.Find(opts.Manager, list); m != nil {
			candidates, all = []*manager.Manager{m}, true
		}
	}

	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		found, err := pipeline.Discover(arg, candidates, all)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "search %s", arg)
		}
		paths = append(paths, found...)
	}
	return paths, nil
}

// batchError fails the command when no manifest could be extracted.
// Partial failures are reported but do not change the exit status.
func batchError(report *pipeline.Report) error {
	s := report.Stats
	if s.Failed == 0 || s.Failed < s.Files {
		return nil
	}
	for _, f := range report.Files {
		if f.Err != nil {
			return f.Err
		}
	}
	return errors.New(errors.ErrCodeInvalidInput, "%d files failed", s.Failed)
}
