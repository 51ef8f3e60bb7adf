// Command rustvet is a rule-based static analyzer enforcing the N/M/S house
// safety and style guide for Rust sources.
package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rustvet/rustvet/internal/config"
	"github.com/rustvet/rustvet/internal/fixture"
	"github.com/rustvet/rustvet/internal/render"
	"github.com/rustvet/rustvet/internal/runner"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rustvet:", err)
		os.Exit(2)
	}
}

type cliFlags struct {
	configPath string
	format     string
	jobs       int
	noColor    bool
	verbose    bool
}

func rootCmd() *cobra.Command {
	var flags cliFlags

	cmd := &cobra.Command{
		Use:           "rustvet [paths…]",
		Short:         "Static analyzer enforcing the N/M/S safety guide for Rust sources",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(cmd, args, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", config.DefaultPath, "path to the YAML config")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log per-file progress to stderr")
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text or json (overrides config)")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "max concurrent file analyses (overrides config)")

	cmd.AddCommand(verifyCmd(&flags))

	return cmd
}

func runAnalysis(cmd *cobra.Command, args []string, flags cliFlags) error {
	if flags.noColor {
		color.NoColor = true
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.format != "" {
		cfg.Format = flags.format
	}
	if flags.jobs != 0 {
		cfg.Jobs = flags.jobs
	}

	cat, err := cfg.Catalog()
	if err != nil {
		return err
	}

	paths, err := collectSources(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .rs files under %s", strings.Join(args, ", "))
	}

	results, err := runner.New(cat, runner.Options{
		Jobs:   cfg.Jobs,
		Logger: newLogger(flags.verbose),
	}).Run(cmd.Context(), paths)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch cfg.Format {
	case "json":
		err = render.JSON(out, results)
	default:
		err = render.Text(out, results)
	}
	if err != nil {
		return err
	}

	for _, res := range results {
		if res.Err != nil || !res.Report.Empty() {
			os.Exit(1)
		}
	}

	return nil
}

func verifyCmd(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <corpus-dir|corpus.txtar>",
		Short: "Run the fixture verification harness over a labeled corpus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.noColor {
				color.NoColor = true
			}

			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			cat, err := cfg.Catalog()
			if err != nil {
				return err
			}

			var results []fixture.CaseResult
			if strings.HasSuffix(args[0], ".txtar") {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read corpus archive: %w", err)
				}
				results, err = fixture.VerifyArchive(cmd.Context(), data, cat)
				if err != nil {
					return err
				}
			} else {
				results, err = fixture.Verify(cmd.Context(), os.DirFS(args[0]), ".", cat)
				if err != nil {
					return err
				}
			}

			failed := 0
			for _, res := range results {
				if !res.Ok() {
					failed++
					color.Red("%s", res)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), res)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d case(s), %d failed\n", len(results), failed)

			if failed > 0 {
				os.Exit(1)
			}
			return nil
		},
	}
}

// collectSources expands the argument list into a sorted set of .rs files.
func collectSources(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			add(arg)
			continue
		}
		err = filepath.WalkDir(arg, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(p) == ".rs" {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
	}

	sort.Strings(out)
	return out, nil
}

func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return nil
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
