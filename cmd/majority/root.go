package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/majority/internal/input"
	"github.com/dmitrymomot/majority/internal/vote"
	"github.com/dmitrymomot/majority/pkg/logger"
)

type logSettings struct {
	level  string
	format string
}

func (s *logSettings) build(w io.Writer, opts ...logger.Option) (*slog.Logger, error) {
	level, err := logger.ParseLevel(s.level)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(s.format)
	if err != nil {
		return nil, err
	}
	base := []logger.Option{
		logger.WithOutput(w),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithService("majority"),
	}
	return logger.New(append(base, opts...)...), nil
}

type findOptions struct {
	format     string
	noValidate bool
	fold       bool
	normalize  bool
	stats      bool
}

func newRootCmd(cfg Config) *cobra.Command {
	logs := &logSettings{level: cfg.LogLevel, format: cfg.LogFormat}
	opts := &findOptions{
		format:     cfg.InputFormat,
		noValidate: !cfg.Validate,
		fold:       cfg.FoldCase,
		normalize:  cfg.Normalize,
	}

	cmd := &cobra.Command{
		Use:   "majority [file]",
		Short: "Print the strict majority element of a list",
		Long: `majority reads a list from a file (or stdin when the file is omitted or "-")
and prints the element that occupies more than half of the positions.

Input formats: json (top-level array), yaml (top-level sequence) and lines
(one element per non-blank line). The format is taken from --format, then
from the file extension, then defaults to lines.

Exit codes: 0 majority found, 1 usage or input error, 2 null or empty
collection, 3 no majority element.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logs.build(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runFind(cmd, args, opts, log)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&logs.level, "log-level", logs.level, "log level: debug, info, warn, error")
	pf.StringVar(&logs.format, "log-format", logs.format, "log format: text or json")

	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", opts.format, "input format: json, yaml or lines (default: by extension, else lines)")
	f.BoolVar(&opts.noValidate, "no-validate", opts.noValidate, "skip the counting pass; the result is undefined if no majority exists")
	f.BoolVar(&opts.fold, "fold", opts.fold, "compare strings case-insensitively")
	f.BoolVar(&opts.normalize, "normalize", opts.normalize, "compare strings after Unicode NFC normalization")
	f.BoolVar(&opts.stats, "stats", false, "print vote statistics after the element")

	cmd.AddCommand(newServeCmd(cfg, logs), newVersionCmd())
	return cmd
}

func runFind(cmd *cobra.Command, args []string, opts *findOptions, log *slog.Logger) error {
	ctx := cmd.Context()

	format, err := input.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	source := "stdin"
	r := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		source = args[0]
		file, err := os.Open(source)
		if err != nil {
			return err
		}
		defer file.Close()
		r = file
		if format == "" {
			format = input.FormatFromPath(source, input.FormatLines)
		}
	}
	if format == "" {
		format = input.FormatLines
	}

	items, err := input.Decode(r, format)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", source, err)
	}

	rep, err := vote.Run(items, vote.Options{
		Validate:  !opts.noValidate,
		Fold:      opts.fold,
		Normalize: opts.normalize,
	})
	if err != nil {
		log.DebugContext(ctx, "vote failed", logger.Source(source), slog.String("format", string(format)), logger.Error(err))
		return err
	}

	s := rep.Stats
	log.DebugContext(ctx, "vote finished",
		logger.Source(source),
		slog.String("format", string(format)),
		logger.Vote(s.Total, s.Threshold, s.Scanned, s.Occurrences, s.EarlyStop, s.Validated),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, rep.Display())
	if opts.stats {
		fmt.Fprintf(out, "total: %d\nthreshold: %d\nscanned: %d\nearly_stop: %t\nvalidated: %t\n",
			s.Total, s.Threshold, s.Scanned, s.EarlyStop, s.Validated)
		if s.Validated {
			fmt.Fprintf(out, "occurrences: %d\n", s.Occurrences)
		}
	}
	return nil
}
