package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordcrunch/internal/model"
	"github.com/verte-zerg/wordcrunch/internal/pipeline"
	"github.com/verte-zerg/wordcrunch/internal/sink"
	"github.com/verte-zerg/wordcrunch/internal/source"
	"github.com/verte-zerg/wordcrunch/internal/stats"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Print count and length statistics for a wordlist",
		Args:  cobra.ExactArgs(1),
		RunE:  runStatsCmd,
	}
}

func runStatsCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRunConfig(cmd)
	if err != nil {
		return err
	}

	// Statistics consume normalized but unfiltered lines, so filters never
	// bias the counts.
	p := &pipeline.Pipeline{
		Normalizer: pipeline.Normalizer{Strip: cfg.Strip, RemoveEmpty: cfg.RemoveEmpty},
	}
	meter := newMeterFor(cfg, args)
	if meter != nil {
		p.Progress = meter.Increment
	}

	acc := stats.NewAccumulator(cfg.CaseInsensitive)
	if err := p.Run(args, func(line string) error {
		acc.Observe(line)
		return nil
	}); err != nil {
		return err
	}
	if meter != nil {
		meter.Finish()
	}

	var report strings.Builder
	if err := stats.RenderReport(&report, args[0], acc.Result()); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if cfg.Output != "" {
		if cfg.DryRun {
			log.Infof("dry run: report not written to %s", cfg.Output)
			return nil
		}
		if err := os.WriteFile(cfg.Output, []byte(report.String()), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), report.String())
	return err
}

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <file>...",
		Short: "Concatenate wordlists in argument order",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runMergeCmd,
	}
	cmd.Flags().BoolVar(&flagMergeUnique, "unique", false, "drop lines already seen across all sources")
	return cmd
}

func runMergeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRunConfig(cmd)
	if err != nil {
		return err
	}
	var tracker *pipeline.Tracker
	if flagMergeUnique {
		tracker = pipeline.NewTracker(cfg.CaseInsensitive)
	}
	return runPipeline(cfg, args, nil, tracker, nil)
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <primary> <exclusion>...",
		Short: "Emit primary lines absent from the exclusion lists",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runDeleteCmd,
	}
}

func runDeleteCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRunConfig(cmd)
	if err != nil {
		return err
	}
	norm := pipeline.Normalizer{Strip: cfg.Strip, RemoveEmpty: cfg.RemoveEmpty}
	exclude, err := pipeline.BuildExclusionSet(args[1:], norm, cfg.CaseInsensitive)
	if err != nil {
		return err
	}
	log.Debug("built exclusion set", "entries", exclude.Len())
	return runPipeline(cfg, args[:1], nil, nil, exclude)
}

func newFilterLengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filter-length <file> <min> <max>",
		Short: "Keep lines whose length lies in [min, max]",
		Args:  cobra.ExactArgs(3),
		RunE:  runFilterLengthCmd,
	}
}

func runFilterLengthCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRunConfig(cmd)
	if err != nil {
		return err
	}
	min, err := parseBound(args[1])
	if err != nil {
		return err
	}
	max, err := parseBound(args[2])
	if err != nil {
		return err
	}
	filter, err := pipeline.LengthRange(min, max)
	if err != nil {
		return err
	}
	return runPipeline(cfg, args[:1], []pipeline.FilterFunc{filter}, nil, nil)
}

func newContainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contains <file> <substring>",
		Short: "Keep lines containing a substring",
		Args:  cobra.ExactArgs(2),
		RunE:  runContainsCmd,
	}
}

func runContainsCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRunConfig(cmd)
	if err != nil {
		return err
	}
	filter := pipeline.Contains(args[1], cfg.CaseInsensitive)
	return runPipeline(cfg, args[:1], []pipeline.FilterFunc{filter}, nil, nil)
}

func newRegexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regex <file> <pattern>",
		Short: "Keep lines matching a regular expression",
		Args:  cobra.ExactArgs(2),
		RunE:  runRegexCmd,
	}
}

func runRegexCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRunConfig(cmd)
	if err != nil {
		return err
	}
	filter, err := pipeline.Matches(args[1], cfg.CaseInsensitive)
	if err != nil {
		return err
	}
	return runPipeline(cfg, args[:1], []pipeline.FilterFunc{filter}, nil, nil)
}

func newStartsEndsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "starts-ends <file>",
		Short: "Keep lines carrying a prefix and/or suffix",
		Args:  cobra.ExactArgs(1),
		RunE:  runStartsEndsCmd,
	}
	cmd.Flags().StringVar(&flagStartsWith, "starts-with", "", "required prefix")
	cmd.Flags().StringVar(&flagEndsWith, "ends-with", "", "required suffix")
	return cmd
}

func runStartsEndsCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRunConfig(cmd)
	if err != nil {
		return err
	}
	filter, err := pipeline.Affix(flagStartsWith, flagEndsWith, cfg.CaseInsensitive)
	if err != nil {
		return err
	}
	return runPipeline(cfg, args, []pipeline.FilterFunc{filter}, nil, nil)
}

func newUniqueCharsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unique-chars <file> <min>",
		Short: "Keep lines with at least min distinct characters",
		Args:  cobra.ExactArgs(2),
		RunE:  runUniqueCharsCmd,
	}
}

func runUniqueCharsCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRunConfig(cmd)
	if err != nil {
		return err
	}
	min, err := parseBound(args[1])
	if err != nil {
		return err
	}
	filter, err := pipeline.UniqueChars(min, cfg.CaseInsensitive)
	if err != nil {
		return err
	}
	return runPipeline(cfg, args[:1], []pipeline.FilterFunc{filter}, nil, nil)
}

// runPipeline wires the shared stages for every line-producing command.
func runPipeline(cfg model.RunConfig, paths []string, filters []pipeline.FilterFunc, tracker *pipeline.Tracker, exclude *pipeline.ExclusionSet) error {
	if content := pipeline.ForContentClass(cfg.Content); content != nil {
		filters = append(filters, content)
	}

	out, err := sink.New(cfg)
	if err != nil {
		return err
	}
	defer out.Discard()

	p := &pipeline.Pipeline{
		Normalizer: pipeline.Normalizer{Strip: cfg.Strip, RemoveEmpty: cfg.RemoveEmpty},
		Transform:  cfg.Transform,
		Tracker:    tracker,
		Exclude:    exclude,
	}
	if len(filters) > 0 {
		p.Filter = pipeline.All(filters...)
	}
	meter := newMeterFor(cfg, paths)
	if meter != nil {
		p.Progress = meter.Increment
	}

	if err := p.Run(paths, out.Emit); err != nil {
		return err
	}
	if meter != nil {
		meter.Finish()
	}
	if err := out.Close(); err != nil {
		return err
	}
	if cfg.DryRun {
		log.Infof("dry run: %d lines would be produced", out.Count())
	} else {
		log.Debug("pipeline finished", "lines", out.Count())
	}
	return nil
}

// newMeterFor builds the progress meter. The total is knowable only when
// every input is a plain regular file.
func newMeterFor(cfg model.RunConfig, paths []string) *sink.Meter {
	if !cfg.Progress {
		return nil
	}
	total := 0
	for _, path := range paths {
		n, ok := source.CountLines(path)
		if !ok {
			total = 0
			break
		}
		total += n
	}
	return sink.NewMeter(total)
}

func parseBound(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric bound %q", s)
	}
	return n, nil
}
