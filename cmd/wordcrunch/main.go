// Package main provides the CLI entrypoint for wordcrunch.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordcrunch/internal/config"
	"github.com/verte-zerg/wordcrunch/internal/model"
)

const banner = `_ _  _ ____ ____ ____ ____ ____ ____ ____ ____
| |\ | |___ |  | [__  |___ |    |___ |  | |__/
| | \| |    |__| ___] |___ |___ |    |__| |  \`

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"

	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))

	flagCaseInsensitive bool
	flagOutput          string
	flagSort            string
	flagReverseSort     bool
	flagStrip           bool
	flagRemoveEmpty     bool
	flagTransform       string
	flagContentFilter   string
	flagPreview         bool
	flagDryRun          bool
	flagProgress        bool
	flagVerbose         bool

	flagMergeUnique bool
	flagStartsWith  string
	flagEndsWith    string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordcrunch",
		Short: "Wordlist swiss army knife",
		Long: bannerStyle.Render(banner) + `

wordcrunch transforms and analyzes line-delimited wordlists: merge,
deduplicate, subtract, filter, transform, sort, and compute statistics.
Sources may be plain text, gzip-compressed, or zip archives; "-" reads
from standard input.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(*cobra.Command, []string) {
			if flagVerbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&flagCaseInsensitive, "case-insensitive", "i", false, "compare lines case-insensitively")
	flags.StringVarP(&flagOutput, "output", "o", "", "output file (default: stdout)")
	flags.StringVar(&flagSort, "sort", "none", "sort mode (none, alpha, length, numeric)")
	flags.BoolVar(&flagReverseSort, "reverse-sort", false, "reverse the sort order")
	flags.BoolVar(&flagStrip, "strip", false, "trim leading/trailing whitespace per line")
	flags.BoolVar(&flagRemoveEmpty, "remove-empty", false, "drop lines that are empty after stripping")
	flags.StringVar(&flagTransform, "transform", "none", "transform (none, lower, upper, capitalize, reverse)")
	flags.StringVar(&flagContentFilter, "filter", "", "content filter (digits-only, alpha-only, has-number, has-special)")
	flags.BoolVar(&flagPreview, "preview", false, "emit only the first 10 lines of the result")
	flags.BoolVar(&flagDryRun, "dry-run", false, "run the pipeline but discard output, reporting the count")
	flags.BoolVar(&flagProgress, "progress", false, "show a progress meter on stderr")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newMergeCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newFilterLengthCmd())
	rootCmd.AddCommand(newContainsCmd())
	rootCmd.AddCommand(newRegexCmd())
	rootCmd.AddCommand(newStartsEndsCmd())
	rootCmd.AddCommand(newUniqueCharsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// resolveRunConfig merges config-file defaults under explicit flags and
// parses the enum-valued options once, before any input is read.
func resolveRunConfig(cmd *cobra.Command) (model.RunConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		log.Warn("ignoring unreadable config", "err", err)
	} else {
		defaults := fileCfg.Defaults
		applyBoolConfig(cmd, "case-insensitive", &flagCaseInsensitive, defaults.CaseInsensitive)
		applyStringConfig(cmd, "sort", &flagSort, defaults.Sort)
		applyBoolConfig(cmd, "reverse-sort", &flagReverseSort, defaults.ReverseSort)
		applyBoolConfig(cmd, "strip", &flagStrip, defaults.Strip)
		applyBoolConfig(cmd, "remove-empty", &flagRemoveEmpty, defaults.RemoveEmpty)
		applyStringConfig(cmd, "transform", &flagTransform, defaults.Transform)
		applyStringConfig(cmd, "filter", &flagContentFilter, defaults.Filter)
		applyBoolConfig(cmd, "progress", &flagProgress, defaults.Progress)
	}

	sortMode, err := model.ParseSortMode(flagSort)
	if err != nil {
		return model.RunConfig{}, err
	}
	transform, err := model.ParseTransform(flagTransform)
	if err != nil {
		return model.RunConfig{}, err
	}
	content, err := model.ParseContentClass(flagContentFilter)
	if err != nil {
		return model.RunConfig{}, err
	}

	return model.RunConfig{
		CaseInsensitive: flagCaseInsensitive,
		Sort:            sortMode,
		ReverseSort:     flagReverseSort,
		Strip:           flagStrip,
		RemoveEmpty:     flagRemoveEmpty,
		Transform:       transform,
		Content:         content,
		Preview:         flagPreview,
		DryRun:          flagDryRun,
		Progress:        flagProgress,
		Output:          flagOutput,
	}, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return `# wordcrunch configuration
# Uncomment a value to enable it. CLI flags override config values.

[defaults]
# case-insensitive = false  # Compare lines case-insensitively
# sort = "none"             # Sort mode (none, alpha, length, numeric)
# reverse-sort = false      # Reverse the sort order
# strip = false             # Trim leading/trailing whitespace per line
# remove-empty = false      # Drop lines that are empty after stripping
# transform = "none"        # Transform (none, lower, upper, capitalize, reverse)
# filter = ""               # Content filter (digits-only, alpha-only, has-number, has-special)
# progress = false          # Show a progress meter on stderr
`
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
