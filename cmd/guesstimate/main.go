// Package main provides the CLI entrypoint for guesstimate.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/guesstimate/internal/config"
	"github.com/verte-zerg/guesstimate/internal/estimator"
	"github.com/verte-zerg/guesstimate/internal/evaluation"
	"github.com/verte-zerg/guesstimate/internal/practice"
	"github.com/verte-zerg/guesstimate/internal/report"
	"github.com/verte-zerg/guesstimate/internal/tui"
)

const (
	defaultMethod    = "table"
	defaultTeamSize  = 4
	defaultLogStdDev = 4.0
	defaultMinAnswer = 10
	defaultMaxAnswer = 1_000_000_000

	defaultEvalMethod = "all"
	defaultEvalMin    = 1.0
	defaultEvalMax    = 1_000_000.0
	defaultEvalTests  = 1000
)

var (
	practiceMethod    string
	practiceTeamSize  int
	practiceLogStdDev float64
	practiceMinAnswer uint64
	practiceMaxAnswer uint64

	evalMethod string
	evalMin    float64
	evalMax    float64
	evalTests  int
	evalSeed   int64
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "guesstimate",
		Short:         "Geometric mean estimation trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceMethod, "method", defaultMethod, "estimation method (exact, log-linear, table)")
	rootCmd.Flags().IntVar(&practiceTeamSize, "team-size", defaultTeamSize, "guesses per problem")
	rootCmd.Flags().Float64Var(&practiceLogStdDev, "log-std-dev", defaultLogStdDev, "guess spread in the natural log domain")
	rootCmd.Flags().Uint64Var(&practiceMinAnswer, "min-answer", defaultMinAnswer, "smallest possible true answer")
	rootCmd.Flags().Uint64Var(&practiceMaxAnswer, "max-answer", defaultMaxAnswer, "largest possible true answer (exclusive)")

	rootCmd.AddCommand(newEvaluateCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "method", &practiceMethod, fileCfg.Practice.Method)
	applyIntConfig(cmd, "team-size", &practiceTeamSize, fileCfg.Practice.TeamSize)
	applyFloatConfig(cmd, "log-std-dev", &practiceLogStdDev, fileCfg.Practice.LogStdDev)
	applyUint64Config(cmd, "min-answer", &practiceMinAnswer, fileCfg.Practice.MinAnswer)
	applyUint64Config(cmd, "max-answer", &practiceMaxAnswer, fileCfg.Practice.MaxAnswer)

	method, err := methodByName(practiceMethod)
	if err != nil {
		return err
	}
	cfg, err := practice.NewConfig(practiceTeamSize, practiceLogStdDev, practiceMinAnswer, practiceMaxAnswer)
	if err != nil {
		return fmt.Errorf("invalid practice configuration: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	model, err := tui.NewModel(cfg, method, rng, practice.SystemClock{})
	if err != nil {
		return fmt.Errorf("failed to generate problem: %w", err)
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Measure estimator accuracy with Monte Carlo trials",
		Args:  cobra.NoArgs,
		RunE:  runEvaluateCmd,
	}
	cmd.Flags().StringVar(&evalMethod, "method", defaultEvalMethod, "method to evaluate (exact, log-linear, table, all)")
	cmd.Flags().Float64Var(&evalMin, "min", defaultEvalMin, "smallest test value")
	cmd.Flags().Float64Var(&evalMax, "max", defaultEvalMax, "largest test value")
	cmd.Flags().IntVar(&evalTests, "tests", defaultEvalTests, "number of Monte Carlo trials")
	cmd.Flags().Int64Var(&evalSeed, "seed", 0, "random seed (0 uses the current time)")
	return cmd
}

func runEvaluateCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "method", &evalMethod, fileCfg.Evaluate.Method)
	applyFloatConfig(cmd, "min", &evalMin, fileCfg.Evaluate.Min)
	applyFloatConfig(cmd, "max", &evalMax, fileCfg.Evaluate.Max)
	applyIntConfig(cmd, "tests", &evalTests, fileCfg.Evaluate.Tests)

	if evalMin <= 0 {
		return fmt.Errorf("--min must be greater than 0")
	}
	if evalMax <= evalMin {
		return fmt.Errorf("--max must be greater than --min")
	}
	if evalTests <= 0 {
		return fmt.Errorf("--tests must be greater than 0")
	}

	methods, err := methodsByName(evalMethod)
	if err != nil {
		return err
	}

	seed := evalSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	out := cmd.OutOrStdout()
	rows := make([]report.RunRow, 0, len(methods))
	sparks := make([]string, 0, len(methods))
	buckets := sparkBuckets()
	for _, method := range methods {
		results, absErrs := evaluation.RunDetailed(rng, method, evalMin, evalMax, evalTests)
		rows = append(rows, report.RunRow{Method: method.Name(), Results: results})
		sparks = append(sparks, report.Sparkline(report.Histogram(absErrs, buckets)))
	}

	if err := report.RenderRunResults(out, rows); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	for i, method := range methods {
		if sparks[i] == "" {
			continue
		}
		if _, err := fmt.Fprintf(out, "%-10s |err| distribution: %s\n", method.Name(), sparks[i]); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	}
	return nil
}

func sparkBuckets() int {
	buckets := report.TerminalWidth() - 34
	if buckets > 60 {
		buckets = 60
	}
	if buckets < 10 {
		buckets = 10
	}
	return buckets
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

func methodByName(name string) (estimator.Method, error) {
	switch name {
	case "exact":
		return estimator.Exact{}, nil
	case "log-linear":
		return estimator.LogLinear{}, nil
	case "table":
		return estimator.TableBased{}, nil
	}
	return nil, fmt.Errorf("unknown estimation method %q (available: exact, log-linear, table)", name)
}

func methodsByName(name string) ([]estimator.Method, error) {
	if name == "all" {
		return []estimator.Method{estimator.Exact{}, estimator.LogLinear{}, estimator.TableBased{}}, nil
	}
	method, err := methodByName(name)
	if err != nil {
		return nil, fmt.Errorf("unknown estimation method %q (available: exact, log-linear, table, all)", name)
	}
	return []estimator.Method{method}, nil
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

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyUint64Config(cmd *cobra.Command, name string, target, value *uint64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# guesstimate configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# method = %q          # Estimation method: exact, log-linear, table
# team-size = %d            # Guesses per problem
# log-std-dev = %.1f        # Guess spread in the natural log domain
# min-answer = %d          # Smallest possible true answer
# max-answer = %d  # Largest possible true answer (exclusive)

[evaluate]
# method = %q            # Method(s) to evaluate: exact, log-linear, table, all
# min = %.1f                # Smallest test value
# max = %.1f            # Largest test value
# tests = %d             # Number of Monte Carlo trials
`,
		defaultMethod,
		defaultTeamSize,
		defaultLogStdDev,
		defaultMinAnswer,
		defaultMaxAnswer,
		defaultEvalMethod,
		defaultEvalMin,
		defaultEvalMax,
		defaultEvalTests,
	)
}
