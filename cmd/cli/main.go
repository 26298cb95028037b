package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gotrend/adapters/excel"
	"gotrend/adapters/stats/engine"
	"gotrend/app"
	"gotrend/domain/trend"
	"gotrend/internal/report"
	"gotrend/internal/testkit"
	"gotrend/ports"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gotrend-cli",
		Short: "Trend testing for ordered groups",
		Long: `gotrend-cli runs the Jonckheere-Terpstra trend test over grouped
numeric data from Excel or CSV files, or over synthetic demo datasets.
Results include per-pair U statistics, the standardized trend score, a
right-tail p-value, and per-group descriptive summaries.`,
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newSummaryCmd())
	rootCmd.AddCommand(newMethodsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

// newRunCmd analyzes a data file
func newRunCmd() *cobra.Command {
	var (
		ordering string
		sheet    string
		parallel int
		format   string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run the trend test over a data file",
		Long: `Run reads (value, group) observations from an Excel or CSV file and
tests for a monotone trend across the groups. Groups must be labeled
with consecutive whole numbers starting at 1. Pass --ordering to test
a trend other than the natural label order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(cmd.Context(), args[0], ordering, sheet, parallel, format, output)
		},
	}

	cmd.Flags().StringVar(&ordering, "ordering", "", "Hypothesized group order, e.g. '1,3,2' (default: natural order)")
	cmd.Flags().StringVar(&sheet, "sheet", "Sheet1", "Worksheet to read from Excel files")
	cmd.Flags().IntVar(&parallel, "parallel", 1, "Maximum concurrent pair computations")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")
	cmd.Flags().StringVar(&output, "output", "", "Write the analysis as JSON to this file")

	return cmd
}

// newDemoCmd analyzes a synthetic dataset
func newDemoCmd() *cobra.Command {
	spec := testkit.DefaultGeneratorSpec()
	var (
		parallel int
		format   string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the trend test over a synthetic dataset",
		Long: `Demo generates a seeded dataset whose group means rise by a fixed
step and runs the full analysis over it. Effect 0 gives a null dataset
for exploring false positive behavior.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), testkit.NewTrendDataGenerator(), spec, parallel, format, output)
		},
	}

	cmd.Flags().IntVar(&spec.Groups, "groups", spec.Groups, "Number of groups")
	cmd.Flags().IntVar(&spec.GroupSize, "size", spec.GroupSize, "Observations per group")
	cmd.Flags().Float64Var(&spec.Effect, "effect", spec.Effect, "Mean shift per group position")
	cmd.Flags().Float64Var(&spec.Noise, "noise", spec.Noise, "Standard deviation within groups")
	cmd.Flags().Int64Var(&spec.Seed, "seed", spec.Seed, "Random seed for deterministic runs")
	cmd.Flags().IntVar(&parallel, "parallel", 1, "Maximum concurrent pair computations")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")
	cmd.Flags().StringVar(&output, "output", "", "Write the analysis as JSON to this file")

	return cmd
}

// newSummaryCmd prints descriptive statistics without running the test
func newSummaryCmd() *cobra.Command {
	var sheet string

	cmd := &cobra.Command{
		Use:   "summary [file]",
		Short: "Show per-group descriptive statistics for a data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(args[0], sheet)
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "Sheet1", "Worksheet to read from Excel files")

	return cmd
}

// newMethodsCmd prints the methods documentation
func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "Print the methods documentation as Markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(string(report.MethodsMarkdown()))
			return nil
		},
	}
}

func runAnalysis(ctx context.Context, path, orderingFlag, sheet string, parallel int, format, output string) error {
	ordering, err := trend.ParseOrdering(orderingFlag)
	if err != nil {
		return err
	}

	fmt.Printf("🔬 Analyzing %s\n", path)

	service := newService(parallel)
	reader := excel.NewDataReaderWithSheet(path, sheet)
	analysis, err := service.RunFile(ctx, reader, ordering)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return emit(analysis, format, output)
}

func runDemo(ctx context.Context, gen ports.GeneratorPort, spec ports.GeneratorSpec, parallel int, format, output string) error {
	observations := gen.Generate(spec)
	fmt.Printf("🔬 Generated %d observations (%d groups of %d, effect %.2f, seed %d)\n",
		len(observations), spec.Groups, spec.GroupSize, spec.Effect, spec.Seed)

	service := newService(parallel)
	analysis, err := service.Run(ctx, app.AnalysisRequest{Observations: observations})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return emit(analysis, format, output)
}

func runSummary(path, sheet string) error {
	reader := excel.NewDataReaderWithSheet(path, sheet)
	observations, err := reader.ReadObservations()
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}

	part, err := trend.NewPartition(observations, nil)
	if err != nil {
		return fmt.Errorf("invalid dataset: %w", err)
	}

	fmt.Printf("\n=== GROUP SUMMARIES ===\n")
	fmt.Printf("File: %s (%d observations, %d groups)\n\n", path, part.N(), part.K())
	fmt.Print(report.SummaryTable(app.GroupSummaries(part)))
	return nil
}

func newService(parallel int) *app.TrendService {
	return app.NewTrendService(engine.NewEngine(engine.WithParallelism(parallel)))
}

// emit writes the analysis to stdout in the chosen format, and optionally
// saves the JSON envelope to a file.
func emit(analysis *app.Analysis, format, output string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode analysis: %w", err)
		}
		fmt.Println(string(data))
	case "table":
		fmt.Print(report.Text(analysis))
	default:
		return fmt.Errorf("unknown format %q (want table or json)", format)
	}

	if output != "" {
		data, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode analysis: %w", err)
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		fmt.Printf("💾 Analysis saved to: %s\n", output)
	}

	return nil
}
