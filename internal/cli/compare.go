package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/tkunarajah/dircomp/pkg/config"
	"github.com/tkunarajah/dircomp/pkg/models"
	"github.com/tkunarajah/dircomp/pkg/runner"
)

// CompareFlags holds compare command flags
type CompareFlags struct {
	First  string
	Second string
	Output string
}

var compareFlags CompareFlags

// NewCompareCommand creates the compare command
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the immediate entries of two directories",
		Long: `Compare the files and subfolders directly inside two directories
(non-recursive) and write a text report listing the entries unique to each
side and the entries common to both. When the directory flags are omitted,
the paths are prompted for interactively.`,
		RunE: runCompare,
	}

	cmd.Flags().StringVarP(&compareFlags.First, "first", "f", "", "path to the first directory")
	cmd.Flags().StringVarP(&compareFlags.Second, "second", "s", "", "path to the second directory")
	cmd.Flags().StringVarP(&compareFlags.Output, "output", "o", "", "report destination (default: directory_comparison_<timestamp>.txt)")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	applyFlagsToConfig(cfg)

	if !cfg.Output.Color {
		color.NoColor = true
	}

	// Fall back to interactive prompts when no directories were given
	if compareFlags.First == "" && compareFlags.Second == "" {
		if err := promptForInputs(cmd, cfg); err != nil {
			return err
		}
	}

	run, err := createCompareRun()
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	r := runner.New(logger, cfg.Output.ReportDir)
	result := r.Run(ctx, run)

	// Closed explicitly: os.Exit below would skip a deferred Close
	logger.Close()

	printResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), result, cfg)

	// Exit with appropriate code
	os.Exit(result.Status.ExitCode())
	return nil
}

// createCompareRun creates a comparison run from the collected flags
func createCompareRun() (*models.CompareRun, error) {
	run := &models.CompareRun{
		ID:         uuid.New().String(),
		FirstPath:  compareFlags.First,
		SecondPath: compareFlags.Second,
		OutputPath: compareFlags.Output,
		CreatedAt:  time.Now(),
	}

	if err := run.Validate(); err != nil {
		return nil, err
	}

	return run, nil
}

// promptForInputs collects the two directory paths and the optional output
// path from standard input
func promptForInputs(cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())

	if !cfg.Output.Quiet {
		fmt.Fprintln(out, "Directory Comparison Tool")
		fmt.Fprintln(out, strings.Repeat("=", 25))
		fmt.Fprintln(out, "This tool compares the contents of two directories and generates a report.")
		fmt.Fprintln(out)
	}

	var err error
	if compareFlags.First, err = prompt(out, reader, "Enter the path to the first directory: "); err != nil {
		return err
	}
	if compareFlags.Second, err = prompt(out, reader, "Enter the path to the second directory: "); err != nil {
		return err
	}
	if compareFlags.Output, err = prompt(out, reader, "Enter output file path (or press Enter for default): "); err != nil {
		return err
	}

	if !cfg.Output.Quiet {
		output := compareFlags.Output
		if output == "" {
			output = "Auto-generated"
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Comparing directories:")
		fmt.Fprintf(out, "Directory 1: %s\n", compareFlags.First)
		fmt.Fprintf(out, "Directory 2: %s\n", compareFlags.Second)
		fmt.Fprintf(out, "Output file: %s\n", output)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Processing...")
	}

	return nil
}

func prompt(out io.Writer, reader *bufio.Reader, question string) (string, error) {
	fmt.Fprint(out, question)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// printResult writes the terminal summary for a completed run
func printResult(out, errOut io.Writer, run *models.RunReport, cfg *config.Config) {
	red := color.New(color.FgRed)

	switch run.Status {
	case models.StatusSuccess:
		if cfg.Output.Quiet {
			return
		}
		color.New(color.FgGreen).Fprintf(out, "Comparison report successfully written to: %s\n", run.OutputPath)
		fmt.Fprintf(out, "Summary: %d items in dir1, %d items in dir2, %d common, %d different\n",
			run.Result.TotalFirst, run.Result.TotalSecond,
			run.Result.Common.Len(), run.Result.TotalDifferent())
		if GetGlobalFlags().Verbose {
			fmt.Fprintf(out, "Run %s completed in %s\n", run.RunID, run.Duration.Round(time.Millisecond))
		}

	case models.StatusListFailed:
		printListErrors(errOut, red, run)
		if !cfg.Output.Quiet {
			fmt.Fprintf(out, "Error report written to: %s\n", run.OutputPath)
		}

	case models.StatusWriteFailed:
		// The report file never landed, so any listing errors it would
		// have carried must surface here instead
		printListErrors(errOut, red, run)
		red.Fprintf(errOut, "Error writing to output file: %v\n", run.WriteErr.Err)
	}
}

func printListErrors(errOut io.Writer, red *color.Color, run *models.RunReport) {
	if run.FirstError != nil {
		red.Fprintf(errOut, "ERROR: %s\n", run.FirstError.Error())
	}
	if run.SecondError != nil {
		red.Fprintf(errOut, "ERROR: %s\n", run.SecondError.Error())
	}
}
