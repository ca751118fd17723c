package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"codegen/internal/structure"
	"codegen/internal/ui"
)

var applyDir string

var applyCmd = &cobra.Command{
	Use:   "apply [response-file|-]",
	Short: "Apply a saved model response to a directory",
	Long: `Extracts the JSON code structure from a model response, repairing it if
needed, and applies it under --dir: commands first, then folders, then files.
Use - to read the response from stdin.

Example:
  codegen apply generated_projects/project_x/docs/phase_1_response.md --dir ./out`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyDir, "dir", ".", "base directory for the structure")
}

func runApply(cmd *cobra.Command, args []string) error {
	raw, err := readResponse(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}
	if err := os.MkdirAll(applyDir, 0o755); err != nil {
		return fmt.Errorf("failed to create base directory: %w", err)
	}

	console := ui.NewConsole(cmd.OutOrStdout())
	a := structure.NewApplicator(
		structure.WithRunner(structure.NewShellRunner(cfg.ShellPath)),
		structure.WithCommandTimeout(cfg.CommandTimeout),
		structure.WithReporter(console),
		structure.WithLogger(logger),
	)
	report, err := a.ApplyGenerated(cmd.Context(), string(raw), applyDir)
	if err != nil {
		console.Error(err)
		if structure.IsInputError(err) {
			console.Warn("Nothing was applied; check the response content.")
		}
		return reportedError{err}
	}
	console.Success(fmt.Sprintf("Applied %d commands, %d folders, %d files to %s",
		len(report.Commands), len(report.Folders), len(report.Files), applyDir))
	return nil
}

func readResponse(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return data, nil
}
