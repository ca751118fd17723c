package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codegen/config"
	"codegen/internal/ai"
	"codegen/internal/pipeline"
	"codegen/internal/structure"
	"codegen/internal/ui"
)

var (
	generateMode      string
	generateModel     string
	generateOutputDir string
)

var generateCmd = &cobra.Command{
	Use:   "generate [user input]",
	Short: "Generate requirements and scaffold a project",
	Long: `Runs the generation pipeline for a project description.

Modes:
  requirements  functional and technical requirements only (default)
  code          requirements plus code for every phase, printed only
  full          everything, applied to <output-dir>/project_<timestamp>_<id>
                including the shell commands the model asks for

Example:
  codegen generate "a todo list REST API with user accounts" --mode full --model anthropic`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateMode, "mode", string(pipeline.ModeRequirements), "requirements, code or full")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "model provider: openai, anthropic or gemini (default from MODEL_PROVIDER)")
	generateCmd.Flags().StringVar(&generateOutputDir, "output-dir", "", "parent directory for generated projects (default from PROJECT_OUTPUT_DIR)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	mode, err := pipeline.ParseMode(generateMode)
	if err != nil {
		return err
	}
	c := applyGenerateFlags(cfg, generateModel, generateOutputDir)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console := ui.NewConsole(cmd.OutOrStdout())
	g, err := ai.NewGenerator(ctx, c, logger)
	if err != nil {
		return err
	}

	console.Header("Project Generator")
	p := pipeline.New(g, pipeline.Options{
		OutputDir: c.ProjectOutputDir,
		Provider:  c.ModelProvider,
		Model:     c.Model(),
		ApplyOptions: []structure.Option{
			structure.WithRunner(structure.NewShellRunner(c.ShellPath)),
			structure.WithCommandTimeout(c.CommandTimeout),
		},
		Progress: console,
		Logger:   logger,
	})

	res, err := p.Run(ctx, strings.Join(args, " "), mode)
	if err != nil {
		console.Error(err)
		if res != nil && res.ProjectDir != "" {
			console.Warn("Partial project left at " + res.ProjectDir)
		}
		if errors.Is(err, context.Canceled) {
			logger.Info("Generation interrupted")
		} else {
			logger.Error("Generation failed", zap.Error(err))
		}
		return reportedError{err}
	}
	return nil
}

// applyGenerateFlags overlays non-empty command-line overrides on c.
func applyGenerateFlags(c config.Config, provider, outputDir string) config.Config {
	if p := strings.ToLower(strings.TrimSpace(provider)); p != "" {
		c.ModelProvider = p
	}
	if outputDir != "" {
		c.ProjectOutputDir = outputDir
	}
	return c
}
