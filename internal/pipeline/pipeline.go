// Package pipeline runs the requirements -> code generation stages and
// applies each phase's code structure to a project directory.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"codegen/internal/ai"
	"codegen/internal/ai/prompts"
	"codegen/internal/project"
	"codegen/internal/structure"
)

// Mode selects how far the pipeline goes.
type Mode string

const (
	ModeRequirements Mode = "requirements"
	ModeCode         Mode = "code"
	ModeFull         Mode = "full"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeRequirements, ModeCode, ModeFull:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want requirements, code or full)", s)
	}
}

// Progress receives user-facing progress. ui.Console implements it.
type Progress interface {
	structure.Reporter
	Step(msg string)
	Success(msg string)
	Markdown(md string)
}

// PhaseResult is the outcome of one code-generation phase.
type PhaseResult struct {
	Phase    string            `json:"phase"`
	Response string            `json:"-"`
	Report   *structure.Report `json:"report,omitempty"`
}

// Result is everything a run produced.
type Result struct {
	ProjectDir             string        `json:"projectDir,omitempty"`
	FunctionalRequirements string        `json:"functionalRequirements"`
	TechnicalRequirements  string        `json:"technicalRequirements"`
	Phases                 []PhaseResult `json:"phases,omitempty"`
}

// PhaseError identifies the phase whose structure could not be applied.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error { return e.Err }

// CodeGenerator wires a model Generator to the structure Applicator.
type CodeGenerator struct {
	generator ai.Generator
	newApply  func(structure.Reporter) *structure.Applicator
	progress  Progress
	logger    *zap.Logger
	outputDir string
	phases    []string
	manifest  project.Manifest
	now       func() time.Time
}

// Options configures a CodeGenerator.
type Options struct {
	OutputDir string
	Provider  string
	Model     string
	// ApplyOptions are passed to every Applicator; the reporter is set from Progress.
	ApplyOptions []structure.Option
	Progress     Progress
	Logger       *zap.Logger
}

// New creates a CodeGenerator.
func New(g ai.Generator, opts Options) *CodeGenerator {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	progress := opts.Progress
	if progress == nil {
		progress = nopProgress{}
	}
	applyOpts := append([]structure.Option{structure.WithLogger(logger)}, opts.ApplyOptions...)
	return &CodeGenerator{
		generator: g,
		newApply: func(r structure.Reporter) *structure.Applicator {
			return structure.NewApplicator(append(slices.Clip(applyOpts), structure.WithReporter(r))...)
		},
		progress:  progress,
		logger:    logger,
		outputDir: opts.OutputDir,
		phases:    prompts.Phases,
		manifest:  project.Manifest{Provider: opts.Provider, Model: opts.Model},
		now:       time.Now,
	}
}

// Run generates the requirements documents and, depending on mode, the code
// for every phase. In full mode each phase is applied to a fresh project
// directory before the next phase is requested; the first failure stops the run
// and the partially populated directory is left in place.
func (c *CodeGenerator) Run(ctx context.Context, userInput string, mode Mode) (*Result, error) {
	if strings.TrimSpace(userInput) == "" {
		return nil, errors.New("user input is empty")
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}

	res := &Result{}
	started := c.now()

	if mode == ModeFull {
		dir, err := project.Create(c.outputDir, started)
		if err != nil {
			return nil, err
		}
		res.ProjectDir = dir
		c.progress.Step("Created project directory " + dir)
		c.logger.Info("Created project directory", zap.String("dir", dir))
	}

	c.progress.Step("Generating functional requirements...")
	functional, err := (&ai.Conversation{System: prompts.SystemPrompt}).Ask(ctx, c.generator, prompts.FunctionalRequirements(userInput))
	if err != nil {
		return res, fmt.Errorf("functional requirements: %w", err)
	}
	res.FunctionalRequirements = functional
	c.progress.Success("Functional Requirements Generated")
	c.progress.Markdown(functional)

	c.progress.Step("Generating technical requirements...")
	technical, err := (&ai.Conversation{System: prompts.SystemPrompt}).Ask(ctx, c.generator, prompts.TechnicalRequirements(functional))
	if err != nil {
		return res, fmt.Errorf("technical requirements: %w", err)
	}
	res.TechnicalRequirements = technical
	c.progress.Success("Technical Requirements Generated")
	c.progress.Markdown(technical)

	if mode == ModeFull {
		if err := project.WriteDocs(res.ProjectDir, functional, technical); err != nil {
			return res, err
		}
	}
	if mode == ModeRequirements {
		return res, nil
	}

	manifest := c.manifest
	manifest.Mode = string(mode)
	manifest.Input = userInput
	manifest.CreatedAt = started

	// Code generation keeps one conversation so later phases see earlier output.
	conv := &ai.Conversation{System: prompts.SystemPrompt}
	for i, phase := range c.phases {
		c.progress.Step(fmt.Sprintf("Generating code for %s...", phase))
		response, err := conv.Ask(ctx, c.generator, prompts.CodeGeneration(functional, technical, phase))
		if err != nil {
			return res, &PhaseError{Phase: phase, Err: err}
		}
		pr := PhaseResult{Phase: phase, Response: response}
		c.progress.Success(phase + " Code Generated")
		c.logger.Debug("Code generation response", zap.String("phase", phase), zap.String("response", response))

		if mode != ModeFull {
			c.progress.Markdown(response)
			res.Phases = append(res.Phases, pr)
			continue
		}

		if _, err := project.WritePhaseResponse(res.ProjectDir, i+1, response); err != nil {
			return res, err
		}
		c.progress.Step(fmt.Sprintf("Processing %s code files...", phase))
		report, err := c.newApply(c.progress).ApplyGenerated(ctx, response, res.ProjectDir)
		if err != nil {
			res.Phases = append(res.Phases, pr)
			return res, &PhaseError{Phase: phase, Err: err}
		}
		pr.Report = report
		res.Phases = append(res.Phases, pr)
		manifest.Phases = append(manifest.Phases, project.PhaseManifest{
			Name:     phase,
			Commands: len(report.Commands),
			Folders:  len(report.Folders),
			Files:    len(report.Files),
		})
	}

	if mode == ModeFull {
		if err := project.WriteManifest(res.ProjectDir, manifest); err != nil {
			return res, err
		}
		c.progress.Success("Project created at: " + res.ProjectDir)
	}
	return res, nil
}

type nopProgress struct{}

func (nopProgress) Report(structure.Event) {}
func (nopProgress) Step(string)            {}
func (nopProgress) Success(string)         {}
func (nopProgress) Markdown(string)        {}
