package structure

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"codegen/internal/types"
)

// EventKind identifies an applicator action.
type EventKind string

const (
	EventCommandStarted  EventKind = "command_started"
	EventCommandFinished EventKind = "command_finished"
	EventFolderCreated   EventKind = "folder_created"
	EventFileWritten     EventKind = "file_written"
)

// Event is emitted for every action the applicator performs. Target is the
// command text or the resolved path.
type Event struct {
	Kind   EventKind
	Target string
}

// Reporter receives applicator events in the order they happen.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Event)

func (f ReporterFunc) Report(e Event) { f(e) }

// Report summarises a successful application.
type Report struct {
	Commands []string `json:"commands"`
	Folders  []string `json:"folders"`
	Files    []string `json:"files"`
}

// Applicator applies a CodeStructure to a base directory: commands, then
// folders, then files. It stops at the first failure and leaves whatever was
// already created on disk.
type Applicator struct {
	fs             afero.Fs
	runner         Runner
	reporter       Reporter
	logger         *zap.Logger
	commandTimeout time.Duration
}

// Option configures an Applicator.
type Option func(*Applicator)

// WithFs replaces the OS filesystem.
func WithFs(fs afero.Fs) Option { return func(a *Applicator) { a.fs = fs } }

// WithRunner replaces the shell runner.
func WithRunner(r Runner) Option { return func(a *Applicator) { a.runner = r } }

// WithReporter sets the event sink.
func WithReporter(r Reporter) Option { return func(a *Applicator) { a.reporter = r } }

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option { return func(a *Applicator) { a.logger = l } }

// WithCommandTimeout bounds each command; zero means no limit.
func WithCommandTimeout(d time.Duration) Option { return func(a *Applicator) { a.commandTimeout = d } }

// NewApplicator builds an Applicator on the OS filesystem and sh.
func NewApplicator(opts ...Option) *Applicator {
	a := &Applicator{
		fs:       afero.NewOsFs(),
		runner:   NewShellRunner(""),
		reporter: ReporterFunc(func(Event) {}),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ApplyGenerated extracts, parses and applies the structure embedded in a raw
// model response.
func (a *Applicator) ApplyGenerated(ctx context.Context, raw, basePath string) (*Report, error) {
	s, err := ParseResponse(raw)
	if err != nil {
		a.logger.Debug("Could not parse code structure", zap.Error(err), zap.String("raw", raw))
		return nil, err
	}
	return a.Apply(ctx, s, basePath)
}

// Apply validates every path against basePath before touching anything, then
// runs commands, creates folders and writes files in that order.
func (a *Applicator) Apply(ctx context.Context, s *types.CodeStructure, basePath string) (*Report, error) {
	report := &Report{}
	if s.IsEmpty() {
		return report, nil
	}

	folders := make([]string, len(s.Folders))
	for i, f := range s.Folders {
		full, err := resolve(basePath, f, true)
		if err != nil {
			return nil, err
		}
		folders[i] = full
	}
	files := make([]string, len(s.Files))
	for i, f := range s.Files {
		full, err := resolve(basePath, f.Path, false)
		if err != nil {
			return nil, err
		}
		files[i] = full
	}

	for _, command := range s.Commands {
		if err := a.runCommand(ctx, basePath, command); err != nil {
			return report, err
		}
		report.Commands = append(report.Commands, command)
	}

	for _, full := range folders {
		if err := a.fs.MkdirAll(full, 0o755); err != nil {
			return report, &FolderError{Path: full, Err: err}
		}
		a.reporter.Report(Event{Kind: EventFolderCreated, Target: full})
		report.Folders = append(report.Folders, full)
	}

	for i, entry := range s.Files {
		full := files[i]
		if err := a.fs.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return report, &FileWriteError{Path: full, Err: err}
		}
		if err := afero.WriteFile(a.fs, full, []byte(entry.Content), 0o644); err != nil {
			return report, &FileWriteError{Path: full, Err: err}
		}
		a.reporter.Report(Event{Kind: EventFileWritten, Target: full})
		report.Files = append(report.Files, full)
	}

	a.logger.Info("Applied code structure",
		zap.String("base", basePath),
		zap.Int("commands", len(report.Commands)),
		zap.Int("folders", len(report.Folders)),
		zap.Int("files", len(report.Files)))
	return report, nil
}

func (a *Applicator) runCommand(ctx context.Context, dir, command string) error {
	a.reporter.Report(Event{Kind: EventCommandStarted, Target: command})

	runCtx := ctx
	if a.commandTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, a.commandTimeout)
		defer cancel()
	}

	stdout, stderr, err := a.runner.Run(runCtx, dir, command)
	if err != nil {
		cmdErr := &CommandError{Command: command, Stderr: strings.TrimSpace(stderr), ExitCode: -1, Err: err}
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			cmdErr.TimedOut = true
		} else {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				cmdErr.ExitCode = exitErr.ExitCode()
			}
		}
		a.logger.Warn("Command failed",
			zap.String("command", command),
			zap.String("stderr", cmdErr.Stderr),
			zap.Bool("timed_out", cmdErr.TimedOut),
			zap.Error(err))
		return cmdErr
	}

	a.logger.Debug("Command output", zap.String("command", command), zap.String("stdout", stdout))
	a.reporter.Report(Event{Kind: EventCommandFinished, Target: command})
	return nil
}

// resolve joins rel onto base and rejects anything that lands outside base.
// allowBase permits rel to resolve to base itself (a folder entry of "" or ".").
func resolve(base, rel string, allowBase bool) (string, error) {
	if filepath.IsAbs(rel) || strings.HasPrefix(rel, "/") || strings.HasPrefix(rel, `\`) {
		return "", &UnsafePathError{Path: rel, Base: base}
	}
	cleanBase := filepath.Clean(base)
	full := filepath.Join(cleanBase, rel)
	inside, err := filepath.Rel(cleanBase, full)
	if err != nil {
		return "", &UnsafePathError{Path: rel, Base: base}
	}
	if inside == ".." || strings.HasPrefix(inside, ".."+string(os.PathSeparator)) {
		return "", &UnsafePathError{Path: rel, Base: base}
	}
	if inside == "." && !allowBase {
		return "", &UnsafePathError{Path: rel, Base: base}
	}
	return full, nil
}
