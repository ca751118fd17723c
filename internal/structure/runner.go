package structure

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// Runner executes a single shell command in dir.
type Runner interface {
	Run(ctx context.Context, dir, command string) (stdout, stderr string, err error)
}

// waitDelay bounds how long Run waits for output pipes after the command is
// killed, since grandchildren may keep them open.
const waitDelay = 2 * time.Second

// ShellRunner runs commands through "<Shell> -c <command>".
type ShellRunner struct {
	Shell string
}

// NewShellRunner returns a runner for shell, defaulting to sh.
func NewShellRunner(shell string) *ShellRunner {
	if shell == "" {
		shell = "sh"
	}
	return &ShellRunner{Shell: shell}
}

func (r *ShellRunner) Run(ctx context.Context, dir, command string) (string, string, error) {
	cmd := exec.CommandContext(ctx, r.Shell, "-c", command)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
