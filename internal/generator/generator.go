package generator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Output captures the result of a subprocess invocation.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes the generator and package installs as blocking
// subprocesses.
type Runner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	// Stdin is connected to the child so interactive generator prompts work.
	Stdin io.Reader
	// Registry, when set, overrides the package manager's default registry
	// for installs.
	Registry string
}

// Scaffold runs the external project generator in parentDir, producing
// parentDir/<projectName>. A non-zero generator exit is returned as an error
// carrying the captured stderr.
func (r *Runner) Scaffold(ctx context.Context, pm PackageManager, parentDir, projectName string) (*Output, error) {
	bin, err := exec.LookPath(pm.Bin())
	if err != nil {
		return nil, fmt.Errorf("%s is required to run %s: %w", pm.Bin(), GeneratorName, err)
	}

	out, err := r.run(ctx, bin, pm.CreateArgs(projectName), parentDir)
	if err != nil {
		return out, fmt.Errorf("running %s: %w", GeneratorName, err)
	}
	if out.ExitCode != 0 {
		return out, fmt.Errorf("%s exited with status %d:\n%s", GeneratorName, out.ExitCode, strings.TrimSpace(out.Stderr))
	}
	return out, nil
}

// Install installs packages into projectDir using the package manager.
func (r *Runner) Install(ctx context.Context, pm PackageManager, projectDir string, pkgs []string, dev bool) (*Output, error) {
	if len(pkgs) == 0 {
		return &Output{}, nil
	}

	bin, err := exec.LookPath(pm.Bin())
	if err != nil {
		return nil, fmt.Errorf("%s not found in PATH: %w", pm.Bin(), err)
	}

	out, err := r.run(ctx, bin, pm.InstallArgs(pkgs, dev, r.Registry), projectDir)
	if err != nil {
		return out, fmt.Errorf("installing packages: %w", err)
	}
	if out.ExitCode != 0 {
		return out, fmt.Errorf("%s install exited with status %d:\n%s", pm.Name(), out.ExitCode, strings.TrimSpace(out.Stderr))
	}
	return out, nil
}

// run executes bin with args in dir, streaming output to the configured
// writers while capturing it for the Output.
func (r *Runner) run(ctx context.Context, bin string, args []string, dir string) (*Output, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	if r.Stdin != nil {
		cmd.Stdin = r.Stdin
	} else {
		cmd.Stdin = os.Stdin
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err := cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s: %w", bin, err)
	}

	output.ExitCode = 0
	return output, nil
}
