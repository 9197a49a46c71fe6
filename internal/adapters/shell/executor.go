// Package shell provides an os/exec based executor for the external packaging tools.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/pinpack/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor that mirrors process output into logger.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run starts the command, drains both output streams and waits for it to exit.
// Standard output is returned; every output line is also logged at debug level.
func (e *Executor) Run(ctx context.Context, cmd domain.Command) ([]byte, error) {
	if cmd.Name == "" {
		return nil, zerr.New("empty command")
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // arguments are built by the packager
	c.Dir = cmd.Dir
	c.Env = append(os.Environ(), cmd.Env...)

	stdoutPipe, err := c.StdoutPipe()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open stdout pipe")
	}
	stderrPipe, err := c.StderrPipe()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open stderr pipe")
	}

	e.logger.Debug("$ " + strings.Join(cmd.Argv(), " "))
	if err := c.Start(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to start command"), "command", cmd.Name)
	}

	var stdout, stderr bytes.Buffer
	stdoutLog := &logWriter{logger: e.logger}
	stderrLog := &logWriter{logger: e.logger}

	// Both pipes must be drained before Wait closes them.
	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(io.MultiWriter(&stdout, stdoutLog), stdoutPipe)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(io.MultiWriter(&stderr, stderrLog), stderrPipe)
		return err
	})
	copyErr := g.Wait()
	_ = stdoutLog.Close()
	_ = stderrLog.Close()

	if err := c.Wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
		wrapped = zerr.With(wrapped, "command", strings.Join(cmd.Argv(), " "))
		if s := strings.TrimSpace(stderr.String()); s != "" {
			wrapped = zerr.With(wrapped, "stderr", s)
		}
		return stdout.Bytes(), wrapped
	}
	if copyErr != nil {
		return stdout.Bytes(), zerr.Wrap(copyErr, "failed to read command output")
	}

	return stdout.Bytes(), nil
}

type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	w.logger.Debug(strings.TrimSuffix(string(line), "\r"))
}
