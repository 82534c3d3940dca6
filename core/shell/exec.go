package shell

import (
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Runner spawns assembled process specifications and manages their
// lifecycles. The three inherited streams are what a spec falls back to when
// it carries no binding of its own.
//
// Stages spawned eagerly to feed a pipe are handed to the runner's reaper;
// Reap collects them once the line's final process has been waited on.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	upstream errgroup.Group
	stages   int
}

// NewRunner returns a runner whose inherited streams are the parent's own.
func NewRunner() *Runner {
	return &Runner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Proc is a handle on a spawned process, valid until Finish reaps it.
type Proc struct {
	cmd       *exec.Cmd
	afterWait listCloser
}

// PID returns the operating-system process identifier.
func (p *Proc) PID() int {
	return p.cmd.Process.Pid
}

// Finish blocks until the process terminates, releases any handles that had
// to outlive it, and returns its termination state. A nonzero exit status is
// not an error; only a failure of the wait itself is.
func (p *Proc) Finish() (*os.ProcessState, error) {
	err := p.cmd.Wait()
	p.afterWait.Close()

	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ProcessState, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not wait on process")
	}
	return p.cmd.ProcessState, nil
}

// Spawn launches the spec's process with its streams wired, transferring
// ownership of the process to the OS process table. The parent's copies of
// directly inherited handles are released as soon as the child holds its
// own; wrapped handles stay with the returned Proc until Finish.
func (r *Runner) Spawn(spec *ProcessSpec) (*Proc, error) {
	cmd := exec.Command(spec.Path, spec.Args...)

	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if spec.Stdin != nil {
		cmd.Stdin = spec.Stdin.src
	}
	if spec.Stdout != nil {
		cmd.Stdout = spec.Stdout.dst
	}
	if spec.Stderr != nil {
		cmd.Stderr = spec.Stderr.dst
	}

	if err := cmd.Start(); err != nil {
		spec.Discard()
		return nil, errors.Wrapf(err, "%s", spec.Path)
	}

	proc := &Proc{cmd: cmd}
	for _, b := range []*StreamBinding{spec.Stdin, spec.Stdout, spec.Stderr} {
		if b == nil {
			continue
		}
		if b.outlives {
			proc.afterWait = append(proc.afterWait, b)
		} else {
			b.Close()
		}
	}

	return proc, nil
}

// SpawnUpstream launches spec immediately with its stdout rebound to a fresh
// anonymous pipe and returns the pipe's read end. The process itself is
// registered with the reaper; the caller keeps only the endpoint.
//
// The write end is released in the parent once the child holds it, so the
// downstream process sees EOF when the upstream exits.
func (r *Runner) SpawnUpstream(spec *ProcessSpec) (io.ReadCloser, error) {
	pr, pw, err := os.Pipe()
	if err != nil {
		spec.Discard()
		return nil, errors.Wrap(err, "could not create pipe")
	}

	// A pipe displaces any earlier stdout redirection; the displaced
	// handle is closed by the rebind.
	spec.BindStdout(FileSink(pw))

	proc, err := r.Spawn(spec)
	if err != nil {
		pr.Close()
		return nil, err
	}

	r.stages++
	r.upstream.Go(func() error {
		_, err := proc.Finish()
		return err
	})

	return pr, nil
}

// Stages reports how many upstream pipeline processes this runner spawned.
func (r *Runner) Stages() int {
	return r.stages
}

// Reap collects every upstream stage spawned for the line. Exit statuses of
// upstream stages are deliberately not reported; only wait failures surface.
func (r *Runner) Reap() error {
	return r.upstream.Wait()
}

type listCloser []io.Closer

func (lc listCloser) Close() error {
	var lastErr error
	for _, v := range lc {
		if err := v.Close(); err != nil {
			lastErr = err
		}
	}

	return lastErr
}
