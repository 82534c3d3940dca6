package shell

import (
	"io"
	"os"
)

// StreamBinding is the resolved source or sink for one standard stream of a
// process: an open file handle, a pipe endpoint from an upstream process, or
// a writer that wraps a handle. A nil *StreamBinding means the stream is
// inherited from the parent.
type StreamBinding struct {
	src io.Reader
	dst io.Writer

	// owned is the handle this binding must eventually release. Handles
	// the child inherits directly are released once the child has
	// started; a wrapped handle (outlives=true) is written to by the
	// parent for the life of the process and is only released after the
	// final wait.
	owned    io.Closer
	outlives bool
}

// FileSource binds a stream to read from an open file.
func FileSource(f *os.File) *StreamBinding {
	return &StreamBinding{src: f, owned: f}
}

// PipeSource binds a stream to the read end of a pipe produced by an
// upstream process. Ownership of the endpoint moves into the binding.
func PipeSource(r io.ReadCloser) *StreamBinding {
	return &StreamBinding{src: r, owned: r}
}

// FileSink binds a stream to write to an open file.
func FileSink(f *os.File) *StreamBinding {
	return &StreamBinding{dst: f, owned: f}
}

// TeeSink binds a stream so output lands in f and is duplicated to dup.
// The handle must stay open until the process has been waited on.
func TeeSink(f *os.File, dup io.Writer) *StreamBinding {
	return &StreamBinding{dst: io.MultiWriter(f, dup), owned: f, outlives: true}
}

// Close releases the binding's handle. Safe on nil bindings.
func (b *StreamBinding) Close() error {
	if b == nil || b.owned == nil {
		return nil
	}
	owned := b.owned
	b.owned = nil
	return owned.Close()
}

// ProcessSpec is one fully described process invocation: a program, its
// arguments, and how each standard stream resolves. A spec is owned by the
// assembler until Spawn transfers the process to the OS and releases the
// parent's copies of its handles.
type ProcessSpec struct {
	Path string
	Args []string

	Stdin  *StreamBinding
	Stdout *StreamBinding
	Stderr *StreamBinding
}

// NewProcessSpec builds a spec from an operand segment: the first token is
// the program, the rest are its arguments.
func NewProcessSpec(segment []string) *ProcessSpec {
	return &ProcessSpec{Path: segment[0], Args: segment[1:]}
}

// BindStdin attaches a stdin source, releasing any displaced binding.
func (p *ProcessSpec) BindStdin(b *StreamBinding) {
	p.Stdin.Close()
	p.Stdin = b
}

// BindStdout attaches a stdout sink, releasing any displaced binding.
func (p *ProcessSpec) BindStdout(b *StreamBinding) {
	p.Stdout.Close()
	p.Stdout = b
}

// BindStderr attaches a stderr sink, releasing any displaced binding.
func (p *ProcessSpec) BindStderr(b *StreamBinding) {
	p.Stderr.Close()
	p.Stderr = b
}

// Discard releases every handle the spec owns. Used when assembly fails
// partway and the spec will never be spawned.
func (p *ProcessSpec) Discard() {
	if p == nil {
		return
	}
	p.Stdin.Close()
	p.Stdout.Close()
	p.Stderr.Close()
}
