package shell

import (
	"os"

	"github.com/pkg/errors"
)

// opKind is the meaning the assembler assigns to an operator spelling.
// Spellings are classified by shape first (IsOperator) and resolved to a
// kind second, so shape-valid but meaningless spellings like `!` or `3>`
// surface as assembly errors instead of being misread as programs.
type opKind int

const (
	opNone opKind = iota
	opPipe
	opStdinFrom
	opStdoutTruncate
	opStdoutAppend
	opStderr
	opStdoutAndStderr
)

func operatorKind(tok string) (opKind, error) {
	switch tok {
	case "|":
		return opPipe, nil
	case "<":
		return opStdinFrom, nil
	case ">", "1>":
		return opStdoutTruncate, nil
	case ">>":
		return opStdoutAppend, nil
	case "2>":
		return opStderr, nil
	case "&>":
		return opStdoutAndStderr, nil
	default:
		return opNone, errors.Errorf("unsupported operator %q", tok)
	}
}

// Assembler folds a token stream into a chain of process specifications.
// Pipe stages are spawned eagerly through the Runner because a live pipe
// endpoint is only obtainable from a running process; everything else is
// pure construction.
type Assembler struct {
	Runner *Runner
}

// Assemble reduces tokens to the final, fully wired spec for the line.
// It returns nil for a line with no operand at all. On error the partially
// built spec is discarded and the rest of the line abandoned.
//
// Each step consumes the current accumulator and produces its replacement:
// an operand segment with no accumulator starts a fresh spec, an operator
// consumes the segment after it as its single required argument (a filename,
// or the next program for a pipe).
func (a *Assembler) Assemble(tokens []string) (*ProcessSpec, error) {
	var acc *ProcessSpec

	rest := tokens
	for len(rest) > 0 {
		op := opNone
		if IsOperator(rest[0]) {
			if acc == nil {
				return nil, errors.Errorf("expected program before %q", rest[0])
			}
			kind, err := operatorKind(rest[0])
			if err != nil {
				acc.Discard()
				return nil, err
			}
			op = kind
			rest = rest[1:]
		}

		// The operand segment runs to the next operator or the end
		// of the line.
		split := len(rest)
		for i, tok := range rest {
			if IsOperator(tok) {
				split = i
				break
			}
		}
		segment := rest[:split]
		rest = rest[split:]

		next, err := a.apply(op, segment, acc)
		if err != nil {
			return nil, err
		}
		acc = next
	}

	return acc, nil
}

// apply folds one operator and its operand segment into the accumulator.
func (a *Assembler) apply(op opKind, segment []string, acc *ProcessSpec) (*ProcessSpec, error) {
	switch op {
	case opNone:
		// Only reachable at the very start of a line.
		return NewProcessSpec(segment), nil

	case opPipe:
		if len(segment) == 0 {
			acc.Discard()
			return nil, errors.New("usage: <command> | <command>")
		}
		endpoint, err := a.Runner.SpawnUpstream(acc)
		if err != nil {
			return nil, err
		}
		next := NewProcessSpec(segment)
		next.BindStdin(PipeSource(endpoint))
		return next, nil

	case opStdinFrom:
		f, err := a.openOperand(segment, acc, "usage: <command> [args] < <file>", func(name string) (*os.File, error) {
			return os.Open(name)
		})
		if err != nil {
			return nil, err
		}
		acc.BindStdin(FileSource(f))
		return acc, nil

	case opStdoutTruncate:
		f, err := a.openOperand(segment, acc, "usage: <command> [args] > <file>", createTruncated)
		if err != nil {
			return nil, err
		}
		acc.BindStdout(FileSink(f))
		return acc, nil

	case opStdoutAppend:
		f, err := a.openOperand(segment, acc, "usage: <command> [args] >> <file>", func(name string) (*os.File, error) {
			return os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		})
		if err != nil {
			return nil, err
		}
		acc.BindStdout(FileSink(f))
		return acc, nil

	case opStderr:
		// The command runs once: stderr lands in the file and is
		// duplicated to the parent's stderr.
		f, err := a.openOperand(segment, acc, "usage: <command> [args] 2> <file>", createTruncated)
		if err != nil {
			return nil, err
		}
		acc.BindStderr(TeeSink(f, a.Runner.Stderr))
		return acc, nil

	case opStdoutAndStderr:
		// Two independent handles on the same path, one per stream.
		outFile, err := a.openOperand(segment, acc, "usage: <command> [args] &> <file>", createTruncated)
		if err != nil {
			return nil, err
		}
		errFile, err := createTruncated(segment[0])
		if err != nil {
			outFile.Close()
			acc.Discard()
			return nil, errors.Wrap(err, "could not open redirection target")
		}
		acc.BindStdout(FileSink(outFile))
		acc.BindStderr(FileSink(errFile))
		return acc, nil

	default:
		acc.Discard()
		return nil, errors.Errorf("unsupported operator kind %d", op)
	}
}

// openOperand opens the single filename argument a redirect operator
// requires, discarding the accumulator on failure.
func (a *Assembler) openOperand(segment []string, acc *ProcessSpec, usage string, open func(string) (*os.File, error)) (*os.File, error) {
	if len(segment) == 0 {
		acc.Discard()
		return nil, errors.New(usage)
	}

	f, err := open(segment[0])
	if err != nil {
		acc.Discard()
		return nil, errors.Wrap(err, "could not open redirection target")
	}
	return f, nil
}

func createTruncated(name string) (*os.File, error) {
	return os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
}
