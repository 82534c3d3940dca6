package shell

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/chzyer/readline"
	"github.com/spf13/afero"

	"github.com/mdevan/gosh/commands"
	"github.com/mdevan/gosh/core/config"
	"github.com/mdevan/gosh/core/history"
)

// Shell owns one interactive session: the line editor, the collaborators
// built-ins need, and the streams every spawned process inherits.
type Shell struct {
	Config  *config.Configuration
	History *history.History
	FS      afero.Fs

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	readline *readline.Instance
}

// New builds an interactive shell on the process's terminal.
func New(cfg *config.Configuration, hist *history.History) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          Prompt(),
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, err
	}

	return &Shell{
		Config:   cfg,
		History:  hist,
		FS:       afero.NewOsFs(),
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		readline: rl,
	}, nil
}

// Prompt embeds the shell's own process identifier.
func Prompt() string {
	return fmt.Sprintf("(%d) $ ", os.Getpid())
}

// Close releases the terminal.
func (s *Shell) Close() error {
	return s.readline.Close()
}

// Run reads, evaluates, and reports until input ends or `exit` is entered.
func (s *Shell) Run() error {
	// The prompt loop itself survives interrupts; a foreground child
	// receives them through normal terminal process-group semantics.
	signal.Ignore(os.Interrupt)

	for {
		line, err := s.readline.Readline()
		switch {
		case err == io.EOF:
			return nil // Input closed, quit.
		case err == readline.ErrInterrupt:
			continue
		case err != nil:
			return err
		}

		if done := s.Eval(line); done {
			return nil
		}
	}
}

// Eval processes one raw input line end to end and reports whether the
// read-eval loop should stop. Every failure aborts only the current line.
func (s *Shell) Eval(line string) (done bool) {
	tokens, err := Lex(line)
	if err != nil {
		s.env().Errorf("%v", err)
		return false
	}
	if len(tokens) == 0 {
		return false
	}

	if s.History != nil {
		if err := s.History.Add(tokens); err != nil {
			log.Printf("recording history: %v", err)
		}
	}

	if _, handled := commands.Dispatch(s.env(), tokens); handled {
		return false
	}

	runner := &Runner{Stdin: s.Stdin, Stdout: s.Stdout, Stderr: s.Stderr}
	assembler := &Assembler{Runner: runner}

	spec, err := assembler.Assemble(tokens)
	switch {
	case err != nil:
		s.env().Errorf("Error: %v", err)
	case spec == nil:
		// No operand at all; nothing to run.
	default:
		done = s.execute(runner, spec, tokens[0] == "exit")
	}

	if err := runner.Reap(); err != nil {
		log.Printf("reaping pipeline: %v", err)
	}
	return done
}

// execute runs the line's final process and reports its termination status.
// `exit` is not a program: its failure to launch is the signal to stop the
// loop.
func (s *Shell) execute(runner *Runner, spec *ProcessSpec, isExit bool) bool {
	proc, err := runner.Spawn(spec)
	if err != nil {
		if isExit {
			return true
		}
		s.env().Errorf("Error: Could not execute process.\n%v", err)
		return false
	}

	pid := proc.PID()
	state, err := proc.Finish()
	if err != nil {
		s.env().Errorf("Error: Could not execute process.\n%v", err)
		return false
	}

	fmt.Fprintf(s.Stdout, "Child %d exited with %s\n", pid, state)
	return false
}

func (s *Shell) env() *commands.Env {
	return &commands.Env{
		Stdin:   s.Stdin,
		Stdout:  s.Stdout,
		Stderr:  s.Stderr,
		FS:      s.FS,
		Config:  s.Config,
		History: s.History,
	}
}
