package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	getopt "github.com/pborman/getopt/v2"
	"github.com/spf13/afero"

	"github.com/mdevan/gosh/core/config"
	"github.com/mdevan/gosh/core/history"
)

// Env carries everything a built-in command may touch. Built-ins never reach
// for ambient process state except where the behavior is inherently
// process-wide (cd, pwd).
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	FS      afero.Fs
	Config  *config.Configuration
	History *history.History
}

func (e *Env) config() *config.Configuration {
	if e.Config == nil {
		return config.Default()
	}
	return e.Config
}

func (e *Env) history() *history.History {
	if e.History == nil {
		return history.New()
	}
	return e.History
}

// DirectoryColor renders directory names in listings.
func (e *Env) DirectoryColor() *color.Color {
	return rgbColor(e.config().Colors.DirectoryText, color.New(color.FgBlue, color.Bold))
}

// FilenameColor renders regular file names in listings.
func (e *Env) FilenameColor() *color.Color {
	return rgbColor(e.config().Colors.FilenameText, color.New(color.FgHiWhite))
}

// ErrorColor renders diagnostic text.
func (e *Env) ErrorColor() *color.Color {
	return rgbColor(e.config().Colors.ErrorText, color.New(color.FgRed))
}

// Errorf prints a diagnostic line to stderr in the configured error color.
func (e *Env) Errorf(format string, a ...interface{}) {
	fmt.Fprintln(e.Stderr, e.ErrorColor().Sprintf(format, a...))
}

func rgbColor(triple string, fallback *color.Color) *color.Color {
	if r, g, b, ok := config.ParseRGB(triple); ok {
		return color.RGB(r, g, b)
	}
	return fallback
}

// SimpleCommand reduces the boilerplate of writing built-ins.
type SimpleCommand struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run parses args and, if flag parsing was successful, calls the callback.
func (s *SimpleCommand) Run(env *Env, args []string, callback func() int) int {
	opts := s.Flags()
	showHelp := opts.BoolLong("help", 'h', "show this help and exit")

	if err := opts.Getopt(args, nil); err != nil {
		fmt.Fprintf(env.Stderr, "error: %s\n\n", err)
		s.PrintHelp(env.Stderr)
		return 1
	}

	if *showHelp {
		s.PrintHelp(env.Stdout)
		return 0
	}

	return callback()
}
