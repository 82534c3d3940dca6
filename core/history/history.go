// Package history tracks every command line entered during the lifetime of
// the shell and persists it across sessions as newline delimited JSON.
package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// History records entered command lines as token vectors, oldest first.
type History struct {
	fs       afero.Fs
	path     string
	commands [][]string
}

// New returns an in-memory history with no backing file.
func New() *History {
	return &History{}
}

// Load reads prior sessions' history from path. A missing file is not an
// error; it is created on the first Add.
func Load(fs afero.Fs, path string) (*History, error) {
	h := &History{fs: fs, path: path}

	fd, err := fs.Open(path)
	if os.IsNotExist(err) {
		return h, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not open history")
	}
	defer fd.Close()

	scanner := bufio.NewScanner(fd)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var tokens []string
		if err := json.Unmarshal(line, &tokens); err != nil {
			// A corrupt record loses that one entry, not the file.
			continue
		}
		h.commands = append(h.commands, tokens)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read history")
	}

	return h, nil
}

// Add appends a command to the history and its backing file.
func (h *History) Add(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	h.commands = append(h.commands, tokens)

	if h.fs == nil {
		return nil
	}

	if dir := filepath.Dir(h.path); dir != "." {
		if err := h.fs.MkdirAll(dir, 0700); err != nil {
			return errors.Wrap(err, "could not create history directory")
		}
	}
	fd, err := h.fs.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return errors.Wrap(err, "could not open history")
	}
	defer fd.Close()

	record, err := json.Marshal(tokens)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(fd, string(record))
	return errors.Wrap(err, "could not append history")
}

// Len reports how many commands are stored.
func (h *History) Len() int {
	return len(h.commands)
}

// Display writes the complete numbered history to w.
func (h *History) Display(w io.Writer) {
	h.DisplayLast(w, len(h.commands))
}

// DisplayLast writes the last n commands to w, numbered by their position in
// the full history. An n larger than the history is clamped.
func (h *History) DisplayLast(w io.Writer, n int) {
	if n > len(h.commands) {
		n = len(h.commands)
	}

	for i := len(h.commands) - n; i < len(h.commands); i++ {
		fmt.Fprintf(w, "%d > %s\n", i+1, strings.Join(h.commands[i], " "))
	}
}
