package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

const (
	lsTimeFormat  = "01-02-2006 03:04 PM"
	lsHeaderWidth = 60
)

// Ls implements the built-in ls command: a modified-time and name listing of
// one or more directories.
func Ls(env *Env, args []string) int {
	cmd := &SimpleCommand{
		Use:   "ls [DIRECTORY...]",
		Short: "List directory contents and their modification times.",
	}

	return cmd.Run(env, args, func() int {
		directories := cmd.Flags().Args()
		if len(directories) == 0 {
			if err := lsListDir(env, ".", false); err != nil {
				env.Errorf("Error: Could not list contents\n%v", err)
				return 1
			}
			return 0
		}

		for _, directory := range directories {
			if err := lsListDir(env, directory, true); err != nil {
				env.Errorf("Error: Could not list contents\n%v", err)
				return 1
			}
		}
		return 0
	})
}

func lsListDir(env *Env, directory string, showHeader bool) error {
	infos, err := afero.ReadDir(env.FS, directory)
	if err != nil {
		return err
	}

	w := env.Stdout

	if showHeader {
		// Bracketed directory name centered in a dashed rule.
		lhs := (lsHeaderWidth - len(directory)) / 2
		if lhs < 0 {
			lhs = 0
		}
		rhs := lhs
		if lhs%2 == 0 {
			rhs = lhs + 1
		}
		fmt.Fprintf(w, "%s[%s]%s\n", strings.Repeat("-", lhs), directory, strings.Repeat("-", rhs))
	}

	fmt.Fprintf(w, "%-19s  %-41s\n", "Modified", "Name")
	fmt.Fprintf(w, "%-19s  %-41s\n", strings.Repeat("-", 19), strings.Repeat("-", 41))

	for _, info := range infos {
		name := info.Name()
		if info.IsDir() {
			name = env.DirectoryColor().Sprint(name + "/")
		} else {
			name = env.FilenameColor().Sprint(name)
		}
		fmt.Fprintf(w, "%-19s  %-41s\n", info.ModTime().Format(lsTimeFormat), name)
	}
	fmt.Fprintln(w)

	return nil
}
