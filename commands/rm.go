package commands

import (
	"errors"
	"fmt"
	"io/fs"
)

// Rm implements the built-in rm command.
func Rm(env *Env, args []string) int {
	cmd := &SimpleCommand{
		Use:   "rm [-r] FILE...",
		Short: "Remove files or directories.",
	}

	recursive := cmd.Flags().BoolLong("recursive", 'r', "remove directories and their contents recursively")

	return cmd.Run(env, args, func() int {
		files := cmd.Flags().Args()
		if len(files) == 0 {
			env.Errorf("usage: rm [-r] <file1 file2 ...>")
			return 1
		}

		anyFailed := false
		for _, file := range files {
			stat, statErr := env.FS.Stat(file)
			switch {
			case errors.Is(statErr, fs.ErrNotExist):
				fmt.Fprintf(env.Stderr, "rm: can't remove %q: no such file or directory\n", file)
				anyFailed = true
			case statErr != nil:
				fmt.Fprintf(env.Stderr, "rm: can't stat %q: %v\n", file, statErr)
				anyFailed = true
			case stat.IsDir() && !*recursive:
				fmt.Fprintf(env.Stderr, "rm: can't remove %q: is a directory\n", file)
				anyFailed = true
			case stat.IsDir():
				if err := env.FS.RemoveAll(file); err != nil {
					fmt.Fprintf(env.Stderr, "rm: can't remove %q: %v\n", file, err)
					anyFailed = true
				}
			default:
				if err := env.FS.Remove(file); err != nil {
					fmt.Fprintf(env.Stderr, "rm: can't remove %q: %v\n", file, err)
					anyFailed = true
				}
			}
		}

		if anyFailed {
			return 1
		}
		return 0
	})
}
