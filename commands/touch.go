package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"time"
)

// Touch implements the built-in touch command: create files, or bump the
// times of ones that exist.
func Touch(env *Env, args []string) int {
	cmd := &SimpleCommand{
		Use:   "touch FILE...",
		Short: "Update the access and modification times of files to now, creating them if needed.",
	}

	return cmd.Run(env, args, func() int {
		paths := cmd.Flags().Args()
		if len(paths) == 0 {
			env.Errorf("usage: touch <file1 file2 ...>")
			return 1
		}

		now := time.Now()

		anyFailed := false
		for _, path := range paths {
			err := env.FS.Chtimes(path, now, now)
			switch {
			case errors.Is(err, fs.ErrNotExist):
				fd, err := env.FS.Create(path)
				if err != nil {
					fmt.Fprintf(env.Stderr, "touch: cannot touch %q: %s\n", path, err)
					anyFailed = true
					continue
				}
				fd.Close()
			case err != nil:
				fmt.Fprintf(env.Stderr, "touch: setting times of %q: %s\n", path, err)
				anyFailed = true
			}
		}

		if anyFailed {
			return 1
		}
		return 0
	})
}
