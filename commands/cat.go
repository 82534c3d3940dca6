package commands

import (
	"bufio"
	"fmt"
)

// Cat implements the built-in cat command for a single file.
func Cat(env *Env, args []string) int {
	cmd := &SimpleCommand{
		Use:   "cat FILE",
		Short: "Print the contents of a file.",
	}

	return cmd.Run(env, args, func() int {
		rest := cmd.Flags().Args()
		if len(rest) != 1 {
			env.Errorf("Usage: cat <path to file>")
			return 1
		}

		fd, err := env.FS.Open(rest[0])
		if err != nil {
			env.Errorf("Error: Could not display file contents\n%v", err)
			return 1
		}
		defer fd.Close()

		scanner := bufio.NewScanner(fd)
		for scanner.Scan() {
			fmt.Fprintln(env.Stdout, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			env.Errorf("Error: Could not display file contents\n%v", err)
			return 1
		}
		return 0
	})
}
