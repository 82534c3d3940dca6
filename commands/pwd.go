package commands

import (
	"fmt"
	"os"
)

// Pwd implements the built-in pwd command.
func Pwd(env *Env, args []string) int {
	cmd := &SimpleCommand{
		Use:   "pwd",
		Short: "Print the name of the current working directory.",
	}

	return cmd.Run(env, args, func() int {
		wd, err := os.Getwd()
		if err != nil {
			env.Errorf("Error: Could not access current directory\n%v", err)
			return 1
		}

		fmt.Fprintln(env.Stdout, wd)
		return 0
	})
}
