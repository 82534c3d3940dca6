package commands

import (
	"os"
)

// Cd implements the built-in cd command. Changing directory is inherently
// process-wide state, so this is one of two built-ins that bypass env.FS.
func Cd(env *Env, args []string) int {
	cmd := &SimpleCommand{
		Use:   "cd DIRECTORY",
		Short: "Change the working directory.",
	}

	return cmd.Run(env, args, func() int {
		rest := cmd.Flags().Args()
		if len(rest) != 1 {
			env.Errorf("Usage: cd <directory path>")
			return 1
		}

		target := rest[0]
		stat, err := os.Stat(target)
		switch {
		case err != nil:
			env.Errorf("Error: Could not change directories\n%v", err)
			return 1
		case !stat.IsDir():
			env.Errorf("Error: Could not change directories\n%s is not a valid directory", target)
			return 1
		}

		if err := os.Chdir(target); err != nil {
			env.Errorf("Error: Could not change directories\n%v", err)
			return 1
		}
		return 0
	})
}
