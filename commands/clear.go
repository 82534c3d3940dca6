package commands

import (
	"fmt"
)

// Clear implements the built-in clear command. Assumes VT100 compatibility.
func Clear(env *Env, args []string) int {
	cmd := &SimpleCommand{
		Use:   "clear",
		Short: "Clear the screen.",
	}

	return cmd.Run(env, args, func() int {
		if len(cmd.Flags().Args()) > 0 {
			env.Errorf("Usage: clear")
			return 1
		}

		fmt.Fprint(env.Stdout, "\x1b[2J\x1b[1;1H")
		return 0
	})
}
