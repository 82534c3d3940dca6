package commands

import (
	"strconv"
)

// History implements the built-in history command, listing previously
// entered lines with their positions.
func History(env *Env, args []string) int {
	cmd := &SimpleCommand{
		Use:   "history [N]",
		Short: "Show all history, or the last N commands.",
	}

	return cmd.Run(env, args, func() int {
		rest := cmd.Flags().Args()
		switch len(rest) {
		case 0:
			env.history().Display(env.Stdout)
			return 0
		case 1:
			n, err := strconv.Atoi(rest[0])
			if err != nil || n < 0 {
				env.Errorf("Error: Could not display history\nNon-number argument given")
				return 1
			}
			env.history().DisplayLast(env.Stdout, n)
			return 0
		default:
			env.Errorf("Usage: history <num of previous commands>")
			return 1
		}
	})
}
