package commands

// Dispatch runs the line as a built-in when its first token names one,
// reporting whether it did. The set of built-ins is closed: anything not
// listed here is executed as an external process by the engine.
func Dispatch(env *Env, tokens []string) (exitCode int, handled bool) {
	if len(tokens) == 0 {
		return 0, false
	}

	switch tokens[0] {
	case "ls":
		return Ls(env, tokens), true
	case "rm":
		return Rm(env, tokens), true
	case "touch":
		return Touch(env, tokens), true
	case "cd":
		return Cd(env, tokens), true
	case "pwd":
		return Pwd(env, tokens), true
	case "history":
		return History(env, tokens), true
	case "clear":
		return Clear(env, tokens), true
	case "cat":
		return Cat(env, tokens), true
	default:
		return 0, false
	}
}
