package shell

// IsOperator reports whether tok has the shape of a redirection or pipe
// operator: a single `<`, `>`, `|` or `!`, or any two-character token whose
// second character is `>` (`1>`, `2>`, `>>`, `&>`, ...).
//
// This is a shape test only. Which spelling means what, and whether a
// shape-valid spelling is meaningful at all, is decided by the assembler.
func IsOperator(tok string) bool {
	switch len(tok) {
	case 1:
		switch tok[0] {
		case '<', '>', '|', '!':
			return true
		}
		return false
	case 2:
		return tok[1] == '>'
	default:
		return false
	}
}
