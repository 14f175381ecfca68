package escape

// Posix quotes arg with single-quotes for consumption by POSIX shells.
//
// If every byte of arg is in the safe set the input slice itself is
// returned. Otherwise the whole argument is wrapped in single quotes. A
// single-quoted string cannot contain a single quote, and interactive
// shells expand ! even inside single quotes, so both are spliced in as
// '\X' between two quoted spans. All other bytes, including invalid
// UTF-8, pass through untouched.
func Posix(arg []byte) []byte {
	if len(arg) != 0 && allAllowed(arg) {
		return arg
	}
	quoted := make([]byte, 0, len(arg)+2)
	quoted = append(quoted, '\'')
	for _, b := range arg {
		if b == '\'' || b == '!' {
			quoted = append(quoted, '\'', '\\', b, '\'')
		} else {
			quoted = append(quoted, b)
		}
	}
	return append(quoted, '\'')
}

// PosixString is Posix for strings.
func PosixString(arg string) string {
	if arg != "" && allAllowedString(arg) {
		return arg
	}
	return string(Posix([]byte(arg)))
}

// The conservative safe set for unquoted words, covering paths, flags and
// identifiers. Anything else, including the empty string, forces quoting.
// Some shell-safe characters (e.g. : and @) are deliberately excluded.
func allowed(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '-', '_', '=', '/', ',', '.', '+':
		return true
	}
	return false
}

func allAllowed(arg []byte) bool {
	for _, b := range arg {
		if !allowed(b) {
			return false
		}
	}
	return true
}

func allAllowedString(arg string) bool {
	for i := 0; i < len(arg); i++ {
		if !allowed(arg[i]) {
			return false
		}
	}
	return true
}
