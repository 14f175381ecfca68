package escape

import "unicode/utf16"

// Windows quotes arg, a sequence of UTF-16 code units, following the
// backslash-doubling convention shared by CreateProcess and the Microsoft
// C runtime's command-line parser.
//
// If no unit of arg is disallowed the input slice itself is returned.
// Otherwise the argument is wrapped in double quotes: a run of n
// backslashes followed by a quote becomes 2n+1 backslashes and the
// escaped quote, a run followed by anything else is left alone, and a
// trailing run is doubled so it is not taken as escaping the closing
// quote. Surrogate code units are opaque 16-bit values, never validated
// or re-encoded.
func Windows(arg []uint16) []uint16 {
	if len(arg) != 0 && !anyDisallowed(arg) {
		return arg
	}
	quoted := make([]uint16, 0, len(arg)+2)
	quoted = append(quoted, '"')
	for i := 0; i < len(arg); {
		slashes := 0
		for i < len(arg) && arg[i] == '\\' {
			slashes++
			i++
		}
		switch {
		case i == len(arg):
			quoted = appendSlashes(quoted, slashes*2)
		case arg[i] == '"':
			quoted = appendSlashes(quoted, slashes*2+1)
			quoted = append(quoted, '"')
			i++
		default:
			quoted = appendSlashes(quoted, slashes)
			quoted = append(quoted, arg[i])
			i++
		}
	}
	return append(quoted, '"')
}

// WindowsString is Windows for strings, converting through UTF-16. Bytes
// that are not valid UTF-8 are replaced during the conversion; use
// Windows directly for exact code unit control.
func WindowsString(arg string) string {
	units := utf16.Encode([]rune(arg))
	if len(units) != 0 && !anyDisallowed(units) {
		return arg
	}
	return string(utf16.Decode(Windows(units)))
}

// disallowed reports whether u forces quoting: whitespace that would
// split the argument, the quote character itself, or any surrogate code
// unit, which has no scalar value of its own.
func disallowed(u uint16) bool {
	switch u {
	case ' ', '"', '\n', '\t':
		return true
	}
	return utf16.IsSurrogate(rune(u))
}

func anyDisallowed(arg []uint16) bool {
	for _, u := range arg {
		if disallowed(u) {
			return true
		}
	}
	return false
}

func appendSlashes(units []uint16, n int) []uint16 {
	for ; n > 0; n-- {
		units = append(units, '\\')
	}
	return units
}
