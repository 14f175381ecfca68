package escape

import (
	"math/rand"
	"testing"
	"unicode/utf16"

	"github.com/alecthomas/assert/v2"
)

func TestWindows(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty", "", `""`},
		{"LoneQuote", `"`, `"\""`},
		{"TwoQuotes", `""`, `"\"\""`},
		{"SafeFlag", "--aaa=bbb-ccc", "--aaa=bbb-ccc"},
		{"TrailingBackslashRun", `\path\to\my documents\`, `"\path\to\my documents\\"`},
		{"InnerDoubleQuotes", `--features="default"`, `"--features=\"default\""`},
		{"BackslashBeforeQuote", `"--features=\"default\""`, `"\"--features=\\\"default\\\"\""`},
		{"Spaces", "linker=gcc -L/foo -Wl,bar", `"linker=gcc -L/foo -Wl,bar"`},
		{"Tab", "a\tb", "\"a\tb\""},
		{"Newline", "a\nb", "\"a\nb\""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, WindowsString(test.input))
			assert.Equal(t, encodeUTF16(test.expected), Windows(encodeUTF16(test.input)))
		})
	}
}

func TestWindowsBorrowsSafeInput(t *testing.T) {
	input := encodeUTF16(`\safe\path`)
	escaped := Windows(input)
	assert.True(t, &input[0] == &escaped[0], "expected the input slice to be returned unchanged")
}

// A surrogate code unit forces quoting but is carried through as an
// opaque 16-bit value.
func TestWindowsSurrogatePassthrough(t *testing.T) {
	valid := []uint16{0x1055, 0x006e, 0x0069, 0x0063, 0x006f, 0x0064, 0x0065}
	assert.Equal(t, valid, Windows(valid))

	unpaired := []uint16{0xd801, 0x006e, 0x0069, 0x0063, 0x006f, 0x0064, 0x0065}
	expected := append(append([]uint16{'"'}, unpaired...), '"')
	assert.Equal(t, expected, Windows(unpaired))
}

func TestWindowsRoundTrip(t *testing.T) {
	inputs := [][]uint16{
		{},
		encodeUTF16(`"`),
		encodeUTF16(`""`),
		encodeUTF16(`\path\to\my documents\`),
		encodeUTF16(`--features="default"`),
		encodeUTF16(`"--features=\"default\""`),
		encodeUTF16("linker=gcc -L/foo -Wl,bar"),
		encodeUTF16(`ends in backslashes \\\`),
		encodeUTF16(`\\server\share`),
		{0xd801, 'n', 'i', 'c', 'o', 'd', 'e'},
		{0xd83d, 0xde00, ' ', 0xdc00},
	}
	for _, input := range inputs {
		argv := commandLineToArgv(Windows(input))
		assert.Equal(t, 1, len(argv))
		assert.Equal(t, input, argv[0])
	}
}

func TestWindowsRoundTripRandom(t *testing.T) {
	alphabet := []uint16{'a', 'Z', '0', '-', ' ', '\t', '\n', '"', '\\', 0x1055, 0xffff, 0xd800, 0xd83d, 0xdc00, 0xdfff}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		input := make([]uint16, rng.Intn(24))
		for j := range input {
			input[j] = alphabet[rng.Intn(len(alphabet))]
		}
		argv := commandLineToArgv(Windows(input))
		assert.Equal(t, 1, len(argv))
		assert.Equal(t, input, argv[0])
	}
}

// Escaped words joined with single spaces must tokenize back into the
// original argument vector.
func TestWindowsCommandAssembly(t *testing.T) {
	args := [][]uint16{
		encodeUTF16(`C:\Program Files\tool.exe`),
		encodeUTF16("--features=\"default\""),
		encodeUTF16("plain"),
	}
	var line []uint16
	for i, arg := range args {
		if i > 0 {
			line = append(line, ' ')
		}
		line = append(line, Windows(arg)...)
	}
	assert.Equal(t, args, commandLineToArgv(line))
}

// If the input comes back unchanged it must have been non-empty and free
// of disallowed units.
func TestWindowsFastPathImpliesSafe(t *testing.T) {
	inputs := [][]uint16{
		{},
		encodeUTF16("a"),
		encodeUTF16("a b"),
		encodeUTF16(`\trailing\`),
		encodeUTF16(`has"quote`),
		{0xd800},
		{0x1055, 0x006e},
	}
	for _, input := range inputs {
		escaped := Windows(input)
		if len(escaped) != len(input) {
			continue
		}
		assert.NotEqual(t, 0, len(input))
		for _, u := range input {
			assert.False(t, disallowed(u), "unit %#x leaked through the fast path", u)
		}
	}
}

func encodeUTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// commandLineToArgv splits a command line the way the Microsoft C runtime
// does, including the post-2008 doubled-quote rule, so that quoting can
// be verified against a faithful reimplementation of the real tokenizer.
func commandLineToArgv(line []uint16) [][]uint16 {
	var argv [][]uint16
	i := 0
	for {
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i == len(line) {
			return argv
		}
		arg := []uint16{}
		inQuotes := false
		for i < len(line) {
			u := line[i]
			if !inQuotes && (u == ' ' || u == '\t') {
				break
			}
			switch u {
			case '\\':
				slashes := 0
				for i < len(line) && line[i] == '\\' {
					slashes++
					i++
				}
				if i < len(line) && line[i] == '"' {
					for j := 0; j < slashes/2; j++ {
						arg = append(arg, '\\')
					}
					if slashes%2 == 1 {
						arg = append(arg, '"')
						i++
					}
				} else {
					for j := 0; j < slashes; j++ {
						arg = append(arg, '\\')
					}
				}
			case '"':
				if inQuotes && i+1 < len(line) && line[i+1] == '"' {
					arg = append(arg, '"')
					i += 2
				} else {
					inQuotes = !inQuotes
					i++
				}
			default:
				arg = append(arg, u)
				i++
			}
		}
		argv = append(argv, arg)
	}
}
