package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadArgs(t *testing.T) {
	args, err := readArgs(strings.NewReader("one\ntwo words\n"), false)
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two words"}, args)
}

func TestReadArgsNullDelimited(t *testing.T) {
	args, err := readArgs(strings.NewReader("one\x00two\nlines\x00"), true)
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two\nlines"}, args)
}

func TestReadArgsEmpty(t *testing.T) {
	args, err := readArgs(strings.NewReader(""), false)
	require.NoError(t, err)
	require.Empty(t, args)
}

func TestDialect(t *testing.T) {
	sh, err := dialect("bash")
	require.NoError(t, err)
	require.Equal(t, "bash", sh.Name())
	_, err = dialect("csh")
	require.Error(t, err)
}
