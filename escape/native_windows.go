//go:build windows

package escape

// Quote escapes arg using the quoting convention of the build platform.
func Quote(arg string) string {
	return WindowsString(arg)
}
