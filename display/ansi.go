package display

import "os"

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiUnderline = "\x1b[4m"
)

// styleEnabled is true only when stdout is a terminal and NO_COLOR is unset,
// so piped and test output stays plain.
var styleEnabled = func() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}()

// ansiHelp wraps s in the given ANSI styles when styling is enabled.
func ansiHelp(s string, styles ...string) string {
	if !styleEnabled || len(styles) == 0 {
		return s
	}
	var prefix string
	for _, style := range styles {
		prefix += style
	}
	return prefix + s + ansiReset
}
