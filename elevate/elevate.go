// Package elevate detects administrator rights and re-launches the
// program through UAC when they are missing.
package elevate

import (
	"strings"

	"github.com/netclean/netprofile-cleaner/common"
)

// HasMarker reports whether args carry the marker added by Relaunch.
func HasMarker(args []string) bool {
	for _, a := range args {
		if a == common.ElevatedFlag {
			return true
		}
	}
	return false
}

// RelaunchArgs returns args with the elevation marker appended once.
func RelaunchArgs(args []string) []string {
	out := append([]string(nil), args...)
	if !HasMarker(out) {
		out = append(out, common.ElevatedFlag)
	}
	return out
}

// QuoteArgs joins args into a Windows command line that CommandLineToArgvW
// splits back into the same arguments.
func QuoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = quoteArg(a)
	}
	return strings.Join(quoted, " ")
}

func quoteArg(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n\v\"") {
		return s
	}

	var b strings.Builder
	b.WriteByte('"')
	slashes := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			slashes++
			continue
		case '"':
			// Backslashes before a quote are doubled, plus one for the quote.
			b.WriteString(strings.Repeat(`\`, slashes*2+1))
		default:
			b.WriteString(strings.Repeat(`\`, slashes))
		}
		slashes = 0
		b.WriteByte(c)
	}
	// Trailing backslashes are doubled so the closing quote stays a quote.
	b.WriteString(strings.Repeat(`\`, slashes*2))
	b.WriteByte('"')
	return b.String()
}

// launch describes a ShellExecute call. An empty Dir passes no directory,
// so the new process inherits the caller's working directory.
type launch struct {
	Verb string
	File string
	Args string
	Dir  string
}

func relaunchSpec(exe string, args []string) launch {
	return launch{
		Verb: "runas",
		File: exe,
		Args: QuoteArgs(RelaunchArgs(args)),
	}
}
