package telemetry

import (
	"regexp"
	"strings"
)

// benignErrors lists substrings of error messages that are routine
// user-facing noise from the database engines and networks the tool
// talks to (bad SQL, missing tables, wrong credentials, unreachable
// hosts). They are not actionable bugs and must never reach the
// backend. The list is expected to grow as new engine error strings
// are observed; keep entries lowercase.
var benignErrors = []string{
	// connection noise
	"econnrefused",
	"econnreset",
	"etimedout",
	"enotfound",
	"ehostunreach",
	"epipe",
	"broken pipe",
	"connection refused",
	"connection timed out",
	"connection closed",
	"too many connections",
	// auth noise
	"authentication failed",
	"access denied",
	"permission denied",
	"login failed",
	"password authentication",
	// user SQL errors
	"syntax error",
	"parse error",
	"no such table",
	"no such column",
	"unknown database",
	"unknown column",
	"table or view does not exist",
	"invalid object name",
	// constraint noise
	"duplicate key",
	"duplicate entry",
	"unique constraint",
	"already exists",
}

var benignErrorsRe = compileBenignErrors()

func compileBenignErrors() *regexp.Regexp {
	quoted := make([]string, len(benignErrors))
	for i, s := range benignErrors {
		quoted[i] = regexp.QuoteMeta(s)
	}
	return regexp.MustCompile("(?i)(" + strings.Join(quoted, "|") + ")")
}

// isBenignError reports whether an error message matches the
// deny-list and should be dropped instead of reported.
func isBenignError(msg string) bool {
	return benignErrorsRe.MatchString(msg)
}
