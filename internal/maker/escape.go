package maker

import "strings"

// dartEscaper rewrites every character that cannot appear verbatim inside a
// double-quoted Dart string literal. strings.Replacer makes one pass over the
// input, so the backslashes it inserts are never escaped a second time.
var dartEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	`$`, `\$`,
	`"`, `\"`,
	`'`, `\'`,
)

// EscapeDartString returns text encoded for use as the body of a Dart string
// literal. `$` is escaped because Dart treats it as interpolation.
func EscapeDartString(text string) string {
	return dartEscaper.Replace(text)
}
