package sshd

import (
	"strings"
)

// directiveLine holds the parse of one sshd_config line with respect to a
// single directive keyword.
type directiveLine struct {
	matches   bool   // line carries the keyword, commented or not
	commented bool   // line is a commented-out form of the directive
	value     string // directive value, when matches
}

// parseDirectiveLine inspects one config line for the given keyword.
// sshd keywords are case-insensitive. A commented form is a line whose
// first token after '#' is the keyword, e.g. "#PasswordAuthentication no".
func parseDirectiveLine(line, key string) directiveLine {
	trimmed := strings.TrimSpace(line)

	commented := false
	if strings.HasPrefix(trimmed, "#") {
		commented = true
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "#"))
	}

	fields := strings.Fields(trimmed)
	if len(fields) == 0 || !strings.EqualFold(fields[0], key) {
		return directiveLine{}
	}

	return directiveLine{
		matches:   true,
		commented: commented,
		value:     strings.Join(fields[1:], " "),
	}
}

// rewriteDirective sets a directive to the desired value within the config
// content. The first matching line, commented or uncommented, is rewritten
// in place; later matching uncommented lines are dropped so repeated runs
// never accumulate duplicates. If no line matches, the directive is appended.
// Returns the new content and whether anything changed.
func rewriteDirective(content, key, value string) (string, bool) {
	hadTrailingNewline := strings.HasSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	desired := key + " " + value

	out := make([]string, 0, len(lines)+1)
	replaced := false
	changed := false

	for _, line := range lines {
		parsed := parseDirectiveLine(line, key)
		if !parsed.matches {
			out = append(out, line)
			continue
		}

		if !replaced {
			replaced = true
			if parsed.commented || parsed.value != value || strings.TrimSpace(line) != desired {
				changed = true
			}
			out = append(out, desired)
			continue
		}

		// A duplicate occurrence. Commented copies are harmless and kept;
		// uncommented ones would fight over the effective value.
		if parsed.commented {
			out = append(out, line)
			continue
		}
		changed = true
	}

	if !replaced {
		// Keep the file's trailing-newline shape: append before the final
		// empty element when present.
		if hadTrailingNewline && len(out) > 0 && out[len(out)-1] == "" {
			out = append(out[:len(out)-1], desired, "")
		} else {
			out = append(out, desired)
		}
		changed = true
	}

	return strings.Join(out, "\n"), changed
}

// directiveSatisfied reports whether the content's effective value for the
// directive is exactly the desired one: one or more uncommented lines all
// carrying the desired value, and at most one such line.
func directiveSatisfied(content, key, value string) bool {
	seen := 0
	for _, line := range strings.Split(content, "\n") {
		parsed := parseDirectiveLine(line, key)
		if !parsed.matches || parsed.commented {
			continue
		}
		if parsed.value != value {
			return false
		}
		seen++
	}
	return seen == 1
}
