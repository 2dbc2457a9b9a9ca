// Package sanitize bounds and neutralizes untrusted text before it can
// enter an error message or a log line.
//
// Every dynamic value interpolated into error details must pass through
// Field. The transformation is deterministic and linear in the input up
// to the bound, so attacker-controlled input cannot amplify cost.
package sanitize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxFieldLen bounds sanitized output. Long enough for any legitimate
// path, identifier, or parse message; short enough that oversized input
// cannot bloat error messages or logs.
const MaxFieldLen = 256

// truncationMarker replaces the tail of over-long input.
const truncationMarker = "...[TRUNCATED]"

// invalidMarker replaces input with no printable content at all.
const invalidMarker = "[INVALID_INPUT]"

// Field sanitizes one untrusted value for inclusion in error details.
//
//   - Output is truncated to MaxFieldLen bytes on a rune boundary, with
//     truncationMarker appended.
//   - Control characters become '?' so the value cannot inject log lines
//     or terminal sequences.
//   - ANSI escape sequences (ESC through the terminating 'm') are
//     swallowed into a single '?'.
//   - Input with no printable characters becomes invalidMarker.
func Field(s string) string {
	var b strings.Builder
	b.Grow(min(len(s), MaxFieldLen))

	length := 0
	truncated := false
	sawPrintable := false
	inEscape := false

	for _, r := range s {
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		if r == 0x1b {
			inEscape = true
			if length+1 > MaxFieldLen {
				truncated = true
				break
			}
			b.WriteByte('?')
			length++
			continue
		}

		out := r
		if unicode.IsControl(r) {
			out = '?'
		} else {
			sawPrintable = true
		}
		rl := utf8.RuneLen(out)
		if length+rl > MaxFieldLen {
			truncated = true
			break
		}
		b.WriteRune(out)
		length += rl
	}

	if !sawPrintable {
		return invalidMarker
	}
	if !truncated {
		return b.String()
	}

	out := b.String()
	keep := MaxFieldLen - len(truncationMarker)
	for keep > 0 && !utf8.RuneStart(out[keep]) {
		keep--
	}
	if keep <= 0 {
		return invalidMarker
	}
	if len(out) > keep {
		out = out[:keep]
	}
	return out + truncationMarker
}
