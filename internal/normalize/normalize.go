// Package normalize holds the pure amount and text normalization functions
// every section aggregation runs its inputs through.
package normalize

import (
	"math"
	"strings"
)

// ResolveAmount picks the economically meaningful side of a double-entry row.
// Credit wins when it is a finite positive value; otherwise the debit side is
// the fallback for malformed rows, and anything non-finite collapses to zero.
func ResolveAmount(debit, credit float64) float64 {
	if isFinite(credit) && credit > 0 {
		return credit
	}
	if isFinite(debit) {
		return debit
	}
	return 0
}

// RoundAmount rounds to the nearest whole yen, half away from zero upward.
// Totals are always built by summing per-transaction rounded values, never by
// rounding a grand total, so small odd-yen entries cannot drift the sheet.
func RoundAmount(x float64) int64 {
	if !isFinite(x) {
		return 0
	}
	return int64(math.Floor(x + 0.5))
}

// SanitizeText collapses whitespace runs to single spaces, trims the ends,
// and truncates to maxLen characters when maxLen is positive. Empty input
// stays empty.
func SanitizeText(s string, maxLen int) string {
	if s == "" {
		return ""
	}
	s = strings.Join(strings.Fields(s), " ")
	if maxLen > 0 {
		runes := []rune(s)
		if len(runes) > maxLen {
			s = string(runes[:maxLen])
		}
	}
	return s
}

// markupEscaper covers the five reserved markup characters.
var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeMarkup escapes the reserved markup characters for embedding in the
// serialized document.
func EscapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
