package persondir

import "strings"

const (
	// StudentNumberWidth is the fixed width of a formatted student number.
	StudentNumberWidth = 7
	// SystemKeyWidth is the fixed width of a formatted system key.
	SystemKeyWidth = 9
)

// NormalizeStudentNumber normalizes input to the 7-digit zero-padded student
// number form. The second return value is false when the input is not
// numeric, is wider than the fixed width, or is zero-valued (an all-zero
// number is treated as absent, not as a literal zero string).
func NormalizeStudentNumber(s string) (string, bool) {
	return normalizeFixedWidth(s, StudentNumberWidth)
}

// NormalizeSystemKey normalizes input to the 9-digit zero-padded system key
// form, with the same rules as NormalizeStudentNumber.
func NormalizeSystemKey(s string) (string, bool) {
	return normalizeFixedWidth(s, SystemKeyWidth)
}

func normalizeFixedWidth(s string, width int) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > width {
		return "", false
	}
	zero := true
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", false
		}
		if s[i] != '0' {
			zero = false
		}
	}
	if zero {
		return "", false
	}
	return strings.Repeat("0", width-len(s)) + s, true
}
