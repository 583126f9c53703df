package fcode

import "strconv"

// numericSentinel is the value getNumericValue returns for a code that
// isn't numeric under the given host. It also doubles as the "unset"
// marker battle-order adjustment looks for (§4.2.4).
const numericSentinel = 1000

// IsNumeric decides whether code is a "numeric" friendly code under host's
// rules. Numeric codes are excluded from random generation and sort before
// named codes in battle order.
func IsNumeric(code string, host Host) bool {
	ok, _ := parseNumeric(code, host)
	return ok
}

// GetNumericValue returns the integer a numeric code maps to, or 1000 when
// code isn't numeric under host.
func GetNumericValue(code string, host Host) int {
	if ok, v := parseNumeric(code, host); ok {
		return v
	}
	return numericSentinel
}

func parseNumeric(code string, host Host) (bool, int) {
	switch host.Kind {
	case PHost:
		if host.phostAllowsShortNumeric() {
			return parseNumericTolerant(code)
		}
		return parseNumericExact3(code)
	case pessimistic:
		// The union that allows fewer codes as random: use the most
		// permissive (tolerant PHost 4.0.8+) interpretation.
		return parseNumericTolerant(code)
	default: // THost, NuHost
		return parseNumericPlainDigits(code)
	}
}

// parseNumericPlainDigits implements the Tim-Host rule: exactly three plain
// digit characters, no sign.
func parseNumericPlainDigits(code string) (bool, int) {
	if len(code) != 3 {
		return false, 0
	}
	for i := 0; i < 3; i++ {
		if code[i] < '0' || code[i] > '9' {
			return false, 0
		}
	}
	v, err := strconv.Atoi(code)
	if err != nil {
		return false, 0
	}
	return true, v
}

// parseNumericExact3 implements the PHost <4.0.8 rule: exactly three
// characters, either all digits or a leading '-' followed by two digits.
func parseNumericExact3(code string) (bool, int) {
	if len(code) != 3 {
		return false, 0
	}
	return parseSignedDigits(code)
}

// parseNumericTolerant implements the PHost >=4.0.8 / Pessimistic rule: trim
// surrounding spaces, then accept an optional leading '-' followed by one or
// more digits.
func parseNumericTolerant(code string) (bool, int) {
	trimmed := trimSpaces(code)
	if trimmed == "" {
		return false, 0
	}
	return parseSignedDigits(trimmed)
}

func trimSpaces(s string) string {
	i, j := 0, len(s)
	for i < j && s[i] == ' ' {
		i++
	}
	for j > i && s[j-1] == ' ' {
		j--
	}
	return s[i:j]
}

func parseSignedDigits(s string) (bool, int) {
	negative := false
	if len(s) > 0 && s[0] == '-' {
		negative = true
		s = s[1:]
	}
	if s == "" {
		return false, 0
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false, 0
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return false, 0
	}
	if negative {
		v = -v
	}
	return true, v
}
