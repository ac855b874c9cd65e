package wordml

import (
	"strings"
)

// parseOnOff interprets an OOXML on/off attribute value. An absent value
// (empty string after trimming) yields the caller-supplied default, which for
// toggle properties written as bare elements is true. A present value is
// false for "0", "false", "off" and "none" (case-insensitive), true for
// anything else.
func parseOnOff(val string, absent bool) bool {
	v := strings.TrimSpace(val)
	if v == "" {
		return absent
	}
	switch strings.ToLower(v) {
	case "0", "false", "off", "none":
		return false
	}
	return true
}

// normalizeColor canonicalizes a hex color value to six uppercase digits.
// Eight-digit values are ARGB; the leading alpha pair is dropped. A leading
// "#" is tolerated. "auto", the empty string and anything non-hex normalize
// to "" (undefined).
func normalizeColor(val string) string {
	v := strings.TrimSpace(val)
	v = strings.TrimPrefix(v, "#")
	if v == "" || strings.EqualFold(v, "auto") {
		return ""
	}
	switch len(v) {
	case 8:
		v = v[2:]
	case 6:
	default:
		return ""
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return ""
		}
	}
	return strings.ToUpper(v)
}

// normalizeAlignment maps a w:jc value to the canonical alignment keywords.
// Unknown or empty values map to "" (undefined).
func normalizeAlignment(val string) string {
	switch strings.TrimSpace(val) {
	case "start", "left":
		return "left"
	case "end", "right":
		return "right"
	case "center":
		return "center"
	case "both", "justify":
		return "justify"
	}
	return ""
}

// detectHeadingLevel pattern-matches a style id or display name against
// "heading" plus a digit 1 through 6, case-insensitive, with an optional
// space or underscore separator. Returns 0 when neither matches.
func detectHeadingLevel(styleID, styleName string) int {
	if lvl := headingLevelOf(styleID); lvl != 0 {
		return lvl
	}
	return headingLevelOf(styleName)
}

func headingLevelOf(s string) int {
	v := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(v, "heading") {
		return 0
	}
	rest := v[len("heading"):]
	rest = strings.TrimPrefix(rest, " ")
	rest = strings.TrimPrefix(rest, "_")
	if len(rest) != 1 {
		return 0
	}
	if rest[0] < '1' || rest[0] > '6' {
		return 0
	}
	return int(rest[0] - '0')
}

// parseIntAttr parses a plain integer attribute value, such as a grid span
// count or a list level. Returns 0 for anything unparseable.
func parseIntAttr(val string) int {
	v := strings.TrimSpace(val)
	if v == "" {
		return 0
	}
	neg := false
	if v[0] == '-' {
		neg = true
		v = v[1:]
	}
	n := 0
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		return -n
	}
	return n
}

// parseTwips parses a measurement attribute given in twentieths of a point.
// Returns 0 for anything unparseable.
func parseTwips(val string) int {
	return parseIntAttr(val)
}

// parseHalfPoints converts a half-point size attribute to points.
// Returns 0 for anything unparseable.
func parseHalfPoints(val string) float64 {
	n := parseIntAttr(val)
	if n <= 0 {
		return 0
	}
	return float64(n) / 2
}
