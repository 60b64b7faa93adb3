package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// canonicalRe matches the fully zero-padded Building 3 form: "03-AA-SS-01".
var canonicalRe = regexp.MustCompile(`^03-\d{2}-\d{2}-01$`)

// IsCanonical reports whether code is in canonical "03-AA-SS-01" form.
func IsCanonical(code string) bool {
	return canonicalRe.MatchString(code)
}

// NormalizeCode maps the accepted shorthand notations for a location code to
// canonical "03-AA-SS-01" form. Rules are checked in order, first match wins:
//
//  1. hyphens stripped, exactly 4 digits → aisle+station, "5822" → "03-58-22-01"
//  2. two hyphen parts → aisle-station, "58-22" → "03-58-22-01"
//  3. three parts → building-aisle-station, building must be "03" or "3"
//  4. four parts → full form, building must be "03"/"3" and position "01"/"1"
//
// Anything else, including three- and four-part inputs with the wrong
// building or position, is returned unchanged. Callers using the result as a
// lookup key must treat a non-canonical return value as "not found". The
// mobile app ships the same mapping, so this function must not change shape
// without a coordinated app release.
func NormalizeCode(input string) string {
	cleaned := strings.TrimSpace(strings.ReplaceAll(input, "-", ""))
	if len(cleaned) == 4 && isDigits(cleaned) {
		return fmt.Sprintf("%s-%s-%s-%s", Building, cleaned[:2], cleaned[2:], Position)
	}

	parts := strings.Split(input, "-")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch len(parts) {
	case 2:
		return fmt.Sprintf("%s-%s-%s-%s", Building, zfill(parts[0]), zfill(parts[1]), Position)
	case 3:
		if parts[0] == Building || parts[0] == "3" {
			return fmt.Sprintf("%s-%s-%s-%s", Building, zfill(parts[1]), zfill(parts[2]), Position)
		}
	case 4:
		building := zfill(parts[0])
		position := zfill(parts[3])
		if (building == Building || parts[0] == "3") && (position == Position || parts[3] == "1") {
			return fmt.Sprintf("%s-%s-%s-%s", Building, zfill(parts[1]), zfill(parts[2]), Position)
		}
	}
	return input
}

// zfill left-pads s with zeros to two characters. Longer strings pass through
// so malformed segments fail the canonical-shape check instead of being cut.
func zfill(s string) string {
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
