// Package format holds pure string utilities for display labels. It is used
// by the resolver output path and by compact-surface consumers such as
// companion-device displays.
package format

import (
	"regexp"
	"strings"
)

// Placeholder is the synthesized last-resort area name. It is returned
// transiently for display and must never be written to the cache or to a
// record's persisted label.
const Placeholder = "Nearby area"

const areaSuffix = " area"

// syntheticPattern matches machine-generated grid labels left behind by older
// display policies ("Area 12345", "Grid 7", "Cell 1", "Zone 9").
var syntheticPattern = regexp.MustCompile(`(?i)^(area|cell|grid|zone)\s*\d+$`)

var separators = []string{" – ", " - ", ", "}

// IsSynthetic reports whether a display name is a machine-generated
// placeholder rather than a real place name.
func IsSynthetic(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return true
	}
	if strings.EqualFold(trimmed, Placeholder) || strings.EqualFold(trimmed, "nearby area") {
		return true
	}
	return syntheticPattern.MatchString(trimmed)
}

// DisplayName renders a stored name for presentation. Synthetic placeholders
// are collapsed to the canonical placeholder string.
func DisplayName(name string) string {
	if IsSynthetic(name) {
		return Placeholder
	}
	return name
}

// Compact removes separator glyphs and a trailing " area" suffix, producing
// the shortest readable form of a name.
func Compact(name string) string {
	out := strings.TrimSpace(name)
	for _, sep := range separators {
		if i := strings.Index(out, sep); i > 0 {
			out = out[:i]
		}
	}
	out = strings.TrimSuffix(out, areaSuffix)
	return strings.TrimSpace(out)
}

// AreaName appends the " area" suffix unless the name already carries one.
func AreaName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Placeholder
	}
	if strings.HasSuffix(strings.ToLower(trimmed), areaSuffix) {
		return trimmed
	}
	return trimmed + areaSuffix
}

// Truncate shortens a name to at most max runes, cutting at a word boundary
// and appending an ellipsis. A trailing " area" suffix present before
// truncation is preserved after the ellipsis so the tier stays readable.
func Truncate(name string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}

	suffix := ""
	body := name
	if strings.HasSuffix(strings.ToLower(name), areaSuffix) {
		suffix = areaSuffix
		body = name[:len(name)-len(areaSuffix)]
	}

	budget := max - len([]rune("…")) - len([]rune(suffix))
	if budget < 1 {
		budget = 1
	}

	bodyRunes := []rune(body)
	if len(bodyRunes) > budget {
		bodyRunes = bodyRunes[:budget]
	}
	cut := string(bodyRunes)

	// Back up to the last word boundary so we never split a word in half.
	if i := strings.LastIndexAny(cut, " \t"); i > 0 {
		cut = cut[:i]
	}
	cut = strings.TrimRight(cut, " ,–-")
	if cut == "" {
		cut = string(bodyRunes)
	}

	return cut + "…" + suffix
}
