package instrument

import "strings"

// ClampTimeframe returns the widget interval actually usable for a symbol.
// Unrestricted symbols get requested back untouched. Restricted symbols keep
// D, W or M (case-insensitive) and otherwise fall back to DefaultTimeframe.
// substituted is true whenever the effective value differs from requested.
func ClampTimeframe(requested string, limitedTimeframes bool) (effective string, substituted bool) {
	if !limitedTimeframes {
		return requested, false
	}
	upper := strings.ToUpper(strings.TrimSpace(requested))
	if _, ok := coarseTimeframes[upper]; ok {
		return upper, upper != requested
	}
	return DefaultTimeframe, DefaultTimeframe != requested
}

// ChartInterval converts a dashboard timeframe button ("15M", "1H", "1MO") to
// the widget's interval token ("15", "60", "M"). Values that already look like
// widget tokens are returned as is, and unknown values fall back to "60".
func ChartInterval(timeframe string) string {
	tf := strings.ToUpper(strings.TrimSpace(timeframe))
	if iv, ok := chartIntervals[tf]; ok {
		return iv
	}
	if _, ok := coarseTimeframes[tf]; ok {
		return tf
	}
	if tf != "" && strings.Trim(tf, "0123456789") == "" {
		return tf
	}
	return "60"
}
