package tui

// sparklineChars maps values 0..7 to Unicode block elements ▁▂▃▄▅▆▇█.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline scales values between their minimum and maximum onto
// block elements. A flat series renders at the lowest level.
func RenderSparkline(values []int64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	runes := make([]rune, len(values))
	for i, v := range values {
		idx := 0
		if hi > lo {
			idx = int(float64(v-lo) / float64(hi-lo) * 7.0)
		}
		runes[i] = sparklineChars[min(idx, 7)]
	}
	return string(runes)
}
