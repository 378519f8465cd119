package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display. A single
// multiplication usually finishes in nanoseconds, which is shown as "< 1µs";
// otherwise microseconds below a millisecond, milliseconds below a second,
// and the default string representation above.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Microsecond {
		return "< 1\u00b5s"
	} else if d < time.Millisecond {
		return fmt.Sprintf("%d\u00b5s", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
