package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// maxETA caps estimates so a stalled rate never prints absurd values.
const maxETA = 24 * time.Hour

// ProgressWithETA tracks completion of a fixed amount of work, such as the
// operand pairs of an exhaustive verification, and estimates the time left.
// It is safe for concurrent use.
type ProgressWithETA struct {
	mu        sync.Mutex
	total     uint64
	done      uint64
	startTime time.Time
	now       func() time.Time
}

// NewProgressWithETA returns a tracker for total units of work. The clock
// starts immediately.
func NewProgressWithETA(total uint64) *ProgressWithETA {
	return newProgressWithClock(total, time.Now)
}

func newProgressWithClock(total uint64, now func() time.Time) *ProgressWithETA {
	return &ProgressWithETA{total: total, startTime: now(), now: now}
}

// Update records done completed units (clamped to the total) and returns
// the completed fraction and the estimated time remaining.
func (p *ProgressWithETA) Update(done uint64) (float64, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done = min(done, p.total)
	return p.fraction(), p.eta()
}

// Fraction returns the completed fraction in [0, 1]. Zero work is complete.
func (p *ProgressWithETA) Fraction() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fraction()
}

// GetETA returns the current estimate, or 0 while no rate is known yet.
func (p *ProgressWithETA) GetETA() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.eta()
}

func (p *ProgressWithETA) fraction() float64 {
	if p.total == 0 {
		return 1
	}
	return float64(p.done) / float64(p.total)
}

func (p *ProgressWithETA) eta() time.Duration {
	if p.done == 0 || p.done >= p.total {
		return 0
	}
	elapsed := p.now().Sub(p.startTime)
	if elapsed <= 0 {
		return 0
	}
	perUnit := float64(elapsed) / float64(p.done)
	remaining := perUnit * float64(p.total-p.done)
	if remaining >= float64(maxETA) {
		return maxETA
	}
	return time.Duration(remaining)
}

// FormatETA renders an estimate compactly: "45s", "2m30s", "1h15m".
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m := int(eta.Minutes())
		if s := int(eta.Seconds()) % 60; s > 0 {
			return fmt.Sprintf("%dm%ds", m, s)
		}
		return fmt.Sprintf("%dm", m)
	default:
		h := int(eta.Hours())
		if m := int(eta.Minutes()) % 60; m > 0 {
			return fmt.Sprintf("%dh%dm", h, m)
		}
		return fmt.Sprintf("%dh", h)
	}
}

// ProgressBar draws a bar of length cells; progress is clamped to [0, 1].
func ProgressBar(progress float64, length int) string {
	progress = max(0, min(progress, 1))
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA combines the percentage, the bar and the estimate.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("%6.2f%% [%s] ETA: %s", max(0, min(progress, 1))*100, ProgressBar(progress, width), FormatETA(eta))
}
