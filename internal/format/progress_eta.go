package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// ProgressState tracks fractional progress (0.0..1.0) for a fixed number of
// concurrently running batch workers, so a caller can report one combined
// average instead of per-worker numbers.
type ProgressState struct {
	mu             sync.Mutex
	numCalculators int
	progresses     []float64
}

// NewProgressState allocates a ProgressState for n workers, all starting at
// zero progress.
func NewProgressState(n int) *ProgressState {
	return &ProgressState{
		numCalculators: n,
		progresses:     make([]float64, n),
	}
}

// Update records worker idx's progress. Out-of-range indices are ignored
// rather than panicking, since a stray late update from a worker that has
// already finished should not crash the reporting side.
func (ps *ProgressState) Update(idx int, progress float64) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if idx < 0 || idx >= len(ps.progresses) {
		return
	}
	ps.progresses[idx] = progress
}

// CalculateAverage returns the mean progress across all workers, or 0 if
// there are none.
func (ps *ProgressState) CalculateAverage() float64 {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if len(ps.progresses) == 0 {
		return 0
	}
	var sum float64
	for _, p := range ps.progresses {
		sum += p
	}
	return sum / float64(len(ps.progresses))
}

// ProgressWithETA layers an estimated-time-remaining calculation on top of
// ProgressState, tracking the rate of change of the average progress
// between successive updates.
type ProgressWithETA struct {
	*ProgressState
	mu           sync.Mutex
	startTime    time.Time
	lastAvg      float64
	lastTime     time.Time
	progressRate float64 // fraction of the job completed per second
}

// NewProgressWithETA allocates a ProgressWithETA for n workers.
func NewProgressWithETA(n int) *ProgressWithETA {
	return &ProgressWithETA{
		ProgressState: NewProgressState(n),
		startTime:     time.Now(),
	}
}

// UpdateWithETA records worker idx's progress and returns the new overall
// average along with the current ETA estimate.
func (p *ProgressWithETA) UpdateWithETA(idx int, progress float64) (float64, time.Duration) {
	p.Update(idx, progress)
	avg := p.CalculateAverage()

	now := time.Now()
	p.mu.Lock()
	if !p.lastTime.IsZero() {
		dt := now.Sub(p.lastTime).Seconds()
		if dt > 0 {
			if rate := (avg - p.lastAvg) / dt; rate > 0 {
				p.progressRate = rate
			}
		}
	}
	p.lastAvg = avg
	p.lastTime = now
	p.mu.Unlock()

	return avg, p.GetETA()
}

// maxETA caps the reported ETA so a near-zero progress rate does not render
// as an absurd duration.
const maxETA = 24 * time.Hour

// GetETA estimates the time remaining at the most recently observed
// progress rate. It returns 0 when there is not yet enough data to
// extrapolate a rate.
func (p *ProgressWithETA) GetETA() time.Duration {
	p.mu.Lock()
	rate := p.progressRate
	p.mu.Unlock()
	if rate <= 0 {
		return 0
	}

	avg := p.CalculateAverage()
	remaining := 1.0 - avg
	if remaining < 0 {
		remaining = 0
	}

	eta := time.Duration(remaining / rate * float64(time.Second))
	if eta > maxETA {
		eta = maxETA
	}
	return eta
}

// FormatETA renders an ETA duration the way a progress display would:
// "calculating..." until there's a usable estimate, then an hms breakdown.
func FormatETA(d time.Duration) string {
	if d <= 0 {
		return "calculating..."
	}
	if d < time.Second {
		return "< 1s"
	}

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// ProgressBar renders progress (clamped to [0,1]) as a block/shade bar of
// the given character length.
func ProgressBar(progress float64, length int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(length))
	if filled > length {
		filled = length
	}

	var b strings.Builder
	for i := 0; i < filled; i++ {
		b.WriteRune('█')
	}
	for i := filled; i < length; i++ {
		b.WriteRune('░')
	}
	return b.String()
}

// FormatProgressBarWithETA combines a progress bar, percentage, and ETA
// into one line suitable for a batch-evaluation status display.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %.1f%% ETA: %s", ProgressBar(progress, width), progress*100, FormatETA(eta))
}

// FormatNumberString inserts thousands separators into a decimal digit
// string, preserving an optional leading sign.
func FormatNumberString(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	n := len(s)
	var grouped string
	if n <= 3 {
		grouped = s
	} else {
		var b strings.Builder
		rem := n % 3
		if rem > 0 {
			b.WriteString(s[:rem])
			b.WriteString(",")
		}
		for i := rem; i < n; i += 3 {
			b.WriteString(s[i : i+3])
			if i+3 < n {
				b.WriteString(",")
			}
		}
		grouped = b.String()
	}

	if neg {
		return "-" + grouped
	}
	return grouped
}
