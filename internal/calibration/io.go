package calibration

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/agbru/fibcalc/internal/sysmon"
	"github.com/agbru/fibcalc/internal/ui"
)

// Profile is the on-disk cache of a prior calibration run, keyed by a
// coarse hardware fingerprint so a profile captured on one machine is not
// silently trusted on another. CPUPercent/MemPercent record system load at
// the time calibration ran, since a benchmark taken on a busy machine is a
// poor predictor of the threshold's steady-state performance.
type Profile struct {
	CPUCount   int       `json:"cpu_count"`
	Threshold  int       `json:"threshold"`
	At         time.Time `json:"at"`
	CPUPercent float64   `json:"cpu_percent"`
	MemPercent float64   `json:"mem_percent"`
}

// CaptureProfile builds a Profile for the given threshold, sampling current
// system load via sysmon so a later reader can judge whether the benchmark
// ran under contention.
func CaptureProfile(cpuCount, threshold int, at time.Time) Profile {
	s := sysmon.Sample()
	return Profile{
		CPUCount:   cpuCount,
		Threshold:  threshold,
		At:         at,
		CPUPercent: s.CPUPercent,
		MemPercent: s.MemPercent,
	}
}

// LoadProfile reads a cached calibration profile from path. A missing file
// is not an error: it simply means no cached profile exists yet.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveProfile writes p to path as indented JSON.
func SaveProfile(path string, p Profile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// PrintResults formats and prints a calibration run's per-threshold
// benchmark table.
func PrintResults(out io.Writer, results []result, best int) {
	fmt.Fprintf(out, "\n--- Calibration Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %sThreshold%s\t%sDuration%s\n", ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())
	fmt.Fprintf(tw, "  %s\t%s\n", strings.Repeat("─", 10), strings.Repeat("─", 14))
	for _, r := range results {
		highlight := ""
		if r.Threshold == best {
			highlight = fmt.Sprintf(" %s(optimal)%s", ui.ColorGreen(), ui.ColorReset())
		}
		fmt.Fprintf(tw, "  %s%-8d%s\t%s%s%s%s\n",
			ui.ColorCyan(), r.Threshold, ui.ColorReset(),
			ui.ColorYellow(), r.Duration, ui.ColorReset(), highlight)
	}
	tw.Flush()
}
