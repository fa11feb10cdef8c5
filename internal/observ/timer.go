// Package observ provides lightweight wall-clock timing for the expansion
// pipeline.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase is one timed stretch of the pipeline.
type Phase struct {
	Name  string
	Dur   time.Duration
	Files int // files processed during the phase, 0 when not applicable
}

// Timer collects phase durations for one command invocation. Not safe for
// concurrent use; time whole phases, not per-file work.
type Timer struct {
	phases []Phase
}

func NewTimer() *Timer {
	return &Timer{phases: make([]Phase, 0, 4)}
}

// Start begins timing a phase. The returned stop function records the
// elapsed time along with how many files the phase covered.
func (t *Timer) Start(name string) func(files int) {
	began := time.Now()
	return func(files int) {
		t.phases = append(t.phases, Phase{
			Name:  name,
			Dur:   time.Since(began),
			Files: files,
		})
	}
}

// Summary renders the recorded phases as a human-readable block.
func (t *Timer) Summary() string {
	if len(t.phases) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("timings:\n")
	var total time.Duration
	for _, p := range t.phases {
		total += p.Dur
		fmt.Fprintf(&b, "  %-12s %8.2f ms", p.Name, millis(p.Dur))
		if p.Files > 0 {
			fmt.Fprintf(&b, "  (%d files)", p.Files)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-12s %8.2f ms\n", "total", millis(total))
	return b.String()
}

// PhaseReport is the serializable form of one phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Files      int     `json:"files,omitempty"`
}

// Report aggregates the recorded phases for JSON output.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	report := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, p := range t.phases {
		total += p.Dur
		report.Phases[i] = PhaseReport{
			Name:       p.Name,
			DurationMS: millis(p.Dur),
			Files:      p.Files,
		}
	}
	report.TotalMS = millis(total)
	return report
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
