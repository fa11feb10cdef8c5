package observ

import (
	"strings"
	"testing"
)

func TestTimerRecordsPhases(t *testing.T) {
	timer := NewTimer()
	stop := timer.Start("expand")
	stop(3)

	report := timer.Report()
	if len(report.Phases) != 1 {
		t.Fatalf("expected 1 phase, got %d", len(report.Phases))
	}
	if report.Phases[0].Name != "expand" {
		t.Errorf("name = %q", report.Phases[0].Name)
	}
	if report.Phases[0].Files != 3 {
		t.Errorf("files = %d", report.Phases[0].Files)
	}
	if report.TotalMS < 0 {
		t.Errorf("total = %f", report.TotalMS)
	}
}

func TestTimerSummary(t *testing.T) {
	timer := NewTimer()
	if timer.Summary() != "" {
		t.Error("empty timer should render an empty summary")
	}

	stop := timer.Start("load")
	stop(0)
	summary := timer.Summary()
	if !strings.Contains(summary, "load") || !strings.Contains(summary, "total") {
		t.Errorf("summary missing phases:\n%s", summary)
	}
	if strings.Contains(summary, "(0 files)") {
		t.Errorf("zero file count should be omitted:\n%s", summary)
	}
}
