package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressBar(t *testing.T) {
	cases := []struct {
		done, total int
		wantPct     string
		wantFilled  int
	}{
		{0, 0, "  0%", 0},
		{1, 3, " 33%", 3},
		{3, 3, "100%", 10},
	}
	for _, tc := range cases {
		got := ProgressBar(tc.done, tc.total, 10)
		if !strings.HasSuffix(got, tc.wantPct) {
			t.Fatalf("ProgressBar(%d,%d) = %q, want suffix %q", tc.done, tc.total, got, tc.wantPct)
		}
		if n := strings.Count(got, "█"); n != tc.wantFilled {
			t.Fatalf("ProgressBar(%d,%d) filled = %d, want %d", tc.done, tc.total, n, tc.wantFilled)
		}
	}
}

func TestProgressBarMinimumWidth(t *testing.T) {
	got := ProgressBar(0, 4, 1)
	if n := strings.Count(got, "░"); n != 5 {
		t.Fatalf("width clamped to %d, want 5", n)
	}
}

func TestSetThemeFallsBackToClassic(t *testing.T) {
	SetTheme("unknown")
	if Current().Name != "classic" {
		t.Fatalf("theme = %q, want classic", Current().Name)
	}
	SetTheme("MONO")
	if Current().BoxChecked != "[x]" {
		t.Fatalf("mono box = %q", Current().BoxChecked)
	}
	SetTheme("classic")
}

func TestIsTheme(t *testing.T) {
	if !IsTheme(" Neon") {
		t.Fatalf("neon should be a theme")
	}
	if IsTheme("solarized") {
		t.Fatalf("solarized is not a theme")
	}
}

func TestPanelFramesLines(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")
	var buf bytes.Buffer
	Panel(&buf, []string{"hello", "world"})
	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "world") {
		t.Fatalf("panel missing content:\n%s", out)
	}
	if !strings.HasPrefix(out, "┌") {
		t.Fatalf("panel should start with a border corner:\n%s", out)
	}
}

func TestStatusLines(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")
	var buf bytes.Buffer
	OK(&buf, "done")
	Fail(&buf, "broken")
	if got := buf.String(); got != "✔ done\n✖ broken\n" {
		t.Fatalf("status output = %q", got)
	}
}
