package teatour

import (
	"regexp"
	"strings"
	"testing"

	"github.com/usherkit/usher/pkg/tour/layout"
)

func stripANSI(s string) string {
	re := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return re.ReplaceAllString(s, "")
}

func TestSpliceLine(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		layer string
		left  int
		want  string
	}{
		{"middle", "abcdefghij", "XY", 4, "abcdXYghij"},
		{"start", "abcdefghij", "XY", 0, "XYcdefghij"},
		{"end", "abcdefghij", "XY", 8, "abcdefghXY"},
		{"past end", "abc", "XY", 6, "abc   XY"},
		{"empty base", "", "XY", 3, "   XY"},
		{"overhang", "abcdef", "WXYZ", 4, "abcdWXYZ"},
		{"negative left", "abcdef", "XY", -2, "XYcdef"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := spliceLine(tc.base, tc.layer, tc.left)
			if got != tc.want {
				t.Errorf("spliceLine(%q, %q, %d) = %q, want %q",
					tc.base, tc.layer, tc.left, got, tc.want)
			}
		})
	}
}

func TestOverlayAt(t *testing.T) {
	base := strings.Join([]string{
		"..........",
		"..........",
		"..........",
	}, "\n")

	got := overlayAt(base, "AB\nCD", 3, 1)
	want := strings.Join([]string{
		"..........",
		"...AB.....",
		"...CD.....",
	}, "\n")
	if got != want {
		t.Errorf("overlayAt:\n%s\nwant:\n%s", got, want)
	}
}

func TestOverlayAtExtendsBase(t *testing.T) {
	got := overlayAt("top", "XX", 0, 2)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[2] != "XX" {
		t.Errorf("appended row = %q, want %q", lines[2], "XX")
	}
}

func TestOverlayAtSkipsEmptyLayerLines(t *testing.T) {
	base := "aaaa\nbbbb"
	got := overlayAt(base, "X\n\nY", 1, 0)
	want := "aXaa\nbbbb\n Y"
	if got != want {
		t.Errorf("overlayAt = %q, want %q", got, want)
	}
}

func TestDrawRing(t *testing.T) {
	base := strings.Join([]string{
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
	}, "\n")

	got := stripANSI(drawRing(base, layout.Rect{Left: 2, Top: 1, Width: 5, Height: 3}))
	want := strings.Join([]string{
		"..........",
		"..┌───┐...",
		"..│...│...",
		"..└───┘...",
		"..........",
	}, "\n")
	if got != want {
		t.Errorf("drawRing:\n%s\nwant:\n%s", got, want)
	}
}

func TestDrawRingSkipsTinyHoles(t *testing.T) {
	base := "....\n...."
	if got := drawRing(base, layout.Rect{Left: 1, Top: 0, Width: 1, Height: 2}); got != base {
		t.Errorf("ring drawn on a one-cell-wide hole: %q", got)
	}
}
