package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/usherkit/usher/pkg/errors"
)

const validTour = `
id = "onboarding"

[config]
edge_padding = 3
tooltip_width = 50
show_buttons = true
dismiss_on_tap_outside = false
next_label = "Continue"

[[step]]
target = "sidebar"
title = "Your library"
description = "Everything you have imported lives here."
tag = "library"

[[step]]
target = "status"
title = "Status bar"
description = "Errors show up here."
`

func TestParse(t *testing.T) {
	tr, err := Parse([]byte(validTour))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if tr.ID != "onboarding" {
		t.Errorf("ID = %q, want onboarding", tr.ID)
	}
	if len(tr.Steps) != 2 {
		t.Fatalf("len(Steps) = %d, want 2", len(tr.Steps))
	}

	first := tr.Steps[0]
	if first.Target != "sidebar" || first.Title != "Your library" || first.Tag != "library" {
		t.Errorf("step 0 = %+v", first)
	}
	if tr.Steps[1].Tag != "" {
		t.Errorf("step 1 tag = %q, want empty (controller assigns the default)", tr.Steps[1].Tag)
	}

	// File settings fold over the defaults.
	if tr.Config.EdgePadding != 3 {
		t.Errorf("EdgePadding = %v, want 3", tr.Config.EdgePadding)
	}
	if tr.Config.InitialTooltipSize.Width != 50 {
		t.Errorf("tooltip width = %v, want 50", tr.Config.InitialTooltipSize.Width)
	}
	if tr.Config.InitialTooltipSize.Height != 8 {
		t.Errorf("tooltip height = %v, want default 8", tr.Config.InitialTooltipSize.Height)
	}
	if tr.Config.DismissOnTapOutside {
		t.Error("DismissOnTapOutside should be disabled by the file")
	}
	if tr.Config.NextLabel != "Continue" {
		t.Errorf("NextLabel = %q, want Continue", tr.Config.NextLabel)
	}
	if tr.Config.SkipLabel == "" {
		t.Error("SkipLabel should take the default")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode errors.Code
	}{
		{
			name:     "not toml",
			input:    "id = [unclosed",
			wantCode: errors.ErrCodeInvalidContent,
		},
		{
			name:     "missing id",
			input:    "[[step]]\ntarget = \"a\"\ntitle = \"A\"\n",
			wantCode: errors.ErrCodeInvalidTourID,
		},
		{
			name:     "no steps",
			input:    "id = \"empty\"\n",
			wantCode: errors.ErrCodeInvalidContent,
		},
		{
			name:     "step without target",
			input:    "id = \"t\"\n[[step]]\ntitle = \"A\"\n",
			wantCode: errors.ErrCodeInvalidContent,
		},
		{
			name:     "step without title",
			input:    "id = \"t\"\n[[step]]\ntarget = \"a\"\n",
			wantCode: errors.ErrCodeInvalidContent,
		},
		{
			name: "duplicate tags",
			input: "id = \"t\"\n" +
				"[[step]]\ntarget = \"a\"\ntitle = \"A\"\ntag = \"x\"\n" +
				"[[step]]\ntarget = \"b\"\ntitle = \"B\"\ntag = \"x\"\n",
			wantCode: errors.ErrCodeInvalidContent,
		},
		{
			name: "inescapable config",
			input: "id = \"t\"\n" +
				"[config]\nshow_buttons = false\ndismiss_on_tap_outside = false\n" +
				"[[step]]\ntarget = \"a\"\ntitle = \"A\"\n",
			wantCode: errors.ErrCodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tour.toml")
	if err := os.WriteFile(path, []byte(validTour), 0644); err != nil {
		t.Fatal(err)
	}

	tr, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if tr.ID != "onboarding" {
		t.Errorf("ID = %q, want onboarding", tr.ID)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("Load() succeeded, want error")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}
