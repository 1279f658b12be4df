package core

import (
	"slices"
	"testing"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name    string
		want    Action
		wantErr bool
	}{
		{"up", ActionUp, false},
		{"Left", ActionLeft, false},
		{"ArrowRight", ActionRight, false},
		{" down ", ActionDown, false},
		{"pause", ActionPause, false},
		{"none", ActionNone, true},
		{"jump", ActionNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAction(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAction(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAction(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseScript(t *testing.T) {
	frames, err := ParseScript("up,,-,left+ArrowUp")
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}

	want := [][]Action{
		{ActionUp},
		{},
		{},
		{ActionUp, ActionLeft},
	}
	if len(frames) != len(want) {
		t.Fatalf("got %d frames, want %d", len(frames), len(want))
	}
	for i, f := range frames {
		if got := f.List(); !slices.Equal(got, want[i]) {
			t.Errorf("frame %d = %v, want %v", i, got, want[i])
		}
	}
}

func TestParseScriptEmpty(t *testing.T) {
	frames, err := ParseScript("  ")
	if err != nil || frames != nil {
		t.Errorf("ParseScript(blank) = %v, %v", frames, err)
	}
}

func TestParseScriptUnknownKey(t *testing.T) {
	if _, err := ParseScript("up,fly"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := FrameOf(ActionUp, ActionPause)
	c := f.Clone()
	f.Clear()

	if f.Has(ActionUp) {
		t.Error("Clear() left actions behind")
	}
	if !c.Has(ActionUp) || !c.Has(ActionPause) {
		t.Error("Clone() should not share state")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should hold nothing")
	}
	zero.Set(ActionDown)
	if !zero.Has(ActionDown) {
		t.Error("Set() on zero frame failed")
	}
}
