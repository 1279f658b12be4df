package core

import (
	"fmt"
	"sort"
	"strings"
)

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - hop up
	ActionDown           // S, Down arrow - hop down
	ActionLeft           // A, Left arrow - hop left
	ActionRight          // D, Right arrow - hop right
	ActionConfirm        // Enter - confirm selection
	ActionBack           // B, Escape - leave the game
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// actionNames doubles as the script vocabulary accepted by ParseAction.
var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ParseAction maps a key name to an action. Browser-style arrow names
// ("ArrowUp") are accepted alongside the action names ("up").
func ParseAction(name string) (Action, error) {
	n := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "Arrow"))
	for a, s := range actionNames {
		if a != ActionNone && strings.ToLower(s) == n {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("core: unknown key %q", name)
}

// InputFrame represents the set of actions held during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame holding the given actions.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// List returns the held actions in a stable order.
func (f InputFrame) List() []Action {
	out := make([]Action, 0, len(f.Actions))
	for a, held := range f.Actions {
		if held {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseScript reads a comma-separated list of per-tick frames. Keys held in
// the same tick are joined with '+'; an empty entry or "-" is an idle tick.
//
//	"up,,-,left+up"  ->  [{Up} {} {} {Left Up}]
func ParseScript(script string) ([]InputFrame, error) {
	if strings.TrimSpace(script) == "" {
		return nil, nil
	}

	parts := strings.Split(script, ",")
	frames := make([]InputFrame, 0, len(parts))
	for i, part := range parts {
		frame := NewInputFrame()
		part = strings.TrimSpace(part)
		if part != "" && part != "-" {
			for _, key := range strings.Split(part, "+") {
				a, err := ParseAction(key)
				if err != nil {
					return nil, fmt.Errorf("tick %d: %w", i, err)
				}
				frame.Set(a)
			}
		}
		frames = append(frames, frame)
	}
	return frames, nil
}
