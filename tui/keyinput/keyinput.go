package keyinput

import (
	"slices"
	"strings"

	"linkpad/tui/message"
	"linkpad/tui/mode"
)

// FocusedComponent represents any UI component that can report whether
// it currently has focus.
// Used to check if input should be directed to it.
type FocusedComponent interface {
	Focused() bool
}

// KeyBinding represents one or more keys that trigger a specific action.
// A binding made of several space separated keys is a sequence,
// e.g. "ctrl+w l".
type KeyBinding struct {
	keys []string
}

// KeyBindings is a constructor that creates a KeyBinding from a list of keys.
func KeyBindings(keys ...string) KeyBinding {
	return KeyBinding{keys: keys}
}

// KeyAction is a set of of key bindings with one or more conditions
// under which the action can be triggered
type KeyAction struct {
	Bindings KeyBinding
	Cond     []KeyCondition
}

// KeyCondition represents the conditions under which a key action
// should be triggered. It specifies the required mode, the UI components
// of which one must be focused, and the action function to execute when
// matched. Without components the condition holds for any focus.
type KeyCondition struct {
	Mode       mode.Mode
	Components []FocusedComponent
	Action     func() message.StatusBarMsg
}

// Matches checks if the condition holds in mode m
func (kc KeyCondition) Matches(m mode.Mode) bool {
	if kc.Mode != m {
		return false
	}

	if len(kc.Components) == 0 {
		return true
	}

	for _, c := range kc.Components {
		if c.Focused() {
			return true
		}
	}

	return false
}

// Input represents the state of the input handler: the pending key
// sequence, the current mode and all configured key actions.
type Input struct {
	KeySequence string
	Mode        mode.Mode
	Functions   []KeyAction
}

// New creates and returns a new Input instance with default state.
func New() *Input {
	return &Input{
		Mode:      mode.Normal,
		Functions: []KeyAction{},
	}
}

// HandleSequences processes an incoming key string and runs the action
// bound to it. It reports whether the key was consumed, either by an
// action or as the start of a sequence.
func (ki *Input) HandleSequences(key string) (message.StatusBarMsg, bool) {
	if key == "esc" && ki.KeySequence != "" {
		ki.ResetKeysDown()
		return message.StatusBarMsg{}, true
	}

	binding := key
	if ki.KeySequence != "" {
		binding = ki.KeySequence + " " + key
	}

	if action := ki.matchAction(binding); action != nil {
		ki.ResetKeysDown()
		return action(), true
	}

	if ki.isSequencePrefix(binding) {
		ki.KeySequence = binding
		return message.StatusBarMsg{}, true
	}

	// an unfinished sequence followed by an unrelated key starts over
	if ki.KeySequence != "" {
		ki.ResetKeysDown()
		return ki.HandleSequences(key)
	}

	return message.StatusBarMsg{}, false
}

// matchAction returns the first action bound to binding whose
// condition holds
func (ki *Input) matchAction(binding string) func() message.StatusBarMsg {
	for _, action := range ki.Functions {
		if !slices.Contains(action.Bindings.keys, binding) {
			continue
		}

		for _, cond := range action.Cond {
			if cond.Matches(ki.Mode) {
				return cond.Action
			}
		}
	}

	return nil
}

// isSequencePrefix returns whether binding starts a longer sequence
// that is currently available
func (ki *Input) isSequencePrefix(binding string) bool {
	prefix := binding + " "

	for _, action := range ki.Functions {
		for _, key := range action.Bindings.keys {
			if !strings.HasPrefix(key, prefix) {
				continue
			}

			for _, cond := range action.Cond {
				if cond.Matches(ki.Mode) {
					return true
				}
			}
		}
	}

	return false
}

// ResetKeysDown clears the current key sequence.
func (ki *Input) ResetKeysDown() {
	ki.KeySequence = ""
}
