package tetris

// KeyboardControls binds the four game inputs to key codes. Codes follow the W3C
// KeyboardEvent.code names ("ArrowLeft", "KeyA", "Space"); hosts translate their
// native key identifiers into these names.
type KeyboardControls struct {
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Rotate string `yaml:"rotate"`
	Down   string `yaml:"down"`
}

// ArrowControls is the default binding.
func ArrowControls() KeyboardControls {
	return KeyboardControls{Left: "ArrowLeft", Right: "ArrowRight", Rotate: "ArrowUp", Down: "ArrowDown"}
}

// LetterControls binds WASD.
func LetterControls() KeyboardControls {
	return KeyboardControls{Left: "KeyA", Right: "KeyD", Rotate: "KeyW", Down: "KeyS"}
}

// Action is a logical input.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionRotate
	ActionSoftDropOn
	ActionSoftDropOff
)

var actionNames = [...]string{"none", "move-left", "move-right", "rotate", "soft-drop-on", "soft-drop-off"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// InputMapper turns key presses and releases into actions. The down binding is a
// held state: only its press and release edges produce actions.
type InputMapper struct {
	controls KeyboardControls
	downHeld bool
}

// NewInputMapper creates a mapper for the given bindings.
func NewInputMapper(controls KeyboardControls) *InputMapper {
	return &InputMapper{controls: controls}
}

// Controls returns the active bindings.
func (m *InputMapper) Controls() KeyboardControls {
	return m.controls
}

// SetControls rebinds the keys and releases a held soft-drop.
func (m *InputMapper) SetControls(controls KeyboardControls) {
	m.controls = controls
	m.downHeld = false
}

// DownHeld reports whether the down binding is currently held.
func (m *InputMapper) DownHeld() bool {
	return m.downHeld
}

// Hold sets the held state of the down binding without a key event.
func (m *InputMapper) Hold(held bool) {
	m.downHeld = held
}

// Press maps a key press.
func (m *InputMapper) Press(code string) (Action, bool) {
	switch code {
	case "":
		return ActionNone, false
	case m.controls.Left:
		return ActionMoveLeft, true
	case m.controls.Right:
		return ActionMoveRight, true
	case m.controls.Rotate:
		return ActionRotate, true
	case m.controls.Down:
		if m.downHeld {
			return ActionNone, false
		}
		m.downHeld = true
		return ActionSoftDropOn, true
	}
	return ActionNone, false
}

// Release maps a key release. Only the down binding reacts.
func (m *InputMapper) Release(code string) (Action, bool) {
	if code == "" || code != m.controls.Down || !m.downHeld {
		return ActionNone, false
	}
	m.downHeld = false
	return ActionSoftDropOff, true
}

// Reset forgets the held state.
func (m *InputMapper) Reset() {
	m.downHeld = false
}
