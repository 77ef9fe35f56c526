package settings

var keyCodes = func() map[string]bool {
	codes := map[string]bool{}
	for c := 'A'; c <= 'Z'; c++ {
		codes["Key"+string(c)] = true
	}
	for c := '0'; c <= '9'; c++ {
		codes["Digit"+string(c)] = true
		codes["Numpad"+string(c)] = true
	}
	for _, name := range []string{
		"ArrowLeft", "ArrowRight", "ArrowUp", "ArrowDown",
		"Space", "Enter", "Tab", "Backspace",
		"ShiftLeft", "ShiftRight", "ControlLeft", "ControlRight", "AltLeft", "AltRight",
		"Comma", "Period", "Slash", "Semicolon", "Quote", "Backquote", "Backslash",
		"BracketLeft", "BracketRight", "Minus", "Equal",
		"Home", "End", "PageUp", "PageDown", "Insert", "Delete",
	} {
		codes[name] = true
	}
	return codes
}()

// ValidKeyCode reports whether code is a KeyboardEvent.code name the hosts can
// produce.
func ValidKeyCode(code string) bool {
	return keyCodes[code]
}
