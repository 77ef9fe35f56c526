package main

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

var namedKeys = map[tcell.Key]string{
	tcell.KeyLeft:       "ArrowLeft",
	tcell.KeyRight:      "ArrowRight",
	tcell.KeyUp:         "ArrowUp",
	tcell.KeyDown:       "ArrowDown",
	tcell.KeyEnter:      "Enter",
	tcell.KeyEscape:     "Escape",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyTab:        "Tab",
	tcell.KeyHome:       "Home",
	tcell.KeyEnd:        "End",
	tcell.KeyPgUp:       "PageUp",
	tcell.KeyPgDn:       "PageDown",
	tcell.KeyInsert:     "Insert",
	tcell.KeyDelete:     "Delete",
}

// keyCode translates a terminal key event into a KeyboardEvent.code name.
func keyCode(ev *tcell.EventKey) (string, bool) {
	if ev.Key() != tcell.KeyRune {
		code, ok := namedKeys[ev.Key()]
		return code, ok
	}

	r := ev.Rune()
	switch {
	case r == ' ':
		return "Space", true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return "Key" + string(unicode.ToUpper(r)), true
	case r >= '0' && r <= '9':
		return "Digit" + string(r), true
	}
	return "", false
}

// softDropReleaser turns a stream of repeated presses into one press and one
// release.
type softDropReleaser struct {
	timeout time.Duration
	held    bool
	last    time.Duration
}

// press records a press at now and reports whether it starts a new hold.
func (r *softDropReleaser) press(now time.Duration) bool {
	r.last = now
	if r.held {
		return false
	}
	r.held = true
	return true
}

// expired reports, once, that no repeat arrived within the timeout.
func (r *softDropReleaser) expired(now time.Duration) bool {
	if !r.held || now-r.last < r.timeout {
		return false
	}
	r.held = false
	return true
}
