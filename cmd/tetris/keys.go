package main

import (
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyCode translates an ebiten key into its KeyboardEvent.code name. Ebiten
// names letters by the bare letter and everything else the same way the web
// does.
func keyCode(k ebiten.Key) string {
	name := k.String()
	if len(name) == 1 && unicode.IsLetter(rune(name[0])) {
		return "Key" + name
	}
	return name
}

// keyRepeat emulates key auto-repeat for held keys, counted in ticks.
type keyRepeat struct {
	delay int
	rate  int
}

// fires reports whether a key held for the given number of ticks repeats now.
// The first tick is the initial press and never counts as a repeat.
func (r keyRepeat) fires(held int) bool {
	if held <= r.delay {
		return false
	}
	return (held-r.delay)%r.rate == 0
}
