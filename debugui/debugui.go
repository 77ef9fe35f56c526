// Package debugui provides Dear ImGui inspector windows for a running engine.
// An Overlay collects render functions and is executed once per frame between
// the backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Hosts should not forward keys to the engine while WantCaptureKeyboard is set.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

type Overlay struct {
	Items      []ImguiItem
	InputState ImguiInputState
	Visible    bool
}

// Add registers a render function.
func (o *Overlay) Add(render func()) {
	o.Items = append(o.Items, ImguiItem{Render: render})
}

// Execute updates the input state and renders every item when visible.
func (o *Overlay) Execute() {
	if !o.Visible {
		o.InputState = ImguiInputState{}
		return
	}

	io := imgui.CurrentIO()
	o.InputState.WantCaptureMouse = io.WantCaptureMouse()
	o.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range o.Items {
		item.Render()
	}
}
