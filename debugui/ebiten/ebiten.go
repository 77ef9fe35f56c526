// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetris/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation
// and runs an Overlay inside each frame.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
	Overlay *debugui.Overlay
}

// NewImguiBackend creates the backend and sizes the window. The host keeps
// ownership of ebiten.RunGame.
func NewImguiBackend(title string, width, height int, overlay *debugui.Overlay) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend, Overlay: overlay}
}

// Update renders the overlay's items into a new imgui frame.
func (b *ImguiBackend) Update() {
	b.BeginFrame()
	b.Overlay.Execute()
	b.EndFrame()
}

// Draw composites the imgui frame over screen when the overlay is visible.
func (b *ImguiBackend) Draw(screen *ebiten.Image) {
	if b.Overlay.Visible {
		b.EbitenBackend.Draw(screen)
	}
}
