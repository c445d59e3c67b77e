package component

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/overworld/state"
)

// View is a drawable, interactive UI tree. *ebitenui.UI satisfies it.
type View interface {
	Update()
	Draw(screen *ebiten.Image)
}

// ModalOverlay is the on-screen entity of one Modal value.
type ModalOverlay struct {
	Modal state.Modal
	View  View
}

var ModalOverlayComponent = NewComponent[ModalOverlay]()

// ScreenScoped entities are despawned when their screen is exited.
type ScreenScoped struct {
	Screen state.Screen
}

var ScreenScopedComponent = NewComponent[ScreenScoped]()
