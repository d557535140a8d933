package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chosenoffset.com/spaceshooter/internal/render"
)

// EbitenInputManager implements the InputManager interface using Ebiten's
// standard gamepad layout.
type EbitenInputManager struct {
	ids []ebiten.GamepadID
}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// GamepadIDs returns the connected gamepads that expose a standard layout.
func (m *EbitenInputManager) GamepadIDs() []render.GamepadID {
	m.ids = ebiten.AppendGamepadIDs(m.ids[:0])

	out := make([]render.GamepadID, 0, len(m.ids))
	for _, id := range m.ids {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			out = append(out, render.GamepadID(id))
		}
	}
	return out
}

// GamepadAxisValue returns the axis value in [-1, 1].
func (m *EbitenInputManager) GamepadAxisValue(id render.GamepadID, axis render.GamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(ebiten.GamepadID(id), axisToEbiten(axis))
}

// IsGamepadButtonPressed returns whether the button is currently held.
func (m *EbitenInputManager) IsGamepadButtonPressed(id render.GamepadID, button render.GamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(ebiten.GamepadID(id), buttonToEbiten(button))
}

// IsGamepadButtonJustPressed returns whether the button went down this tick.
func (m *EbitenInputManager) IsGamepadButtonJustPressed(id render.GamepadID, button render.GamepadButton) bool {
	return inpututil.IsStandardGamepadButtonJustPressed(ebiten.GamepadID(id), buttonToEbiten(button))
}

// GetCursorPosition returns the current cursor position.
func (m *EbitenInputManager) GetCursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// IsMouseButtonJustPressed returns whether the mouse button went down this tick.
func (m *EbitenInputManager) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(mouseButtonToEbiten(button))
}

// buttonToEbiten converts a render.GamepadButton to its standard layout button.
func buttonToEbiten(button render.GamepadButton) ebiten.StandardGamepadButton {
	switch button {
	case render.GamepadButtonSouth:
		return ebiten.StandardGamepadButtonRightBottom
	case render.GamepadButtonEast:
		return ebiten.StandardGamepadButtonRightRight
	case render.GamepadButtonRightTrigger2:
		return ebiten.StandardGamepadButtonFrontBottomRight
	default:
		return ebiten.StandardGamepadButtonRightBottom
	}
}

// axisToEbiten converts a render.GamepadAxis to its standard layout axis.
func axisToEbiten(axis render.GamepadAxis) ebiten.StandardGamepadAxis {
	switch axis {
	case render.GamepadAxisLeftStickX:
		return ebiten.StandardGamepadAxisLeftStickHorizontal
	case render.GamepadAxisLeftStickY:
		return ebiten.StandardGamepadAxisLeftStickVertical
	case render.GamepadAxisRightStickX:
		return ebiten.StandardGamepadAxisRightStickHorizontal
	case render.GamepadAxisRightStickY:
		return ebiten.StandardGamepadAxisRightStickVertical
	default:
		return ebiten.StandardGamepadAxisLeftStickHorizontal
	}
}

// mouseButtonToEbiten converts a render.MouseButton to an ebiten.MouseButton.
// Only the left button is mapped.
func mouseButtonToEbiten(render.MouseButton) ebiten.MouseButton {
	return ebiten.MouseButtonLeft
}
