package input

import (
	"chosenoffset.com/spaceshooter/internal/geom"
	"chosenoffset.com/spaceshooter/internal/render"
)

var buttonMap = []struct {
	button Button
	pad    render.GamepadButton
}{
	{ButtonSouth, render.GamepadButtonSouth},
	{ButtonEast, render.GamepadButtonEast},
	{ButtonRightTrigger2, render.GamepadButtonRightTrigger2},
}

// ManagerSource polls a render.InputManager
type ManagerSource struct {
	mgr      render.InputManager
	deadzone float64
	screen   func() (int, int)
}

// NewManagerSource creates a Source backed by the renderer's input manager.
// screen reports the current logical screen size.
func NewManagerSource(mgr render.InputManager, deadzone float64, screen func() (int, int)) *ManagerSource {
	return &ManagerSource{mgr: mgr, deadzone: deadzone, screen: screen}
}

// Poll reads every connected gamepad and the mouse
func (s *ManagerSource) Poll() Frame {
	var f Frame
	for _, id := range s.mgr.GamepadIDs() {
		f.Pads = append(f.Pads, s.readPad(id))
	}

	f.CursorX, f.CursorY = s.mgr.GetCursorPosition()
	f.MouseJustPressed = s.mgr.IsMouseButtonJustPressed(render.MouseButtonLeft)
	if s.screen != nil {
		f.ScreenW, f.ScreenH = s.screen()
	}
	return f
}

func (s *ManagerSource) readPad(id render.GamepadID) Pad {
	axis := func(a render.GamepadAxis) float64 {
		return ApplyDeadzone(s.mgr.GamepadAxisValue(id, a), s.deadzone)
	}

	// Backend axes are y-down; world space is y-up.
	left := geom.V(axis(render.GamepadAxisLeftStickX), -axis(render.GamepadAxisLeftStickY))
	right := geom.V(axis(render.GamepadAxisRightStickX), -axis(render.GamepadAxisRightStickY))

	var pressed, just Button
	for _, m := range buttonMap {
		if s.mgr.IsGamepadButtonPressed(id, m.pad) {
			pressed |= m.button
		}
		if s.mgr.IsGamepadButtonJustPressed(id, m.pad) {
			just |= m.button
		}
	}

	return NewPad(int(id), left, right, pressed, just)
}
