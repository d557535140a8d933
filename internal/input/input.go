// Package input turns raw device state into a per-frame snapshot the game
// rules read. Nothing here talks to the window backend directly.
package input

import (
	"math"

	"chosenoffset.com/spaceshooter/internal/geom"
)

// Button identifies a gamepad button by its position on a standard layout.
type Button uint8

const (
	ButtonSouth         Button = 1 << iota // Bottom face button
	ButtonEast                             // Right face button (restart)
	ButtonRightTrigger2                    // Right analog trigger (fire)
)

// String returns a readable button name
func (b Button) String() string {
	switch b {
	case ButtonSouth:
		return "South"
	case ButtonEast:
		return "East"
	case ButtonRightTrigger2:
		return "RightTrigger2"
	default:
		return "Unknown"
	}
}

// Pad is the state of one connected gamepad for the current frame. Stick
// vectors are y-up and have the deadzone already applied.
type Pad struct {
	ID          int
	LeftStick   geom.Vec2
	RightStick  geom.Vec2
	pressed     Button
	justPressed Button
}

// NewPad builds a pad snapshot from button bitmasks.
func NewPad(id int, left, right geom.Vec2, pressed, justPressed Button) Pad {
	return Pad{
		ID:          id,
		LeftStick:   left,
		RightStick:  right,
		pressed:     pressed,
		justPressed: justPressed,
	}
}

// Pressed reports whether b is held this frame
func (p Pad) Pressed(b Button) bool {
	return p.pressed&b != 0
}

// JustPressed reports whether b went down this frame
func (p Pad) JustPressed(b Button) bool {
	return p.justPressed&b != 0
}

// Frame is everything the rules may read from input devices in one update.
type Frame struct {
	Pads []Pad

	// Cursor position in screen pixels and the logical screen size, used to
	// convert clicks to world coordinates.
	CursorX, CursorY int
	ScreenW, ScreenH int
	MouseJustPressed bool
}

// Single returns the only connected pad. It reports false when zero or
// several pads are connected.
func (f Frame) Single() (Pad, bool) {
	if len(f.Pads) != 1 {
		return Pad{}, false
	}
	return f.Pads[0], true
}

// AnyPressed reports whether any connected pad holds b
func (f Frame) AnyPressed(b Button) bool {
	for _, p := range f.Pads {
		if p.Pressed(b) {
			return true
		}
	}
	return false
}

// CursorWorld converts the cursor position to world coordinates for a camera
// centered on the origin.
func (f Frame) CursorWorld() geom.Vec2 {
	return geom.Vec2{
		X: float64(f.CursorX) - float64(f.ScreenW)/2,
		Y: float64(f.ScreenH)/2 - float64(f.CursorY),
	}
}

// Source produces one Frame per update
type Source interface {
	Poll() Frame
}

// ApplyDeadzone zeroes an axis value whose magnitude is within deadzone and
// rescales the rest so output still spans [-1, 1].
func ApplyDeadzone(v, deadzone float64) float64 {
	a := math.Abs(v)
	if a <= deadzone {
		return 0
	}
	if a > 1 {
		a = 1
	}
	scaled := (a - deadzone) / (1 - deadzone)
	return math.Copysign(scaled, v)
}
