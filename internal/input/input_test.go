package input

import (
	"math"
	"testing"

	"chosenoffset.com/spaceshooter/internal/geom"
	"chosenoffset.com/spaceshooter/internal/render"
)

func TestApplyDeadzone(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.0, 0.0},
		{0.04, 0.0},
		{-0.05, 0.0},
		{1.0, 1.0},
		{-1.0, -1.0},
		{1.3, 1.0},
		{0.525, 0.5},
	}

	for _, tt := range tests {
		got := ApplyDeadzone(tt.in, 0.05)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ApplyDeadzone(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestPadButtons(t *testing.T) {
	p := NewPad(0, geom.Vec2{}, geom.Vec2{}, ButtonRightTrigger2|ButtonSouth, ButtonEast)

	if !p.Pressed(ButtonRightTrigger2) || !p.Pressed(ButtonSouth) {
		t.Error("Expected trigger and south pressed")
	}
	if p.Pressed(ButtonEast) {
		t.Error("Expected east not held")
	}
	if !p.JustPressed(ButtonEast) {
		t.Error("Expected east just pressed")
	}
}

func TestFrameSingle(t *testing.T) {
	var f Frame
	if _, ok := f.Single(); ok {
		t.Error("Expected no single pad with zero pads")
	}

	f.Pads = []Pad{{ID: 3}}
	if p, ok := f.Single(); !ok || p.ID != 3 {
		t.Errorf("Expected pad 3, got %+v (ok=%v)", p, ok)
	}

	f.Pads = append(f.Pads, Pad{ID: 4})
	if _, ok := f.Single(); ok {
		t.Error("Expected no single pad with two pads")
	}
}

func TestCursorWorld(t *testing.T) {
	f := Frame{CursorX: 640, CursorY: 360, ScreenW: 1280, ScreenH: 720}
	if got := f.CursorWorld(); got != geom.V(0, 0) {
		t.Errorf("Expected screen center to map to origin, got %+v", got)
	}

	f.CursorX, f.CursorY = 0, 0
	if got := f.CursorWorld(); got != geom.V(-640, 360) {
		t.Errorf("Expected top-left to map to (-640,360), got %+v", got)
	}
}

type fakeManager struct {
	axes map[render.GamepadAxis]float64
	held map[render.GamepadButton]bool
	just map[render.GamepadButton]bool
}

func (m *fakeManager) GamepadIDs() []render.GamepadID { return []render.GamepadID{7} }
func (m *fakeManager) GamepadAxisValue(_ render.GamepadID, a render.GamepadAxis) float64 {
	return m.axes[a]
}
func (m *fakeManager) IsGamepadButtonPressed(_ render.GamepadID, b render.GamepadButton) bool {
	return m.held[b]
}
func (m *fakeManager) IsGamepadButtonJustPressed(_ render.GamepadID, b render.GamepadButton) bool {
	return m.just[b]
}
func (m *fakeManager) GetCursorPosition() (int, int) { return 10, 20 }
func (m *fakeManager) IsMouseButtonJustPressed(b render.MouseButton) bool {
	return b == render.MouseButtonLeft
}

func TestManagerSourcePoll(t *testing.T) {
	mgr := &fakeManager{
		axes: map[render.GamepadAxis]float64{
			render.GamepadAxisRightStickX: 1,
			render.GamepadAxisRightStickY: -1,
			render.GamepadAxisLeftStickX:  0.01,
		},
		held: map[render.GamepadButton]bool{render.GamepadButtonRightTrigger2: true},
		just: map[render.GamepadButton]bool{render.GamepadButtonEast: true},
	}
	src := NewManagerSource(mgr, 0.05, func() (int, int) { return 800, 600 })

	f := src.Poll()
	if len(f.Pads) != 1 {
		t.Fatalf("Expected 1 pad, got %d", len(f.Pads))
	}

	p := f.Pads[0]
	if p.ID != 7 {
		t.Errorf("Expected pad id 7, got %d", p.ID)
	}
	if p.RightStick != geom.V(1, 1) {
		t.Errorf("Expected right stick (1,1) after y flip, got %+v", p.RightStick)
	}
	if p.LeftStick != (geom.Vec2{}) {
		t.Errorf("Expected left stick inside deadzone, got %+v", p.LeftStick)
	}
	if !p.Pressed(ButtonRightTrigger2) || !p.JustPressed(ButtonEast) {
		t.Error("Expected trigger held and east just pressed")
	}
	if !f.MouseJustPressed || f.CursorX != 10 || f.ScreenW != 800 {
		t.Errorf("Unexpected mouse state: %+v", f)
	}
}
