package render

import (
	"image"
	"image/color"
)

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// game logic.
type Renderer interface {
	// Image operations
	NewImageFromImage(src image.Image) Image

	// Vector operations (for drawing shapes)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)

	// Text operations
	NewFontFace(src []byte, size float64) (FontFace, error)
	DrawText(dst Image, text string, face FontFace, opts *DrawTextOptions)
}

// FontFace is a sized font ready for drawing.
type FontFace interface {
	// Size returns the font size in pixels.
	Size() float64
}

// Align controls text placement relative to the draw position.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// DrawTextOptions contains options for drawing text.
type DrawTextOptions struct {
	X, Y        float64
	Color       color.Color
	LineSpacing float64
	// Horizontal and vertical alignment of the text block around (X, Y).
	PrimaryAlign   Align
	SecondaryAlign Align
}

// Image represents a renderable image surface that can be drawn to or drawn from.
// It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)

	// Drawing operations
	DrawImage(src Image, opts *DrawImageOptions)

	// Resource management
	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM GeoM
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	// Translate shifts the image by (tx, ty).
	Translate(tx, ty float64)

	// Scale scales the image by (sx, sy).
	Scale(sx, sy float64)

	// Rotate rotates the image by the given angle in radians.
	Rotate(angle float64)

	// Reset resets the matrix to identity.
	Reset()
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// GamepadID identifies a connected gamepad.
type GamepadID int

// GamepadButton names a button on a standard-layout gamepad.
type GamepadButton int

// Gamepad button constants
const (
	GamepadButtonSouth GamepadButton = iota
	GamepadButtonEast
	GamepadButtonRightTrigger2
)

// GamepadAxis names an analog stick axis on a standard-layout gamepad.
type GamepadAxis int

// Gamepad axis constants. Vertical axes are positive downward.
const (
	GamepadAxisLeftStickX GamepadAxis = iota
	GamepadAxisLeftStickY
	GamepadAxisRightStickX
	GamepadAxisRightStickY
)

// InputManager handles input from the user (gamepads and mouse).
type InputManager interface {
	GamepadIDs() []GamepadID
	GamepadAxisValue(id GamepadID, axis GamepadAxis) float64
	IsGamepadButtonPressed(id GamepadID, button GamepadButton) bool
	IsGamepadButtonJustPressed(id GamepadID, button GamepadButton) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonJustPressed(button MouseButton) bool
}

// MouseButton represents a mouse button.
type MouseButton int

// MouseButtonLeft is the primary mouse button.
const MouseButtonLeft MouseButton = 0

// Game represents the game interface that the engine will call.
// This is typically implemented by the main game struct.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// SetVsyncEnabled toggles waiting for vertical sync when presenting.
	SetVsyncEnabled(enabled bool)

	// SetTPS sets the number of Update calls per second.
	SetTPS(tps int)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
