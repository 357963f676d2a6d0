// Package display provides the CHIP-8 monochrome framebuffer.
package display

// Screen dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// SpriteWidth is the number of pixels in one sprite row.
const SpriteWidth = 8

// Surface is the capability the emulator needs from a display.
type Surface interface {
	// Clear unsets every pixel.
	Clear()
	// DrawSprite XORs the sprite onto the screen with its top left corner at
	// x, y and returns whether any set pixel was unset by the draw.
	// Each sprite row is passed as SpriteWidth values of 0 or 1.
	DrawSprite(x, y uint8, rows []uint8) bool
}

// Compile-time check to ensure Matrix implements Surface.
var _ Surface = (*Matrix)(nil)

// Matrix is an in-memory 64x32 pixel grid. Pixels are stored row-major,
// the index of a pixel is x + y*Width.
//
// Coordinates wrap around the screen edges: a sprite starting at x=62
// continues at x=0 of the same row.
type Matrix struct {
	screen [Width * Height]bool
}

// NewMatrix returns a cleared pixel grid.
func NewMatrix() *Matrix {
	return &Matrix{}
}

// Clear unsets every pixel.
func (m *Matrix) Clear() {
	m.screen = [Width * Height]bool{}
}

// DrawSprite XORs the sprite rows onto the screen.
func (m *Matrix) DrawSprite(x, y uint8, rows []uint8) bool {
	collision := false

	for row := 0; row*SpriteWidth < len(rows); row++ {
		py := (int(y) + row) % Height
		bits := rows[row*SpriteWidth:]

		for col := 0; col < SpriteWidth && col < len(bits); col++ {
			if bits[col] == 0 {
				continue
			}

			px := (int(x) + col) % Width
			index := px + py*Width
			if m.screen[index] {
				collision = true
			}
			m.screen[index] = !m.screen[index]
		}
	}

	return collision
}

// Pixel returns whether the pixel at x, y is set.
// Coordinates outside of the screen return false.
func (m *Matrix) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return m.screen[x+y*Width]
}

// Pixels returns a copy of the whole screen.
func (m *Matrix) Pixels() [Width * Height]bool {
	return m.screen
}

// Width returns the screen width in pixels.
func (m *Matrix) Width() int {
	return Width
}

// Height returns the screen height in pixels.
func (m *Matrix) Height() int {
	return Height
}

// Empty returns whether no pixel is set.
func (m *Matrix) Empty() bool {
	for _, pixel := range m.screen {
		if pixel {
			return false
		}
	}
	return true
}
