package display

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// unpack converts sprite bytes into rows of 0/1 values.
func unpack(sprite ...byte) []uint8 {
	rows := make([]uint8, 0, len(sprite)*SpriteWidth)
	for _, b := range sprite {
		for bit := 7; bit >= 0; bit-- {
			rows = append(rows, (b>>bit)&1)
		}
	}
	return rows
}

func TestMatrix_DrawSprite(t *testing.T) {
	m := NewMatrix()

	collision := m.DrawSprite(0, 0, unpack(0xF0, 0x90))
	assert.False(t, collision)

	for x := range 4 {
		assert.True(t, m.Pixel(x, 0))
	}
	for x := 4; x < 8; x++ {
		assert.False(t, m.Pixel(x, 0))
	}
	assert.True(t, m.Pixel(0, 1))
	assert.False(t, m.Pixel(1, 1))
	assert.False(t, m.Pixel(2, 1))
	assert.True(t, m.Pixel(3, 1))
}

func TestMatrix_DrawSpriteTwiceCancels(t *testing.T) {
	tests := []struct {
		name   string
		x, y   uint8
		sprite []byte
	}{
		{"origin", 0, 0, []byte{0xFF}},
		{"middle", 20, 10, []byte{0xAA, 0x55, 0xFF}},
		{"bottom right", 56, 27, []byte{0x81, 0x42, 0x24, 0x18, 0xFF}},
		{"wrapping", 60, 30, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatrix()

			assert.False(t, m.DrawSprite(tt.x, tt.y, unpack(tt.sprite...)))
			assert.False(t, m.Empty())
			assert.True(t, m.DrawSprite(tt.x, tt.y, unpack(tt.sprite...)))
			assert.True(t, m.Empty())
		})
	}
}

func TestMatrix_DrawSpriteEmptyNoCollision(t *testing.T) {
	m := NewMatrix()
	assert.False(t, m.DrawSprite(0, 0, unpack(0xFF)))
	assert.False(t, m.DrawSprite(0, 0, unpack(0x00)))
	assert.False(t, m.Empty())
}

func TestMatrix_DrawSpriteWraps(t *testing.T) {
	m := NewMatrix()

	m.DrawSprite(62, 31, unpack(0xF0, 0x80))

	assert.True(t, m.Pixel(62, 31))
	assert.True(t, m.Pixel(63, 31))
	assert.True(t, m.Pixel(0, 31))
	assert.True(t, m.Pixel(1, 31))
	assert.False(t, m.Pixel(2, 31))
	assert.True(t, m.Pixel(62, 0))
	assert.False(t, m.Pixel(63, 0))
}

func TestMatrix_DrawSpriteCoordinatesWrap(t *testing.T) {
	m := NewMatrix()

	m.DrawSprite(64+3, 32+2, unpack(0x80))
	assert.True(t, m.Pixel(3, 2))
}

func TestMatrix_Clear(t *testing.T) {
	m := NewMatrix()
	m.DrawSprite(10, 10, unpack(0xFF, 0xFF))
	assert.False(t, m.Empty())

	m.Clear()
	assert.True(t, m.Empty())
}

func TestMatrix_Pixels(t *testing.T) {
	m := NewMatrix()
	m.DrawSprite(1, 1, unpack(0x80))

	pixels := m.Pixels()
	assert.True(t, pixels[1+1*Width])

	pixels[0] = true
	assert.False(t, m.Pixel(0, 0))
	assert.False(t, m.Pixel(-1, 0))
	assert.False(t, m.Pixel(Width, 0))
	assert.Equal(t, Width, m.Width())
	assert.Equal(t, Height, m.Height())
}
