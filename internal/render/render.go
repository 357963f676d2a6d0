// Package render converts the CHIP-8 framebuffer to text.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Characters used for set and unset pixels.
const (
	PixelOn  = '#'
	PixelOff = '.'
)

// ansiHome moves the cursor to the top left corner of the terminal.
const ansiHome = "\x1b[H"

// ansiClear clears the terminal.
const ansiClear = "\x1b[2J"

// Framebuffer is read access to a monochrome pixel grid.
type Framebuffer interface {
	Width() int
	Height() int
	Pixel(x, y int) bool
}

// Text returns the framebuffer as lines of PixelOn and PixelOff characters.
func Text(fb Framebuffer) string {
	var buf strings.Builder
	buf.Grow((fb.Width() + 1) * fb.Height())

	for y := range fb.Height() {
		for x := range fb.Width() {
			if fb.Pixel(x, y) {
				buf.WriteByte(PixelOn)
			} else {
				buf.WriteByte(PixelOff)
			}
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}

// Renderer writes frames to an output. If the output is a terminal, every
// frame is drawn over the previous one.
type Renderer struct {
	w        io.Writer
	terminal bool
	frames   int
}

// New returns a renderer for the writer.
func New(w io.Writer) *Renderer {
	return &Renderer{
		w:        w,
		terminal: isTerminal(w),
	}
}

// Frame writes the current framebuffer content.
func (r *Renderer) Frame(fb Framebuffer) error {
	prefix := ""
	if r.terminal {
		prefix = ansiHome
		if r.frames == 0 {
			prefix = ansiClear + ansiHome
		}
	}
	r.frames++

	if _, err := fmt.Fprint(r.w, prefix+Text(fb)); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Terminal returns whether the output is an interactive terminal.
func (r *Renderer) Terminal() bool {
	return r.terminal
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
