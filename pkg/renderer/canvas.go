package renderer

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/whitted/raytracer/pkg/core"
)

// Canvas is the render target: a width x height grid of float colors.
// Pixels are stored row-major, so each scanline is a contiguous, disjoint
// slice that one render worker can own without synchronization.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewCanvas creates a canvas initialized to black
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y*c.Width+x]
}

// WritePixel sets the color at (x, y)
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	c.pixels[y*c.Width+x] = col
}

// clampComponent maps a float component to the 0..255 output range
func clampComponent(v float64) int {
	scaled := int(math.Round(v * 255))
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return scaled
}

// WritePPM encodes the canvas as plain-text PPM. Lines are kept under 70
// characters, which some PPM readers require.
func (c *Canvas) WritePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}

	const maxLine = 70
	for y := 0; y < c.Height; y++ {
		var line strings.Builder
		for x := 0; x < c.Width; x++ {
			pixel := c.PixelAt(x, y)
			for _, v := range []float64{pixel.R, pixel.G, pixel.B} {
				value := fmt.Sprintf("%d", clampComponent(v))
				if line.Len() > 0 && line.Len()+1+len(value) > maxLine {
					if _, err := fmt.Fprintln(w, line.String()); err != nil {
						return err
					}
					line.Reset()
				}
				if line.Len() > 0 {
					line.WriteByte(' ')
				}
				line.WriteString(value)
			}
		}
		if line.Len() > 0 {
			if _, err := fmt.Fprintln(w, line.String()); err != nil {
				return err
			}
		}
	}
	return nil
}

// ToImage converts the canvas to an image.RGBA for PNG/JPEG encoding
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			pixel := c.PixelAt(x, y)
			img.Set(x, y, color.RGBA{
				R: uint8(clampComponent(pixel.R)),
				G: uint8(clampComponent(pixel.G)),
				B: uint8(clampComponent(pixel.B)),
				A: 255,
			})
		}
	}
	return img
}
