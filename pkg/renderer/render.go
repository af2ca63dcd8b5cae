package renderer

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/whitted/raytracer/pkg/core"
	"github.com/whitted/raytracer/pkg/world"
)

// DefaultMaxDepth is the reflection/refraction recursion budget used when
// RenderOptions does not override it.
const DefaultMaxDepth = 5

// RenderOptions configures a render pass
type RenderOptions struct {
	Workers  int         // Worker goroutines; <= 0 means GOMAXPROCS-many
	MaxDepth int         // Recursion budget; <= 0 means DefaultMaxDepth
	Logger   core.Logger // Optional progress logging
}

// Render renders the world with default options
func (c *Camera) Render(w *world.World) *Canvas {
	return c.RenderWithOptions(w, RenderOptions{})
}

// RenderWithOptions renders the world on a fixed-size worker pool, one task
// per scanline. The world and camera are read-only for the whole render and
// each row of the canvas is written by exactly one worker, so no locking is
// needed anywhere. Output is deterministic regardless of worker count.
func (c *Camera) RenderWithOptions(w *world.World, opts RenderOptions) *Canvas {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	canvas := NewCanvas(c.hsize, c.vsize)

	rows := make(chan int, c.vsize)
	var completed int64
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				c.renderRow(w, canvas, y, maxDepth)

				if opts.Logger != nil {
					done := atomic.AddInt64(&completed, 1)
					if done%50 == 0 || done == int64(c.vsize) {
						opts.Logger.Printf("rendered %d/%d rows", done, c.vsize)
					}
				}
			}
		}()
	}

	for y := 0; y < c.vsize; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return canvas
}

// renderRow traces every pixel of one scanline into the canvas
func (c *Camera) renderRow(w *world.World, canvas *Canvas, y, maxDepth int) {
	for x := 0; x < c.hsize; x++ {
		ray := c.RayForPixel(x, y)
		canvas.WritePixel(x, y, w.ColorAt(ray, maxDepth))
	}
}
