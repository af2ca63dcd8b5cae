package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/whitted/raytracer/pkg/renderer"
	"github.com/whitted/raytracer/pkg/scene"
	"github.com/whitted/raytracer/pkg/world"
)

// createScene builds the named built-in scene at the given resolution
func createScene(name string, width, height int) (*world.World, *renderer.Camera, error) {
	switch name {
	case "default":
		w, c := scene.NewDefaultScene(width, height)
		return w, c, nil
	case "hexagon":
		w, c := scene.NewHexagonScene(width, height)
		return w, c, nil
	case "csg":
		w, c := scene.NewCSGScene(width, height)
		return w, c, nil
	default:
		return nil, nil, fmt.Errorf("unknown scene %q (available: default, hexagon, csg)", name)
	}
}

func main() {
	sceneName := flag.String("scene", "default", "Scene to render: 'default', 'hexagon' or 'csg'")
	width := flag.Int("width", 800, "Output image width in pixels")
	height := flag.Int("height", 450, "Output image height in pixels")
	out := flag.String("out", "", "Output PNG path (default output/<scene>_<timestamp>.png)")
	workers := flag.Int("workers", 0, "Render workers (0 = one per CPU)")
	depth := flag.Int("depth", renderer.DefaultMaxDepth, "Reflection/refraction recursion depth")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Glass, mirror and matte spheres on a checkered floor")
		fmt.Println("  hexagon - Nested-group hexagon of spheres and cylinders")
		fmt.Println("  csg     - Rounded cube with cylindrical holes bored through it")
		return
	}

	w, camera, err := createScene(*sceneName, *width, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outPath := *out
	if outPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outPath = filepath.Join("output", fmt.Sprintf("%s_%s.png", *sceneName, timestamp))
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %s scene at %dx%d...\n", *sceneName, *width, *height)

	startTime := time.Now()
	canvas := camera.RenderWithOptions(w, renderer.RenderOptions{
		Workers:  *workers,
		MaxDepth: *depth,
		Logger:   log.New(os.Stdout, "", log.Ltime),
	})
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	file, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, canvas.ToImage()); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Image saved to %s\n", outPath)
}
