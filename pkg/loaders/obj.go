// Package loaders imports external model formats into shape trees.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/whitted/raytracer/pkg/core"
	"github.com/whitted/raytracer/pkg/geometry"
)

// ObjParser holds the state accumulated while scanning a Wavefront OBJ
// stream: vertex and normal tables (1-indexed, per the format) and the
// triangle groups built from the face records.
type ObjParser struct {
	DefaultGroup *geometry.Group
	IgnoredLines int

	vertices     []core.Tuple
	normals      []core.Tuple
	groups       map[string]*geometry.Group
	groupOrder   []string
	currentGroup *geometry.Group
}

// ParseObj reads a Wavefront OBJ stream. Unrecognized or malformed lines
// are counted and skipped rather than failing the parse; real-world OBJ
// files are full of records a renderer has no use for.
func ParseObj(r io.Reader) (*ObjParser, error) {
	p := &ObjParser{
		DefaultGroup: geometry.NewGroup(),
		groups:       make(map[string]*geometry.Group),
	}
	p.currentGroup = p.DefaultGroup

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		p.parseLine(strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj data: %w", err)
	}
	return p, nil
}

// ParseObjFile reads a Wavefront OBJ file from disk
func ParseObjFile(path string) (*ObjParser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening obj file: %w", err)
	}
	defer f.Close()
	return ParseObj(f)
}

func (p *ObjParser) parseLine(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		p.IgnoredLines++
		return
	}

	switch fields[0] {
	case "v":
		p.parseVertex(fields[1:])
	case "vn":
		p.parseNormal(fields[1:])
	case "f":
		p.parseFace(fields[1:])
	case "g":
		p.parseGroup(fields[1:])
	default:
		p.IgnoredLines++
	}
}

func (p *ObjParser) parseVertex(args []string) {
	coords, ok := parseFloats(args, 3)
	if !ok {
		p.IgnoredLines++
		return
	}
	p.vertices = append(p.vertices, core.NewPoint(coords[0], coords[1], coords[2]))
}

func (p *ObjParser) parseNormal(args []string) {
	coords, ok := parseFloats(args, 3)
	if !ok {
		p.IgnoredLines++
		return
	}
	p.normals = append(p.normals, core.NewVector(coords[0], coords[1], coords[2]))
}

func (p *ObjParser) parseGroup(args []string) {
	if len(args) == 0 {
		p.IgnoredLines++
		return
	}
	name := args[0]
	if g, ok := p.groups[name]; ok {
		p.currentGroup = g
		return
	}
	g := geometry.NewGroup()
	p.groups[name] = g
	p.groupOrder = append(p.groupOrder, name)
	p.currentGroup = g
}

// faceVertex is one corner of a face record: vertex index plus optional
// normal index (zero when absent).
type faceVertex struct {
	vertex int
	normal int
}

// parseFace triangulates a polygon record as a fan anchored at its first
// vertex. Corners with normal references produce smooth triangles.
func (p *ObjParser) parseFace(args []string) {
	if len(args) < 3 {
		p.IgnoredLines++
		return
	}

	corners := make([]faceVertex, 0, len(args))
	for _, arg := range args {
		fv, ok := p.parseFaceVertex(arg)
		if !ok {
			p.IgnoredLines++
			return
		}
		corners = append(corners, fv)
	}

	for i := 1; i < len(corners)-1; i++ {
		a, b, c := corners[0], corners[i], corners[i+1]

		p1 := p.vertices[a.vertex-1]
		p2 := p.vertices[b.vertex-1]
		p3 := p.vertices[c.vertex-1]

		var tri geometry.Shape
		if a.normal > 0 && b.normal > 0 && c.normal > 0 {
			tri = geometry.NewSmoothTriangle(p1, p2, p3,
				p.normals[a.normal-1], p.normals[b.normal-1], p.normals[c.normal-1])
		} else {
			tri = geometry.NewTriangle(p1, p2, p3)
		}
		p.currentGroup.AddChild(tri)
	}
}

// parseFaceVertex parses the v, v/vt, v//vn, and v/vt/vn corner forms
func (p *ObjParser) parseFaceVertex(arg string) (faceVertex, bool) {
	parts := strings.Split(arg, "/")

	vertex, err := strconv.Atoi(parts[0])
	if err != nil || vertex < 1 || vertex > len(p.vertices) {
		return faceVertex{}, false
	}

	fv := faceVertex{vertex: vertex}
	if len(parts) == 3 && parts[2] != "" {
		normal, err := strconv.Atoi(parts[2])
		if err != nil || normal < 1 || normal > len(p.normals) {
			return faceVertex{}, false
		}
		fv.normal = normal
	}
	return fv, true
}

// Group returns the named group built during parsing, or nil
func (p *ObjParser) Group(name string) *geometry.Group {
	return p.groups[name]
}

// ToGroup collects everything the parse produced into one group: the
// default group's triangles plus every named group.
func (p *ObjParser) ToGroup() *geometry.Group {
	g := geometry.NewGroup()
	if len(p.DefaultGroup.Children()) > 0 {
		g.AddChild(p.DefaultGroup)
	}
	for _, name := range p.groupOrder {
		g.AddChild(p.groups[name])
	}
	return g
}

func parseFloats(args []string, n int) ([]float64, bool) {
	if len(args) < n {
		return nil, false
	}
	result := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, false
		}
		result[i] = v
	}
	return result, true
}
