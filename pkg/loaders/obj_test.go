package loaders

import (
	"strings"
	"testing"

	"github.com/whitted/raytracer/pkg/core"
	"github.com/whitted/raytracer/pkg/geometry"
)

func parseString(t *testing.T, data string) *ObjParser {
	t.Helper()
	p, err := ParseObj(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return p
}

func TestParseObj_IgnoresGibberish(t *testing.T) {
	p := parseString(t, `There was a young lady named Bright
who traveled much faster than light.
She set out one day
in a relative way,
and came back the previous night.
`)

	if p.IgnoredLines != 5 {
		t.Errorf("Expected 5 ignored lines, got %d", p.IgnoredLines)
	}
}

func TestParseObj_Vertices(t *testing.T) {
	p := parseString(t, `v -1 1 0
v -1.0000 0.5000 0.0000
v 1 0 0
v 1 1 0
`)

	want := []core.Tuple{
		core.NewPoint(-1, 1, 0),
		core.NewPoint(-1, 0.5, 0),
		core.NewPoint(1, 0, 0),
		core.NewPoint(1, 1, 0),
	}
	if len(p.vertices) != len(want) {
		t.Fatalf("Expected %d vertices, got %d", len(want), len(p.vertices))
	}
	for i, v := range want {
		if !p.vertices[i].Equals(v) {
			t.Errorf("Vertex %d: expected %v, got %v", i+1, v, p.vertices[i])
		}
	}
}

func TestParseObj_TriangleFaces(t *testing.T) {
	p := parseString(t, `v -1 1 0
v -1 0 0
v 1 0 0
v 1 1 0

f 1 2 3
f 1 3 4
`)

	children := p.DefaultGroup.Children()
	if len(children) != 2 {
		t.Fatalf("Expected 2 triangles, got %d", len(children))
	}

	t1, ok := children[0].(*geometry.Triangle)
	if !ok {
		t.Fatal("Expected a flat triangle")
	}
	if !t1.P1.Equals(core.NewPoint(-1, 1, 0)) ||
		!t1.P2.Equals(core.NewPoint(-1, 0, 0)) ||
		!t1.P3.Equals(core.NewPoint(1, 0, 0)) {
		t.Errorf("First triangle has wrong corners: %v %v %v", t1.P1, t1.P2, t1.P3)
	}

	t2 := children[1].(*geometry.Triangle)
	if !t2.P1.Equals(core.NewPoint(-1, 1, 0)) ||
		!t2.P2.Equals(core.NewPoint(1, 0, 0)) ||
		!t2.P3.Equals(core.NewPoint(1, 1, 0)) {
		t.Errorf("Second triangle has wrong corners: %v %v %v", t2.P1, t2.P2, t2.P3)
	}
}

func TestParseObj_PolygonTriangulation(t *testing.T) {
	p := parseString(t, `v -1 1 0
v -1 0 0
v 1 0 0
v 1 1 0
v 0 2 0

f 1 2 3 4 5
`)

	children := p.DefaultGroup.Children()
	if len(children) != 3 {
		t.Fatalf("Expected a fan of 3 triangles, got %d", len(children))
	}

	anchor := core.NewPoint(-1, 1, 0)
	for i, child := range children {
		tri := child.(*geometry.Triangle)
		if !tri.P1.Equals(anchor) {
			t.Errorf("Triangle %d: expected the fan anchor %v, got %v", i, anchor, tri.P1)
		}
	}

	t3 := children[2].(*geometry.Triangle)
	if !t3.P2.Equals(core.NewPoint(1, 1, 0)) || !t3.P3.Equals(core.NewPoint(0, 2, 0)) {
		t.Errorf("Last fan triangle has wrong corners: %v %v", t3.P2, t3.P3)
	}
}

func TestParseObj_NamedGroups(t *testing.T) {
	data := `v -1 1 0
v -1 0 0
v 1 0 0
v 1 1 0

g FirstGroup
f 1 2 3
g SecondGroup
f 1 3 4
`
	p := parseString(t, data)

	first := p.Group("FirstGroup")
	second := p.Group("SecondGroup")
	if first == nil || second == nil {
		t.Fatal("Expected both named groups to exist")
	}
	if len(first.Children()) != 1 || len(second.Children()) != 1 {
		t.Errorf("Expected one triangle per group, got %d and %d",
			len(first.Children()), len(second.Children()))
	}
	if len(p.DefaultGroup.Children()) != 0 {
		t.Error("Expected the default group to stay empty")
	}
	if p.Group("NoSuchGroup") != nil {
		t.Error("Expected nil for an unknown group name")
	}
}

func TestParseObj_SmoothTriangles(t *testing.T) {
	p := parseString(t, `v 0 1 0
v -1 0 0
v 1 0 0

vn -1 0 0
vn 1 0 0
vn 0 1 0

f 1//3 2//1 3//2
f 1/0/3 2/102/1 3/14/2
`)

	children := p.DefaultGroup.Children()
	if len(children) != 2 {
		t.Fatalf("Expected 2 smooth triangles, got %d", len(children))
	}

	for i, child := range children {
		tri, ok := child.(*geometry.SmoothTriangle)
		if !ok {
			t.Fatalf("Triangle %d: expected a smooth triangle", i)
		}
		if !tri.P1.Equals(core.NewPoint(0, 1, 0)) ||
			!tri.P2.Equals(core.NewPoint(-1, 0, 0)) ||
			!tri.P3.Equals(core.NewPoint(1, 0, 0)) {
			t.Errorf("Triangle %d has wrong corners", i)
		}
		if !tri.N1.Equals(core.NewVector(0, 1, 0)) ||
			!tri.N2.Equals(core.NewVector(-1, 0, 0)) ||
			!tri.N3.Equals(core.NewVector(1, 0, 0)) {
			t.Errorf("Triangle %d has wrong normals", i)
		}
	}
}

func TestParseObj_SkipsInvalidFaces(t *testing.T) {
	p := parseString(t, `v 0 1 0
v -1 0 0
v 1 0 0
f 1 2 9
f 1 2
f one two three
`)

	if len(p.DefaultGroup.Children()) != 0 {
		t.Errorf("Expected no triangles from invalid faces, got %d", len(p.DefaultGroup.Children()))
	}
	if p.IgnoredLines != 3 {
		t.Errorf("Expected 3 ignored lines, got %d", p.IgnoredLines)
	}
}

func TestObjParser_ToGroup(t *testing.T) {
	data := `v -1 1 0
v -1 0 0
v 1 0 0
v 1 1 0

f 1 2 3
g Named
f 1 3 4
`
	p := parseString(t, data)
	g := p.ToGroup()

	children := g.Children()
	if len(children) != 2 {
		t.Fatalf("Expected the default group plus one named group, got %d children", len(children))
	}
	if children[0] != p.DefaultGroup {
		t.Error("Expected the default group first")
	}
	if children[1] != p.Group("Named") {
		t.Error("Expected the named group second")
	}
}
