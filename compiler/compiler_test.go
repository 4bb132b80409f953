package compiler

import (
	"errors"
	"strings"
	"testing"

	"github.com/Erdk/luxor/builder"
	"github.com/Erdk/luxor/scene"
	"github.com/Erdk/luxor/types"
)

func TestParamFormatting(t *testing.T) {
	specs := []struct {
		param scene.Param
		want  string
	}{
		{scene.Param{Name: "xresolution", Value: scene.Int(1280)}, `	"integer xresolution" [1280]`},
		{scene.Param{Name: "fov", Value: scene.Float(60)}, `	"float fov" [60]`},
		{scene.Param{Name: "premultiplyalpha", Value: scene.Bool(true)}, `	"bool premultiplyalpha" ["true"]`},
		{scene.Param{Name: "flipz", Value: scene.Bool(false)}, `	"bool flipz" ["false"]`},
		{scene.Param{Name: "filename", Value: scene.Str("out")}, `	"string filename" ["out"]`},
		{scene.Param{Name: "L", Value: scene.Color{1, 0.5, 0.25}}, `	"color L" [1 0.5 0.25]`},
		{scene.Param{Name: "weights", Value: scene.FloatVec{1, 2, 3}}, `	"float weights" [1 2 3]`},
		{scene.Param{Name: "from", Value: scene.PointVec{{1, 2, 3}}}, `	"point from" [1 2 3]`},
		{scene.Param{Name: "channels", Value: scene.StrVec{"R", "G"}}, `	"string channels" ["R" "G"]`},
		{scene.Param{Name: "Kd", Value: scene.TexRef("wood")}, `	"texture Kd" ["wood"]`},
		// pow(0.5*2, 1) = 1 per component scaling.
		{scene.Param{Name: "absorption", Value: scene.LogColor{Base: scene.Color{0.5, 0.5, 0.5}, Scale: 2, Depth: 1}}, `	"color absorption" [1 1 1]`},
	}

	for index, spec := range specs {
		got, err := paramLine(spec.param)
		if err != nil {
			t.Errorf("[spec %d] unexpected error: %v", index, err)
			continue
		}
		if got != spec.want {
			t.Errorf("[spec %d] expected %q; got %q", index, spec.want, got)
		}
	}
}

func TestSingletonBlock(t *testing.T) {
	g := scene.NewGraph()
	g.SetSingleton(scene.GroupCamera, scene.NewEntity("perspective").Set("fov", scene.Float(60)))

	out, err := New(g).CompileGroup(scene.GroupCamera)
	if err != nil {
		t.Fatal(err)
	}

	want := "Camera \"perspective\"\n\t\"float fov\" [60]\n"
	if out != want {
		t.Fatalf("expected %q; got %q", want, out)
	}
}

func TestMaterialDependencyOrder(t *testing.T) {
	g := scene.NewGraph()

	// Insert the mix before its references to force reordering.
	mix := scene.NewEntity("mix").
		Set("namedmaterial1", scene.Str("a")).
		Set("namedmaterial2", scene.Str("b")).
		Set("amount", scene.Float(0.3))
	mix.Meta.Dependencies = []string{"a", "b"}
	g.Upsert(scene.GroupMaterials, "blend", mix)

	coating := scene.NewEntity("glossycoating").Set("basematerial", scene.Str("blend"))
	coating.Meta.Dependencies = []string{"blend"}
	g.Upsert(scene.GroupMaterials, "coated", coating)

	g.Upsert(scene.GroupMaterials, "a", scene.NewEntity("matte"))
	g.Upsert(scene.GroupMaterials, "b", scene.NewEntity("mirror"))

	out, err := New(g).CompileGroup(scene.GroupMaterials)
	if err != nil {
		t.Fatal(err)
	}

	positions := map[string]int{}
	for _, id := range []string{"a", "b", "blend", "coated"} {
		positions[id] = strings.Index(out, "MakeNamedMaterial \""+id+"\"")
		if positions[id] < 0 {
			t.Fatalf("material %q missing from output", id)
		}
	}
	if positions["a"] > positions["blend"] || positions["b"] > positions["blend"] {
		t.Fatal("expected referenced materials to be emitted before the mix")
	}
	if positions["blend"] > positions["coated"] {
		t.Fatal("expected the coating base to be emitted before the coating")
	}
}

func TestAlphaMaterialEmissionOrder(t *testing.T) {
	g := scene.NewGraph()
	b := builder.New(g, builder.Options{})

	alpha := 0.3
	err := b.AddMaterial(builder.MaterialSpec{ID: "veil", Kind: "matte", Alpha: &alpha})
	if err != nil {
		t.Fatal(err)
	}

	out, err := New(g).CompileGroup(scene.GroupMaterials)
	if err != nil {
		t.Fatal(err)
	}

	internal := strings.Index(out, "MakeNamedMaterial \"veil_alpha_base\"")
	public := strings.Index(out, "MakeNamedMaterial \"veil\"\n")
	hidden := strings.Index(out, "MakeNamedMaterial \""+builder.HiddenMaterialName+"\"")
	if internal < 0 || public < 0 || hidden < 0 {
		t.Fatalf("missing compositing materials in output:\n%s", out)
	}
	if internal > public || hidden > public {
		t.Fatalf("referenced materials must be emitted before the mix:\n%s", out)
	}
}

func TestMaterialCycleIsFatal(t *testing.T) {
	g := scene.NewGraph()

	a := scene.NewEntity("mix")
	a.Meta.Dependencies = []string{"b"}
	b := scene.NewEntity("mix")
	b.Meta.Dependencies = []string{"a"}
	g.Upsert(scene.GroupMaterials, "a", a)
	g.Upsert(scene.GroupMaterials, "b", b)

	_, err := New(g).CompileGroup(scene.GroupMaterials)
	if err == nil {
		t.Fatal("expected a validation error for a dependency cycle")
	}
	var verr *scene.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a *scene.ValidationError; got %T", err)
	}
}

func TestMissingMaterialReference(t *testing.T) {
	g := scene.NewGraph()

	mix := scene.NewEntity("mix")
	mix.Meta.Dependencies = []string{"ghost"}
	g.Upsert(scene.GroupMaterials, "blend", mix)

	if _, err := New(g).CompileGroup(scene.GroupMaterials); err == nil {
		t.Fatal("expected an error for a reference to an unknown material")
	}
}

func TestComposedTransformBlock(t *testing.T) {
	g := scene.NewGraph()

	e := scene.NewEntity("sphere").Set("radius", scene.Float(1))
	e.Meta.Transform = types.NewTransform().
		Translate(types.Vec3{1, 2, 3}).
		Rotate(types.Vec3{10, 20, 30}).
		Scale(types.Vec3{2, 2, 2})
	g.Upsert(scene.GroupGeometry, "ball", e)

	out, err := New(g).CompileGroup(scene.GroupGeometry)
	if err != nil {
		t.Fatal(err)
	}

	wantOrder := []string{
		"Translate 1 2 3",
		"Rotate 10 1 0 0",
		"Rotate 20 0 1 0",
		"Rotate 30 0 0 1",
		"Scale 2 2 2",
		"Shape \"sphere\"",
	}
	last := -1
	for _, want := range wantOrder {
		pos := strings.Index(out, want)
		if pos < 0 {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
		if pos < last {
			t.Fatalf("statement %q out of order in output:\n%s", want, out)
		}
		last = pos
	}
}

func TestMatrixTransformBlock(t *testing.T) {
	g := scene.NewGraph()

	e := scene.NewEntity("sphere").Set("radius", scene.Float(1))
	e.Meta.Transform = types.MatrixTransform(types.Ident4())
	g.Upsert(scene.GroupGeometry, "ball", e)

	out, err := New(g).CompileGroup(scene.GroupGeometry)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Transform [1 0 0 0 0 1 0 0 0 0 1 0 0 0 0 1]") {
		t.Fatalf("expected an explicit matrix statement in output:\n%s", out)
	}
}

func TestMaterialVolumeReferences(t *testing.T) {
	g := scene.NewGraph()
	b := builder.New(g, builder.Options{})

	steps := []error{
		b.AddVolume(builder.VolumeSpec{ID: "fog", Kind: "clear", IOR: 1.0}),
		b.AddVolume(builder.VolumeSpec{ID: "vacuum", Kind: "clear", IOR: 1.0}),
		b.AddMaterial(builder.MaterialSpec{ID: "pane", Kind: "glass", Interior: "fog", Exterior: "vacuum"}),
		b.AddShape(builder.ShapeSpec{ID: "window", Kind: "sphere", Radius: 1, Material: "pane"}),
	}
	for idx, err := range steps {
		if err != nil {
			t.Fatalf("[step %d] %v", idx, err)
		}
	}

	out, err := New(g).CompileGroup(scene.GroupGeometry)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Interior \"fog\"") {
		t.Fatalf("expected the material's interior reference in geometry output:\n%s", out)
	}
	if !strings.Contains(out, "Exterior \"vacuum\"") {
		t.Fatalf("expected the material's exterior reference in geometry output:\n%s", out)
	}
}

func TestShapeVolumeReferenceOverride(t *testing.T) {
	g := scene.NewGraph()
	b := builder.New(g, builder.Options{})

	steps := []error{
		b.AddMaterial(builder.MaterialSpec{ID: "pane", Kind: "glass", Interior: "fog"}),
		b.AddShape(builder.ShapeSpec{ID: "window", Kind: "sphere", Radius: 1, Material: "pane", Interior: "smoke"}),
	}
	for idx, err := range steps {
		if err != nil {
			t.Fatalf("[step %d] %v", idx, err)
		}
	}

	out, err := New(g).CompileGroup(scene.GroupGeometry)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Interior \"smoke\"") {
		t.Fatalf("expected the shape's own interior reference to win:\n%s", out)
	}
	if strings.Contains(out, "Interior \"fog\"") {
		t.Fatalf("material interior must not override the shape's own reference:\n%s", out)
	}
}

func TestMeshStreaming(t *testing.T) {
	g := scene.NewGraph()
	registry := scene.NewMemRegistry()
	g.Config.MeshStreamer = registry.Streamer()
	g.Config.MeshCollector = registry.Collector()

	e := scene.NewEntity("mesh")
	e.Meta.Mesh = types.NewPlaneMesh(types.Vec3{}, types.Vec3{0, 1, 0}, 2)
	e.Meta.MeshPath = "floor.mesh"
	e.Meta.Material = "wall"
	g.Upsert(scene.GroupGeometry, "floor", e)

	out, err := New(g).CompileGroup(scene.GroupGeometry)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "NamedMaterial \"wall\"") {
		t.Fatalf("expected a named material reference in output:\n%s", out)
	}
	if !strings.Contains(out, "Shape \"mesh\"\n\t\"string filename\" [\"floor.mesh\"]") {
		t.Fatalf("expected a companion mesh reference instead of inline geometry:\n%s", out)
	}
	if strings.Contains(out, "\"float P\"") {
		t.Fatal("mesh payload must not be inlined in the geometry block")
	}

	artifacts := g.Config.MeshCollector(g)
	art, exists := artifacts["floor"]
	if !exists {
		t.Fatal("expected the streamed mesh payload to be collectable")
	}
	body := string(art.Body)
	if !strings.Contains(body, "\"float P\"") || !strings.Contains(body, "\"integer indices\"") {
		t.Fatalf("unexpected mesh payload:\n%s", body)
	}
}
