package builder

import (
	"math"
	"testing"

	"github.com/Erdk/luxor/scene"
	"github.com/Erdk/luxor/types"
)

func TestAddLightsSkipsUnknownKinds(t *testing.T) {
	b := New(scene.NewGraph(), Options{})

	specs := []LightSpec{
		{ID: "sun", Kind: "distant", From: types.Vec3{0, 10, 0}},
		{ID: "laser", Kind: "laser"},
		{ID: "fill", Kind: "point", From: types.Vec3{1, 1, 1}},
	}
	if err := b.AddLights(specs); err != nil {
		t.Fatal(err)
	}

	g := b.Graph()
	if g.Len(scene.GroupLights) != 2 {
		t.Fatalf("expected the unknown kind to be skipped; got %d lights", g.Len(scene.GroupLights))
	}
	if g.Has(scene.GroupLights, "laser") {
		t.Fatal("expected the unknown light to be absent")
	}
}

func TestSpotConeAngleIsHalved(t *testing.T) {
	b := New(scene.NewGraph(), Options{})

	err := b.AddLight(LightSpec{ID: "spot", Kind: "spot", ConeAngle: 60})
	if err != nil {
		t.Fatal(err)
	}

	e, _ := b.Graph().Entity(scene.GroupLights, "spot")
	if v, _ := e.Get("coneangle"); v != scene.Float(30) {
		t.Fatalf("expected the half cone angle 30; got %v", v)
	}
}

func TestRadianAngleMode(t *testing.T) {
	b := New(scene.NewGraph(), Options{AngleUnit: Radians})

	err := b.AddLight(LightSpec{ID: "spot", Kind: "spot", ConeAngle: math.Pi / 3})
	if err != nil {
		t.Fatal(err)
	}

	e, _ := b.Graph().Entity(scene.GroupLights, "spot")
	v, _ := e.Get("coneangle")
	if got := float64(v.(scene.Float)); math.Abs(got-30) > 1e-9 {
		t.Fatalf("expected radians to convert to a 30 degree half angle; got %v", got)
	}
}

func TestHiddenLightUsesNullMaterial(t *testing.T) {
	b := New(scene.NewGraph(), Options{})
	g := b.Graph()

	err := b.AddLight(LightSpec{
		ID:     "panel",
		Kind:   "area",
		Center: types.Vec3{0, 2, 0},
		Normal: types.Vec3{0, -1, 0},
		Size:   1,
		Hidden: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	e, _ := g.Entity(scene.GroupLights, "panel")
	if e.Meta.Material != HiddenMaterialName {
		t.Fatalf("expected hidden light to reference %q; got %q", HiddenMaterialName, e.Meta.Material)
	}
	if !g.Has(scene.GroupMaterials, HiddenMaterialName) {
		t.Fatal("expected the shared null material to exist")
	}
	if e.Meta.Mesh == nil {
		t.Fatal("expected a synthesized mesh for the area light")
	}
	if len(e.Meta.Mesh.Indices) != 6 {
		t.Fatalf("expected a two-triangle plane mesh; got %d indices", len(e.Meta.Mesh.Indices))
	}
}

func TestLightGroupAutoDeclared(t *testing.T) {
	b := New(scene.NewGraph(), Options{})

	err := b.AddLight(LightSpec{ID: "sun", Kind: "sun", Group: "daylight", Turbidity: 2.2})
	if err != nil {
		t.Fatal(err)
	}
	if !b.Graph().Has(scene.GroupLightGroups, "daylight") {
		t.Fatal("expected the light group to be declared implicitly")
	}
}

func TestHSVLightColor(t *testing.T) {
	b := New(scene.NewGraph(), Options{})

	// Pure red: hue 0, full saturation and value.
	err := b.AddLight(LightSpec{ID: "red", Kind: "point", Color: [3]float64{0, 1, 1}, UseHSV: true})
	if err != nil {
		t.Fatal(err)
	}

	e, _ := b.Graph().Entity(scene.GroupLights, "red")
	if v, _ := e.Get("L"); v != (scene.Color{1, 0, 0}) {
		t.Fatalf("expected HSV input to convert to RGB red; got %v", v)
	}
}
