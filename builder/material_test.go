package builder

import (
	"reflect"
	"testing"

	"github.com/Erdk/luxor/scene"
)

func TestAddMaterialOpaque(t *testing.T) {
	b := New(scene.NewGraph(), Options{})

	err := b.AddMaterial(MaterialSpec{ID: "wall", Kind: "matte", Kd: [3]float64{0.7, 0.7, 0.7}})
	if err != nil {
		t.Fatal(err)
	}

	g := b.Graph()
	if g.Len(scene.GroupMaterials) != 1 {
		t.Fatalf("expected 1 material; got %d", g.Len(scene.GroupMaterials))
	}
	e, _ := g.Entity(scene.GroupMaterials, "wall")
	if e.Type != "matte" {
		t.Fatalf("unexpected material type %q", e.Type)
	}
	if len(e.Meta.Dependencies) != 0 {
		t.Fatalf("opaque materials must not carry dependencies; got %v", e.Meta.Dependencies)
	}
}

func TestAddMaterialAlphaCompositing(t *testing.T) {
	b := New(scene.NewGraph(), Options{})
	g := b.Graph()

	alpha := 0.4
	err := b.AddMaterial(MaterialSpec{
		ID:    "curtain",
		Kind:  "matte",
		Kd:    [3]float64{0.8, 0.1, 0.1},
		Alpha: &alpha,
	})
	if err != nil {
		t.Fatal(err)
	}

	// The public id is a mix referencing exactly {hidden, internal}.
	mix, exists := g.Entity(scene.GroupMaterials, "curtain")
	if !exists {
		t.Fatal("expected the public id to remain visible")
	}
	if mix.Type != "mix" {
		t.Fatalf("expected a mix material under the public id; got %q", mix.Type)
	}
	wantDeps := []string{HiddenMaterialName, "curtain_alpha_base"}
	if !reflect.DeepEqual(mix.Meta.Dependencies, wantDeps) {
		t.Fatalf("expected dependencies %v; got %v", wantDeps, mix.Meta.Dependencies)
	}
	if amount, _ := mix.Get("amount"); amount != scene.Float(alpha) {
		t.Fatalf("expected blend amount %v; got %v", alpha, amount)
	}

	// The caller's material lives under the internal id.
	internal, exists := g.Entity(scene.GroupMaterials, "curtain_alpha_base")
	if !exists {
		t.Fatal("expected the original material under the internal id")
	}
	if internal.Type != "matte" {
		t.Fatalf("unexpected internal material type %q", internal.Type)
	}

	// The hidden null material is created once.
	hidden, exists := g.Entity(scene.GroupMaterials, HiddenMaterialName)
	if !exists || hidden.Type != "null" {
		t.Fatal("expected a shared hidden null material")
	}
}

func TestAlphaKeepsVolumeReferences(t *testing.T) {
	b := New(scene.NewGraph(), Options{})

	alpha := 0.5
	err := b.AddMaterial(MaterialSpec{
		ID:       "pane",
		Kind:     "glass",
		Alpha:    &alpha,
		Interior: "fog",
		Exterior: "vacuum",
	})
	if err != nil {
		t.Fatal(err)
	}

	mix, _ := b.Graph().Entity(scene.GroupMaterials, "pane")
	if mix.Meta.Interior != "fog" || mix.Meta.Exterior != "vacuum" {
		t.Fatalf("expected volume references on the public id; got interior %q, exterior %q",
			mix.Meta.Interior, mix.Meta.Exterior)
	}
}

func TestAddMaterialAlphaIdempotent(t *testing.T) {
	b := New(scene.NewGraph(), Options{})
	g := b.Graph()

	alpha := 0.5
	spec := MaterialSpec{ID: "veil", Kind: "matte", Alpha: &alpha}
	if err := b.AddMaterial(spec); err != nil {
		t.Fatal(err)
	}
	countAfterFirst := g.Len(scene.GroupMaterials)

	spec.Kd = [3]float64{0.1, 0.9, 0.1}
	if err := b.AddMaterial(spec); err != nil {
		t.Fatal(err)
	}

	if g.Len(scene.GroupMaterials) != countAfterFirst {
		t.Fatalf("repeated insertion must replace in place; material count grew from %d to %d",
			countAfterFirst, g.Len(scene.GroupMaterials))
	}
	internal, _ := g.Entity(scene.GroupMaterials, "veil_alpha_base")
	if v, _ := internal.Get("Kd"); v != (scene.Color{0.1, 0.9, 0.1}) {
		t.Fatal("expected the internal entity to carry the latest parameters")
	}
}

func TestAddMaterialValidation(t *testing.T) {
	b := New(scene.NewGraph(), Options{})

	invalidSpecs := []MaterialSpec{
		{ID: "", Kind: "matte"},
		{ID: "m", Kind: "chrome"},
		{ID: "m", Kind: "mix"},
		{ID: "m", Kind: "mix", Mix1: "a", Mix2: "b", Amount: 1.5},
		{ID: "m", Kind: "glossycoating"},
		{ID: "m", Kind: "glass", IORPreset: "unobtanium"},
		{ID: "m", Kind: "matte", Roughness: -1},
	}
	for index, spec := range invalidSpecs {
		if err := b.AddMaterial(spec); err == nil {
			t.Errorf("[spec %d] expected a validation error for %+v", index, spec)
		}
	}

	badAlpha := 1.5
	if err := b.AddMaterial(MaterialSpec{ID: "m", Kind: "matte", Alpha: &badAlpha}); err == nil {
		t.Error("expected a validation error for an out-of-range alpha")
	}
}

func TestTonemapMergesIntoFilm(t *testing.T) {
	b := New(scene.NewGraph(), Options{})
	g := b.Graph()

	if err := b.SetTonemap(TonemapConfig{Kernel: "reinhard"}); err == nil {
		t.Fatal("expected an error when no film is configured")
	}

	if err := b.SetFilm(FilmConfig{Width: 1280, Height: 720}); err != nil {
		t.Fatal(err)
	}
	if err := b.SetTonemap(TonemapConfig{Kernel: "reinhard", Burn: 6}); err != nil {
		t.Fatal(err)
	}

	film := g.Singleton(scene.GroupFilm)
	if v, _ := film.Get("xresolution"); v != scene.Int(1280) {
		t.Fatal("expected film parameters to survive the tonemap merge")
	}
	if v, _ := film.Get("tonemapkernel"); v != scene.Str("reinhard") {
		t.Fatal("expected tonemap parameters to be layered onto the film")
	}

	// A later tonemap call overwrites overlapping keys only.
	if err := b.SetTonemap(TonemapConfig{Kernel: "linear", Exposure: 0.5}); err != nil {
		t.Fatal(err)
	}
	film = g.Singleton(scene.GroupFilm)
	if v, _ := film.Get("tonemapkernel"); v != scene.Str("linear") {
		t.Fatal("expected the later tonemap kernel to win")
	}
	if v, _ := film.Get("yresolution"); v != scene.Int(720) {
		t.Fatal("expected film resolution to survive repeated merges")
	}
}
