package builder

import "github.com/Erdk/luxor/scene"

// TextureKind enumerates the supported texture variants.
type TextureKind int

const (
	TexConstant TextureKind = iota
	TexImageMap
	TexCheckerboard
	TexScale
)

var textureKindNames = []string{"constant", "imagemap", "checkerboard", "scale"}

func (k TextureKind) String() string {
	return textureKindNames[k]
}

// Lookup a texture kind by its discriminator name.
func ParseTextureKind(name string) (TextureKind, bool) {
	for idx, n := range textureKindNames {
		if n == name {
			return TextureKind(idx), true
		}
	}
	return 0, false
}

// TextureSpec describes a named texture that materials can reference.
type TextureSpec struct {
	ID   string
	Kind string

	// Constant color value.
	Value [3]float64

	// Image map parameters.
	FileName string
	Gamma    float64
	UScale   float64
	VScale   float64

	// Checkerboard colors, scale texture references.
	Tex1 string
	Tex2 string
}

// Insert a texture into the textures group.
func (b *Builder) AddTexture(spec TextureSpec) error {
	if spec.ID == "" {
		return scene.NewValidationError("texture id", "id cannot be empty")
	}
	kind, known := ParseTextureKind(spec.Kind)
	if !known {
		return scene.NewOptionError("texture type", spec.Kind, textureKindNames)
	}

	e := scene.NewEntity(kind.String())
	switch kind {
	case TexConstant:
		e.Set("value", scene.Color(spec.Value))
	case TexImageMap:
		if spec.FileName == "" {
			return scene.NewValidationError("texture filename", "image maps require a file name")
		}
		e.Set("filename", scene.Str(spec.FileName))
		if spec.Gamma > 0 {
			e.Set("gamma", scene.Float(spec.Gamma))
		}
		if spec.UScale > 0 {
			e.Set("uscale", scene.Float(spec.UScale))
		}
		if spec.VScale > 0 {
			e.Set("vscale", scene.Float(spec.VScale))
		}
	case TexCheckerboard:
		if spec.Tex1 == "" || spec.Tex2 == "" {
			return scene.NewValidationError("texture tex1/tex2", "checkerboards require two texture references")
		}
		e.Set("tex1", scene.TexRef(spec.Tex1))
		e.Set("tex2", scene.TexRef(spec.Tex2))
	case TexScale:
		if spec.Tex1 == "" || spec.Tex2 == "" {
			return scene.NewValidationError("texture tex1/tex2", "scale textures require two texture references")
		}
		e.Set("tex1", scene.TexRef(spec.Tex1))
		e.Set("tex2", scene.TexRef(spec.Tex2))
	}

	return b.graph.Upsert(scene.GroupTextures, spec.ID, e)
}

// Insert a batch of textures, left to right.
func (b *Builder) AddTextures(specs []TextureSpec) error {
	for _, spec := range specs {
		if err := b.AddTexture(spec); err != nil {
			return err
		}
	}
	return nil
}
