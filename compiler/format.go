package compiler

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Erdk/luxor/scene"
	"github.com/Erdk/luxor/types"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatFloats(vals ...float64) string {
	parts := make([]string, len(vals))
	for idx, v := range vals {
		parts[idx] = formatFloat(v)
	}
	return strings.Join(parts, " ")
}

// Render a single parameter line. The tagged value's concrete type selects
// both the declared kind and the literal formatting; the switch is exhaustive
// over the closed value set.
func paramLine(param scene.Param) (string, error) {
	name := param.Name

	switch v := param.Value.(type) {
	case scene.Int:
		return fmt.Sprintf("\t\"integer %s\" [%d]", name, int64(v)), nil
	case scene.Float:
		return fmt.Sprintf("\t\"float %s\" [%s]", name, formatFloat(float64(v))), nil
	case scene.Bool:
		literal := "false"
		if v {
			literal = "true"
		}
		return fmt.Sprintf("\t\"bool %s\" [\"%s\"]", name, literal), nil
	case scene.Str:
		return fmt.Sprintf("\t\"string %s\" [\"%s\"]", name, string(v)), nil
	case scene.Color:
		return fmt.Sprintf("\t\"color %s\" [%s]", name, formatFloats(v[0], v[1], v[2])), nil
	case scene.FloatVec:
		return fmt.Sprintf("\t\"float %s\" [%s]", name, formatFloats(v...)), nil
	case scene.PointVec:
		flat := make([]float64, 0, len(v)*3)
		for _, p := range v {
			flat = append(flat, p[0], p[1], p[2])
		}
		return fmt.Sprintf("\t\"point %s\" [%s]", name, formatFloats(flat...)), nil
	case scene.StrVec:
		quoted := make([]string, len(v))
		for idx, s := range v {
			quoted[idx] = fmt.Sprintf("%q", s)
		}
		return fmt.Sprintf("\t\"string %s\" [%s]", name, strings.Join(quoted, " ")), nil
	case scene.LogColor:
		// Absorption-law convention: scale then exponentiate by depth.
		return fmt.Sprintf("\t\"color %s\" [%s]", name, formatFloats(
			math.Pow(v.Base[0]*v.Scale, v.Depth),
			math.Pow(v.Base[1]*v.Scale, v.Depth),
			math.Pow(v.Base[2]*v.Scale, v.Depth),
		)), nil
	case scene.TexRef:
		return fmt.Sprintf("\t\"texture %s\" [\"%s\"]", name, string(v)), nil
	}

	return "", scene.NewValidationError(name, "unsupported value type %T", param.Value)
}

// Emit the coordinate-system block preceding an entity. Explicit matrices
// win over composed specs; composed rotations follow x, y, z order before
// scaling.
func writeTransform(buf *strings.Builder, t *types.Transform) {
	if t == nil {
		return
	}
	if t.Matrix != nil {
		m := *t.Matrix
		buf.WriteString("Transform [")
		buf.WriteString(formatFloats(m[:]...))
		buf.WriteString("]\n")
		return
	}

	if t.Translation != (types.Vec3{}) {
		fmt.Fprintf(buf, "Translate %s\n", formatFloats(t.Translation[0], t.Translation[1], t.Translation[2]))
	}
	if t.Rotation[0] != 0 {
		fmt.Fprintf(buf, "Rotate %s 1 0 0\n", formatFloat(t.Rotation[0]))
	}
	if t.Rotation[1] != 0 {
		fmt.Fprintf(buf, "Rotate %s 0 1 0\n", formatFloat(t.Rotation[1]))
	}
	if t.Rotation[2] != 0 {
		fmt.Fprintf(buf, "Rotate %s 0 0 1\n", formatFloat(t.Rotation[2]))
	}
	if t.AxisRot != nil {
		fmt.Fprintf(buf, "Rotate %s %s\n", formatFloat(t.AxisRot.Angle),
			formatFloats(t.AxisRot.Axis[0], t.AxisRot.Axis[1], t.AxisRot.Axis[2]))
	}
	if t.Scaling != (types.Vec3{1, 1, 1}) && t.Scaling != (types.Vec3{}) {
		fmt.Fprintf(buf, "Scale %s\n", formatFloats(t.Scaling[0], t.Scaling[1], t.Scaling[2]))
	}
}
