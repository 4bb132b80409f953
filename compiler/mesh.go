package compiler

import (
	"bufio"
	"io"
	"strconv"

	"github.com/Erdk/luxor/scene"
	"github.com/Erdk/luxor/types"
)

// Serialize a mesh payload using the same statement formatting as inline
// parameters, so companion files share the grammar of the manifest.
func writeMesh(w io.Writer, mesh *types.Mesh) error {
	bw := bufio.NewWriter(w)

	flat := make([]float64, 0, len(mesh.Points)*3)
	for _, p := range mesh.Points {
		flat = append(flat, p[0], p[1], p[2])
	}
	line, err := paramLine(scene.Param{Name: "P", Value: scene.FloatVec(flat)})
	if err != nil {
		return err
	}
	bw.WriteString(line)
	bw.WriteByte('\n')

	if len(mesh.Normals) > 0 {
		flat = flat[:0]
		for _, n := range mesh.Normals {
			flat = append(flat, n[0], n[1], n[2])
		}
		if line, err = paramLine(scene.Param{Name: "N", Value: scene.FloatVec(flat)}); err != nil {
			return err
		}
		bw.WriteString(line)
		bw.WriteByte('\n')
	}

	if len(mesh.UVs) > 0 {
		flat = flat[:0]
		for _, uv := range mesh.UVs {
			flat = append(flat, uv[0], uv[1])
		}
		if line, err = paramLine(scene.Param{Name: "uv", Value: scene.FloatVec(flat)}); err != nil {
			return err
		}
		bw.WriteString(line)
		bw.WriteByte('\n')
	}

	bw.WriteString("\t\"integer indices\" [")
	for idx, index := range mesh.Indices {
		if idx > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(index))
	}
	bw.WriteString("]\n")

	return bw.Flush()
}
