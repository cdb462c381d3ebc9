package app

import (
	"image/color"
	"iter"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/objview/pkg/geometry"
	"github.com/philipparndt/objview/pkg/viewer"
)

// rlgl matrix stacks
const (
	matrixModelview  int32 = 0x1700
	matrixProjection int32 = 0x1701
)

// gpuSurface draws through raylib's immediate mode. Begin and End wrap
// BeginMode3D/EndMode3D and then replace raylib's camera matrices with
// the session's own projection and view.
type gpuSurface struct {
	camera rl.Camera3D
}

func newGPUSurface() *gpuSurface {
	return &gpuSurface{
		camera: rl.Camera3D{
			Position:   rl.Vector3{X: 0, Y: 0, Z: 1},
			Target:     rl.Vector3{X: 0, Y: 0, Z: 0},
			Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
			Fovy:       45.0,
			Projection: rl.CameraPerspective,
		},
	}
}

func (s *gpuSurface) Clear(background color.RGBA) {
	rl.ClearBackground(toRaylibColor(background))
}

func (s *gpuSurface) Begin(frame viewer.Frame) {
	rl.BeginMode3D(s.camera)

	rl.MatrixMode(matrixProjection)
	rl.LoadIdentity()
	rl.MultMatrixf(matrixToFloats(frame.Projection))

	rl.MatrixMode(matrixModelview)
	rl.LoadIdentity()
	rl.MultMatrixf(matrixToFloats(frame.View))

	rl.EnableDepthTest()
	rl.DisableBackfaceCulling()
}

func (s *gpuSurface) DrawLine(from, to geometry.Vector3, c color.RGBA) {
	rl.DrawLine3D(toRaylibVector(from), toRaylibVector(to), toRaylibColor(c))
}

func (s *gpuSurface) DrawTriangles(triangles iter.Seq[geometry.Triangle], mode viewer.Mode, c color.RGBA, lineWidth float32) {
	col := toRaylibColor(c)

	if mode == viewer.Wireframe {
		// polygon mode applies when the batch is flushed
		rl.DrawRenderBatchActive()
		rl.SetLineWidth(lineWidth)
		rl.EnableWireMode()
		defer func() {
			rl.DrawRenderBatchActive()
			rl.DisableWireMode()
			rl.SetLineWidth(1)
		}()
	}

	for tri := range triangles {
		rl.DrawTriangle3D(toRaylibVector(tri.V1), toRaylibVector(tri.V2), toRaylibVector(tri.V3), col)
	}
}

func (s *gpuSurface) End() {
	rl.EndMode3D()
	rl.EnableBackfaceCulling()
}

// matrixToFloats flattens a column-major matrix the way rlgl expects it
func matrixToFloats(m mgl64.Mat4) []float32 {
	out := make([]float32, len(m))
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

func toRaylibVector(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func toRaylibColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
