// Package gfx defines the graphics capabilities the field renderer draws with.
//
// Backend is implemented by GL for a live OpenGL 4.1 context. Handles are
// opaque values owned by the backend that created them.
package gfx

import (
	"image"

	"github.com/Faultbox/meadow/internal/engine/shader"
	"github.com/Faultbox/meadow/pkg/math"
)

// Program is a linked shader program.
type Program uint32

// Mesh is a vertex array with its buffers.
type Mesh uint32

// Texture is a 2D RGBA texture.
type Texture uint32

// Uniform is a uniform location inside a program. -1 means inactive; setting
// an inactive uniform is a no-op.
type Uniform int32

// Attrib describes one float vertex attribute inside an interleaved buffer.
type Attrib struct {
	Size   int // components, 1..4
	Offset int // bytes from the start of the vertex
}

// MeshDesc is everything needed to upload a mesh.
type MeshDesc struct {
	Vertices []float32
	Stride   int // bytes per vertex
	Attribs  []Attrib
	Indices  []uint32 // optional
}

// Backend issues graphics commands.
type Backend interface {
	CreateProgram(sources ...shader.Source) (Program, error)
	UseProgram(p Program)
	UniformLocation(p Program, name string) Uniform

	SetUniformMatrix4(u Uniform, m math.Mat4)
	SetUniform3f(u Uniform, v math.Vec3)
	SetUniform3fv(u Uniform, vs []math.Vec3)
	SetUniform2f(u Uniform, v math.Vec2)
	SetUniform1f(u Uniform, f float32)
	SetUniform1i(u Uniform, i int32)

	CreateMesh(desc MeshDesc) (Mesh, error)
	BindMesh(m Mesh)
	DrawElements(count int)
	SetPatchVertices(n int)
	DrawPatches(count int)

	CreateTexture(img *image.RGBA) (Texture, error)
	BindTexture(unit int, t Texture)

	Viewport(width, height int)
	Clear(color math.Vec3)
	EnableDepthTest()

	Close()
}
