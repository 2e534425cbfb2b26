package gfx

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meadow/internal/engine/shader"
	"github.com/Faultbox/meadow/internal/logger"
	"github.com/Faultbox/meadow/pkg/math"
)

type glMesh struct {
	vao, vbo, ebo uint32
}

// GL is a Backend on the current OpenGL 4.1 core context.
type GL struct {
	programs []uint32
	meshes   map[Mesh]glMesh
	textures []uint32
}

var _ Backend = (*GL)(nil)

// NewGL loads the GL entry points. Must be called after the context is current.
func NewGL() (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	return &GL{meshes: make(map[Mesh]glMesh)}, nil
}

// CreateProgram compiles and links sources and tracks the program for Close.
func (b *GL) CreateProgram(sources ...shader.Source) (Program, error) {
	p, err := shader.CompileProgram(sources...)
	if err != nil {
		return 0, err
	}
	b.programs = append(b.programs, p)
	logger.Debug("shader program created", zap.Uint32("program", p), zap.Int("stages", len(sources)))
	return Program(p), nil
}

// UseProgram makes p current.
func (b *GL) UseProgram(p Program) {
	gl.UseProgram(uint32(p))
}

// UniformLocation looks up name in p. Unknown names return -1.
func (b *GL) UniformLocation(p Program, name string) Uniform {
	loc := shader.Uniform(uint32(p), name)
	if loc < 0 {
		logger.Debug("uniform not active", zap.Uint32("program", uint32(p)), zap.String("name", name))
	}
	return Uniform(loc)
}

// SetUniformMatrix4 sets a mat4 uniform on the current program.
// Matrices are column-major so they upload untransposed.
func (b *GL) SetUniformMatrix4(u Uniform, m math.Mat4) {
	gl.UniformMatrix4fv(int32(u), 1, false, m.Ptr())
}

// SetUniform3f sets a vec3 uniform on the current program.
func (b *GL) SetUniform3f(u Uniform, v math.Vec3) {
	gl.Uniform3f(int32(u), v.X, v.Y, v.Z)
}

// SetUniform3fv sets a vec3 array uniform on the current program.
func (b *GL) SetUniform3fv(u Uniform, vs []math.Vec3) {
	if len(vs) == 0 {
		return
	}
	flat := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		flat = append(flat, v.X, v.Y, v.Z)
	}
	gl.Uniform3fv(int32(u), int32(len(vs)), &flat[0])
}

// SetUniform2f sets a vec2 uniform on the current program.
func (b *GL) SetUniform2f(u Uniform, v math.Vec2) {
	gl.Uniform2f(int32(u), v.X, v.Y)
}

// SetUniform1f sets a float uniform on the current program.
func (b *GL) SetUniform1f(u Uniform, f float32) {
	gl.Uniform1f(int32(u), f)
}

// SetUniform1i sets an int or sampler uniform on the current program.
func (b *GL) SetUniform1i(u Uniform, i int32) {
	gl.Uniform1i(int32(u), i)
}

// CreateMesh uploads desc into a new VAO with its vertex and index buffers.
func (b *GL) CreateMesh(desc MeshDesc) (Mesh, error) {
	if len(desc.Vertices) == 0 {
		return 0, errors.New("mesh has no vertices")
	}
	if desc.Stride <= 0 {
		return 0, fmt.Errorf("invalid stride %d", desc.Stride)
	}

	var m glMesh
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(desc.Vertices)*4, unsafe.Pointer(&desc.Vertices[0]), gl.STATIC_DRAW)

	if len(desc.Indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(desc.Indices)*4, unsafe.Pointer(&desc.Indices[0]), gl.STATIC_DRAW)
	}

	for i, a := range desc.Attribs {
		gl.VertexAttribPointerWithOffset(uint32(i), int32(a.Size), gl.FLOAT, false, int32(desc.Stride), uintptr(a.Offset))
		gl.EnableVertexAttribArray(uint32(i))
	}

	gl.BindVertexArray(0)

	b.meshes[Mesh(m.vao)] = m
	logger.Debug("mesh created",
		zap.Uint32("vao", m.vao),
		zap.Int("floats", len(desc.Vertices)),
		zap.Int("indices", len(desc.Indices)),
	)
	return Mesh(m.vao), nil
}

// BindMesh binds the VAO of m.
func (b *GL) BindMesh(m Mesh) {
	gl.BindVertexArray(uint32(m))
}

// DrawElements draws count indices of the bound mesh as triangles.
func (b *GL) DrawElements(count int) {
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, nil)
}

// SetPatchVertices sets the control points per tessellation patch.
func (b *GL) SetPatchVertices(n int) {
	gl.PatchParameteri(gl.PATCH_VERTICES, int32(n))
}

// DrawPatches draws count vertices of the bound mesh as patches.
func (b *GL) DrawPatches(count int) {
	gl.DrawArrays(gl.PATCHES, 0, int32(count))
}

// CreateTexture uploads img as a clamped, linearly filtered 2D texture.
func (b *GL) CreateTexture(img *image.RGBA) (Texture, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return 0, errors.New("empty texture")
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	b.textures = append(b.textures, id)
	return Texture(id), nil
}

// BindTexture binds t to texture unit.
func (b *GL) BindTexture(unit int, t Texture) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, uint32(t))
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (b *GL) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// Viewport sets the viewport to width x height pixels.
func (b *GL) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears the color and depth buffers.
func (b *GL) Clear(color math.Vec3) {
	gl.ClearColor(color.R(), color.G(), color.B(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// EnableDepthTest turns on less-than depth testing.
func (b *GL) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
}

// Close releases every resource the backend created.
func (b *GL) Close() {
	logger.Info("closing graphics backend")
	for _, m := range b.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		if m.ebo != 0 {
			gl.DeleteBuffers(1, &m.ebo)
		}
	}
	b.meshes = make(map[Mesh]glMesh)
	if len(b.textures) > 0 {
		gl.DeleteTextures(int32(len(b.textures)), &b.textures[0])
		b.textures = nil
	}
	for _, p := range b.programs {
		gl.DeleteProgram(p)
	}
	b.programs = nil
}
