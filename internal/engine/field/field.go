// Package field draws the ground and the grass patch tiled over a square grid.
//
// The grass patch is generated once and uploaded as a single static buffer.
// Every frame it is drawn once per tile with a per-tile object translation and
// patch position, for both the ground and the grass program.
package field

import (
	"errors"
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/meadow/internal/engine/gfx"
	"github.com/Faultbox/meadow/internal/engine/grass"
	"github.com/Faultbox/meadow/internal/engine/shader"
	"github.com/Faultbox/meadow/internal/logger"
	"github.com/Faultbox/meadow/pkg/math"
)

// Texture units bound by the grass program.
const (
	AlphaUnit   = 0
	DiffuseUnit = 1
	ForceUnit   = 2
)

// groundIndices are the two triangles of the ground quad.
var groundIndices = []uint32{2, 1, 0, 2, 0, 3}

// Sources holds shader code and decoded textures.
type Sources struct {
	GroundVertex   string
	GroundFragment string

	GrassVertex         string
	GrassTessControl    string
	GrassTessEvaluation string
	GrassFragment       string

	AlphaTexture   *image.RGBA
	DiffuseTexture *image.RGBA
	ForceMap       *image.RGBA
}

// Options shapes the field.
type Options struct {
	Plane      [4]math.Vec3 // ground quad corners, plane[0] and plane[2] opposite
	Blades     grass.Field
	GridExtent int // tiles on each side of the centre tile
	ClearColor math.Vec3
}

// Frame is everything Render needs for one frame. Render derives nothing.
type Frame struct {
	Width, Height int

	View       math.Transform
	Projection math.Transform
	Object     math.Transform

	CameraPos  math.Vec3
	Time       float32
	WindActive bool
}

// Stats counts what one Render issued.
type Stats struct {
	GroundDraws int
	GrassDraws  int
	Vertices    int // grass control points submitted
}

// Tile is one cell of the grid.
type Tile struct {
	Row, Col int
	PatchPos math.Vec2
}

// Tiles lists the grid cells row by row, from -extent to extent on each axis.
func Tiles(extent int) []Tile {
	if extent < 0 {
		extent = 0
	}
	tiles := make([]Tile, 0, (2*extent+1)*(2*extent+1))
	for row := -extent; row <= extent; row++ {
		for col := -extent; col <= extent; col++ {
			tiles = append(tiles, Tile{
				Row:      row,
				Col:      col,
				PatchPos: math.Vec2{X: -0.5 + float32(col), Y: -0.5 + float32(row)},
			})
		}
	}
	return tiles
}

// FieldRect returns the two corners of the whole tiled field.
func FieldRect(plane [4]math.Vec3, extent int) [2]math.Vec3 {
	e := float32(extent)
	grow := math.Vec3{X: e, Y: 0, Z: e}
	return [2]math.Vec3{plane[0].Sub(grow), plane[2].Add(grow)}
}

type groundUniforms struct {
	object, view, projection, patchPos gfx.Uniform
}

type grassUniforms struct {
	object, view, projection gfx.Uniform
	cameraPos                gfx.Uniform
	time, windActive         gfx.Uniform
	patchPos, fieldRect      gfx.Uniform
	alpha, diffuse, force    gfx.Uniform
}

// Renderer owns the GPU resources of the field.
type Renderer struct {
	backend gfx.Backend
	log     *zap.Logger

	groundProgram gfx.Program
	groundMesh    gfx.Mesh
	ground        groundUniforms

	grassProgram  gfx.Program
	grassMesh     gfx.Mesh
	grassVertices int
	grass         grassUniforms

	textures [3]gfx.Texture

	tiles      []Tile
	fieldRect  [2]math.Vec3
	clearColor math.Vec3
}

// New compiles both programs, uploads the meshes and textures and sets the
// uniforms that never change.
func New(b gfx.Backend, src Sources, opts Options) (*Renderer, error) {
	if opts.GridExtent < 0 {
		return nil, fmt.Errorf("negative grid extent %d", opts.GridExtent)
	}
	if src.AlphaTexture == nil || src.DiffuseTexture == nil || src.ForceMap == nil {
		return nil, errors.New("missing grass texture")
	}

	r := &Renderer{
		backend:    b,
		log:        logger.Named("field"),
		tiles:      Tiles(opts.GridExtent),
		fieldRect:  FieldRect(opts.Plane, opts.GridExtent),
		clearColor: opts.ClearColor,
	}

	if err := r.initGround(src, opts.Plane); err != nil {
		return nil, fmt.Errorf("ground: %w", err)
	}
	if err := r.initGrass(src, opts.Blades); err != nil {
		return nil, fmt.Errorf("grass: %w", err)
	}

	b.EnableDepthTest()

	r.log.Info("field ready",
		zap.Int("blades", len(opts.Blades)),
		zap.Int("tiles", len(r.tiles)),
		zap.Float32("field_min_x", r.fieldRect[0].X),
		zap.Float32("field_max_x", r.fieldRect[1].X),
	)
	return r, nil
}

func (r *Renderer) initGround(src Sources, plane [4]math.Vec3) error {
	b := r.backend

	p, err := b.CreateProgram(
		shader.Source{Stage: shader.Vertex, Code: src.GroundVertex},
		shader.Source{Stage: shader.Fragment, Code: src.GroundFragment},
	)
	if err != nil {
		return err
	}
	r.groundProgram = p

	vertices := make([]float32, 0, 12)
	for _, c := range plane {
		vertices = append(vertices, c.X, c.Y, c.Z)
	}
	r.groundMesh, err = b.CreateMesh(gfx.MeshDesc{
		Vertices: vertices,
		Stride:   3 * 4,
		Attribs:  []gfx.Attrib{{Size: 3, Offset: 0}},
		Indices:  groundIndices,
	})
	if err != nil {
		return err
	}

	r.ground = groundUniforms{
		object:     b.UniformLocation(p, "object"),
		view:       b.UniformLocation(p, "view"),
		projection: b.UniformLocation(p, "projection"),
		patchPos:   b.UniformLocation(p, "patchPos"),
	}
	return nil
}

func (r *Renderer) initGrass(src Sources, blades grass.Field) error {
	b := r.backend

	p, err := b.CreateProgram(
		shader.Source{Stage: shader.Vertex, Code: src.GrassVertex},
		shader.Source{Stage: shader.TessControl, Code: src.GrassTessControl},
		shader.Source{Stage: shader.TessEvaluation, Code: src.GrassTessEvaluation},
		shader.Source{Stage: shader.Fragment, Code: src.GrassFragment},
	)
	if err != nil {
		return err
	}
	r.grassProgram = p

	b.SetPatchVertices(grass.CornersPerBlade)

	if len(blades) > 0 {
		const vec4Size = 4 * 4
		r.grassMesh, err = b.CreateMesh(gfx.MeshDesc{
			Vertices: blades.Floats(),
			Stride:   grass.RecordsPerCorner * vec4Size,
			Attribs: []gfx.Attrib{
				{Size: 4, Offset: 0},
				{Size: 4, Offset: vec4Size},
				{Size: 4, Offset: 2 * vec4Size},
				{Size: 4, Offset: 3 * vec4Size},
			},
		})
		if err != nil {
			return err
		}
		r.grassVertices = blades.VertexCount()
	}

	r.grass = grassUniforms{
		object:     b.UniformLocation(p, "objectTransform"),
		view:       b.UniformLocation(p, "viewTransform"),
		projection: b.UniformLocation(p, "projectionTransform"),
		cameraPos:  b.UniformLocation(p, "cameraPos"),
		time:       b.UniformLocation(p, "time"),
		windActive: b.UniformLocation(p, "windActive"),
		patchPos:   b.UniformLocation(p, "patchPos"),
		fieldRect:  b.UniformLocation(p, "fieldRect"),
		alpha:      b.UniformLocation(p, "alphaTexture"),
		diffuse:    b.UniformLocation(p, "diffuseTexture"),
		force:      b.UniformLocation(p, "forceMap"),
	}

	images := [3]*image.RGBA{src.AlphaTexture, src.DiffuseTexture, src.ForceMap}
	for unit, img := range images {
		tex, err := b.CreateTexture(img)
		if err != nil {
			return fmt.Errorf("texture unit %d: %w", unit, err)
		}
		r.textures[unit] = tex
	}

	b.UseProgram(p)
	b.SetUniform3fv(r.grass.fieldRect, r.fieldRect[:])
	b.SetUniform1i(r.grass.alpha, AlphaUnit)
	b.SetUniform1i(r.grass.diffuse, DiffuseUnit)
	b.SetUniform1i(r.grass.force, ForceUnit)
	return nil
}

// Render draws one frame: the ground on every tile, then the grass on every tile.
func (r *Renderer) Render(f Frame) Stats {
	b := r.backend
	var stats Stats

	b.Viewport(f.Width, f.Height)
	b.Clear(r.clearColor)

	view := f.View.Matrix()
	projection := f.Projection.Matrix()

	b.UseProgram(r.groundProgram)
	b.SetUniformMatrix4(r.ground.view, view)
	b.SetUniformMatrix4(r.ground.projection, projection)
	b.BindMesh(r.groundMesh)
	r.eachTile(f.Object, r.ground.object, r.ground.patchPos, func() {
		b.DrawElements(len(groundIndices))
		stats.GroundDraws++
	})

	b.UseProgram(r.grassProgram)
	b.SetUniformMatrix4(r.grass.view, view)
	b.SetUniformMatrix4(r.grass.projection, projection)
	b.SetUniform3f(r.grass.cameraPos, f.CameraPos)
	b.SetUniform1f(r.grass.time, f.Time)
	wind := int32(0)
	if f.WindActive {
		wind = 1
	}
	b.SetUniform1i(r.grass.windActive, wind)

	if r.grassVertices == 0 {
		return stats
	}

	b.BindTexture(AlphaUnit, r.textures[AlphaUnit])
	b.BindTexture(DiffuseUnit, r.textures[DiffuseUnit])
	b.BindTexture(ForceUnit, r.textures[ForceUnit])
	b.BindMesh(r.grassMesh)
	r.eachTile(f.Object, r.grass.object, r.grass.patchPos, func() {
		b.DrawPatches(r.grassVertices)
		stats.GrassDraws++
		stats.Vertices += r.grassVertices
	})

	return stats
}

// eachTile uploads the shifted object transform and patch position of every
// tile, calling draw after each.
func (r *Renderer) eachTile(object math.Transform, objectLoc, patchLoc gfx.Uniform, draw func()) {
	origin := object.Translation()
	tile := object
	for _, t := range r.tiles {
		tile.SetTranslation(origin.Add(math.Vec3{X: float32(t.Col), Y: 0, Z: float32(t.Row)}))
		r.backend.SetUniformMatrix4(objectLoc, tile.Matrix())
		r.backend.SetUniform2f(patchLoc, t.PatchPos)
		draw()
	}
}
