package field

import (
	"errors"
	"image"
	"math/rand/v2"
	"testing"

	"github.com/Faultbox/meadow/internal/assets"
	"github.com/Faultbox/meadow/internal/engine/gfx"
	"github.com/Faultbox/meadow/internal/engine/grass"
	"github.com/Faultbox/meadow/internal/engine/shader"
	"github.com/Faultbox/meadow/pkg/math"
)

type call struct {
	op      string
	program gfx.Program
	uniform string
	mat     math.Mat4
	vec2    math.Vec2
	vec3s   []math.Vec3
	ints    int32
	count   int
}

// recorder is a gfx.Backend that records calls instead of drawing.
type recorder struct {
	calls    []call
	programs [][]shader.Source
	meshes   []gfx.MeshDesc
	textures int
	patch    int

	current  gfx.Program
	uniforms map[gfx.Uniform]string
	failOn   shader.Stage
}

var _ gfx.Backend = (*recorder)(nil)

func newRecorder() *recorder {
	return &recorder{uniforms: make(map[gfx.Uniform]string), failOn: -1}
}

func (r *recorder) CreateProgram(sources ...shader.Source) (gfx.Program, error) {
	for _, s := range sources {
		if s.Stage == r.failOn {
			return 0, &shader.CompileError{Stage: s.Stage, Log: "boom"}
		}
	}
	r.programs = append(r.programs, sources)
	return gfx.Program(len(r.programs)), nil
}

func (r *recorder) UseProgram(p gfx.Program) {
	r.current = p
	r.calls = append(r.calls, call{op: "use", program: p})
}

func (r *recorder) UniformLocation(p gfx.Program, name string) gfx.Uniform {
	loc := gfx.Uniform(int(p)*100 + len(r.uniforms))
	r.uniforms[loc] = name
	return loc
}

func (r *recorder) record(op string, u gfx.Uniform, c call) {
	c.op = op
	c.program = r.current
	c.uniform = r.uniforms[u]
	r.calls = append(r.calls, c)
}

func (r *recorder) SetUniformMatrix4(u gfx.Uniform, m math.Mat4) { r.record("mat4", u, call{mat: m}) }
func (r *recorder) SetUniform3f(u gfx.Uniform, v math.Vec3) { r.record("3f", u, call{}) }
func (r *recorder) SetUniform3fv(u gfx.Uniform, vs []math.Vec3) {
	r.record("3fv", u, call{count: len(vs), vec3s: append([]math.Vec3(nil), vs...)})
}
func (r *recorder) SetUniform2f(u gfx.Uniform, v math.Vec2) { r.record("2f", u, call{vec2: v}) }
func (r *recorder) SetUniform1f(u gfx.Uniform, f float32) { r.record("1f", u, call{}) }
func (r *recorder) SetUniform1i(u gfx.Uniform, i int32) { r.record("1i", u, call{ints: i}) }

func (r *recorder) CreateMesh(desc gfx.MeshDesc) (gfx.Mesh, error) {
	r.meshes = append(r.meshes, desc)
	return gfx.Mesh(len(r.meshes)), nil
}
func (r *recorder) BindMesh(m gfx.Mesh) { r.calls = append(r.calls, call{op: "bind", count: int(m)}) }
func (r *recorder) DrawElements(count int) {
	r.calls = append(r.calls, call{op: "elements", program: r.current, count: count})
}
func (r *recorder) SetPatchVertices(n int) { r.patch = n }
func (r *recorder) DrawPatches(count int) {
	r.calls = append(r.calls, call{op: "patches", program: r.current, count: count})
}

func (r *recorder) CreateTexture(img *image.RGBA) (gfx.Texture, error) {
	r.textures++
	return gfx.Texture(r.textures), nil
}
func (r *recorder) BindTexture(unit int, t gfx.Texture) {
	r.calls = append(r.calls, call{op: "texture", count: unit})
}

func (r *recorder) Viewport(width, height int) {}
func (r *recorder) Clear(color math.Vec3) { r.calls = append(r.calls, call{op: "clear"}) }
func (r *recorder) EnableDepthTest() {}
func (r *recorder) Close() {}

func (r *recorder) find(op, uniform string) []call {
	var out []call
	for _, c := range r.calls {
		if c.op == op && c.uniform == uniform {
			out = append(out, c)
		}
	}
	return out
}

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func testSources() Sources {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	return Sources{
		GroundVertex: "gv", GroundFragment: "gf",
		GrassVertex: "v", GrassTessControl: "tc", GrassTessEvaluation: "te", GrassFragment: "f",
		AlphaTexture: img, DiffuseTexture: img, ForceMap: img,
	}
}

func testOptions(blades, extent int) Options {
	cfg := grass.DefaultConfig()
	cfg.BladeCount = blades
	return Options{
		Plane:      grass.UnitPlane(),
		Blades:     grass.Generate(cfg, grass.UnitPlane(), rand.New(rand.NewPCG(1, 2))),
		GridExtent: extent,
		ClearColor: math.Vec3{X: 0.4, Y: 0.5, Z: 0.7},
	}
}

func testFrame() Frame {
	obj := math.NewTransform()
	obj.SetTranslation(math.Vec3{X: 10, Y: 0, Z: 20})
	return Frame{
		Width: 800, Height: 600,
		View: math.NewTransform(), Projection: math.NewTransform(), Object: obj,
		Time: 0.3, WindActive: true,
	}
}

func TestRenderNineDrawsPerMesh(t *testing.T) {
	rec := newRecorder()
	r, err := New(rec, testSources(), testOptions(10, 1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rec.calls = nil

	stats := r.Render(testFrame())
	if stats.GroundDraws != 9 || stats.GrassDraws != 9 {
		t.Errorf("draws = %d ground, %d grass, want 9 and 9", stats.GroundDraws, stats.GrassDraws)
	}
	if stats.Vertices != 9*40 {
		t.Errorf("vertices = %d, want %d", stats.Vertices, 9*40)
	}
	if got := rec.count("elements"); got != 9 {
		t.Errorf("DrawElements calls = %d, want 9", got)
	}
	if got := rec.count("patches"); got != 9 {
		t.Errorf("DrawPatches calls = %d, want 9", got)
	}
	for _, c := range rec.calls {
		if c.op == "elements" && c.count != 6 {
			t.Errorf("ground draw with %d indices, want 6", c.count)
		}
		if c.op == "patches" && c.count != 40 {
			t.Errorf("grass draw with %d vertices, want 40", c.count)
		}
	}
}

func TestRenderPatchPositions(t *testing.T) {
	rec := newRecorder()
	r, err := New(rec, testSources(), testOptions(4, 1))
	if err != nil {
		t.Fatal(err)
	}
	rec.calls = nil
	r.Render(testFrame())

	want := map[math.Vec2]bool{}
	for _, x := range []float32{-1.5, -0.5, 0.5} {
		for _, y := range []float32{-1.5, -0.5, 0.5} {
			want[math.Vec2{X: x, Y: y}] = true
		}
	}

	calls := rec.find("2f", "patchPos")
	if len(calls) != 18 {
		t.Fatalf("patchPos uploads = %d, want 18", len(calls))
	}
	seen := map[math.Vec2]int{}
	for _, c := range calls {
		if !want[c.vec2] {
			t.Errorf("unexpected patchPos %v", c.vec2)
		}
		seen[c.vec2]++
	}
	for p := range want {
		if seen[p] != 2 {
			t.Errorf("patchPos %v uploaded %d times, want 2", p, seen[p])
		}
	}
}

func TestRenderTileTranslations(t *testing.T) {
	rec := newRecorder()
	r, err := New(rec, testSources(), testOptions(4, 1))
	if err != nil {
		t.Fatal(err)
	}
	rec.calls = nil
	r.Render(testFrame())

	calls := rec.find("mat4", "objectTransform")
	if len(calls) != 9 {
		t.Fatalf("objectTransform uploads = %d, want 9", len(calls))
	}
	// row-major order: first tile is row -1, col -1
	first := calls[0].mat
	if first[12] != 9 || first[13] != 0 || first[14] != 19 {
		t.Errorf("first tile translation = (%v, %v, %v), want (9, 0, 19)", first[12], first[13], first[14])
	}
	last := calls[8].mat
	if last[12] != 11 || last[14] != 21 {
		t.Errorf("last tile translation = (%v, %v), want (11, 21)", last[12], last[14])
	}

	if got := len(rec.find("mat4", "object")); got != 9 {
		t.Errorf("ground object uploads = %d, want 9", got)
	}
}

func TestRenderFrameUniforms(t *testing.T) {
	rec := newRecorder()
	r, err := New(rec, testSources(), testOptions(4, 1))
	if err != nil {
		t.Fatal(err)
	}
	rec.calls = nil
	r.Render(testFrame())

	for _, name := range []string{"view", "projection", "viewTransform", "projectionTransform"} {
		if got := len(rec.find("mat4", name)); got != 1 {
			t.Errorf("%s uploads = %d, want 1", name, got)
		}
	}
	if got := len(rec.find("3f", "cameraPos")); got != 1 {
		t.Errorf("cameraPos uploads = %d, want 1", got)
	}
	if got := len(rec.find("1f", "time")); got != 1 {
		t.Errorf("time uploads = %d, want 1", got)
	}
	wind := rec.find("1i", "windActive")
	if len(wind) != 1 || wind[0].ints != 1 {
		t.Errorf("windActive = %+v, want one upload of 1", wind)
	}
	if got := rec.count("texture"); got != 3 {
		t.Errorf("texture binds = %d, want 3", got)
	}
	if got := rec.count("clear"); got != 1 {
		t.Errorf("clears = %d, want 1", got)
	}
}

func TestNewSetsStaticState(t *testing.T) {
	rec := newRecorder()
	if _, err := New(rec, testSources(), testOptions(5, 1)); err != nil {
		t.Fatal(err)
	}

	if rec.patch != 4 {
		t.Errorf("patch vertices = %d, want 4", rec.patch)
	}
	if rec.textures != 3 {
		t.Errorf("textures created = %d, want 3", rec.textures)
	}
	if len(rec.programs) != 2 || len(rec.programs[1]) != 4 {
		t.Errorf("programs = %d (grass stages %d), want 2 with 4 grass stages", len(rec.programs), len(rec.programs[1]))
	}

	if len(rec.meshes) != 2 {
		t.Fatalf("meshes = %d, want 2", len(rec.meshes))
	}
	ground, blades := rec.meshes[0], rec.meshes[1]
	if len(ground.Indices) != 6 || ground.Indices[0] != 2 || ground.Indices[5] != 3 {
		t.Errorf("ground indices = %v, want [2 1 0 2 0 3]", ground.Indices)
	}
	if blades.Stride != 64 || len(blades.Attribs) != 4 {
		t.Errorf("grass stride = %d attribs = %d, want 64 and 4", blades.Stride, len(blades.Attribs))
	}
	if len(blades.Vertices) != 5*16*4 {
		t.Errorf("grass floats = %d, want %d", len(blades.Vertices), 5*16*4)
	}

	for name, unit := range map[string]int32{"alphaTexture": 0, "diffuseTexture": 1, "forceMap": 2} {
		c := rec.find("1i", name)
		if len(c) != 1 || c[0].ints != unit {
			t.Errorf("%s sampler = %+v, want unit %d", name, c, unit)
		}
	}
	c := rec.find("3fv", "fieldRect")
	if len(c) != 1 || c[0].count != 2 {
		t.Fatalf("fieldRect upload = %+v, want one upload of 2 vectors", c)
	}
	rect := c[0].vec3s
	if rect[0] != (math.Vec3{X: -1.5, Y: 0, Z: -1.5}) || rect[1] != (math.Vec3{X: 1.5, Y: 0, Z: 1.5}) {
		t.Errorf("fieldRect = %v, want {-1.5,0,-1.5} {1.5,0,1.5}", rect)
	}
}

func TestGridExtent(t *testing.T) {
	rec := newRecorder()
	r, err := New(rec, testSources(), testOptions(3, 2))
	if err != nil {
		t.Fatal(err)
	}
	stats := r.Render(testFrame())
	if stats.GroundDraws != 25 || stats.GrassDraws != 25 {
		t.Errorf("draws = %d/%d, want 25/25", stats.GroundDraws, stats.GrassDraws)
	}
	c := rec.find("3fv", "fieldRect")
	if len(c) != 1 || c[0].vec3s[0].X != -2.5 || c[0].vec3s[1].Z != 2.5 {
		t.Errorf("fieldRect upload = %+v, want ±2.5", c)
	}
}

func TestNoBladesDrawsGroundOnly(t *testing.T) {
	rec := newRecorder()
	r, err := New(rec, testSources(), testOptions(0, 1))
	if err != nil {
		t.Fatal(err)
	}
	stats := r.Render(testFrame())
	if stats.GroundDraws != 9 || stats.GrassDraws != 0 {
		t.Errorf("draws = %d/%d, want 9/0", stats.GroundDraws, stats.GrassDraws)
	}
	if len(rec.meshes) != 1 {
		t.Errorf("meshes = %d, want only the ground", len(rec.meshes))
	}
}

func TestCompileErrorPropagates(t *testing.T) {
	rec := newRecorder()
	rec.failOn = shader.TessEvaluation

	_, err := New(rec, testSources(), testOptions(1, 1))
	var ce *shader.CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("New() error = %v, want *shader.CompileError", err)
	}
	if ce.Stage != shader.TessEvaluation {
		t.Errorf("stage = %v, want tess evaluation", ce.Stage)
	}
}

func TestNewRejectsMissingTexture(t *testing.T) {
	src := testSources()
	src.ForceMap = nil
	if _, err := New(newRecorder(), src, testOptions(1, 1)); err == nil {
		t.Error("expected error for missing force map")
	}
}

func TestTiles(t *testing.T) {
	tiles := Tiles(1)
	if len(tiles) != 9 {
		t.Fatalf("len = %d, want 9", len(tiles))
	}
	if tiles[0].Row != -1 || tiles[0].Col != -1 || tiles[0].PatchPos != (math.Vec2{X: -1.5, Y: -1.5}) {
		t.Errorf("first tile = %+v", tiles[0])
	}
	if tiles[5].Row != 0 || tiles[5].Col != 1 || tiles[5].PatchPos != (math.Vec2{X: 0.5, Y: -0.5}) {
		t.Errorf("tile 5 = %+v", tiles[5])
	}
	if got := len(Tiles(0)); got != 1 {
		t.Errorf("Tiles(0) = %d tiles, want 1", got)
	}
}

func TestLoadSources(t *testing.T) {
	m := assets.NewManager()
	src, err := LoadSources(m, TextureNames{
		Alpha:    "builtin:grass_alpha",
		Diffuse:  "builtin:grass_diffuse",
		ForceMap: "builtin:force_map",
	})
	if err != nil {
		t.Fatalf("LoadSources: %v", err)
	}
	if src.GrassTessEvaluation == "" || src.GroundVertex == "" {
		t.Error("shader sources not loaded")
	}
	if src.ForceMap == nil || src.ForceMap.Bounds().Dx() == 0 {
		t.Error("force map not generated")
	}

	_, err = LoadSources(m, TextureNames{
		Alpha:    "builtin:grass_alpha",
		Diffuse:  "builtin:grass_diffuse",
		ForceMap: "missing.png",
	})
	if !errors.Is(err, assets.ErrNotFound) {
		t.Errorf("LoadSources(missing) error = %v, want ErrNotFound", err)
	}
}
