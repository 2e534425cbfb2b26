// Package shader compiles and links OpenGL shader programs.
package shader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Stage identifies a programmable pipeline stage.
type Stage int

const (
	Vertex Stage = iota
	TessControl
	TessEvaluation
	Fragment
	// Link is reported by CompileError when linking fails.
	Link
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case TessControl:
		return "tess control"
	case TessEvaluation:
		return "tess evaluation"
	case Fragment:
		return "fragment"
	case Link:
		return "link"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

func (s Stage) glType() uint32 {
	switch s {
	case Vertex:
		return gl.VERTEX_SHADER
	case TessControl:
		return gl.TESS_CONTROL_SHADER
	case TessEvaluation:
		return gl.TESS_EVALUATION_SHADER
	case Fragment:
		return gl.FRAGMENT_SHADER
	}
	return 0
}

// Source is the GLSL code of one stage.
type Source struct {
	Stage Stage
	Code  string
}

// CompileError carries the driver's info log for a failed stage or link.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader: %s", e.Stage, strings.TrimRight(e.Log, "\x00\n "))
}

// ErrNoStages is returned when a program has neither a vertex nor a fragment stage.
var ErrNoStages = errors.New("program needs a vertex and a fragment stage")

// Validate checks a stage list before any GL call is made.
// Tessellation stages must come as a pair.
func Validate(sources []Source) error {
	var seen [Link]bool
	for _, src := range sources {
		if src.Stage < Vertex || src.Stage >= Link {
			return fmt.Errorf("invalid %s", src.Stage)
		}
		if seen[src.Stage] {
			return fmt.Errorf("duplicate %s stage", src.Stage)
		}
		seen[src.Stage] = true
	}
	if !seen[Vertex] || !seen[Fragment] {
		return ErrNoStages
	}
	if seen[TessControl] != seen[TessEvaluation] {
		return errors.New("tessellation control and evaluation stages must be paired")
	}
	return nil
}

// CompileProgram compiles every stage and links them into a program.
// Source sets rejected by Validate fail before any GL call. Compile and link
// failures leak nothing and return a *CompileError.
func CompileProgram(sources ...Source) (uint32, error) {
	if err := Validate(sources); err != nil {
		return 0, err
	}

	shaders := make([]uint32, 0, len(sources))
	defer func() {
		for _, s := range shaders {
			gl.DeleteShader(s)
		}
	}()

	for _, src := range sources {
		s, err := compileShader(src)
		if err != nil {
			return 0, err
		}
		shaders = append(shaders, s)
	}

	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, &CompileError{Stage: Link, Log: string(log)}
	}

	for _, s := range shaders {
		gl.DetachShader(program, s)
	}
	return program, nil
}

func compileShader(src Source) (uint32, error) {
	shader := gl.CreateShader(src.Stage.glType())
	csource, free := gl.Strs(src.Code + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, &CompileError{Stage: src.Stage, Log: string(log)}
	}

	return shader, nil
}

// Uniform returns the location of name in program, or -1 if it is not active.
func Uniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
