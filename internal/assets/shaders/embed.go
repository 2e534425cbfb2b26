// Package shaders provides embedded GLSL shader sources.
package shaders

import "embed"

// FS holds every shader in this directory by file name.
//
//go:embed *.vert *.frag *.tesc *.tese
var FS embed.FS

// File names inside FS.
const (
	GroundVertex        = "ground.vert"
	GroundFragment      = "ground.frag"
	GrassVertex         = "grass.vert"
	GrassTessControl    = "grass.tesc"
	GrassTessEvaluation = "grass.tese"
	GrassFragment       = "grass.frag"
)
