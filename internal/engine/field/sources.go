package field

import (
	"fmt"

	"github.com/Faultbox/meadow/internal/assets"
	"github.com/Faultbox/meadow/internal/assets/shaders"
	"github.com/Faultbox/meadow/internal/engine/texture"
)

// TextureNames are asset paths or builtin names for the three grass textures.
type TextureNames struct {
	Alpha    string
	Diffuse  string
	ForceMap string
}

// LoadSources reads every shader and texture the renderer needs. It stops at
// the first missing or undecodable asset.
func LoadSources(m *assets.Manager, names TextureNames) (Sources, error) {
	var src Sources

	shaderFiles := []struct {
		dst  *string
		name string
	}{
		{&src.GroundVertex, shaders.GroundVertex},
		{&src.GroundFragment, shaders.GroundFragment},
		{&src.GrassVertex, shaders.GrassVertex},
		{&src.GrassTessControl, shaders.GrassTessControl},
		{&src.GrassTessEvaluation, shaders.GrassTessEvaluation},
		{&src.GrassFragment, shaders.GrassFragment},
	}
	for _, f := range shaderFiles {
		code, err := m.ReadString("shaders/" + f.name)
		if err != nil {
			return Sources{}, err
		}
		*f.dst = code
	}

	var err error
	if src.AlphaTexture, err = texture.Load(m, names.Alpha); err != nil {
		return Sources{}, fmt.Errorf("alpha texture: %w", err)
	}
	if src.DiffuseTexture, err = texture.Load(m, names.Diffuse); err != nil {
		return Sources{}, fmt.Errorf("diffuse texture: %w", err)
	}
	if src.ForceMap, err = texture.Load(m, names.ForceMap); err != nil {
		return Sources{}, fmt.Errorf("force map: %w", err)
	}
	return src, nil
}
