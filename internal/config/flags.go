package config

import (
	"flag"
	"path/filepath"
)

// Flags are the command-line overrides. Zero values mean "not given".
type Flags struct {
	Config     string
	Debug      bool
	Windowed   bool
	Fullscreen bool
	Width      int
	Height     int
	Blades     int
	Seed       uint64
	Extent     int
	SaveConfig bool

	// ForceMap is the validated positional argument, or "" when absent or invalid.
	ForceMap string

	set map[string]bool
}

// ParseFlags parses args (without the program name) into Flags.
func ParseFlags(fs *flag.FlagSet, args []string) (*Flags, error) {
	f := &Flags{set: make(map[string]bool)}

	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&f.Windowed, "windowed", false, "Run in windowed mode")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.IntVar(&f.Blades, "blades", 0, "Blades per grass patch")
	fs.Uint64Var(&f.Seed, "seed", 0, "Blade placement seed (0 = time based)")
	fs.IntVar(&f.Extent, "extent", 0, "Tiles drawn on each side of the centre patch")
	fs.BoolVar(&f.SaveConfig, "save-config", false, "Write the resulting config to the user config dir and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	if fs.NArg() > 0 {
		f.ForceMap = ParseForceMap(fs.Arg(0))
	}
	return f, nil
}

// applyFlags applies CLI flag overrides to the config.
func (f *Flags) applyFlags(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Windowed {
		cfg.Graphics.Fullscreen = false
	}
	if f.Fullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if f.Width > 0 {
		cfg.Graphics.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Graphics.Height = f.Height
	}
	if f.set["blades"] {
		cfg.Grass.BladeCount = f.Blades
	}
	if f.set["seed"] {
		cfg.Grass.Seed = f.Seed
	}
	if f.set["extent"] {
		cfg.Grass.GridExtent = f.Extent
	}
	if f.ForceMap != "" {
		cfg.Assets.ForceMap = f.ForceMap
	}
}

// ParseForceMap accepts a file name whose extension is three or four letters
// and returns "" for anything else.
func ParseForceMap(arg string) string {
	ext := filepath.Ext(arg)
	if len(ext) < 4 || len(ext) > 5 || len(arg) == len(ext) {
		return ""
	}
	for _, r := range ext[1:] {
		if !isLetter(r) {
			return ""
		}
	}
	return arg
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
