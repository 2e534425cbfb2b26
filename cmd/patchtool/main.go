// patchtool generates and inspects grass patch vertex data outside the renderer.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/meadow/internal/config"
	"github.com/Faultbox/meadow/internal/engine/grass"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "generate", "gen":
		err = cmdGenerate(args, os.Stdout, os.Stderr)
	case "stats", "info":
		err = cmdStats(args, os.Stdout)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`patchtool - grass patch generator

Usage:
  patchtool <command> [options]

Commands:
  generate [options]     Generate a patch and write its vertex records
  stats <patch.bin>      Print a YAML report for an exported patch

Generate options:
  -config <file>   Config file (default: meadow.yaml lookup)
  -blades <n>      Blade count override
  -seed <n>        Seed override (0 = time based)
  -o <file>        Output file (default: grass_patch.bin)
  -q               No progress bars

Examples:
  patchtool generate -blades 20000 -seed 42 -o patch.bin
  patchtool stats patch.bin`)
}

// report is the YAML summary printed by both commands.
type report struct {
	File        string     `yaml:"file,omitempty"`
	Seed        *uint64    `yaml:"seed,omitempty"`
	Blades      int        `yaml:"blades"`
	Vertices    int        `yaml:"vertices"`
	Bytes       int64      `yaml:"bytes"`
	WidthRange  [2]float32 `yaml:"width_range,flow"`
	HeightRange [2]float32 `yaml:"height_range,flow"`
}

func newReport(f grass.Field) report {
	minW, maxW, minH, maxH := f.Bounds()
	return report{
		Blades:      len(f),
		Vertices:    f.VertexCount(),
		Bytes:       int64(len(f) * grass.BladeSize),
		WidthRange:  [2]float32{minW, maxW},
		HeightRange: [2]float32{minH, maxH},
	}
}

func writeReport(w io.Writer, r report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

func cmdGenerate(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Config file")
	blades := fs.Int("blades", 0, "Blade count override")
	seed := fs.Uint64("seed", 0, "Seed override (0 = time based)")
	out := fs.String("o", "grass_patch.bin", "Output file")
	quiet := fs.Bool("q", false, "No progress bars")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(&config.Flags{Config: *configPath})
	if err != nil {
		return err
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "blades":
			cfg.Grass.BladeCount = *blades
		case "seed":
			cfg.Grass.Seed = *seed
		}
	})

	gcfg := cfg.Grass.Generator()
	if err := gcfg.Validate(); err != nil {
		return err
	}

	rnd, used := grass.NewSource(cfg.Grass.Seed)
	var field grass.Field
	if *quiet {
		field = grass.Generate(gcfg, grass.UnitPlane(), rnd)
	} else {
		bar := newBar(stderr, int64(gcfg.BladeCount), "generating", false)
		field = grass.GenerateFunc(gcfg, grass.UnitPlane(), rnd, func(done int) {
			_ = bar.Set(done)
		})
		_ = bar.Close()
	}

	var progress io.Writer
	if !*quiet {
		progress = stderr
	}
	n, err := writePatch(*out, field, progress)
	if err != nil {
		return err
	}

	r := newReport(field)
	r.File = *out
	r.Seed = &used
	r.Bytes = n
	return writeReport(stdout, r)
}

// newBar writes progress to w so stdout stays clean for the report.
func newBar(w io.Writer, total int64, desc string, showBytes bool) *progressbar.ProgressBar {
	return progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionShowBytes(showBytes),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(10),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() { fmt.Fprint(w, "\n") }),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// writePatch exports f to path. A nil progress writer disables the bar.
func writePatch(path string, f grass.Field, progress io.Writer) (int64, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	bw := bufio.NewWriter(file)
	var w io.Writer = bw
	if progress != nil {
		bar := newBar(progress, int64(len(f)*grass.BladeSize), "writing", true)
		defer bar.Close()
		w = io.MultiWriter(bw, bar)
	}

	n, err := f.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("writing %s: %w", path, err)
	}
	return n, file.Close()
}

func cmdStats(args []string, stdout io.Writer) error {
	if len(args) < 1 {
		return errors.New("usage: patchtool stats <patch.bin>")
	}

	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	field, err := grass.ReadField(bufio.NewReader(file))
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	r := newReport(field)
	r.File = args[0]
	return writeReport(stdout, r)
}
