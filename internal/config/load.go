package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dharshanroshanth/snake/internal/ctxlog"
	"github.com/dharshanroshanth/snake/internal/snake"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// hclFile is the top-level structure of a config file for decoding.
type hclFile struct {
	Grid   *hclGrid   `hcl:"grid,block"`
	Snake  *hclSnake  `hcl:"snake,block"`
	Speed  *hclSpeed  `hcl:"speed,block"`
	Food   *hclFood   `hcl:"food,block"`
	Loop   *hclLoop   `hcl:"loop,block"`
	Server *hclServer `hcl:"server,block"`
}

type hclGrid struct {
	Width    *int `hcl:"width,optional"`
	Height   *int `hcl:"height,optional"`
	CellSize *int `hcl:"cell_size,optional"`
}

type hclSnake struct {
	StartX *int `hcl:"start_x,optional"`
	StartY *int `hcl:"start_y,optional"`
}

type hclSpeed struct {
	Initial *string `hcl:"initial,optional"`
	Minimum *string `hcl:"minimum,optional"`
	Step    *string `hcl:"step,optional"`
}

type hclFood struct {
	Points      *int `hcl:"points,optional"`
	MaxAttempts *int `hcl:"max_attempts,optional"`
}

type hclLoop struct {
	StopOnGameOver *bool `hcl:"stop_on_game_over,optional"`
}

type hclServer struct {
	Address     *string `hcl:"address,optional"`
	MaxSessions *int    `hcl:"max_sessions,optional"`
}

// Load reads the HCL file at path over Default and validates the result. An
// empty path yields the defaults.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	if path == "" {
		logger.Debug("No config file given, using defaults.")
		cfg := Default()
		return &cfg, nil
	}

	logger.Debug("Loading config file.", "path", path)
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	return decode(ctx, file)
}

// Parse is Load for in-memory sources; filename is used in diagnostics.
func Parse(ctx context.Context, src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}
	return decode(ctx, file)
}

func decode(ctx context.Context, file *hcl.File) (*Config, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %w", diags)
	}

	cfg := Default()
	if err := parsed.apply(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Config loaded.",
		"width", cfg.Game.Width,
		"height", cfg.Game.Height,
		"initial_speed", cfg.Game.InitialSpeed,
		"address", cfg.Server.Address,
	)
	return &cfg, nil
}

// evalContext exposes the environment as `env`.
func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !hclsyntax.ValidIdentifier(name) {
			continue
		}
		env[name] = cty.StringVal(value)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}

func (f *hclFile) apply(cfg *Config) error {
	g := &cfg.Game

	if f.Grid != nil {
		setInt(&g.Width, f.Grid.Width)
		setInt(&g.Height, f.Grid.Height)
		setInt(&cfg.CellSize, f.Grid.CellSize)
	}
	// The snake starts in the middle unless told otherwise.
	g.Start = snake.Cell{X: g.Width / 2, Y: g.Height / 2}
	if f.Snake != nil {
		setInt(&g.Start.X, f.Snake.StartX)
		setInt(&g.Start.Y, f.Snake.StartY)
	}

	if f.Speed != nil {
		if err := setDuration(&g.InitialSpeed, f.Speed.Initial, "speed.initial"); err != nil {
			return err
		}
		if err := setDuration(&g.MinSpeed, f.Speed.Minimum, "speed.minimum"); err != nil {
			return err
		}
		if err := setDuration(&g.SpeedStep, f.Speed.Step, "speed.step"); err != nil {
			return err
		}
	}
	if f.Food != nil {
		setInt(&g.Points, f.Food.Points)
		setInt(&g.FoodAttempts, f.Food.MaxAttempts)
	}
	if f.Loop != nil && f.Loop.StopOnGameOver != nil {
		g.StopOnGameOver = *f.Loop.StopOnGameOver
	}
	if f.Server != nil {
		if f.Server.Address != nil {
			cfg.Server.Address = *f.Server.Address
		}
		setInt(&cfg.Server.MaxSessions, f.Server.MaxSessions)
	}
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *string, name string) error {
	if v == nil {
		return nil
	}
	d, err := time.ParseDuration(*v)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalid, name, err)
	}
	*dst = d
	return nil
}
