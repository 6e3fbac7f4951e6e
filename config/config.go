package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gridcaster/level"
	"gridcaster/raycast"
)

const EnvPrefix = "GRIDCASTER"

var ErrInvalid = errors.New("invalid configuration")

// RGB is a color written as [r, g, b] in config files.
type RGB [3]uint8

func (c RGB) RGBA() color.RGBA {
	return color.RGBA{c[0], c[1], c[2], 255}
}

// Shade is the pair of wall colors for one tile value.
type Shade struct {
	X RGB `mapstructure:"x"`
	Y RGB `mapstructure:"y"`
}

type Window struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type Render struct {
	Width             int     `mapstructure:"width"`
	Height            int     `mapstructure:"height"`
	LambdaMax         float64 `mapstructure:"lambda_max"`
	MinDistance       float64 `mapstructure:"min_distance"`
	MaxDistance       float64 `mapstructure:"max_distance"`
	HeightScale       float64 `mapstructure:"height_scale"`
	FisheyeCorrection bool    `mapstructure:"fisheye_correction"`
	Workers           int     `mapstructure:"workers"`
	Background        RGB     `mapstructure:"background"`
}

type Grid struct {
	Rows          int             `mapstructure:"rows"`
	Cols          int             `mapstructure:"cols"`
	Seed          int64           `mapstructure:"seed"`
	Probabilities map[int]float64 `mapstructure:"probabilities"`
	// Image, when set, is a PNG map loaded instead of generating.
	Image string `mapstructure:"image"`
}

type Camera struct {
	X     float64 `mapstructure:"x"`
	Y     float64 `mapstructure:"y"`
	Angle float64 `mapstructure:"angle"`
}

// Movement speeds are per second.
type Movement struct {
	MoveSpeed float64 `mapstructure:"move_speed"`
	TurnSpeed float64 `mapstructure:"turn_speed"`
}

type Config struct {
	Window   Window        `mapstructure:"window"`
	Render   Render        `mapstructure:"render"`
	Grid     Grid          `mapstructure:"grid"`
	Camera   Camera        `mapstructure:"camera"`
	Movement Movement      `mapstructure:"movement"`
	Colors   map[int]Shade `mapstructure:"colors"`
}

func Default() Config {
	return Config{
		Window: Window{Width: 700, Height: 700, Title: "gridcaster"},
		Render: Render{
			Width:       200,
			Height:      200,
			LambdaMax:   1.0,
			MinDistance: raycast.DefaultMinDistance,
			MaxDistance: raycast.DefaultMaxDistance,
			HeightScale: raycast.DefaultHeightScale,
			Workers:     1,
		},
		Grid: Grid{
			Rows:          25,
			Cols:          25,
			Seed:          255,
			Probabilities: map[int]float64{1: 0.033, 2: 0.033, 3: 0.033},
		},
		Camera:   Camera{X: 2.5, Y: 2.5},
		Movement: Movement{MoveSpeed: 5, TurnSpeed: 5},
		Colors: map[int]Shade{
			1: {X: RGB{255, 0, 0}, Y: RGB{127, 0, 0}},
			2: {X: RGB{0, 255, 0}, Y: RGB{0, 127, 0}},
			3: {X: RGB{0, 0, 255}, Y: RGB{0, 0, 127}},
		},
	}
}

// scalars lists every non-map key with its default, so that each can be
// overridden from the environment and bound to a flag.
func scalars(d Config) []struct {
	key   string
	value any
} {
	return []struct {
		key   string
		value any
	}{
		{"window.width", d.Window.Width},
		{"window.height", d.Window.Height},
		{"window.title", d.Window.Title},
		{"render.width", d.Render.Width},
		{"render.height", d.Render.Height},
		{"render.lambda_max", d.Render.LambdaMax},
		{"render.min_distance", d.Render.MinDistance},
		{"render.max_distance", d.Render.MaxDistance},
		{"render.height_scale", d.Render.HeightScale},
		{"render.fisheye_correction", d.Render.FisheyeCorrection},
		{"render.workers", d.Render.Workers},
		{"grid.rows", d.Grid.Rows},
		{"grid.cols", d.Grid.Cols},
		{"grid.seed", d.Grid.Seed},
		{"grid.image", d.Grid.Image},
		{"camera.x", d.Camera.X},
		{"camera.y", d.Camera.Y},
		{"camera.angle", d.Camera.Angle},
		{"movement.move_speed", d.Movement.MoveSpeed},
		{"movement.turn_speed", d.Movement.TurnSpeed},
	}
}

// Flags returns a flag set covering the scalar settings plus --config.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (yaml, toml or json)")
	for _, s := range scalars(Default()) {
		usage := "override " + s.key
		switch v := s.value.(type) {
		case int:
			fs.Int(s.key, v, usage)
		case int64:
			fs.Int64(s.key, v, usage)
		case float64:
			fs.Float64(s.key, v, usage)
		case bool:
			fs.Bool(s.key, v, usage)
		case string:
			fs.String(s.key, v, usage)
		}
	}
	return fs
}

// Load builds the configuration from defaults, then the file at path (if
// any), then GRIDCASTER_* environment variables, then flags that were set.
// The result is validated.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	cfg := Default()

	for _, s := range scalars(cfg) {
		v.SetDefault(s.key, s.value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem at once, wrapped in ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("window.width", float64(c.Window.Width))
	positive("window.height", float64(c.Window.Height))
	positive("render.width", float64(c.Render.Width))
	positive("render.height", float64(c.Render.Height))
	positive("render.lambda_max", c.Render.LambdaMax)
	positive("render.min_distance", c.Render.MinDistance)
	positive("render.height_scale", c.Render.HeightScale)
	positive("movement.move_speed", c.Movement.MoveSpeed)
	positive("movement.turn_speed", c.Movement.TurnSpeed)
	if c.Render.MaxDistance <= c.Render.MinDistance {
		errs = append(errs, fmt.Errorf("render.max_distance %v must exceed render.min_distance %v", c.Render.MaxDistance, c.Render.MinDistance))
	}
	if c.Render.Workers < 1 {
		errs = append(errs, fmt.Errorf("render.workers must be at least 1, got %d", c.Render.Workers))
	}
	if c.Grid.Image == "" {
		positive("grid.rows", float64(c.Grid.Rows))
		positive("grid.cols", float64(c.Grid.Cols))
		if err := c.Weights().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("grid.probabilities: %w", err))
		}
	}
	for v := range c.Colors {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("colors: tile %d must be positive", v))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

func (c Config) Weights() level.Weights {
	w := make(level.Weights, len(c.Grid.Probabilities))
	for v, p := range c.Grid.Probabilities {
		w[level.Tile(v)] = p
	}
	return w
}

func (c Config) Palette() raycast.Palette {
	p := make(raycast.Palette, len(c.Colors))
	for v, s := range c.Colors {
		p[level.Tile(v)] = raycast.Shade{X: s.X.RGBA(), Y: s.Y.RGBA()}
	}
	return p
}
