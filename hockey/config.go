package hockey

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by every validation and unknown-key error.
var ErrInvalidConfig = errors.New("invalid config")

// Config is everything a World needs to start a session. It decodes from
// TOML; see DefaultConfig for the values used when a key is absent.
type Config struct {
	Field     FieldConfig   `toml:"field"`
	Paddle    PaddleConfig  `toml:"paddle"`
	Puck      PuckConfig    `toml:"puck"`
	Collision CollisionMode `toml:"collision"`
	Keys      KeyConfig     `toml:"keys"`
	Theme     Theme         `toml:"theme"`
}

// FieldConfig is the playing surface size in pixels.
type FieldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// PaddleConfig sizes the paddle. Speed is in pixels per tick.
type PaddleConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Speed  float64 `toml:"speed"`
	// Gap between the paddle top and the field bottom.
	Lift float64 `toml:"lift"`
}

// PuckConfig sets the puck radius and starting velocity in pixels per tick.
type PuckConfig struct {
	Radius float64 `toml:"radius"`
	DX     float64 `toml:"dx"`
	DY     float64 `toml:"dy"`
}

// KeyConfig lists the key names bound to each direction. Names follow the
// ebiten spelling: "ArrowLeft", "ArrowRight", "A", "D".
type KeyConfig struct {
	Left  []string `toml:"left"`
	Right []string `toml:"right"`
}

// Theme colours are "#rrggbb" strings.
type Theme struct {
	Background string `toml:"background"`
	Paddle     string `toml:"paddle"`
	Puck       string `toml:"puck"`
	Message    string `toml:"message"`
}

// DefaultConfig returns a 600x400 field with a 100x12 paddle and a cyan
// puck of radius 10 moving at (4, 4).
func DefaultConfig() Config {
	return Config{
		Field:     FieldConfig{Width: 600, Height: 400},
		Paddle:    PaddleConfig{Width: 100, Height: 12, Speed: 7, Lift: 20},
		Puck:      PuckConfig{Radius: 10, DX: 4, DY: 4},
		Collision: CollisionStrict,
		Keys: KeyConfig{
			Left:  []string{"ArrowLeft"},
			Right: []string{"ArrowRight"},
		},
		Theme: Theme{
			Background: "#000000",
			Paddle:     "#ffffff",
			Puck:       "#00ffff",
			Message:    "#f87171",
		},
	}
}

// LoadConfig reads a TOML file over the defaults. An empty path returns the
// defaults. Keys the file sets but Config does not know are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys %s: %w",
			path, strings.Join(keys, ", "), ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks sizes, key bindings and colours. Errors wrap
// ErrInvalidConfig.
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
	}

	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return invalid("field size %gx%g must be positive", c.Field.Width, c.Field.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return invalid("paddle size %gx%g must be positive", c.Paddle.Width, c.Paddle.Height)
	case c.Paddle.Width > c.Field.Width:
		return invalid("paddle width %g exceeds field width %g", c.Paddle.Width, c.Field.Width)
	case c.Paddle.Speed < 0:
		return invalid("paddle speed %g must not be negative", c.Paddle.Speed)
	case c.Paddle.Lift < c.Paddle.Height || c.Paddle.Lift > c.Field.Height:
		return invalid("paddle lift %g must be between paddle height %g and field height %g",
			c.Paddle.Lift, c.Paddle.Height, c.Field.Height)
	case c.Puck.Radius <= 0:
		return invalid("puck radius %g must be positive", c.Puck.Radius)
	case 2*c.Puck.Radius >= c.Field.Width || 2*c.Puck.Radius >= c.Field.Height:
		return invalid("puck radius %g does not fit the field", c.Puck.Radius)
	}

	if _, err := ParseCollisionMode(c.Collision.String()); err != nil {
		return invalid("%v", err)
	}
	if len(c.Keys.Left) == 0 || len(c.Keys.Right) == 0 {
		return invalid("both directions need at least one key")
	}
	for _, l := range c.Keys.Left {
		for _, r := range c.Keys.Right {
			if strings.EqualFold(l, r) {
				return invalid("key %q bound to both directions", l)
			}
		}
	}
	for name, hex := range map[string]string{
		"background": c.Theme.Background,
		"paddle":     c.Theme.Paddle,
		"puck":       c.Theme.Puck,
		"message":    c.Theme.Message,
	} {
		if _, err := ParseColor(hex); err != nil {
			return invalid("theme %s: %v", name, err)
		}
	}
	return nil
}

// ParseColor decodes "#rrggbb" (the leading # is optional).
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("colour %q is not #rrggbb", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustColor is ParseColor for values that already passed Validate.
func MustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
