package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jask/starrating/internal/rating"
)

// Config holds application configuration.
type Config struct {
	Rating RatingConfig `mapstructure:"rating"`
	Log    LogConfig    `mapstructure:"log"`
}

// RatingConfig mirrors rating.Config in a form viper can decode.
type RatingConfig struct {
	MaxStars       int      `mapstructure:"max_stars"`
	StarColor      string   `mapstructure:"star_color"`
	LabelColor     string   `mapstructure:"label_color"`
	StarSize       float64  `mapstructure:"star_size"`
	Labels         []string `mapstructure:"labels"`
	ContainerClass string   `mapstructure:"container_class"`
	DefaultValue   float64  `mapstructure:"default_value"`
	AllowHalfStars bool     `mapstructure:"allow_half_stars"`
	AllowReset     bool     `mapstructure:"allow_reset"`
	Animation      string   `mapstructure:"animation"`
}

// LogConfig holds zap settings. An empty File disables logging.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// flagKeys maps CLI flag names to viper keys.
var flagKeys = map[string]string{
	"max-stars":   "rating.max_stars",
	"star-color":  "rating.star_color",
	"label-color": "rating.label_color",
	"size":        "rating.star_size",
	"labels":      "rating.labels",
	"class":       "rating.container_class",
	"default":     "rating.default_value",
	"half":        "rating.allow_half_stars",
	"reset":       "rating.allow_reset",
	"animation":   "rating.animation",
	"log-file":    "log.file",
	"log-level":   "log.level",
}

// RegisterFlags adds every configurable setting to fs, plus --config.
func RegisterFlags(fs *pflag.FlagSet) {
	d := rating.DefaultConfig()
	fs.String("config", "", "path to a TOML config file")
	fs.Int("max-stars", d.MaxStars, "number of stars")
	fs.String("star-color", d.StarColor, "star color")
	fs.String("label-color", d.LabelColor, "label color")
	fs.Float64("size", d.StarSize, "star size in pixels")
	fs.StringSlice("labels", nil, "one label per star, comma separated")
	fs.String("class", "", "container class for SVG output")
	fs.Float64("default", 0, "initial rating")
	fs.Bool("half", d.AllowHalfStars, "allow half-star ratings")
	fs.Bool("reset", d.AllowResetOnReclick, "reset to zero when the current rating is chosen again")
	fs.String("animation", string(d.Animation), "hover animation: none, scale, rotate or bounce")
	fs.String("log-file", "", "write JSON logs to this file")
	fs.String("log-level", "info", "log level")
}

// Load reads configuration from defaults, file, env and flags, in increasing
// precedence. Env var overrides use prefix STARRATING_. flags may be nil.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	d := rating.DefaultConfig()
	v.SetDefault("rating.max_stars", d.MaxStars)
	v.SetDefault("rating.star_color", d.StarColor)
	v.SetDefault("rating.label_color", d.LabelColor)
	v.SetDefault("rating.star_size", d.StarSize)
	v.SetDefault("rating.labels", []string{})
	v.SetDefault("rating.container_class", "")
	v.SetDefault("rating.default_value", 0.0)
	v.SetDefault("rating.allow_half_stars", d.AllowHalfStars)
	v.SetDefault("rating.allow_reset", d.AllowResetOnReclick)
	v.SetDefault("rating.animation", string(d.Animation))
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("STARRATING_CONFIG")
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "starrating"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("STARRATING")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Widget converts the decoded settings into a widget configuration. Unknown
// animations fall back to none; see Diagnostics.
func (r RatingConfig) Widget(onChange func(float64)) rating.Config {
	anim, _ := rating.ParseAnimation(r.Animation)
	return rating.Config{
		MaxStars:            r.MaxStars,
		StarColor:           r.StarColor,
		LabelColor:          r.LabelColor,
		StarSize:            r.StarSize,
		Labels:              r.Labels,
		ContainerClass:      r.ContainerClass,
		DefaultValue:        r.DefaultValue,
		AllowHalfStars:      r.AllowHalfStars,
		AllowResetOnReclick: r.AllowReset,
		Animation:           anim,
		OnRatingChanged:     onChange,
	}
}

// Diagnostics lists settings that will render oddly. None of them are fatal.
func (r RatingConfig) Diagnostics() []string {
	var out []string
	if r.MaxStars < 1 {
		out = append(out, fmt.Sprintf("max_stars is %d; nothing will render", r.MaxStars))
	}
	if r.StarSize <= 0 {
		out = append(out, fmt.Sprintf("star_size is %v; stars will collapse", r.StarSize))
	}
	if n := len(r.Labels); n > 0 && n != r.MaxStars {
		out = append(out, fmt.Sprintf("%d labels for %d stars; numeric labels will be shown", n, r.MaxStars))
	}
	if r.DefaultValue < 0 || r.DefaultValue > float64(r.MaxStars) {
		out = append(out, fmt.Sprintf("default_value %v is outside [0, %d]", r.DefaultValue, r.MaxStars))
	}
	if _, ok := rating.ParseAnimation(r.Animation); !ok {
		msg := fmt.Sprintf("unknown animation %q; using none", r.Animation)
		if s := suggestAnimation(r.Animation); s != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", s)
		}
		out = append(out, msg)
	}
	return out
}

func suggestAnimation(name string) string {
	norm := strings.ToLower(strings.TrimSpace(name))
	best, bestDist := "", 3
	for _, a := range rating.Animations() {
		if d := levenshtein.ComputeDistance(norm, string(a)); d < bestDist {
			best, bestDist = string(a), d
		}
	}
	return best
}
