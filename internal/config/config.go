// seehuhn.de/go/pick - pick markers for scatter plots
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config loads the settings of the pickrender command.
//
// Values are taken, in order of decreasing priority, from command-line
// flags, PICK_* environment variables, an optional JSON config file and
// the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"seehuhn.de/go/pick"
)

// EnvPrefix is the prefix of environment variables which override
// configuration values.
const EnvPrefix = "PICK"

// HatchConfig holds the hatch pattern settings.
type HatchConfig struct {
	Pattern string  `json:"pattern" mapstructure:"pattern"`
	Scale   float64 `json:"scale" mapstructure:"scale"`
	Weight  float64 `json:"weight" mapstructure:"weight"`
	Color   string  `json:"color" mapstructure:"color"`
}

// Config holds all settings of a rendering run.
type Config struct {
	Input      string  `json:"input" mapstructure:"input"`
	Output     string  `json:"output" mapstructure:"output"`
	Format     string  `json:"format" mapstructure:"format"`
	Width      int     `json:"width" mapstructure:"width"`
	Height     int     `json:"height" mapstructure:"height"`
	Variant    string  `json:"variant" mapstructure:"variant"`
	Projection string  `json:"projection" mapstructure:"projection"`
	XRange     string  `json:"xRange" mapstructure:"xRange"`
	YRange     string  `json:"yRange" mapstructure:"yRange"`
	LogScaleX  bool    `json:"logScaleX" mapstructure:"logScaleX"`
	LogScaleY  bool    `json:"logScaleY" mapstructure:"logScaleY"`
	LineWidth  float64 `json:"lineWidth" mapstructure:"lineWidth"`
	LineColor  string  `json:"lineColor" mapstructure:"lineColor"`
	FillColor  string  `json:"fillColor" mapstructure:"fillColor"`
	Background string  `json:"background" mapstructure:"background"`
	Alpha      float64 `json:"alpha" mapstructure:"alpha"`
	Hit        string  `json:"hit" mapstructure:"hit"`
	LogLevel   string  `json:"logLevel" mapstructure:"logLevel"`

	Hatch HatchConfig `json:"hatch" mapstructure:"hatch"`
}

var defaults = map[string]any{
	"input":         "",
	"output":        "picks.png",
	"format":        "",
	"width":         800,
	"height":        600,
	"variant":       "A",
	"projection":    "none",
	"xRange":        "",
	"yRange":        "",
	"logScaleX":     false,
	"logScaleY":     false,
	"lineWidth":     1.0,
	"lineColor":     "#000000",
	"fillColor":     "#c0c0c0",
	"background":    "#ffffff",
	"alpha":         1.0,
	"hit":           "",
	"logLevel":      "info",
	"hatch.pattern": "",
	"hatch.scale":   12.0,
	"hatch.weight":  1.0,
	"hatch.color":   "#000000",
}

// Flags returns a flag set with one flag for every top-level setting,
// plus --config for the config file name.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "JSON config file")
	fs.StringP("input", "i", "", "dataset file (.json, .msgpack, .msgpack.zst)")
	fs.StringP("output", "o", "picks.png", "output file")
	fs.String("format", "", "output format, png or pdf (default: from the file name)")
	fs.Int("width", 800, "image width")
	fs.Int("height", 600, "image height")
	fs.String("variant", "A", "marker convention, A (data space) or B (screen space)")
	fs.String("projection", "none", "center projection, none or mercator")
	fs.String("xRange", "", "data range along x, as min,max (default: fit)")
	fs.String("yRange", "", "data range along y, as min,max (default: fit)")
	fs.Bool("logScaleX", false, "use a logarithmic x axis")
	fs.Bool("logScaleY", false, "use a logarithmic y axis")
	fs.Float64("lineWidth", 1, "outline width")
	fs.String("lineColor", "#000000", "outline colour, or none")
	fs.String("fillColor", "#c0c0c0", "fill colour, or none")
	fs.String("background", "#ffffff", "background colour, or none")
	fs.Float64("alpha", 1, "opacity of outline, fill and hatch")
	fs.String("hit", "", "report the markers whose bounds contain the data point x,y")
	fs.String("logLevel", "info", "log level")
	fs.String("hatch.pattern", "", "hatch pattern name or character")
	fs.Float64("hatch.scale", 12, "hatch tile size")
	fs.Float64("hatch.weight", 1, "hatch line width")
	fs.String("hatch.color", "#000000", "hatch colour")
	return fs
}

// Load builds the configuration. The flags in fs must already be parsed;
// fs may be nil. If fs has a non-empty --config flag, that file is read.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, err
		}
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			v.SetConfigType("json")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ErrInvalid is returned for settings which cannot be used.
var ErrInvalid = errors.New("invalid setting")

// Validate checks the settings which Load cannot check by type alone.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if _, err := pick.ParseVariant(c.Variant); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Projection {
	case "none", "mercator":
	default:
		return fmt.Errorf("%w: projection %q", ErrInvalid, c.Projection)
	}
	if _, err := c.OutputFormat(); err != nil {
		return err
	}
	for name, s := range map[string]string{"xRange": c.XRange, "yRange": c.YRange} {
		if s == "" {
			continue
		}
		if _, _, err := ParsePair(s); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
		}
	}
	if c.Hit != "" {
		if _, _, err := ParsePair(c.Hit); err != nil {
			return fmt.Errorf("%w: hit: %v", ErrInvalid, err)
		}
	}
	if _, ok := pick.ParseHatchPattern(c.Hatch.Pattern); !ok {
		return fmt.Errorf("%w: hatch pattern %q", ErrInvalid, c.Hatch.Pattern)
	}
	for name, s := range map[string]string{
		"lineColor": c.LineColor, "fillColor": c.FillColor,
		"background": c.Background, "hatch.color": c.Hatch.Color,
	} {
		if _, err := ParseColor(s); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
		}
	}
	return nil
}

// OutputFormat returns "png" or "pdf". If Format is empty, the format is
// taken from the extension of Output.
func (c *Config) OutputFormat() (string, error) {
	f := strings.ToLower(c.Format)
	if f == "" {
		f = "png"
		if strings.HasSuffix(strings.ToLower(c.Output), ".pdf") {
			f = "pdf"
		}
	}
	switch f {
	case "png", "pdf":
		return f, nil
	}
	return "", fmt.Errorf("%w: output format %q", ErrInvalid, c.Format)
}

// Visuals converts the colour and hatch settings into glyph styles.
func (c *Config) Visuals() (pick.Visuals, error) {
	var vis pick.Visuals

	lc, err := ParseColor(c.LineColor)
	if err != nil {
		return vis, err
	}
	if lc != nil && c.LineWidth > 0 {
		ls := pick.NewLineStyle(lc, c.LineWidth)
		ls.Alpha = pick.Scalar(c.Alpha)
		vis.Line = ls
	}

	fc, err := ParseColor(c.FillColor)
	if err != nil {
		return vis, err
	}
	if fc != nil {
		fs := pick.NewFillStyle(fc)
		fs.Alpha = pick.Scalar(c.Alpha)
		vis.Fill = fs
	}

	pattern, ok := pick.ParseHatchPattern(c.Hatch.Pattern)
	if !ok {
		return vis, fmt.Errorf("%w: hatch pattern %q", ErrInvalid, c.Hatch.Pattern)
	}
	hc, err := ParseColor(c.Hatch.Color)
	if err != nil {
		return vis, err
	}
	if pattern != pick.HatchNone && hc != nil {
		hs := pick.NewHatchStyle(pattern, hc)
		hs.Scale = pick.Scalar(c.Hatch.Scale)
		hs.Weight = pick.Scalar(c.Hatch.Weight)
		hs.Alpha = pick.Scalar(c.Alpha)
		vis.Hatch = hs
	}
	return vis, nil
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa". The strings "" and
// "none" give a nil colour.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return nil, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return nil, fmt.Errorf("colour %q does not start with #", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("colour %q has wrong length", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("colour %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

// ParsePair parses two comma-separated numbers, as used for ranges and
// points.
func ParsePair(s string) (a, b float64, err error) {
	first, second, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%q is not of the form a,b", s)
	}
	a, err = strconv.ParseFloat(strings.TrimSpace(first), 64)
	if err != nil {
		return 0, 0, err
	}
	b, err = strconv.ParseFloat(strings.TrimSpace(second), 64)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
