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

// Command pickrender draws a dataset of pick markers to a PNG or PDF file.
//
// Usage:
//
//	pickrender -i picks.json -o picks.png [flags]
//
// All flags can also be given in a JSON config file (--config) or as
// PICK_* environment variables. With --hit x,y, the markers whose bounds
// contain the data point (x, y) are logged.
package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pick"
	"seehuhn.de/go/pick/index"
	"seehuhn.de/go/pick/internal/config"
	"seehuhn.de/go/pick/internal/pickio"
	"seehuhn.de/go/pick/pdfcanvas"
	"seehuhn.de/go/pick/raster"
)

// glyph is the part of the glyph API used by the command.
type glyph interface {
	SetData(d *pick.Dataset) error
	Len() int
	MapData(xs, ys pick.Scale)
	IndexData(idx pick.SpatialIndex) int
	Render(ctx pick.Context, indices []int) int
}

// rangeMargin is the padding added around automatically chosen ranges,
// relative to their size.
const rangeMargin = 0.05

func main() {
	fs := config.Flags("pickrender")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := newLogger(cfg.LogLevel)
	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("rendering failed")
		os.Exit(1)
	}
}

func newLogger(level string) zerolog.Logger {
	var lvl zerolog.Level
	switch strings.ToUpper(level) {
	case "TRACE":
		lvl = zerolog.TraceLevel
	case "DEBUG":
		lvl = zerolog.DebugLevel
	case "WARN":
		lvl = zerolog.WarnLevel
	case "ERROR":
		lvl = zerolog.ErrorLevel
	default:
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(w).With().Timestamp().Logger()
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	if cfg.Input == "" {
		return errors.New("no input file given")
	}
	d, err := pickio.ReadFile(cfg.Input)
	if err != nil {
		return err
	}
	logger.Debug().Str("input", cfg.Input).Int("markers", d.Len()).Msg("dataset loaded")

	if cfg.Projection == "mercator" {
		d, err = d.Projected()
		if err != nil {
			return err
		}
	}

	g, err := newGlyph(cfg)
	if err != nil {
		return err
	}
	if err := g.SetData(d); err != nil {
		return err
	}

	idx := index.New()
	if empty := g.IndexData(idx); empty > 0 {
		logger.Warn().Int("empty", empty).Msg("markers without finite bounds")
	}

	view, err := viewport(cfg, idx)
	if err != nil {
		return err
	}
	xs, ys := scales(cfg, view)
	g.MapData(xs, ys)

	visible := idx.Search(view)
	logger.Debug().
		Float64("minX", view.LLx).Float64("maxX", view.URx).
		Float64("minY", view.LLy).Float64("maxY", view.URy).
		Int("visible", len(visible)).
		Msg("viewport")

	if cfg.Hit != "" {
		hx, hy, err := config.ParsePair(cfg.Hit)
		if err != nil {
			return err
		}
		logger.Info().Float64("x", hx).Float64("y", hy).Ints("markers", idx.HitPoint(hx, hy)).Msg("hit test")
	}

	format, err := cfg.OutputFormat()
	if err != nil {
		return err
	}
	var drawn int
	switch format {
	case "pdf":
		drawn, err = renderPDF(cfg, g, visible)
	default:
		drawn, err = renderPNG(cfg, g, visible)
	}
	if err != nil {
		return err
	}

	logger.Info().
		Str("output", cfg.Output).
		Int("markers", g.Len()).
		Int("drawn", drawn).
		Int("skipped", g.Len()-drawn).
		Msg("rendered")
	return nil
}

func newGlyph(cfg *config.Config) (glyph, error) {
	vis, err := cfg.Visuals()
	if err != nil {
		return nil, err
	}
	v, err := pick.ParseVariant(cfg.Variant)
	if err != nil {
		return nil, err
	}
	if v == pick.VariantB {
		return &pick.CircleGlyph{Visuals: vis}, nil
	}
	return &pick.Glyph{Visuals: vis}, nil
}

// viewport returns the data range to draw. Ranges which are not
// configured are fitted to the bounds of all markers.
func viewport(cfg *config.Config, idx *index.RTree) (rect.Rect, error) {
	ext, ok := idx.Extent()
	fit := func(lo, hi float64) (float64, float64) {
		pad := (hi - lo) * rangeMargin
		if pad == 0 {
			pad = 1
		}
		return lo - pad, hi + pad
	}

	var view rect.Rect
	var err error
	if cfg.XRange != "" {
		view.LLx, view.URx, err = config.ParsePair(cfg.XRange)
	} else if ok {
		view.LLx, view.URx = fit(ext.LLx, ext.URx)
	} else {
		return view, errors.New("no x range given and no marker has finite bounds")
	}
	if err != nil {
		return view, err
	}
	if cfg.YRange != "" {
		view.LLy, view.URy, err = config.ParsePair(cfg.YRange)
	} else if ok {
		view.LLy, view.URy = fit(ext.LLy, ext.URy)
	} else {
		return view, errors.New("no y range given and no marker has finite bounds")
	}
	if err != nil {
		return view, err
	}

	if view.URx <= view.LLx || view.URy <= view.LLy {
		return view, fmt.Errorf("empty data range %v", view)
	}
	if (cfg.LogScaleX && view.LLx <= 0) || (cfg.LogScaleY && view.LLy <= 0) {
		return view, fmt.Errorf("logarithmic axis needs a positive range, got %v", view)
	}
	return view, nil
}

// scales maps the viewport onto the image, with y pointing down.
func scales(cfg *config.Config, view rect.Rect) (xs, ys pick.Scale) {
	w, h := float64(cfg.Width), float64(cfg.Height)
	if cfg.LogScaleX {
		xs = pick.LogScale{SourceStart: view.LLx, SourceEnd: view.URx, TargetStart: 0, TargetEnd: w}
	} else {
		xs = pick.LinearScale{SourceStart: view.LLx, SourceEnd: view.URx, TargetStart: 0, TargetEnd: w}
	}
	if cfg.LogScaleY {
		ys = pick.LogScale{SourceStart: view.LLy, SourceEnd: view.URy, TargetStart: h, TargetEnd: 0}
	} else {
		ys = pick.LinearScale{SourceStart: view.LLy, SourceEnd: view.URy, TargetStart: h, TargetEnd: 0}
	}
	return xs, ys
}

func renderPNG(cfg *config.Config, g glyph, indices []int) (int, error) {
	bg, err := config.ParseColor(cfg.Background)
	if err != nil {
		return 0, err
	}
	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	c := raster.NewCanvas(img)
	if bg != nil {
		c.Clear(bg)
	}
	drawn := g.Render(c, indices)

	fd, err := os.Create(cfg.Output)
	if err != nil {
		return 0, err
	}
	err = png.Encode(fd, img)
	if cerr := fd.Close(); err == nil {
		err = cerr
	}
	return drawn, err
}

func renderPDF(cfg *config.Config, g glyph, indices []int) (int, error) {
	bg, err := config.ParseColor(cfg.Background)
	if err != nil {
		return 0, err
	}
	page, err := pdfcanvas.Create(cfg.Output, float64(cfg.Width), float64(cfg.Height), bg)
	if err != nil {
		return 0, err
	}
	drawn := g.Render(page, indices)
	return drawn, page.Close()
}
