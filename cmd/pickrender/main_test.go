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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"seehuhn.de/go/pick"
	"seehuhn.de/go/pick/index"
	"seehuhn.de/go/pick/internal/config"
	"seehuhn.de/go/pick/internal/pickio"
)

func testConfig(t *testing.T, args ...string) *config.Config {
	t.Helper()
	fs := config.Flags("test")
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(fs)
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestViewport(t *testing.T) {
	idx := index.New()
	idx.Add(0, 10, 20, 0)
	idx.AddEmpty()

	cfg := testConfig(t)
	view, err := viewport(cfg, idx)
	if err != nil {
		t.Fatal(err)
	}
	if view.LLx != -1 || view.URx != 21 || view.LLy != -0.5 || view.URy != 10.5 {
		t.Errorf("fitted viewport = %v", view)
	}

	cfg = testConfig(t, "--xRange", "5,6")
	view, err = viewport(cfg, idx)
	if err != nil {
		t.Fatal(err)
	}
	if view.LLx != 5 || view.URx != 6 || view.LLy != -0.5 {
		t.Errorf("configured viewport = %v", view)
	}

	cfg = testConfig(t, "--logScaleX")
	if _, err := viewport(cfg, idx); err == nil {
		t.Error("log axis accepted a negative range")
	}

	if _, err := viewport(testConfig(t), index.New()); err == nil {
		t.Error("empty index gave a viewport")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "picks.msgpack.zst")
	d := &pick.Dataset{
		X:        []float64{0, 1, 2, 50},
		Y:        []float64{0, 1, 0, 50},
		Rotation: []float64{0, 45, 90, 0},
		Radius:   []float64{0.2, 0.2, 0.2, 0.2},
	}
	if err := pickio.WriteFile(input, d); err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct{ variant, output string }{
		{"A", "picks.png"},
		{"B", "picks.pdf"},
	} {
		t.Run(tc.variant, func(t *testing.T) {
			output := filepath.Join(dir, tc.output)
			cfg := testConfig(t,
				"-i", input, "-o", output,
				"--variant", tc.variant,
				"--xRange", "-1,3", "--yRange", "-1,2",
				"--width", "120", "--height", "90",
				"--hatch.pattern", "x")

			logBuf := &bytes.Buffer{}
			logger := zerolog.New(logBuf)
			if err := run(cfg, logger); err != nil {
				t.Fatal(err)
			}
			if !bytes.Contains(logBuf.Bytes(), []byte(`"drawn":3`)) {
				t.Errorf("unexpected log output: %s", logBuf)
			}
			info, err := os.Stat(output)
			if err != nil {
				t.Fatal(err)
			}
			if info.Size() == 0 {
				t.Error("empty output file")
			}
		})
	}
}
