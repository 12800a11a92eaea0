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

// Package pickio reads and writes pick marker datasets.
//
// A dataset is stored as four parallel arrays x, y, rotation and radius
// (the latter optional). Three encodings are supported: JSON, msgpack and
// zstd-compressed msgpack. In JSON, NaN and infinite values are written
// as null and read back as NaN.
package pickio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"seehuhn.de/go/pick"
)

// Format identifies a file encoding.
type Format int

// These are the supported encodings.
const (
	FormatJSON Format = iota + 1
	FormatMsgpack
	FormatMsgpackZstd
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	case FormatMsgpackZstd:
		return "msgpack.zst"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ErrUnknownFormat is returned for file names and formats which do not
// correspond to a supported encoding.
var ErrUnknownFormat = errors.New("unknown dataset format")

// FormatFromName chooses the encoding from the extension of a file name.
func FormatFromName(name string) (Format, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".msgpack.zst"), strings.HasSuffix(lower, ".mpk.zst"):
		return FormatMsgpackZstd, nil
	case strings.HasSuffix(lower, ".msgpack"), strings.HasSuffix(lower, ".mpk"):
		return FormatMsgpack, nil
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// record is the stored form of a dataset.
type record struct {
	X        floats `json:"x" msgpack:"x"`
	Y        floats `json:"y" msgpack:"y"`
	Rotation floats `json:"rotation" msgpack:"rotation"`
	Radius   floats `json:"radius,omitempty" msgpack:"radius,omitempty"`
}

// Read decodes a dataset from r. The array lengths are checked.
func Read(r io.Reader, f Format) (*pick.Dataset, error) {
	var rec record
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode dataset: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode dataset: %w", err)
		}
	case FormatMsgpackZstd:
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(0))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		defer zr.Close()
		if err := msgpack.NewDecoder(zr).Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode dataset: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}

	d := &pick.Dataset{X: rec.X, Y: rec.Y, Rotation: rec.Rotation, Radius: rec.Radius}
	if len(d.Radius) == 0 {
		d.Radius = nil
	}
	if err := d.Check(); err != nil {
		return nil, err
	}
	return d, nil
}

// Write encodes d to w.
func Write(w io.Writer, f Format, d *pick.Dataset) error {
	if err := d.Check(); err != nil {
		return err
	}
	rec := record{X: d.X, Y: d.Y, Rotation: d.Rotation, Radius: d.Radius}

	switch f {
	case FormatJSON:
		return json.NewEncoder(w).Encode(&rec)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(&rec)
	case FormatMsgpackZstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return fmt.Errorf("failed to create zstd writer: %w", err)
		}
		if err := msgpack.NewEncoder(zw).Encode(&rec); err != nil {
			zw.Close()
			return fmt.Errorf("failed to encode dataset: %w", err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("failed to close zstd writer: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}

// ReadFile reads a dataset, choosing the encoding from the file name.
func ReadFile(name string) (*pick.Dataset, error) {
	f, err := FormatFromName(name)
	if err != nil {
		return nil, err
	}
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Read(fd, f)
}

// WriteFile writes a dataset, choosing the encoding from the file name.
func WriteFile(name string, d *pick.Dataset) error {
	f, err := FormatFromName(name)
	if err != nil {
		return err
	}
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	err = Write(fd, f, d)
	if cerr := fd.Close(); err == nil {
		err = cerr
	}
	return err
}

// floats is a float64 array which encodes non-finite JSON values as null.
type floats []float64

// MarshalJSON implements json.Marshaler.
func (a floats) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}
	vals := make([]*float64, len(a))
	for i := range a {
		if !math.IsNaN(a[i]) && !math.IsInf(a[i], 0) {
			vals[i] = &a[i]
		}
	}
	return json.Marshal(vals)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *floats) UnmarshalJSON(data []byte) error {
	var vals []*float64
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	if vals == nil {
		*a = nil
		return nil
	}
	res := make(floats, len(vals))
	for i, v := range vals {
		if v == nil {
			res[i] = math.NaN()
		} else {
			res[i] = *v
		}
	}
	*a = res
	return nil
}
