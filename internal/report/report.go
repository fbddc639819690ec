// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzutf8

// Package report measures how LZUTF8 compresses a given text: token mix, pointer
// length and distance profile, and a zstd baseline for comparison.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/woozymasta/lzutf8"
	"github.com/woozymasta/lzutf8/internal/explain"
)

var (
	// ErrRoundTrip is returned when the compressed stream does not decode back to the input,
	// which happens for input that is not valid UTF-8.
	ErrRoundTrip = errors.New("round trip mismatch")
	// ErrNoPointers is returned by RenderSVG and RenderDistanceSVG when the stream holds no pointers to plot.
	ErrNoPointers = errors.New("no pointers to plot")
)

// Shared encoder; documented as safe for concurrent EncodeAll calls.
var zstdEncoder = newBaselineEncoder()

// newBaselineEncoder builds the zstd encoder used for the baseline size. The options
// are fixed, so a failure is a programming error.
func newBaselineEncoder() *zstd.Encoder {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic(fmt.Sprintf("report: zstd encoder: %v", err))
	}

	return enc
}

// DistanceBands is the number of distance histogram bands: 1-127 (the 2-byte form),
// then one band per power of two from 128-255 up to 16384-32767.
const DistanceBands = 9

// distanceBand returns the histogram band for a pointer distance.
func distanceBand(distance int) int {
	if distance < 128 {
		return 0
	}

	return min(bits.Len(uint(distance))-7, DistanceBands-1)
}

// DistanceBandLabel returns the inclusive range covered by band, e.g. "128-255".
func DistanceBandLabel(band int) string {
	if band == 0 {
		return "1-127"
	}

	lo := 1 << (band + 6)
	return strconv.Itoa(lo) + "-" + strconv.Itoa(2*lo-1)
}

// Stats describes one compression run.
type Stats struct {
	InputSize      int
	CompressedSize int
	ZstdSize       int

	Literals      int
	ShortPointers int // 2-byte form
	LongPointers  int // 3-byte form
	CopiedBytes   int // output bytes produced by pointers
	MaxDistance   int

	// Lengths counts pointers by length, indexed by length.
	Lengths [lzutf8.MaxSequenceLength + 1]int
	// Distances counts pointers by distance band, see DistanceBandLabel.
	Distances [DistanceBands]int
}

// Analyze compresses plain, checks it decodes back, and collects Stats.
func Analyze(plain []byte) (*Stats, error) {
	compressed := lzutf8.Compress(plain)

	decoded, err := lzutf8.Decompress(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRoundTrip, err)
	}
	if !bytes.Equal(decoded, plain) {
		return nil, ErrRoundTrip
	}

	s := &Stats{
		InputSize:      len(plain),
		CompressedSize: len(compressed),
		ZstdSize:       len(zstdEncoder.EncodeAll(plain, nil)),
	}

	err = explain.Walk(compressed, func(t explain.Token) error {
		if t.Kind != explain.KindPointer {
			s.Literals += len(t.Raw)
			return nil
		}

		if len(t.Raw) == 2 {
			s.ShortPointers++
		} else {
			s.LongPointers++
		}

		s.CopiedBytes += t.Length
		s.MaxDistance = max(s.MaxDistance, t.Distance)
		s.Lengths[t.Length]++
		s.Distances[distanceBand(t.Distance)]++
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Pointers returns the total pointer count.
func (s *Stats) Pointers() int {
	return s.ShortPointers + s.LongPointers
}

// Ratio returns compressed size over input size, or 0 for empty input.
func (s *Stats) Ratio() float64 {
	return ratio(s.CompressedSize, s.InputSize)
}

// ZstdRatio returns the zstd baseline size over input size, or 0 for empty input.
func (s *Stats) ZstdRatio() float64 {
	return ratio(s.ZstdSize, s.InputSize)
}

func ratio(num, denom int) float64 {
	if denom == 0 {
		return 0
	}

	return float64(num) / float64(denom)
}

// WriteText writes a human readable summary of s to w.
func (s *Stats) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"input:      %d bytes\n"+
			"lzutf8:     %d bytes (%.1f%%)\n"+
			"zstd:       %d bytes (%.1f%%)\n"+
			"literals:   %d\n"+
			"pointers:   %d (2-byte %d, 3-byte %d)\n"+
			"copied:     %d bytes\n"+
			"max dist:   %d\n"+
			"distances:  %s\n",
		s.InputSize,
		s.CompressedSize, 100*s.Ratio(),
		s.ZstdSize, 100*s.ZstdRatio(),
		s.Literals,
		s.Pointers(), s.ShortPointers, s.LongPointers,
		s.CopiedBytes,
		s.MaxDistance,
		s.distanceSummary(),
	)
	return err
}

func (s *Stats) distanceSummary() string {
	parts := make([]string, 0, DistanceBands)
	for band, count := range s.Distances {
		if count > 0 {
			parts = append(parts, DistanceBandLabel(band)+":"+strconv.Itoa(count))
		}
	}

	if len(parts) == 0 {
		return "-"
	}

	return strings.Join(parts, " ")
}

// RenderSVG draws a bar chart of pointer counts per length to w.
func (s *Stats) RenderSVG(w io.Writer) error {
	if s.Pointers() == 0 {
		return ErrNoPointers
	}

	bars := make([]chart.Value, 0, lzutf8.MaxSequenceLength-lzutf8.MinSequenceLength+1)
	for length := lzutf8.MinSequenceLength; length <= lzutf8.MaxSequenceLength; length++ {
		bars = append(bars, chart.Value{
			Label: strconv.Itoa(length),
			Value: float64(s.Lengths[length]),
		})
	}

	return renderBars(w, "pointers by length", 20, 8, bars)
}

// RenderDistanceSVG draws a bar chart of pointer counts per distance band to w.
func (s *Stats) RenderDistanceSVG(w io.Writer) error {
	if s.Pointers() == 0 {
		return ErrNoPointers
	}

	bars := make([]chart.Value, 0, DistanceBands)
	for band, count := range s.Distances {
		bars = append(bars, chart.Value{
			Label: DistanceBandLabel(band),
			Value: float64(count),
		})
	}

	return renderBars(w, "pointers by distance", 80, 24, bars)
}

// renderBars renders bars as an SVG bar chart with the y axis starting at zero.
func renderBars(w io.Writer, title string, barWidth, barSpacing int, bars []chart.Value) error {
	peak := 0.0
	for _, b := range bars {
		peak = max(peak, b.Value)
	}

	graph := chart.BarChart{
		Title:      title,
		Width:      1024,
		Height:     512,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: peak},
		},
		Bars: bars,
	}

	return graph.Render(chart.SVG, w)
}
