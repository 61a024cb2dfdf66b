// Copyright (c) 2024-2025, The WiFi-Sim Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package main

import (
	"context"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xkid/WiFi-Sim/colormap"
	"github.com/xkid/WiFi-Sim/coverage"
	"github.com/xkid/WiFi-Sim/floorplan"
	"github.com/xkid/WiFi-Sim/logger"
	"github.com/xkid/WiFi-Sim/throughput"
	"github.com/xkid/WiFi-Sim/types"
)

var (
	outFile  string
	metric   string
	stepPx   float64
	workers  int
	marginPx float64
)

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "render a coverage heatmap PNG from a floor-plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, plan, err := loadEngine()
		if err != nil {
			return err
		}
		std, width, err := throughputSettings()
		if err != nil {
			return err
		}
		if metric != "signal" && metric != "throughput" {
			return errors.Errorf("unknown metric %q (want signal or throughput)", metric)
		}
		if !(stepPx > 0) {
			return errors.Errorf("step must be > 0, got %v", stepPx)
		}

		origin, cols, rows := gridLayout(plan)
		grid, err := engine.SampleGrid(context.Background(), origin, cols, rows, stepPx, workers)
		if err != nil {
			return err
		}

		img := renderGrid(grid, std, width)
		f, err := os.Create(outFile)
		if err != nil {
			return errors.Wrapf(err, "creating %s", outFile)
		}
		defer func() { _ = f.Close() }()
		if err := png.Encode(f, img); err != nil {
			return errors.Wrap(err, "encoding PNG")
		}
		logger.Infof("wrote %s heatmap (%dx%d cells) to %s", metric, cols, rows, outFile)
		return nil
	},
}

func init() {
	heatmapCmd.Flags().StringVarP(&outFile, "out", "o", "heatmap.png", "output PNG file")
	heatmapCmd.Flags().StringVar(&metric, "metric", "signal", "metric to render (signal|throughput)")
	heatmapCmd.Flags().Float64Var(&stepPx, "step", 10, "grid step in plan pixels")
	heatmapCmd.Flags().IntVar(&workers, "workers", 0, "sampling workers (0 = all CPUs)")
	heatmapCmd.Flags().Float64Var(&marginPx, "margin", 100, "margin around the plan's bounding box, in pixels")
	rootCmd.AddCommand(heatmapCmd)
}

// gridLayout derives the sampled area from the plan's bounding box plus a
// margin, so isolated transmitters still get a visible coverage field.
func gridLayout(plan *floorplan.FloorPlan) (types.Point, int, int) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(p types.Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, w := range plan.Walls {
		grow(w.Start)
		grow(w.End)
	}
	for _, tx := range plan.Transmitters {
		grow(tx.Position)
	}
	if minX > maxX { // empty plan
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}
	origin := types.Point{X: minX - marginPx, Y: minY - marginPx}
	cols := int(math.Ceil((maxX-minX+2*marginPx)/stepPx)) + 1
	rows := int(math.Ceil((maxY-minY+2*marginPx)/stepPx)) + 1
	return origin, cols, rows
}

// renderGrid draws each grid cell as a step-sized square in the overlay
// encoding. Dead zones stay transparent.
func renderGrid(grid *coverage.Grid, std types.WifiStandard, width types.ChannelWidth) image.Image {
	cell := int(math.Max(1, math.Round(grid.StepPx)))
	img := image.NewNRGBA(image.Rect(0, 0, grid.Cols*cell, grid.Rows*cell))
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			rssi := grid.SignalAt(col, row)
			c := colormap.SignalOverlay(rssi)
			if metric == "throughput" {
				c = colormap.ThroughputOverlay(throughput.Estimate(rssi, std, width))
			}
			rect := image.Rect(col*cell, row*cell, (col+1)*cell, (row+1)*cell)
			draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
		}
	}
	return img
}
