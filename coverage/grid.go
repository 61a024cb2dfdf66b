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

package coverage

import (
	"context"
	"runtime"
	"sync"

	"github.com/xkid/WiFi-Sim/logger"
	. "github.com/xkid/WiFi-Sim/types"
)

// Grid holds sampled signal estimates over a regular grid of points.
// Cell (c, r) corresponds to plan position (Origin.X + c*StepPx,
// Origin.Y + r*StepPx). Cells skipped due to cancellation hold
// RssiMinusInfinity.
type Grid struct {
	Origin Point
	Cols   int
	Rows   int
	StepPx float64

	signal []DbValue
}

// SignalAt returns the sampled signal estimate of cell (col, row).
func (g *Grid) SignalAt(col int, row int) DbValue {
	return g.signal[row*g.Cols+col]
}

// PointAt returns the plan position sampled for cell (col, row).
func (g *Grid) PointAt(col int, row int) Point {
	return Point{X: g.Origin.X + float64(col)*g.StepPx, Y: g.Origin.Y + float64(row)*g.StepPx}
}

// SampleGrid samples BestSignalAt over a cols x rows grid starting at origin
// with stepPx spacing, partitioned row-wise across workers. Cells are
// independent and stateless, so workers need no coordination beyond result
// collection. Cancellation is honored at row granularity; the partial grid
// and ctx.Err() are returned in that case.
func (e *Engine) SampleGrid(ctx context.Context, origin Point, cols int, rows int, stepPx float64, workers int) (*Grid, error) {
	logger.AssertTrue(cols > 0 && rows > 0 && stepPx > 0)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > rows {
		workers = rows
	}

	g := &Grid{
		Origin: origin,
		Cols:   cols,
		Rows:   rows,
		StepPx: stepPx,
		signal: make([]DbValue, cols*rows),
	}
	for i := range g.signal {
		g.signal[i] = RssiMinusInfinity
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for row := w; row < rows; row += workers {
				if ctx.Err() != nil {
					return
				}
				y := origin.Y + float64(row)*stepPx
				for col := 0; col < cols; col++ {
					g.signal[row*cols+col] = e.BestSignalAt(Point{X: origin.X + float64(col)*stepPx, Y: y})
				}
			}
		}(w)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		logger.Debugf("grid sampling abandoned: %v", err)
		return g, err
	}
	return g, nil
}
