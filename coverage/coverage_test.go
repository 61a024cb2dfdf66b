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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xkid/WiFi-Sim/radiomodel"
	. "github.com/xkid/WiFi-Sim/types"
)

func testEngine(walls []Wall, txs []Transmitter) *Engine {
	params := radiomodel.DefaultModelParams()
	params.ReceiverHeightMeters = 0
	return NewEngine(params, walls, txs)
}

func flatTx(pos Point, powerDbm DbValue) Transmitter {
	tx := DefaultTransmitter(pos)
	tx.AltitudeMeters = 0
	tx.TxPowerDbm = powerDbm
	return *tx
}

func TestBestSignalAtNoTransmitters(t *testing.T) {
	e := testEngine(nil, nil)
	assert.Equal(t, RssiMinusInfinity, e.BestSignalAt(Point{10, 10}))
}

func TestBestSignalAtPicksStrongest(t *testing.T) {
	txs := []Transmitter{
		flatTx(Point{0, 0}, 20),
		flatTx(Point{1000, 0}, 20),
		flatTx(Point{500, 0}, 5),
	}
	e := testEngine(nil, txs)

	p := Point{100, 0}
	best := e.BestSignalAt(p)
	for i := range txs {
		assert.GreaterOrEqual(t, best, e.SignalAt(&txs[i], p))
	}
	// the near transmitter wins at this point
	assert.Equal(t, e.SignalAt(&txs[0], p), best)
}

func TestSignalAtMatchesDirectModel(t *testing.T) {
	walls := []Wall{{Start: Point{50, -50}, End: Point{50, 50}, AttenuationDb: 12, ThicknessMeters: 0.15}}
	txs := []Transmitter{flatTx(Point{0, 0}, 20)}
	e := testEngine(walls, txs)

	p := Point{200, 0}
	want := radiomodel.ComputeRssi(&txs[0], p, 0, walls, e.Params().PixelsPerMeter, e.Params())
	assert.Equal(t, want, e.SignalAt(&txs[0], p))
}

func TestBestThroughputAt(t *testing.T) {
	e := testEngine(nil, []Transmitter{flatTx(Point{0, 0}, 20)})
	near := e.BestThroughputAt(Point{10, 0}, Wifi6, Width80)
	far := e.BestThroughputAt(Point{100000, 0}, Wifi6, Width80)
	assert.Greater(t, near, 0.0)
	assert.Equal(t, 0.0, far)
}

func TestCoverageRadiusPx(t *testing.T) {
	e := testEngine(nil, []Transmitter{flatTx(Point{0, 0}, 20)})
	tx := e.Transmitters()[0]

	radiusPx := e.CoverageRadiusPx(&tx, -70)
	meters := radiomodel.EstimateRange(tx.TxPowerDbm, tx.FrequencyGHz, -70, tx.AntennaGainDbi, tx.CableLossDb)
	assert.InDelta(t, meters*e.Params().PixelsPerMeter, radiusPx, 1e-9)
}

func TestCoverageRadiusPxFloorsInvalid(t *testing.T) {
	e := testEngine(nil, nil)

	tx := flatTx(Point{0, 0}, 20)
	tx.FrequencyGHz = 0 // range estimate comes back infinite
	assert.Equal(t, 1.0*e.Params().PixelsPerMeter, e.CoverageRadiusPx(&tx, -70))

	tx = flatTx(Point{0, 0}, math.NaN())
	assert.Equal(t, 1.0*e.Params().PixelsPerMeter, e.CoverageRadiusPx(&tx, -70))
}

func TestSampleGridMatchesPointwise(t *testing.T) {
	walls := []Wall{{Start: Point{50, -100}, End: Point{50, 100}, AttenuationDb: 6, ThicknessMeters: 0.15}}
	txs := []Transmitter{flatTx(Point{0, 0}, 20), flatTx(Point{300, 100}, 17)}
	e := testEngine(walls, txs)

	origin := Point{-20, -20}
	const cols, rows = 12, 9
	const step = 25.0

	grid, err := e.SampleGrid(context.Background(), origin, cols, rows, step, 4)
	assert.Nil(t, err)
	assert.Equal(t, cols, grid.Cols)
	assert.Equal(t, rows, grid.Rows)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p := grid.PointAt(col, row)
			assert.Equal(t, e.BestSignalAt(p), grid.SignalAt(col, row), "cell (%d,%d)", col, row)
		}
	}
}

func TestSampleGridSingleWorker(t *testing.T) {
	e := testEngine(nil, []Transmitter{flatTx(Point{0, 0}, 20)})
	a, err := e.SampleGrid(context.Background(), Point{0, 0}, 5, 5, 10, 1)
	assert.Nil(t, err)
	b, err := e.SampleGrid(context.Background(), Point{0, 0}, 5, 5, 10, 8)
	assert.Nil(t, err)
	assert.Equal(t, a.signal, b.signal)
}

func TestSampleGridCancellation(t *testing.T) {
	e := testEngine(nil, []Transmitter{flatTx(Point{0, 0}, 20)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	grid, err := e.SampleGrid(ctx, Point{0, 0}, 4, 4, 10, 2)
	assert.Equal(t, context.Canceled, err)
	// abandoned cells keep the no-coverage sentinel
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			assert.Equal(t, RssiMinusInfinity, grid.SignalAt(col, row))
		}
	}
}

func TestEngineSnapshotsInputs(t *testing.T) {
	txs := []Transmitter{flatTx(Point{0, 0}, 20)}
	e := testEngine(nil, txs)
	before := e.BestSignalAt(Point{100, 0})

	// mutating the caller's slice must not affect the engine
	txs[0].TxPowerDbm = -100
	assert.Equal(t, before, e.BestSignalAt(Point{100, 0}))
}
