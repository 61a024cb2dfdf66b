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

// Package coverage is the shared evaluation layer between the engine and the
// renderers: the 2D overlay, the 3D mesh and the cursor readout all query
// the same Engine, so they see identical numbers for identical inputs.
package coverage

import (
	"math"

	"github.com/xkid/WiFi-Sim/geom"
	"github.com/xkid/WiFi-Sim/logger"
	"github.com/xkid/WiFi-Sim/radiomodel"
	"github.com/xkid/WiFi-Sim/throughput"
	. "github.com/xkid/WiFi-Sim/types"
)

// minRangeMeters is the floor substituted for invalid range estimates before
// they are used for any sizing.
const minRangeMeters = 1.0

// Engine evaluates coverage for one snapshot of the floor-plan. It is
// immutable after construction and safe for concurrent use; walls and
// transmitters are copied in, so later edits in the document model don't
// leak into an evaluation in flight.
type Engine struct {
	params *radiomodel.ModelParams
	txs    []Transmitter
	index  *geom.WallIndex
}

// NewEngine builds an engine for the given wall and transmitter snapshot.
// A nil params uses the model defaults.
func NewEngine(params *radiomodel.ModelParams, walls []Wall, txs []Transmitter) *Engine {
	if params == nil {
		params = radiomodel.DefaultModelParams()
	}
	e := &Engine{
		params: params,
		txs:    append([]Transmitter(nil), txs...),
		index:  geom.NewWallIndex(walls),
	}
	logger.Debugf("coverage engine: %d walls indexed, %d transmitters, scale %.2f px/m",
		e.index.Len(), len(e.txs), params.PixelsPerMeter)
	return e
}

// Params returns the engine's model parameters.
func (e *Engine) Params() *radiomodel.ModelParams {
	return e.params
}

// WallCount returns the number of walls in the engine's spatial index.
func (e *Engine) WallCount() int {
	return e.index.Len()
}

// Transmitters returns the engine's transmitter snapshot.
func (e *Engine) Transmitters() []Transmitter {
	return e.txs
}

// SignalAt returns the received signal estimate (dBm) at p for one
// transmitter, walls narrowed through the spatial index.
func (e *Engine) SignalAt(tx *Transmitter, p Point) DbValue {
	walls := e.index.Candidates(tx.Position, p)
	return radiomodel.ComputeRssi(tx, p, e.params.ReceiverHeightMeters, walls, e.params.PixelsPerMeter, e.params)
}

// BestSignalAt returns the strongest signal estimate across all
// transmitters, or RssiMinusInfinity when there are none.
func (e *Engine) BestSignalAt(p Point) DbValue {
	best := RssiMinusInfinity
	for i := range e.txs {
		if rssi := e.SignalAt(&e.txs[i], p); rssi > best {
			best = rssi
		}
	}
	return best
}

// BestThroughputAt returns the throughput estimate (Mbps) fed by the
// strongest transmitter at p.
func (e *Engine) BestThroughputAt(p Point, standard WifiStandard, width ChannelWidth) MbpsValue {
	return throughput.Estimate(e.BestSignalAt(p), standard, width)
}

// CoverageRadiusPx returns the free-space radius, in pixels, at which the
// transmitter's signal drops to minSignalDbm. Invalid estimates are floored
// to one meter before conversion, per the range estimator's contract.
func (e *Engine) CoverageRadiusPx(tx *Transmitter, minSignalDbm DbValue) float64 {
	meters := radiomodel.EstimateRange(tx.TxPowerDbm, tx.FrequencyGHz, minSignalDbm, tx.AntennaGainDbi, tx.CableLossDb)
	if math.IsNaN(meters) || math.IsInf(meters, 0) || meters <= 0 {
		meters = minRangeMeters
	}
	return meters * e.params.PixelsPerMeter
}
