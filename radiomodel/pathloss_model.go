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

package radiomodel

import (
	"math"

	"github.com/xkid/WiFi-Sim/geom"
	. "github.com/xkid/WiFi-Sim/types"
)

// fsplConstDb is the empirical constant of the free-space path loss formula
// for distance in meters and frequency in MHz. Must match the editor's
// historical value exactly; documents calibrated against it exist.
const fsplConstDb DbValue = 27.55

// EstimateSignal computes the estimated received signal (dBm) at rxPoint for
// the given transmitter, using default model parameters. Obstruction by the
// given walls is evaluated in the 2D plane only; wall height and receiver
// height are not cross-checked for vertical clearance.
//
// The function is total over finite inputs: degenerate scale falls back to
// the default, distances inside the near field return plain EIRP, and
// non-finite inputs propagate to a non-finite result.
func EstimateSignal(tx *Transmitter, rxPoint Point, rxHeightMeters float64, walls []Wall, pixelsPerMeter float64) DbValue {
	return ComputeRssi(tx, rxPoint, rxHeightMeters, walls, pixelsPerMeter, defaultParams)
}

// ComputeRssi is the parameterized form of EstimateSignal, used by callers
// that carry their own ModelParams (the coverage engine does).
func ComputeRssi(tx *Transmitter, rxPoint Point, rxHeightMeters float64, walls []Wall, pixelsPerMeter float64, params *ModelParams) DbValue {
	ppm := pixelsPerMeter
	if math.IsNaN(ppm) || math.IsInf(ppm, 0) || ppm <= 0 {
		ppm = params.PixelsPerMeter
	}

	planarMeters := geom.Distance(tx.Position, rxPoint) / ppm
	dzMeters := math.Abs(tx.AltitudeMeters - rxHeightMeters)
	distMeters := math.Sqrt(planarMeters*planarMeters + dzMeters*dzMeters)

	eirp := tx.Eirp()
	if distMeters < params.NearFieldMeters {
		// the model is undefined this close to the antenna; avoid log(0)
		return eirp
	}

	fspl := FreeSpacePathLoss(distMeters, tx.FrequencyGHz)
	obstruction := ObstructionLoss(tx.Position, rxPoint, walls, params.RefWallThicknessMeters)
	pattern := PatternLoss(tx, rxPoint, params.MaxPatternLossDb)

	return eirp - fspl - obstruction - pattern
}

// FreeSpacePathLoss returns the unobstructed path loss (dB) over distMeters
// at the given carrier frequency.
func FreeSpacePathLoss(distMeters float64, frequencyGHz float64) DbValue {
	return 20.0*math.Log10(distMeters) + 20.0*math.Log10(frequencyGHz*1000.0) - fsplConstDb
}

// ObstructionLoss sums the attenuation of every wall crossing the segment
// from txPos to rxPoint. Each crossing contributes attenuation scaled
// linearly by wall thickness against the reference thickness; contributions
// are additive and order-independent.
func ObstructionLoss(txPos Point, rxPoint Point, walls []Wall, refThicknessMeters float64) DbValue {
	var loss DbValue
	for i := range walls {
		w := &walls[i]
		if geom.SegmentsIntersect(txPos, rxPoint, w.Start, w.End) {
			loss += w.AttenuationDb * (w.ThicknessMeters / refThicknessMeters)
		}
	}
	return loss
}

// PatternLoss returns the antenna pattern loss (dB) toward rxPoint. Omni
// antennas radiate equally in all directions. Directional antennas are
// lossless within their beamwidth, then ramp linearly up to maxLossDb at
// 180 degrees off boresight.
func PatternLoss(tx *Transmitter, rxPoint Point, maxLossDb DbValue) DbValue {
	if tx.Antenna != AntennaDirectional {
		return 0
	}
	halfBeam := tx.BeamwidthDegrees / 2.0
	if halfBeam >= 180.0 {
		return 0
	}
	bearing := normalizeDegrees(math.Atan2(rxPoint.Y-tx.Position.Y, rxPoint.X-tx.Position.X) * 180.0 / math.Pi)
	diff := angularDifference(bearing, normalizeDegrees(tx.RotationDegrees))
	if diff <= halfBeam {
		return 0
	}
	return (diff - halfBeam) / (180.0 - halfBeam) * maxLossDb
}

var defaultParams = DefaultModelParams()
