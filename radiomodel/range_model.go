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

	. "github.com/xkid/WiFi-Sim/types"
)

// EstimateRange inverts the free-space path loss formula: the distance in
// meters at which an unobstructed omni link drops to minSignalDbm. Used once
// per transmitter to size the coverage ring, not per grid point.
//
// The result is not clamped. Non-finite or non-positive results (possible
// for degenerate inputs, e.g. zero frequency) must be replaced by a safe
// minimum before any downstream sizing; see coverage.CoverageRadiusPx.
func EstimateRange(txPowerDbm DbValue, frequencyGHz float64, minSignalDbm DbValue, antennaGainDbi DbValue, cableLossDb DbValue) float64 {
	eirp := txPowerDbm + antennaGainDbi - cableLossDb
	budget := eirp - minSignalDbm
	constTerm := 20.0*math.Log10(frequencyGHz*1000.0) - fsplConstDb
	return math.Pow(10.0, (budget-constTerm)/20.0)
}
