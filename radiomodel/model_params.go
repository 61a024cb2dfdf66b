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
	. "github.com/xkid/WiFi-Sim/types"
)

// default model parameters
const (
	defaultPixelsPerMeter         = 20.0 // substituted when the caller's scale is unusable
	defaultReceiverHeightMeters   = 1.5  // typical laptop/phone height above the floor
	defaultNearFieldMeters        = 0.1  // below this 3D distance the model returns plain EIRP
	defaultRefWallThicknessMeters = 0.15 // thickness the wall attenuation table is calibrated for
	defaultMaxPatternLossDb       = 25.0 // directional antenna back-lobe loss at 180 degrees
)

// ModelParams stores the propagation model parameters. Zero-value fields of
// caller-provided structs are filled in by DefaultModelParams-style
// construction once, not per call.
type ModelParams struct {
	PixelsPerMeter         float64 // floor-plan pixels per meter
	ReceiverHeightMeters   float64 // receiver antenna height above the floor
	NearFieldMeters        float64 // EIRP short-circuit distance
	RefWallThicknessMeters float64 // reference thickness for wall attenuation
	MaxPatternLossDb       DbValue // pattern loss at the back of a directional antenna
}

// DefaultModelParams gets a new set of parameters with default values, as a
// basis to configure further.
func DefaultModelParams() *ModelParams {
	return &ModelParams{
		PixelsPerMeter:         defaultPixelsPerMeter,
		ReceiverHeightMeters:   defaultReceiverHeightMeters,
		NearFieldMeters:        defaultNearFieldMeters,
		RefWallThicknessMeters: defaultRefWallThicknessMeters,
		MaxPatternLossDb:       defaultMaxPatternLossDb,
	}
}
