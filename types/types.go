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

package types

// DbValue is a dB or dBm quantity, depending on context.
type DbValue = float64

// MbpsValue is an estimated data rate in Mbps.
type MbpsValue = float64

// Display floor for RSSI values: anything at or below this is treated as
// "no coverage" by consumers. Computed estimates may go lower; they are
// never clipped by the model itself.
const (
	RssiMinusInfinity DbValue = -1000.0

	// RssiNoLink is the hard cutoff below which no usable link exists.
	RssiNoLink DbValue = -90.0
)

// Point is a position on the floor-plan, in the editor's pixel units.
type Point struct {
	X float64
	Y float64
}

// Wall is an obstructing segment on the floor-plan. A degenerate wall
// (Start == End) is legal and never obstructs anything.
type Wall struct {
	Start           Point
	End             Point
	AttenuationDb   DbValue // attenuation at reference thickness
	ThicknessMeters float64
}

// IsDegenerate reports whether the wall has zero length.
func (w *Wall) IsDegenerate() bool {
	return w.Start == w.End
}

// AntennaKind selects the antenna radiation pattern of a transmitter.
type AntennaKind int

const (
	AntennaOmni AntennaKind = iota
	AntennaDirectional
)

var antennaKindNames = []string{"omni", "directional"}

func (k AntennaKind) String() string {
	if k < AntennaOmni || int(k) >= len(antennaKindNames) {
		return "unknown"
	}
	return antennaKindNames[k]
}

// ParseAntennaKind parses an antenna kind name; unrecognized names map to
// AntennaOmni, matching what the editor does for legacy documents.
func ParseAntennaKind(s string) AntennaKind {
	for i := 0; i < len(antennaKindNames); i++ {
		if s == antennaKindNames[i] {
			return AntennaKind(i)
		}
	}
	return AntennaOmni
}

// Transmitter holds the read-only per-call radio parameters of one access
// point. The engine never mutates or retains a Transmitter.
type Transmitter struct {
	Position         Point
	AltitudeMeters   float64
	TxPowerDbm       DbValue
	AntennaGainDbi   DbValue
	CableLossDb      DbValue
	FrequencyGHz     float64
	Antenna          AntennaKind
	RotationDegrees  float64
	BeamwidthDegrees float64
}

// default transmitter parameters, applied once at construction
const (
	DefaultTxPowerDbm       DbValue = 20.0
	DefaultAntennaGainDbi   DbValue = 0.0
	DefaultCableLossDb      DbValue = 0.0
	DefaultFrequencyGHz             = 5.0
	DefaultAltitudeMeters           = 2.5
	DefaultBeamwidthDegrees         = 90.0
)

// DefaultTransmitter returns a transmitter with typical AP defaults at the
// given position. Callers override only the fields they care about.
func DefaultTransmitter(pos Point) *Transmitter {
	return &Transmitter{
		Position:         pos,
		AltitudeMeters:   DefaultAltitudeMeters,
		TxPowerDbm:       DefaultTxPowerDbm,
		AntennaGainDbi:   DefaultAntennaGainDbi,
		CableLossDb:      DefaultCableLossDb,
		FrequencyGHz:     DefaultFrequencyGHz,
		Antenna:          AntennaOmni,
		RotationDegrees:  0,
		BeamwidthDegrees: DefaultBeamwidthDegrees,
	}
}

// Eirp is the effective isotropic radiated power of the transmitter.
func (tx *Transmitter) Eirp() DbValue {
	return tx.TxPowerDbm + tx.AntennaGainDbi - tx.CableLossDb
}
