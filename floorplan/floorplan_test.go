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

package floorplan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/xkid/WiFi-Sim/types"
)

var testPlanYaml = `
scale-ppm: 40
receiver-height: 1.0
walls:
    - start: [0, 0]
      end: [400, 0]
      material: concrete
    - start: [0, 0]
      end: [0, 300]
      attenuation-db: 5.5
      thickness-m: 0.3
transmitters:
    - pos: [200, 150]
    - pos: [50, 50]
      power-dbm: 17
      freq-ghz: 2.4
      antenna: directional
      rotation-deg: 90
      beamwidth-deg: 60
`

func TestParsePlan(t *testing.T) {
	plan, err := Parse([]byte(testPlanYaml))
	assert.Nil(t, err)

	assert.Equal(t, 40.0, plan.Params.PixelsPerMeter)
	assert.Equal(t, 1.0, plan.Params.ReceiverHeightMeters)

	assert.Equal(t, 2, len(plan.Walls))
	assert.Equal(t, MaterialAttenuationDb["concrete"], plan.Walls[0].AttenuationDb)
	assert.Equal(t, plan.Params.RefWallThicknessMeters, plan.Walls[0].ThicknessMeters)
	assert.Equal(t, 5.5, plan.Walls[1].AttenuationDb)
	assert.Equal(t, 0.3, plan.Walls[1].ThicknessMeters)

	assert.Equal(t, 2, len(plan.Transmitters))
	// first transmitter is all defaults
	assert.Equal(t, DefaultTxPowerDbm, plan.Transmitters[0].TxPowerDbm)
	assert.Equal(t, AntennaOmni, plan.Transmitters[0].Antenna)
	assert.Equal(t, Point{200, 150}, plan.Transmitters[0].Position)
	// second overrides radio and antenna settings
	assert.Equal(t, 17.0, plan.Transmitters[1].TxPowerDbm)
	assert.Equal(t, 2.4, plan.Transmitters[1].FrequencyGHz)
	assert.Equal(t, AntennaDirectional, plan.Transmitters[1].Antenna)
	assert.Equal(t, 90.0, plan.Transmitters[1].RotationDegrees)
	assert.Equal(t, 60.0, plan.Transmitters[1].BeamwidthDegrees)
}

func TestParseEmptyPlan(t *testing.T) {
	plan, err := Parse([]byte(""))
	assert.Nil(t, err)
	assert.Empty(t, plan.Walls)
	assert.Empty(t, plan.Transmitters)
	assert.Equal(t, 20.0, plan.Params.PixelsPerMeter)
}

func TestParseRejectsBadScale(t *testing.T) {
	_, err := Parse([]byte("scale-ppm: 0"))
	assert.NotNil(t, err)
	_, err = Parse([]byte("scale-ppm: -4"))
	assert.NotNil(t, err)
}

func TestParseRejectsBadWalls(t *testing.T) {
	_, err := Parse([]byte(`
walls:
    - start: [0, 0]
      end: [10, 0]
      attenuation-db: -1
`))
	assert.NotNil(t, err)

	_, err = Parse([]byte(`
walls:
    - start: [0, 0]
      end: [10, 0]
      thickness-m: 0
`))
	assert.NotNil(t, err)

	_, err = Parse([]byte(`
walls:
    - start: [0, 0]
      end: [10, 0]
      material: plasma
`))
	assert.NotNil(t, err)
}

func TestParseRejectsBadTransmitters(t *testing.T) {
	_, err := Parse([]byte(`
transmitters:
    - pos: [0, 0]
      freq-ghz: 0
`))
	assert.NotNil(t, err)

	_, err = Parse([]byte(`
transmitters:
    - pos: [0, 0]
      antenna: directional
      beamwidth-deg: 360
`))
	assert.NotNil(t, err)
}

func TestParseRejectsInvalidYaml(t *testing.T) {
	_, err := Parse([]byte("walls: ["))
	assert.NotNil(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does/not/exist.yaml")
	assert.NotNil(t, err)
}
