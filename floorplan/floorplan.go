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

// Package floorplan loads the YAML floor-plan documents produced by the
// editor's export: a unit scale plus wall and transmitter lists. Parsed
// plans are plain engine inputs; the engine itself never does I/O.
package floorplan

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/xkid/WiFi-Sim/logger"
	"github.com/xkid/WiFi-Sim/radiomodel"
	. "github.com/xkid/WiFi-Sim/types"
)

// MaterialAttenuationDb maps material shorthand names usable in wall
// entries to their attenuation at reference thickness.
var MaterialAttenuationDb = map[string]DbValue{
	"drywall":  3,
	"wood":     4,
	"glass":    6,
	"brick":    8,
	"concrete": 12,
	"metal":    26,
}

// YamlFloorPlanFile is the YAML document structure. Optional fields are
// pointers; absent ones take the model/transmitter defaults once at load.
type YamlFloorPlanFile struct {
	ScalePpm         *float64            `yaml:"scale-ppm"`
	ReceiverHeightM  *float64            `yaml:"receiver-height"`
	WallsList        []WallConfig        `yaml:"walls"`
	TransmittersList []TransmitterConfig `yaml:"transmitters"`
}

type WallConfig struct {
	Start         [2]float64 `yaml:"start"`
	End           [2]float64 `yaml:"end"`
	Material      *string    `yaml:"material"`
	AttenuationDb *float64   `yaml:"attenuation-db"`
	ThicknessM    *float64   `yaml:"thickness-m"`
}

type TransmitterConfig struct {
	Pos          [2]float64 `yaml:"pos"`
	AltitudeM    *float64   `yaml:"altitude-m"`
	PowerDbm     *float64   `yaml:"power-dbm"`
	GainDbi      *float64   `yaml:"gain-dbi"`
	CableLossDb  *float64   `yaml:"cable-loss-db"`
	FreqGhz      *float64   `yaml:"freq-ghz"`
	Antenna      *string    `yaml:"antenna"`
	RotationDeg  *float64   `yaml:"rotation-deg"`
	BeamwidthDeg *float64   `yaml:"beamwidth-deg"`
}

// FloorPlan is a validated plan, ready to feed a coverage engine.
type FloorPlan struct {
	Params       *radiomodel.ModelParams
	Walls        []Wall
	Transmitters []Transmitter
}

// Load reads and parses a floor-plan file.
func Load(path string) (*FloorPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading floor-plan file %s", path)
	}
	plan, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing floor-plan file %s", path)
	}
	logger.Debugf("floorplan: loaded %s (%d walls, %d transmitters)", path, len(plan.Walls), len(plan.Transmitters))
	return plan, nil
}

// Parse unmarshals and validates a floor-plan document, applying defaults
// for omitted fields.
func Parse(data []byte) (*FloorPlan, error) {
	var file YamlFloorPlanFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "unmarshalling floor-plan YAML")
	}
	return build(&file)
}

func build(file *YamlFloorPlanFile) (*FloorPlan, error) {
	params := radiomodel.DefaultModelParams()
	if file.ScalePpm != nil {
		// the engine substitutes a default for a bad scale at every call;
		// user-entered values are rejected here instead, per the contract
		// that input validation happens before the core is invoked
		if !(*file.ScalePpm > 0) {
			return nil, errors.Errorf("scale-ppm must be > 0, got %v", *file.ScalePpm)
		}
		params.PixelsPerMeter = *file.ScalePpm
	}
	if file.ReceiverHeightM != nil {
		if *file.ReceiverHeightM < 0 {
			return nil, errors.Errorf("receiver-height must be >= 0, got %v", *file.ReceiverHeightM)
		}
		params.ReceiverHeightMeters = *file.ReceiverHeightM
	}

	plan := &FloorPlan{Params: params}
	for i := range file.WallsList {
		w, err := buildWall(&file.WallsList[i], params.RefWallThicknessMeters)
		if err != nil {
			return nil, errors.Wrapf(err, "wall %d", i)
		}
		plan.Walls = append(plan.Walls, w)
	}
	for i := range file.TransmittersList {
		tx, err := buildTransmitter(&file.TransmittersList[i])
		if err != nil {
			return nil, errors.Wrapf(err, "transmitter %d", i)
		}
		plan.Transmitters = append(plan.Transmitters, *tx)
	}
	return plan, nil
}

func buildWall(cfg *WallConfig, refThickness float64) (Wall, error) {
	w := Wall{
		Start:           Point{X: cfg.Start[0], Y: cfg.Start[1]},
		End:             Point{X: cfg.End[0], Y: cfg.End[1]},
		AttenuationDb:   MaterialAttenuationDb["drywall"],
		ThicknessMeters: refThickness,
	}
	if cfg.Material != nil {
		att, ok := MaterialAttenuationDb[*cfg.Material]
		if !ok {
			return w, errors.Errorf("unknown material %q", *cfg.Material)
		}
		w.AttenuationDb = att
	}
	if cfg.AttenuationDb != nil {
		w.AttenuationDb = *cfg.AttenuationDb
	}
	if cfg.ThicknessM != nil {
		w.ThicknessMeters = *cfg.ThicknessM
	}
	if w.AttenuationDb < 0 {
		return w, errors.Errorf("attenuation-db must be >= 0, got %v", w.AttenuationDb)
	}
	if !(w.ThicknessMeters > 0) {
		return w, errors.Errorf("thickness-m must be > 0, got %v", w.ThicknessMeters)
	}
	return w, nil
}

func buildTransmitter(cfg *TransmitterConfig) (*Transmitter, error) {
	tx := DefaultTransmitter(Point{X: cfg.Pos[0], Y: cfg.Pos[1]})
	if cfg.AltitudeM != nil {
		tx.AltitudeMeters = *cfg.AltitudeM
	}
	if cfg.PowerDbm != nil {
		tx.TxPowerDbm = *cfg.PowerDbm
	}
	if cfg.GainDbi != nil {
		tx.AntennaGainDbi = *cfg.GainDbi
	}
	if cfg.CableLossDb != nil {
		tx.CableLossDb = *cfg.CableLossDb
	}
	if cfg.FreqGhz != nil {
		if !(*cfg.FreqGhz > 0) {
			return nil, errors.Errorf("freq-ghz must be > 0, got %v", *cfg.FreqGhz)
		}
		tx.FrequencyGHz = *cfg.FreqGhz
	}
	if cfg.Antenna != nil {
		tx.Antenna = ParseAntennaKind(*cfg.Antenna)
	}
	if cfg.RotationDeg != nil {
		tx.RotationDegrees = *cfg.RotationDeg
	}
	if cfg.BeamwidthDeg != nil {
		tx.BeamwidthDegrees = *cfg.BeamwidthDeg
	}
	if tx.Antenna == AntennaDirectional && !(tx.BeamwidthDegrees > 0 && tx.BeamwidthDegrees < 360) {
		return nil, errors.Errorf("beamwidth-deg must be in (0, 360) for a directional antenna, got %v", tx.BeamwidthDegrees)
	}
	return tx, nil
}
