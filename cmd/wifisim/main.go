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
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xkid/WiFi-Sim/coverage"
	"github.com/xkid/WiFi-Sim/floorplan"
	"github.com/xkid/WiFi-Sim/logger"
	"github.com/xkid/WiFi-Sim/types"
)

var (
	planFile string
	logLevel string
	standard string
	widthMhz int
)

var rootCmd = &cobra.Command{
	Use:   "wifisim",
	Short: "Wi-Fi coverage estimation for floor-plan documents",
	Long: "wifisim estimates radio coverage (signal strength and achievable throughput)\n" +
		"over a floor-plan of walls and access points, using the same propagation\n" +
		"engine as the floor-plan editor.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetLevel(logger.ParseLevelString(logLevel))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&planFile, "plan", "f", "", "floor-plan YAML file (required)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "log level (debug|info|warn|error|off)")
	rootCmd.PersistentFlags().StringVar(&standard, "standard", "80211ax", "Wi-Fi standard for throughput estimates")
	rootCmd.PersistentFlags().IntVar(&widthMhz, "width", 80, "channel width in MHz (20|40|80|160)")
	_ = rootCmd.MarkPersistentFlagRequired("plan")
}

// loadEngine loads the plan file and builds the coverage engine every
// subcommand queries.
func loadEngine() (*coverage.Engine, *floorplan.FloorPlan, error) {
	plan, err := floorplan.Load(planFile)
	if err != nil {
		return nil, nil, err
	}
	return coverage.NewEngine(plan.Params, plan.Walls, plan.Transmitters), plan, nil
}

func throughputSettings() (types.WifiStandard, types.ChannelWidth, error) {
	std := types.ParseWifiStandard(standard)
	if std == types.WifiUnknown {
		return 0, 0, errors.Errorf("unknown Wi-Fi standard %q", standard)
	}
	width := types.ParseChannelWidth(widthMhz)
	if !width.IsValid() {
		return 0, 0, errors.Errorf("unsupported channel width %d MHz", widthMhz)
	}
	return std, width, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
