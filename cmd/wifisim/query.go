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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xkid/WiFi-Sim/cli"
	"github.com/xkid/WiFi-Sim/colormap"
	"github.com/xkid/WiFi-Sim/types"
)

var (
	queryX float64
	queryY float64
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "print signal and throughput estimates for one plan position",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine()
		if err != nil {
			return err
		}
		std, width, err := throughputSettings()
		if err != nil {
			return err
		}
		p := types.Point{X: queryX, Y: queryY}
		rssi := engine.BestSignalAt(p)
		mbps := engine.BestThroughputAt(p, std, width)
		fmt.Printf("signal:     %.1f dBm (bucket %d)\n", rssi, colormap.SignalBucket(rssi))
		fmt.Printf("throughput: %.0f Mbps (%s @ %d MHz, bucket %d)\n", mbps, std, width, colormap.ThroughputBucket(mbps))
		return nil
	},
}

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "interactive query console over a floor-plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine()
		if err != nil {
			return err
		}
		std, width, err := throughputSettings()
		if err != nil {
			return err
		}
		return cli.NewConsole(engine, std, width, os.Stdout).Run()
	},
}

func init() {
	queryCmd.Flags().Float64VarP(&queryX, "x", "x", 0, "plan x position (pixels)")
	queryCmd.Flags().Float64VarP(&queryY, "y", "y", 0, "plan y position (pixels)")
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(consoleCmd)
}
