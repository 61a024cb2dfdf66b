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

// Package cli is a read-only inspection console over a loaded floor-plan:
// point queries for signal and throughput, per-transmitter coverage range,
// and plan listings. It evaluates through the same coverage engine as the
// renderers, so its numbers match what the editor draws.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/xkid/WiFi-Sim/colormap"
	"github.com/xkid/WiFi-Sim/coverage"
	"github.com/xkid/WiFi-Sim/logger"
	. "github.com/xkid/WiFi-Sim/types"
)

const prompt = "wifisim> "

// defaultRangeMinDbm sizes the coverage ring when the range command gives
// no explicit threshold.
const defaultRangeMinDbm DbValue = -75.0

// Console runs interactive queries against one coverage engine.
type Console struct {
	engine   *coverage.Engine
	standard WifiStandard
	width    ChannelWidth
	out      io.Writer
	help     help
}

// NewConsole creates a console over the given engine. Throughput queries
// without an explicit standard/width use the given defaults.
func NewConsole(engine *coverage.Engine, standard WifiStandard, width ChannelWidth, out io.Writer) *Console {
	return &Console{
		engine:   engine,
		standard: standard,
		width:    width,
		out:      out,
		help:     newHelp(),
	}
}

// Run reads and executes commands until exit or EOF.
func (c *Console) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !c.ExecuteLine(line) {
			return nil
		}
	}
}

// ExecuteLine parses and runs a single command line; it returns false when
// the console should exit.
func (c *Console) ExecuteLine(line string) bool {
	var cmd Command
	if err := parseBytes([]byte(line), &cmd); err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		c.help.printShort(c.out)
		return true
	}
	return c.execute(&cmd)
}

func (c *Console) execute(cmd *Command) bool {
	switch {
	case cmd.Signal != nil:
		c.executeSignal(cmd.Signal)
	case cmd.Throughput != nil:
		c.executeThroughput(cmd.Throughput)
	case cmd.Range != nil:
		c.executeRange(cmd.Range)
	case cmd.Walls != nil:
		c.executeWalls()
	case cmd.Txs != nil:
		c.executeTxs()
	case cmd.Scale != nil:
		fmt.Fprintf(c.out, "%v px/m\n", c.engine.Params().PixelsPerMeter)
	case cmd.Help != nil:
		c.help.print(c.out, cmd.Help.HelpTopic)
	case cmd.Exit != nil:
		return false
	default:
		logger.Panicf("unhandled command: %+v", *cmd)
	}
	return true
}

func (c *Console) executeSignal(cmd *SignalCmd) {
	p := Point{X: cmd.X.Value(), Y: cmd.Y.Value()}
	rssi := c.engine.BestSignalAt(p)
	fmt.Fprintf(c.out, "signal at (%v, %v): %.1f dBm, bucket %d\n",
		p.X, p.Y, rssi, colormap.SignalBucket(rssi))
}

func (c *Console) executeThroughput(cmd *ThroughputCmd) {
	p := Point{X: cmd.X.Value(), Y: cmd.Y.Value()}
	standard := c.standard
	if cmd.Standard != "" {
		standard = ParseWifiStandard("80211" + cmd.Standard)
	}
	width := c.width
	if cmd.Width != nil {
		width = ParseChannelWidth(*cmd.Width)
		if !width.IsValid() {
			fmt.Fprintf(c.out, "error: unsupported channel width %d MHz\n", *cmd.Width)
			return
		}
	}
	mbps := c.engine.BestThroughputAt(p, standard, width)
	fmt.Fprintf(c.out, "throughput at (%v, %v): %.0f Mbps (%s @ %d MHz), bucket %d\n",
		p.X, p.Y, mbps, standard, width, colormap.ThroughputBucket(mbps))
}

func (c *Console) executeRange(cmd *RangeCmd) {
	txs := c.engine.Transmitters()
	if cmd.Tx < 0 || cmd.Tx >= len(txs) {
		fmt.Fprintf(c.out, "error: no transmitter %d (have %d)\n", cmd.Tx, len(txs))
		return
	}
	minDbm := defaultRangeMinDbm
	if cmd.MinDbm != nil {
		minDbm = cmd.MinDbm.Value()
	}
	radiusPx := c.engine.CoverageRadiusPx(&txs[cmd.Tx], minDbm)
	fmt.Fprintf(c.out, "tx %d free-space range to %.1f dBm: %.1f m (%.0f px)\n",
		cmd.Tx, minDbm, radiusPx/c.engine.Params().PixelsPerMeter, radiusPx)
}

func (c *Console) executeWalls() {
	// walls live in the engine's spatial index only; report the counts the
	// plan was built with
	fmt.Fprintf(c.out, "%d walls indexed\n", c.engine.WallCount())
}

func (c *Console) executeTxs() {
	for i, tx := range c.engine.Transmitters() {
		fmt.Fprintf(c.out, "tx %d: pos (%v, %v) alt %.1fm %v dBm %v dBi %v GHz %s\n",
			i, tx.Position.X, tx.Position.Y, tx.AltitudeMeters,
			tx.TxPowerDbm, tx.AntennaGainDbi, tx.FrequencyGHz, tx.Antenna)
	}
	if len(c.engine.Transmitters()) == 0 {
		fmt.Fprintln(c.out, "no transmitters")
	}
}
