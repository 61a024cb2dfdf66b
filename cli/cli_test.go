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

package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xkid/WiFi-Sim/coverage"
	"github.com/xkid/WiFi-Sim/radiomodel"
	. "github.com/xkid/WiFi-Sim/types"
)

func TestParseBytes(t *testing.T) {
	var cmd Command
	err := parseBytes([]byte("wrongcmd"), &cmd)
	assert.NotNil(t, err)

	assert.Nil(t, parseBytes([]byte("signal 100 200"), &cmd))
	assert.True(t, cmd.Signal != nil && cmd.Signal.X.Value() == 100 && cmd.Signal.Y.Value() == 200)
	assert.Nil(t, parseBytes([]byte("signal 10.5 -20.25"), &cmd))
	assert.True(t, cmd.Signal != nil && cmd.Signal.X.Value() == 10.5 && cmd.Signal.Y.Value() == -20.25)
	assert.NotNil(t, parseBytes([]byte("signal 100"), &cmd))

	assert.Nil(t, parseBytes([]byte("throughput 100 200"), &cmd))
	assert.True(t, cmd.Throughput != nil && cmd.Throughput.Standard == "" && cmd.Throughput.Width == nil)
	assert.Nil(t, parseBytes([]byte("throughput 100 200 ax"), &cmd))
	assert.True(t, cmd.Throughput != nil && cmd.Throughput.Standard == "ax")
	assert.Nil(t, parseBytes([]byte("throughput 100 200 be 160"), &cmd))
	assert.True(t, cmd.Throughput.Standard == "be" && *cmd.Throughput.Width == 160)

	assert.Nil(t, parseBytes([]byte("range 0"), &cmd))
	assert.True(t, cmd.Range != nil && cmd.Range.Tx == 0 && cmd.Range.MinDbm == nil)
	assert.Nil(t, parseBytes([]byte("range 1 -70"), &cmd))
	assert.True(t, cmd.Range != nil && cmd.Range.Tx == 1 && cmd.Range.MinDbm.Value() == -70)

	assert.True(t, parseBytes([]byte("walls"), &cmd) == nil && cmd.Walls != nil)
	assert.True(t, parseBytes([]byte("txs"), &cmd) == nil && cmd.Txs != nil)
	assert.True(t, parseBytes([]byte("scale"), &cmd) == nil && cmd.Scale != nil)
	assert.True(t, parseBytes([]byte("exit"), &cmd) == nil && cmd.Exit != nil)

	assert.True(t, parseBytes([]byte("help"), &cmd) == nil && cmd.Help != nil)
	assert.Nil(t, parseBytes([]byte("help signal"), &cmd))
	assert.Equal(t, "signal", cmd.Help.HelpTopic)
}

func testConsole(out *strings.Builder) *Console {
	params := radiomodel.DefaultModelParams()
	params.ReceiverHeightMeters = 0
	tx := DefaultTransmitter(Point{0, 0})
	tx.AltitudeMeters = 0
	engine := coverage.NewEngine(params, nil, []Transmitter{*tx})
	return NewConsole(engine, DefaultWifiStandard, DefaultChannelWidth, out)
}

func TestExecuteSignal(t *testing.T) {
	var out strings.Builder
	c := testConsole(&out)

	assert.True(t, c.ExecuteLine("signal 200 0"))
	assert.Contains(t, out.String(), "dBm")
}

func TestExecuteThroughput(t *testing.T) {
	var out strings.Builder
	c := testConsole(&out)

	assert.True(t, c.ExecuteLine("throughput 10 0 ax 80"))
	assert.Contains(t, out.String(), "Mbps")
	assert.Contains(t, out.String(), "80211ax")

	out.Reset()
	assert.True(t, c.ExecuteLine("throughput 10 0 ax 33"))
	assert.Contains(t, out.String(), "error")
}

func TestExecuteRange(t *testing.T) {
	var out strings.Builder
	c := testConsole(&out)

	assert.True(t, c.ExecuteLine("range 0"))
	assert.Contains(t, out.String(), "free-space range")

	out.Reset()
	assert.True(t, c.ExecuteLine("range 5"))
	assert.Contains(t, out.String(), "error")
}

func TestExecuteListings(t *testing.T) {
	var out strings.Builder
	c := testConsole(&out)

	assert.True(t, c.ExecuteLine("walls"))
	assert.Contains(t, out.String(), "0 walls")

	out.Reset()
	assert.True(t, c.ExecuteLine("txs"))
	assert.Contains(t, out.String(), "tx 0")

	out.Reset()
	assert.True(t, c.ExecuteLine("scale"))
	assert.Contains(t, out.String(), "px/m")
}

func TestExecuteExit(t *testing.T) {
	var out strings.Builder
	c := testConsole(&out)
	assert.False(t, c.ExecuteLine("exit"))
}

func TestExecuteBadLine(t *testing.T) {
	var out strings.Builder
	c := testConsole(&out)
	assert.True(t, c.ExecuteLine("frobnicate 1 2"))
	assert.Contains(t, out.String(), "error")
}
