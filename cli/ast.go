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
	"github.com/alecthomas/participle"
)

// noinspection GoStructTag
type Command struct {
	Signal     *SignalCmd     `  @@` //nolint
	Throughput *ThroughputCmd `| @@` //nolint
	Range      *RangeCmd      `| @@` //nolint
	Walls      *WallsCmd      `| @@` //nolint
	Txs        *TxsCmd        `| @@` //nolint
	Scale      *ScaleCmd      `| @@` //nolint
	Help       *HelpCmd       `| @@` //nolint
	Exit       *ExitCmd       `| @@` //nolint
}

// SignedValue is a number with an optional leading minus, which the lexer
// splits off as its own token.
//
// noinspection GoStructTag
type SignedValue struct {
	Neg bool    `[ @"-" ]`      //nolint
	Val float64 `(@Int|@Float)` //nolint
}

func (v *SignedValue) Value() float64 {
	if v.Neg {
		return -v.Val
	}
	return v.Val
}

// noinspection GoStructTag
type SignalCmd struct {
	Cmd struct{}    `"signal"` //nolint
	X   SignedValue `@@`       //nolint
	Y   SignedValue `@@`       //nolint
}

// noinspection GoStructTag
type ThroughputCmd struct {
	Cmd      struct{}    `"throughput"`               //nolint
	X        SignedValue `@@`                         //nolint
	Y        SignedValue `@@`                         //nolint
	Standard string      `[ @("n"|"ac"|"ax"|"be") ]` //nolint
	Width    *int        `[ @Int ]`                   //nolint
}

// noinspection GoStructTag
type RangeCmd struct {
	Cmd    struct{}     `"range"` //nolint
	Tx     int          `@Int`    //nolint
	MinDbm *SignedValue `[ @@ ]`  //nolint
}

// noinspection GoStructTag
type WallsCmd struct {
	Cmd struct{} `"walls"` //nolint
}

// noinspection GoStructTag
type TxsCmd struct {
	Cmd struct{} `"txs"` //nolint
}

// noinspection GoStructTag
type ScaleCmd struct {
	Cmd struct{} `"scale"` //nolint
}

// noinspection GoStructTag
type HelpCmd struct {
	Cmd       struct{} `"help"`       //nolint
	HelpTopic string   `[ (@Ident) ]` //nolint
}

// noinspection GoStructTag
type ExitCmd struct {
	Cmd struct{} `"exit"` //nolint
}

var (
	commandParser = participle.MustBuild(&Command{})
)

func parseBytes(b []byte, cmd *Command) error {
	err := commandParser.ParseBytes(b, cmd)
	return err
}
