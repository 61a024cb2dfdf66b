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

// WifiStandard identifies the 802.11 generation used for throughput
// estimation.
type WifiStandard int

const (
	Wifi4 WifiStandard = iota // 802.11n
	Wifi5                     // 802.11ac
	Wifi6                     // 802.11ax
	Wifi7                     // 802.11be

	WifiUnknown WifiStandard = -1

	DefaultWifiStandard = Wifi6
)

// ChannelWidth is the channel bandwidth in MHz.
type ChannelWidth int

const (
	Width20  ChannelWidth = 20
	Width40  ChannelWidth = 40
	Width80  ChannelWidth = 80
	Width160 ChannelWidth = 160

	DefaultChannelWidth = Width80
)

var WifiStandardsList = []WifiStandard{Wifi4, Wifi5, Wifi6, Wifi7}
var WifiStandardNamesList = []string{"80211n", "80211ac", "80211ax", "80211be"}
var ChannelWidthsList = []ChannelWidth{Width20, Width40, Width80, Width160}

func (s WifiStandard) String() string {
	if s < Wifi4 || int(s) >= len(WifiStandardNamesList) {
		return "unknown"
	}
	return WifiStandardNamesList[s]
}

// ParseWifiStandard parses a standard name like "80211ax"; the "802.11ax"
// spelling used in older documents is accepted too.
func ParseWifiStandard(name string) WifiStandard {
	for i := 0; i < len(WifiStandardNamesList); i++ {
		if name == WifiStandardNamesList[i] || name == "802.11"+WifiStandardNamesList[i][5:] {
			return WifiStandardsList[i]
		}
	}
	return WifiUnknown
}

// ParseChannelWidth parses a width in MHz; anything other than the four
// defined widths returns 0.
func ParseChannelWidth(mhz int) ChannelWidth {
	for _, w := range ChannelWidthsList {
		if int(w) == mhz {
			return w
		}
	}
	return 0
}

// IsValid reports whether w is one of the defined channel widths.
func (w ChannelWidth) IsValid() bool {
	return ParseChannelWidth(int(w)) == w && w != 0
}
