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

package throughput

import (
	"math"

	. "github.com/xkid/WiFi-Sim/types"
)

// maxPhyRate holds the maximum PHY rate (Mbps) per standard and channel
// width, for two spatial streams. 802.11n caps at 40 MHz; wider entries
// repeat its ceiling so every (standard, width) key stays defined.
var maxPhyRate = map[WifiStandard]map[ChannelWidth]MbpsValue{
	Wifi4: {Width20: 144, Width40: 300, Width80: 300, Width160: 300},
	Wifi5: {Width20: 173, Width40: 400, Width80: 867, Width160: 1733},
	Wifi6: {Width20: 287, Width40: 574, Width80: 1201, Width160: 2402},
	Wifi7: {Width20: 344, Width40: 688, Width80: 1441, Width160: 2882},
}

// rssi efficiency bands: index i applies from rssiBandsDbm[i] upward
var (
	rssiBandsDbm = []DbValue{-45, -55, -65, -70, -75, -80}
	efficiencies = []float64{0.92, 0.80, 0.60, 0.40, 0.20, 0.10}
)

// MaxPhyRate returns the PHY ceiling for the given standard and width.
// Unknown combinations fall back to the lowest defined ceiling.
func MaxPhyRate(standard WifiStandard, width ChannelWidth) MbpsValue {
	if byWidth, ok := maxPhyRate[standard]; ok {
		if rate, ok := byWidth[width]; ok {
			return rate
		}
	}
	return maxPhyRate[Wifi4][Width20]
}

// Estimate maps a received signal level to an estimated usable data rate in
// Mbps, floored to whole Mbps. Below RssiNoLink (-90 dBm) there is no usable
// link and the estimate is 0.
func Estimate(rssiDbm DbValue, standard WifiStandard, width ChannelWidth) MbpsValue {
	if !(rssiDbm >= RssiNoLink) { // NaN lands here too
		return 0
	}
	eff := 0.0
	for i, band := range rssiBandsDbm {
		if rssiDbm >= band {
			eff = efficiencies[i]
			break
		}
	}
	return math.Floor(MaxPhyRate(standard, width) * eff)
}
