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

// Package colormap maps signal and throughput estimates to the discrete
// visual buckets shared by every renderer. Each metric has a single bucket
// table producing both encodings: an alpha-blended overlay color for the 2D
// heatmap, and an opaque normalized RGB triple for 3D vertex coloring.
// Because both encodings derive from the same bucket lookup, a value can
// never land in different buckets for different renderers.
package colormap

import (
	"image/color"

	. "github.com/xkid/WiFi-Sim/types"
)

// overlayAlpha is the alpha used when compositing coverage over the plan.
const overlayAlpha = 110

// Vertex is a normalized RGB triple, each channel in [0, 1].
type Vertex = [3]float64

type bucket struct {
	min     float64 // inclusive lower bound of the bucket
	overlay color.NRGBA
	vertex  Vertex
}

// signalBuckets partitions the dBm axis; first match from the top wins.
// The trailing bucket is "no usable coverage": fully transparent in the
// overlay so dead zones aren't painted, but still a defined dark vertex
// color for the 3D mesh.
var signalBuckets = []bucket{
	{-50, color.NRGBA{0, 170, 0, overlayAlpha}, Vertex{0.0, 0.667, 0.0}},
	{-60, color.NRGBA{110, 205, 0, overlayAlpha}, Vertex{0.431, 0.804, 0.0}},
	{-67, color.NRGBA{230, 220, 0, overlayAlpha}, Vertex{0.902, 0.863, 0.0}},
	{-75, color.NRGBA{240, 140, 0, overlayAlpha}, Vertex{0.941, 0.549, 0.0}},
	{-85, color.NRGBA{220, 40, 40, overlayAlpha}, Vertex{0.863, 0.157, 0.157}},
}

var throughputBuckets = []bucket{
	{500, color.NRGBA{0, 170, 0, overlayAlpha}, Vertex{0.0, 0.667, 0.0}},
	{200, color.NRGBA{110, 205, 0, overlayAlpha}, Vertex{0.431, 0.804, 0.0}},
	{100, color.NRGBA{230, 220, 0, overlayAlpha}, Vertex{0.902, 0.863, 0.0}},
	{30, color.NRGBA{240, 140, 0, overlayAlpha}, Vertex{0.941, 0.549, 0.0}},
	{1, color.NRGBA{220, 40, 40, overlayAlpha}, Vertex{0.863, 0.157, 0.157}},
}

// noCoverage closes both tables at the bottom of the real line.
var noCoverage = bucket{
	overlay: color.NRGBA{0, 0, 0, 0},
	vertex:  Vertex{0.157, 0.157, 0.196},
}

func lookup(buckets []bucket, v float64) int {
	for i := range buckets {
		if v >= buckets[i].min {
			return i
		}
	}
	return len(buckets) // no-coverage bucket; NaN ends up here as well
}

func pick(buckets []bucket, i int) *bucket {
	if i >= len(buckets) {
		return &noCoverage
	}
	return &buckets[i]
}

// SignalBucket returns the bucket index for a signal level; 0 is the
// strongest bucket, len(table) the no-coverage bucket.
func SignalBucket(rssiDbm DbValue) int {
	return lookup(signalBuckets, rssiDbm)
}

// SignalOverlay returns the alpha-blended overlay color for a signal level.
func SignalOverlay(rssiDbm DbValue) color.NRGBA {
	return pick(signalBuckets, SignalBucket(rssiDbm)).overlay
}

// SignalVertex returns the opaque normalized vertex color for a signal level.
func SignalVertex(rssiDbm DbValue) Vertex {
	return pick(signalBuckets, SignalBucket(rssiDbm)).vertex
}

// ThroughputBucket returns the bucket index for a throughput estimate.
func ThroughputBucket(mbps MbpsValue) int {
	return lookup(throughputBuckets, mbps)
}

// ThroughputOverlay returns the overlay color for a throughput estimate.
func ThroughputOverlay(mbps MbpsValue) color.NRGBA {
	return pick(throughputBuckets, ThroughputBucket(mbps)).overlay
}

// ThroughputVertex returns the vertex color for a throughput estimate.
func ThroughputVertex(mbps MbpsValue) Vertex {
	return pick(throughputBuckets, ThroughputBucket(mbps)).vertex
}
