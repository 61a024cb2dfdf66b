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

package colormap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalBucketsMonotone(t *testing.T) {
	prev := SignalBucket(0)
	for dbm := 0.0; dbm >= -120; dbm -= 0.5 {
		b := SignalBucket(dbm)
		assert.GreaterOrEqual(t, b, prev, "at %v dBm", dbm)
		prev = b
	}
}

func TestSignalBucketBoundaries(t *testing.T) {
	assert.Equal(t, 0, SignalBucket(-50))
	assert.Equal(t, 1, SignalBucket(-50.001))
	assert.Equal(t, 1, SignalBucket(-60))
	assert.Equal(t, 2, SignalBucket(-67))
	assert.Equal(t, 3, SignalBucket(-75))
	assert.Equal(t, 4, SignalBucket(-85))
	assert.Equal(t, 5, SignalBucket(-85.001))
}

func TestSignalEncodingsNeverDiverge(t *testing.T) {
	// both encodings must flip buckets at exactly the same values
	for dbm := -30.0; dbm >= -110; dbm -= 0.25 {
		i := SignalBucket(dbm)
		assert.Equal(t, pick(signalBuckets, i).overlay, SignalOverlay(dbm), "at %v dBm", dbm)
		assert.Equal(t, pick(signalBuckets, i).vertex, SignalVertex(dbm), "at %v dBm", dbm)
	}
}

func TestSignalNoCoverageBucket(t *testing.T) {
	// dead zones are not painted in the overlay encoding
	assert.Equal(t, uint8(0), SignalOverlay(-100).A)
	// but the 3D mesh still gets a defined dark color
	v := SignalVertex(-100)
	for _, ch := range v {
		assert.True(t, ch > 0 && ch < 0.3)
	}
}

func TestSignalBucketTotal(t *testing.T) {
	assert.Equal(t, 0, SignalBucket(math.Inf(1)))
	assert.Equal(t, len(signalBuckets), SignalBucket(math.Inf(-1)))
	assert.Equal(t, len(signalBuckets), SignalBucket(math.NaN()))
}

func TestThroughputBuckets(t *testing.T) {
	assert.Equal(t, 0, ThroughputBucket(1200))
	assert.Equal(t, 0, ThroughputBucket(500))
	assert.Equal(t, 1, ThroughputBucket(499))
	assert.Equal(t, 4, ThroughputBucket(1))
	// 0 Mbps means no usable link: transparent overlay
	assert.Equal(t, len(throughputBuckets), ThroughputBucket(0))
	assert.Equal(t, uint8(0), ThroughputOverlay(0).A)
	assert.NotEqual(t, Vertex{}, ThroughputVertex(0))
}

func TestOverlayAlphaUniform(t *testing.T) {
	// every painted bucket composites with the same alpha
	for _, b := range signalBuckets {
		assert.Equal(t, uint8(overlayAlpha), b.overlay.A)
	}
	for _, b := range throughputBuckets {
		assert.Equal(t, uint8(overlayAlpha), b.overlay.A)
	}
}
