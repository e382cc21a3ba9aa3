// Copyright 2025 openvec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lanes

import (
	"os"
	"runtime"
	"strings"
	"unsafe"
)

// Target identifies the vector capability backing this process.
type Target uint8

const (
	// TargetScalar is the pure per-lane fallback with no vector hardware.
	TargetScalar Target = iota

	// TargetSSE2 is the x86-64 baseline (128-bit registers).
	TargetSSE2

	// TargetNEON is ARM64 Advanced SIMD (128-bit registers).
	TargetNEON

	// TargetAVX2 is x86-64 AVX2 with FMA (256-bit registers).
	TargetAVX2

	// TargetAVX512 is x86-64 AVX-512 F+BW (512-bit registers).
	TargetAVX512
)

// String returns the canonical lowercase target name.
func (t Target) String() string {
	switch t {
	case TargetScalar:
		return "scalar"
	case TargetSSE2:
		return "sse2"
	case TargetNEON:
		return "neon"
	case TargetAVX2:
		return "avx2"
	case TargetAVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// RegisterBytes returns the native register width in bytes for the target.
// The scalar target reports 16 so lane counts stay useful for loop shaping
// even without vector hardware.
func (t Target) RegisterBytes() int {
	switch t {
	case TargetAVX2:
		return 32
	case TargetAVX512:
		return 64
	default:
		return 16
	}
}

// ParseTarget parses a target name. The boolean reports whether the name
// was recognized.
func ParseTarget(s string) (Target, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar":
		return TargetScalar, true
	case "sse2":
		return TargetSSE2, true
	case "neon":
		return TargetNEON, true
	case "avx2":
		return TargetAVX2, true
	case "avx512":
		return TargetAVX512, true
	default:
		return TargetScalar, false
	}
}

// Package-level capability state. Written exactly once, by the per-GOARCH
// init chain, before any other package code can run.
var (
	currentTarget Target
	currentWidth  int // native register width in bytes
	hasOverride   bool

	// CPU feature flags set by capability_*.go before initCapabilities.
	hasSSE2   bool
	hasNEON   bool
	hasAVX2   bool
	hasAVX512 bool
)

// initCapabilities selects the target after the per-GOARCH feature flags
// have been populated. The LANES_TARGET environment variable forces a
// specific target if that target is actually available; "scalar" always is.
func initCapabilities() {
	if override := os.Getenv("LANES_TARGET"); override != "" {
		if t, ok := ParseTarget(override); ok && targetAvailable(t) {
			hasOverride = true
			setTarget(t)
			return
		}
	}
	setTarget(bestTarget())
}

func setTarget(t Target) {
	currentTarget = t
	currentWidth = t.RegisterBytes()
	bindKernels()
}

func targetAvailable(t Target) bool {
	switch t {
	case TargetScalar:
		return true
	case TargetSSE2:
		return hasSSE2
	case TargetNEON:
		return hasNEON
	case TargetAVX2:
		return hasAVX2
	case TargetAVX512:
		return hasAVX512
	default:
		return false
	}
}

func bestTarget() Target {
	switch runtime.GOARCH {
	case "amd64":
		if hasAVX512 {
			return TargetAVX512
		}
		if hasAVX2 {
			return TargetAVX2
		}
		if hasSSE2 {
			return TargetSSE2
		}
	case "arm64":
		if hasNEON {
			return TargetNEON
		}
	}
	return TargetScalar
}

// CurrentTarget returns the vector capability selected at init.
func CurrentTarget() Target {
	return currentTarget
}

// CurrentName returns the canonical name of the selected target.
func CurrentName() string {
	return currentTarget.String()
}

// CurrentWidth returns the native register width in bytes:
// 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// IsOverridden reports whether LANES_TARGET forced the target selection.
func IsOverridden() bool {
	return hasOverride
}

// MaxLanes returns the number of lanes of element type T that fit in one
// native register of the current target.
//
// For example, with AVX2 (32 bytes): float32 has 8 lanes, float64 has 4.
func MaxLanes[T Element]() int {
	var zero T
	return currentWidth / int(unsafe.Sizeof(zero))
}
