// Copyright 2025 go-highway Authors
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

// Package hostcpu reports which native 128-bit SIMD instruction set the host
// offers. Generated fixtures never depend on it; it is recorded in logs so a
// fixture run can be matched to the machine that later executes it.
package hostcpu

import (
	"os"
	"strconv"
)

// Level is the widest SIMD instruction set detected on the host.
type Level int

const (
	// LevelScalar indicates no usable SIMD instructions.
	LevelScalar Level = iota

	// LevelSSE41 indicates SSE4.1, the x86 baseline for full 128-bit
	// integer min/max and rounding average.
	LevelSSE41

	// LevelAVX2 indicates AVX2 (256-bit integer SIMD).
	LevelAVX2

	// LevelAVX512 indicates AVX-512F/BW.
	LevelAVX512

	// LevelNEON indicates ARM Advanced SIMD.
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE41:
		return "sse4.1"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// NoNativeEnv names the variable that forces LevelScalar.
const NoNativeEnv = "SIMD_NO_NATIVE"

// Info describes the host.
type Info struct {
	Level    Level
	Features []string // detected feature names, in detection order
}

// Detect inspects the running CPU.
func Detect() Info {
	if noNative() {
		return Info{Level: LevelScalar}
	}
	return detect()
}

func noNative() bool {
	val := os.Getenv(NoNativeEnv)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
