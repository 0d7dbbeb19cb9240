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

//go:build amd64

package hostcpu

import "golang.org/x/sys/cpu"

func detect() Info {
	var info Info
	add := func(ok bool, name string) {
		if ok {
			info.Features = append(info.Features, name)
		}
	}
	add(cpu.X86.HasSSE2, "sse2")
	add(cpu.X86.HasSSSE3, "ssse3")
	add(cpu.X86.HasSSE41, "sse4.1")
	add(cpu.X86.HasSSE42, "sse4.2")
	add(cpu.X86.HasAVX, "avx")
	add(cpu.X86.HasAVX2, "avx2")
	add(cpu.X86.HasAVX512F, "avx512f")
	add(cpu.X86.HasAVX512BW, "avx512bw")

	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
		info.Level = LevelAVX512
	case cpu.X86.HasAVX2:
		info.Level = LevelAVX2
	case cpu.X86.HasSSE41:
		info.Level = LevelSSE41
	default:
		info.Level = LevelScalar
	}
	return info
}
