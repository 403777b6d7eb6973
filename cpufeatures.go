/*
 * Copyright 2026 The jsonval Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package jsonval

import "github.com/klauspost/cpuid/v2"

// swarWhitespace reports whether the host CPU is a good candidate for the
// 8-bytes-at-a-time whitespace scan in scanner.go. The teacher
// (simdjson_amd64.go) gates its AVX2/CLMUL tape-building stage on
// cpuid.CPU.Supports(...); jsonval has no SIMD stage, but keeps the same
// idea at a much smaller scale: basic SSE2 availability is a reasonable
// proxy for "this core does unaligned 64-bit loads cheaply," which is all
// the SWAR skip needs. Hosts that don't report it fall back to the plain
// byte loop, which is always correct.
var swarWhitespace = cpuid.CPU.Supports(cpuid.SSE2)
