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

// config holds the parser settings a ParserOption mutates. It is unexported
// because, like the teacher's internalParsedJson, the knobs are reached
// only through the With* constructors below.
type config struct {
	maxDepth   int
	scratchCap int
}

func defaultConfig() config {
	return config{
		maxDepth:   defaultMaxDepth,
		scratchCap: defaultScratchCap,
	}
}

// ParserOption configures a call to Parse, following the same functional-
// options shape as the teacher's options.go (WithCopyStrings etc.).
type ParserOption func(*config)

// WithMaxDepth overrides the nesting depth limit applied to arrays and
// objects. A value <= 0 disables the limit entirely, trading recursion
// hardening for unbounded input.
func WithMaxDepth(n int) ParserOption {
	return func(c *config) {
		c.maxDepth = n
	}
}

// WithScratchCapacity sets the initial capacity of the byte scratch buffer
// used while decoding strings. Default: 256 bytes, matching the initial
// stack size the source this package follows uses.
func WithScratchCapacity(n int) ParserOption {
	return func(c *config) {
		if n > 0 {
			c.scratchCap = n
		}
	}
}
