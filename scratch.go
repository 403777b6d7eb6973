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

// defaultScratchCap is the initial capacity of the byte scratch buffer,
// matching LEPT_PARSE_STACK_INIT_SIZE in the source this package is modeled
// on.
const defaultScratchCap = 256

// scratch is the parser's transient workspace. Where the C original bump-
// allocates untyped bytes for everything — string content, and Value/Member
// slots punned through the same buffer — this version keeps three typed
// stacks instead: one
// []byte stack for string bytes being decoded, and two growable slices used
// as frame-scoped stacks for array elements and object members under
// construction. All three still follow the same push-during-parse,
// bulk-move-at-close discipline, and all three must be empty when the
// top-level parse returns (property P4).
type scratch struct {
	bytes []byte
	vals  []Value
	mems  []Member
}

func newScratch(initCap int) *scratch {
	if initCap <= 0 {
		initCap = defaultScratchCap
	}
	return &scratch{bytes: make([]byte, 0, initCap)}
}

// empty reports whether every stack has been fully popped, the invariant a
// successful top-level parse must leave true.
func (s *scratch) empty() bool {
	return len(s.bytes) == 0 && len(s.vals) == 0 && len(s.mems) == 0
}

// --- byte stack: used while decoding a string literal ---

// pushByte appends one decoded byte to the in-progress string. The caller
// takes its mark from markBytes before the first push and passes it to
// popBytes (or discardBytes) on completion.
func (s *scratch) pushByte(b byte) {
	s.bytes = append(s.bytes, b)
}

// markBytes returns the current top of the byte stack, to be used as the
// start of a string literal being decoded.
func (s *scratch) markBytes() int {
	return len(s.bytes)
}

// popBytes pops everything pushed since mark and returns a private copy —
// private because the underlying array is about to be reused for the next
// sibling string, so nothing may keep a view into s.bytes past this call.
func (s *scratch) popBytes(mark int) []byte {
	view := s.bytes[mark:]
	out := make([]byte, len(view))
	copy(out, view)
	s.bytes = s.bytes[:mark]
	return out
}

// discardBytes rolls the byte stack back to mark without copying, used on
// the error path of string parsing.
func (s *scratch) discardBytes(mark int) {
	s.bytes = s.bytes[:mark]
}

// --- value stack: used while collecting array elements ---

func (s *scratch) markVals() int {
	return len(s.vals)
}

func (s *scratch) pushVal(v Value) {
	s.vals = append(s.vals, v)
}

// popVals pops everything pushed since mark into a freshly allocated owned
// slice, matching the "bulk copy to owned array" step of the array parser.
// Returns nil for an empty range, satisfying invariant 4 (zero-count Array
// payload is nil).
func (s *scratch) popVals(mark int) []Value {
	n := len(s.vals) - mark
	var out []Value
	if n > 0 {
		out = make([]Value, n)
		copy(out, s.vals[mark:])
	}
	s.vals = s.vals[:mark]
	return out
}

// discardVals releases and pops every Value pushed since mark, used when an
// array parse fails partway through.
func (s *scratch) discardVals(mark int) {
	for i := len(s.vals) - 1; i >= mark; i-- {
		s.vals[i].Release()
	}
	s.vals = s.vals[:mark]
}

// --- member stack: used while collecting object members ---

func (s *scratch) markMems() int {
	return len(s.mems)
}

func (s *scratch) pushMem(m Member) {
	s.mems = append(s.mems, m)
}

func (s *scratch) popMems(mark int) []Member {
	n := len(s.mems) - mark
	var out []Member
	if n > 0 {
		out = make([]Member, n)
		copy(out, s.mems[mark:])
	}
	s.mems = s.mems[:mark]
	return out
}

// discardMems releases the key and value of every Member pushed since mark.
// This is the fix for the §9 Open Question: the original source pops
// sizeof(lept_value)-sized slots here when it pushed sizeof(lept_member)
// slots, silently under-popping and leaking the rest of the member on the
// error path. This version pops by Member, not by Value.
func (s *scratch) discardMems(mark int) {
	for i := len(s.mems) - 1; i >= mark; i-- {
		s.mems[i].val.Release()
		s.mems[i].key = nil
	}
	s.mems = s.mems[:mark]
}
