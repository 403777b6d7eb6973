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

// Kind is the tag of a Value's discriminated union.
type Kind uint8

const (
	Null Kind = iota
	False
	True
	Number
	String
	Array
	Object

	numKinds
)

var kindNames = [...]string{
	Null:   "null",
	False:  "false",
	True:   "true",
	Number: "number",
	String: "string",
	Array:  "array",
	Object: "object",
}

func (k Kind) String() string {
	if k >= numKinds {
		return "invalid"
	}
	return kindNames[k]
}

// Value is a tagged JSON tree node. The zero Value is Null, matching
// invariant 1: a freshly initialized Value carries no payload.
//
// Exactly one of the fields below is meaningful, selected by kind — this is
// the idiomatic Go replacement for the tagged union the grammar naturally
// suggests. Exhaustive
// switches in Release and the accessors are what keep "forget to free the
// new payload kind" from being possible the way it is in a hand-rolled
// union.
type Value struct {
	kind Kind

	num float64

	// str holds the string payload followed by one NUL byte at str[len(str)-1],
	// satisfying invariant 3 (safe as a C string when there is no interior
	// NUL). StringBytes/Str slice this down to the content.
	str []byte

	arr []Value
	obj []Member
}

// Type returns the Value's kind.
func (v *Value) Type() Kind {
	return v.kind
}

// Release walks the subtree bottom-up, dropping every owned payload, and
// resets v to Null. Calling Release on an already-Null Value is a no-op,
// which is what makes it idempotent (invariant 2, property P1): a second
// Release sees kind == Null, has no subtree to walk, and only clears
// fields that are already zero.
func (v *Value) Release() {
	switch v.kind {
	case Array:
		for i := range v.arr {
			v.arr[i].Release()
		}
	case Object:
		for i := range v.obj {
			v.obj[i].val.Release()
		}
	}
	v.kind = Null
	v.num = 0
	v.str = nil
	v.arr = nil
	v.obj = nil
}

// reset clears v to Null without walking a subtree it doesn't have yet —
// used by the parser before a composite routine starts filling v in, where
// v is already known Null (or was just released by the caller).
func (v *Value) reset() {
	v.kind = Null
	v.num = 0
	v.str = nil
	v.arr = nil
	v.obj = nil
}
