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

// This file is the accessor/mutator surface. Every precondition here is a
// programming error, not an input error: callers that violate one get a
// panic, the same contract the source this package follows enforces with
// assert().

// Number returns the numeric payload. v must have Type() == Number.
func (v *Value) Number() float64 {
	if v.kind != Number {
		panic("jsonval: Number called on non-number Value")
	}
	return v.num
}

// SetNumber releases v's current payload and sets it to a Number.
func (v *Value) SetNumber(n float64) {
	v.Release()
	v.kind = Number
	v.num = n
}

// Bool returns the boolean payload. v must have Type() == True or False.
func (v *Value) Bool() bool {
	if v.kind != True && v.kind != False {
		panic("jsonval: Bool called on non-boolean Value")
	}
	return v.kind == True
}

// SetBool releases v's current payload and sets it to True or False.
func (v *Value) SetBool(b bool) {
	v.Release()
	if b {
		v.kind = True
	} else {
		v.kind = False
	}
}

// StringBytes returns the string payload's content, not including the
// trailing NUL invariant 3 requires internally. v must have Type() ==
// String. The returned slice aliases v's storage and must not be mutated.
func (v *Value) StringBytes() []byte {
	if v.kind != String {
		panic("jsonval: StringBytes called on non-string Value")
	}
	return v.str[:len(v.str)-1]
}

// Str returns a copy of the string payload as a Go string. Named Str
// rather than String to avoid accidentally satisfying fmt.Stringer: unlike
// a debug-printing Stringer, this panics on a non-string Value, which is
// not a contract fmt.Printf callers expect.
func (v *Value) Str() string {
	return string(v.StringBytes())
}

// StringLength returns the length of the string payload in bytes.
func (v *Value) StringLength() int {
	if v.kind != String {
		panic("jsonval: StringLength called on non-string Value")
	}
	return len(v.str) - 1
}

// SetString releases v's current payload and sets it to a copy of s,
// NUL-terminating the stored buffer per invariant 3.
func (v *Value) SetString(s []byte) {
	v.Release()
	v.kind = String
	v.str = ownedNulTerminated(s)
}

// ArrayLen returns the number of elements in an Array Value.
func (v *Value) ArrayLen() int {
	if v.kind != Array {
		panic("jsonval: ArrayLen called on non-array Value")
	}
	return len(v.arr)
}

// ArrayElement returns a pointer to the i-th element of an Array Value.
// Precondition: i < v.ArrayLen().
func (v *Value) ArrayElement(i int) *Value {
	if v.kind != Array {
		panic("jsonval: ArrayElement called on non-array Value")
	}
	if i < 0 || i >= len(v.arr) {
		panic("jsonval: array index out of range")
	}
	return &v.arr[i]
}

// ObjectLen returns the number of members in an Object Value. This reads
// the object's own member count, unlike the source this package follows,
// where lept_get_object_size mistakenly reads the array-size field of the
// same union — there is no such union here for that bug to reproduce in,
// since arrays and objects keep separate fields.
func (v *Value) ObjectLen() int {
	if v.kind != Object {
		panic("jsonval: ObjectLen called on non-object Value")
	}
	return len(v.obj)
}

// ObjectKey returns the key bytes of the i-th member of an Object Value.
// Precondition: i < v.ObjectLen().
func (v *Value) ObjectKey(i int) []byte {
	m := v.objectMember(i)
	return m.Key()
}

// ObjectKeyLength returns the key length of the i-th member.
func (v *Value) ObjectKeyLength(i int) int {
	m := v.objectMember(i)
	return len(m.key) - 1
}

// ObjectValue returns a pointer to the value of the i-th member.
func (v *Value) ObjectValue(i int) *Value {
	return &v.objectMember(i).val
}

func (v *Value) objectMember(i int) *Member {
	if v.kind != Object {
		panic("jsonval: object accessor called on non-object Value")
	}
	if i < 0 || i >= len(v.obj) {
		panic("jsonval: object index out of range")
	}
	return &v.obj[i]
}

// SetNull releases v's current payload and resets it to Null. This is the
// release operation, exposed under the name the accessor surface gives it.
func (v *Value) SetNull() {
	v.Release()
}
