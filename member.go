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

// Member is one key/value pair inside an Object, stored in insertion order.
// Duplicate keys are neither rejected nor merged — a caller indexing by
// position sees every member that was written, in the order it appeared.
type Member struct {
	key []byte // same NUL-terminated-content convention as Value.str
	val Value
}

// Key returns the member's key bytes, not including the trailing NUL.
func (m *Member) Key() []byte {
	return m.key[:len(m.key)-1]
}

// Value returns a pointer to the member's value.
func (m *Member) Value() *Value {
	return &m.val
}
