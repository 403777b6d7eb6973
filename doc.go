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

// Package jsonval implements a small, dependency-light JSON reader that
// turns a UTF-8 byte slice into a tree of tagged Values. The slice need not
// be NUL-terminated; a NUL byte inside it is treated as the end of input.
//
// Parse is the single entry point. It recognizes the RFC 8259 grammar with
// two deliberate restrictions: control characters inside strings and a
// leading '+' on numbers are rejected rather than tolerated. There is no
// streaming support — the whole document must be in memory before parsing
// starts — and there is no facility for turning a Value back into JSON
// text.
//
// A successfully parsed Value owns its entire subtree. Callers are expected
// to call Release on any Value they are done with, directly or indirectly
// (releasing a parent releases its children). Release is idempotent.
package jsonval
