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

// defaultMaxDepth bounds array/object nesting so a hostile document can't
// blow the goroutine stack through unbounded recursion. The limit is a
// depth cap rather than converting the recursion into an explicit stack
// machine.
const defaultMaxDepth = 512

// parser is the parse context: the input cursor and the scratch stack,
// owned by a single call to Parse and never outliving it.
type parser struct {
	data     []byte // always NUL-terminated by Parse before use
	pos      int
	sc       *scratch
	depth    int
	maxDepth int
}

// byteAt returns the byte at pos, or the NUL sentinel if pos runs past the
// end of the (already NUL-terminated) input. The explicit bounds check
// covers lookahead windows — \uXXXX's four hex digits, a two-byte
// surrogate-pair lead-in — that can run past the single trailing NUL
// Parse appends when the document is truncated mid-token.
func (p *parser) byteAt(pos int) byte {
	if pos >= len(p.data) {
		return 0
	}
	return p.data[pos]
}

func (p *parser) cur() byte {
	return p.byteAt(p.pos)
}

// Parse converts text into a Value tree. text need not be NUL-terminated;
// Parse copies it into an internally NUL-terminated buffer so the scanner
// sees a NUL sentinel one byte past any prefix, as the source this package
// follows does. Reads still go through byteAt, which also returns NUL for
// lookahead beyond that sentinel. A NUL byte inside text is treated as the
// end of input.
//
// On success the returned Value owns its entire subtree and the caller is
// responsible for calling Release on it. On failure the returned Value is
// nil and the error is a *Error whose Code is one of the constants in
// errors.go.
func Parse(text []byte, opts ...ParserOption) (*Value, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	buf := make([]byte, len(text)+1)
	copy(buf, text)
	// buf[len(text)] is already the zero byte from make.

	p := &parser{
		data:     buf,
		sc:       newScratch(cfg.scratchCap),
		maxDepth: cfg.maxDepth,
	}

	var v Value
	p.skipWhitespace()
	if err := p.parseValue(&v); err != nil {
		v.Release()
		return nil, err
	}
	p.skipWhitespace()
	if p.cur() != 0 {
		v.Release()
		return nil, parseErr(RootNotSingular, p.pos)
	}

	if !p.sc.empty() {
		// A soft invariant: this indicates a bug in one of the composite
		// parsers, not a malformed document. Documents never reach here
		// with leftover scratch because every parseX either bulk-copies
		// and pops its own frame or rolls it back on error.
		panic("jsonval: scratch stack not empty after successful parse")
	}

	return &v, nil
}

// ParseString is a convenience wrapper around Parse for callers holding a
// Go string rather than a []byte.
func ParseString(text string, opts ...ParserOption) (*Value, error) {
	return Parse([]byte(text), opts...)
}

// parseValue dispatches on the first byte of the next token, mirroring
// lept_parse_value. Composite routines below call back into this for every
// element/member value.
func (p *parser) parseValue(dst *Value) *Error {
	switch p.cur() {
	case 0:
		return parseErr(ExpectValue, p.pos)
	case 'n':
		return p.parseLiteral(dst, "null", Null)
	case 't':
		return p.parseLiteral(dst, "true", True)
	case 'f':
		return p.parseLiteral(dst, "false", False)
	case '"':
		return p.parseString(dst)
	case '[':
		return p.parseArray(dst)
	case '{':
		return p.parseObject(dst)
	default:
		return p.parseNumber(dst)
	}
}
