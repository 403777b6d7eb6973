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

// parseObject parses '{' ws (member (ws ',' ws member)*)? ws '}', where
// member = string ws ':' ws value. Duplicate keys are
// neither rejected nor merged — members are kept in insertion order and
// exposed positionally.
func (p *parser) parseObject(dst *Value) *Error {
	if p.maxDepth > 0 && p.depth >= p.maxDepth {
		return parseErr(InvalidValue, p.pos)
	}

	p.pos++ // consume '{'
	p.skipWhitespace()

	mark := p.sc.markMems()

	if p.cur() == '}' {
		p.pos++
		dst.reset()
		dst.kind = Object
		return nil
	}

	p.depth++
	for {
		if p.cur() != '"' {
			p.sc.discardMems(mark)
			p.depth--
			return parseErr(MissKey, p.pos)
		}

		keyBytes, err := p.parseStringRaw()
		if err != nil {
			p.sc.discardMems(mark)
			p.depth--
			return err
		}
		key := ownedNulTerminated(keyBytes)

		p.skipWhitespace()
		if p.cur() != ':' {
			p.depth--
			p.sc.discardMems(mark)
			return parseErr(MissColon, p.pos)
		}
		p.pos++
		p.skipWhitespace()

		var val Value
		if err := p.parseValue(&val); err != nil {
			p.depth--
			p.sc.discardMems(mark)
			return err
		}
		p.sc.pushMem(Member{key: key, val: val})

		p.skipWhitespace()
		switch p.cur() {
		case ',':
			p.pos++
			p.skipWhitespace()
		case '}':
			p.pos++
			p.depth--
			dst.reset()
			dst.kind = Object
			dst.obj = p.sc.popMems(mark)
			return nil
		default:
			p.depth--
			p.sc.discardMems(mark)
			return parseErr(MissCommaOrCurlyBracket, p.pos)
		}
	}
}
