// SPDX-License-Identifier: Apache-2.0

package defs

import (
	"fmt"
	"regexp"
	"strings"
)

// assignmentRe matches the start of an OID value assignment up to the opening brace.
var assignmentRe = regexp.MustCompile(`\b([a-z][-_A-Za-z0-9]*)\s+OBJECT\s+IDENTIFIER\s*::=\s*\{`)

// ParseModule extracts the OBJECT IDENTIFIER value assignments from ASN.1 module text.
// Comments are removed first; all other module content (type assignments, imports and so
// on) is skipped.  The value of each Definition is the braced OID expression.
func ParseModule(src []byte) ([]Definition, error) {
	text := stripComments(string(src))

	var defs []Definition
	for _, m := range assignmentRe.FindAllStringSubmatchIndex(text, -1) {
		name := text[m[2]:m[3]]
		open := m[1] - 1
		line := 1 + strings.Count(text[:m[2]], "\n")

		end := strings.IndexByte(text[open:], '}')
		if end < 0 {
			return nil, fmt.Errorf("%w: %s at line %d", ErrUnterminatedAssignment, name, line)
		}

		defs = append(defs, Definition{
			Name:  name,
			Value: text[open : open+end+1],
			Line:  line,
		})
	}

	return defs, nil
}

// stripComments removes ASN.1 comments, which run from "--" to the next "--" or to the
// end of the line.  Line breaks are kept so that line numbers stay valid.
func stripComments(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		var b strings.Builder

		for {
			start := strings.Index(line, "--")
			if start < 0 {
				b.WriteString(line)
				break
			}
			b.WriteString(line[:start])

			rest := line[start+2:]
			end := strings.Index(rest, "--")
			if end < 0 {
				break
			}
			// keep the tokens either side of an inline comment apart
			b.WriteByte(' ')
			line = rest[end+2:]
		}

		lines[i] = b.String()
	}

	return strings.Join(lines, "\n")
}
