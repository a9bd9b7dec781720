// SPDX-License-Identifier: EPL-2.0

package carray

import (
	"fmt"
	"regexp"
	"strconv"
)

// hexByte matches exactly two hex digits behind an 0x prefix. The trailing
// \b rejects longer literals like 0x123 instead of taking their prefix.
var hexByte = regexp.MustCompile(`\b0x[0-9a-fA-F]{2}\b`)

// declRegexp builds the matcher for a fixed-size uint8_t array declaration:
// `const uint8_t <name>[<digits>] = { ... }`, whitespace tolerant.
func declRegexp(name string) *regexp.Regexp {
	return regexp.MustCompile(
		`const\s+uint8_t\s+` + regexp.QuoteMeta(name) + `\s*\[\s*\d+\s*\]\s*=\s*\{([^}]*)\}`)
}

// Extract locates the first declaration of a fixed-size uint8_t array
// called name in src and decodes its initializer list into bytes, in source
// order. Initializer tokens that are not exactly two hex digits wide are
// skipped silently; whitespace and commas between tokens are ignored.
// Returns ErrArrayNotFound when no declaration matches.
//
// Extract is pure over src: it performs no I/O and never modifies its input.
func Extract(src []byte, name string) ([]byte, error) {
	m := declRegexp(name).FindSubmatch(src)
	if m == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrArrayNotFound)
	}

	tokens := hexByte.FindAll(m[1], -1)
	data := make([]byte, 0, len(tokens))

	for _, tok := range tokens {
		// The token shape guarantees a two-digit hex literal in [0, 255]
		v, _ := strconv.ParseUint(string(tok[2:]), 16, 8)
		data = append(data, byte(v))
	}

	return data, nil
}
