// SPDX-License-Identifier: EPL-2.0

package carray

import (
	"bufio"
	"fmt"
	"io"
)

// bytesPerLine keeps emitted declarations diffable in firmware sources.
const bytesPerLine = 12

// Write emits data as a C uint8_t array declaration that Extract reads back
// byte-for-byte.
func Write(w io.Writer, name string, data []byte) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "const uint8_t %s[%d] = {", name, len(data))

	for i, b := range data {
		if i%bytesPerLine == 0 {
			fmt.Fprintf(bw, "\n    ")
		}
		fmt.Fprintf(bw, "0x%02x, ", b)
	}

	fmt.Fprintf(bw, "\n};\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
