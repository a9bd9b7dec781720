// SPDX-License-Identifier: EPL-2.0

package carray

import (
	"bytes"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	if err := Write(&buf, "tone", []byte{0x00, 0x7F, 0xFF}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	out := buf.String()

	if !strings.HasPrefix(out, "const uint8_t tone[3] = {") {
		t.Errorf("Write() output starts with %q", out[:min(len(out), 40)])
	}

	for _, tok := range []string{"0x00, ", "0x7f, ", "0xff, "} {
		if !strings.Contains(out, tok) {
			t.Errorf("Write() output missing %q", tok)
		}
	}

	if !strings.HasSuffix(out, "};\n") {
		t.Errorf("Write() output ends with %q", out[max(0, len(out)-10):])
	}
}

func TestWrite_LineWrapping(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	data := make([]byte, 30)
	if err := Write(&buf, "tone", data); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var full int

	for _, line := range strings.Split(buf.String(), "\n") {
		n := strings.Count(line, "0x")
		if n == bytesPerLine {
			full++
		} else if n != 0 && n != 30%bytesPerLine {
			t.Errorf("line %q holds %d bytes", line, n)
		}
	}

	if want := 30 / bytesPerLine; full != want {
		t.Errorf("Write() emitted %d full lines, want %d", full, want)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()

	data := make([]byte, 300)
	for i := range data {
		data[i] = byte(i * 7)
	}

	var buf bytes.Buffer
	if err := Write(&buf, "startup_audio", data); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := Extract(buf.Bytes(), "startup_audio")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if !bytes.Equal(got, data) {
		t.Error("Extract(Write(data)) != data")
	}
}

func TestWrite_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, "tone", nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := Extract(buf.Bytes(), "tone")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(got) != 0 {
		t.Errorf("Extract() = % x, want empty", got)
	}
}
