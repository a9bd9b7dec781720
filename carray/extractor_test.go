// SPDX-License-Identifier: EPL-2.0

package carray

import (
	"bytes"
	"errors"
	"testing"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []byte
	}{
		{
			name: "single line",
			src:  `const uint8_t wav_8bit_44100[4] = {0x00, 0x7F, 0xFF, 0x80};`,
			want: []byte{0x00, 0x7F, 0xFF, 0x80},
		},
		{
			name: "multi line",
			src: `#include <Arduino.h>

const uint8_t wav_8bit_44100[6] = {
    0x52, 0x49, 0x46,
    0x46, 0x80, 0x80,
};

void setup() {}
`,
			want: []byte{0x52, 0x49, 0x46, 0x46, 0x80, 0x80},
		},
		{
			name: "lowercase hex",
			src:  `const uint8_t wav_8bit_44100[2] = {0xab, 0xcd};`,
			want: []byte{0xAB, 0xCD},
		},
		{
			name: "mixed case hex",
			src:  `const uint8_t wav_8bit_44100[2] = {0xAb, 0xcF};`,
			want: []byte{0xAB, 0xCF},
		},
		{
			name: "irregular whitespace in declaration",
			src:  "const  uint8_t\twav_8bit_44100 [ 3 ]  =  { 0x01,0x02 ,  0x03 };",
			want: []byte{0x01, 0x02, 0x03},
		},
		{
			name: "single digit literal skipped",
			src:  `const uint8_t wav_8bit_44100[3] = {0x00, 0x1, 0x02};`,
			want: []byte{0x00, 0x02},
		},
		{
			name: "three digit literal skipped",
			src:  `const uint8_t wav_8bit_44100[3] = {0x00, 0x123, 0x02};`,
			want: []byte{0x00, 0x02},
		},
		{
			name: "decimal literal skipped",
			src:  `const uint8_t wav_8bit_44100[3] = {0x00, 128, 0x02};`,
			want: []byte{0x00, 0x02},
		},
		{
			name: "empty initializer",
			src:  `const uint8_t wav_8bit_44100[0] = {};`,
			want: []byte{},
		},
		{
			name: "first declaration wins",
			src: `const uint8_t wav_8bit_44100[1] = {0x11};
const uint8_t wav_8bit_44100[1] = {0x22};`,
			want: []byte{0x11},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Extract([]byte(tt.src), "wav_8bit_44100")
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}

			if !bytes.Equal(got, tt.want) {
				t.Errorf("Extract() = % x, want % x", got, tt.want)
			}
		})
	}
}

func TestExtract_NotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"empty source", ""},
		{"no declaration", "void setup() {}\nvoid loop() {}\n"},
		{"wrong array name", `const uint8_t other_array[1] = {0x00};`},
		{"wrong element type", `const uint16_t wav_8bit_44100[1] = {0x00};`},
		{"missing size", `const uint8_t wav_8bit_44100[] = {0x00};`},
		{"name is a prefix of a longer one", `const uint8_t wav_8bit_44100_v2[1] = {0x00};`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Extract([]byte(tt.src), "wav_8bit_44100")
			if !errors.Is(err, ErrArrayNotFound) {
				t.Errorf("Extract() error = %v, want ErrArrayNotFound", err)
			}
		})
	}
}

func TestExtract_SourceUnmodified(t *testing.T) {
	t.Parallel()

	src := []byte(`const uint8_t tone[2] = {0x10, 0x20};`)
	orig := bytes.Clone(src)

	if _, err := Extract(src, "tone"); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if !bytes.Equal(src, orig) {
		t.Error("Extract() modified its input")
	}
}

func TestExtract_MetacharacterName(t *testing.T) {
	t.Parallel()

	// A name with regexp metacharacters must be treated literally.
	_, err := Extract([]byte(`const uint8_t wav[1] = {0x00};`), "w.v")
	if !errors.Is(err, ErrArrayNotFound) {
		t.Errorf("Extract() error = %v, want ErrArrayNotFound", err)
	}
}

func BenchmarkExtract(b *testing.B) {
	var buf bytes.Buffer

	buf.WriteString("const uint8_t tone[46000] = {")
	for i := 0; i < 46000; i++ {
		buf.WriteString("0x80, ")
	}
	buf.WriteString("};")

	src := buf.Bytes()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Extract(src, "tone"); err != nil {
			b.Fatal(err)
		}
	}
}
