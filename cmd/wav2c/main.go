// SPDX-License-Identifier: EPL-2.0

// Command wav2c converts an audio file into the C array declaration the
// firmware compiles in as its startup clip. Input may be WAV, MP3, Ogg
// Vorbis or AIFF; output is always 8-bit unsigned PCM, mono, at the
// requested rate.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ambio "github.com/daveio/ambio-systems"
	"github.com/daveio/ambio-systems/audio"
	"github.com/daveio/ambio-systems/carray"
)

var (
	inputPath  string
	outputPath string
	arrayName  string
	sampleRate int
)

func init() {
	flag.StringVar(&inputPath, "i", "", "Input audio file (required)")
	flag.StringVar(&outputPath, "o", "", "Output C source file (defaults to the input name with a .h extension)")
	flag.StringVar(&arrayName, "array", ambio.StartupArrayName, "Name of the emitted uint8_t array")
	flag.IntVar(&sampleRate, "rate", ambio.StartupSampleRate, "Target sample rate (Hz)")
}

func main() {
	flag.Parse()

	if inputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: input file is required (-i)")
		flag.Usage()
		os.Exit(1)
	}

	if outputPath == "" {
		ext := filepath.Ext(inputPath)
		outputPath = strings.TrimSuffix(inputPath, ext) + ".h"
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	registry := ambio.DefaultRegistry()

	ext := filepath.Ext(inputPath)
	dec, ok := registry.Lookup(ext)
	if !ok {
		return fmt.Errorf("%s: %w (supported: %s)",
			inputPath, audio.ErrUnknownFormat, strings.Join(registry.Extensions(), ", "))
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	src, err := dec.Decode(in)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}
	defer src.Close()

	fmt.Printf("Decoding %s: %d Hz, %d channel(s)\n", inputPath, src.SampleRate(), src.Channels())

	data, outRate, err := audio.CollectPCM8(src, sampleRate, 4096)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}

	if err := carray.Write(out, arrayName, data); err != nil {
		out.Close()
		return fmt.Errorf("%s: %w", outputPath, err)
	}

	if err := out.Close(); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", outputPath)
	fmt.Printf("  Array: %s[%d]\n", arrayName, len(data))
	fmt.Printf("  Format: 8-bit PCM, %.1fkHz, Mono\n", float64(outRate)/1000)
	fmt.Printf("  Duration: %.2f seconds\n", float64(len(data))/float64(outRate))

	return nil
}
