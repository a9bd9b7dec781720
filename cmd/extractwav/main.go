// SPDX-License-Identifier: EPL-2.0

// Command extractwav recovers the firmware's embedded startup clip as a
// playable WAV file.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	ambio "github.com/daveio/ambio-systems"
	"github.com/daveio/ambio-systems/carray"
	"github.com/daveio/ambio-systems/formats/wav"
)

var (
	inputPath  string
	outputPath string
	arrayName  string
	sampleRate int
	verify     bool
)

func init() {
	flag.StringVar(&inputPath, "i", "src/main.cpp", "C++ source file holding the embedded audio array")
	flag.StringVar(&outputPath, "o", "data/audio/startup.wav", "Output WAV file")
	flag.StringVar(&arrayName, "array", ambio.StartupArrayName, "Name of the uint8_t array to extract")
	flag.IntVar(&sampleRate, "rate", ambio.StartupSampleRate, "Sample rate declared in the WAV header (Hz)")
	flag.BoolVar(&verify, "verify", false, "Re-read the written file and check its header")
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	src, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	data, err := carray.Extract(src, arrayName)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	fmt.Printf("Extracted %d bytes from C++ array\n", len(data))

	// Extraction happens before the output file is touched, so a missing
	// array never leaves a truncated file behind.
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}

	if err := wav.WriteWAV8(f, sampleRate, data); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", outputPath, err)
	}

	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("Created %s (%d bytes total)\n", outputPath, wav.HeaderSize+len(data))
	fmt.Printf("  Header: %d bytes\n", wav.HeaderSize)
	fmt.Printf("  Data: %d bytes\n", len(data))
	fmt.Printf("  Format: 8-bit PCM, %.1fkHz, Mono\n", float64(sampleRate)/1000)
	fmt.Printf("  Duration: %.2f seconds\n", float64(len(data))/float64(sampleRate))

	if verify {
		return verifyFile(outputPath, uint32(len(data)))
	}

	return nil
}

// verifyFile re-reads the written WAV through an independent header parser
// and checks that the declared format survived the trip.
func verifyFile(path string, wantData uint32) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	format, dataSize, err := wav.Probe(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("verify %s: %w", path, err)
	}

	if format.SampleRate != sampleRate || format.BitsPerSample != 8 || format.Channels != 1 {
		return fmt.Errorf("verify %s: unexpected format %d Hz / %d-bit / %d ch",
			path, format.SampleRate, format.BitsPerSample, format.Channels)
	}

	if dataSize != wantData {
		return fmt.Errorf("verify %s: data chunk holds %d bytes, want %d", path, dataSize, wantData)
	}

	fmt.Println("Verified: header parses back with the declared format")

	return nil
}
