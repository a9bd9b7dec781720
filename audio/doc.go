// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level processing primitives behind the
// ambio asset tooling.
//
// The building blocks:
//   - Source interface for decoded audio input
//   - Registry for mapping file extensions to decoders
//   - Resampler for sample rate conversion
//   - MonoMixer for channel downmixing
//   - CollectPCM8 for rendering a pipeline to firmware-ready bytes
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders implement this interface, allowing them to be chained
// into processing pipelines regardless of the container they came from.
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]: 0.0 is silence, the extremes are
// maximum amplitude. The normalized form keeps intermediate processing
// independent of source bit depth.
//
// # Rendering Firmware Audio
//
// The firmware stores its startup clip as unsigned 8-bit mono PCM, so the
// usual terminal stage is CollectPCM8:
//
//	src, _ := decoder.Decode(file)
//	pcm, rate, err := audio.CollectPCM8(src, 44100, 4096)
//	// pcm is ready to embed or to wrap in a WAV container
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	dec, ok := registry.Lookup(".WAV") // extension matching is case-insensitive
//
// # Error Handling
//
// ReadSamples returns io.EOF when a stream is exhausted; any other error
// indicates a problem with the source:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // process n samples
//	}
package audio
