// SPDX-License-Identifier: EPL-2.0

// Package audio provides the float sample pipeline used to bring decoded
// prompts into the mu-law domain and to play mixed mu-law back out.
//
// The building blocks are:
//   - Source, a pull based stream of interleaved float32 samples
//   - Resampler for sample rate conversion
//   - MonoMixer for channel downmixing
//   - MuLawSource, a Source over a mu-law buffer
//   - Registry, mapping format keys to decoders
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders under formats/ and the processors in this package all implement
// Source, so they chain:
//
//	src, _ := registry.Decode("mp3", file)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 8000))
//
// # Resampling
//
// Resampler uses Catmull-Rom cubic interpolation. When the target rate is
// lower than the source rate the input is low-pass filtered first.
// Converting between rates that divide evenly (16000 to 8000, 8000 to
// 16000) yields exactly frames*dst/src output frames.
//
// # Mu-law Playback
//
// MuLawSource decodes G.711 bytes on the fly:
//
//	mixed, _ := mixer.Mix(base, overlay, cfg)
//	src := audio.NewMuLawSource(mixed, 8000)
//	wide := audio.NewResampler(src, 16000)
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	wav.Register(registry)
//	mp3.Register(registry)
//	src, err := registry.Decode(filepath.Ext(name), file)
//
// Keys are case insensitive and a leading dot is ignored. Registry is safe
// for concurrent use.
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]; 0.0 is silence.
//
// # Error Handling
//
// ReadSamples returns io.EOF when the stream is done, possibly together
// with the final samples, so always consume n before checking err:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    process(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
