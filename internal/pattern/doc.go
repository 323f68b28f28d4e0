// Package pattern provides the procedural frame generators behind qlture.
//
// A [Generator] maps (time, width, height) to a [Frame] of 8-bit RGB
// samples. Two categories exist:
//
//   - [Patterned]: a spatial [Field] evaluated on a centered grid and
//     combined with a temporal sine oscillation ([Wave]).
//   - [Noise]: uniform grayscale "snow" ([Snow]).
//
// Generators are small immutable values whose randomized parameters are
// drawn once at construction time and remain inspectable afterwards.
// A [Sequence] hands out an endless, strictly alternating stream of
// freshly randomized generators.
//
// # Byte conversion
//
// Wave intensities are converted to bytes without clamping, see [ToByte].
// Values outside [0,255] wrap modulo 256, which shows up as banding.
package pattern
