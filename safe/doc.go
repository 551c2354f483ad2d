// Package safe generates randomized parameter sets for the SAFE model and its
// cardiac-tuned variant.
//
// Each set holds three time constants, three mixing weights, a stimulation
// limit and a gain scale, with one value per channel ([Channels] = 3). Both
// sets are drawn from one shared random stream in a fixed order, so a seed
// reproduces the pair bit for bit:
//
//	general, cardiac, err := safe.Sample(safe.WithSeed(42))
//
// Uniform draws cover the half-open interval [Min, Max). Some fields are
// derived instead of drawn:
//
//   - general A3 = 1 - A2 - A1, so the general weights sum to 1 per channel.
//   - cardiac A2 = 1 - general A1. This couples the cardiac set to the
//     general set's A1, not to the cardiac A1.
//   - cardiac A3 = 0, so cardiac weights do not in general sum to 1.
//
// Cardiac Tau3 has a zero-width range and is always exactly 0.001.
package safe
