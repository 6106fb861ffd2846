// Package domain models world-tile climate data and reimplements the
// simulator's seasonal temperature engine so growing-season metrics
// can be computed offline from snapshot dumps alone.
//
// # Seasonal temperature model
//
// The simulator drives per-tile temperature with a cosine over a
// 60-day year of 60000-tick days:
//
//	yearPct = (tick / 60000 mod 60) / 60
//	angle   = 2π × (yearPct − 10/12)
//	offset  = cos(angle) × (−amplitude)
//	temp    = baseTemperature + offset
//
// The phase constant 10/12 puts the cosine peak in midwinter, so
// negating the amplitude there gives the coldest instant of the year;
// six twelfths later cos(angle) = −1 gives the warmest. The amplitude
// depends on the tile's normalized distance from the equator via a
// piecewise-linear curve: ±3°C at the equator, ±4°C at 0.1, ±28°C at
// the poles, clamped flat beyond both ends. Southern-hemisphere tiles
// negate the amplitude, shifting the cycle by half a year.
//
// # Growing days
//
// The year divides into 12 "twelfths" of 5 days (300000 ticks) each.
// A twelfth's mean temperature is the average of 120 evenly spaced
// instantaneous samples offset half a day (30000 ticks) into the
// period; both the sample count and the offset must match the
// simulator verbatim to reproduce its numbers bit-for-bit. A twelfth
// grows when its mean lies in [6°C, 42°C]; growing days = growing
// twelfths × 5, always a multiple of 5 in [0, 60].
//
// # Inverse estimation
//
// Snapshot dumps carry only the seasonal extremes. The estimator
// recovers forward-model parameters from them:
//
//	baseTemperature = (min + max) / 2
//	amplitude       = |max − min| / 2
//	equatorDistance = inverse of the seasonal curve at that amplitude
//
// The latitude estimate (equatorDistance × 90°) matters only for its
// hemisphere sign and defaults to northern when the hemisphere is
// unknown.
//
// # Snapshot conventions
//
// Property values are dynamically typed text. A value containing a
// decimal point coerces to a float, otherwise an integer parse is
// attempted, otherwise the raw string is kept. Two string values have
// reserved meaning for collection-valued fields such as Rivers and
// Roads: the literal "null" means logically absent, while the
// placeholder "[...]" means present. A missing key is also absent.
package domain
