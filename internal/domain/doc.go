// Package domain derives true wind and comfort temperatures from apparent
// wind observations taken aboard a moving vessel.
//
// # Units and Frames
//
// All values are SI: angles in radians, speeds in m/s, temperatures in
// kelvin, humidity in percent (0–100). Raw wind samples are the one
// exception and carry their bow-relative angle in degrees, as the
// anemometer reports it:
//
//	0° = dead ahead, 90° = starboard beam, 180° = astern, 270° = port beam
//
// Two compass frames are maintained side by side. The true frame is
// referenced to heading true. The magnetic frame is referenced to course
// over ground (magnetic) when a fix exists and to heading magnetic
// otherwise. The frames are resolved independently; the variation between
// them is never computed.
//
// # Ranges
//
//	Bow-relative and frame-relative angles:  (-π, π]   see [NormalizeAngle]
//	Compass bearings:                         [0, 2π)   see [ToCompassBearing]
//
// # True Wind
//
// True wind is apparent wind plus vessel velocity, W = A + V, each expressed
// as a vector in the compass frame. At anchor the vessel swings to the
// wind, so the motion frame uses the anchor-watch apparent bearing for both
// headings and zero speed. See [NewMotionFrame] and [SolveTrueWind].
//
// # Comfort Metrics
//
//	Wind chill:  T ≤ 10 °C and V > 4.8 km/h   Environment Canada index
//	Heat index:  T ≥ 80 °F and RH ≥ 40 %       Rothfusz regression
//	Feels like:  wind chill if T ≤ 10 °C, heat index if T ≥ 27 °C,
//	             air temperature otherwise
//
// A metric outside its range is nil, not zero, and is not published.
//
// # State
//
// [Tracker] is the only mutable state. Every derivation reads one
// [Tracker.Snapshot] up front so a result never mixes fields from before and
// after a concurrent update.
package domain
