package domain

// RawWindSample is one anemometer observation: speed in m/s, angle in degrees
// from the bow, positive clockwise.
type RawWindSample struct {
	Speed                float64 `json:"speed"`
	RelativeAngleDegrees float64 `json:"angle"`
}

// ApparentWind is a raw sample expressed against the vessel's true and
// magnetic compass frames.
type ApparentWind struct {
	Speed                float64
	RelativeAngleDegrees float64
	// RelativeAngleRadians is nil when the caller did not resolve the sample
	// through ResolveApparent; the solver then derives it from the bearing.
	RelativeAngleRadians *float64

	TrueFrameBearingDegrees     float64
	MagneticFrameBearingDegrees float64
	TrueFrameBearingRadians     float64
	MagneticFrameBearingRadians float64

	AirTemperature float64
}

// ResolveApparent projects a raw sample onto the compass frames in state.
// The magnetic frame follows course over ground when a fix exists.
func ResolveApparent(sample RawWindSample, state VesselState) ApparentWind {
	rel := DegToRad(sample.RelativeAngleDegrees)

	trueDeg := wrapDegrees(sample.RelativeAngleDegrees + RadToDeg(state.HeadingTrue))
	magDeg := wrapDegrees(sample.RelativeAngleDegrees + RadToDeg(state.MagneticReference()))

	return ApparentWind{
		Speed:                       sample.Speed,
		RelativeAngleDegrees:        sample.RelativeAngleDegrees,
		RelativeAngleRadians:        &rel,
		TrueFrameBearingDegrees:     trueDeg,
		MagneticFrameBearingDegrees: magDeg,
		TrueFrameBearingRadians:     DegToRad(trueDeg),
		MagneticFrameBearingRadians: DegToRad(magDeg),
		AirTemperature:              state.AirTemperature,
	}
}
