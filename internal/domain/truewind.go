package domain

import (
	"math"
	"time"
)

// MotionFrame is the vessel motion used for one derivation. Underway it is
// the reported heading and speed over ground; at anchor both headings are the
// apparent bearing the vessel lies to and speed is zero.
type MotionFrame struct {
	HeadingTrue     float64
	HeadingMagnetic float64
	Speed           float64
	Anchored        bool
}

// NewMotionFrame selects the effective motion for state.
func NewMotionFrame(state VesselState) MotionFrame {
	if state.Anchored {
		return MotionFrame{
			HeadingTrue:     state.AnchoredApparentBearing,
			HeadingMagnetic: state.AnchoredApparentBearing,
			Speed:           0,
			Anchored:        true,
		}
	}
	return MotionFrame{
		HeadingTrue:     state.HeadingTrue,
		HeadingMagnetic: state.MagneticReference(),
		Speed:           state.SpeedOverGround,
	}
}

// TrueWindResult is everything derived from one sample. Angles are radians,
// speeds m/s, temperatures kelvin.
type TrueWindResult struct {
	ApparentSpeed float64 `json:"apparent_speed"`
	// ApparentAngle is bow relative, in (-π, π].
	ApparentAngle           float64 `json:"apparent_angle"`
	GroundRelativeTrueAngle float64 `json:"ground_relative_true_angle"`
	WaterRelativeTrueAngle  float64 `json:"water_relative_true_angle"`
	// Directions are compass bearings in [0, 2π).
	TrueDirectionTrueFrame     float64 `json:"true_direction_true"`
	TrueDirectionMagneticFrame float64 `json:"true_direction_magnetic"`
	TrueSpeed                  float64 `json:"true_speed"`

	WindChillKelvin *float64 `json:"wind_chill_kelvin,omitempty"`
	HeatIndexKelvin *float64 `json:"heat_index_kelvin,omitempty"`
	FeelsLikeKelvin float64  `json:"feels_like_kelvin"`

	ComputedAt time.Time `json:"computed_at"`
	SourceTag  string    `json:"source"`
}

// SolveTrueWind adds the vessel velocity back onto the apparent wind vector,
// once per compass frame. Comfort metrics and stamps are left zero.
func SolveTrueWind(aw ApparentWind, state VesselState) TrueWindResult {
	frame := NewMotionFrame(state)

	var apparentAngle float64
	if aw.RelativeAngleRadians != nil {
		apparentAngle = NormalizeAngle(*aw.RelativeAngleRadians)
	} else {
		apparentAngle = NormalizeAngle(aw.TrueFrameBearingRadians - frame.HeadingTrue)
	}

	trueSpeed, trueDir := resolveFrame(aw.Speed, aw.TrueFrameBearingRadians, frame.Speed, frame.HeadingTrue)
	_, magDir := resolveFrame(aw.Speed, aw.MagneticFrameBearingRadians, frame.Speed, frame.HeadingMagnetic)

	return TrueWindResult{
		ApparentSpeed:              aw.Speed,
		ApparentAngle:              apparentAngle,
		GroundRelativeTrueAngle:    NormalizeAngle(trueDir - frame.HeadingTrue),
		WaterRelativeTrueAngle:     NormalizeAngle(magDir - frame.HeadingMagnetic),
		TrueDirectionTrueFrame:     trueDir,
		TrueDirectionMagneticFrame: magDir,
		TrueSpeed:                  trueSpeed,
	}
}

// resolveFrame returns |A+V| and its compass bearing for one frame.
func resolveFrame(windSpeed, windBearing, vesselSpeed, vesselHeading float64) (speed, bearing float64) {
	wx := windSpeed*math.Cos(windBearing) + vesselSpeed*math.Cos(vesselHeading)
	wy := windSpeed*math.Sin(windBearing) + vesselSpeed*math.Sin(vesselHeading)
	return math.Hypot(wx, wy), ToCompassBearing(math.Atan2(wy, wx))
}
