package domain

import "time"

// Published measurement paths.
const (
	PathSpeedApparent        = "environment.wind.speedApparent"
	PathAngleApparent        = "environment.wind.angleApparent"
	PathAngleTrueGround      = "environment.wind.angleTrueGround"
	PathAngleTrueWater       = "environment.wind.angleTrueWater"
	PathDirectionTrue        = "environment.wind.directionTrue"
	PathDirectionMagnetic    = "environment.wind.directionMagnetic"
	PathSpeedTrue            = "environment.wind.speedTrue"
	PathWindChillTemperature = "environment.outside.windChillTemperature"
	PathHeatIndexTemperature = "environment.outside.heatIndexTemperature"
	PathFeelsLikeTemperature = "environment.outside.feelsLikeTemperature"
)

// Measurement is one named value in SI units.
type Measurement struct {
	Path  string  `json:"path"`
	Value float64 `json:"value"`
}

// Delta is a set of measurements published together under one source and timestamp.
type Delta struct {
	Source    string        `json:"source"`
	Timestamp time.Time     `json:"timestamp"`
	Values    []Measurement `json:"values"`
}

// ToDelta flattens a result into measurements. Comfort metrics without a
// value are left out rather than published empty.
func ToDelta(r TrueWindResult) Delta {
	values := make([]Measurement, 0, 10)
	values = append(values,
		Measurement{Path: PathSpeedApparent, Value: r.ApparentSpeed},
		Measurement{Path: PathAngleApparent, Value: r.ApparentAngle},
		Measurement{Path: PathAngleTrueGround, Value: r.GroundRelativeTrueAngle},
		Measurement{Path: PathAngleTrueWater, Value: r.WaterRelativeTrueAngle},
		Measurement{Path: PathDirectionTrue, Value: r.TrueDirectionTrueFrame},
		Measurement{Path: PathDirectionMagnetic, Value: r.TrueDirectionMagneticFrame},
		Measurement{Path: PathSpeedTrue, Value: r.TrueSpeed},
	)
	if r.WindChillKelvin != nil {
		values = append(values, Measurement{Path: PathWindChillTemperature, Value: *r.WindChillKelvin})
	}
	if r.HeatIndexKelvin != nil {
		values = append(values, Measurement{Path: PathHeatIndexTemperature, Value: *r.HeatIndexKelvin})
	}
	values = append(values, Measurement{Path: PathFeelsLikeTemperature, Value: r.FeelsLikeKelvin})

	return Delta{
		Source:    r.SourceTag,
		Timestamp: r.ComputedAt,
		Values:    values,
	}
}
