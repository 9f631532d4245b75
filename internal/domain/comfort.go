package domain

import "math"

const (
	kelvinOffset = 273.15

	// Wind chill applies at or below 10 °C with wind above 4.8 km/h.
	windChillMaxCelsius = 10.0
	windChillMinKmh     = 4.8

	// Heat index applies at or above 80 °F with humidity of at least 40 %.
	heatIndexMinFahrenheit = 80.0
	heatIndexMinHumidity   = 40.0

	// Feels-like switches to heat index only from 27 °C. Between 10 °C and
	// 27 °C the raw temperature is reported.
	feelsLikeHeatMinCelsius = 27.0
)

// Comfort holds the derived comfort temperatures in kelvin. WindChill and
// HeatIndex are nil when outside their validity range.
type Comfort struct {
	WindChill *float64
	HeatIndex *float64
	FeelsLike float64
}

// ComputeComfort derives wind chill, heat index and feels-like temperature.
func ComputeComfort(tempK, humidity, windSpeed float64) Comfort {
	chill := WindChill(tempK, windSpeed)
	heat := HeatIndex(tempK, humidity)
	return Comfort{
		WindChill: chill,
		HeatIndex: heat,
		FeelsLike: FeelsLike(tempK, chill, heat),
	}
}

// WindChill returns the Environment Canada wind chill index in kelvin, or nil
// when the air is warmer than 10 °C or the wind is 4.8 km/h or less.
func WindChill(tempK, windSpeed float64) *float64 {
	t := tempK - kelvinOffset
	v := windSpeed * 3.6
	if t > windChillMaxCelsius || v <= windChillMinKmh {
		return nil
	}

	vp := math.Pow(v, 0.16)
	chill := 13.12 + 0.6215*t - 11.37*vp + 0.3965*t*vp + kelvinOffset
	return &chill
}

// HeatIndex returns the Rothfusz regression heat index in kelvin, or nil below
// 80 °F or 40 % relative humidity.
func HeatIndex(tempK, humidity float64) *float64 {
	t := kelvinToFahrenheit(tempK)
	r := humidity
	if t < heatIndexMinFahrenheit || r < heatIndexMinHumidity {
		return nil
	}

	hi := -42.379 +
		2.04901523*t +
		10.14333127*r -
		0.22475541*t*r -
		0.00683783*t*t -
		0.05481717*r*r +
		0.00122874*t*t*r +
		0.00085282*t*r*r -
		0.00000199*t*t*r*r

	k := fahrenheitToKelvin(hi)
	return &k
}

// FeelsLike picks wind chill in the cold, heat index in the heat, and the
// raw temperature otherwise.
func FeelsLike(tempK float64, chill, heat *float64) float64 {
	t := tempK - kelvinOffset
	switch {
	case chill != nil && t <= windChillMaxCelsius:
		return *chill
	case heat != nil && t >= feelsLikeHeatMinCelsius:
		return *heat
	default:
		return tempK
	}
}

func kelvinToFahrenheit(k float64) float64 {
	return (k-kelvinOffset)*9/5 + 32
}

func fahrenheitToKelvin(f float64) float64 {
	return (f-32)*5/9 + kelvinOffset
}
