package rules

// TemperatureBand is one of six ordered categories joining weather data
// to clothing advice.
//
//	very_cold :  5℃以下
//	cold      :  6〜10℃
//	cool      : 11〜15℃
//	mild      : 16〜20℃
//	warm      : 21〜25℃
//	hot       : 26℃以上
type TemperatureBand string

const (
	BandVeryCold TemperatureBand = "very_cold"
	BandCold     TemperatureBand = "cold"
	BandCool     TemperatureBand = "cool"
	BandMild     TemperatureBand = "mild"
	BandWarm     TemperatureBand = "warm"
	BandHot      TemperatureBand = "hot"
)

// AllBands lists every band in ascending temperature order.
var AllBands = []TemperatureBand{BandVeryCold, BandCold, BandCool, BandMild, BandWarm, BandHot}

// CategorizeTemperature maps a temperature in Celsius to its band.
// Feels-like temperature is preferred over raw temperature by callers.
func CategorizeTemperature(tempCelsius float64) TemperatureBand {
	switch {
	case tempCelsius <= 5:
		return BandVeryCold
	case tempCelsius <= 10:
		return BandCold
	case tempCelsius <= 15:
		return BandCool
	case tempCelsius <= 20:
		return BandMild
	case tempCelsius <= 25:
		return BandWarm
	default:
		return BandHot
	}
}
