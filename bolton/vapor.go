package bolton

import "math"

//--------------------------------------
// 飽和水蒸気圧
//--------------------------------------

// 気温 tc [℃] から飽和水蒸気圧 e_s [mb] を求めます。
// Bolton (1980) 式(10)
func SaturationVaporPressure(tc float64) float64 {
	fracTop := 17.67 * tc
	fracBot := tc + 243.5

	return 6.112 * math.Exp(fracTop/fracBot)
}

// 飽和水蒸気圧 es [mb] から飽和温度 [℃] を求めます。
// Bolton (1980) 式(11)
// es <= 0 の場合は対数が定義されないため *DomainError を返します。
func SaturationVaporTemperature(es float64) (float64, error) {
	if !(es > 0) {
		return fail("SaturationVaporTemperature", "vapor pressure %g mb is not positive", es)
	}

	lnEs := math.Log(es)
	fracTop := 243.5*lnEs - 440.8
	fracBot := 19.48 - lnEs
	if fracBot == 0 {
		return fail("SaturationVaporTemperature", "ln(%g) equals 19.48", es)
	}

	return fracTop / fracBot, nil
}

func SaturationVaporPressureVec(tc []float64) []float64 {
	return Map(Total(SaturationVaporPressure), tc)
}

func SaturationVaporTemperatureVec(es []float64) []float64 {
	return Map(SaturationVaporTemperature, es)
}
