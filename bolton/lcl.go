package bolton

import "math"

// 絶対温度 tk [K] と相対湿度 rh [%] から持ち上げ凝結高度の温度 T_LCL [K] を求めます。
// Bolton (1980) 式(22)
//
//	T_LCL = 55 + 1 / ( 1/(T-55) - ln(RH/100)/2840 )
func LCLTemperature(tk float64, rh float64) (float64, error) {
	if tk == 55 {
		return fail("LCLTemperature", "temperature equals 55 K")
	}
	if !(rh > 0) {
		return fail("LCLTemperature", "relative humidity %g%% is not positive", rh)
	}

	denom := 1/(tk-55) - math.Log(rh/100)/2840.0
	if denom == 0 {
		return fail("LCLTemperature", "zero denominator at T=%g K, RH=%g%%", tk, rh)
	}

	return 55 + 1/denom, nil
}

func LCLTemperatureVec(tk, rh []float64) ([]float64, error) {
	return Map2("LCLTemperature", LCLTemperature, tk, rh)
}
