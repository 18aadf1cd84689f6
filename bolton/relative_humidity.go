package bolton

//--------------------------------------
// 相対湿度
//--------------------------------------

// 気温 tc [℃]、気圧 p [mb]、混合比 w [kg/kg] から相対湿度 RH [%] を求めます。
// 0～100% の範囲への丸めは行いません。100% を超える値は過飽和を表します。
func RelativeHumidity(tc float64, p float64, w float64) (float64, error) {
	ws, err := SaturationMixingRatio(p, tc)
	if err != nil {
		return fail("RelativeHumidity", "%v", err)
	}

	return 100 * w / ws, nil
}

func RelativeHumidityVec(tc, p, w []float64) ([]float64, error) {
	return Map3("RelativeHumidity", RelativeHumidity, tc, p, w)
}
