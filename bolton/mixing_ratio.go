package bolton

//--------------------------------------
// 混合比
//--------------------------------------

// 気圧 p [mb] と気温 tc [℃] から飽和混合比 w_s [kg/kg] を求めます。
//
//	       eps*e_s(T)
//	w_s = ------------
//	        P-e_s(T)
//
// p <= e_s(tc) の場合は分母が0以下となるため *DomainError を返します。
// 値を丸めることはしません。
func SaturationMixingRatio(p float64, tc float64) (float64, error) {
	es := SaturationVaporPressure(tc)
	if !(p > es) {
		return fail("SaturationMixingRatio", "pressure %g mb does not exceed saturation vapor pressure %g mb", p, es)
	}

	return (Eps * es) / (p - es), nil
}

// 気圧 p [mb] と混合比 w [kg/kg] から水蒸気分圧 e [mb] を求めます。
//
//	e = w*P / (eps+w)
func VaporPressure(p float64, w float64) float64 {
	return (w * p) / (Eps + w)
}

// 気圧 p [mb] と飽和混合比 ws [kg/kg] から、等飽和混合比線上の温度 [℃] を求めます。
// 飽和混合比の式を e_s について解き、SaturationVaporTemperature で温度に戻します。
func MixingRatioLine(p float64, ws float64) (float64, error) {
	es := VaporPressure(p, ws)

	Ts, err := SaturationVaporTemperature(es)
	if err != nil {
		return fail("MixingRatioLine", "mixing ratio %g kg/kg at %g mb: %v", ws, p, err)
	}

	return Ts, nil
}

// 気圧 p [mb] と混合比 w [kg/kg] の空気塊の露点温度 [℃] を求めます。
func Dewpoint(p float64, w float64) (float64, error) {
	return MixingRatioLine(p, w)
}

func SaturationMixingRatioVec(p, tc []float64) ([]float64, error) {
	return Map2("SaturationMixingRatio", SaturationMixingRatio, p, tc)
}

func VaporPressureVec(p, w []float64) ([]float64, error) {
	return Map2("VaporPressure", func(p, w float64) (float64, error) {
		return VaporPressure(p, w), nil
	}, p, w)
}

func MixingRatioLineVec(p, ws []float64) ([]float64, error) {
	return Map2("MixingRatioLine", MixingRatioLine, p, ws)
}

func DewpointVec(p, w []float64) ([]float64, error) {
	return Map2("Dewpoint", Dewpoint, p, w)
}
