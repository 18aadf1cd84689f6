package bolton

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

//--------------------------------------
// 温位、相当温位
//--------------------------------------

// 温位 theta [K] の乾燥断熱線上で、気圧 p [mb] における温度 [K] を求めます。
//
//	T = theta * (P/P_0)^k_dry
func DryAdiabatT(theta float64, p float64, p0 float64) (float64, error) {
	if !(p > 0) || !(p0 > 0) {
		return fail("DryAdiabatT", "pressures must be positive (P=%g mb, P0=%g mb)", p, p0)
	}

	return theta * math.Pow(p/p0, KDry), nil
}

// 絶対温度 tk [K]、気圧 p [mb] の空気塊の温位 theta [K] を求めます。DryAdiabatT の逆関数です。
//
//	theta = T * (P_0/P)^k_dry
func PotentialTemperature(tk float64, p float64, p0 float64) (float64, error) {
	if !(p > 0) || !(p0 > 0) {
		return fail("PotentialTemperature", "pressures must be positive (P=%g mb, P0=%g mb)", p, p0)
	}

	return tk * math.Pow(p0/p, KDry), nil
}

// 気温 tc [℃]、気圧 p [mb]、混合比 w [kg/kg] から偽相当温位 theta_ep [K] を求めます。
// Bolton (1980) 式(43)
//
// 相対湿度と持ち上げ凝結高度の温度は元の T, P, w から求めます。
func PseudoequivalentPotentialTemperature(tc float64, p float64, w float64, p0 float64) (float64, error) {
	const op = "PseudoequivalentPotentialTemperature"

	if !(p > 0) || !(p0 > 0) {
		return fail(op, "pressures must be positive (P=%g mb, P0=%g mb)", p, p0)
	}

	// 混合比 [g/kg]
	r := w * 1000

	// 絶対温度 [K]
	tk := tc + CToK

	term1 := tk * math.Pow(p0/p, 0.2854*(1-0.28e-3*r))

	rh, err := RelativeHumidity(tc, p, w)
	if err != nil {
		return fail(op, "%v", err)
	}

	tLCL, err := LCLTemperature(tk, rh)
	if err != nil {
		return fail(op, "%v", err)
	}

	term2 := math.Exp((3.376/tLCL - 0.00254) * r * (1 + 0.81e-3*r))

	return term1 * term2, nil
}

// 気温 tc [℃]、気圧 p [mb] で飽和している空気塊の偽相当温位 [K] を求めます。
// 湿潤断熱線の場 (ThetaEPField) の各格子点の値です。
func SaturatedThetaEP(tc float64, p float64, p0 float64) (float64, error) {
	ws, err := SaturationMixingRatio(p, tc)
	if err != nil {
		return fail("SaturatedThetaEP", "%v", err)
	}

	return PseudoequivalentPotentialTemperature(tc, p, ws, p0)
}

func DryAdiabatTVec(theta, p []float64, p0 float64) ([]float64, error) {
	return Map2("DryAdiabatT", func(theta, p float64) (float64, error) {
		return DryAdiabatT(theta, p, p0)
	}, theta, p)
}

func PotentialTemperatureVec(tk, p []float64, p0 float64) ([]float64, error) {
	return Map2("PotentialTemperature", func(tk, p float64) (float64, error) {
		return PotentialTemperature(tk, p, p0)
	}, tk, p)
}

func PseudoequivalentPotentialTemperatureVec(tc, p, w []float64, p0 float64) ([]float64, error) {
	return Map3("PseudoequivalentPotentialTemperature", func(tc, p, w float64) (float64, error) {
		return PseudoequivalentPotentialTemperature(tc, p, w, p0)
	}, tc, p, w)
}

// 気温 tc [℃] と気圧 p [mb] の配列について、飽和を仮定した偽相当温位 [K] を求めます。
func ThetaEPField(tc, p []float64, p0 float64) ([]float64, error) {
	return Map2("ThetaEPField", func(tc, p float64) (float64, error) {
		return SaturatedThetaEP(tc, p, p0)
	}, tc, p)
}

// ThetaEPField の2次元格子版です。tc と p の行数・列数が一致しない場合は *ShapeError を返します。
func ThetaEPGrid(tc, p mat.Matrix, p0 float64) (*mat.Dense, error) {
	r, c := tc.Dims()
	pr, pc := p.Dims()
	if r != pr || c != pc {
		return nil, &ShapeError{Op: "ThetaEPGrid", Lens: []int{r, c, pr, pc}}
	}

	if r == 0 || c == 0 {
		return &mat.Dense{}, nil
	}

	field := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			field.Set(i, j, orNaN(SaturatedThetaEP(tc.At(i, j), p.At(i, j), p0)))
		}
	}

	return field, nil
}
