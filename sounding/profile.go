package sounding

import (
	"fmt"
	"math"

	"github.com/hhkbp2/go-logging"
	"github.com/udawtr/skewt-go/bolton"
	"github.com/udawtr/skewt-go/skewt"
	"gonum.org/v1/gonum/floats"
)

// 各層の熱力学量と skew-T 図上の座標
type Profile struct {
	P  []float64 // 気圧 [mb]
	T  []float64 // 気温 [℃]
	Td []float64 // 露点温度 [℃]

	W       []float64 // 混合比 [kg/kg] (露点温度における飽和混合比)
	RH      []float64 // 相対湿度 [%]
	TLCL    []float64 // 持ち上げ凝結高度の温度 [K]
	Theta   []float64 // 温位 [K]
	ThetaEP []float64 // 偽相当温位 [K]

	U []float64 // 東西風 [knot]
	V []float64 // 南北風 [knot]

	X    []float64 // 気温の x 座標
	XDew []float64 // 露点温度の x 座標
	Y    []float64 // y 座標
}

// 観測データから各層の熱力学量を求めます。p0 は温位の基準気圧 [mb] です。
// 定義域外となる層の値は NaN とし、警告をログに出力します。
func (s *Sounding) Derive(p0 float64) (*Profile, error) {
	logger := logging.GetLogger("skewt")

	prof := &Profile{
		P:  append([]float64{}, s.P...),
		T:  append([]float64{}, s.T...),
		Td: append([]float64{}, s.Td...),
	}

	// 絶対温度 [K]
	tk := append([]float64{}, s.T...)
	floats.AddConst(bolton.CToK, tk)

	var err error
	if prof.W, err = bolton.SaturationMixingRatioVec(s.P, s.Td); err != nil {
		return nil, fmt.Errorf("mixing ratio: %w", err)
	}
	if prof.RH, err = bolton.RelativeHumidityVec(s.T, s.P, prof.W); err != nil {
		return nil, fmt.Errorf("relative humidity: %w", err)
	}
	if prof.TLCL, err = bolton.LCLTemperatureVec(tk, prof.RH); err != nil {
		return nil, fmt.Errorf("LCL temperature: %w", err)
	}
	if prof.Theta, err = bolton.PotentialTemperatureVec(tk, s.P, p0); err != nil {
		return nil, fmt.Errorf("potential temperature: %w", err)
	}
	if prof.ThetaEP, err = bolton.PseudoequivalentPotentialTemperatureVec(s.T, s.P, prof.W, p0); err != nil {
		return nil, fmt.Errorf("pseudoequivalent potential temperature: %w", err)
	}

	prof.U = make([]float64, s.Len())
	prof.V = make([]float64, s.Len())
	for i := 0; i < s.Len(); i++ {
		prof.U[i], prof.V[i] = WindComponents(s.WindDir[i], s.WindSpd[i])
	}

	if prof.X, prof.Y, err = skewt.FromThermoVec(s.T, s.P); err != nil {
		return nil, fmt.Errorf("temperature trace: %w", err)
	}
	if prof.XDew, _, err = skewt.FromThermoVec(s.Td, s.P); err != nil {
		return nil, fmt.Errorf("dewpoint trace: %w", err)
	}

	for i := 0; i < s.Len(); i++ {
		if math.IsNaN(prof.ThetaEP[i]) {
			logger.Warnf("level %d (%g mb): thermodynamic quantities undefined for T=%g C, Td=%g C",
				i, s.P[i], s.T[i], s.Td[i])
		}
	}

	return prof, nil
}
