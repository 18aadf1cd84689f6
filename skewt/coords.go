// Package skewt は skew-T/log-P 図の座標変換と背景の参照線を扱います。
//
// 熱力学空間 (気温 T, 気圧 P) と描画平面 (x, y) は
//
//	x = T - SkewSlope*ln(P)    (T は絶対温度 [K]、P は [mb])
//	y = -ln(P)
//
// で1対1に対応します。気圧が0以下の場合は対数の定義どおり -Inf または NaN になります。
package skewt

import (
	"math"

	"github.com/udawtr/skewt-go/bolton"
	"gonum.org/v1/gonum/floats"
)

// 等温線の傾き
const SkewSlope = 40.0

// 絶対温度 tk [K] と気圧 p [mb] から x 座標を求めます。
func XFromTP(tk float64, p float64) float64 {
	return tk - SkewSlope*math.Log(p)
}

// 気圧 p [mb] から y 座標を求めます。
func YFromP(p float64) float64 {
	return -math.Log(p)
}

// y 座標から気圧 [mb] を求めます。YFromP の逆関数です。
func PFromY(y float64) float64 {
	return math.Exp(-y)
}

// x 座標と気圧 p [mb] から絶対温度 [K] を求めます。XFromTP の逆関数です。
func TFromXP(x float64, p float64) float64 {
	return x + SkewSlope*math.Log(p)
}

// 平面座標 (x, y) を気温 [℃] と気圧 [mb] に変換します。
func ToThermo(x float64, y float64) (tc float64, p float64) {
	p = PFromY(y)
	tc = TFromXP(x, p) - bolton.CToK

	return tc, p
}

// 気温 tc [℃] と気圧 p [mb] を平面座標 (x, y) に変換します。
func FromThermo(tc float64, p float64) (x float64, y float64) {
	y = YFromP(p)
	x = XFromTP(tc+bolton.CToK, p)

	return x, y
}

func XFromTPVec(tk, p []float64) ([]float64, error) {
	return bolton.Map2("XFromTP", total2(XFromTP), tk, p)
}

func YFromPVec(p []float64) []float64 {
	return bolton.Map(bolton.Total(YFromP), p)
}

func PFromYVec(y []float64) []float64 {
	return bolton.Map(bolton.Total(PFromY), y)
}

func TFromXPVec(x, p []float64) ([]float64, error) {
	return bolton.Map2("TFromXP", total2(TFromXP), x, p)
}

// ToThermo の配列版です。
func ToThermoVec(x, y []float64) (tc []float64, p []float64, err error) {
	p = PFromYVec(y)
	tk, err := TFromXPVec(x, p)
	if err != nil {
		return nil, nil, err
	}

	tc = append([]float64(nil), tk...)
	floats.AddConst(-bolton.CToK, tc)

	if len(p) == 1 && len(tc) != 1 {
		p = repeat(p[0], len(tc))
	}

	return tc, p, nil
}

// FromThermo の配列版です。
func FromThermoVec(tc, p []float64) (x []float64, y []float64, err error) {
	tk := append([]float64(nil), tc...)
	floats.AddConst(bolton.CToK, tk)

	x, err = XFromTPVec(tk, p)
	if err != nil {
		return nil, nil, err
	}

	y = YFromPVec(p)
	if len(y) == 1 && len(x) != 1 {
		// 気圧がスカラーの場合は y を x に揃える
		y = repeat(y[0], len(x))
	}

	return x, y, nil
}

func total2(f func(float64, float64) float64) bolton.Binary {
	return func(a, b float64) (float64, error) {
		return f(a, b), nil
	}
}

func repeat(v float64, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}
