package sounding

import (
	"math"
)

//--------------------------------------
// 風向風速とベクトル成分の変換
//--------------------------------------

// 風向 dir [°] (風が吹いてくる方向) と風速 spd から
// 東西のベクトル成分 u と南北のベクトル成分 v を計算する
func WindComponents(dir float64, spd float64) (u float64, v float64) {
	rad := degreeToRad(dir)

	u = -spd * math.Sin(rad)
	v = -spd * math.Cos(rad)

	return u, v
}

// ベクトル風速 u (東西のベクトル成分), v (南北のベクトル成分) から
// 風向 dir [°] と風速 spd を計算する。無風の場合の風向は0とする
func WindFromComponents(u float64, v float64) (dir float64, spd float64) {
	// 三平方の定理により、東西、南北のベクトル成分から風速を計算
	spd = math.Sqrt(u*u + v*v)
	if spd == 0 {
		return 0, 0
	}

	// 東西、南北のベクトル成分から風向を計算
	dir = radToDegree(math.Atan2(-u, -v))
	if dir < 0 {
		dir += 360
	}

	return dir, spd
}

func radToDegree(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

func degreeToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
