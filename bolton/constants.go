// Package bolton は Bolton (1980) の経験式に基づく湿潤大気の熱力学量を計算します。
//
// 気温は特に断りのない限り摂氏 [℃]、気圧はミリバール [mb] (= hPa) です。
// すべての関数は状態を持たない純粋関数です。
package bolton

const (
	CToK  = 273.15 // 摂氏から絶対温度への換算 [K]
	CpDry = 1005.7 // 乾燥空気の定圧比熱 [J/(kg*K)]
	Eps   = 0.6220 // 気体定数の比 R_d/R_v [-]
	KDry  = 0.2854 // R_d/c_p_dry [-]

	// 温位の基準気圧 P_0 [mb]
	ReferencePressure = 1000.0
)
