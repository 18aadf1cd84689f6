package skewt

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udawtr/skewt-go/bolton"
)

func Test_YFromP(t *testing.T) {
	assert.InDelta(t, -6.9078, YFromP(1000.0), 1e-3)
	assert.Equal(t, 0.0, YFromP(1.0))
}

func Test_XFromTP(t *testing.T) {
	assert.InDelta(t, 23.69, XFromTP(300.0, 1000.0), 1e-2)
}

func Test_PFromY_TFromXP(t *testing.T) {
	for _, p := range []float64{1050, 1000, 500, 150, 10, 0.5} {
		assert.InEpsilon(t, p, PFromY(YFromP(p)), 1e-12)
		assert.InDelta(t, 250.0, TFromXP(XFromTP(250.0, p), p), 1e-9)
	}
}

// 0 < P <= 1100 mb, -100 <= T <= 60 ℃ で相互に逆変換となる
func Test_ToThermo_RoundTrip(t *testing.T) {
	for p := 1.0; p <= 1100.0; p += 13.7 {
		for tc := -100.0; tc <= 60.0; tc += 2.5 {
			x, y := FromThermo(tc, p)
			tc2, p2 := ToThermo(x, y)

			assert.InDelta(t, tc, tc2, 1e-9*math.Max(1, math.Abs(tc)), "T=%g P=%g", tc, p)
			assert.InEpsilon(t, p, p2, 1e-9, "T=%g P=%g", tc, p)

			x2, y2 := FromThermo(tc2, p2)
			assert.InDelta(t, x, x2, 1e-9*math.Max(1, math.Abs(x)))
			assert.InDelta(t, y, y2, 1e-9*math.Max(1, math.Abs(y)))
		}
	}

	// 非常に小さい気圧
	tc, p := ToThermo(FromThermo(-55.0, 1e-3))
	assert.InDelta(t, -55.0, tc, 1e-9*55)
	assert.InEpsilon(t, 1e-3, p, 1e-9)
}

func Test_FromThermo(t *testing.T) {
	x, y := FromThermo(26.85, 1000.0)
	assert.InDelta(t, XFromTP(26.85+bolton.CToK, 1000.0), x, 1e-12)
	assert.InDelta(t, YFromP(1000.0), y, 1e-12)
}

func Test_FromThermoVec(t *testing.T) {
	tc := []float64{20, 10, -5, -30, -60}
	p := []float64{1000, 850, 700, 500, 250}

	x, y, err := FromThermoVec(tc, p)
	require.NoError(t, err)
	require.Len(t, x, len(tc))
	require.Len(t, y, len(tc))

	for i := range tc {
		wx, wy := FromThermo(tc[i], p[i])
		assert.Equal(t, wx, x[i])
		assert.Equal(t, wy, y[i])
	}

	tc2, p2, err := ToThermoVec(x, y)
	require.NoError(t, err)
	for i := range tc {
		assert.InDelta(t, tc[i], tc2[i], 1e-9)
		assert.InEpsilon(t, p[i], p2[i], 1e-12)
	}
}

// 気圧がスカラーの場合も同じ長さの x, y を返す
func Test_FromThermoVec_Broadcast(t *testing.T) {
	x, y, err := FromThermoVec([]float64{-10, 0, 10}, []float64{500})
	require.NoError(t, err)
	assert.Len(t, x, 3)
	assert.Len(t, y, 3)
	assert.Equal(t, YFromP(500), y[2])

	tc, p, err := ToThermoVec(x, []float64{YFromP(500)})
	require.NoError(t, err)
	assert.Len(t, tc, 3)
	assert.Len(t, p, 3)
}

// 空の配列と長さ1の気圧は空の結果
func Test_ThermoVec_Empty(t *testing.T) {
	x, y, err := FromThermoVec([]float64{}, []float64{500})
	require.NoError(t, err)
	assert.Len(t, x, 0)
	assert.Len(t, y, 0)

	tc, p, err := ToThermoVec([]float64{}, []float64{-6})
	require.NoError(t, err)
	assert.Len(t, tc, 0)
	assert.Len(t, p, 0)
}

func Test_CoordsVec_Shape(t *testing.T) {
	_, _, err := FromThermoVec([]float64{1, 2, 3}, []float64{1000, 900})
	assert.True(t, errors.Is(err, bolton.ErrShape))

	_, _, err = ToThermoVec([]float64{1, 2}, []float64{-6, -6.5, -7})
	assert.True(t, errors.Is(err, bolton.ErrShape))
}

// 気圧が0以下の場合は対数の定義どおり
func Test_YFromP_NonPositive(t *testing.T) {
	assert.True(t, math.IsInf(YFromP(0), 1))
	assert.True(t, math.IsNaN(YFromP(-1)))
}
