package sounding

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/hhkbp2/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udawtr/skewt-go/bolton"
	"github.com/udawtr/skewt-go/skewt"
)

func Test_Derive(t *testing.T) {
	s := testSounding(t)

	prof, err := s.Derive(bolton.ReferencePressure)
	require.NoError(t, err)

	// 地上の混合比は露点温度での飽和混合比
	assert.InDelta(t, 0.0107829, prof.W[0], 1e-6)
	assert.InDelta(t, 52.9982, prof.RH[0], 1e-3)

	for i := 0; i < s.Len(); i++ {
		w, err := bolton.SaturationMixingRatio(s.P[i], s.Td[i])
		require.NoError(t, err)
		assert.Equal(t, w, prof.W[i])

		thetaEP, err := bolton.PseudoequivalentPotentialTemperature(s.T[i], s.P[i], w, bolton.ReferencePressure)
		require.NoError(t, err)
		assert.Equal(t, thetaEP, prof.ThetaEP[i])

		// 未飽和の層は凝結高度の温度が気温より低い
		assert.Less(t, prof.TLCL[i], s.T[i]+bolton.CToK)
		assert.Greater(t, prof.ThetaEP[i], prof.Theta[i])

		x, y := skewt.FromThermo(s.T[i], s.P[i])
		assert.Equal(t, x, prof.X[i])
		assert.Equal(t, y, prof.Y[i])

		xd, _ := skewt.FromThermo(s.Td[i], s.P[i])
		assert.Equal(t, xd, prof.XDew[i])
		assert.Less(t, prof.XDew[i], prof.X[i])
	}

	// 温位は上空ほど高い (安定成層)
	for i := 1; i < s.Len(); i++ {
		assert.Greater(t, prof.Theta[i], prof.Theta[i-1])
	}

	// 南風 (180°) は北向きの成分
	assert.InDelta(t, 0.0, prof.U[0], 1e-9)
	assert.InDelta(t, 5.0, prof.V[0], 1e-9)
}

// 計算できない層は NaN とし、他の層は計算する
func Test_Derive_UndefinedLevel(t *testing.T) {
	s, err := New(
		[]float64{1000, 100},
		[]float64{0, 16000},
		[]float64{20, 60},
		[]float64{10, 55},
		[]float64{0, 0},
		[]float64{0, 0},
	)
	require.NoError(t, err)

	prof, err := s.Derive(bolton.ReferencePressure)
	require.NoError(t, err)

	assert.False(t, math.IsNaN(prof.ThetaEP[0]))
	assert.True(t, math.IsNaN(prof.W[1]))
	assert.True(t, math.IsNaN(prof.ThetaEP[1]))
	assert.False(t, math.IsNaN(prof.Theta[1]))
}

// ログ出力を記録する Stream
type recordStream struct {
	lines []string
}

func (s *recordStream) Tell() (int64, error) { return int64(len(s.lines)), nil }
func (s *recordStream) Write(str string) error {
	s.lines = append(s.lines, strings.TrimSpace(str))
	return nil
}
func (s *recordStream) Flush() error { return nil }
func (s *recordStream) Close() error { return nil }

// 計算できない層ごとに警告が1件出る
func Test_Derive_UndefinedLevelLogged(t *testing.T) {
	logger := logging.GetLogger("skewt")
	level := logger.GetLevel()
	logger.SetLevel(logging.LevelWarn)
	defer logger.SetLevel(level)

	stream := &recordStream{}
	handler := logging.NewStreamHandler("test", logging.LevelNotset, stream)
	handler.SetFormatter(logging.NewStandardFormatter("%(levelname)s %(message)s", ""))
	logger.AddHandler(handler)
	defer logger.RemoveHandler(handler)

	s, err := New(
		[]float64{1000, 100},
		[]float64{0, 16000},
		[]float64{20, 60},
		[]float64{10, 55},
		[]float64{0, 0},
		[]float64{0, 0},
	)
	require.NoError(t, err)

	_, err = s.Derive(bolton.ReferencePressure)
	require.NoError(t, err)

	require.Len(t, stream.lines, 1)
	assert.True(t, strings.HasPrefix(stream.lines[0], "WARN level 1 (100 mb)"), stream.lines[0])

	// 全層が計算できる場合は警告なし
	stream.lines = nil
	_, err = testSounding(t).Derive(bolton.ReferencePressure)
	require.NoError(t, err)
	assert.Empty(t, stream.lines)
}

func Test_Profile_ToCSV(t *testing.T) {
	prof, err := testSounding(t).Derive(bolton.ReferencePressure)
	require.NoError(t, err)

	var buf bytes.Buffer
	prof.ToCSV(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "P,T,Td,W,RH,T_LCL,theta,theta_ep,u,v,x,x_dew,y", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1000,25,15,"))
	assert.Len(t, strings.Split(lines[6], ","), 13)
}
