package skewt

import (
	"fmt"
	"math"

	"github.com/hhkbp2/go-logging"
	"github.com/udawtr/skewt-go/bolton"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// 参照線1本分の平面座標
type Curve struct {
	Level float64 // 参照線の値 (等圧線 [mb], 等温線 [℃], 乾燥断熱線 [K], 等飽和混合比線 [g/kg])
	X     []float64
	Y     []float64
}

// 湿潤断熱線を等値線として描くための偽相当温位の場
type Field struct {
	X       []float64  // 列ごとの x 座標
	Y       []float64  // 行ごとの y 座標
	ThetaEP *mat.Dense // 偽相当温位 [K] (行: y, 列: x)。計算できない格子点は NaN
	Levels  []float64  // 等値線を引く偽相当温位 [K]
}

// skew-T 図の背景データ。NewDiagram で一度だけ作成し、以後は変更しません。
type Diagram struct {
	Config Config

	// 図の範囲 (左下と右上)
	XMin, YMin float64
	XMax, YMax float64

	// 曲線を描く気圧列 [mb] と対応する y 座標
	PAll []float64
	YAll []float64

	Isobars       []Curve
	Isotherms     []Curve
	DryAdiabats   []Curve
	MixingRatios  []Curve
	MoistAdiabats Field
}

// 設定 cfg から図の背景データを作成します。
// 参照線の種類ごとに独立しているため並行して計算します。
func NewDiagram(cfg Config) (*Diagram, error) {
	logger := logging.GetLogger("skewt")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid diagram config: %w", err)
	}

	d := &Diagram{Config: cfg}
	d.XMin, d.YMin = FromThermo(cfg.TMin, cfg.PBottom)
	d.XMax, d.YMax = FromThermo(cfg.TMax, cfg.PTop)

	d.PAll = pressureLevels(cfg.PBottom, cfg.PTop, cfg.PStep)
	d.YAll = YFromPVec(d.PAll)

	var g errgroup.Group
	g.Go(func() error {
		d.Isobars = d.isobars()
		return nil
	})
	g.Go(func() (err error) {
		d.Isotherms, err = d.isotherms()
		return err
	})
	g.Go(func() (err error) {
		d.DryAdiabats, err = d.dryAdiabats()
		return err
	})
	g.Go(func() (err error) {
		d.MixingRatios, err = d.mixingRatios()
		return err
	})
	g.Go(func() (err error) {
		d.MoistAdiabats, err = d.moistAdiabats()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build diagram: %w", err)
	}

	logger.Debugf("diagram x=[%.3f, %.3f] y=[%.3f, %.3f], %d pressure levels",
		d.XMin, d.XMax, d.YMin, d.YMax, len(d.PAll))
	logger.Debugf("%d isobars, %d isotherms, %d dry adiabats, %d mixing ratio lines, %dx%d moist field",
		len(d.Isobars), len(d.Isotherms), len(d.DryAdiabats), len(d.MixingRatios),
		len(d.MoistAdiabats.Y), len(d.MoistAdiabats.X))

	return d, nil
}

// 平面座標 (x, y) が図の範囲内かどうか
func (d *Diagram) Contains(x float64, y float64) bool {
	return d.XMin <= x && x <= d.XMax && d.YMin <= y && y <= d.YMax
}

// pBottom から pTop に向かって step 刻みの気圧列 [mb]
func pressureLevels(pBottom, pTop, step float64) []float64 {
	n := int(math.Floor((pBottom-pTop)/step+1e-9)) + 1
	last := pBottom - float64(n-1)*step
	return floats.Span(make([]float64, n), pBottom, last)
}

// 等圧線は図の左端から右端までの水平線
func (d *Diagram) isobars() []Curve {
	curves := make([]Curve, len(d.Config.Isobars))
	for i, p := range d.Config.Isobars {
		y := YFromP(p)
		curves[i] = Curve{
			Level: p,
			X:     []float64{d.XMin, d.XMax},
			Y:     []float64{y, y},
		}
	}
	return curves
}

func (d *Diagram) isotherms() ([]Curve, error) {
	curves := make([]Curve, len(d.Config.Isotherms))
	for i, tc := range d.Config.Isotherms {
		x, err := XFromTPVec([]float64{tc + bolton.CToK}, d.PAll)
		if err != nil {
			return nil, fmt.Errorf("isotherm %g C: %w", tc, err)
		}
		curves[i] = Curve{Level: tc, X: x, Y: append([]float64(nil), d.YAll...)}
	}
	return curves, nil
}

func (d *Diagram) dryAdiabats() ([]Curve, error) {
	curves := make([]Curve, len(d.Config.DryAdiabats))
	for i, theta := range d.Config.DryAdiabats {
		tk, err := bolton.DryAdiabatTVec([]float64{theta}, d.PAll, d.Config.ReferencePressure)
		if err != nil {
			return nil, fmt.Errorf("dry adiabat %g K: %w", theta, err)
		}
		x, err := XFromTPVec(tk, d.PAll)
		if err != nil {
			return nil, fmt.Errorf("dry adiabat %g K: %w", theta, err)
		}
		curves[i] = Curve{Level: theta, X: x, Y: append([]float64(nil), d.YAll...)}
	}
	return curves, nil
}

// 等飽和混合比線は MixingRatioPTop 以上の気圧でのみ描く
func (d *Diagram) mixingRatios() ([]Curve, error) {
	var p []float64
	for _, v := range d.PAll {
		if v >= d.Config.MixingRatioPTop {
			p = append(p, v)
		}
	}
	y := YFromPVec(p)

	curves := make([]Curve, len(d.Config.MixingRatios))
	for i, w := range d.Config.MixingRatios {
		// g/kg -> kg/kg
		tc, err := bolton.MixingRatioLineVec(p, []float64{w / 1000})
		if err != nil {
			return nil, fmt.Errorf("mixing ratio %g g/kg: %w", w, err)
		}
		tk := append([]float64(nil), tc...)
		floats.AddConst(bolton.CToK, tk)

		x, err := XFromTPVec(tk, p)
		if err != nil {
			return nil, fmt.Errorf("mixing ratio %g g/kg: %w", w, err)
		}
		curves[i] = Curve{Level: w, X: x, Y: y}
	}
	return curves, nil
}

// 図の範囲の格子点で飽和を仮定した偽相当温位を求める
func (d *Diagram) moistAdiabats() (Field, error) {
	nx, ny := d.Config.FieldNX, d.Config.FieldNY

	xs := floats.Span(make([]float64, nx), d.XMin, d.XMax)
	ys := floats.Span(make([]float64, ny), d.YMin, d.YMax)

	tc := mat.NewDense(ny, nx, nil)
	p := mat.NewDense(ny, nx, nil)
	for i, y := range ys {
		for j, x := range xs {
			t, pres := ToThermo(x, y)
			tc.Set(i, j, t)
			p.Set(i, j, pres)
		}
	}

	thetaEP, err := bolton.ThetaEPGrid(tc, p, d.Config.ReferencePressure)
	if err != nil {
		return Field{}, fmt.Errorf("moist adiabat field: %w", err)
	}

	return Field{
		X:       xs,
		Y:       ys,
		ThetaEP: thetaEP,
		Levels:  append([]float64(nil), d.Config.MoistAdiabats...),
	}, nil
}
