package skewt

import (
	"bytes"
	"strconv"
)

// 参照線を CSV 形式で出力します。
// 列: family, level, x, y
// family は isobar, isotherm, dry_adiabat, mixing_ratio のいずれかです。
func (d *Diagram) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("family,level,x,y\n")

	writeCurves(buf, "isobar", d.Isobars)
	writeCurves(buf, "isotherm", d.Isotherms)
	writeCurves(buf, "dry_adiabat", d.DryAdiabats)
	writeCurves(buf, "mixing_ratio", d.MixingRatios)
}

func writeCurves(buf *bytes.Buffer, family string, curves []Curve) {
	for _, c := range curves {
		level := formatFloat(c.Level)
		for i := range c.X {
			buf.WriteString(family)
			buf.WriteString(",")
			buf.WriteString(level)
			buf.WriteString(",")
			buf.WriteString(formatFloat(c.X[i]))
			buf.WriteString(",")
			buf.WriteString(formatFloat(c.Y[i]))
			buf.WriteString("\n")
		}
	}
}

// 偽相当温位の場を CSV 形式で出力します。
// 列: x, y, theta_ep。計算できない格子点は NaN を出力します。
func (f *Field) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("x,y,theta_ep\n")

	for i, y := range f.Y {
		for j, x := range f.X {
			buf.WriteString(formatFloat(x))
			buf.WriteString(",")
			buf.WriteString(formatFloat(y))
			buf.WriteString(",")
			buf.WriteString(formatFloat(f.ThetaEP.At(i, j)))
			buf.WriteString("\n")
		}
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
