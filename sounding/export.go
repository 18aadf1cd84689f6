package sounding

import (
	"bytes"
	"strconv"
)

// CSV形式
func (prof *Profile) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("P")
	buf.WriteString(",T")
	buf.WriteString(",Td")
	buf.WriteString(",W")
	buf.WriteString(",RH")
	buf.WriteString(",T_LCL")
	buf.WriteString(",theta")
	buf.WriteString(",theta_ep")
	buf.WriteString(",u")
	buf.WriteString(",v")
	buf.WriteString(",x")
	buf.WriteString(",x_dew")
	buf.WriteString(",y")
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for i := 0; i < len(prof.P); i++ {
		buf.WriteString(strconv.FormatFloat(prof.P[i], 'f', -1, 64))
		writeFloat(prof.T[i])
		writeFloat(prof.Td[i])
		writeFloat(prof.W[i])
		writeFloat(prof.RH[i])
		writeFloat(prof.TLCL[i])
		writeFloat(prof.Theta[i])
		writeFloat(prof.ThetaEP[i])
		writeFloat(prof.U[i])
		writeFloat(prof.V[i])
		writeFloat(prof.X[i])
		writeFloat(prof.XDew[i])
		writeFloat(prof.Y[i])
		buf.WriteString("\n")
	}
}
