package export

import (
	"io"
	"strconv"

	"github.com/san-kum/pendsim/internal/dynamo"
)

// precision matches the default six significant digits of a plain
// stream float conversion.
const precision = 6

// TextWriter prints one `time=<t>\tx=<x>\ty=<y>` line per step.
type TextWriter struct {
	w   io.Writer
	buf []byte
	err error
}

func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w, buf: make([]byte, 0, 64)}
}

func (t *TextWriter) OnStep(_ dynamo.State, e dynamo.Entry) {
	if t.err != nil {
		return
	}
	t.buf = AppendLine(t.buf[:0], e)
	_, t.err = t.w.Write(t.buf)
}

// Err returns the first write error. Lines after a failed write are
// dropped.
func (t *TextWriter) Err() error { return t.err }

func AppendLine(dst []byte, e dynamo.Entry) []byte {
	dst = append(dst, "time="...)
	dst = strconv.AppendFloat(dst, e.Time, 'g', precision, 64)
	dst = append(dst, "\tx="...)
	dst = strconv.AppendFloat(dst, e.Sample.X, 'g', precision, 64)
	dst = append(dst, "\ty="...)
	dst = strconv.AppendFloat(dst, e.Sample.Y, 'g', precision, 64)
	return append(dst, '\n')
}

func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', precision, 64)
}
