package export_test

import (
	"bytes"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pendsim/internal/dynamo"
	"github.com/san-kum/pendsim/internal/export"
	"github.com/san-kum/pendsim/internal/integrators"
	"github.com/san-kum/pendsim/internal/sim"
)

type failingWriter struct {
	calls int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errors.New("closed")
}

func wallHop() dynamo.Params {
	return dynamo.Params{Mass: 3.0, Length: 1.0, Theta: 80, V0: 1.0, Gravity: 9.8}
}

var _ = Describe("TextWriter", func() {
	It("formats a line with six significant digits", func() {
		line := export.AppendLine(nil, dynamo.Entry{
			Time:   0.0030000000000000005,
			Sample: dynamo.Sample{X: -0.17463122282911536, Y: -0.9846339096401301},
		})
		Expect(string(line)).To(Equal("time=0.003\tx=-0.174631\ty=-0.984634\n"))
	})

	It("uses exponent notation for tiny values", func() {
		Expect(export.FormatFloat(1e-05)).To(Equal("1e-05"))
		Expect(export.FormatFloat(5)).To(Equal("5"))
	})

	It("prints one line per step and skips the initial sample", func() {
		var buf bytes.Buffer
		integ := integrators.NewEuler(wallHop(), dynamo.DefaultConfig())
		s := sim.New(integ)
		w := export.NewTextWriter(&buf)
		s.AddObserver(w)

		result, err := s.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Err()).NotTo(HaveOccurred())

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		Expect(lines).To(HaveLen(result.Steps))
		Expect(lines[0]).To(Equal("time=0.001\tx=-0.174631\ty=-0.984634"))
		Expect(lines[len(lines)-1]).To(Equal("time=0.347\tx=-0.357601\ty=-0.933875"))
		for _, l := range lines {
			Expect(l).To(MatchRegexp(`^time=\S+\tx=\S+\ty=\S+$`))
		}
	})

	It("produces byte-identical output across runs", func() {
		render := func() string {
			var buf bytes.Buffer
			s := sim.New(integrators.NewEuler(wallHop(), dynamo.DefaultConfig()))
			s.AddObserver(export.NewTextWriter(&buf))
			_, err := s.Run()
			Expect(err).NotTo(HaveOccurred())
			return buf.String()
		}
		Expect(render()).To(Equal(render()))
	})

	It("stops writing after the first error", func() {
		fw := &failingWriter{}
		w := export.NewTextWriter(fw)

		w.OnStep(dynamo.State{}, dynamo.Entry{Time: 0.001})
		w.OnStep(dynamo.State{}, dynamo.Entry{Time: 0.002})

		Expect(w.Err()).To(MatchError("closed"))
		Expect(fw.calls).To(Equal(1))
	})
})
