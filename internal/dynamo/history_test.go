package dynamo_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pendsim/internal/dynamo"
)

var _ = Describe("History", func() {
	var h *dynamo.History

	BeforeEach(func() {
		h = dynamo.NewHistory(4)
	})

	It("starts empty", func() {
		Expect(h.Len()).To(Equal(0))
		_, ok := h.Last()
		Expect(ok).To(BeFalse())
	})

	It("keeps times and samples in lockstep", func() {
		h.Append(0, dynamo.Sample{X: -1, Y: 0})
		h.Append(0.001, dynamo.Sample{X: -0.9, Y: -0.1})
		h.Append(0.002, dynamo.Sample{X: -0.8, Y: -0.2})

		Expect(h.Len()).To(Equal(3))
		Expect(h.Times()).To(HaveLen(3))
		Expect(h.Samples()).To(HaveLen(3))
		Expect(h.At(1)).To(Equal(dynamo.Entry{Time: 0.001, Sample: dynamo.Sample{X: -0.9, Y: -0.1}}))

		last, ok := h.Last()
		Expect(ok).To(BeTrue())
		Expect(last.Time).To(Equal(0.002))
	})

	It("hands out copies", func() {
		h.Append(0, dynamo.Sample{X: -1})

		times := h.Times()
		times[0] = 42
		samples := h.Samples()
		samples[0].X = 42
		entries := h.Entries()
		entries[0].Time = 42

		Expect(h.At(0)).To(Equal(dynamo.Entry{Time: 0, Sample: dynamo.Sample{X: -1}}))
	})

	It("grows beyond its initial capacity", func() {
		for i := 0; i < 10; i++ {
			h.Append(float64(i), dynamo.Sample{})
		}
		Expect(h.Entries()).To(HaveLen(10))
	})

	It("tolerates a negative capacity", func() {
		Expect(dynamo.NewHistory(-1).Len()).To(Equal(0))
	})
})

var _ = Describe("ParamError", func() {
	It("wraps ErrParameterBounds", func() {
		err := error(&dynamo.ParamError{Field: "length", Value: -1, Reason: "must be positive"})
		Expect(errors.Is(err, dynamo.ErrParameterBounds)).To(BeTrue())
		Expect(err).To(MatchError("length must be positive, got -1"))
	})
})

var _ = Describe("DefaultConfig", func() {
	It("uses a 1 ms step and a 5 s limit", func() {
		cfg := dynamo.DefaultConfig()
		Expect(cfg.Dt).To(Equal(0.001))
		Expect(cfg.TimeLimit).To(Equal(5.0))
	})
})
