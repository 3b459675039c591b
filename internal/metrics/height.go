package metrics

import (
	"github.com/san-kum/pendsim/internal/dynamo"
	"github.com/san-kum/pendsim/internal/physics"
)

// Height reports L sin(phi) of the last observed state, i.e. how far the
// mass has hopped when the run stops.
type Height struct {
	length float64
	value  float64
}

func NewHeight(length float64) *Height {
	return &Height{length: length}
}

func (h *Height) Name() string { return "height" }

func (h *Height) Observe(x dynamo.State, _ dynamo.Entry) {
	h.value = physics.Height(h.length, x.Phi)
}

func (h *Height) Value() float64 { return h.value }

func (h *Height) Reset() { h.value = 0 }
