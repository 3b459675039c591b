package dynamo

// History is the ordered sequence of samples produced by a run.
// Times and samples always have the same length.
type History struct {
	times   []float64
	samples []Sample
}

func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	return &History{
		times:   make([]float64, 0, capacity),
		samples: make([]Sample, 0, capacity),
	}
}

func (h *History) Append(t float64, s Sample) {
	h.times = append(h.times, t)
	h.samples = append(h.samples, s)
}

func (h *History) Len() int { return len(h.times) }

func (h *History) At(i int) Entry {
	return Entry{Time: h.times[i], Sample: h.samples[i]}
}

// Last returns the most recent entry. ok is false for an empty history.
func (h *History) Last() (e Entry, ok bool) {
	if len(h.times) == 0 {
		return Entry{}, false
	}
	return h.At(len(h.times) - 1), true
}

func (h *History) Entries() []Entry {
	entries := make([]Entry, len(h.times))
	for i := range h.times {
		entries[i] = h.At(i)
	}
	return entries
}

func (h *History) Times() []float64 {
	c := make([]float64, len(h.times))
	copy(c, h.times)
	return c
}

func (h *History) Samples() []Sample {
	c := make([]Sample, len(h.samples))
	copy(c, h.samples)
	return c
}
