package lib

import "math"
import "strconv"

// AverageInt64 accumulates running statistics over int64 samples, no
// retention of individual samples. Not safe for concurrent use, keep
// one per goroutine and Merge them at the end.
type AverageInt64 struct {
	n      int64
	minval int64
	maxval int64
	sum    int64
	sumsq  float64
	init   bool
}

// Add a sample to the accumulator.
func (av *AverageInt64) Add(sample int64) {
	av.n++
	av.sum += sample
	f := float64(sample)
	av.sumsq += f * f
	if av.init == false || sample < av.minval {
		av.minval = sample
		av.init = true
	}
	if av.maxval < sample {
		av.maxval = sample
	}
}

// Merge another accumulator into this one.
func (av *AverageInt64) Merge(other *AverageInt64) {
	if other.n == 0 {
		return
	}
	if av.init == false || other.minval < av.minval {
		av.minval = other.minval
		av.init = true
	}
	if av.maxval < other.maxval {
		av.maxval = other.maxval
	}
	av.n += other.n
	av.sum += other.sum
	av.sumsq += other.sumsq
}

func (av *AverageInt64) Min() int64 {
	return av.minval
}

func (av *AverageInt64) Max() int64 {
	return av.maxval
}

func (av *AverageInt64) Samples() int64 {
	return av.n
}

func (av *AverageInt64) Total() int64 {
	return av.sum
}

func (av *AverageInt64) Mean() int64 {
	if av.n == 0 {
		return 0
	}
	return int64(float64(av.sum) / float64(av.n))
}

func (av *AverageInt64) Variance() float64 {
	if av.n == 0 {
		return 0
	}
	n_f, mean_f := float64(av.n), float64(av.Mean())
	return (av.sumsq / n_f) - (mean_f * mean_f)
}

func (av *AverageInt64) Sd() float64 {
	if av.n == 0 {
		return 0
	}
	return math.Sqrt(av.Variance())
}

// Stats return a snapshot of the accumulator as a settings-friendly
// map.
func (av *AverageInt64) Stats() map[string]interface{} {
	return map[string]interface{}{
		"samples":     av.Samples(),
		"min":         av.Min(),
		"max":         av.Max(),
		"mean":        av.Mean(),
		"variance":    av.Variance(),
		"stddeviance": av.Sd(),
	}
}

// HistogramInt64 accumulates running statistics plus a bucketed
// distribution. Samples below `from` land in the first bucket, at or
// above `till` in the last, the rest in `width` sized buckets.
type HistogramInt64 struct {
	AverageInt64
	histogram []int64
	from      int64
	till      int64
	width     int64
}

// NewhistogramInt64 create a histogram over [from, till) with the
// bounds rounded down to a multiple of width.
func NewhistogramInt64(from, till, width int64) *HistogramInt64 {
	from = (from / width) * width
	till = (till / width) * width
	h := &HistogramInt64{from: from, till: till, width: width}
	h.histogram = make([]int64, 1+((till-from)/width)+1)
	return h
}

// Add a sample to the histogram.
func (h *HistogramInt64) Add(sample int64) {
	h.AverageInt64.Add(sample)
	if sample < h.from {
		h.histogram[0]++
	} else if sample >= h.till {
		h.histogram[len(h.histogram)-1]++
	} else {
		h.histogram[((sample-h.from)/h.width)+1]++
	}
}

// Merge another histogram into this one, bucket setups must match.
func (h *HistogramInt64) Merge(other *HistogramInt64) {
	h.AverageInt64.Merge(&other.AverageInt64)
	for i, v := range other.histogram {
		h.histogram[i] += v
	}
}

// Buckets return cumulative counts keyed by each bucket's exclusive
// upper bound, so a key maps to the number of samples below it, with
// "+" holding the grand total. Empty tail buckets are skipped.
func (h *HistogramInt64) Buckets() map[string]int64 {
	m := make(map[string]int64)
	cumm := int64(0)
	for i := len(h.histogram) - 1; i >= 0; i-- {
		if h.histogram[i] == 0 {
			continue
		}
		for j := 0; j <= i; j++ {
			v := h.histogram[j]
			key := strconv.Itoa(int(h.from + (int64(j) * h.width)))
			cumm += v
			if j == i {
				m["+"] = cumm
			} else {
				m[key] = cumm
			}
		}
		break
	}
	return m
}

// Fullstats return the accumulator snapshot together with the bucket
// distribution.
func (h *HistogramInt64) Fullstats() map[string]interface{} {
	hmap := make(map[string]interface{})
	for k, v := range h.Buckets() {
		hmap[k] = v
	}
	stats := h.AverageInt64.Stats()
	stats["histogram"] = hmap
	return stats
}
