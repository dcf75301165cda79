package lib

import "testing"

import "github.com/stretchr/testify/require"

func TestAverageInt64(t *testing.T) {
	av := &AverageInt64{}
	require.Equal(t, int64(0), av.Mean())
	require.Equal(t, float64(0), av.Variance())
	require.Equal(t, float64(0), av.Sd())

	for i := int64(1); i <= 100; i++ {
		av.Add(i)
	}
	require.Equal(t, int64(100), av.Samples())
	require.Equal(t, int64(1), av.Min())
	require.Equal(t, int64(100), av.Max())
	require.Equal(t, int64(5050), av.Total())
	require.Equal(t, int64(50), av.Mean())

	stats := av.Stats()
	require.Equal(t, int64(100), stats["samples"])
	require.Equal(t, int64(50), stats["mean"])
}

func TestAverageMerge(t *testing.T) {
	left, right := &AverageInt64{}, &AverageInt64{}
	whole := &AverageInt64{}
	for i := int64(1); i <= 100; i++ {
		whole.Add(i)
		if i <= 50 {
			left.Add(i)
		} else {
			right.Add(i)
		}
	}
	left.Merge(right)
	require.Equal(t, whole.Samples(), left.Samples())
	require.Equal(t, whole.Min(), left.Min())
	require.Equal(t, whole.Max(), left.Max())
	require.Equal(t, whole.Total(), left.Total())
	require.Equal(t, whole.Variance(), left.Variance())
}

func TestHistogramInt64(t *testing.T) {
	h := NewhistogramInt64(10, 100, 10)
	for i := int64(0); i < 120; i++ {
		h.Add(i)
	}
	require.Equal(t, int64(120), h.Samples())
	require.Equal(t, int64(0), h.Min())
	require.Equal(t, int64(119), h.Max())

	buckets := h.Buckets()
	require.Equal(t, int64(120), buckets["+"])
	require.Equal(t, int64(10), buckets["10"])
	require.Equal(t, int64(20), buckets["20"])

	full := h.Fullstats()
	require.Equal(t, int64(120), full["samples"])
	require.NotNil(t, full["histogram"])
}

func TestHistogramMerge(t *testing.T) {
	left := NewhistogramInt64(0, 100, 10)
	right := NewhistogramInt64(0, 100, 10)
	whole := NewhistogramInt64(0, 100, 10)
	for i := int64(0); i < 100; i++ {
		whole.Add(i)
		if (i % 2) == 0 {
			left.Add(i)
		} else {
			right.Add(i)
		}
	}
	left.Merge(right)
	require.Equal(t, whole.Samples(), left.Samples())
	require.Equal(t, whole.Buckets(), left.Buckets())
}
