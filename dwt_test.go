package wavelet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDaub4TapClosedForms derives the Daubechies-4 analysis taps from
// their closed forms: the orthonormal values (1±sqrt(3))/(4 sqrt(2))
// scaled by a further 1/sqrt(2).
func TestDaub4TapClosedForms(t *testing.T) {
	s3 := math.Sqrt(3.0)
	want := []float64{
		(1.0 + s3) / 8.0,
		(3.0 + s3) / 8.0,
		(3.0 - s3) / 8.0,
		(1.0 - s3) / 8.0,
	}
	for k, h := range daub4Taps.h {
		require.InDelta(t, want[k], h, 1e-15, "tap %d", k)
	}
	// High-pass is the alternating-sign reversal
	for k := range daub4Taps.g {
		g := daub4Taps.h[3-k]
		if k%2 == 1 {
			g = -g
		}
		require.InDelta(t, g, daub4Taps.g[k], 1e-15, "tap %d", k)
	}
	// Synthesis taps carry the factor of 2 that restores orthogonality
	for k := range daub4Taps.hb {
		require.InDelta(t, 2.0*daub4Taps.h[k], daub4Taps.hb[k], 1e-15)
		require.InDelta(t, 2.0*daub4Taps.g[k], daub4Taps.gb[k], 1e-15)
	}
}

func TestDWTTapDCGain(t *testing.T) {
	for _, taps := range []dwtTaps{daub4Taps, daub8Taps} {
		var hsum, gsum float64
		for k := range taps.h {
			hsum += taps.h[k]
			gsum += taps.g[k]
		}
		require.InDelta(t, 1.0, hsum, 1e-12)
		require.InDelta(t, 0.0, gsum, 1e-12)
	}
}

// referenceDWTStep is an independent formulation of one analysis level:
// direct convolution with periodic extension and downsampling by two.
func referenceDWTStep(taps dwtTaps, s []float64) []float64 {
	width := len(s)
	out := make([]float64, width)
	for i := 0; i < width/2; i++ {
		var lo, hi float64
		for k := range taps.h {
			v := s[BoundaryPeriodic(2*i+k, width)]
			lo += taps.h[k] * v
			hi += taps.g[k] * v
		}
		out[i] = lo
		out[width/2+i] = hi
	}
	return out
}

func TestDWTForwardStepMatchesConvolution(t *testing.T) {
	const width = 64

	tests := []struct {
		filter Filter
		taps   dwtTaps
	}{
		{Daub4DWT, daub4Taps},
		{Daub8DWT, daub8Taps},
	}

	for _, tt := range tests {
		t.Run(tt.filter.String(), func(t *testing.T) {
			data := make([]float64, width)
			for i := range data {
				data[i] = 0.1 * float64(i)
			}
			want := referenceDWTStep(tt.taps, data)

			work := make([]float64, width)
			require.NoError(t, Forward1DStep(tt.filter, data, width, 1, work))

			for i := range want {
				require.InDelta(t, want[i], data[i], 1e-6, "position %d", i)
			}
		})
	}
}

func TestDWTStepRoundTrip(t *testing.T) {
	for _, f := range []Filter{Daub4DWT, Daub8DWT} {
		for _, width := range []int{8, 16, 64} {
			data := randomData(width, int64(width))
			orig := append([]float64(nil), data...)
			work := make([]float64, width)

			require.NoError(t, Forward1DStep(f, data, width, 1, work))
			require.NoError(t, Inverse1DStep(f, data, width, 1, work))
			requireClose(t, orig, data)
		}
	}
}

// TestDaub4DWT2DNonSquareConstant: 32x16 constant buffer collapses to a
// single coefficient and reconstructs.
func TestDaub4DWT2DNonSquareConstant(t *testing.T) {
	const w, h = 32, 16
	const c = 3.14

	data := make([]float64, w*h)
	for i := range data {
		data[i] = c
	}
	work := make([]float64, w)

	require.NoError(t, Forward2D(Daub4DWT, data, w, h, w, work, false))

	require.InDelta(t, c, data[0], 1e-6)
	for i := 1; i < len(data); i++ {
		require.InDelta(t, 0.0, data[i], 1e-6, "position %d", i)
	}

	require.NoError(t, Inverse2D(Daub4DWT, data, w, h, w, work, false))
	for i := range data {
		require.InDelta(t, c, data[i], 1e-6, "position %d", i)
	}
}

func TestDaub8DWTSinusoidRoundTrip(t *testing.T) {
	const width = 128

	data := make([]float64, width)
	for i := range data {
		data[i] = math.Sin(2.0 * math.Pi * float64(i) / 16.0)
	}
	orig := append([]float64(nil), data...)
	work := make([]float64, width)

	require.NoError(t, Forward1D(Daub8DWT, data, width, 1, work))
	requireFinite(t, data)
	require.NoError(t, Inverse1D(Daub8DWT, data, width, 1, work))
	requireClose(t, orig, data)
}
