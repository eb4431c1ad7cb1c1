package wavelet

// Direct-convolution DWT kernels. The families differ only in their tap
// tables, so a single kernel is parameterized by an immutable table: the
// analysis low-pass taps h, the derived high-pass taps g[k] = (-1)^k
// h[T-1-k], and the synthesis taps, which are the analysis taps times 2.
//
// The analysis taps are scaled by 1/sqrt(2) from the orthonormal values to
// match the normalization of the lifting families (DC gain 1 per level);
// the factor of 2 in the synthesis taps restores orthogonality on the
// inverse.

type dwtTaps struct {
	h, g   []float64 // analysis low-pass / high-pass
	hb, gb []float64 // synthesis, 2x analysis
}

func newDWTTaps(h []float64) dwtTaps {
	n := len(h)
	t := dwtTaps{
		h:  h,
		g:  make([]float64, n),
		hb: make([]float64, n),
		gb: make([]float64, n),
	}
	for k := 0; k < n; k++ {
		g := h[n-1-k]
		if k%2 == 1 {
			g = -g
		}
		t.g[k] = g
		t.hb[k] = 2.0 * h[k]
		t.gb[k] = 2.0 * g
	}
	return t
}

var (
	daub4Taps = newDWTTaps([]float64{
		0.34150635094610965,
		0.5915063509461096,
		0.15849364905389032,
		-9.150635094610965e-2,
	})

	daub8Taps = newDWTTaps([]float64{
		0.162901714025649180,
		0.505472857545914400,
		0.446100069123379800,
		-0.019787513117822320,
		-0.132253583684519870,
		0.021808150237088625,
		0.023251800535490877,
		-0.007493494665180735,
	})
)

// forwardStep convolves the strided vector with the analysis filter pair,
// downsampling by two with periodic extension: output i of the low half is
// the filter applied at position 2i.
func (t dwtTaps) forwardStep(s []float64, width, stride int, work []float64) error {
	if width < 2 {
		return nil
	}

	for i := 0; i < width; i++ {
		work[i] = s[i*stride]
	}

	half := width / 2
	for i := 0; i < half; i++ {
		var lo, hi float64
		for k := range t.h {
			v := work[BoundaryPeriodic(2*i+k, width)]
			lo += t.h[k] * v
			hi += t.g[k] * v
		}
		s[i*stride] = lo
		s[(half+i)*stride] = hi
	}

	return nil
}

// inverseStep reconstructs each output pair from even-shifted and
// odd-shifted taps of the synthesis filters. The de-interleaved scratch
// holds low-pass coefficients at even positions and high-pass at odd.
func (t dwtTaps) inverseStep(s []float64, width, stride int, work []float64) error {
	if width < 2 {
		return nil
	}

	half := width / 2
	for i := 0; i < half; i++ {
		work[2*i] = s[i*stride]
		work[2*i+1] = s[(half+i)*stride]
	}

	pairs := len(t.hb) / 2
	for i := 0; i < half; i++ {
		var even, odd float64
		for j := 0; j < pairs; j++ {
			lo := work[BoundaryPeriodic(2*i-2*j, width)]
			hi := work[BoundaryPeriodic(2*i-2*j+1, width)]
			even += t.hb[2*j]*lo + t.gb[2*j]*hi
			odd += t.hb[2*j+1]*lo + t.gb[2*j+1]*hi
		}
		s[2*i*stride] = even
		s[(2*i+1)*stride] = odd
	}

	return nil
}
