package wavelet

// CDF 9/7 lifting constants (ITU-T Rec. T.800). The scale step is split so
// that the analysis low-pass filter has DC gain 1 and the analysis
// high-pass sits at half the T.800 scale; the inverse compensates with the
// reciprocal factors. With periodic extension the lifting sequence is
// numerically identical to convolving with the 9-tap/7-tap analysis pair.
const (
	cdf97Alpha = -1.586134342059924 // predict 1
	cdf97Beta  = -0.052980118572961 // update 1
	cdf97Gamma = 0.882911075530934  // predict 2
	cdf97Delta = 0.443506852043971  // update 2

	cdf97K    = 1.230174104914001
	cdf97InvK = 0.812893066115961

	cdf97LowForward  = cdf97InvK       // 1/K
	cdf97HighForward = cdf97K / 2.0    // K/2
	cdf97LowInverse  = cdf97K          // K
	cdf97HighInverse = 2.0 * cdf97InvK // 2/K
)

// cdf97ForwardStep applies one forward CDF 9/7 level to a strided vector
// of even length width, with periodic wrap-around at both ends.
func cdf97ForwardStep(s []float64, width, stride int, work []float64) error {
	if width < 2 {
		return nil
	}

	for i := 0; i < width; i++ {
		work[i] = s[i*stride]
	}

	// Predict 1
	for i := 1; i < width-1; i += 2 {
		work[i] += cdf97Alpha * (work[i-1] + work[i+1])
	}
	work[width-1] += cdf97Alpha * (work[width-2] + work[0])

	// Update 1
	work[0] += cdf97Beta * (work[width-1] + work[1])
	for i := 2; i < width; i += 2 {
		work[i] += cdf97Beta * (work[i-1] + work[i+1])
	}

	// Predict 2
	for i := 1; i < width-1; i += 2 {
		work[i] += cdf97Gamma * (work[i-1] + work[i+1])
	}
	work[width-1] += cdf97Gamma * (work[width-2] + work[0])

	// Update 2
	work[0] += cdf97Delta * (work[width-1] + work[1])
	for i := 2; i < width; i += 2 {
		work[i] += cdf97Delta * (work[i-1] + work[i+1])
	}

	// Scale and de-interleave
	half := width / 2
	for i := 0; i < half; i++ {
		s[i*stride] = cdf97LowForward * work[2*i]
		s[(half+i)*stride] = cdf97HighForward * work[2*i+1]
	}

	return nil
}

// cdf97InverseStep reverses cdf97ForwardStep at the given width.
func cdf97InverseStep(s []float64, width, stride int, work []float64) error {
	if width < 2 {
		return nil
	}

	// Interleave and undo scaling
	half := width / 2
	for i := 0; i < half; i++ {
		work[2*i] = cdf97LowInverse * s[i*stride]
		work[2*i+1] = cdf97HighInverse * s[(half+i)*stride]
	}

	// Undo update 2
	work[0] -= cdf97Delta * (work[width-1] + work[1])
	for i := 2; i < width; i += 2 {
		work[i] -= cdf97Delta * (work[i-1] + work[i+1])
	}

	// Undo predict 2
	for i := 1; i < width-1; i += 2 {
		work[i] -= cdf97Gamma * (work[i-1] + work[i+1])
	}
	work[width-1] -= cdf97Gamma * (work[width-2] + work[0])

	// Undo update 1
	work[0] -= cdf97Beta * (work[width-1] + work[1])
	for i := 2; i < width; i += 2 {
		work[i] -= cdf97Beta * (work[i-1] + work[i+1])
	}

	// Undo predict 1
	for i := 1; i < width-1; i += 2 {
		work[i] -= cdf97Alpha * (work[i-1] + work[i+1])
	}
	work[width-1] -= cdf97Alpha * (work[width-2] + work[0])

	for i := 0; i < width; i++ {
		s[i*stride] = work[i]
	}

	return nil
}
