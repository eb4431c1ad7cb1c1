package wavelet

// Haar lifting steps. The predict step replaces each odd sample with its
// difference from the preceding even sample; the update step replaces each
// even sample with the pair average. The detail half-band is stored scaled
// by -1/2 so that the inverse can restore the pair exactly.

// haarForwardStep applies one forward Haar level to a strided vector of
// even length width.
func haarForwardStep(s []float64, width, stride int, work []float64) error {
	if width < 2 {
		return nil
	}

	for i := 0; i < width; i++ {
		work[i] = s[i*stride]
	}

	for i := 1; i < width; i += 2 {
		work[i] -= work[i-1]
	}
	for i := 0; i < width; i += 2 {
		work[i] += 0.5 * work[i+1]
	}

	half := width / 2
	for i := 0; i < half; i++ {
		s[i*stride] = work[2*i]
		s[(half+i)*stride] = -0.5 * work[2*i+1]
	}

	return nil
}

// haarInverseStep reverses haarForwardStep at the given width.
func haarInverseStep(s []float64, width, stride int, work []float64) error {
	if width < 2 {
		return nil
	}

	half := width / 2
	for i := 0; i < half; i++ {
		work[2*i] = s[i*stride]
		work[2*i+1] = -2.0 * s[(half+i)*stride]
	}

	for i := 0; i < width; i += 2 {
		work[i] -= 0.5 * work[i+1]
	}
	for i := 1; i < width; i += 2 {
		work[i] += work[i-1]
	}

	for i := 0; i < width; i++ {
		s[i*stride] = work[i]
	}

	return nil
}
