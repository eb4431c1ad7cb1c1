package wavelet

// Daubechies-4 lifting constants, from the Daubechies & Sweldens
// factorization. The final scale factors use a denominator of 2 rather
// than sqrt(2) so that the forward transform is normalized: the coarsest
// coefficient of a full transform approximates the mean of the input.
const (
	daub4A1 = 1.7320508075688772   // sqrt(3)
	daub4B1 = 0.4330127018922193   // sqrt(3)/4
	daub4B2 = -6.69872981077807e-2 // (sqrt(3) - 2)/4

	daub4K1 = 1.3660254037844386 // (sqrt(3) + 1)/2
	daub4K2 = 0.3660254037844386 // (sqrt(3) - 1)/2

	daub4IK1 = 0.7320508075688773 // 1/k1
	daub4IK2 = 2.7320508075688776 // 1/k2
)

// daub4LiftForwardStep applies one forward Daubechies-4 lifting level to a
// strided vector of even length width. Boundary wrap-around is periodic.
func daub4LiftForwardStep(s []float64, width, stride int, work []float64) error {
	if width < 2 {
		return nil
	}

	for i := 0; i < width; i++ {
		work[i] = s[i*stride]
	}

	for i := 1; i < width; i += 2 {
		work[i] -= daub4A1 * work[i-1]
	}
	for i := 0; i < width; i += 2 {
		work[i] += daub4B1*work[i+1] + daub4B2*work[(i+3)%width]
	}
	for i := 1; i < width; i += 2 {
		work[i] += work[(width+i-3)%width]
	}

	half := width / 2
	for i := 0; i < half; i++ {
		s[i*stride] = daub4K1 * work[2*i]
		s[(half+i)*stride] = daub4K2 * work[2*i+1]
	}

	return nil
}

// daub4LiftInverseStep reverses daub4LiftForwardStep at the given width.
func daub4LiftInverseStep(s []float64, width, stride int, work []float64) error {
	if width < 2 {
		return nil
	}

	half := width / 2
	for i := 0; i < half; i++ {
		work[2*i] = daub4IK1 * s[i*stride]
		work[2*i+1] = daub4IK2 * s[(half+i)*stride]
	}

	for i := 1; i < width; i += 2 {
		work[i] -= work[(width+i-3)%width]
	}
	for i := 0; i < width; i += 2 {
		work[i] -= daub4B1*work[i+1] + daub4B2*work[(i+3)%width]
	}
	for i := 1; i < width; i += 2 {
		work[i] += daub4A1 * work[i-1]
	}

	for i := 0; i < width; i++ {
		s[i*stride] = work[i]
	}

	return nil
}
