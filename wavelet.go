// Package wavelet implements in-place multiresolution wavelet transforms
// for dense float64 arrays in one, two and three dimensions.
//
// Five filter families are provided:
//   - Haar (lifting scheme)
//   - Daubechies-4 (lifting scheme)
//   - Daubechies-4 (direct convolution with periodic extension)
//   - Daubechies-8 (direct convolution with periodic extension)
//   - CDF 9/7 (lifting scheme with periodic extension)
//
// All transforms operate in place on a caller-owned buffer addressed by
// explicit extents and strides, using a caller-supplied scratch slice whose
// length must be at least the largest active extent. After one forward level
// along an axis of even length n, indices [0, n/2) hold the low-pass
// coefficients and [n/2, n) the high-pass coefficients; the full
// multiresolution forward transform of a square 2D buffer leaves the
// coarsest approximation at (0,0) with detail coefficients in the standard
// Mallat quadrant layout.
//
// Extents must be positive powers of two. They need not be equal across
// axes: the multiresolution drivers descend jointly while every active
// extent exceeds one and then finish the longer axes with lower-dimensional
// sweeps, unless the subtile flag suppresses the finishing sweeps to keep
// coefficient blocks aligned to the coarsest common level. Forward and
// inverse calls must use matching subtile values.
//
// Basic usage:
//
//	data := make([]float64, 64*64)
//	work := make([]float64, 64)
//	// ... fill data ...
//	if err := wavelet.Forward2D(wavelet.CDF97, data, 64, 64, 64, work, false); err != nil {
//	    log.Fatal(err)
//	}
package wavelet

import (
	"errors"
	"fmt"
)

// Filter selects a wavelet filter family.
type Filter int

const (
	// Haar is the Haar wavelet in lifting form.
	Haar Filter = iota
	// Daub4Lift is the Daubechies-4 wavelet in lifting form.
	Daub4Lift
	// Daub4DWT is the Daubechies-4 wavelet in direct convolution form.
	Daub4DWT
	// Daub8DWT is the Daubechies-8 wavelet in direct convolution form.
	Daub8DWT
	// CDF97 is the Cohen-Daubechies-Feauveau 9/7 wavelet in lifting form
	// with periodic boundary extension.
	CDF97

	numFilters
)

// String returns the string representation of the filter family.
func (f Filter) String() string {
	switch f {
	case Haar:
		return "haar"
	case Daub4Lift:
		return "daub4-lift"
	case Daub4DWT:
		return "daub4-dwt"
	case Daub8DWT:
		return "daub8-dwt"
	case CDF97:
		return "cdf97"
	default:
		return "unknown"
	}
}

// ErrUnknownFilter is returned when a transform is requested for a filter
// constant outside the defined families.
var ErrUnknownFilter = errors.New("wavelet: unknown filter")

// stepFunc applies one transform level to a strided vector of even length,
// using work as scratch. Implementations treat widths below two as a no-op.
type stepFunc func(s []float64, width, stride int, work []float64) error

// kernel bundles the single-level forward and inverse maps of one family.
// Families whose original formulation has no subtile variant run the
// multiresolution drivers with the finishing sweeps always enabled.
type kernel struct {
	forward stepFunc
	inverse stepFunc
	subtile bool
}

var kernels = [numFilters]kernel{
	Haar:      {forward: haarForwardStep, inverse: haarInverseStep, subtile: true},
	Daub4Lift: {forward: daub4LiftForwardStep, inverse: daub4LiftInverseStep, subtile: false},
	Daub4DWT:  {forward: daub4Taps.forwardStep, inverse: daub4Taps.inverseStep, subtile: true},
	Daub8DWT:  {forward: daub8Taps.forwardStep, inverse: daub8Taps.inverseStep, subtile: true},
	CDF97:     {forward: cdf97ForwardStep, inverse: cdf97InverseStep, subtile: true},
}

func (f Filter) kernel() (kernel, error) {
	if f < 0 || f >= numFilters {
		return kernel{}, fmt.Errorf("%w: %d", ErrUnknownFilter, int(f))
	}
	return kernels[f], nil
}

// Forward1D applies the full multiresolution forward transform to a strided
// vector of length width, halving the low-pass band until it reaches one.
func Forward1D(f Filter, s []float64, width, stride int, work []float64) error {
	k, err := f.kernel()
	if err != nil {
		return err
	}
	return forward1d(k.forward, s, width, stride, work)
}

// Inverse1D reverses Forward1D.
func Inverse1D(f Filter, s []float64, width, stride int, work []float64) error {
	k, err := f.kernel()
	if err != nil {
		return err
	}
	return inverse1d(k.inverse, s, width, stride, work)
}

// Forward1DStep applies a single forward level at the given width.
func Forward1DStep(f Filter, s []float64, width, stride int, work []float64) error {
	k, err := f.kernel()
	if err != nil {
		return err
	}
	return k.forward(s, width, stride, work)
}

// Inverse1DStep applies a single inverse level at the given width.
func Inverse1DStep(f Filter, s []float64, width, stride int, work []float64) error {
	k, err := f.kernel()
	if err != nil {
		return err
	}
	return k.inverse(s, width, stride, work)
}

// Forward2D applies the full multiresolution forward transform to a 2D
// buffer. Position (x, y) lives at s[y*rowstride+x]. With subtile set the
// driver stops at the coarsest joint level instead of finishing the longer
// axis with 1D sweeps. Daub4Lift ignores subtile and always finishes.
func Forward2D(f Filter, s []float64, width, height, rowstride int, work []float64, subtile bool) error {
	k, err := f.kernel()
	if err != nil {
		return err
	}
	return forward2d(k.forward, s, width, height, rowstride, work, subtile && k.subtile)
}

// Inverse2D reverses Forward2D. The subtile value must match the forward
// call.
func Inverse2D(f Filter, s []float64, width, height, rowstride int, work []float64, subtile bool) error {
	k, err := f.kernel()
	if err != nil {
		return err
	}
	return inverse2d(k.inverse, s, width, height, rowstride, work, subtile && k.subtile)
}

// Forward2DStep applies a single joint 2D forward level: columns first,
// then rows.
func Forward2DStep(f Filter, s []float64, width, height, rowstride int, work []float64) error {
	k, err := f.kernel()
	if err != nil {
		return err
	}
	return forward2dStep(k.forward, s, width, height, rowstride, work)
}

// Inverse2DStep applies a single joint 2D inverse level: rows first, then
// columns.
func Inverse2DStep(f Filter, s []float64, width, height, rowstride int, work []float64) error {
	k, err := f.kernel()
	if err != nil {
		return err
	}
	return inverse2dStep(k.inverse, s, width, height, rowstride, work)
}

// Forward3D applies the full multiresolution forward transform to a 3D
// buffer. Position (x, y, z) lives at s[z*slicestride+y*rowstride+x].
func Forward3D(f Filter, s []float64, width, height, depth, rowstride, slicestride int, work []float64, subtile bool) error {
	k, err := f.kernel()
	if err != nil {
		return err
	}
	return forward3d(k.forward, s, width, height, depth, rowstride, slicestride, work, subtile && k.subtile)
}

// Inverse3D reverses Forward3D. The subtile value must match the forward
// call.
func Inverse3D(f Filter, s []float64, width, height, depth, rowstride, slicestride int, work []float64, subtile bool) error {
	k, err := f.kernel()
	if err != nil {
		return err
	}
	return inverse3d(k.inverse, s, width, height, depth, rowstride, slicestride, work, subtile && k.subtile)
}

// Forward3DStep applies a single joint 3D forward level: rows, then
// columns, then slices.
func Forward3DStep(f Filter, s []float64, width, height, depth, rowstride, slicestride int, work []float64) error {
	k, err := f.kernel()
	if err != nil {
		return err
	}
	return forward3dStep(k.forward, s, width, height, depth, rowstride, slicestride, work)
}

// Inverse3DStep applies a single joint 3D inverse level: slices, then
// columns, then rows.
func Inverse3DStep(f Filter, s []float64, width, height, depth, rowstride, slicestride int, work []float64) error {
	k, err := f.kernel()
	if err != nil {
		return err
	}
	return inverse3dStep(k.inverse, s, width, height, depth, rowstride, slicestride, work)
}

// Forward3D2DStep applies a single joint 2D forward level to an axis pair
// of a 3D buffer, where stride addresses the first axis and rowstride the
// second.
func Forward3D2DStep(f Filter, s []float64, width, height, stride, rowstride int, work []float64) error {
	k, err := f.kernel()
	if err != nil {
		return err
	}
	return forward3d2dStep(k.forward, s, width, height, stride, rowstride, work)
}

// Inverse3D2DStep reverses Forward3D2DStep.
func Inverse3D2DStep(f Filter, s []float64, width, height, stride, rowstride int, work []float64) error {
	k, err := f.kernel()
	if err != nil {
		return err
	}
	return inverse3d2dStep(k.inverse, s, width, height, stride, rowstride, work)
}
