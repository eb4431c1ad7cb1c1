package wavelet

// Multiresolution drivers. All families share the same scheduling: the
// forward drivers halve every active extent jointly while each exceeds one,
// then (unless subtile) finish the still-divisible axes with
// lower-dimensional sweeps. The inverse drivers count the level categories
// up front (joint, per-pair, per-axis) by halving with the strict
// inequality > 2, expand the singleton axes, then the pairs, then run the
// joint expansion levels+1 times. The forward loop halves once past the
// point the inverse count stops at, which is what the +1 restores; the
// asymmetry between the two inequalities is load-bearing.

func forward1d(step stepFunc, s []float64, width, stride int, work []float64) error {
	for w := width; w > 1; w >>= 1 {
		if err := step(s, w, stride, work); err != nil {
			return err
		}
	}
	return nil
}

func inverse1d(step stepFunc, s []float64, width, stride int, work []float64) error {
	w := width
	levels := 0
	for w > 2 {
		levels++
		w >>= 1
	}

	for i := 0; i <= levels; i++ {
		if err := step(s, w, stride, work); err != nil {
			return err
		}
		w <<= 1
	}
	return nil
}

// forward2dStep applies one joint 2D level: a 1D step down every column,
// then along every row.
func forward2dStep(step stepFunc, s []float64, width, height, rowstride int, work []float64) error {
	for i := 0; i < width; i++ {
		if err := step(s[i:], height, rowstride, work); err != nil {
			return err
		}
	}
	for i := 0; i < height; i++ {
		if err := step(s[i*rowstride:], width, 1, work); err != nil {
			return err
		}
	}
	return nil
}

// inverse2dStep reverses forward2dStep: rows first, then columns.
func inverse2dStep(step stepFunc, s []float64, width, height, rowstride int, work []float64) error {
	for i := 0; i < height; i++ {
		if err := step(s[i*rowstride:], width, 1, work); err != nil {
			return err
		}
	}
	for i := 0; i < width; i++ {
		if err := step(s[i:], height, rowstride, work); err != nil {
			return err
		}
	}
	return nil
}

func forward2d(step stepFunc, s []float64, width, height, rowstride int, work []float64, subtile bool) error {
	w, h := width, height

	for w > 1 && h > 1 {
		if err := forward2dStep(step, s, w, h, rowstride, work); err != nil {
			return err
		}
		w >>= 1
		h >>= 1
	}

	if !subtile {
		// Left with a single row
		for w > 1 {
			if err := step(s, w, 1, work); err != nil {
				return err
			}
			w >>= 1
		}
		// Left with a single column
		for h > 1 {
			if err := step(s, h, rowstride, work); err != nil {
				return err
			}
			h >>= 1
		}
	}

	return nil
}

func inverse2d(step stepFunc, s []float64, width, height, rowstride int, work []float64, subtile bool) error {
	w, h := width, height
	levels := 0

	for w > 2 && h > 2 {
		levels++
		w >>= 1
		h >>= 1
	}

	if !subtile {
		wlevels, hlevels := 0, 0
		for w > 2 {
			wlevels++
			w >>= 1
		}
		for h > 2 {
			hlevels++
			h >>= 1
		}

		for i := 0; i < wlevels; i++ {
			if err := step(s, w, 1, work); err != nil {
				return err
			}
			w <<= 1
		}
		for i := 0; i < hlevels; i++ {
			if err := step(s, h, rowstride, work); err != nil {
				return err
			}
			h <<= 1
		}
	}

	for i := 0; i <= levels; i++ {
		if err := inverse2dStep(step, s, w, h, rowstride, work); err != nil {
			return err
		}
		w <<= 1
		h <<= 1
	}

	return nil
}

// forward3dStep applies one joint 3D level: rows, then columns, then
// slices.
func forward3dStep(step stepFunc, s []float64, width, height, depth, rowstride, slicestride int, work []float64) error {
	for i := 0; i < height; i++ {
		for j := 0; j < depth; j++ {
			if err := step(s[j*slicestride+i*rowstride:], width, 1, work); err != nil {
				return err
			}
		}
	}
	for i := 0; i < width; i++ {
		for j := 0; j < depth; j++ {
			if err := step(s[j*slicestride+i:], height, rowstride, work); err != nil {
				return err
			}
		}
	}
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			if err := step(s[j*rowstride+i:], depth, slicestride, work); err != nil {
				return err
			}
		}
	}
	return nil
}

// inverse3dStep reverses forward3dStep: slices, then columns, then rows.
func inverse3dStep(step stepFunc, s []float64, width, height, depth, rowstride, slicestride int, work []float64) error {
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			if err := step(s[j*rowstride+i:], depth, slicestride, work); err != nil {
				return err
			}
		}
	}
	for i := 0; i < width; i++ {
		for j := 0; j < depth; j++ {
			if err := step(s[j*slicestride+i:], height, rowstride, work); err != nil {
				return err
			}
		}
	}
	for i := 0; i < height; i++ {
		for j := 0; j < depth; j++ {
			if err := step(s[j*slicestride+i*rowstride:], width, 1, work); err != nil {
				return err
			}
		}
	}
	return nil
}

// forward3d2dStep applies one joint 2D level on an axis pair of a 3D
// buffer: rows along the stride axis, then columns along the rowstride
// axis.
func forward3d2dStep(step stepFunc, s []float64, width, height, stride, rowstride int, work []float64) error {
	for i := 0; i < height; i++ {
		if err := step(s[i*rowstride:], width, stride, work); err != nil {
			return err
		}
	}
	for i := 0; i < width; i++ {
		if err := step(s[i*stride:], height, rowstride, work); err != nil {
			return err
		}
	}
	return nil
}

// inverse3d2dStep reverses forward3d2dStep: columns, then rows.
func inverse3d2dStep(step stepFunc, s []float64, width, height, stride, rowstride int, work []float64) error {
	for i := 0; i < width; i++ {
		if err := step(s[i*stride:], height, rowstride, work); err != nil {
			return err
		}
	}
	for i := 0; i < height; i++ {
		if err := step(s[i*rowstride:], width, stride, work); err != nil {
			return err
		}
	}
	return nil
}

func forward3d(step stepFunc, s []float64, width, height, depth, rowstride, slicestride int, work []float64, subtile bool) error {
	w, h, d := width, height, depth

	for w > 1 && h > 1 && d > 1 {
		if err := forward3dStep(step, s, w, h, d, rowstride, slicestride, work); err != nil {
			return err
		}
		w >>= 1
		h >>= 1
		d >>= 1
	}

	if subtile {
		return nil
	}

	// Exactly one extent has collapsed to one; continue jointly on the
	// remaining pair, then sweep whichever axis is still divisible.
	switch {
	case d == 1:
		for w > 1 && h > 1 {
			if err := forward3d2dStep(step, s, w, h, 1, rowstride, work); err != nil {
				return err
			}
			w >>= 1
			h >>= 1
		}
		for w > 1 {
			if err := step(s, w, 1, work); err != nil {
				return err
			}
			w >>= 1
		}
		for h > 1 {
			if err := step(s, h, rowstride, work); err != nil {
				return err
			}
			h >>= 1
		}

	case h == 1:
		for w > 1 && d > 1 {
			if err := forward3d2dStep(step, s, w, d, 1, slicestride, work); err != nil {
				return err
			}
			w >>= 1
			d >>= 1
		}
		for w > 1 {
			if err := step(s, w, 1, work); err != nil {
				return err
			}
			w >>= 1
		}
		for d > 1 {
			if err := step(s, d, slicestride, work); err != nil {
				return err
			}
			d >>= 1
		}

	case w == 1:
		for h > 1 && d > 1 {
			if err := forward3d2dStep(step, s, h, d, rowstride, slicestride, work); err != nil {
				return err
			}
			h >>= 1
			d >>= 1
		}
		for h > 1 {
			if err := step(s, h, rowstride, work); err != nil {
				return err
			}
			h >>= 1
		}
		for d > 1 {
			if err := step(s, d, slicestride, work); err != nil {
				return err
			}
			d >>= 1
		}
	}

	return nil
}

func inverse3d(step stepFunc, s []float64, width, height, depth, rowstride, slicestride int, work []float64, subtile bool) error {
	w, h, d := width, height, depth
	levels := 0

	whlevels, wdlevels, hdlevels := 0, 0, 0
	wlevels, hlevels, dlevels := 0, 0, 0

	for w > 2 && h > 2 && d > 2 {
		levels++
		w >>= 1
		h >>= 1
		d >>= 1
	}

	if !subtile {
		for w > 2 && h > 2 {
			whlevels++
			w >>= 1
			h >>= 1
		}
		for w > 2 && d > 2 {
			wdlevels++
			w >>= 1
			d >>= 1
		}
		for h > 2 && d > 2 {
			hdlevels++
			h >>= 1
			d >>= 1
		}

		for w > 2 {
			wlevels++
			w >>= 1
		}
		for h > 2 {
			hlevels++
			h >>= 1
		}
		for d > 2 {
			dlevels++
			d >>= 1
		}

		// 1D expansion for non-square
		for i := 0; i < wlevels; i++ {
			if err := step(s, w, 1, work); err != nil {
				return err
			}
			w <<= 1
		}
		for i := 0; i < hlevels; i++ {
			if err := step(s, h, rowstride, work); err != nil {
				return err
			}
			h <<= 1
		}
		for i := 0; i < dlevels; i++ {
			if err := step(s, d, slicestride, work); err != nil {
				return err
			}
			d <<= 1
		}

		// 2D expansion for non-square
		for i := 0; i < whlevels; i++ {
			if err := inverse3d2dStep(step, s, w, h, 1, rowstride, work); err != nil {
				return err
			}
			w <<= 1
			h <<= 1
		}
		for i := 0; i < wdlevels; i++ {
			if err := inverse3d2dStep(step, s, w, d, 1, slicestride, work); err != nil {
				return err
			}
			w <<= 1
			d <<= 1
		}
		for i := 0; i < hdlevels; i++ {
			if err := inverse3d2dStep(step, s, h, d, rowstride, slicestride, work); err != nil {
				return err
			}
			h <<= 1
			d <<= 1
		}
	}

	// 3D expansion
	for i := 0; i <= levels; i++ {
		if err := inverse3dStep(step, s, w, h, d, rowstride, slicestride, work); err != nil {
			return err
		}
		w <<= 1
		h <<= 1
		d <<= 1
	}

	return nil
}
