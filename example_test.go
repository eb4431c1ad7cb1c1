package wavelet_test

import (
	"fmt"

	wavelet "github.com/mrjoshuak/go-wavelet"
)

func ExampleForward2D() {
	const size = 8

	data := make([]float64, size*size)
	for i := range data {
		data[i] = 1.0
	}
	work := make([]float64, size)

	if err := wavelet.Forward2D(wavelet.Haar, data, size, size, size, work, false); err != nil {
		panic(err)
	}

	// A constant image collapses into the single coarsest coefficient.
	fmt.Printf("%.1f\n", data[0])

	if err := wavelet.Inverse2D(wavelet.Haar, data, size, size, size, work, false); err != nil {
		panic(err)
	}
	fmt.Printf("%.1f %.1f\n", data[0], data[size*size-1])

	// Output:
	// 1.0
	// 1.0 1.0
}

func ExampleForward1D() {
	data := []float64{2, 4, 6, 8}
	work := make([]float64, len(data))

	if err := wavelet.Forward1D(wavelet.Haar, data, len(data), 1, work); err != nil {
		panic(err)
	}
	fmt.Printf("%.1f\n", data[0])

	// Output:
	// 5.0
}
