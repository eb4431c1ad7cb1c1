// Command wavetool applies multiresolution wavelet transforms to raw
// float64 grids from the command line.
//
// Usage:
//
//	wavetool fwd [options] <input.wvgr>       forward transform a grid
//	wavetool inv [options] <input.wvgr>       inverse transform a grid
//	wavetool compress [options] <input.wvgr>  transform and threshold to a coefficient file
//	wavetool expand [options] <input.wvcf>    reconstruct a grid from a coefficient file
//	wavetool stats <input>                    coefficient summary of a grid or coefficient file
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/mrjoshuak/go-wavelet"
	"github.com/mrjoshuak/go-wavelet/internal/gridfile"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "fwd":
		err = runTransform(os.Args[2:], false)
	case "inv":
		err = runTransform(os.Args[2:], true)
	case "compress":
		err = runCompress(os.Args[2:])
	case "expand":
		err = runExpand(os.Args[2:])
	case "stats":
		err = runStats(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "wavetool: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "wavetool: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  wavetool fwd -filter <name> [-subtile] [-o out.wvgr] <input.wvgr>
  wavetool inv -filter <name> [-subtile] [-o out.wvgr] <input.wvgr>
  wavetool compress -filter <name> [-subtile] [-threshold t] [-o out.wvcf] <input.wvgr>
  wavetool expand [-o out.wvgr] <input.wvcf>
  wavetool stats <input.wvgr|input.wvcf>

Filters: haar, daub4-lift, daub4-dwt, daub8-dwt, cdf97
`)
}

func parseFilter(name string) (wavelet.Filter, error) {
	for f := wavelet.Haar; f <= wavelet.CDF97; f++ {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown filter %q", name)
}

func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func checkExtents(g *gridfile.Grid) error {
	if !isPow2(g.Width) || !isPow2(g.Height) || !isPow2(g.Depth) {
		return fmt.Errorf("extents must be powers of two, got %dx%dx%d", g.Width, g.Height, g.Depth)
	}
	return nil
}

// transform applies the full multiresolution transform matching the grid's
// dimensionality, in place.
func transform(g *gridfile.Grid, f wavelet.Filter, subtile, inverse bool) error {
	work := make([]float64, max3(g.Width, g.Height, g.Depth))

	switch g.Dims() {
	case 1:
		if inverse {
			return wavelet.Inverse1D(f, g.Data, g.Width, 1, work)
		}
		return wavelet.Forward1D(f, g.Data, g.Width, 1, work)
	case 2:
		if inverse {
			return wavelet.Inverse2D(f, g.Data, g.Width, g.Height, g.Width, work, subtile)
		}
		return wavelet.Forward2D(f, g.Data, g.Width, g.Height, g.Width, work, subtile)
	default:
		rowstride := g.Width
		slicestride := g.Width * g.Height
		if inverse {
			return wavelet.Inverse3D(f, g.Data, g.Width, g.Height, g.Depth, rowstride, slicestride, work, subtile)
		}
		return wavelet.Forward3D(f, g.Data, g.Width, g.Height, g.Depth, rowstride, slicestride, work, subtile)
	}
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

func runTransform(args []string, inverse bool) error {
	name := "fwd"
	if inverse {
		name = "inv"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	filterName := fs.String("filter", "cdf97", "wavelet filter")
	subtile := fs.Bool("subtile", false, "stop at the coarsest joint level")
	output := fs.String("o", "", "output file (default: overwrite input)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%s: exactly one input file required", name)
	}

	filter, err := parseFilter(*filterName)
	if err != nil {
		return err
	}

	in := fs.Arg(0)
	g, err := readGridFile(in)
	if err != nil {
		return err
	}
	if err := checkExtents(g); err != nil {
		return err
	}

	if err := transform(g, filter, *subtile, inverse); err != nil {
		return err
	}

	out := *output
	if out == "" {
		out = in
	}
	return writeGridFile(out, g)
}

func runCompress(args []string) error {
	fs := flag.NewFlagSet("compress", flag.ExitOnError)
	filterName := fs.String("filter", "cdf97", "wavelet filter")
	subtile := fs.Bool("subtile", false, "stop at the coarsest joint level")
	threshold := fs.Float64("threshold", 0, "drop coefficients below this magnitude")
	output := fs.String("o", "", "output file (default: input with .wvcf)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("compress: exactly one input file required")
	}

	filter, err := parseFilter(*filterName)
	if err != nil {
		return err
	}

	in := fs.Arg(0)
	g, err := readGridFile(in)
	if err != nil {
		return err
	}
	if err := checkExtents(g); err != nil {
		return err
	}

	if err := transform(g, filter, *subtile, false); err != nil {
		return err
	}

	out := *output
	if out == "" {
		out = in + ".wvcf"
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := gridfile.WriteCoeff(f, g, uint8(filter), *subtile, *threshold); err != nil {
		return err
	}
	return f.Close()
}

func runExpand(args []string) error {
	fs := flag.NewFlagSet("expand", flag.ExitOnError)
	output := fs.String("o", "", "output file (default: input with .wvgr)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expand: exactly one input file required")
	}

	in := fs.Arg(0)
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()
	g, filter, subtile, err := gridfile.ReadCoeff(f)
	if err != nil {
		return err
	}

	if err := transform(g, wavelet.Filter(filter), subtile, true); err != nil {
		return err
	}

	out := *output
	if out == "" {
		out = in + ".wvgr"
	}
	return writeGridFile(out, g)
}

func runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("stats: exactly one input file required")
	}

	g, err := readAnyFile(fs.Arg(0))
	if err != nil {
		return err
	}

	data := g.Data
	zero := 0
	for _, v := range data {
		if math.Abs(v) < 1e-12 {
			zero++
		}
	}

	fmt.Printf("extents:  %dx%dx%d (%d samples)\n", g.Width, g.Height, g.Depth, len(data))
	fmt.Printf("mean:     %.6g\n", stat.Mean(data, nil))
	fmt.Printf("stddev:   %.6g\n", stat.StdDev(data, nil))
	fmt.Printf("min:      %.6g\n", floats.Min(data))
	fmt.Printf("max:      %.6g\n", floats.Max(data))
	fmt.Printf("energy:   %.6g\n", floats.Norm(data, 2))
	fmt.Printf("zeros:    %d (%.1f%%)\n", zero, 100*float64(zero)/float64(len(data)))
	return nil
}

func readGridFile(path string) (*gridfile.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return gridfile.ReadGrid(f)
}

// readAnyFile opens a raw grid or, failing that, a coefficient file.
func readAnyFile(path string) (*gridfile.Grid, error) {
	g, err := readGridFile(path)
	if err == nil {
		return g, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, _, _, err = gridfile.ReadCoeff(f)
	return g, err
}

func writeGridFile(path string, g *gridfile.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := gridfile.WriteGrid(f, g); err != nil {
		return err
	}
	return f.Close()
}
