package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrjoshuak/go-wavelet"
	"github.com/mrjoshuak/go-wavelet/internal/gridfile"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name string
		want wavelet.Filter
	}{
		{"haar", wavelet.Haar},
		{"daub4-lift", wavelet.Daub4Lift},
		{"daub4-dwt", wavelet.Daub4DWT},
		{"daub8-dwt", wavelet.Daub8DWT},
		{"cdf97", wavelet.CDF97},
	}
	for _, tt := range tests {
		got, err := parseFilter(tt.name)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}

	_, err := parseFilter("sinc")
	require.Error(t, err)
}

func TestIsPow2(t *testing.T) {
	for _, n := range []int{1, 2, 4, 1024} {
		require.True(t, isPow2(n), "%d", n)
	}
	for _, n := range []int{0, -2, 3, 12, 1000} {
		require.False(t, isPow2(n), "%d", n)
	}
}

func writeTestGrid(t *testing.T, path string, w, h int) *gridfile.Grid {
	t.Helper()
	g, err := gridfile.NewGrid(w, h, 1)
	require.NoError(t, err)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			g.Data[j*w+i] = math.Sin(2.0*math.Pi*float64(i)/8.0) + float64(j)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, gridfile.WriteGrid(f, g))
	require.NoError(t, f.Close())
	return g
}

func TestForwardInversePipeline(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wvgr")
	fwd := filepath.Join(dir, "fwd.wvgr")
	out := filepath.Join(dir, "out.wvgr")

	orig := writeTestGrid(t, in, 16, 8)

	require.NoError(t, runTransform([]string{"-filter", "cdf97", "-o", fwd, in}, false))
	require.NoError(t, runTransform([]string{"-filter", "cdf97", "-o", out, fwd}, true))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	got, err := gridfile.ReadGrid(f)
	require.NoError(t, err)

	for i := range orig.Data {
		require.InDelta(t, orig.Data[i], got.Data[i], 1e-6, "position %d", i)
	}
}

func TestCompressExpandPipeline(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wvgr")
	coeff := filepath.Join(dir, "c.wvcf")
	out := filepath.Join(dir, "out.wvgr")

	orig := writeTestGrid(t, in, 32, 16)

	require.NoError(t, runCompress([]string{"-filter", "daub4-dwt", "-subtile", "-o", coeff, in}))
	require.NoError(t, runExpand([]string{"-o", out, coeff}))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	got, err := gridfile.ReadGrid(f)
	require.NoError(t, err)

	for i := range orig.Data {
		require.InDelta(t, orig.Data[i], got.Data[i], 1e-6, "position %d", i)
	}
}

func TestTransformRejectsNonPow2(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wvgr")

	g, err := gridfile.NewGrid(12, 8, 1)
	require.NoError(t, err)
	f, err := os.Create(in)
	require.NoError(t, err)
	require.NoError(t, gridfile.WriteGrid(f, g))
	require.NoError(t, f.Close())

	require.Error(t, runTransform([]string{"-filter", "haar", in}, false))
}
