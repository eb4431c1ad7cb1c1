// Package gridfile reads and writes the wavetool container formats: a raw
// float64 grid and a thresholded coefficient form that stores a
// significance bitmap plus the surviving values.
package gridfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/mrjoshuak/go-wavelet/internal/bitio"
)

// Magic numbers of the two container formats.
var (
	magicGrid  = [4]byte{'W', 'V', 'G', 'R'}
	magicCoeff = [4]byte{'W', 'V', 'C', 'F'}
)

const formatVersion = 1

// Grid is a dense float64 volume. Height and Depth are 1 for
// lower-dimensional data; Data is laid out row-major with rowstride Width
// and slicestride Width*Height.
type Grid struct {
	Width  int
	Height int
	Depth  int
	Data   []float64
}

// NewGrid allocates a zeroed grid. Extents must be positive.
func NewGrid(width, height, depth int) (*Grid, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("gridfile: invalid extents %dx%dx%d", width, height, depth)
	}
	return &Grid{
		Width:  width,
		Height: height,
		Depth:  depth,
		Data:   make([]float64, width*height*depth),
	}, nil
}

// Dims returns the number of meaningful dimensions (trailing unit extents
// do not count).
func (g *Grid) Dims() int {
	switch {
	case g.Depth > 1:
		return 3
	case g.Height > 1:
		return 2
	default:
		return 1
	}
}

type header struct {
	Version uint8
	Flags   uint8
	Filter  uint8
	_       uint8
	Width   uint32
	Height  uint32
	Depth   uint32
}

const flagSubtile = 0x01

// WriteGrid writes g in the raw container format.
func WriteGrid(w io.Writer, g *Grid) error {
	if _, err := w.Write(magicGrid[:]); err != nil {
		return fmt.Errorf("writing magic: %w", err)
	}
	hdr := header{
		Version: formatVersion,
		Width:   uint32(g.Width),
		Height:  uint32(g.Height),
		Depth:   uint32(g.Depth),
	}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, g.Data); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}
	return nil
}

// ReadGrid reads a raw container written by WriteGrid.
func ReadGrid(r io.Reader) (*Grid, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("reading magic: %w", err)
	}
	if magic != magicGrid {
		return nil, fmt.Errorf("gridfile: not a grid file")
	}
	hdr, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	g, err := NewGrid(int(hdr.Width), int(hdr.Height), int(hdr.Depth))
	if err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, g.Data); err != nil {
		return nil, fmt.Errorf("reading samples: %w", err)
	}
	return g, nil
}

// WriteCoeff writes transformed coefficients in the thresholded container
// format: values with magnitude below threshold are dropped, the rest are
// recorded behind a one-bit-per-sample significance map. filter and
// subtile describe the transform that produced the coefficients so the
// reader can invert it.
func WriteCoeff(w io.Writer, g *Grid, filter uint8, subtile bool, threshold float64) error {
	if threshold < 0 {
		return fmt.Errorf("gridfile: negative threshold %g", threshold)
	}

	if _, err := w.Write(magicCoeff[:]); err != nil {
		return fmt.Errorf("writing magic: %w", err)
	}
	hdr := header{
		Version: formatVersion,
		Filter:  filter,
		Width:   uint32(g.Width),
		Height:  uint32(g.Height),
		Depth:   uint32(g.Depth),
	}
	if subtile {
		hdr.Flags |= flagSubtile
	}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	bits := bitio.NewWriter()
	var kept []float64
	for _, v := range g.Data {
		if math.Abs(v) >= threshold {
			bits.WriteBit(1)
			kept = append(kept, v)
		} else {
			bits.WriteBit(0)
		}
	}

	sig := bits.Bytes()
	if err := binary.Write(w, binary.LittleEndian, uint32(len(kept))); err != nil {
		return fmt.Errorf("writing count: %w", err)
	}
	if _, err := w.Write(sig); err != nil {
		return fmt.Errorf("writing significance map: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, kept); err != nil {
		return fmt.Errorf("writing values: %w", err)
	}
	return nil
}

// ReadCoeff reads a container written by WriteCoeff, reconstructing the
// full coefficient grid with dropped values restored as zero.
func ReadCoeff(r io.Reader) (*Grid, uint8, bool, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, 0, false, fmt.Errorf("reading magic: %w", err)
	}
	if magic != magicCoeff {
		return nil, 0, false, fmt.Errorf("gridfile: not a coefficient file")
	}
	hdr, err := readHeader(r)
	if err != nil {
		return nil, 0, false, err
	}
	g, err := NewGrid(int(hdr.Width), int(hdr.Height), int(hdr.Depth))
	if err != nil {
		return nil, 0, false, err
	}

	var nkept uint32
	if err := binary.Read(r, binary.LittleEndian, &nkept); err != nil {
		return nil, 0, false, fmt.Errorf("reading count: %w", err)
	}

	n := len(g.Data)
	sig := make([]byte, (n+7)/8)
	if _, err := io.ReadFull(r, sig); err != nil {
		return nil, 0, false, fmt.Errorf("reading significance map: %w", err)
	}
	kept := make([]float64, nkept)
	if err := binary.Read(r, binary.LittleEndian, kept); err != nil {
		return nil, 0, false, fmt.Errorf("reading values: %w", err)
	}

	bits := bitio.NewReader(sig)
	j := 0
	for i := 0; i < n; i++ {
		bit, err := bits.ReadBit()
		if err != nil {
			return nil, 0, false, err
		}
		if bit == 1 {
			if j >= len(kept) {
				return nil, 0, false, fmt.Errorf("gridfile: significance map and value count disagree")
			}
			g.Data[i] = kept[j]
			j++
		}
	}
	if j != len(kept) {
		return nil, 0, false, fmt.Errorf("gridfile: significance map and value count disagree")
	}

	return g, hdr.Filter, hdr.Flags&flagSubtile != 0, nil
}

func readHeader(r io.Reader) (header, error) {
	var hdr header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return hdr, fmt.Errorf("reading header: %w", err)
	}
	if hdr.Version != formatVersion {
		return hdr, fmt.Errorf("gridfile: unsupported version %d", hdr.Version)
	}
	if hdr.Width == 0 || hdr.Height == 0 || hdr.Depth == 0 {
		return hdr, fmt.Errorf("gridfile: invalid extents %dx%dx%d", hdr.Width, hdr.Height, hdr.Depth)
	}
	const maxSamples = 1 << 30
	if uint64(hdr.Width)*uint64(hdr.Height)*uint64(hdr.Depth) > maxSamples {
		return hdr, fmt.Errorf("gridfile: grid too large")
	}
	return hdr, nil
}
