package chart

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/iafilius/GrainEye/src/grain"
)

// Format selects the exported file types.
type Format int

const (
	PNG Format = 1 << iota
	SVG
	Both = PNG | SVG
)

// ParseFormat accepts png, svg or both.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	case "both", "":
		return Both, nil
	}
	return 0, fmt.Errorf("unknown export format %q (want png, svg or both)", s)
}

// WritePNG renders one chart as a width×height PNG.
func WritePNG(w io.Writer, kind Kind, ds grain.Dataset, width, height int, opts ...Option) error {
	s := Surface{Bounds: image.Rect(0, 0, width, height)}
	if err := s.Validate(); err != nil {
		return err
	}
	cv, err := NewRasterCanvas(width, height)
	if err != nil {
		return err
	}
	defer cv.Close()
	if err := Render(cv, s, kind, ds, opts...); err != nil {
		return err
	}
	if err := cv.EncodePNG(w); err != nil {
		return fmt.Errorf("encode %s png: %w", kind, err)
	}
	return nil
}

// WriteSVG renders one chart as a width×height SVG document.
func WriteSVG(w io.Writer, kind Kind, ds grain.Dataset, width, height int, opts ...Option) error {
	s := Surface{Bounds: image.Rect(0, 0, width, height)}
	if err := s.Validate(); err != nil {
		return err
	}
	cv, err := NewVectorCanvas(width, height)
	if err != nil {
		return err
	}
	if err := Render(cv, s, kind, ds, opts...); err != nil {
		return err
	}
	if err := cv.Save(w); err != nil {
		return fmt.Errorf("encode %s svg: %w", kind, err)
	}
	return nil
}

// ExportAll writes both charts into dir in the requested formats and returns
// the written paths in a stable order.
func ExportAll(dir string, ds grain.Dataset, width, height int, f Format, opts ...Option) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	var paths []string
	for _, kind := range []Kind{Histogram, Cumulative} {
		if f&PNG != 0 {
			p := filepath.Join(dir, kind.FileStem()+".png")
			if err := writeFile(p, func(w io.Writer) error {
				return WritePNG(w, kind, ds, width, height, opts...)
			}); err != nil {
				return paths, err
			}
			paths = append(paths, p)
		}
		if f&SVG != 0 {
			p := filepath.Join(dir, kind.FileStem()+".svg")
			if err := writeFile(p, func(w io.Writer) error {
				return WriteSVG(w, kind, ds, width, height, opts...)
			}); err != nil {
				return paths, err
			}
			paths = append(paths, p)
		}
	}
	return paths, nil
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	bw := bufio.NewWriter(f)
	if err = fn(bw); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return bw.Flush()
}
