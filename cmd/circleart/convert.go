package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/esimov/circle-art/draw"
	"github.com/esimov/circle-art/halftone"
	"github.com/esimov/circle-art/pixels"
)

// config holds the command line options.
type config struct {
	Params  halftone.Params
	Out     string
	Width   int
	Blur    uint32
	Aliased bool
	Jobs    int
}

// blurRadius converts the -blur flag value, rejecting radii which do not
// fit the blur's uint32 argument.
func blurRadius(v uint) (uint32, error) {
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("blur radius %d out of range, max %d", v, uint32(math.MaxUint32))
	}
	return uint32(v), nil
}

// job is a single source image and the file its rendering is written to.
type job struct {
	src string
	dst string
}

// surface is a halftone surface which can be saved as PNG.
type surface interface {
	halftone.Surface
	EncodePNG(w io.Writer) error
}

// plan resolves the output file of every input.
// A single input is written to Out, several inputs are written into the
// Out directory, each named after its source.
func (cfg *config) plan(inputs []string) ([]job, error) {
	if len(inputs) == 1 {
		dst := cfg.Out
		if dst == "" {
			dst = draw.OutputName
		}
		return []job{{src: inputs[0], dst: dst}}, nil
	}

	dir := cfg.Out
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	jobs := make([]job, 0, len(inputs))
	seen := make(map[string]string, len(inputs))
	for _, src := range inputs {
		base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		dst := filepath.Join(dir, base+"-"+draw.OutputName)
		if prev, ok := seen[dst]; ok {
			return nil, fmt.Errorf("%s and %s would both be written to %s", prev, src, dst)
		}
		seen[dst] = src
		jobs = append(jobs, job{src: src, dst: dst})
	}
	return jobs, nil
}

// run converts the jobs concurrently. Every conversion draws onto its own
// surface. The first failure stops the jobs which have not started yet.
func (cfg *config) run(ctx context.Context, jobs []job) error {
	g, ctx := errgroup.WithContext(ctx)
	if cfg.Jobs > 0 {
		g.SetLimit(cfg.Jobs)
	}
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := cfg.convert(j); err != nil {
				return fmt.Errorf("%s: %w", j.src, err)
			}
			log.Printf("%s -> %s", j.src, j.dst)
			return nil
		})
	}
	return g.Wait()
}

// convert renders one image file into a PNG file.
func (cfg *config) convert(j job) error {
	f, err := os.Open(j.src)
	if err != nil {
		return err
	}
	img, _, err := pixels.Decode(f)
	f.Close()
	if err != nil {
		return err
	}

	dst, err := cfg.render(img)
	if err != nil {
		return err
	}
	return save(dst, j.dst)
}

// save writes the surface to path as PNG. A partly written file is removed.
func save(dst surface, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := dst.EncodePNG(out); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// render prepares the decoded image and draws it as circles.
func (cfg *config) render(img image.Image) (surface, error) {
	img = pixels.Resize(img, cfg.Width)
	img, err := pixels.Blur(img, cfg.Blur)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	var dst surface
	if cfg.Aliased {
		dst = draw.NewImage(width, height)
	} else {
		dst = draw.NewContext(width, height)
	}
	if err := halftone.Transform(pixels.ImgToPix(img), width, height, cfg.Params, dst); err != nil {
		return nil, err
	}
	return dst, nil
}
