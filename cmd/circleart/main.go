// Command circleart renders images as white dots on a black background,
// each dot sized after the brightness of the pixel under it.
//
// Usage:
//
//	circleart [flags] image...
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/esimov/circle-art/draw"
	"github.com/esimov/circle-art/halftone"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("circleart: ")

	cfg := config{Params: halftone.DefaultParams()}
	flag.IntVar(&cfg.Params.DotDiameter, "dot", halftone.DefaultDotDiameter, "diameter of the dots drawn on white pixels")
	flag.IntVar(&cfg.Params.GridSpacing, "spacing", halftone.DefaultGridSpacing, "distance in pixels between two sample points")
	flag.StringVar(&cfg.Out, "out", "", "output file for a single image, output directory for several (default "+draw.OutputName+")")
	flag.IntVar(&cfg.Width, "width", 0, "downscale the source images to this width first")
	blur := flag.Uint("blur", 0, "stack blur radius applied before sampling")
	flag.BoolVar(&cfg.Aliased, "aliased", false, "draw exact, non anti-aliased circles")
	flag.IntVar(&cfg.Jobs, "j", runtime.NumCPU(), "number of images converted concurrently")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] image...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := cfg.Params.Validate(); err != nil {
		log.Fatal(err)
	}
	var err error
	if cfg.Blur, err = blurRadius(*blur); err != nil {
		log.Fatal(err)
	}

	jobs, err := cfg.plan(flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.run(context.Background(), jobs); err != nil {
		log.Fatal(err)
	}
}
