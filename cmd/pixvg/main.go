// Command pixvg pixel-perfectly traces pixel-art sprites in ./in to
// scalable SVGs in ./out.
//
// Grounded on the source's click-decorated main(): discover ./in/*.png,
// create ./in and ./out if absent, run the pipeline per file, report
// progress, and exit non-zero when the scale is invalid, no input files
// exist, or no input file could be traced and saved.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pixvg/pixvg/pkg/appinfo"
	"github.com/pixvg/pixvg/pkg/config"
	"github.com/pixvg/pixvg/pkg/report"
	"github.com/pixvg/pixvg/pkg/trace"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, warnings := config.ApplyDotEnv(config.Default(), ".env")

	fs := flag.NewFlagSet("pixvg", flag.ContinueOnError)
	scale := cfg.Scale
	fs.IntVar(&scale, "scale", cfg.Scale, "uniform integer scale applied to path coordinates")
	fs.IntVar(&scale, "s", cfg.Scale, "shorthand for -scale")
	noColor := fs.Bool("no-color", false, "force-disable colored output")
	showVersion := fs.Bool("version", false, "print the tool version and exit")
	checkUpdate := fs.String("check-update", "", "check GitHub <owner>/<repo> for a newer release and exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: pixvg [-s|-scale N] [-no-color] [-version] [-check-update owner/repo]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Println(appinfo.Banner())
		return 0
	}
	if *checkUpdate != "" {
		msg, err := appinfo.CheckForUpdate(*checkUpdate)
		if err != nil {
			fmt.Fprintln(os.Stderr, "update check failed:", err)
			return 1
		}
		fmt.Println(msg)
		return 0
	}

	colorOverride := cfg.Color
	if *noColor {
		off := false
		colorOverride = &off
	}
	rep := report.New(colorOverride)

	for _, w := range warnings {
		rep.Warning(w.String())
	}
	rep.Line(appinfo.Banner())

	if scale < 1 {
		rep.Warning(fmt.Sprintf("scale must be >= 1, got %d", scale))
		return 1
	}

	if err := os.MkdirAll(cfg.InDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "failed to create input directory:", err)
		return 1
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "failed to create output directory:", err)
		return 1
	}

	pngFiles, skipped, err := discoverFiles(cfg.InDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read input directory:", err)
		return 1
	}
	if len(pngFiles) == 0 {
		rep.Warning("no input files")
		return 1
	}

	rep.Line(fmt.Sprintf("found %d file(s), %d skipped (non-.png)", len(pngFiles), len(skipped)))
	for _, f := range skipped {
		rep.Line(fmt.Sprintf("\t%s - skip", f))
	}

	processed := 0
	for _, name := range pngFiles {
		if processFile(cfg, scale, name, rep) {
			processed++
		}
	}

	if processed == 0 {
		return 1
	}
	return 0
}

// discoverFiles lists dir, case-sensitively matching the .png suffix, and
// reports the rest as skipped (spec §6 "Discovery").
func discoverFiles(dir string) (pngs, others []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".png") {
			pngs = append(pngs, e.Name())
		} else {
			others = append(others, e.Name())
		}
	}
	sort.Strings(pngs)
	sort.Strings(others)
	return pngs, others, nil
}

// processFile decodes one input PNG, runs the tracing pipeline, and writes
// the resulting SVG. It reports and skips the file on decode or I/O
// failure rather than aborting the whole run (spec §7 propagation policy).
func processFile(cfg config.RunConfig, scale int, name string, rep *report.Reporter) bool {
	inPath := filepath.Join(cfg.InDir, name)

	f, err := os.Open(inPath)
	if err != nil {
		rep.Skipped(name, err)
		return false
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		rep.Skipped(name, err)
		return false
	}

	pixels, width, height := trace.FromImage(img)
	rep.FileHeader(name, width, height, scale)

	doc, _, err := trace.Trace(pixels, width, height, scale, rep)
	if err != nil {
		rep.Skipped(name, err)
		return false
	}

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	outName := fmt.Sprintf("%s_X%d.svg", stem, scale)
	outPath := filepath.Join(cfg.OutDir, outName)

	data := doc.Render()
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		rep.Skipped(name, err)
		return false
	}

	rep.Saved(outName, len(data))
	return true
}
