// seehuhn.de/go/fontdedup - deduplicate glyphs across font files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Font-dedup analyzes glyph coverage across a set of font files and
// removes duplicated glyphs, so that every code point is provided by
// exactly one font.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"seehuhn.de/go/fontdedup"
	"seehuhn.de/go/fontdedup/analyze"
	"seehuhn.de/go/fontdedup/dedup"
	"seehuhn.de/go/fontdedup/report"
	"seehuhn.de/go/fontdedup/shape"
	"seehuhn.de/go/fontdedup/subset"
	"seehuhn.de/go/fontdedup/validate"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableColor()
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "analyze":
		err = cmdAnalyze(os.Args[2:])
	case "deduplicate":
		err = cmdDeduplicate(os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s <command> [options] font.ttf ...

Commands:
  analyze      report code points shared between the given fonts
  deduplicate  write copies of the fonts with duplicated glyphs removed

Run "%s <command> -h" for command options.
`, os.Args[0], os.Args[0])
}

// stringList collects the values of a repeatable flag.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(s string) error {
	*l = append(*l, s)
	return nil
}

func cmdAnalyze(args []string) error {
	fs := flagSet("analyze", "[options] font.ttf ...")
	shapeAnalysis := fs.Bool("shape-analysis", false, "compare glyph outlines instead of only code points")
	threshold := fs.Float64("similarity-threshold", 1.0, "similarity threshold for shape comparison")
	limit := fs.Int("codepoint-limit", 0, "limit shape analysis to the N smallest shared code points")
	verbose := fs.Bool("v", false, "enable debug logging")
	err := fs.Parse(args)
	if err != nil {
		return err
	}

	fonts := fs.Args()
	err = checkFonts(fonts)
	if err != nil {
		return err
	}
	setupLogging(*verbose)

	var rep fontdedup.AnalysisReport
	if *shapeAnalysis {
		rep, err = shape.FindVariants(fonts, *threshold, *limit)
	} else {
		rep, err = analyze.FindDuplicates(fonts)
	}
	if err != nil {
		return err
	}

	fmt.Print(report.Analysis(rep))
	return nil
}

func cmdDeduplicate(args []string) error {
	fs := flagSet("deduplicate", "[options] -o DIR font.ttf ...")
	outDir := fs.String("o", "", "output directory (required)")
	suffix := fs.String("suffix", "_dedup", "suffix appended to output file names")
	shapeAnalysis := fs.Bool("shape-analysis", false, "preserve glyphs whose outlines differ between fonts")
	threshold := fs.Float64("similarity-threshold", 1.0, "similarity threshold for shape comparison")
	verbose := fs.Bool("v", false, "enable debug logging")
	var priority, unicodeRanges, excludeRanges stringList
	fs.Var(&priority, "p", "font to prefer when a glyph is duplicated (repeatable)")
	fs.Var(&unicodeRanges, "r", "only deduplicate code points in RANGE, e.g. 0x4E00-0x9FFF (repeatable)")
	fs.Var(&excludeRanges, "e", "never remove code points in RANGE (repeatable)")
	err := fs.Parse(args)
	if err != nil {
		return err
	}

	fonts := fs.Args()
	err = checkFonts(fonts)
	if err != nil {
		return err
	}
	if *outDir == "" {
		return &fontdedup.InvalidInputError{Reason: "no output directory given (use -o)"}
	}
	if fi, err := os.Stat(*outDir); err == nil && !fi.IsDir() {
		return &fontdedup.InvalidInputError{
			Reason: fmt.Sprintf("output path %q exists and is not a directory", *outDir),
		}
	}
	for _, p := range priority {
		found := false
		for _, f := range fonts {
			if f == p {
				found = true
				break
			}
		}
		if !found {
			return &fontdedup.InvalidInputError{
				Reason: fmt.Sprintf("priority font %q is not among the input fonts", p),
			}
		}
	}
	inRanges, err := parseRanges(unicodeRanges)
	if err != nil {
		return err
	}
	exRanges, err := parseRanges(excludeRanges)
	if err != nil {
		return err
	}
	setupLogging(*verbose)

	var engine dedup.Engine
	if *shapeAnalysis {
		engine = &dedup.ShapeAware{Priority: priority, Threshold: *threshold}
	} else {
		engine = &dedup.Basic{Priority: priority}
	}
	res, err := engine.Run(fonts, inRanges, exRanges)
	if err != nil {
		return err
	}

	fmt.Print(report.Dedup(res))

	outputs, err := subset.Batch(res, *outDir, *suffix)
	if err != nil {
		return err
	}

	kept := res.KeptGlyphs()
	sources := make([]string, 0, len(kept))
	for src := range kept {
		sources = append(sources, src)
	}
	sort.Strings(sources)

	// Batch processes sources in sorted order, so outputs line up
	// with the sorted source paths.
	ok := true
	for i, src := range sources {
		out := outputs[i]
		vr := validate.GlyphCoverage(out, kept[src])
		fmt.Printf("%s:\n%s", out, report.Validation(vr))
		if !vr.IsValid {
			ok = false
			continue
		}
		origSize, newSize, err := fileSizes(src, out)
		if err != nil {
			return err
		}
		fmt.Println("  " + report.FileSizes(origSize, newSize))
	}
	if !ok {
		return fmt.Errorf("some output files failed validation")
	}
	pterm.Success.Printf("wrote %d font files to %s\n", len(outputs), *outDir)
	return nil
}

func flagSet(name, argHelp string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s %s\n", os.Args[0], name, argHelp)
		fs.PrintDefaults()
	}
	return fs
}

func checkFonts(fonts []string) error {
	if len(fonts) == 0 {
		return &fontdedup.InvalidInputError{Reason: "no font files given"}
	}
	for _, f := range fonts {
		switch strings.ToLower(filepath.Ext(f)) {
		case ".ttf", ".otf":
			// ok
		default:
			return &fontdedup.InvalidInputError{
				Reason: fmt.Sprintf("%q is not a .ttf or .otf file", f),
			}
		}
	}
	return nil
}

func parseRanges(specs []string) ([]fontdedup.Range, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	ranges := make([]fontdedup.Range, len(specs))
	for i, s := range specs {
		r, err := fontdedup.ParseRange(s)
		if err != nil {
			return nil, err
		}
		ranges[i] = r
	}
	return ranges, nil
}

func fileSizes(orig, dedup string) (int64, int64, error) {
	fi, err := os.Stat(orig)
	if err != nil {
		return 0, 0, err
	}
	fo, err := os.Stat(dedup)
	if err != nil {
		return 0, 0, err
	}
	return fi.Size(), fo.Size(), nil
}

func setupLogging(verbose bool) {
	if !verbose {
		return
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	fontdedup.SetLogger(slog.New(h))
}
