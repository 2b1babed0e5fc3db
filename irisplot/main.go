// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command irisplot plots the Iris dataset as a 3D scatter plot.
//
// irisplot reads a CSV table with SepalLength, SepalWidth,
// PetalLength, Cluster0, Cluster1, and Cluster2 columns, groups its
// rows by the column named by -by, and draws each group as a cloud of
// points with a translucent hull. At most three groups are supported.
//
// The default output is an HTML page that renders the plot with
// plotly.js. -format json writes the plotly figure itself, and
// -format svg writes a static 2D projection. If stdout is a terminal
// and -o is not given, the output goes to a temporary file instead.
//
// Input files ending in .gz or .zst are decompressed.
//
// Flag defaults may be set in ~/.config/irisplot/config.toml (or the
// file named by $IRISPLOT_CONFIG) or with IRISPLOT_<FLAG> environment
// variables, for example IRISPLOT_BY=Cluster0.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/aclements/go-gg/table"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/flatmap/irisviz/irisdata"
	"github.com/flatmap/irisviz/plotting"
)

func main() {
	log.SetPrefix("irisplot: ")
	log.SetFlags(0)

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	var (
		flagBy       = flag.String("by", cfg.By, "group points by `column`")
		flagOut      = flag.String("o", cfg.Output, "write output to `file` (default: stdout)")
		flagFormat   = flag.String("format", cfg.Format, "output `format`: html, json, or svg")
		flagPlotly   = flag.String("plotly", cfg.PlotlyURL, "load plotly.js from `url`")
		flagOpen     = flag.String("open", cfg.Open, "run `command` with the output file as its last argument")
		flagTable    = flag.Bool("table", false, "print the grouped input table instead of a plot")
		flagDescribe = flag.Bool("describe", false, "print a summary of each group instead of a plot")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [input.csv]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := cfg.Input
	if flag.NArg() == 1 {
		path = flag.Arg(0)
	}
	ext, ok := formatExt[*flagFormat]
	if !ok {
		log.Fatalf("unknown format %q", *flagFormat)
	}

	tab, err := irisdata.Open(path)
	if err != nil {
		log.Fatal(err)
	}

	if *flagTable {
		if err := irisdata.Check(tab, *flagBy); err != nil {
			log.Fatal(err)
		}
		table.Fprint(os.Stdout, table.GroupBy(tab, *flagBy))
		return
	}
	if *flagDescribe {
		sum, err := irisdata.Summarize(tab, *flagBy)
		if err != nil {
			log.Fatal(err)
		}
		table.Fprint(os.Stdout, sum)
		return
	}

	// Prepare for output.
	out := *flagOut
	f := os.Stdout
	if out == "" && (*flagOpen != "" || terminal.IsTerminal(int(os.Stdout.Fd()))) {
		f, err = ioutil.TempFile("", "irisplot-*"+ext)
		if err != nil {
			log.Fatal(err)
		}
		out = f.Name()
		log.Printf("writing %s", out)
	} else if out != "" {
		f, err = os.Create(out)
		if err != nil {
			log.Fatal(err)
		}
	}

	opts := plotting.DisplayOptions{Title: "Iris by " + *flagBy, PlotlyURL: *flagPlotly}
	err = writePlot(f, tab, *flagBy, *flagFormat, opts)
	if f != os.Stdout {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		log.Fatal(err)
	}

	if *flagOpen != "" {
		cmd, err := openCommand(*flagOpen, out)
		if err != nil {
			log.Fatal(err)
		}
		cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
		if err := cmd.Start(); err != nil {
			log.Fatal(err)
		}
	}
}

// formatExt maps each output format to its file extension.
var formatExt = map[string]string{
	"html": ".html",
	"json": ".json",
	"svg":  ".svg",
}

// Size of SVG previews, matching the 3D layout.
const svgWidth, svgHeight = 800, 550

func writePlot(w io.Writer, tab *table.Table, by, format string, opts plotting.DisplayOptions) error {
	if format == "svg" {
		return plotting.WritePreviewSVG(w, tab, by, svgWidth, svgHeight)
	}

	s, err := plotting.BuildScene(tab, by)
	if err != nil {
		return err
	}
	switch format {
	case "html":
		return plotting.WriteHTML(w, s, opts)
	case "json":
		return plotting.WriteJSON(w, s)
	}
	return fmt.Errorf("unknown format %q", format)
}
