// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
)

// DefaultPlotlyURL is the plotly.js bundle loaded by a Display.
const DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

type DisplayOptions struct {
	// Title is the page title. If empty, it is "Iris".
	Title string

	// PlotlyURL is the location of plotly.js. If empty, it is
	// DefaultPlotlyURL. Point it at a local copy to view plots
	// offline.
	PlotlyURL string
}

// A Display writes Scenes as an interactive HTML page.
//
// Init must be called before the first Plot. Close finishes the page.
type Display struct {
	w      io.Writer
	opts   DisplayOptions
	inited bool
	closed bool
	nplots int
}

func NewDisplay(w io.Writer, opts DisplayOptions) *Display {
	if opts.Title == "" {
		opts.Title = "Iris"
	}
	if opts.PlotlyURL == "" {
		opts.PlotlyURL = DefaultPlotlyURL
	}
	return &Display{w: w, opts: opts}
}

var errDisplayClosed = errors.New("display closed")

// Init writes the page preamble that loads plotly.js. Calling Init
// more than once has no further effect.
func (d *Display) Init() error {
	if d.closed {
		return errDisplayClosed
	}
	if d.inited {
		return nil
	}
	if err := headTmpl.Execute(d.w, d.opts); err != nil {
		return err
	}
	d.inited = true
	return nil
}

// Plot writes s to the page.
func (d *Display) Plot(s *Scene) error {
	if !d.inited {
		return ErrNotInitialized
	}
	if d.closed {
		return errDisplayClosed
	}
	id := fmt.Sprintf("plot%d", d.nplots)
	d.nplots++
	return plotTmpl.Execute(d.w, struct {
		ID    string
		Scene *Scene
	}{id, s})
}

// Close writes the page trailer. It does not close the underlying
// writer.
func (d *Display) Close() error {
	if !d.inited || d.closed {
		d.closed = true
		return nil
	}
	d.closed = true
	_, err := io.WriteString(d.w, pageFoot)
	return err
}

// WriteHTML writes a complete HTML page that displays s.
func WriteHTML(w io.Writer, s *Scene, opts DisplayOptions) error {
	d := NewDisplay(w, opts)
	if err := d.Init(); err != nil {
		return err
	}
	if err := d.Plot(s); err != nil {
		return err
	}
	return d.Close()
}

// WriteJSON writes s as an indented plotly figure.
func WriteJSON(w io.Writer, s *Scene) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

var headTmpl = template.Must(template.New("head").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>{{.Title}}</title>
    <script type="text/javascript" src="{{.PlotlyURL}}"></script>
  </head>
  <body>
`))

var plotTmpl = template.Must(template.New("plot").Parse(`    <div id="{{.ID}}"></div>
    <script type="text/javascript">
      Plotly.newPlot({{.ID}}, {{.Scene.Data}}, {{.Scene.Layout}});
    </script>
`))

const pageFoot = `  </body>
</html>
`
