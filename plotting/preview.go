// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"image/color"
	"io"
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// WritePreviewSVG writes a static SVG of tab projected onto the
// (SepalLength, SepalWidth) plane. Points are colored and labeled the
// same way BuildScene colors and labels them, and it fails under the
// same conditions.
func WritePreviewSVG(w io.Writer, tab *table.Table, groupCol string, width, height int) error {
	groups, err := checkGroups(tab, groupCol)
	if err != nil {
		return err
	}

	x, y := tab.MustColumn(SepalLength), tab.MustColumn(SepalWidth)
	c0, c1, c2 := tab.MustColumn(Cluster0), tab.MustColumn(Cluster1), tab.MustColumn(Cluster2)

	var xs, ys []float64
	var colors []color.Color
	var hover []string
	for i, g := range groups {
		c, _ := groupColor(i)
		xs = append(xs, floatColumn(x, g.Rows)...)
		ys = append(ys, floatColumn(y, g.Rows)...)
		for range g.Rows {
			colors = append(colors, c)
		}
		for _, h := range hoverTexts(c0, c1, c2, g.Rows) {
			// SVG text has no markup line breaks.
			hover = append(hover, strings.Replace(h, "<br>", ", ", -1))
		}
	}

	// Colors are already visual values, so gg passes them
	// through an identity scale.
	pt := new(table.Builder).
		Add(SepalLength, xs).
		Add(SepalWidth, ys).
		Add("[color]", colors).
		Add("[hover]", hover).
		Done()

	plot := gg.NewPlot(pt)
	plot.Add(gg.LayerPoints{X: SepalLength, Y: SepalWidth, Color: "[color]"})
	plot.Add(gg.LayerTooltips{X: SepalLength, Y: SepalWidth, Label: "[hover]"})
	plot.Add(gg.Title("Iris by " + groupCol))
	return plot.WriteSVG(w, width, height)
}
