// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotting builds 3D scatter plots of the Iris dataset.
//
// BuildScene turns a table of Iris measurements into a Scene with one
// marker trace and one translucent mesh trace per group. A Scene is a
// plotly figure; Display writes it into an HTML page that renders it
// interactively, and WritePreviewSVG draws a static 2D projection of
// the same data.
package plotting

import (
	"reflect"

	"github.com/aclements/go-gg/table"
)

// Names of the dataset columns BuildScene reads, in addition to the
// grouping column.
const (
	SepalLength = "SepalLength"
	SepalWidth  = "SepalWidth"
	PetalLength = "PetalLength"
	Cluster0    = "Cluster0"
	Cluster1    = "Cluster1"
	Cluster2    = "Cluster2"
)

// Columns returns the fixed columns BuildScene requires.
func Columns() []string {
	return []string{SepalLength, SepalWidth, PetalLength, Cluster0, Cluster1, Cluster2}
}

var coordColumns = []string{SepalLength, SepalWidth, PetalLength}

// BuildScene partitions the rows of tab by the values of groupCol and
// returns a Scene with, for each group in first-occurrence order, a
// Scatter3D of (SepalLength, SepalWidth, PetalLength) followed by a
// Mesh3D over the same points.
//
// If a required column is missing or a coordinate column is not
// numeric, BuildScene returns a *SchemaError. If groupCol has more
// than MaxGroups distinct values, it returns a *TooManyGroupsError.
func BuildScene(tab *table.Table, groupCol string) (*Scene, error) {
	groups, err := checkGroups(tab, groupCol)
	if err != nil {
		return nil, err
	}

	x, y, z := tab.MustColumn(SepalLength), tab.MustColumn(SepalWidth), tab.MustColumn(PetalLength)
	c0, c1, c2 := tab.MustColumn(Cluster0), tab.MustColumn(Cluster1), tab.MustColumn(Cluster2)

	data := make([]Trace, 0, 2*len(groups))
	for i, g := range groups {
		c, _ := groupColor(i)
		color := cssColor(c)
		xs, ys, zs := floatColumn(x, g.Rows), floatColumn(y, g.Rows), floatColumn(z, g.Rows)

		data = append(data, &Scatter3D{
			Type: "scatter3d",
			Name: g.Name(),
			X:    xs, Y: ys, Z: zs,
			Mode: "markers",
			Marker: Marker{
				Size:  3,
				Color: color,
				Line:  MarkerLine{Width: 0},
			},
			Text:         hoverTexts(c0, c1, c2, g.Rows),
			TextPosition: "top",
		})
		data = append(data, &Mesh3D{
			Type:    "mesh3d",
			Color:   color,
			Opacity: 0.3,
			X:       xs, Y: ys, Z: zs,
		})
	}
	return &Scene{Data: data, Layout: DefaultLayout()}, nil
}

// checkGroups validates tab's schema and returns its groups by
// groupCol. No group is returned unless all of them can be colored.
func checkGroups(tab *table.Table, groupCol string) ([]Group, error) {
	for _, col := range append([]string{groupCol}, Columns()...) {
		if tab.Column(col) == nil {
			return nil, &SchemaError{col, "missing column"}
		}
	}
	for _, col := range coordColumns {
		if !isNumeric(tab.Column(col)) {
			return nil, &SchemaError{col, "not numeric"}
		}
	}

	groups, err := Groups(tab, groupCol)
	if err != nil {
		return nil, err
	}
	if len(groups) > MaxGroups {
		return nil, &TooManyGroupsError{groupCol, len(groups), MaxGroups}
	}
	return groups, nil
}

func hoverTexts(c0, c1, c2 table.Slice, rows []int) []string {
	v0, v1, v2 := reflect.ValueOf(c0), reflect.ValueOf(c1), reflect.ValueOf(c2)
	text := make([]string, len(rows))
	for i, row := range rows {
		text[i] = HoverText(v0.Index(row).Interface(), v1.Index(row).Interface(), v2.Index(row).Interface())
	}
	return text
}
