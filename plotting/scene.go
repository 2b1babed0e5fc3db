// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

// A Scene is a declarative figure: a sequence of traces and a layout.
// It encodes to JSON as a plotly figure.
type Scene struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// A Trace is a single visual primitive in a Scene. It is either a
// *Scatter3D or a *Mesh3D.
type Trace interface {
	TraceType() string
}

// Scatter3D is a set of 3D marker points, one per data row.
type Scatter3D struct {
	Type         string    `json:"type"`
	Name         string    `json:"name"`
	X            []float64 `json:"x"`
	Y            []float64 `json:"y"`
	Z            []float64 `json:"z"`
	Mode         string    `json:"mode"`
	Marker       Marker    `json:"marker"`
	Text         []string  `json:"text"`
	TextPosition string    `json:"textposition"`
}

func (*Scatter3D) TraceType() string { return "scatter3d" }

type Marker struct {
	Size  int        `json:"size"`
	Color string     `json:"color"`
	Line  MarkerLine `json:"line"`
}

type MarkerLine struct {
	Width int `json:"width"`
}

// Mesh3D is a translucent volume over a set of 3D points.
type Mesh3D struct {
	Type    string    `json:"type"`
	Color   string    `json:"color"`
	Opacity float64   `json:"opacity"`
	X       []float64 `json:"x"`
	Y       []float64 `json:"y"`
	Z       []float64 `json:"z"`
}

func (*Mesh3D) TraceType() string { return "mesh3d" }

// Layout is the figure-level styling of a Scene.
type Layout struct {
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Autosize bool        `json:"autosize"`
	Scene    LayoutScene `json:"scene"`
}

type LayoutScene struct {
	XAxis       Axis        `json:"xaxis"`
	YAxis       Axis        `json:"yaxis"`
	ZAxis       Axis        `json:"zaxis"`
	AspectRatio AspectRatio `json:"aspectratio"`
	AspectMode  string      `json:"aspectmode"`
}

type Axis struct {
	GridColor       string `json:"gridcolor"`
	ZeroLineColor   string `json:"zerolinecolor"`
	ShowBackground  bool   `json:"showbackground"`
	BackgroundColor string `json:"backgroundcolor"`
}

type AspectRatio struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// DefaultLayout returns the layout used by every Scene built by
// BuildScene. It contains no reference types, so each call yields an
// independent copy.
func DefaultLayout() Layout {
	axis := Axis{
		GridColor:       "rgb(255, 255, 255)",
		ZeroLineColor:   "rgb(255, 255, 255)",
		ShowBackground:  true,
		BackgroundColor: "rgb(230, 230,230)",
	}
	return Layout{
		Width:    800,
		Height:   550,
		Autosize: false,
		Scene: LayoutScene{
			XAxis:       axis,
			YAxis:       axis,
			ZAxis:       axis,
			AspectRatio: AspectRatio{1, 1, 0.7},
			AspectMode:  "manual",
		},
	}
}
