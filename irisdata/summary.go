// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package irisdata

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/flatmap/irisviz/plotting"
)

// Summarize returns a table with one row per distinct value of
// groupCol, in first-occurrence order. Each row gives the number of
// rows in the group and the mean, minimum, and maximum of each plotted
// coordinate.
func Summarize(tab *table.Table, groupCol string) (*table.Table, error) {
	coords := []string{plotting.SepalLength, plotting.SepalWidth, plotting.PetalLength}
	if err := Check(tab, append([]string{groupCol}, coords...)...); err != nil {
		return nil, err
	}
	for _, col := range coords {
		if k := reflect.TypeOf(tab.Column(col)).Elem().Kind(); k != reflect.Int && k != reflect.Float64 {
			return nil, fmt.Errorf("column %q is not numeric", col)
		}
	}

	groups, err := plotting.Groups(tab, groupCol)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(groups))
	counts := make([]int, len(groups))
	for i, g := range groups {
		names[i] = g.Name()
		counts[i] = len(g.Rows)
	}
	b := new(table.Builder).Add(groupCol, names).Add("n", counts)

	for _, col := range coords {
		var xs []float64
		slice.Convert(&xs, tab.Column(col))
		means := make([]float64, len(groups))
		mins := make([]float64, len(groups))
		maxs := make([]float64, len(groups))
		for i, g := range groups {
			gxs := slice.Select(xs, g.Rows).([]float64)
			means[i] = stats.Mean(gxs)
			mins[i], maxs[i] = stats.Bounds(gxs)
		}
		b.Add("mean "+col, means).Add("min "+col, mins).Add("max "+col, maxs)
	}
	return b.Done(), nil
}
