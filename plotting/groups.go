// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// A Group is the set of rows that share one value of a column.
type Group struct {
	// Value is the shared column value.
	Value interface{}

	// Rows are the indexes of the rows in this group, in table
	// order.
	Rows []int
}

// Name returns the textual form of g's value.
func (g Group) Name() string {
	return formatValue(g.Value)
}

// Groups partitions the rows of tab by the distinct values of column
// col. Groups are returned in the order their values first occur in
// the table.
func Groups(tab *table.Table, col string) ([]Group, error) {
	seq := tab.Column(col)
	if seq == nil {
		return nil, &SchemaError{col, "missing column"}
	}
	return groupSeq(seq), nil
}

func groupSeq(seq table.Slice) []Group {
	rv := reflect.ValueOf(seq)
	var groups []Group
	index := make(map[interface{}]int)
	for i := 0; i < rv.Len(); i++ {
		val := rv.Index(i).Interface()
		gi, ok := index[val]
		if !ok {
			gi = len(groups)
			index[val] = gi
			groups = append(groups, Group{Value: val})
		}
		groups[gi].Rows = append(groups[gi].Rows, i)
	}
	return groups
}

// floatColumn returns the rows of a numeric column as float64s.
func floatColumn(seq table.Slice, rows []int) []float64 {
	var xs []float64
	slice.Convert(&xs, slice.Select(seq, rows))
	return xs
}

// isNumeric reports whether seq is a slice of a numeric type.
func isNumeric(seq table.Slice) bool {
	switch reflect.TypeOf(seq).Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// HoverText returns the tooltip label of a row with the given cluster
// values.
func HoverText(c0, c1, c2 interface{}) string {
	return "Cluster0: " + formatValue(c0) +
		"<br>Cluster1: " + formatValue(c1) +
		"<br>Cluster2: " + formatValue(c2)
}

func formatValue(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}
