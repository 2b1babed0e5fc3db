// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package irisdata

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	tab, err := Read(strings.NewReader(`Species,SepalLength,SepalWidth,PetalLength
b,1,2,3
a,2,4,6
b,3,6,9
`))
	if err != nil {
		t.Fatal(err)
	}
	sum, err := Summarize(tab, "Species")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"b", "a"}; !de(sum.Column("Species"), want) {
		t.Errorf("groups %v; want %v", sum.Column("Species"), want)
	}
	if want := []int{2, 1}; !de(sum.Column("n"), want) {
		t.Errorf("counts %v; want %v", sum.Column("n"), want)
	}
	for col, want := range map[string][]float64{
		"mean SepalLength": {2, 2},
		"min SepalWidth":   {2, 4},
		"max PetalLength":  {9, 6},
	} {
		got := sum.MustColumn(col).([]float64)
		for i := range want {
			if math.Abs(got[i]-want[i]) > 1e-9 {
				t.Errorf("%s = %v; want %v", col, got, want)
				break
			}
		}
	}
}

func TestSummarizeErrors(t *testing.T) {
	tab, err := Read(strings.NewReader("Species,SepalLength,SepalWidth\na,1,2\n"))
	if err != nil {
		t.Fatal(err)
	}
	var mce *MissingColumnError
	if _, err := Summarize(tab, "Species"); !errors.As(err, &mce) {
		t.Fatalf("want *MissingColumnError; got %v", err)
	}

	tab, err = Read(strings.NewReader("Species,SepalLength,SepalWidth,PetalLength\na,1,2,long\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Summarize(tab, "Species"); err == nil {
		t.Fatal("Summarize of non-numeric column succeeded")
	}
}
